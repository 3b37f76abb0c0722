package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLocked is returned by Lock when another process holds the catalog lock.
var ErrLocked = errors.New("catalog is locked by another build")

// LoadError reports a catalog that is missing, unreadable, unparsable, or
// does not satisfy the catalog schema.
type LoadError struct {
	Path   string
	Issues []ValidationIssue
	Err    error
}

func (e *LoadError) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("loading catalog %s: %v", e.Path, e.Err)
	}
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("loading catalog %s: %v: %s", e.Path, e.Err, strings.Join(msgs, "; "))
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the catalog.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing catalog %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ErrInvalid is wrapped by LoadError when schema validation fails.
var ErrInvalid = errors.New("catalog does not match schema")
