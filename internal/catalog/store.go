package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockSuffix = ".lock"
	filePerm   = 0644
)

// Load reads, validates, and parses the catalog at path. Every failure is a
// *LoadError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	result, err := Validate(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !result.Valid {
		return nil, &LoadError{Path: path, Issues: result.Issues, Err: ErrInvalid}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return doc, nil
}

// Save validates the document and replaces the catalog at path with it.
// The content is written to a temporary file in the same directory and
// renamed into place. Every failure is a *WriteError.
func Save(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	result, err := Validate(data)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if !result.Valid {
		return &WriteError{Path: path, Err: fmt.Errorf("%w: %s", ErrInvalid, result.Issues[0])}
	}

	if err := writeAtomic(path, data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Lock takes an exclusive advisory lock for the catalog at path. It does not
// wait: if another process holds the lock, ErrLocked is returned. The
// returned function releases the lock.
func Lock(path string) (func() error, error) {
	fl := flock.New(path + lockSuffix)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking catalog %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	return fl.Unlock, nil
}

// writeAtomic writes data next to path and renames it over path, keeping
// the existing file mode.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(filePerm)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting mode on temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing catalog: %w", err)
	}
	return nil
}
