package registry

import "fmt"

// ScanError reports a directory that could not be read during a scan.
type ScanError struct {
	Root string
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning %s: %s: %v", e.Root, e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// FileError reports a failure processing a single source file. The build
// skips the file and continues.
type FileError struct {
	Path string
	Op   string // "read" or "copy"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
