package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scan walks root depth-first and returns the paths of all non-directory
// entries whose names end with one of exts. Symlinks are returned like
// files and are not followed. Any unreadable directory, including root
// itself, aborts the scan with a *ScanError.
func Scan(root string, exts []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &ScanError{Root: root, Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if hasExtension(d.Name(), exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		var se *ScanError
		if !errors.As(err, &se) {
			err = &ScanError{Root: root, Path: root, Err: err}
		}
		return nil, err
	}

	return files, nil
}

// ScanSources scans each root under srcDir in order. Roots that do not
// exist are skipped; any other failure is returned.
func ScanSources(srcDir string, roots, exts []string) ([]SourceFile, error) {
	var result []SourceFile

	for _, r := range roots {
		rootDir := filepath.Join(srcDir, r)
		if _, err := os.Stat(rootDir); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		paths, err := Scan(rootDir, exts)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			rel, err := filepath.Rel(srcDir, p)
			if err != nil {
				return nil, &ScanError{Root: rootDir, Path: p, Err: err}
			}
			result = append(result, SourceFile{
				Path:    p,
				RelPath: filepath.ToSlash(rel),
				Ext:     filepath.Ext(p),
			})
		}
	}

	return result, nil
}

// hasExtension reports whether name ends with one of exts.
func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
