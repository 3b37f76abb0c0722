package registry

import (
	"os"
	"path/filepath"
)

const dirPerm = 0755

// copySource writes the bytes of a source file to dst with the source's
// permissions, creating the parent directory and replacing any existing dst.
func copySource(src string, content []byte, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(dst, content, srcInfo.Mode().Perm())
}
