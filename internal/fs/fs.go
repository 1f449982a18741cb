// Package fs holds the small set of file-system utilities the CLI
// needs to write key and table files with restrictive permissions,
// trimmed from the teacher's fs package down to the operations this
// module actually exercises (no group folder/share management here).
package fs

import (
	"os"
)

const rwFilePermission = 0600

// Exists returns whether the given file or directory exists.
func Exists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return true, err
}

// CreateSecureFile creates file with read/write permission for the
// owner only and returns the open handle, used for private key and
// mG table files.
func CreateSecureFile(file string) (*os.File, error) {
	fd, err := os.Create(file)
	if err != nil {
		return nil, err
	}
	fd.Close()
	if err := os.Chmod(file, rwFilePermission); err != nil {
		return nil, err
	}
	return os.OpenFile(file, os.O_RDWR, rwFilePermission)
}
