// Package readme locates and reads the long-form package description.
package readme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultName is the description file looked up when none is configured.
const DefaultName = "README.rst"

// descriptionNotFoundError is returned when no search directory holds the file.
type descriptionNotFoundError struct {
	name string
	dirs []string
}

func (e descriptionNotFoundError) Error() string {
	return fmt.Sprintf("unable to find '%s' (searched %v)", e.name, e.dirs)
}

// Is lets errors.Is(err, fs.ErrNotExist) match.
func (e descriptionNotFoundError) Is(target error) bool { return target == fs.ErrNotExist }

// ErrDescriptionNotFound constructs the missing-description error.
func ErrDescriptionNotFound(name string, dirs ...string) error {
	return descriptionNotFoundError{name: name, dirs: append([]string(nil), dirs...)}
}

// IsMissingDescription reports whether err means the description file could
// not be located.
func IsMissingDescription(err error) bool {
	_, ok := err.(descriptionNotFoundError)
	return ok
}

// SearchDirs returns the lookup order: the working directory first, then the
// project directory. Duplicates are dropped.
func SearchDirs(projectDir string) []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if projectDir != "" {
		abs, err := filepath.Abs(projectDir)
		if err != nil {
			abs = projectDir
		}
		if len(dirs) == 0 || dirs[0] != abs {
			dirs = append(dirs, abs)
		}
	}
	return dirs
}

// Locate returns the path of the first dir/name that exists.
func Locate(name string, dirs ...string) (string, error) {
	if name == "" {
		name = DefaultName
	}
	for _, d := range dirs {
		p := filepath.Join(d, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}
	return "", ErrDescriptionNotFound(name, dirs...)
}

// Read locates name in dirs and returns its contents verbatim.
func Read(name string, dirs ...string) (string, error) {
	p, err := Locate(name, dirs...)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read description %s: %w", p, err)
	}
	return string(b), nil
}
