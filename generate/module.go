package generate

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
)

// ImportPath returns the import path of the package in dir, derived from the
// nearest go.mod in dir or one of its parents.
func ImportPath(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	var rel []string
	for {
		modulePath, err := readModulePath(filepath.Join(dir, "go.mod"))
		if err == nil {
			for i := len(rel) - 1; i >= 0; i-- {
				modulePath = path.Join(modulePath, rel[i])
			}
			return modulePath, nil
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		rel = append(rel, filepath.Base(dir))
		dir = parent
	}
}

func readModulePath(modFilePath string) (string, error) {
	data, err := os.ReadFile(modFilePath)
	if err != nil {
		return "", errors.Wrap(err, "reading module file")
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", errors.Errorf("module path not found in %s", modFilePath)
	}
	return modulePath, nil
}
