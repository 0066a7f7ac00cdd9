package generate

import (
	"bytes"
	_ "embed"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/mathieupost/chainbind/abi"
)

//go:embed templates/binding.gotmpl
var bindingTemplate string

var binding = template.Must(template.New("binding").Parse(bindingTemplate))

// Context names a generated binding and locates the runtime package it
// imports.
type Context struct {
	// FileName is the base name of the interface description, without
	// extension. It names the generated contract type.
	FileName string
	// PackageName is the package clause of the generated file.
	PackageName string
	// ImportPath is the import path of the package the file is written to.
	ImportPath string
	// RelativeRuntimePath locates the runtime package relative to ImportPath.
	RelativeRuntimePath string
}

// RuntimeImportPath returns the import path of the runtime package.
func (c Context) RuntimeImportPath() string {
	return path.Join(c.ImportPath, c.RelativeRuntimePath)
}

func (c Context) validate() error {
	if c.FileName == "" {
		return errors.New("missing file name")
	}
	if c.PackageName == "" {
		return errors.New("missing package name")
	}
	runtime := c.RuntimeImportPath()
	if runtime == "" || runtime == "." || strings.HasPrefix(runtime, "..") || path.IsAbs(runtime) {
		return errors.Errorf("runtime import path %q is not a package path", runtime)
	}
	return nil
}

// Source renders the Go binding for a classified contract. The output only
// depends on its inputs.
func Source(c *abi.Contract, ctx Context) ([]byte, error) {
	if err := ctx.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid context")
	}

	state, err := newState(c, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "building binding")
	}

	var buf bytes.Buffer
	err = binding.Execute(&buf, state)
	if err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting source")
	}
	return out, nil
}

// Writer writes generated files into a directory.
type Writer struct {
	dir   string
	force bool
}

// NewWriter returns a Writer for dir. Existing files are only replaced when
// force is set.
func NewWriter(dir string, force bool) *Writer {
	return &Writer{
		dir:   dir,
		force: force,
	}
}

func (w *Writer) Dir() string {
	return w.dir
}

// Write stores data as filename and reports whether the file was written.
func (w *Writer) Write(filename string, data []byte) (bool, error) {
	err := os.MkdirAll(w.dir, os.ModePerm)
	if err != nil {
		return false, errors.Wrap(err, "creating directory")
	}

	filename = filepath.Join(w.dir, filename)
	if !w.force {
		_, err := os.Stat(filename)
		if err == nil {
			return false, nil
		}
		if !os.IsNotExist(err) {
			return false, errors.Wrap(err, "checking file")
		}
	}

	err = os.WriteFile(filename, data, 0o644)
	if err != nil {
		return false, errors.Wrap(err, "writing to file")
	}
	return true, nil
}
