package chainbind

import (
	"context"
	"encoding/hex"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/sha3"

	"github.com/mathieupost/chainbind/abi"
	"github.com/mathieupost/chainbind/config"
	"github.com/mathieupost/chainbind/contract"
	"github.com/mathieupost/chainbind/generate"
	"github.com/mathieupost/chainbind/log"
)

const defaultPackageName = "bindings"

// Result is the outcome of compiling one interface description.
type Result struct {
	Source      []byte
	Contract    *abi.Contract
	Diagnostics []abi.Diagnostic
}

// Output describes one binding produced by Run.
type Output struct {
	Input       string
	Path        string
	Written     bool
	Diagnostics []abi.Diagnostic
}

// Compiler drives the extract, classify and generate stages.
type Compiler struct {
	cfg   config.Config
	cache Cache
}

// NewCompiler returns a Compiler for cfg. The cache is optional.
func NewCompiler(cfg config.Config, cache Cache) *Compiler {
	return &Compiler{
		cfg:   cfg,
		cache: cache,
	}
}

// CompileDocument turns one interface description into Go source.
func (c *Compiler) CompileDocument(ctx context.Context, data []byte, gctx generate.Context) (*Result, error) {
	ctx, span := otel.Tracer("").Start(ctx, "chainbind.Compiler.CompileDocument")
	defer span.End()
	span.SetAttributes(
		attribute.String("chainbind.name", gctx.FileName),
		attribute.String("chainbind.request_id", RequestIDFromContext(ctx, "")),
	)

	classified, err := c.classify(ctx, data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	_, genSpan := otel.Tracer("").Start(ctx, "chainbind.Compiler.generate")
	source, err := generate.Source(classified.Contract, gctx)
	genSpan.End()
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "generating binding")
	}

	return &Result{
		Source:      source,
		Contract:    classified.Contract,
		Diagnostics: classified.Diagnostics,
	}, nil
}

func (c *Compiler) classify(ctx context.Context, data []byte) (*Classified, error) {
	digest := Digest(data)
	if c.cache != nil {
		if classified, ok := c.cache.Get(ctx, digest); ok {
			log.Debug().Str("digest", digest).Msg("classified contract cached")
			return classified, nil
		}
	}

	_, span := otel.Tracer("").Start(ctx, "chainbind.Compiler.classify")
	defer span.End()

	decls, err := abi.Extract(data)
	if err != nil {
		return nil, errors.Wrap(err, "extracting declarations")
	}

	model, diagnostics, err := abi.Classify(decls)
	if err != nil {
		return nil, errors.Wrap(err, "classifying declarations")
	}

	classified := &Classified{
		Contract:    model,
		Diagnostics: diagnostics,
	}
	if c.cache != nil {
		c.cache.Put(ctx, digest, classified)
	}
	return classified, nil
}

// Run compiles every document under the configured root that matches the
// glob and writes the bindings together with the runtime package.
func (c *Compiler) Run(ctx context.Context) ([]Output, error) {
	ctx, span := otel.Tracer("").Start(ctx, "chainbind.Compiler.Run")
	defer span.End()

	inputs, err := c.discover()
	if err != nil {
		return nil, err
	}
	log.Info().Int("count", len(inputs)).Str("glob", c.cfg.Glob).Msg("found documents")

	runtimes := map[string]bool{}
	outputs := make([]Output, 0, len(inputs))
	for _, input := range inputs {
		output, err := c.compileFile(ctx, input)
		if err != nil {
			span.RecordError(err)
			return outputs, errors.Wrapf(err, "compiling %s", input)
		}

		dir := filepath.Dir(output.Path)
		if !runtimes[dir] {
			err = c.writeRuntime(dir)
			if err != nil {
				return outputs, errors.Wrapf(err, "compiling %s", input)
			}
			runtimes[dir] = true
		}
		outputs = append(outputs, *output)
	}

	return outputs, nil
}

func (c *Compiler) compileFile(ctx context.Context, input string) (*Output, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	dir := c.outDir(input)
	importPath, err := generate.ImportPath(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving import path")
	}

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	gctx := generate.Context{
		FileName:            name,
		PackageName:         c.packageName(dir),
		ImportPath:          importPath,
		RelativeRuntimePath: c.cfg.RuntimeDir,
	}

	result, err := c.CompileDocument(ctx, data, gctx)
	if err != nil {
		return nil, err
	}
	for _, d := range result.Diagnostics {
		log.Warn().Str("file", input).Str("name", d.Name).Msg(d.String())
	}

	filename := generate.FileName(name)
	written, err := generate.NewWriter(dir, c.cfg.Force).Write(filename, result.Source)
	if err != nil {
		return nil, err
	}

	output := &Output{
		Input:       input,
		Path:        filepath.Join(dir, filename),
		Written:     written,
		Diagnostics: result.Diagnostics,
	}
	if written {
		log.Info().Str("file", output.Path).Msg("binding written")
	} else {
		log.Info().Str("file", output.Path).Msg("binding exists, skipped")
	}
	return output, nil
}

func (c *Compiler) writeRuntime(dir string) error {
	writer := generate.NewWriter(filepath.Join(dir, c.cfg.RuntimeDir), c.cfg.Force)
	written, err := writer.Write(contract.FileName, contract.Source)
	if err != nil {
		return errors.Wrap(err, "copying runtime")
	}
	if written {
		log.Debug().Str("dir", writer.Dir()).Msg("runtime copied")
	}
	return nil
}

// discover returns the documents below the root matching the glob, in
// lexical order.
func (c *Compiler) discover() ([]string, error) {
	pattern, err := glob.Compile(c.cfg.Glob, '/')
	if err != nil {
		return nil, errors.Wrapf(err, "invalid glob %q", c.cfg.Glob)
	}

	var inputs []string
	err = filepath.WalkDir(c.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(c.cfg.Root, path)
		if err != nil {
			return err
		}
		// A leading "**/" also covers documents directly below the root.
		rel = filepath.ToSlash(rel)
		if pattern.Match(rel) || pattern.Match("/"+rel) {
			inputs = append(inputs, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walking root")
	}
	return inputs, nil
}

func (c *Compiler) outDir(input string) string {
	switch {
	case c.cfg.OutDir == "":
		return filepath.Dir(input)
	case filepath.IsAbs(c.cfg.OutDir):
		return c.cfg.OutDir
	default:
		return filepath.Join(c.cfg.Root, c.cfg.OutDir)
	}
}

func (c *Compiler) packageName(dir string) string {
	if c.cfg.PackageName != "" {
		return c.cfg.PackageName
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return defaultPackageName
	}
	return PackageName(filepath.Base(abs))
}

// PackageName derives a package clause from a directory name.
func PackageName(dir string) string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLower(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, strings.ToLower(dir))

	if name == "" || unicode.IsDigit(rune(name[0])) || token.IsKeyword(name) {
		return defaultPackageName
	}
	return name
}

// Digest identifies a document by the sha3-256 hash of its contents.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
