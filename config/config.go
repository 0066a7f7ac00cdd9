package config

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGlobPattern = "**/*.abi"
	DefaultRuntimeDir  = "contract"
	DefaultServiceName = "chainbind"
	DefaultNatsURL     = "nats://127.0.0.1:4222"
)

// Config configures document discovery and binding output.
type Config struct {
	// Root is the directory the glob is matched against.
	Root string `yaml:"root"`
	Glob string `yaml:"glob"`
	// OutDir receives all bindings. Empty writes each binding next to its
	// document. Relative paths are resolved against Root.
	OutDir string `yaml:"out_dir"`
	Force  bool   `yaml:"force"`
	// RuntimeDir is the slash separated path of the runtime package below
	// each output directory.
	RuntimeDir string `yaml:"runtime_dir"`
	// PackageName overrides the package clause derived from the output
	// directory.
	PackageName string `yaml:"package"`

	Tracing Tracing `yaml:"tracing"`
	Nats    Nats    `yaml:"nats"`
}

type Tracing struct {
	// Endpoint of the OTLP/HTTP collector. Empty disables tracing.
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

type Nats struct {
	URL string `yaml:"url"`
}

func Default() Config {
	return Config{
		Root:       ".",
		Glob:       DefaultGlobPattern,
		RuntimeDir: DefaultRuntimeDir,
		Tracing: Tracing{
			ServiceName: DefaultServiceName,
		},
		Nats: Nats{
			URL: DefaultNatsURL,
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", filename)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("root is empty")
	}
	if c.Glob == "" {
		return errors.New("glob is empty")
	}

	runtime := path.Clean(c.RuntimeDir)
	if c.RuntimeDir == "" || runtime == "." || path.IsAbs(runtime) || strings.HasPrefix(runtime, "..") {
		return errors.Errorf("runtime dir %q must be a subdirectory", c.RuntimeDir)
	}
	return nil
}
