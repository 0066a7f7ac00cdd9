package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/config"
	"github.com/mathieupost/chainbind/log"
	"github.com/mathieupost/chainbind/storage/memory"
	"github.com/mathieupost/chainbind/tracing"
)

var (
	configFile    string
	force         bool
	outDir        string
	runtimeDir    string
	packageName   string
	root          string
	traceEndpoint string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "chainbind [glob]",
	Short: "Generate Go bindings for contract ABIs",
	Long: "chainbind compiles every ABI document matching the glob (default " +
		config.DefaultGlobPattern + ") into a typed Go binding and copies the runtime package next to it.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.BoolVarP(&force, "force", "f", false, "overwrite existing bindings")
	flags.StringVar(&outDir, "out-dir", "", "directory receiving all bindings (default: next to each document)")
	flags.StringVar(&runtimeDir, "runtime-dir", config.DefaultRuntimeDir, "runtime package directory below each output directory")
	flags.StringVar(&packageName, "package", "", "package name of the bindings (default: derived from the output directory)")
	flags.StringVar(&root, "root", ".", "directory the glob is matched against")
	flags.StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP/HTTP collector endpoint")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("chainbind failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.SetLogger(log.Console(level))

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	shutdown, err := tracing.Install(cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		return err
	}
	defer shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	compiler := chainbind.NewCompiler(cfg, memory.NewCache())
	outputs, err := compiler.Run(ctx)
	if err != nil {
		return err
	}

	written := 0
	for _, output := range outputs {
		if output.Written {
			written++
		}
	}
	log.Info().Int("documents", len(outputs)).Int("written", written).Msg("done")
	return nil
}

// loadConfig applies the flags that were set on top of the config file or
// the defaults.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Glob = args[0]
	}
	if flags.Changed("force") {
		cfg.Force = force
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = outDir
	}
	if flags.Changed("runtime-dir") {
		cfg.RuntimeDir = runtimeDir
	}
	if flags.Changed("package") {
		cfg.PackageName = packageName
	}
	if flags.Changed("root") {
		cfg.Root = root
	}
	if flags.Changed("trace-endpoint") {
		cfg.Tracing.Endpoint = traceEndpoint
	}

	err := cfg.Validate()
	return cfg, errors.Wrap(err, "invalid configuration")
}
