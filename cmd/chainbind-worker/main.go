package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/config"
	"github.com/mathieupost/chainbind/log"
	"github.com/mathieupost/chainbind/storage/memory"
	"github.com/mathieupost/chainbind/tracing"
	transport "github.com/mathieupost/chainbind/transport/jetstream"
)

var (
	configFile    string
	natsURL       string
	traceEndpoint string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:           "chainbind-worker",
	Short:         "Serve compile requests from NATS JetStream",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.StringVar(&natsURL, "nats", config.DefaultNatsURL, "NATS server URL")
	flags.StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP/HTTP collector endpoint")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("chainbind-worker failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.SetLogger(log.Console(level))

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("nats") {
		cfg.Nats.URL = natsURL
	}
	if cmd.Flags().Changed("trace-endpoint") {
		cfg.Tracing.Endpoint = traceEndpoint
	}

	shutdown, err := tracing.Install(cfg.Tracing.Endpoint, cfg.Tracing.ServiceName+"-worker")
	if err != nil {
		return err
	}
	defer shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return errors.Wrap(err, "connecting to nats")
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return errors.Wrap(err, "creating jetstream context")
	}

	compiler := chainbind.NewCompiler(cfg, memory.NewCache())
	_, err = transport.NewConsumer(ctx, js, chainbind.NewExecutor(compiler))
	if err != nil {
		return err
	}

	log.Info().Str("nats", cfg.Nats.URL).Msg("worker started")
	<-ctx.Done()
	log.Info().Msg("worker stopped")
	return nil
}
