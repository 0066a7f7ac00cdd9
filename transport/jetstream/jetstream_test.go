package jetstream

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/config"
	"github.com/mathieupost/chainbind/storage/memory"
	"github.com/mathieupost/chainbind/transport"
)

func TestCompile(t *testing.T) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	t.Cleanup(cancel)

	js := initJetStream(t, ctx)

	publisher, err := NewPublisher(ctx, js)
	require.NoError(t, err)
	client := chainbind.NewClient(publisher)

	compiler := chainbind.NewCompiler(config.Default(), memory.NewCache())
	executor := chainbind.NewExecutor(compiler)
	_, err = NewConsumer(ctx, js, executor)
	require.NoError(t, err)

	transport.IntegrationTest(t, ctx, client)
}

func initJetStream(t *testing.T, ctx context.Context) jetstream.JetStream {
	// Setup a NATS server with JetStream enabled.
	debug := false
	opts := server.Options{
		JetStream:    true,
		StoreDir:     t.TempDir(),
		Port:         server.RANDOM_PORT,
		Trace:        debug,
		TraceVerbose: debug,
		Debug:        debug,
		Logtime:      debug,
	}
	s, err := server.NewServer(&opts)
	require.NoError(t, err)
	s.ConfigureLogger()
	go s.Start()
	require.True(t, s.ReadyForConnections(10*time.Second))
	t.Cleanup(s.Shutdown)

	nc, err := nats.Connect(s.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	return js
}
