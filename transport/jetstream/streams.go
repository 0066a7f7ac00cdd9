package jetstream

import (
	"context"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
)

const (
	STREAM_NAME_CLIENT  = "CLIENT"
	STREAM_NAME_COMPILE = "COMPILE"

	SUBJECT_COMPILE = STREAM_NAME_COMPILE + ".request"

	HEADER_KEY_CLIENT_ID = "ClientID"

	// CONSUMER_NAME_COMPILE is shared by all workers, so each request is
	// handled once.
	CONSUMER_NAME_COMPILE = "Compiler"
)

func initStreams(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      STREAM_NAME_CLIENT,
		Subjects:  []string{STREAM_NAME_CLIENT + ".*"},
		Retention: jetstream.WorkQueuePolicy,
	})
	if err != nil {
		return errors.Wrap(err, "create client stream")
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      STREAM_NAME_COMPILE,
		Subjects:  []string{STREAM_NAME_COMPILE + ".*"},
		Retention: jetstream.WorkQueuePolicy,
	})
	if err != nil {
		return errors.Wrap(err, "create compile stream")
	}

	return nil
}
