package jetstream

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/propagation"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/log"
)

// Consumer serves compile requests from the COMPILE stream.
type Consumer struct {
	jetstream jetstream.JetStream
	handler   chainbind.RequestHandler
}

func NewConsumer(
	ctx context.Context,
	jetstream jetstream.JetStream,
	handler chainbind.RequestHandler,
) (*Consumer, error) {
	consumer := &Consumer{
		jetstream: jetstream,
		handler:   handler,
	}

	err := initStreams(ctx, jetstream)
	if err != nil {
		return nil, err
	}
	err = consumer.initConsumer(ctx)
	if err != nil {
		return nil, err
	}

	return consumer, nil
}

func (r *Consumer) initConsumer(ctx context.Context) error {
	consumer, err := r.jetstream.CreateOrUpdateConsumer(
		ctx,
		STREAM_NAME_COMPILE,
		jetstream.ConsumerConfig{
			Durable:   CONSUMER_NAME_COMPILE,
			AckPolicy: jetstream.AckExplicitPolicy,
		},
	)
	if err != nil {
		return errors.Wrap(err, "create consumer")
	}
	log.Debug().Str("consumer", consumer.CachedInfo().Name).Msg("Consumer.initConsumer")

	consCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		go r.handle(ctx, msg)
	})
	if err != nil {
		return errors.Wrap(err, "execute consumer")
	}

	go func() {
		<-ctx.Done()
		consCtx.Stop()
	}()

	return nil
}

func (r *Consumer) handle(ctx context.Context, msg jetstream.Msg) {
	clientID := msg.Headers().Get(HEADER_KEY_CLIENT_ID)

	// Unmarshal the request.
	var call chainbind.Request
	err := json.Unmarshal(msg.Data(), &call)
	if err != nil {
		log.Error().Err(err).Bytes("data", msg.Data()).Msg("unmarshal request")
		if err := msg.Term(); err != nil {
			log.Error().Err(err).Msg("terminate request")
		}
		return
	}

	// Acknowledge the request
	err = msg.Ack()
	if err != nil {
		log.Error().Err(err).Str("request_id", call.RequestID).Msg("acknowledge request")
	}

	// Extract the trace context from the message header.
	propagator := propagation.TraceContext{}
	carrier := propagation.HeaderCarrier(msg.Headers())
	ctx = propagator.Extract(ctx, carrier)

	// Handle the request.
	response := r.handler.Handle(ctx, &call)

	// Marshal the response.
	data, err := json.Marshal(response)
	if err != nil {
		log.Error().Err(err).Str("request_id", response.RequestID).Msg("marshal response")
		return
	}

	// Send back to the caller.
	subject := STREAM_NAME_CLIENT + "." + clientID
	res := nats.NewMsg(subject)
	res.Data = data
	_, err = r.jetstream.PublishMsg(ctx, res)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Consumer.handle publish")
	}
}
