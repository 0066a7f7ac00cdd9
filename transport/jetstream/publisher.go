package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/log"
)

var _ chainbind.Publisher = (*Publisher)(nil)

// Publisher sends compile requests to the COMPILE stream and receives the
// responses on its own subject of the CLIENT stream.
type Publisher struct {
	jetstream        jetstream.JetStream
	id               string
	responseChannels sync.Map
}

func NewPublisher(ctx context.Context, jetstream jetstream.JetStream) (*Publisher, error) {
	id := uuid.NewString()
	id = id[len(id)-12:]

	d := &Publisher{
		id:               id,
		jetstream:        jetstream,
		responseChannels: sync.Map{},
	}

	err := initStreams(ctx, jetstream)
	if err != nil {
		return nil, err
	}
	err = d.initConsumer(ctx)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Publisher) Publish(ctx context.Context, call *chainbind.Request) (chan *chainbind.Response, error) {
	originalCtx := ctx
	ctx, span := otel.Tracer("").Start(ctx, "jetstream.Publisher.Publish")
	defer span.End()

	// Marshal the message
	payload, err := json.Marshal(call)
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}

	// Setup the channel to which the response will be sent.
	responseChan := make(chan *chainbind.Response, 1)
	d.responseChannels.Store(call.RequestID, responseChan)

	// Create nats message
	msg := nats.NewMsg(SUBJECT_COMPILE)
	msg.Header.Set(HEADER_KEY_CLIENT_ID, d.id)
	msg.Data = payload

	// Inject the trace context into the message header.
	propagator := propagation.TraceContext{}
	carrier := propagation.HeaderCarrier(msg.Header)
	propagator.Inject(originalCtx, carrier)

	// Publish the message to the COMPILE stream.
	_, err = d.jetstream.PublishMsg(ctx, msg)
	if err != nil {
		d.responseChannels.Delete(call.RequestID)
		return nil, errors.Wrap(err, "publish message")
	}

	return responseChan, nil
}

func (d *Publisher) initConsumer(ctx context.Context) error {
	log.Debug().Str("id", d.id).Msg("Publisher.initConsumer")
	consumer, err := d.jetstream.CreateOrUpdateConsumer(
		ctx,
		STREAM_NAME_CLIENT,
		jetstream.ConsumerConfig{
			Durable:       "Client-" + d.id,
			AckPolicy:     jetstream.AckExplicitPolicy,
			FilterSubject: fmt.Sprintf("%s.%s", STREAM_NAME_CLIENT, d.id),
		},
	)
	if err != nil {
		return errors.Wrap(err, "create consumer")
	}

	consCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		// Acknowledge the response
		err := msg.Ack()
		if err != nil {
			log.Error().Err(err).Msg("acknowledge response")
		}

		// Unmarshal the response
		response := &chainbind.Response{}
		err = json.Unmarshal(msg.Data(), response)
		if err != nil {
			log.Error().Err(err).Bytes("data", msg.Data()).Msg("unmarshal response")
			return
		}

		d.handleResponse(response)
	})
	if err != nil {
		return errors.Wrap(err, "init message consumer")
	}

	go func() {
		<-ctx.Done()
		consCtx.Stop()
	}()

	return nil
}

func (d *Publisher) handleResponse(response *chainbind.Response) {
	c, ok := d.responseChannels.LoadAndDelete(response.RequestID)
	if !ok {
		log.Warn().Str("request_id", response.RequestID).Msg("response without request")
		return
	}

	responseChan := c.(chan *chainbind.Response)
	responseChan <- response
}
