package channel

import (
	"context"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/log"
)

var _ chainbind.Publisher = (*Publisher)(nil)

// Publisher hands compile requests to an in-process Consumer.
type Publisher struct {
	outbox           chan requestWithHeaders
	inbox            chan *chainbind.Response
	responseChannels sync.Map
	done             chan struct{}
}

type requestWithHeaders struct {
	*chainbind.Request
	headers http.Header
}

// NewPublisher returns the publisher together with the channels to pass to
// NewConsumer. It stops delivering responses when ctx is done.
func NewPublisher(ctx context.Context) (*Publisher, chan requestWithHeaders, chan *chainbind.Response) {
	d := &Publisher{
		outbox:           make(chan requestWithHeaders),
		inbox:            make(chan *chainbind.Response),
		responseChannels: sync.Map{},
		done:             make(chan struct{}),
	}
	go d.processResponses(ctx)
	return d, d.outbox, d.inbox
}

// Done is closed once the publisher stopped delivering responses.
func (d *Publisher) Done() <-chan struct{} {
	return d.done
}

func (d *Publisher) Publish(ctx context.Context, call *chainbind.Request) (chan *chainbind.Response, error) {
	ctx, span := otel.Tracer("").Start(ctx, "channel.Publisher.Publish")
	defer span.End()

	// Setup the channel to which the response will be sent. It is buffered
	// so an abandoned request does not block the response loop.
	responseChan := make(chan *chainbind.Response, 1)
	d.responseChannels.Store(call.RequestID, responseChan)

	req := requestWithHeaders{
		Request: call,
		headers: map[string][]string{},
	}

	// Inject the trace context into the message header.
	propagator := propagation.TraceContext{}
	carrier := propagation.HeaderCarrier(req.headers)
	propagator.Inject(ctx, carrier)

	select {
	case d.outbox <- req:
	case <-ctx.Done():
		d.responseChannels.Delete(call.RequestID)
		return nil, ctx.Err()
	}

	return responseChan, nil
}

func (d *Publisher) processResponses(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case response := <-d.inbox:
			d.handleResponse(response)
		case <-ctx.Done():
			return
		}
	}
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
