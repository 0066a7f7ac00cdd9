package channel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/propagation"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/log"
)

// Consumer serves the requests of a Publisher with a RequestHandler.
type Consumer struct {
	inbox   chan requestWithHeaders
	outbox  chan *chainbind.Response
	handler chainbind.RequestHandler

	handling sync.WaitGroup
	done     chan struct{}
}

func NewConsumer(inbox chan requestWithHeaders, outbox chan *chainbind.Response, handler chainbind.RequestHandler) *Consumer {
	s := &Consumer{
		inbox:   inbox,
		outbox:  outbox,
		handler: handler,
		done:    make(chan struct{}),
	}
	return s
}

func (w *Consumer) Start(ctx context.Context) {
	go func() {
		w.processInbox(ctx)
		w.handling.Wait()
		close(w.done)
	}()
}

// Done is closed once the consumer stopped and all its requests returned.
func (w *Consumer) Done() <-chan struct{} {
	return w.done
}

func (w *Consumer) processInbox(ctx context.Context) {
	loop := true
	for loop {
		select {
		case req := <-w.inbox:
			w.handling.Add(1)
			go func() {
				defer w.handling.Done()

				// Extract the trace context from the message header.
				propagator := propagation.TraceContext{}
				carrier := propagation.HeaderCarrier(req.headers)
				ctx := propagator.Extract(ctx, carrier)

				response := w.handler.Handle(ctx, req.Request)
				select {
				case w.outbox <- response:
				case <-ctx.Done():
					log.Debug().Str("request_id", response.RequestID).Msg("Consumer stopped, response dropped")
				}
			}()
		case <-ctx.Done():
			loop = false
		}
	}
	log.Debug().Msg("Consumer stopped")
}
