package chainbind

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

// Client sends compile requests through a Publisher.
type Client struct {
	id        string
	publisher Publisher
}

func NewClient(publisher Publisher) *Client {
	return &Client{
		id:        shortID(),
		publisher: publisher,
	}
}

func (c *Client) ID() string {
	return c.id
}

// Compile publishes req and waits for its response. The returned error is
// either a transport failure or the error carried by the response.
func (c *Client) Compile(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := otel.Tracer("").Start(ctx, "chainbind.Client.Compile")
	defer span.End()

	if req.RequestID == "" {
		req.RequestID = shortID()
	}
	req.ClientID = c.id

	responses, err := c.publisher.Publish(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "publishing request")
	}

	select {
	case res := <-responses:
		if res.Error != nil {
			return res, errors.Wrap(res.Error, "compiling "+req.Name)
		}
		return res, nil
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for response")
	}
}

func shortID() string {
	id := uuid.NewString()
	return id[len(id)-12:]
}
