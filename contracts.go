package chainbind

import (
	"context"

	"github.com/mathieupost/chainbind/abi"
)

// Classified is the outcome of classifying one interface description.
type Classified struct {
	Contract    *abi.Contract
	Diagnostics []abi.Diagnostic
}

// Cache stores classified contracts by the digest of their document.
// Implementations hand out copies, so callers never share a model.
//
//go:generate go run github.com/vektra/mockery/v2 --name Cache --case underscore --with-expecter
type Cache interface {
	Get(ctx context.Context, digest string) (*Classified, bool)
	Put(ctx context.Context, digest string, classified *Classified)
}

// RequestHandler handles compile requests.
type RequestHandler interface {
	Handle(ctx context.Context, req *Request) *Response
}

// Publisher sends compile requests to a RequestHandler and delivers the
// response on the returned channel.
//
//go:generate go run github.com/vektra/mockery/v2 --name Publisher --case underscore --with-expecter
type Publisher interface {
	Publish(ctx context.Context, req *Request) (chan *Response, error)
}
