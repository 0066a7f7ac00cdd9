package chainbind

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/mathieupost/chainbind/log"
)

var _ RequestHandler = (*Executor)(nil)

// Executor serves compile requests with a Compiler.
type Executor struct {
	compiler *Compiler
}

func NewExecutor(compiler *Compiler) *Executor {
	w := &Executor{
		compiler: compiler,
	}

	return w
}

func (w *Executor) Handle(ctx context.Context, req *Request) *Response {
	ctx, span := otel.Tracer("").Start(ctx, "chainbind.Executor.Handle")
	defer span.End()

	ctx = ContextWithRequestID(ctx, req.RequestID)
	log.Debug().Str("request", req.String()).Msg("Executor.Handle")

	result, err := w.compiler.CompileDocument(ctx, req.Document, req.Context())
	if err != nil {
		log.Warn().Err(err).Str("request_id", req.RequestID).Msg("compile request failed")
		return req.Response(ctx, nil, nil, err)
	}

	return req.Response(ctx, result.Source, result.Diagnostics, nil)
}
