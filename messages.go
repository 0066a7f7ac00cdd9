package chainbind

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/mathieupost/chainbind/abi"
	"github.com/mathieupost/chainbind/generate"
)

// Request asks for the binding of one interface description.
type Request struct {
	RequestID string
	ClientID  string

	// Name is the base name of the document; it names the contract type.
	Name     string
	Document []byte

	PackageName         string
	ImportPath          string
	RelativeRuntimePath string
}

// String returns a string representation of the request.
func (r Request) String() string {
	return fmt.Sprintf("%s %s %s(%d bytes) -> %s",
		r.RequestID, r.ClientID, r.Name, len(r.Document), r.ImportPath,
	)
}

// Context returns the generation context described by the request.
func (r *Request) Context() generate.Context {
	return generate.Context{
		FileName:            r.Name,
		PackageName:         r.PackageName,
		ImportPath:          r.ImportPath,
		RelativeRuntimePath: r.RelativeRuntimePath,
	}
}

// Response creates the response to the request.
func (r *Request) Response(ctx context.Context, source []byte, diagnostics []abi.Diagnostic, err error) *Response {
	messages := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		messages = append(messages, d.String())
	}
	return &Response{
		RequestID:   r.RequestID,
		Source:      source,
		Diagnostics: messages,
		Error:       err,
	}
}

type Response struct {
	RequestID string

	Source      []byte
	Diagnostics []string
	Error       error
}

type jsonResponse struct {
	RequestID string

	Source      []byte
	Diagnostics []string
	Error       string
}

// MarshalJSON implements json.Marshaler
func (r Response) MarshalJSON() ([]byte, error) {
	res := jsonResponse{
		RequestID:   r.RequestID,
		Source:      r.Source,
		Diagnostics: r.Diagnostics,
	}
	if r.Error != nil {
		res.Error = r.Error.Error()
	}

	data, err := json.Marshal(res)
	return data, errors.Wrap(err, "marshalling Response")
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Response) UnmarshalJSON(data []byte) error {
	var res jsonResponse
	err := json.Unmarshal(data, &res)
	if err != nil {
		return errors.Wrap(err, "unmarshalling Response")
	}

	r.RequestID = res.RequestID
	r.Source = res.Source
	r.Diagnostics = res.Diagnostics
	if res.Error != "" {
		r.Error = errors.New(res.Error)
	}
	return nil
}
