package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
)

var (
	errNotSupportedMethod = errorx.New(errorx.BadRequest, "Not supported method")
	errBadRequest         = errorx.New(errorx.BadRequest, "Cannot bind the request")
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

// state carries the request outcome to after-middlewares and closers. It is
// addressable through the context so writes survive context derivation.
type stateKey struct{}

type state struct {
	resp any
	err  error
}

func withState(ctx context.Context) context.Context {
	return context.WithValue(ctx, stateKey{}, &state{})
}

func stateFrom(ctx context.Context) *state {
	s, _ := ctx.Value(stateKey{}).(*state)
	return s
}

func setResponse(ctx context.Context, resp any) {
	if s := stateFrom(ctx); s != nil {
		s.resp = resp
	}
}

func setError(ctx context.Context, err error) {
	if s := stateFrom(ctx); s != nil {
		s.err = err
	}
}

// Response returns the successful response object, if any. Only meaningful
// in after-middlewares and closers.
func Response(ctx context.Context) any {
	if s := stateFrom(ctx); s != nil {
		return s.resp
	}
	return nil
}

// Error returns the error the request finished with, if any.
func Error(ctx context.Context) error {
	if s := stateFrom(ctx); s != nil {
		return s.err
	}
	return nil
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, resp any) {
	if err := writeJSON(w, newResponse(resp)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	setError(ctx, err)
	if werr := writeJSON(w, newErrorResponse(err)); werr != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", werr)
	}
}

func writeJSON(w http.ResponseWriter, resp any) error {
	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
