package router

import (
	"context"
	"net/http"

	"github.com/rfphub/backend/config"
	"github.com/rfphub/backend/pkg/authenticator"
	"github.com/rfphub/backend/pkg/logger"
	"github.com/rfphub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// HandlerFunc is the uniform shape of a domain operation exposed over HTTP.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc can enrich the context (auth info) or abort the request by
// returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written, for logging and
// metrics. The request outcome is available via Error and Response.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db          *gorm.DB
	cfg         config.Configs
	logger      logger.Logger
	tokenEngine authenticator.TokenEngine

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		db:          db,
		cfg:         cfg,
		logger:      logger,
		tokenEngine: authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so route groups can layer their own auth requirements.
func (r *Router) Branch() *Router {
	return &Router{
		mux:         r.mux,
		db:          r.db,
		cfg:         r.cfg,
		logger:      r.logger,
		tokenEngine: r.tokenEngine,
		befores:     append([]MiddlewareFunc{}, r.befores...),
		afters:      append([]MiddlewareFunc{}, r.afters...),
		closers:     append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) After(m MiddlewareFunc) {
	r.afters = append(r.afters, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	register(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	register(r, http.MethodPost, pattern, handler)
}

func register[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)
	closers := append([]CloserFunc{}, r.closers...)

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = withState(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		if req.Method != method {
			writeError(ctx, w, errNotSupportedMethod)
			return
		}

		for _, middleware := range befores {
			newCtx, err := middleware(ctx)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
			if newCtx != nil {
				ctx = newCtx
			}
		}

		request := new(Request)
		if err := bindRequest(req, method, request); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			writeError(ctx, w, errBadRequest)
			return
		}

		resp, err := handler(ctx, request)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		setResponse(ctx, resp)
		for _, middleware := range afters {
			if _, err := middleware(ctx); err != nil {
				xcontext.Logger(ctx).Errorf("After middleware failed: %v", err)
			}
		}

		writeSuccess(ctx, w, resp)
	})
}
