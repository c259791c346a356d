package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/regform/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
//
//	func (s *Service) submit(ctx handler.Context, req Form) handler.Response {
//		return handler.Templ(s.views.Form(FormParams{Values: req}))
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself to the client. A returned error goes to the
// ErrorHandler of the wrapping route.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes part of a request into v. Returning binder.ErrBinderNotApplicable
// lets the next binder try.
type Bind func(r *http.Request, v any) error

// ErrorHandler answers a request that failed to bind or render.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option[R any] func(*route[R])

type route[R any] struct {
	binders []Bind
	onError ErrorHandler
}

// WithBinders appends binders; they run in order against the same value, so a
// later binder overrides fields set by an earlier one.
func WithBinders[R any](binders ...Bind) Option[R] {
	return func(rt *route[R]) {
		rt.binders = append(rt.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text error handler. nil is ignored.
func WithErrorHandler[R any](h ErrorHandler) Option[R] {
	return func(rt *route[R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

// plainError writes HTTPError keys with their status and anything else as 500.
func plainError(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap turns h into an http.HandlerFunc. Binding failures reach the error
// handler joined with ErrBadRequest.
func Wrap[R any](h HandlerFunc[R], opts ...Option[R]) http.HandlerFunc {
	rt := &route[R]{onError: plainError}
	for _, opt := range opts {
		opt(rt)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range rt.binders {
			err := bind(r, &req)
			if errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			if err != nil {
				rt.onError(ctx, errors.Join(ErrBadRequest, err))
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			rt.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			rt.onError(ctx, err)
		}
	}
}
