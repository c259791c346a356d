package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
)

// Mock response for testing
type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	_, err := w.Write([]byte(m.body))
	return err
}

type submitRequest struct {
	FullName string `form:"fullName"`
	All      bool   `query:"all"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("basic handler without options", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[string](func(ctx handler.Context, req string) handler.Response {
			assert.NotNil(t, ctx)
			assert.Empty(t, req)
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("applies binders in order and skips inapplicable ones", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[submitRequest](func(ctx handler.Context, req submitRequest) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: req.FullName + "|" + map[bool]string{true: "all", false: "touched"}[req.All]}
		})
		wrapped := handler.Wrap(h, handler.WithBinders[submitRequest](binder.Query(), binder.Form()))

		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/?all=true", nil))
		assert.Equal(t, "|all", rec.Body.String())

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"fullName": {"John Doe"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec = httptest.NewRecorder()
		wrapped(rec, req)
		assert.Equal(t, "John Doe|touched", rec.Body.String())
	})

	t.Run("binding error is a bad request", func(t *testing.T) {
		t.Parallel()
		called := false
		h := handler.HandlerFunc[submitRequest](func(ctx handler.Context, req submitRequest) handler.Response {
			called = true
			return mockResponse{statusCode: http.StatusOK}
		})

		var gotErr error
		wrapped := handler.Wrap(h,
			handler.WithBinders[submitRequest](binder.Form()),
			handler.WithErrorHandler[submitRequest](func(ctx handler.Context, err error) {
				gotErr = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		wrapped(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, gotErr, handler.ErrBadRequest)
		assert.ErrorIs(t, gotErr, binder.ErrUnsupportedMediaType)
	})

	t.Run("default error handler uses HTTP error status", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[submitRequest](func(ctx handler.Context, req submitRequest) handler.Response {
			return mockResponse{}
		})
		wrapped := handler.Wrap(h, handler.WithBinders[submitRequest](binder.Query()))

		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/?all=maybe", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
	})

	t.Run("render error reaches error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "render failed")
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[string](func(ctx handler.Context, req string) handler.Response {
			return nil
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrNilResponse.Error())
	})

}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "value"))
	rec := httptest.NewRecorder()
	ctx := handler.NewContext(rec, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.Equal(t, "value", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx = handler.NewContext(rec, req.WithContext(cancelCtx))
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
