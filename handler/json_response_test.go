package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
)

func renderJSON(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/api/validate", nil)))
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("wraps data", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSON(map[string]any{"valid": true}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"valid": true}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("struct data", func(t *testing.T) {
		t.Parallel()
		data := struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors"`
		}{Valid: false, Errors: map[string]string{"age": "Please enter a valid age."}}
		w, body := renderJSON(t, handler.JSON(data))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{
			"valid":  false,
			"errors": map[string]any{"age": "Please enter a valid age."},
		}, body.Data)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(handler.ErrUnsupportedMediaType))

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "unsupported_media_type", body.Error.Code)
		assert.Equal(t, http.StatusText(http.StatusUnsupportedMediaType), body.Error.Message)
	})

	t.Run("wrapped http error", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(errors.Join(handler.ErrBadRequest, errors.New("unexpected EOF"))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "bad_request", body.Error.Code)
		assert.Equal(t, "Bad Request", body.Error.Message)
		assert.Nil(t, body.Data)
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(errors.New("boom")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_error", body.Error.Code)
		assert.Equal(t, "boom", body.Error.Message)
	})
}
