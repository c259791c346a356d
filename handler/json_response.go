package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the envelope of every JSON body: data on success, error
// otherwise.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed JSON request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON answers 200 with v as data.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError answers with the status and key of an HTTPError found in err's
// chain, or 500 "internal_error" with the error text.
func JSONError(err error) Response {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return jsonResponse{
			status: httpErr.Code,
			body:   JSONResponse{Error: &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}},
		}
	}
	return jsonResponse{
		status: http.StatusInternalServerError,
		body:   JSONResponse{Error: &ErrorDetail{Code: "internal_error", Message: err.Error()}},
	}
}
