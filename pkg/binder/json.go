package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// IsJSON reports whether r declares an application/json body.
func IsJSON(r *http.Request) bool {
	return mediaTypeOf(r.Header.Get("Content-Type")) == "application/json"
}

// JSON decodes an application/json body into v. The target may be a struct or
// a map such as validator.Record. Requests of another media type are not
// applicable. A body of null is rejected: it would leave v untouched.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsJSON(r) {
			return ErrBinderNotApplicable
		}

		body := json.NewDecoder(r.Body)
		var raw json.RawMessage
		if err := body.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%w: body is null", ErrInvalidJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := body.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}
		return nil
	}
}
