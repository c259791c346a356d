package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable tells the handler to skip a binder that does not
	// apply to the request, e.g. the form binder on a GET without a body.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
)
