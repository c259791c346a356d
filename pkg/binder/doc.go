// Package binder fills request structs from HTTP input.
//
// Each constructor returns a func(r *http.Request, v any) error suitable for
// handler.WithBinders. Binders are applied in order and each one reads only
// its own struct tag:
//
//	type SubmitRequest struct {
//		FullName string `form:"fullName"`
//		Email    string `form:"email" query:"email"`
//		All      bool   `query:"all"`
//	}
//
//	r.HandleFunc("/", handler.Wrap(submit,
//		handler.WithBinders[SubmitRequest](
//			binder.Query(), // always applies
//			binder.Form(),  // skipped for requests without a form body
//		),
//	))
//
// Form and JSON return ErrBinderNotApplicable for requests without a body of
// their media type, so one handler can serve GET and POST. A body of a
// foreign media type is an error (ErrUnsupportedMediaType) only when the
// binder is the sole one that could apply.
//
// Supported field types are string, the signed integers, bool and pointers to
// them. Fields without a tag are bound by their lower-cased name; `-` skips a
// field. Values are bound verbatim: no trimming or normalisation happens here,
// so validation sees exactly what the user typed.
package binder
