// Package handler provides type-safe HTTP request handling for the registration
// form service.
//
// Handlers are functions that receive an already bound request value and
// return a Response:
//
//	type SubmitRequest struct {
//		Email string `form:"email"`
//	}
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		return handler.Templ(views.Success(views.SuccessParams{Name: req.Email}))
//	}
//
//	r.HandleFunc("/", handler.Wrap(submit,
//		handler.WithBinders[SubmitRequest](binder.Query(), binder.Form()),
//	))
//
// # Responses
//
// Templ, TemplPartial and TemplMulti render templ components. For DataStar
// requests (see IsDataStar) they stream element patches over SSE; for regular
// requests they write HTML. JSON and JSONError write the standard JSON envelope.
// WithStatus overrides the status code of regular responses, e.g. 422 for a
// form re-rendered with validation messages.
//
// # Errors
//
// Binding errors are reported joined with ErrBadRequest. NewErrorHandler logs
// them with the request id and renders an error page or, for DataStar requests,
// a toast. Only HTTPError keys reach the client; other errors are shown as a
// generic message.
package handler
