package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
)

const genericErrorMessage = "An error occurred processing your request"

// ErrorPageParams is the data of a full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data of a toast shown to DataStar clients.
type ErrorToastParams struct {
	Message   string
	Type      string // "warning" for 4xx, "error" for 5xx
	RequestID string
}

// ErrorHandlerConfig holds the components NewErrorHandler renders.
type ErrorHandlerConfig struct {
	// ErrorPage renders regular requests. Without it a plain text body is sent.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders DataStar requests. Without it nothing is sent.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// classify maps err to a status and a user facing message. Only HTTPError keys
// are shown; other errors may carry internals and are replaced.
func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	return http.StatusInternalServerError, genericErrorMessage
}

// NewErrorHandler logs the error with request scoped attributes, then renders
// an error page for regular requests and a toast for DataStar ones. Client
// errors log at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, msg := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		var resp Response
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			kind := "error"
			if status < http.StatusInternalServerError {
				kind = "warning"
			}
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   msg,
				Type:      kind,
				RequestID: requestid.FromContext(ctx),
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
		case IsDataStar(r):
			log.WarnContext(ctx, "no error toast configured for DataStar request")
			return
		case cfg.ErrorPage != nil:
			resp = WithStatus(status, Templ(cfg.ErrorPage(ErrorPageParams{
				Error:      msg,
				StatusCode: status,
				RequestID:  requestid.FromContext(ctx),
				RetryURL:   r.URL.Path,
			})))
		default:
			http.Error(ctx.ResponseWriter(), msg, status)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}
