package registration

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// DOM ids shared with the views.
const (
	FormID   = "register-form"
	NoticeID = "notice"
)

// ErrorSlotID returns the id of the element holding field's message.
func ErrorSlotID(field string) string {
	return field + "-error"
}

// Views renders the registration UI.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	FieldError func(FieldErrorParams) templ.Component
	Success    func(SuccessParams) templ.Component
}

// Service serves the registration form.
type Service struct {
	rules        *validator.Ruleset
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// NewService creates the form service. A nil ruleset selects Ruleset(); any
// other ruleset must pass CheckRuleset.
func NewService(
	rules *validator.Ruleset,
	views *Views,
	log *slog.Logger,
	errorHandler handler.ErrorHandler,
) (*Service, error) {
	if rules == nil {
		rules = Ruleset()
	}
	if err := CheckRuleset(rules); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	}
	return &Service{
		rules:        rules,
		views:        views,
		log:          log.With(logger.Component("registration")),
		errorHandler: errorHandler,
	}, nil
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	// Query values prefill GET; form bodies override them on POST.
	formBinders := handler.WithBinders[Form](binder.Query(), binder.Form())
	withErrors := handler.WithErrorHandler[Form](s.errorHandler)

	r.Get("/", handler.Wrap(s.page, formBinders, withErrors))
	r.Post("/", handler.Wrap(s.submit, formBinders, withErrors))
	r.Post("/validate", handler.Wrap(s.validate, formBinders, withErrors))
	r.Post("/fill", handler.Wrap(s.fill, handler.WithErrorHandler[struct{}](s.errorHandler)))
	r.Post("/clear", handler.Wrap(s.clear, handler.WithErrorHandler[struct{}](s.errorHandler)))

	r.Post("/api/validate", handler.Wrap(s.validateJSON,
		handler.WithBinders[validator.Record](binder.JSON()),
		handler.WithErrorHandler[validator.Record](jsonErrorHandler),
	))

	return r
}

// render answers with the form fragment for DataStar and the whole page
// otherwise.
func (s *Service) render(params FormParams) handler.Response {
	return handler.TemplPartial(
		s.views.Form(params),
		s.views.Page(PageParams{Form: params}),
		handler.WithTarget("#"+FormID),
	)
}

func (s *Service) page(ctx handler.Context, req Form) handler.Response {
	return s.render(FormParams{Values: req})
}

func (s *Service) submit(ctx handler.Context, req Form) handler.Response {
	res := s.rules.Validate(req.Record())
	if !res.IsValid() {
		s.log.DebugContext(ctx, "registration rejected",
			logger.Event("registration_rejected"),
			logger.InvalidFields(res.Invalid()),
			logger.Handler("submit"),
		)
		return handler.WithStatus(http.StatusUnprocessableEntity,
			s.render(FormParams{Values: req, Errors: res.Messages()}),
		)
	}

	s.log.InfoContext(ctx, "registration submitted",
		logger.Event("registration_submitted"),
		logger.Submission(req.Redacted(), FieldNames()...),
		logger.Handler("submit"),
	)

	notice := SuccessParams{FullName: req.FullName, Email: req.Email}
	empty := FormParams{Values: EmptyForm()}

	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(s.views.Form(empty), handler.WithTarget("#"+FormID)),
			handler.Patch(s.views.Success(notice), handler.WithTarget("#"+NoticeID), handler.WithPatchMode(handler.PatchInner)),
		)
	}
	return handler.Templ(s.views.Page(PageParams{Form: empty, Notice: &notice}))
}

// validate refreshes the error slots while the user types. Only fields that
// hold a value are reported unless the "all" query flag is set, so untouched
// inputs stay quiet.
func (s *Service) validate(ctx handler.Context, req Form) handler.Response {
	all := queryFlag(ctx.Request(), "all")
	rec := req.Record()

	patches := make([]handler.TemplPatch, 0, len(Inputs()))
	for _, in := range Inputs() {
		var msg string
		if all || rec.Get(in.Name) != "" {
			msg, _ = s.rules.ValidateField(rec, in.Name)
		}
		patches = append(patches, handler.Patch(
			s.views.FieldError(FieldErrorParams{Field: in.Name, Message: msg}),
			handler.WithTarget("#"+ErrorSlotID(in.Name)),
		))
	}
	return handler.TemplMulti(patches...)
}

// fill pre-fills the sample values and clears every message.
func (s *Service) fill(ctx handler.Context, _ struct{}) handler.Response {
	return s.render(FormParams{Values: SampleForm()})
}

// clear empties the form. Messages are recomputed only when the "validate"
// query flag is set.
func (s *Service) clear(ctx handler.Context, _ struct{}) handler.Response {
	params := FormParams{Values: EmptyForm()}
	if queryFlag(ctx.Request(), "validate") {
		params.Errors = s.rules.Validate(params.Values.Record()).Messages()
	}
	return s.render(params)
}

// ValidateResponse is the JSON API answer.
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func (s *Service) validateJSON(ctx handler.Context, rec validator.Record) handler.Response {
	if !binder.IsJSON(ctx.Request()) {
		return handler.JSONError(handler.ErrUnsupportedMediaType)
	}
	res := s.rules.Validate(rec)
	return handler.JSON(ValidateResponse{Valid: res.IsValid(), Errors: res.Messages()})
}

func jsonErrorHandler(ctx handler.Context, err error) {
	_ = handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

func queryFlag(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}
