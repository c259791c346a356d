package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/regform/modules/registration"
)

// Views renders the registration UI for a service mounted at a base path.
type Views struct {
	base string
}

// New returns the view set for a service mounted at basePath ("" or "/" for
// the root).
func New(basePath string) *registration.Views {
	v := Views{base: strings.TrimRight(basePath, "/")}
	return &registration.Views{
		Page:       v.Page,
		Form:       v.Form,
		FieldError: FieldError,
		Success:    Success,
	}
}

func (v Views) url(path string) string {
	return v.base + path
}

// post builds a DataStar action that sends the enclosing form urlencoded.
func (v Views) post(path string) string {
	return "@post('" + v.url(path) + "', {contentType: 'form'})"
}

// Form renders the registration form with one error slot per field.
func (v Views) Form(p registration.FormParams) templ.Component {
	return component(func(h *html) {
		h.raw(`<form`)
		h.attr("id", registration.FormID)
		h.attr("class", "mx-1 mx-md-4")
		h.attr("method", "post")
		h.attr("action", v.url("/"))
		h.attr("novalidate", "")
		h.attr("data-on-submit", v.post("/"))
		h.raw(`>`)

		for _, in := range registration.Inputs() {
			h.raw(`<div class="d-flex flex-row align-items-center mb-4">`)
			h.raw(`<i`)
			h.attr("class", "fas "+in.Icon+" fa-lg me-3 fa-fw")
			h.raw(`></i><div class="form-outline flex-fill mb-0"><input`)
			h.attr("id", in.Name)
			h.attr("name", in.Name)
			h.attr("type", in.Type)
			h.attr("class", "form-control")
			h.attr("placeholder", in.Placeholder)
			h.attr("value", p.Values.Value(in.Name))
			if in.Type == "tel" || in.Name == registration.FieldAge {
				h.attr("inputmode", "numeric")
			}
			h.attr("data-on-input__debounce.300ms", v.post("/validate"))
			h.attr("data-on-blur", v.post("/validate"))
			h.raw(`>`)
			h.component(FieldError(registration.FieldErrorParams{Field: in.Name, Message: p.Errors[in.Name]}))
			h.raw(`</div></div>`)
		}

		h.raw(`<div class="d-flex justify-content-start mx-4 mb-3 mb-lg-4">`)
		h.raw(`<button type="submit" class="btn btn-primary btn-lg">Register</button>`)
		h.raw(`<button type="button" class="ms-2 btn btn-secondary btn-lg"`)
		h.attr("data-on-click", "@post('"+v.url("/fill")+"')")
		h.raw(`>Edit</button>`)
		h.raw(`<button type="button" class="ms-2 btn btn-info btn-lg"`)
		h.attr("data-on-click", "@post('"+v.url("/clear")+"')")
		h.raw(`>Clear</button>`)
		h.raw(`</div></form>`)
	})
}

// FieldError renders the message slot of a field. The element is always
// present so live validation can patch it by id.
func FieldError(p registration.FieldErrorParams) templ.Component {
	return component(func(h *html) {
		h.raw(`<small`)
		h.attr("id", registration.ErrorSlotID(p.Field))
		h.attr("class", "text-danger")
		h.raw(`>`)
		h.text(p.Message)
		h.raw(`</small>`)
	})
}

// Success renders the notice shown after a valid submission.
func Success(p registration.SuccessParams) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="alert alert-success" role="status">Thanks, `)
		h.text(p.FullName)
		h.raw(`! Your registration with `)
		h.text(p.Email)
		h.raw(` was received.</div>`)
	})
}
