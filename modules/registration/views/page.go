package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/modules/registration"
)

const (
	bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	fontAwesome  = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"
	datastarJS   = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"
)

func layout(title string, body func(h *html)) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", bootstrapCSS)
		h.raw(`><link rel="stylesheet"`)
		h.attr("href", fontAwesome)
		h.raw(`><script type="module"`)
		h.attr("src", datastarJS)
		h.raw(`></script></head><body><main class="container py-5">`)
		body(h)
		h.raw(`<div id="toast-container" class="position-fixed top-0 end-0 p-3"></div>`)
		h.raw(`</main></body></html>`)
	})
}

// Page renders the full registration page.
func (v Views) Page(p registration.PageParams) templ.Component {
	return layout("Sign up", func(h *html) {
		h.raw(`<div class="row justify-content-center"><div class="col-md-10 col-lg-6 col-xl-5">`)
		h.raw(`<p class="text-center h1 fw-bold mb-5 mx-1 mx-md-4 mt-4">Sign up</p>`)
		h.raw(`<div`)
		h.attr("id", registration.NoticeID)
		h.raw(`>`)
		if p.Notice != nil {
			h.component(Success(*p.Notice))
		}
		h.raw(`</div>`)
		h.component(v.Form(p.Form))
		h.raw(`</div></div>`)
	})
}

// ErrorPage renders a full page for errors on regular requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return layout("Error "+strconv.Itoa(p.StatusCode), func(h *html) {
		h.raw(`<div class="alert alert-danger" role="alert"><h1 class="h4">`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p class="small text-muted">Request ID: `)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		if p.RetryURL != "" {
			h.raw(`<a class="btn btn-outline-danger"`)
			h.attr("href", p.RetryURL)
			h.raw(`>Try again</a>`)
		}
		h.raw(`</div>`)
	})
}

var toastClass = map[string]string{
	"error":   "alert-danger",
	"warning": "alert-warning",
	"info":    "alert-info",
}

// ErrorToast renders a dismissible notification for DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *html) {
		class, ok := toastClass[p.Type]
		if !ok {
			class = "alert-danger"
		}
		h.raw(`<div`)
		h.attr("class", "alert "+class+" alert-dismissible")
		h.attr("role", "alert")
		h.raw(`>`)
		h.text(p.Message)
		if p.RequestID != "" {
			h.raw(` <small class="text-muted">(`)
			h.text(p.RequestID)
			h.raw(`)</small>`)
		}
		h.raw(`<button type="button" class="btn-close" aria-label="Close" data-on-click="el.parentElement.remove()"></button></div>`)
	})
}
