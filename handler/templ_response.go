package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption tunes how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches into the element matching selector instead of the
// element with the component's own id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets the patch mode, e.g. PatchInner.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component with its patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch builds a TemplPatch for TemplMulti.
func Patch(c templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: c, Options: opts}
}

// templResponse sends patches to DataStar clients and writes page to
// everyone else.
type templResponse struct {
	patches []TemplPatch
	page    []templ.Component
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, c := range t.page {
		if err := c.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders c as HTML, or as a single patch for DataStar.
func Templ(c templ.Component, opts ...TemplOption) Response {
	return templResponse{
		patches: []TemplPatch{Patch(c, opts...)},
		page:    []templ.Component{c},
	}
}

// TemplPartial patches partial for DataStar and writes full otherwise, e.g.
// the form fragment versus the whole page.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{
		patches: []TemplPatch{Patch(partial, opts...)},
		page:    []templ.Component{full},
	}
}

// TemplMulti sends every patch to DataStar in order. Regular requests get the
// components concatenated.
func TemplMulti(patches ...TemplPatch) Response {
	page := make([]templ.Component, 0, len(patches))
	for _, p := range patches {
		page = append(page, p.Component)
	}
	return templResponse{patches: patches, page: page}
}
