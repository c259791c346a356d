package handler

import "net/http"

// statusResponse forces a status code on a wrapped response.
type statusResponse struct {
	code int
	next Response
}

// Render applies the status to regular requests only. DataStar streams must
// answer 200 for the browser to apply patches.
func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return s.next.Render(w, r)
	}
	return s.next.Render(&statusWriter{ResponseWriter: w, code: s.code}, r)
}

// WithStatus renders resp with the given status code, e.g. 422 for a form
// re-rendered with validation messages.
func WithStatus(code int, resp Response) Response {
	return statusResponse{code: code, next: resp}
}

// statusWriter sends the forced status just before the first body write so
// headers set by the wrapped response still go out.
type statusWriter struct {
	http.ResponseWriter
	code  int
	wrote bool
}

func (s *statusWriter) WriteHeader(code int) {
	if s.wrote {
		return
	}
	s.wrote = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusWriter) Write(b []byte) (int, error) {
	if !s.wrote {
		s.WriteHeader(s.code)
	}
	return s.ResponseWriter.Write(b)
}
