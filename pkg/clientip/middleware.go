package clientip

import "net/http"

// Middleware resolves the client address with FromRequest and stores it in
// the request context. Pass no headers when the server is not behind a proxy;
// forwarding headers are trivially spoofed by clients.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, headers...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
