package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest makes sure the request body is read to the end and
// closed once the handler is done, so the underlying connection can be
// reused instead of leaking.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if r.Body == nil {
					return
				}
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}()

			next.ServeHTTP(w, r)
		})
	}
}
