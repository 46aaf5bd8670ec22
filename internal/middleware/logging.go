package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Tracef(
				" ====> [%s] %s done in %s [UA: %s]",
				r.Method, r.URL.RequestURI(), time.Since(start), r.Header.Get("User-Agent"),
			)
		})
	}
}
