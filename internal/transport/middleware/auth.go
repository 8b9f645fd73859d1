package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/dewiktionary/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Auth requires a valid bearer token and stores its subject in the context.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="dewiktionary"`)
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			subject, err := validator.ValidateToken(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="dewiktionary", error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			recordSubject(w, subject)
			ctx := ctxutil.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
