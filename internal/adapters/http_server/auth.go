package httpserver

import (
	"net/http"

	"wander_wave/internal/adapters/observability"
	"wander_wave/internal/auth"
)

// sessionCookie is the cookie carrying the signed session token.
const sessionCookie = "token"

// RequireToken rejects requests without a valid session cookie and attaches
// the decoded identity to the request context. Authorization (ownership)
// stays with the handlers; this middleware only authenticates.
func RequireToken(m *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(sessionCookie)
			if err != nil || c.Value == "" {
				observability.ObserveAuthFailure("missing_token")
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "unauthorized access")
				return
			}
			id, err := m.Verify(c.Value)
			if err != nil {
				observability.ObserveAuthFailure("bad_token")
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "unauthorized access")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

// setSessionCookie applies the environment-dependent security attributes:
// cross-site delivery (SameSite=None + Secure) in prod, strict in dev so the
// cookie works over plain localhost HTTP.
func setSessionCookie(w http.ResponseWriter, token string, prod bool) {
	c := &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   prod,
		SameSite: http.SameSiteStrictMode,
	}
	if prod {
		c.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, c)
}

func clearSessionCookie(w http.ResponseWriter, prod bool) {
	c := &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   prod,
		SameSite: http.SameSiteStrictMode,
	}
	if prod {
		c.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, c)
}
