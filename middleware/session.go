package middleware

import (
	"context"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/auth"
	"github.com/andrewpaige1/nodecanvas-api/config"
)

type contextKey string

const subjectKey contextKey = "subject"

// SessionCookie carries the anonymous session token between requests.
const SessionCookie = "nc_session"

// AnonymousSession is the sign-in bootstrap. A valid session cookie attaches
// its subject to the request context; anything else mints a fresh anonymous
// subject and sets the cookie on the way out. Requests proceed either way —
// a request with no resolvable subject just sees empty data downstream.
func AnonymousSession(logger *zap.Logger, env config.Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				if subject, err := auth.VerifyToken(cookie.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
					return
				}
			}

			subject, err := gonanoid.New()
			if err != nil {
				logger.Warn("could not mint anonymous subject", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			token, err := auth.CreateToken(subject)
			if err != nil {
				logger.Warn("could not sign session token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				Domain:   env.Domain,
				Secure:   env.CookieSecure,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}

// WithSubject attaches a session subject to the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the anonymous subject attached by
// AnonymousSession, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
