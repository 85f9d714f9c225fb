package utils

import (
	"net/http"

	"github.com/andrewpaige1/nodecanvas-api/middleware"
)

// SessionSubject returns the anonymous session subject for the request, or
// "" when no session resolved. Callers treat the empty subject as "show
// nothing", never as an error.
func SessionSubject(r *http.Request) string {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		return ""
	}
	return subject
}
