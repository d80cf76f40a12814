package auth

import (
	"net/http"

	"github.com/GlebRadaev/walletsync/pkg/utils"
)

type SessionChecker interface {
	Active() bool
}

// SessionMiddleware rejects requests while nobody is signed in.
func SessionMiddleware(session SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.Active() {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
