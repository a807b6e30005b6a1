package middlewares

import (
	"net/http"

	"backoffice/src/repositories"
	"backoffice/src/utils"

	"github.com/go-chi/jwtauth"
)

// ActiveUser resolves the token subject to a user record and rejects requests
// from unknown or deactivated users. It runs after jwtauth's Verifier and
// Authenticator, so the token itself is already valid here.
func ActiveUser(users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				utils.WriteError(w, utils.Unauthorized("could not validate credentials"))
				return
			}

			email, _ := claims["sub"].(string)
			if email == "" {
				utils.WriteError(w, utils.Unauthorized("could not validate credentials"))
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				utils.WriteError(w, utils.InternalServerError(err.Error()))
				return
			}
			if user == nil {
				utils.WriteError(w, utils.Unauthorized("could not validate credentials"))
				return
			}
			if !user.IsActive {
				utils.WriteError(w, utils.BadRequest("inactive user"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
