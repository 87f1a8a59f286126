package middleware

import (
	"errors"
	"net/http"

	. "postshare/pkg/common"
	"postshare/pkg/logger"
	"postshare/pkg/sessions"
	"postshare/pkg/user"
)

type (
	ITokenVerifier interface {
		UserFromToken(string) (*user.User, error)
	}
	Auth struct {
		Tokens ITokenVerifier
	}
)

func NewAuthMiddleware(tv ITokenVerifier) *Auth {
	return &Auth{
		Tokens: tv,
	}
}

// Authenticate rejects requests without a valid bearer token and puts the
// token identity into the request context.
func (auth Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authUser, err := auth.Tokens.UserFromToken(r.Header.Get("Authorization"))
		if errors.Is(err, sessions.ErrNoToken) {
			WriteErr(w, AuthRequired())
			return
		}
		if err != nil {
			logger.Log(r.Context()).Infof("auth: rejected token: %v", err)
			WriteErr(w, InvalidToken())
			return
		}

		ctx := sessions.WithAuthUser(r.Context(), authUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CheckAdmin only lets through identities flagged as admin. It must run after Authenticate.
func CheckAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authUser, err := sessions.GetAuthUser(r.Context())
		if err != nil || !authUser.IsAdmin {
			WriteErr(w, AdminRequired())
			return
		}
		next.ServeHTTP(w, r)
	})
}
