package middleware

import (
	"net/http"
	"strings"

	gojwt "github.com/golang-jwt/jwt/v4"

	"github.com/aleguimas/promotores/internal/pkg/jwt"
	"github.com/aleguimas/promotores/internal/pkg/session"
	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/response"
	"github.com/aleguimas/promotores/pkg/status"
)

type CustomerSession struct {
	jsonWebToken *jwt.JSONWebToken
	session      session.Session
}

func NewCustomerSessionMiddleware(jsonWebToken *jwt.JSONWebToken, sess session.Session) *CustomerSession {
	return &CustomerSession{
		jsonWebToken: jsonWebToken,
		session:      sess,
	}
}

// Verify authenticates the bearer token, loads the client's session and
// attaches the account to the request context.
func (m *CustomerSession) Verify(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authorization := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || token == "" {
			response.JSON(w, http.StatusUnauthorized, response.RESTEnvelope{
				Status:  status.UNAUTHORIZED,
				Message: "missing bearer token",
			})

			return
		}

		claims := &gojwt.RegisteredClaims{}
		if err := m.jsonWebToken.Parse(ctx, token, claims); err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		account, err := m.session.Get(ctx, claims.Subject)
		if err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		next(w, r.WithContext(session.SetAccountToCtx(ctx, account)))
	}
}
