package jwt

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v4"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type JSONWebToken struct {
	privateKey []byte
	publicKey  []byte
}

func NewJSONWebToken(privateKey, publicKey []byte) *JSONWebToken {
	return &JSONWebToken{
		privateKey: privateKey,
		publicKey:  publicKey,
	}
}

func (j *JSONWebToken) Sign(ctx context.Context, claims jwt.Claims) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(j.privateKey)
	if err != nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while signing the token")
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while signing the token")
	}

	return token, nil
}

func (j *JSONWebToken) Parse(ctx context.Context, tokenString string, claims jwt.Claims) error {
	key, err := jwt.ParseRSAPublicKeyFromPEM(j.publicKey)
	if err != nil {
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while parsing the token")
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "invalid or expired token")
	}

	return nil
}
