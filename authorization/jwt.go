package authorization

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type Authorization interface {
	AuthIdentityFromHeader(header http.Header) AuthIdentity
	AuthIdentityFromToken(token string) AuthIdentity
}

// Claims carries the principal issued by the identity service.
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// IdentityID implements Identity.
func (c *Claims) IdentityID() string {
	return c.UserID
}

// GetRole implements Identity.
func (c *Claims) GetRole() Role {
	return c.Role
}

type jwtAuthorization struct {
	secret []byte
}

func NewJwtAuthorization(secret string) Authorization {
	return &jwtAuthorization{
		secret: []byte(secret),
	}
}

// AuthIdentityFromHeader implements Authorization.
func (j *jwtAuthorization) AuthIdentityFromHeader(header http.Header) AuthIdentity {
	raw := header.Get("Authorization")
	if raw == "" {
		return unauthenticated(errors.New("missing authorization header"))
	}

	token, found := strings.CutPrefix(raw, "Bearer ")
	if !found {
		return unauthenticated(errors.New("authorization header is not a bearer token"))
	}

	return j.AuthIdentityFromToken(strings.TrimSpace(token))
}

// AuthIdentityFromToken implements Authorization.
func (j *jwtAuthorization) AuthIdentityFromToken(token string) AuthIdentity {
	claims := Claims{}

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return unauthenticated(err)
	}

	if claims.ExpiresAt == nil {
		return unauthenticated(errors.New("token has no exp"))
	}

	if claims.UserID == "" {
		return unauthenticated(errors.New("token has no user_id"))
	}

	if !claims.Role.Valid() {
		return unauthenticated(errors.New("token has unknown role"))
	}

	return NewAuthIdentity(&claims)
}
