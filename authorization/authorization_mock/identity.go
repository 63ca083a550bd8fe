package authorization_mock

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pdcgo/site_ledger_service/authorization"
)

type IdentityMock struct {
	ID   string
	Role authorization.Role
}

// IdentityID implements authorization.Identity.
func (i *IdentityMock) IdentityID() string {
	return i.ID
}

// GetRole implements authorization.Identity.
func (i *IdentityMock) GetRole() authorization.Role {
	return i.Role
}

func Admin() *IdentityMock {
	return &IdentityMock{ID: "admin-1", Role: authorization.RoleAdmin}
}

func SiteManager() *IdentityMock {
	return &IdentityMock{ID: "manager-1", Role: authorization.RoleSiteManager}
}

func Viewer() *IdentityMock {
	return &IdentityMock{ID: "viewer-1", Role: authorization.RoleViewer}
}

// SignToken issues the kind of token the identity service hands out.
func SignToken(secret string, identity authorization.Identity, ttl time.Duration) string {
	claims := authorization.Claims{
		UserID: identity.IdentityID(),
		Role:   identity.GetRole(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}

	return token
}
