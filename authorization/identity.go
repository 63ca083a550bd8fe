package authorization

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleSiteManager Role = "site_manager"
	RoleViewer      Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSiteManager, RoleViewer:
		return true
	}
	return false
}

type Action string

const (
	Read   Action = "read"
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

// Identity is the principal performing an operation.
type Identity interface {
	IdentityID() string
	GetRole() Role
}

type Entity interface {
	GetEntityID() string
}

type CheckPermission struct {
	Actions []Action
}

type CheckPermissionGroup map[Entity]*CheckPermission

// rolePolicy lists the actions each role may take on every ledger entity.
var rolePolicy = map[Role][]Action{
	RoleAdmin:       {Read, Create, Update, Delete},
	RoleSiteManager: {Read, Create, Update},
	RoleViewer:      {Read},
}

func Allowed(role Role, action Action) bool {
	for _, act := range rolePolicy[role] {
		if act == action {
			return true
		}
	}
	return false
}

type PermissionError struct {
	IdentityID string
	Role       Role
	Missing    []string
}

func (p *PermissionError) Error() string {
	return fmt.Sprintf("%s (%s) not permitted to %s", p.IdentityID, p.Role, strings.Join(p.Missing, ", "))
}

func HasPermission(identity Identity, perms CheckPermissionGroup) error {
	if identity == nil || identity.IdentityID() == "" {
		return ErrUnauthenticated
	}

	missing := []string{}
	for entity, perm := range perms {
		for _, act := range perm.Actions {
			if !Allowed(identity.GetRole(), act) {
				missing = append(missing, fmt.Sprintf("%s %s", act, entity.GetEntityID()))
			}
		}
	}

	if len(missing) != 0 {
		sort.Strings(missing)
		return &PermissionError{
			IdentityID: identity.IdentityID(),
			Role:       identity.GetRole(),
			Missing:    missing,
		}
	}

	return nil
}

// AuthIdentity chains permission checks on one resolved identity.
type AuthIdentity interface {
	HasPermission(perms CheckPermissionGroup) AuthIdentity
	Identity() Identity
	Err() error
}

type authIdentityImpl struct {
	identity Identity
	err      error
}

func NewAuthIdentity(identity Identity) AuthIdentity {
	return &authIdentityImpl{
		identity: identity,
	}
}

func unauthenticated(err error) AuthIdentity {
	return &authIdentityImpl{
		err: fmt.Errorf("%w: %s", ErrUnauthenticated, err.Error()),
	}
}

// HasPermission implements AuthIdentity.
func (a *authIdentityImpl) HasPermission(perms CheckPermissionGroup) AuthIdentity {
	if a.err != nil {
		return a
	}

	a.err = HasPermission(a.identity, perms)
	return a
}

// Identity implements AuthIdentity.
func (a *authIdentityImpl) Identity() Identity {
	return a.identity
}

// Err implements AuthIdentity.
func (a *authIdentityImpl) Err() error {
	return a.err
}
