package service

import (
	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/auth"
)

// Guard decides whether a principal may mutate an entity. Callers resolve
// the entity first so a missing id fails as not found, never as forbidden.
type Guard struct {
	enforcer *auth.PolicyEnforcer
}

// NewGuard creates a guard over enforcer.
func NewGuard(enforcer *auth.PolicyEnforcer) *Guard {
	return &Guard{enforcer: enforcer}
}

// Authenticated fails when the principal carries no identity.
func (g *Guard) Authenticated(p auth.Principal) error {
	if p.IsAnonymous() {
		return domain.ErrAuthenticationRequired
	}
	return nil
}

// AuthorizeCreate checks the create permission on resource.
func (g *Guard) AuthorizeCreate(p auth.Principal, resource string) error {
	return g.authorizeAction(p, resource, auth.ActionCreate, domain.ErrUnauthorizedCreate)
}

// AuthorizeUpdate allows the owner, or a principal holding the admin action
// on resource.
func (g *Guard) AuthorizeUpdate(p auth.Principal, resource, ownerID string) error {
	return g.authorizeOwner(p, resource, ownerID, domain.ErrUnauthorizedUpdate)
}

// AuthorizeDelete is AuthorizeUpdate for deletes.
func (g *Guard) AuthorizeDelete(p auth.Principal, resource, ownerID string) error {
	return g.authorizeOwner(p, resource, ownerID, domain.ErrUnauthorizedDelete)
}

// AuthorizeAdminDelete is role gated only. Ownership is not consulted.
func (g *Guard) AuthorizeAdminDelete(p auth.Principal, resource string) error {
	return g.authorizeAction(p, resource, auth.ActionAdmin, domain.ErrUnauthorizedDelete)
}

// AuthorizeCatalogUpdate checks the update permission on unowned catalog entries.
func (g *Guard) AuthorizeCatalogUpdate(p auth.Principal) error {
	return g.authorizeAction(p, auth.ResourceCatalog, auth.ActionUpdate, domain.ErrUnauthorizedUpdate)
}

// AuthorizeCatalogDelete checks the delete permission on unowned catalog entries.
func (g *Guard) AuthorizeCatalogDelete(p auth.Principal) error {
	return g.authorizeAction(p, auth.ResourceCatalog, auth.ActionDelete, domain.ErrUnauthorizedDelete)
}

func (g *Guard) authorizeAction(p auth.Principal, resource, action string, denied error) error {
	if err := g.Authenticated(p); err != nil {
		return err
	}
	if err := g.enforcer.Enforce(p.Roles, resource, action); err != nil {
		return denied
	}
	return nil
}

func (g *Guard) authorizeOwner(p auth.Principal, resource, ownerID string, denied error) error {
	if err := g.Authenticated(p); err != nil {
		return err
	}
	ownership := auth.ResourceOwnership{Resource: resource, AllowAdmin: true}
	if err := g.enforcer.CheckOwnership(p, ownerID, ownership); err != nil {
		return denied
	}
	return nil
}
