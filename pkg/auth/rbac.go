package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Permission is a resource/action pair granted to a role.
type Permission struct {
	Resource    string
	Action      string
	Description string
}

// RBAC provides role-based access control functionality.
type RBAC struct {
	mu          sync.RWMutex
	permissions map[string]map[string][]string // role -> resource -> actions
}

// NewRBAC creates a new RBAC instance with default permissions.
func NewRBAC() *RBAC {
	rbac := &RBAC{
		permissions: make(map[string]map[string][]string),
	}
	for role, perms := range DefaultPolicies() {
		for _, perm := range perms {
			rbac.AddPermission(role, perm.Resource, perm.Action)
		}
	}
	return rbac
}

// CheckPermission checks if a role has permission to perform an action on a resource.
func (r *RBAC) CheckPermission(role, resource, action string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if resourcePerms, ok := r.permissions[role]; ok {
		for _, a := range resourcePerms[resource] {
			if a == action {
				return true
			}
		}
	}
	return false
}

// CheckPermissions checks if any of the roles have permission to perform an action on a resource.
func (r *RBAC) CheckPermissions(roles []string, resource, action string) bool {
	for _, role := range roles {
		if r.CheckPermission(role, resource, action) {
			return true
		}
	}
	return false
}

// GetRolePermissions returns all permissions for a role.
func (r *RBAC) GetRolePermissions(role string) map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	perms, ok := r.permissions[role]
	if !ok {
		return nil
	}
	// Return a copy to prevent modification
	result := make(map[string][]string, len(perms))
	for resource, actions := range perms {
		result[resource] = append([]string{}, actions...)
	}
	return result
}

// AddPermission adds a permission to a role.
func (r *RBAC) AddPermission(role, resource, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.permissions[role]; !ok {
		r.permissions[role] = make(map[string][]string)
	}
	for _, a := range r.permissions[role][resource] {
		if a == action {
			return
		}
	}
	r.permissions[role][resource] = append(r.permissions[role][resource], action)
}

// RemovePermission removes a permission from a role.
func (r *RBAC) RemovePermission(role, resource, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions, ok := r.permissions[role][resource]
	if !ok {
		return
	}
	kept := actions[:0]
	for _, a := range actions {
		if a != action {
			kept = append(kept, a)
		}
	}
	r.permissions[role][resource] = kept
}

// PolicyEnforcer provides policy-based access control on top of any RBAC implementation.
type PolicyEnforcer struct {
	rbac RBACInterface
}

// NewPolicyEnforcer creates a new policy enforcer.
func NewPolicyEnforcer(rbac RBACInterface) *PolicyEnforcer {
	return &PolicyEnforcer{rbac: rbac}
}

// Enforce checks if the given roles satisfy the permission requirement.
func (p *PolicyEnforcer) Enforce(roles []string, resource, action string) error {
	if !p.rbac.CheckPermissions(roles, resource, action) {
		return fmt.Errorf("permission denied: %s:%s", resource, action)
	}
	return nil
}

// EnforceAny checks if the given roles satisfy any of the permission requirements.
func (p *PolicyEnforcer) EnforceAny(roles []string, permissions ...Permission) error {
	for _, perm := range permissions {
		if p.rbac.CheckPermissions(roles, perm.Resource, perm.Action) {
			return nil
		}
	}

	permStrs := make([]string, 0, len(permissions))
	for _, perm := range permissions {
		permStrs = append(permStrs, fmt.Sprintf("%s:%s", perm.Resource, perm.Action))
	}
	return fmt.Errorf("permission denied: requires any of [%s]", strings.Join(permStrs, ", "))
}

// ResourceOwnership defines ownership rules for resources.
type ResourceOwnership struct {
	Resource   string // RBAC resource whose admin action bypasses ownership
	AllowAdmin bool   // Whether admins can bypass ownership checks
}

// ErrNotOwner is returned by CheckOwnership when neither ownership nor admin rights apply.
var ErrNotOwner = errors.New("permission denied: not the resource owner")

// CheckOwnership verifies that principal owns a resource, or holds the admin
// action on the resource when ownership.AllowAdmin is set.
func (p *PolicyEnforcer) CheckOwnership(principal Principal, ownerID string, ownership ResourceOwnership) error {
	if principal.UserID != "" && principal.UserID == ownerID {
		return nil
	}

	if ownership.AllowAdmin && p.rbac.CheckPermissions(principal.Roles, ownership.Resource, ActionAdmin) {
		return nil
	}

	return ErrNotOwner
}

// DefaultPolicies returns the role -> permissions table the service starts with.
func DefaultPolicies() map[string][]Permission {
	all := []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionAdmin}
	resources := []string{ResourceMedia, ResourceCrew, ResourceCatalog, ResourceLike, ResourceReview, ResourceUser}

	admin := make([]Permission, 0, len(all)*len(resources))
	for _, resource := range resources {
		for _, action := range all {
			admin = append(admin, Permission{Resource: resource, Action: action})
		}
	}

	return map[string][]Permission{
		RoleAdmin: admin,
		RoleUser: {
			// Updates and deletes on owned records are decided by ownership.
			{Resource: ResourceMedia, Action: ActionRead},
			{Resource: ResourceMedia, Action: ActionCreate},
			{Resource: ResourceCrew, Action: ActionRead},
			{Resource: ResourceCrew, Action: ActionCreate},
			{Resource: ResourceCatalog, Action: ActionRead},
			{Resource: ResourceCatalog, Action: ActionCreate},
			{Resource: ResourceLike, Action: ActionRead},
			{Resource: ResourceLike, Action: ActionCreate},
			{Resource: ResourceReview, Action: ActionRead},
			{Resource: ResourceReview, Action: ActionCreate},
			{Resource: ResourceUser, Action: ActionRead},
			{Resource: ResourceUser, Action: ActionCreate},
		},
		RoleGuest: {
			{Resource: ResourceMedia, Action: ActionRead},
			{Resource: ResourceCrew, Action: ActionRead},
			{Resource: ResourceCatalog, Action: ActionRead},
			{Resource: ResourceLike, Action: ActionRead},
			{Resource: ResourceReview, Action: ActionRead},
		},
	}
}
