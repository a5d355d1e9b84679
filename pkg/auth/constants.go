package auth

import "time"

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// Resources guarded by RBAC.
const (
	ResourceMedia   = "media"
	ResourceCrew    = "crew"
	ResourceCatalog = "catalog"
	ResourceLike    = "like"
	ResourceReview  = "review"
	ResourceUser    = "user"
)

// Actions.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionAdmin  = "admin"
)

const (
	// Token constants.
	TokenKeySize     = 32
	DefaultAccessTTL = 15 * time.Minute

	// RBAC constants.
	RequiredPolicyParts = 4
)
