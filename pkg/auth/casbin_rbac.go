package auth

import (
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// CasbinRBAC provides Casbin-based role-based access control
type CasbinRBAC struct {
	enforcer *casbin.Enforcer
	logger   interfaces.Logger
	mu       sync.RWMutex
}

// NewCasbinRBAC creates a new Casbin-based RBAC instance
func NewCasbinRBAC(modelPath, policyPath string, logger interfaces.Logger) (*CasbinRBAC, error) {
	m, err := model.NewModelFromFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	return &CasbinRBAC{
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

// NewCasbinRBACFromString creates a new Casbin-based RBAC instance from string configs.
// policyText uses the CSV policy format ("p, role, resource, action" and "g, user, role").
func NewCasbinRBACFromString(modelText, policyText string, logger interfaces.Logger) (*CasbinRBAC, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	for _, line := range strings.Split(policyText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) >= RequiredPolicyParts:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return nil, fmt.Errorf("failed to add policy %q: %w", line, err)
			}
		case parts[0] == "g" && len(parts) >= 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return nil, fmt.Errorf("failed to add grouping policy %q: %w", line, err)
			}
		}
	}

	return &CasbinRBAC{
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

// CheckPermission checks if a role has permission to perform an action on a resource
func (r *CasbinRBAC) CheckPermission(role, resource, action string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	allowed, err := r.enforcer.Enforce(role, resource, action)
	if err != nil {
		r.logger.Error("Failed to check permission",
			interfaces.Error(err),
			interfaces.String("role", role),
			interfaces.String("resource", resource),
			interfaces.String("action", action))
		return false
	}

	return allowed
}

// CheckPermissions checks if any of the roles have permission to perform an action on a resource
func (r *CasbinRBAC) CheckPermissions(roles []string, resource, action string) bool {
	for _, role := range roles {
		if r.CheckPermission(role, resource, action) {
			return true
		}
	}
	return false
}

// GetRolePermissions returns all permissions for a role
func (r *CasbinRBAC) GetRolePermissions(role string) map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	permissions := make(map[string][]string)
	policies, err := r.enforcer.GetFilteredPolicy(0, role)
	if err != nil {
		r.logger.Error("Failed to read role policies", interfaces.Error(err), interfaces.String("role", role))
		return permissions
	}

	for _, policy := range policies {
		if len(policy) < 3 {
			continue
		}
		resource, action := policy[1], policy[2]
		found := false
		for _, a := range permissions[resource] {
			if a == action {
				found = true
				break
			}
		}
		if !found {
			permissions[resource] = append(permissions[resource], action)
		}
	}

	return permissions
}

// AddPermission adds a permission to a role
func (r *CasbinRBAC) AddPermission(role, resource, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	added, err := r.enforcer.AddPolicy(role, resource, action)
	if err != nil {
		r.logger.Error("Failed to add permission",
			interfaces.Error(err),
			interfaces.String("role", role),
			interfaces.String("resource", resource),
			interfaces.String("action", action))
		return
	}

	if added {
		r.logger.Debug("Permission added",
			interfaces.String("role", role),
			interfaces.String("resource", resource),
			interfaces.String("action", action))
	}
}

// RemovePermission removes a permission from a role
func (r *CasbinRBAC) RemovePermission(role, resource, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, err := r.enforcer.RemovePolicy(role, resource, action)
	if err != nil {
		r.logger.Error("Failed to remove permission",
			interfaces.Error(err),
			interfaces.String("role", role),
			interfaces.String("resource", resource),
			interfaces.String("action", action))
		return
	}

	if removed {
		r.logger.Info("Permission removed",
			interfaces.String("role", role),
			interfaces.String("resource", resource),
			interfaces.String("action", action))
	}
}

// AssignRole makes subject inherit every permission of role.
func (r *CasbinRBAC) AssignRole(subject, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.enforcer.AddGroupingPolicy(subject, role); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// AddRole creates a new role with permissions
func (r *CasbinRBAC) AddRole(role string, permissions []Permission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, perm := range permissions {
		if _, err := r.enforcer.AddPolicy(role, perm.Resource, perm.Action); err != nil {
			return fmt.Errorf("failed to add permission %s:%s to role %s: %w",
				perm.Resource, perm.Action, role, err)
		}
	}

	r.logger.Debug("Role created",
		interfaces.String("role", role),
		interfaces.Int("permissions", len(permissions)))

	return nil
}

// InitializeDefaultPolicies loads DefaultPolicies into the enforcer.
func InitializeDefaultPolicies(rbac *CasbinRBAC) error {
	for role, permissions := range DefaultPolicies() {
		if err := rbac.AddRole(role, permissions); err != nil {
			return fmt.Errorf("failed to initialize role %s: %w", role, err)
		}
	}
	return nil
}
