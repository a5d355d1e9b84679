package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type CasbinRBACTestSuite struct {
	suite.Suite
	rbac *auth.CasbinRBAC
}

func (suite *CasbinRBACTestSuite) SetupTest() {
	var err error
	suite.rbac, err = auth.NewCasbinRBACFromString(auth.DefaultCasbinModel, "", logger.NewNoop())
	suite.Require().NoError(err)

	suite.Require().NoError(auth.InitializeDefaultPolicies(suite.rbac))
}

func (suite *CasbinRBACTestSuite) TestMatchesBuiltinDefaults() {
	builtin := auth.NewRBAC()
	roles := []string{auth.RoleAdmin, auth.RoleUser, auth.RoleGuest}
	resources := []string{auth.ResourceMedia, auth.ResourceCrew, auth.ResourceCatalog,
		auth.ResourceLike, auth.ResourceReview, auth.ResourceUser}
	actions := []string{auth.ActionRead, auth.ActionCreate, auth.ActionUpdate, auth.ActionDelete, auth.ActionAdmin}

	for _, role := range roles {
		for _, resource := range resources {
			for _, action := range actions {
				assert.Equal(suite.T(),
					builtin.CheckPermission(role, resource, action),
					suite.rbac.CheckPermission(role, resource, action),
					"%s %s:%s", role, resource, action)
			}
		}
	}
}

func (suite *CasbinRBACTestSuite) TestAddRemovePermission() {
	t := suite.T()

	suite.rbac.AddPermission(auth.RoleGuest, auth.ResourceLike, auth.ActionCreate)
	assert.True(t, suite.rbac.CheckPermission(auth.RoleGuest, auth.ResourceLike, auth.ActionCreate))

	suite.rbac.RemovePermission(auth.RoleGuest, auth.ResourceLike, auth.ActionCreate)
	assert.False(t, suite.rbac.CheckPermission(auth.RoleGuest, auth.ResourceLike, auth.ActionCreate))
}

func (suite *CasbinRBACTestSuite) TestGetRolePermissions() {
	perms := suite.rbac.GetRolePermissions(auth.RoleGuest)
	assert.Equal(suite.T(), []string{auth.ActionRead}, perms[auth.ResourceMedia])
	assert.NotContains(suite.T(), perms, auth.ResourceUser)
}

func (suite *CasbinRBACTestSuite) TestAssignRole() {
	t := suite.T()

	require.NoError(t, suite.rbac.AssignRole("moderator", auth.RoleAdmin))
	assert.True(t, suite.rbac.CheckPermission("moderator", auth.ResourceReview, auth.ActionAdmin))
}

func TestCasbinRBACTestSuite(t *testing.T) {
	suite.Run(t, new(CasbinRBACTestSuite))
}

func TestNewCasbinRBACFromString_Policies(t *testing.T) {
	policy := `
# custom policy
p, editor, catalog, update
g, alice, editor
`
	rbac, err := auth.NewCasbinRBACFromString(auth.DefaultCasbinModel, policy, logger.NewNoop())
	require.NoError(t, err)

	assert.True(t, rbac.CheckPermission("editor", auth.ResourceCatalog, auth.ActionUpdate))
	assert.True(t, rbac.CheckPermission("alice", auth.ResourceCatalog, auth.ActionUpdate))
	assert.False(t, rbac.CheckPermission("alice", auth.ResourceCatalog, auth.ActionDelete))
}

func TestNewRBACFromConfig(t *testing.T) {
	builtin, err := auth.NewRBACFromConfig(auth.RBACConfig{Type: auth.RBACTypeBuiltin})
	require.NoError(t, err)
	assert.IsType(t, &auth.RBAC{}, builtin)

	casbinRBAC, err := auth.NewRBACFromConfig(auth.RBACConfig{Type: auth.RBACTypeCasbin, Logger: logger.NewNoop()})
	require.NoError(t, err)
	assert.IsType(t, &auth.CasbinRBAC{}, casbinRBAC)
	assert.True(t, casbinRBAC.CheckPermission(auth.RoleAdmin, auth.ResourceCatalog, auth.ActionAdmin))

	_, err = auth.NewRBACFromConfig(auth.RBACConfig{Type: "ldap"})
	assert.Error(t, err)
}
