package rbac

import (
	"path"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"skill-hire-backend/models"
)

type Provider interface {
	// GetRuleFunc finds the rule of a request, routes without one are closed.
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	// GetPermissions is what /auth/me reports for the role.
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

// NewHandler builds the route table for the whole api, mounted under prefix.
func NewHandler(prefix string) Provider {
	i := &impl{
		prefix:      cleanPath(prefix),
		routes:      map[string]*routeTable{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

type impl struct {
	prefix      string
	routes      map[string]*routeTable
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, requestPath string) (models.RbacFunc, bool) {
	table, ok := i.routes[strings.ToUpper(method)]
	if !ok {
		return nil, false
	}
	return table.find(cleanPath(requestPath))
}

// RegisterRule adds a "/path/{param} [method]" rule, a nil handler allows exactly roles.
func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	routePath, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	table, ok := i.routes[method]
	if !ok {
		table = newRouteTable()
		i.routes[method] = table
	}
	table.add(cleanPath(i.prefix+routePath), handler)
	i.grant(module, permission, roles)
	return nil
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, nil); err != nil {
		panic(err)
	}
}

func (i *impl) grant(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return slices.Contains(accessRoles, role)
	}
}

// parseSwaggerPattern splits "/recruiter/company [post]" into the path and the upper cased method.
func parseSwaggerPattern(pattern string) (string, string, error) {
	pattern = strings.TrimSpace(pattern)
	open := strings.LastIndex(pattern, "[")
	if open == -1 || !strings.HasSuffix(pattern, "]") {
		return "", "", errors.Errorf("no method in rbac pattern %q", pattern)
	}
	method := strings.ToUpper(strings.TrimSpace(pattern[open+1 : len(pattern)-1]))
	if method == "" {
		return "", "", errors.Errorf("no method in rbac pattern %q", pattern)
	}
	return cleanPath(strings.TrimSpace(pattern[:open])), method, nil
}

func cleanPath(value string) string {
	return path.Clean("/" + value)
}
