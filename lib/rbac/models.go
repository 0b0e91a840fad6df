package rbac

import (
	"strings"

	"skill-hire-backend/models"
)

// routeTable holds the rules of one http method.
type routeTable struct {
	exact  map[string]models.RbacFunc
	params []paramRoute
}

// paramRoute is a path with {name} segments, each matching any single non empty segment.
type paramRoute struct {
	segments []string
	allow    models.RbacFunc
}

func newRouteTable() *routeTable {
	return &routeTable{exact: map[string]models.RbacFunc{}}
}

func (t *routeTable) add(path string, allow models.RbacFunc) {
	if !strings.Contains(path, "{") {
		t.exact[path] = allow
		return
	}
	t.params = append(t.params, paramRoute{
		segments: strings.Split(path, "/"),
		allow:    allow,
	})
}

// find prefers exact paths, then param routes in registration order.
func (t *routeTable) find(path string) (models.RbacFunc, bool) {
	if allow, ok := t.exact[path]; ok {
		return allow, true
	}
	segments := strings.Split(path, "/")
	for _, route := range t.params {
		if route.match(segments) {
			return route.allow, true
		}
	}
	return nil, false
}

func (r paramRoute) match(segments []string) bool {
	if len(segments) != len(r.segments) {
		return false
	}
	for idx, segment := range r.segments {
		if isParam(segment) {
			if segments[idx] == "" {
				return false
			}
			continue
		}
		if segment != segments[idx] {
			return false
		}
	}
	return true
}

func isParam(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
