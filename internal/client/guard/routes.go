package guard

import (
	"strings"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
)

// Navigation targets of the client. These are view paths, not HTTP routes.
const (
	PathLanding           = "/"
	PathLogin             = "/login"
	PathSignup            = "/signup"
	PathRefugeeDashboard  = "/refugee-dashboard"
	PathProviderDashboard = "/provider-dashboard"
	PathAdminDashboard    = "/admin-dashboard"
	PathCreateProfile     = "/create-profile"
	PathOpportunity       = "/opportunity/:id"
	PathProfile           = "/profile/:id"
)

// Route describes the access constraint of a navigation target.
type Route struct {
	Pattern string

	// RequireAuth marks the view as protected.
	RequireAuth bool

	// RequiredRole restricts the view to one role. Empty means any
	// authenticated role when RequireAuth is set.
	RequiredRole string

	// ProfileGated applies the refugee dashboard/profile-creation bounce.
	ProfileGated bool
}

var routes = []Route{
	{Pattern: PathLanding},
	{Pattern: PathLogin},
	{Pattern: PathSignup},
	{Pattern: PathRefugeeDashboard, RequireAuth: true, RequiredRole: common.RoleRefugee, ProfileGated: true},
	{Pattern: PathProviderDashboard, RequireAuth: true, RequiredRole: common.RoleProvider},
	{Pattern: PathAdminDashboard, RequireAuth: true, RequiredRole: common.RoleAdmin},
	{Pattern: PathCreateProfile, RequireAuth: true, RequiredRole: common.RoleRefugee, ProfileGated: true},
	{Pattern: PathOpportunity, RequireAuth: true},
	{Pattern: PathProfile, RequireAuth: true},
}

// Lookup matches a concrete path against the route table. Pattern segments
// starting with ':' match any single non-empty segment. The second return
// value is false for unknown paths (the wildcard case).
func Lookup(path string) (Route, bool) {
	for _, r := range routes {
		if matches(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

func matches(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

// Param extracts the value of the first ':' segment of pattern from path,
// e.g. Param("/opportunity/:id", "/opportunity/42") == "42".
func Param(pattern, path string) string {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return ""
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			return xs[i]
		}
	}
	return ""
}
