package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/session"
)

func anon() session.Snapshot {
	return session.Snapshot{}
}

func loadingSnap() session.Snapshot {
	return session.Snapshot{Loading: true}
}

func authed(role string, hasProfile bool) session.Snapshot {
	return session.Snapshot{
		Token: "tok",
		User:  &models.User{ID: "u1", Role: role, HasProfile: hasProfile},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		path string
		want Decision
	}{
		{"unknown path redirects to landing", anon(), "/no-such-view", Decision{Action: ActionRedirect, Target: PathLanding}},
		{"unknown path redirects even while loading", loadingSnap(), "/no-such-view", Decision{Action: ActionRedirect, Target: PathLanding}},
		{"landing is public", anon(), PathLanding, Decision{Action: ActionRender, Target: PathLanding}},
		{"login is public", anon(), PathLogin, Decision{Action: ActionRender, Target: PathLogin}},
		{"signup is public while loading", loadingSnap(), PathSignup, Decision{Action: ActionRender, Target: PathSignup}},
		{"protected view waits during hydration", loadingSnap(), PathRefugeeDashboard, Decision{Action: ActionWait}},
		{"opportunity waits during hydration", loadingSnap(), "/opportunity/42", Decision{Action: ActionWait}},
		{"unauthenticated goes to login", anon(), PathRefugeeDashboard, Decision{Action: ActionRedirect, Target: PathLogin}},
		{"unauthenticated opportunity goes to login", anon(), "/opportunity/42", Decision{Action: ActionRedirect, Target: PathLogin}},
		{"role mismatch bounces to landing", authed("refugee", true), PathProviderDashboard, Decision{Action: ActionRedirect, Target: PathLanding}},
		{"provider cannot see admin dashboard", authed("provider", false), PathAdminDashboard, Decision{Action: ActionRedirect, Target: PathLanding}},
		{"admin reaches admin dashboard", authed("admin", false), PathAdminDashboard, Decision{Action: ActionRender, Target: PathAdminDashboard}},
		{"provider reaches provider dashboard", authed("provider", false), PathProviderDashboard, Decision{Action: ActionRender, Target: PathProviderDashboard}},
		{"refugee without profile bounces to creation", authed("refugee", false), PathRefugeeDashboard, Decision{Action: ActionRedirect, Target: PathCreateProfile}},
		{"refugee without profile renders creation", authed("refugee", false), PathCreateProfile, Decision{Action: ActionRender, Target: PathCreateProfile}},
		{"refugee with profile renders dashboard", authed("refugee", true), PathRefugeeDashboard, Decision{Action: ActionRender, Target: PathRefugeeDashboard}},
		{"refugee with profile bounces off creation", authed("refugee", true), PathCreateProfile, Decision{Action: ActionRedirect, Target: PathRefugeeDashboard}},
		{"any role may open an opportunity", authed("provider", false), "/opportunity/42", Decision{Action: ActionRender, Target: "/opportunity/42"}},
		{"any role may open a profile", authed("admin", false), "/profile/u1", Decision{Action: ActionRender, Target: "/profile/u1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.snap, tt.path))
		})
	}
}

func TestResolveFollowsRedirectChain(t *testing.T) {
	// Unknown path -> landing for an anonymous visitor.
	d, trail, err := Resolve(anon(), "/bogus")
	require.NoError(t, err)
	assert.Equal(t, ActionRender, d.Action)
	assert.Equal(t, []string{"/bogus", PathLanding}, trail)

	// Refugee without a profile asking for the dashboard settles on the
	// profile creation view in one bounce.
	d, trail, err = Resolve(authed("refugee", false), PathRefugeeDashboard)
	require.NoError(t, err)
	assert.Equal(t, ActionRender, d.Action)
	assert.Equal(t, PathCreateProfile, d.Target)
	assert.Equal(t, []string{PathRefugeeDashboard, PathCreateProfile}, trail)
}

func TestResolveWaitsDuringHydration(t *testing.T) {
	d, trail, err := Resolve(loadingSnap(), PathRefugeeDashboard)
	require.NoError(t, err)
	assert.Equal(t, ActionWait, d.Action)
	assert.Equal(t, []string{PathRefugeeDashboard}, trail)
}

func TestResolveNeverLoopsOnRouteTable(t *testing.T) {
	snaps := []session.Snapshot{
		anon(), loadingSnap(),
		authed("refugee", false), authed("refugee", true),
		authed("provider", false), authed("admin", false),
	}
	paths := []string{
		PathLanding, PathLogin, PathSignup,
		PathRefugeeDashboard, PathProviderDashboard, PathAdminDashboard,
		PathCreateProfile, "/opportunity/42", "/profile/u1", "/bogus",
	}
	for _, snap := range snaps {
		for _, path := range paths {
			_, _, err := Resolve(snap, path)
			require.NoError(t, err, "path %s", path)
		}
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("/opportunity/42")
	require.True(t, ok)
	assert.Equal(t, PathOpportunity, r.Pattern)

	_, ok = Lookup("/opportunity")
	assert.False(t, ok)

	_, ok = Lookup("/opportunity/42/extra")
	assert.False(t, ok)

	r, ok = Lookup("/")
	require.True(t, ok)
	assert.False(t, r.RequireAuth)
}

func TestParam(t *testing.T) {
	assert.Equal(t, "42", Param(PathOpportunity, "/opportunity/42"))
	assert.Equal(t, "u1", Param(PathProfile, "/profile/u1"))
	assert.Equal(t, "", Param(PathOpportunity, "/opportunity/42/extra"))
	assert.Equal(t, "", Param(PathLanding, "/"))
}
