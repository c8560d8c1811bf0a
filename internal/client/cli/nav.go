package cli

import (
	"context"
	"fmt"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/guard"
)

// navigate runs the route guard for target and renders the view it settles
// on. Redirect decisions are applied here, in an explicit transition loop,
// never inside a view renderer.
func (a *App) navigate(ctx context.Context, target string) {
	d, trail, err := guard.Resolve(a.session.Snapshot(), target)
	if err != nil {
		a.log.Error(ctx, "navigation aborted", "target", target, "trail", trail)
		return
	}
	if len(trail) > 1 {
		a.log.Debug(ctx, "redirected", "from", trail[0], "to", trail[len(trail)-1])
	}

	switch d.Action {
	case guard.ActionWait:
		fmt.Fprintln(a.out, "Loading session...")
	case guard.ActionRender:
		a.path = d.Target
		a.render(ctx, d.Target)
	}
}

// render dispatches a settled path to its view. Paths arriving here have
// already passed the guard.
func (a *App) render(ctx context.Context, path string) {
	route, ok := guard.Lookup(path)
	if !ok {
		return
	}

	switch route.Pattern {
	case guard.PathLanding:
		a.renderLanding()
	case guard.PathLogin:
		a.renderLogin(ctx)
	case guard.PathSignup:
		a.renderSignup(ctx)
	case guard.PathRefugeeDashboard:
		a.renderRefugeeDashboard(ctx)
	case guard.PathProviderDashboard:
		a.renderProviderDashboard(ctx)
	case guard.PathAdminDashboard:
		a.renderAdminDashboard(ctx)
	case guard.PathCreateProfile:
		a.renderCreateProfile(ctx)
	case guard.PathOpportunity:
		a.renderOpportunity(ctx, guard.Param(route.Pattern, path))
	case guard.PathProfile:
		a.renderProfile(ctx, guard.Param(route.Pattern, path))
	}
}

// dashboardPath picks the dashboard for the current role. Unauthenticated
// sessions get the refugee dashboard and let the guard bounce them to login.
func (a *App) dashboardPath() string {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return guard.PathRefugeeDashboard
	}
	switch snap.User.Role {
	case "provider":
		return guard.PathProviderDashboard
	case "admin":
		return guard.PathAdminDashboard
	default:
		return guard.PathRefugeeDashboard
	}
}
