// Package guard gates navigation on session state. Decide is a pure
// function of a session snapshot and a requested path; it owns no state of
// its own and is re-evaluated on every navigation. Redirects are returned
// as values and applied by the navigator in a controlled transition loop,
// never as a side effect of rendering a view.
package guard

import (
	"errors"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/session"
)

type Action int

const (
	// ActionWait renders a neutral placeholder: hydration is in flight
	// and nothing may be decided yet.
	ActionWait Action = iota

	// ActionRender shows the requested view.
	ActionRender

	// ActionRedirect sends the user to Decision.Target instead.
	ActionRedirect
)

// Decision is the guard's verdict for one navigation step.
type Decision struct {
	Action Action
	Target string
}

// ErrRedirectLoop is returned by Resolve when redirects fail to reach a
// renderable view within the bounce limit.
var ErrRedirectLoop = errors.New("navigation did not settle")

// Decide evaluates the access rules for path, first match wins:
//
//  1. Unknown path: redirect to the landing view (wildcard rule).
//  2. Public view: render.
//  3. Hydration in flight: wait.
//  4. Not authenticated: redirect to login.
//  5. Role mismatch: silent redirect to landing.
//  6. Refugee profile gate: dashboard without a profile redirects to
//     profile creation, and profile creation with an existing profile
//     redirects back to the dashboard.
//  7. Otherwise: render.
func Decide(snap session.Snapshot, path string) Decision {
	route, known := Lookup(path)
	if !known {
		return Decision{Action: ActionRedirect, Target: PathLanding}
	}

	if !route.RequireAuth {
		return Decision{Action: ActionRender, Target: path}
	}

	if snap.Loading {
		return Decision{Action: ActionWait}
	}

	if !snap.IsAuthenticated() {
		return Decision{Action: ActionRedirect, Target: PathLogin}
	}

	if route.RequiredRole != "" && snap.User.Role != route.RequiredRole {
		// Authorization failures are silent: no message, just the landing view.
		return Decision{Action: ActionRedirect, Target: PathLanding}
	}

	if route.ProfileGated {
		if route.Pattern == PathRefugeeDashboard && !snap.User.HasProfile {
			return Decision{Action: ActionRedirect, Target: PathCreateProfile}
		}
		if route.Pattern == PathCreateProfile && snap.User.HasProfile {
			return Decision{Action: ActionRedirect, Target: PathRefugeeDashboard}
		}
	}

	return Decision{Action: ActionRender, Target: path}
}

// maxBounces bounds the redirect chain. The longest legitimate chain is
// three hops (unknown -> landing is one; dashboard -> create-profile after
// login is two), so anything longer is a routing bug.
const maxBounces = 8

// Resolve follows redirects to a fixed point and returns the final
// decision (ActionWait or ActionRender) plus the path trail, starting with
// the requested path. ErrRedirectLoop is returned when the chain exceeds
// the bounce limit.
func Resolve(snap session.Snapshot, path string) (Decision, []string, error) {
	trail := []string{path}
	for i := 0; i < maxBounces; i++ {
		d := Decide(snap, path)
		if d.Action != ActionRedirect {
			return d, trail, nil
		}
		path = d.Target
		trail = append(trail, path)
	}
	return Decision{}, trail, ErrRedirectLoop
}
