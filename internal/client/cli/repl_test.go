package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNav struct {
	loggedIn bool

	targets []string
	calls   []string
}

func (f *fakeNav) isLoggedIn() bool { return f.loggedIn }
func (f *fakeNav) status() string   { return "" }
func (f *fakeNav) dashboardPath() string {
	return "/refugee-dashboard"
}
func (f *fakeNav) navigate(ctx context.Context, target string) {
	f.targets = append(f.targets, target)
}
func (f *fakeNav) logout() {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
}
func (f *fakeNav) renderContactForm(ctx context.Context) {
	f.calls = append(f.calls, "contact")
}
func (f *fakeNav) renderSettings(ctx context.Context) {
	f.calls = append(f.calls, "settings")
}
func (f *fakeNav) postOpportunity(ctx context.Context) {
	f.calls = append(f.calls, "post")
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, nav *fakeNav, commands ...string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(strings.Join(commands, "\n")))
	runREPL(context.Background(), nav, sc)
}

func TestREPLTranslatesCommandsToTargets(t *testing.T) {
	silencePrintln(t)
	nav := &fakeNav{loggedIn: true}

	runScript(t, nav,
		"home",
		"login",
		"signup",
		"dashboard",
		"create-profile",
		"open 42",
		"profile u1",
		"exit",
	)

	assert.Equal(t, []string{
		"/", "/login", "/signup", "/refugee-dashboard",
		"/create-profile", "/opportunity/42", "/profile/u1",
	}, nav.targets)
}

func TestREPLDelegatesNonNavigationCommands(t *testing.T) {
	silencePrintln(t)
	nav := &fakeNav{loggedIn: true}

	runScript(t, nav, "post", "settings", "contact", "logout", "quit")

	assert.Equal(t, []string{"post", "settings", "contact", "logout"}, nav.calls)
}

func TestREPLOpenWithoutArgPrintsUsage(t *testing.T) {
	lines := silencePrintln(t)
	nav := &fakeNav{}

	runScript(t, nav, "open", "profile", "exit")

	assert.Empty(t, nav.targets)
	assert.Contains(t, *lines, "Usage: open <id>")
	assert.Contains(t, *lines, "Usage: profile <id>")
}

func TestREPLHelpDependsOnLoginState(t *testing.T) {
	lines := silencePrintln(t)

	runScript(t, &fakeNav{loggedIn: false}, "help", "exit")
	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "login")
	assert.NotContains(t, joined, "dashboard")

	*lines = nil
	runScript(t, &fakeNav{loggedIn: true}, "help", "exit")
	assert.Contains(t, strings.Join(*lines, "\n"), "dashboard")
}

func TestREPLUnknownCommand(t *testing.T) {
	lines := silencePrintln(t)

	runScript(t, &fakeNav{}, "frobnicate", "exit")
	assert.Contains(t, *lines, "Unknown command:")
}

func TestREPLExitsOnEOF(t *testing.T) {
	silencePrintln(t)
	nav := &fakeNav{}

	runScript(t, nav, "home")
	assert.Equal(t, []string{"/"}, nav.targets)
}

func TestREPLSkipsBlankLines(t *testing.T) {
	silencePrintln(t)
	nav := &fakeNav{}

	runScript(t, nav, "", "   ", "home", "exit")
	assert.Equal(t, []string{"/"}, nav.targets)
}
