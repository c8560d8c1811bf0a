package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// navigator is the minimal surface the REPL needs; the real App satisfies
// it, tests can provide a lightweight stub.
type navigator interface {
	isLoggedIn() bool
	status() string
	dashboardPath() string
	navigate(ctx context.Context, target string)
	logout()
	renderContactForm(ctx context.Context)
	renderSettings(ctx context.Context)
	postOpportunity(ctx context.Context)
}

// repl is a read–eval–print loop over the client's route surface. Commands
// translate to navigation targets; the guard decides what actually renders.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
func (a *App) repl(ctx context.Context, scanner *bufio.Scanner) {
	runREPL(ctx, a, scanner)
}

func runREPL(ctx context.Context, a navigator, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("refuture %s> ", a.status()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, dashboard, create-profile, open <id>, profile <id>, post, settings, contact, logout, exit")
			} else {
				printlnFn("Available commands: home, login, signup, contact, exit")
			}

		case "home":
			a.navigate(ctx, "/")

		case "login":
			a.navigate(ctx, "/login")

		case "signup":
			a.navigate(ctx, "/signup")

		case "dashboard":
			a.navigate(ctx, a.dashboardPath())

		case "create-profile":
			a.navigate(ctx, "/create-profile")

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <id>")
				continue
			}
			a.navigate(ctx, "/opportunity/"+args[0])

		case "profile":
			if len(args) == 0 {
				printlnFn("Usage: profile <id>")
				continue
			}
			a.navigate(ctx, "/profile/"+args[0])

		case "post":
			a.postOpportunity(ctx)

		case "settings":
			a.renderSettings(ctx)

		case "contact":
			a.renderContactForm(ctx)

		case "logout":
			a.logout()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
