package cli

import (
	"context"
	"fmt"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/common"
)

func (a *App) renderRefugeeDashboard(ctx context.Context) {
	snap := a.session.Snapshot()
	fmt.Fprintf(a.out, "--- Talent dashboard — %s ---\n", snap.User.FullName())

	if profile, err := a.api.ProfileByUser(ctx, snap.User.ID); err == nil {
		fmt.Fprintf(a.out, "Your profile: %s ('profile %s' to view)\n", profile.Headline, profile.ID)
	}

	opportunities, err := a.api.Opportunities(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load opportunities:", api.MessageFor(err))
		return
	}
	if len(opportunities) == 0 {
		fmt.Fprintln(a.out, "No opportunities yet. Check back soon.")
		return
	}

	for _, o := range opportunities {
		fmt.Fprintf(a.out, "[%s] %s — %s (%s, %s)\n", o.ID, o.Title, o.Organization, o.Category, o.Location)
	}
	fmt.Fprintln(a.out, "Use 'open <id>' for details.")
}

func (a *App) renderProviderDashboard(ctx context.Context) {
	snap := a.session.Snapshot()
	fmt.Fprintf(a.out, "--- Provider dashboard — %s ---\n", snap.User.FullName())

	opportunities, err := a.api.Opportunities(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load opportunities:", api.MessageFor(err))
		return
	}

	mine := 0
	for _, o := range opportunities {
		if o.ProviderID != snap.User.ID {
			continue
		}
		mine++
		fmt.Fprintf(a.out, "[%s] %s (%s) active=%v\n", o.ID, o.Title, o.Category, o.IsActive)
	}
	if mine == 0 {
		fmt.Fprintln(a.out, "You have not posted any opportunities. Use 'post' to add one.")
	}
}

func (a *App) renderAdminDashboard(ctx context.Context) {
	fmt.Fprintln(a.out, "--- Admin dashboard ---")

	users, err := a.api.Users(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load users:", api.MessageFor(err))
		return
	}

	for _, u := range users {
		fmt.Fprintf(a.out, "%s  %-28s %-9s active=%v profile=%v\n", u.ID, u.Email, u.Role, u.IsActive, u.HasProfile)
	}
	fmt.Fprintf(a.out, "%d users total\n", len(users))
}

// postOpportunity is a provider-only action reachable from the REPL rather
// than a routed view; it checks the role itself.
func (a *App) postOpportunity(ctx context.Context) {
	snap := a.session.Snapshot()
	if snap.User == nil || snap.User.Role != common.RoleProvider {
		fmt.Fprintln(a.out, "Only providers can post opportunities.")
		return
	}

	title, err := promptLine(a.reader, "Title", a.out)
	if err != nil {
		return
	}
	organization, err := promptLine(a.reader, "Organization", a.out)
	if err != nil {
		return
	}
	category, err := promptLine(a.reader, "Category (scholarship/job/mentorship/internship)", a.out)
	if err != nil {
		return
	}
	location, err := promptLine(a.reader, "Location", a.out)
	if err != nil {
		return
	}
	description, err := promptMultiline(a.reader, "Description", a.out)
	if err != nil {
		return
	}

	created, err := a.api.CreateOpportunity(ctx, api.OpportunityInput{
		Title:        title,
		Organization: organization,
		Category:     category,
		Location:     location,
		Description:  description,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not post opportunity:", api.MessageFor(err))
		return
	}
	fmt.Fprintf(a.out, "Posted opportunity %s.\n", created.ID)
}
