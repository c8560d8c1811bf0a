package cli

import (
	"context"
	"fmt"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
)

func (a *App) renderLanding() {
	fmt.Fprintln(a.out, "--- Refuture ---")
	fmt.Fprintln(a.out, "Connecting displaced talents with education, career opportunities and mentors.")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Type 'dashboard' to continue, or 'contact' to reach us.")
	} else {
		fmt.Fprintln(a.out, "Type 'login' or 'signup' to get started, or 'contact' to reach us.")
	}
}

func (a *App) renderOpportunity(ctx context.Context, id string) {
	o, err := a.api.Opportunity(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load opportunity:", api.MessageFor(err))
		return
	}

	fmt.Fprintf(a.out, "--- %s — %s ---\n", o.Title, o.Organization)
	fmt.Fprintf(a.out, "Category: %s   Location: %s\n", o.Category, o.Location)
	if o.Deadline != nil {
		fmt.Fprintf(a.out, "Apply by: %s\n", o.Deadline.Format("2006-01-02"))
	}
	fmt.Fprintln(a.out, o.Description)
}

func (a *App) renderSettings(ctx context.Context) {
	current := a.settings.Get(ctx)
	fmt.Fprintf(a.out, "Theme: %s  Language: %s  Notifications: email=%v push=%v sms=%v\n",
		current.Theme, current.Language,
		current.Notifications.Email, current.Notifications.Push, current.Notifications.SMS)

	if !a.isLoggedIn() {
		return
	}

	change, err := promptLine(a.reader, "Change settings? (y/N)", a.out)
	if err != nil || change != "y" {
		return
	}
	theme, err := promptLine(a.reader, "Theme (light/dark)", a.out)
	if err != nil {
		return
	}
	language, err := promptLine(a.reader, "Language code (e.g. en, fr)", a.out)
	if err != nil {
		return
	}

	if theme != "" {
		current.Theme = theme
	}
	if language != "" {
		current.Language = language
	}
	if _, err := a.settings.Update(ctx, current); err != nil {
		fmt.Fprintln(a.out, "Could not save settings:", api.MessageFor(err))
		return
	}
	fmt.Fprintln(a.out, "Settings saved.")
}

func (a *App) renderContactForm(ctx context.Context) {
	name, err := promptLine(a.reader, "Your name", a.out)
	if err != nil {
		return
	}
	email, err := promptLine(a.reader, "Your email", a.out)
	if err != nil {
		return
	}
	subject, err := promptLine(a.reader, "Subject", a.out)
	if err != nil {
		return
	}
	message, err := promptMultiline(a.reader, "Message", a.out)
	if err != nil {
		return
	}

	err = a.api.SubmitContact(ctx, models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not send your message:", api.MessageFor(err))
		return
	}
	fmt.Fprintln(a.out, "Thanks, we'll be in touch.")
}
