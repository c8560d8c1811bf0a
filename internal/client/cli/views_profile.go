package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/guard"
)

// renderCreateProfile walks the talent through profile creation and, once
// the backend confirms, refreshes the session so hasProfile is current
// before navigating to the dashboard. Without that refresh the guard would
// bounce the user straight back here.
func (a *App) renderCreateProfile(ctx context.Context) {
	fmt.Fprintln(a.out, "--- Create your talent profile ---")

	headline, err := promptLine(a.reader, "Headline (e.g. 'Frontend developer')", a.out)
	if err != nil {
		return
	}
	bio, err := promptMultiline(a.reader, "Short bio", a.out)
	if err != nil {
		return
	}
	skills, err := promptList(a.reader, "Skills", a.out)
	if err != nil {
		return
	}
	education, err := promptLine(a.reader, "Education", a.out)
	if err != nil {
		return
	}
	languages, err := promptList(a.reader, "Languages", a.out)
	if err != nil {
		return
	}
	location, err := promptLine(a.reader, "Location", a.out)
	if err != nil {
		return
	}

	in := api.ProfileInput{
		Headline:  headline,
		Bio:       bio,
		Skills:    skills,
		Education: education,
		Languages: languages,
		Location:  location,
	}

	docPath, err := promptLine(a.reader, "Path to a CV/document to attach (leave empty to skip)", a.out)
	if err != nil {
		return
	}
	if docPath != "" {
		key, uploadErr := a.uploadDocument(ctx, docPath)
		if uploadErr != nil {
			fmt.Fprintln(a.out, "Document upload failed, continuing without it:", api.MessageFor(uploadErr))
		} else {
			in.DocumentKey = key
		}
	}

	profile, err := a.api.CreateProfile(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, "Could not create profile:", api.MessageFor(err))
		return
	}
	fmt.Fprintf(a.out, "Profile %s created.\n", profile.ID)

	if err := a.session.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "session refresh after profile creation failed", "err", err)
	}
	a.navigate(ctx, guard.PathRefugeeDashboard)
}

// uploadDocument reads a local file and PUTs it to a presigned URL issued
// by the backend, returning the storage key to reference in the profile.
func (a *App) uploadDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	slot, err := a.api.PresignDocument(ctx, filepath.Base(path))
	if err != nil {
		return "", err
	}
	if err := a.api.UploadDocument(ctx, slot.URL, data); err != nil {
		return "", err
	}
	return slot.Key, nil
}

func (a *App) renderProfile(ctx context.Context, id string) {
	profile, err := a.api.ProfileByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", api.MessageFor(err))
		return
	}

	fmt.Fprintf(a.out, "--- %s ---\n", profile.Headline)
	fmt.Fprintln(a.out, profile.Bio)
	fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(profile.Skills, ", "))
	fmt.Fprintf(a.out, "Education: %s\n", profile.Education)
	fmt.Fprintf(a.out, "Languages: %s\n", strings.Join(profile.Languages, ", "))
	fmt.Fprintf(a.out, "Location: %s\n", profile.Location)
	if profile.DocumentKey != "" {
		url, err := a.api.ProfileDocumentURL(ctx, profile.ID)
		if err != nil {
			fmt.Fprintln(a.out, "A CV/document is attached but could not be linked right now.")
			return
		}
		fmt.Fprintln(a.out, "Attached CV/document:", url)
	}
}
