// Package api implements the REST client for the Refuture backend. The
// concrete HTTPClient owns the default outgoing request configuration:
// the session store pushes the bearer token into it via SetToken/ClearToken
// and every other component issues calls through the same instance.
package api

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
)

// AuthResponse is the payload of a successful login or signup.
type AuthResponse struct {
	Token      string       `json:"token"`
	User       *models.User `json:"user"`
	RedirectTo string       `json:"redirectTo"`
}

// SignupRequest carries registration data. Role must be one of the
// platform roles.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// ProfileInput is the talent profile creation payload.
type ProfileInput struct {
	Headline    string   `json:"headline"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	Education   string   `json:"education"`
	Languages   []string `json:"languages"`
	Location    string   `json:"location"`
	DocumentKey string   `json:"documentKey,omitempty"`
}

// OpportunityInput is the provider-side opportunity creation payload.
type OpportunityInput struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Deadline     string `json:"deadline,omitempty"`
}

// DocumentUpload is a presigned upload slot for a profile document.
type DocumentUpload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Client is the backend surface the rest of the client depends on.
//
// SetToken and ClearToken mutate the default request configuration: once a
// token is set, every subsequent call carries it as a bearer credential.
// Only the session store may call them.
type Client interface {
	SetToken(token string)
	ClearToken()

	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	// Logout revokes the given token server-side. It takes the credential
	// explicitly because the session store clears the default token before
	// the (fire-and-forget) revocation call runs.
	Logout(ctx context.Context, token string) error

	ProfileByUser(ctx context.Context, userID string) (*models.Profile, error)
	ProfileByID(ctx context.Context, id string) (*models.Profile, error)
	CreateProfile(ctx context.Context, in ProfileInput) (*models.Profile, error)
	PresignDocument(ctx context.Context, filename string) (*DocumentUpload, error)
	UploadDocument(ctx context.Context, url string, data []byte) error
	ProfileDocumentURL(ctx context.Context, profileID string) (string, error)

	Opportunities(ctx context.Context) ([]models.Opportunity, error)
	Opportunity(ctx context.Context, id string) (*models.Opportunity, error)
	CreateOpportunity(ctx context.Context, in OpportunityInput) (*models.Opportunity, error)

	Users(ctx context.Context) ([]models.User, error)

	Settings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error)

	SubmitContact(ctx context.Context, msg models.ContactMessage) error
}
