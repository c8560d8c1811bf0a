// Package models defines the wire-level types the Refuture client exchanges
// with the backend. Field names follow the JSON contract of the REST API.
package models

import "time"

// User is the session-scoped account record. Owned exclusively by the
// session store; every other component reads it through a session snapshot.
type User struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Role       string     `json:"role"`
	HasProfile bool       `json:"hasProfile"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// FullName is a display helper for the CLI views.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Profile is a talent profile as served by the profiles endpoints.
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Headline    string    `json:"headline"`
	Bio         string    `json:"bio"`
	Skills      []string  `json:"skills"`
	Education   string    `json:"education"`
	Languages   []string  `json:"languages"`
	Location    string    `json:"location"`
	DocumentKey string    `json:"documentKey,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Opportunity backs the dashboard list views and the opportunity detail view.
type Opportunity struct {
	ID           string     `json:"id"`
	ProviderID   string     `json:"providerId"`
	Title        string     `json:"title"`
	Organization string     `json:"organization"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Notifications holds the per-channel notification switches.
type Notifications struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// Settings is the user preferences object. DefaultSettings applies when
// unauthenticated or when the backend is unreachable.
type Settings struct {
	Theme         string        `json:"theme"`
	Language      string        `json:"language"`
	Notifications Notifications `json:"notifications"`
}

// DefaultSettings returns the documented preference defaults.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "light",
		Language: "en",
		Notifications: Notifications{
			Email: true,
			Push:  true,
			SMS:   false,
		},
	}
}

// ContactMessage is the landing-page contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
