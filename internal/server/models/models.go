// Package models defines the server-side records backing the Refuture API.
// Wire-level JSON shapes live in the httpapi package; these structs map to
// database rows.
package models

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	HasProfile   bool
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

type Profile struct {
	ID          string
	UserID      string
	Headline    string
	Bio         string
	Skills      []string
	Education   string
	Languages   []string
	Location    string
	DocumentKey string
	CreatedAt   time.Time
}

type Opportunity struct {
	ID           string
	ProviderID   string
	Title        string
	Organization string
	Category     string
	Description  string
	Location     string
	Deadline     *time.Time
	IsActive     bool
	CreatedAt    time.Time
}

type Notifications struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

type Settings struct {
	UserID        string
	Theme         string
	Language      string
	Notifications Notifications
}

// DefaultSettings mirrors the client-side defaults; a user without a
// settings row gets these.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:   userID,
		Theme:    "light",
		Language: "en",
		Notifications: Notifications{
			Email: true,
			Push:  true,
			SMS:   false,
		},
	}
}

type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
