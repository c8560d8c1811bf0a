package httpapi

import (
	"time"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

// Wire-level DTOs. Field names are the JSON contract the client depends
// on; the password hash never leaves this layer.

type userDTO struct {
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

func toUserDTO(u *models.User) userDTO {
	return userDTO{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		HasProfile: u.HasProfile,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLogin,
	}
}

type profileDTO struct {
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

func toProfileDTO(p *models.Profile) profileDTO {
	return profileDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		Headline:    p.Headline,
		Bio:         p.Bio,
		Skills:      p.Skills,
		Education:   p.Education,
		Languages:   p.Languages,
		Location:    p.Location,
		DocumentKey: p.DocumentKey,
		CreatedAt:   p.CreatedAt,
	}
}

type opportunityDTO struct {
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

func toOpportunityDTO(o *models.Opportunity) opportunityDTO {
	return opportunityDTO{
		ID:           o.ID,
		ProviderID:   o.ProviderID,
		Title:        o.Title,
		Organization: o.Organization,
		Category:     o.Category,
		Description:  o.Description,
		Location:     o.Location,
		Deadline:     o.Deadline,
		IsActive:     o.IsActive,
		CreatedAt:    o.CreatedAt,
	}
}

type settingsDTO struct {
	Theme         string           `json:"theme"`
	Language      string           `json:"language"`
	Notifications notificationsDTO `json:"notifications"`
}

type notificationsDTO struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

func toSettingsDTO(s *models.Settings) settingsDTO {
	return settingsDTO{
		Theme:    s.Theme,
		Language: s.Language,
		Notifications: notificationsDTO{
			Email: s.Notifications.Email,
			Push:  s.Notifications.Push,
			SMS:   s.Notifications.SMS,
		},
	}
}
