package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/repomanager"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/storage"
)

// ProfileInput is the talent profile creation payload.
type ProfileInput struct {
	Headline    string
	Bio         string
	Skills      []string
	Education   string
	Languages   []string
	Location    string
	DocumentKey string
}

// ProfileService creates and serves talent profiles. Creation flips the
// owner's hasProfile flag, which the client's route guard depends on.
type ProfileService struct {
	db        *sql.DB
	repos     repomanager.Manager
	documents *storage.Documents
}

func NewProfileService(db *sql.DB, repos repomanager.Manager, documents *storage.Documents) *ProfileService {
	return &ProfileService{db: db, repos: repos, documents: documents}
}

// Create stores the profile and marks the user as having one. Both writes
// commit in a single transaction: a failed insert must not leave the flag
// set, and a stored profile without the flag would lock the talent out of
// their dashboard.
func (s *ProfileService) Create(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	profile := &models.Profile{
		ID:          uuid.NewString(),
		UserID:      userID,
		Headline:    in.Headline,
		Bio:         in.Bio,
		Skills:      in.Skills,
		Education:   in.Education,
		Languages:   in.Languages,
		Location:    in.Location,
		DocumentKey: in.DocumentKey,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repos.Profiles(tx).Create(ctx, profile)
		if err != nil {
			return err
		}
		profile = created
		return s.repos.Users(tx).SetHasProfile(ctx, userID, true)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return s.repos.Profiles(s.db).GetByID(ctx, id)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repos.Profiles(s.db).GetByUserID(ctx, userID)
}

// PresignDocument returns an object key and presigned PUT URL for a
// profile document upload.
func (s *ProfileService) PresignDocument(ctx context.Context, userID, filename string) (string, string, error) {
	return s.documents.PresignUpload(ctx, userID, filename)
}

// DocumentURL returns a presigned GET URL for the document attached to a
// profile. Profiles without a document report ErrNotFound.
func (s *ProfileService) DocumentURL(ctx context.Context, profileID string) (string, error) {
	profile, err := s.repos.Profiles(s.db).GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile.DocumentKey == "" {
		return "", common.ErrNotFound
	}
	return s.documents.PresignDownload(ctx, profile.DocumentKey)
}
