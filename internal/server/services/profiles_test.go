package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/profiles"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/repomanager"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/users"
)

type fakeProfileRepo struct {
	byID      map[string]*models.Profile
	byUser    map[string]*models.Profile
	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: map[string]*models.Profile{}, byUser: map[string]*models.Profile{}}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.byID[p.ID] = p
	f.byUser[p.UserID] = p
	return p, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

// fakeManager vends the same fakes regardless of the handle, so the
// service's transaction wiring can run against sqlmock.
type fakeManager struct {
	repomanager.Manager
	users    *fakeUserRepo
	profiles *fakeProfileRepo
}

func (f *fakeManager) Users(db dbx.DBTX) users.Repository       { return f.users }
func (f *fakeManager) Profiles(db dbx.DBTX) profiles.Repository { return f.profiles }

func newProfileService(t *testing.T) (*ProfileService, *fakeManager, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mgr := &fakeManager{users: newFakeUserRepo(), profiles: newFakeProfileRepo()}
	return NewProfileService(db, mgr, nil), mgr, mock, db
}

func TestProfileCreateSetsHasProfile(t *testing.T) {
	svc, mgr, mock, db := newProfileService(t)
	defer db.Close()
	mgr.users.add(&models.User{ID: "u-1", Email: "amal@example.org", Role: common.RoleRefugee, IsActive: true})

	mock.ExpectBegin()
	mock.ExpectCommit()

	profile, err := svc.Create(context.Background(), "u-1", ProfileInput{
		Headline: "Backend developer",
		Skills:   []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "u-1", profile.UserID)
	assert.True(t, mgr.users.byID["u-1"].HasProfile)
	require.NoError(t, mock.ExpectationsWereMet())

	got, err := svc.GetByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
}

func TestProfileCreateFailureRollsBack(t *testing.T) {
	svc, mgr, mock, db := newProfileService(t)
	defer db.Close()
	mgr.users.add(&models.User{ID: "u-1", IsActive: true})
	mgr.profiles.createErr = errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "u-1", ProfileInput{Headline: "x"})
	require.Error(t, err)
	assert.False(t, mgr.users.byID["u-1"].HasProfile)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileGetByIDNotFound(t *testing.T) {
	svc, _, _, db := newProfileService(t)
	defer db.Close()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
