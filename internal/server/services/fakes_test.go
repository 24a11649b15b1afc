package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avasiljevs/assetledger/internal/dbx"
	"github.com/avasiljevs/assetledger/internal/server/models"
	assetsrepo "github.com/avasiljevs/assetledger/internal/server/repositories/assets"
	grantsrepo "github.com/avasiljevs/assetledger/internal/server/repositories/grants"
	refreshtokensrepo "github.com/avasiljevs/assetledger/internal/server/repositories/refreshtokens"
	registrystaterepo "github.com/avasiljevs/assetledger/internal/server/repositories/registrystate"
	usersrepo "github.com/avasiljevs/assetledger/internal/server/repositories/users"
)

// --- shared test doubles ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeAssetsRepo struct {
	createErr error
	created   []*models.Asset

	getOut *models.Asset
	getErr error

	updateContentErr error
	updatedContent   *models.Asset

	updateOwnerErr error
	newOwner       string

	deleteErr error
	deletedID int64
}

func (f *fakeAssetsRepo) Create(ctx context.Context, a *models.Asset) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAssetsRepo) Get(ctx context.Context, id int64) (*models.Asset, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAssetsRepo) UpdateContent(ctx context.Context, a *models.Asset) error {
	if f.updateContentErr != nil {
		return f.updateContentErr
	}
	f.updatedContent = a
	return nil
}

func (f *fakeAssetsRepo) UpdateOwner(ctx context.Context, id int64, owner string) error {
	if f.updateOwnerErr != nil {
		return f.updateOwnerErr
	}
	f.newOwner = owner
	return nil
}

func (f *fakeAssetsRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeGrantsRepo struct {
	upsertErr error
	upserts   []string // "<assetID>/<principal>"

	getOut *models.AccessGrant
	getErr error
}

func (f *fakeGrantsRepo) Upsert(ctx context.Context, assetID int64, principal string, readEnabled bool) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, principal)
	return nil
}

func (f *fakeGrantsRepo) Get(ctx context.Context, assetID int64, principal string) (*models.AccessGrant, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeStateRepo struct {
	initErr error

	getOut *models.RegistryState
	getErr error

	nextID    int64
	nextIDErr error

	nextSeq    int64
	nextSeqErr error
}

func (f *fakeStateRepo) Init(ctx context.Context, administrator string) error { return f.initErr }

func (f *fakeStateRepo) Get(ctx context.Context) (*models.RegistryState, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeStateRepo) NextAssetID(ctx context.Context) (int64, error) {
	if f.nextIDErr != nil {
		return 0, f.nextIDErr
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeStateRepo) NextSequence(ctx context.Context) (int64, error) {
	if f.nextSeqErr != nil {
		return 0, f.nextSeqErr
	}
	f.nextSeq++
	return f.nextSeq, nil
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr error

	createErr error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	return f.delErr
}

type fakeRepoManager struct {
	a  *fakeAssetsRepo
	g  *fakeGrantsRepo
	st *fakeStateRepo
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	return m.r
}
func (m *fakeRepoManager) Assets(db dbx.DBTX) assetsrepo.Repository { return m.a }
func (m *fakeRepoManager) Grants(db dbx.DBTX) grantsrepo.Repository { return m.g }
func (m *fakeRepoManager) RegistryState(db dbx.DBTX) registrystaterepo.Repository {
	return m.st
}
