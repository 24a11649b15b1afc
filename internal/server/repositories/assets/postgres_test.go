package assets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleAsset() *models.Asset {
	return &models.Asset{
		ID:          1,
		Name:        "doc",
		Owner:       "u1",
		SizeBytes:   100,
		CreatedAt:   7,
		Description: "x",
		Tags:        []string{"a", "b"},
	}
}

func mustTagsJSON(t *testing.T, tags []string) []byte {
	t.Helper()
	b, err := json.Marshal(tags)
	if err != nil {
		t.Fatalf("marshal tags: %v", err)
	}
	return b
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := sampleAsset()
	mock.ExpectExec(`INSERT INTO assets .*VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\)`).
		WithArgs(a.ID, a.Name, a.Owner, a.SizeBytes, a.CreatedAt, a.Description, mustTagsJSON(t, a.Tags)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO assets`).
		WillReturnError(errors.New("db is down"))

	if err := repo.Create(context.Background(), sampleAsset()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGet_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := sampleAsset()
	rows := sqlmock.NewRows([]string{"id", "name", "owner", "size_bytes", "created_at", "description", "tags"}).
		AddRow(a.ID, a.Name, a.Owner, a.SizeBytes, a.CreatedAt, a.Description, mustTagsJSON(t, a.Tags))

	mock.ExpectQuery(`SELECT id, name, owner, size_bytes, created_at, description, tags\s+FROM assets\s+WHERE id = \$1`).
		WithArgs(a.ID).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != a.Name || got.Owner != a.Owner || len(got.Tags) != 2 {
		t.Fatalf("unexpected asset: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, owner, size_bytes, created_at, description, tags`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdateContent_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := sampleAsset()
	mock.ExpectExec(`UPDATE assets\s+SET name = \$2, size_bytes = \$3, description = \$4, tags = \$5\s+WHERE id = \$1`).
		WithArgs(a.ID, a.Name, a.SizeBytes, a.Description, mustTagsJSON(t, a.Tags)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateContent(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateContent_NotFoundRowsAffected0(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE assets`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateContent(context.Background(), sampleAsset())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdateOwner_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE assets SET owner = \$2 WHERE id = \$1`).
		WithArgs(int64(1), "u2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateOwner(context.Background(), 1, "u2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assets WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assets WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assets WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	if err := repo.Delete(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
}
