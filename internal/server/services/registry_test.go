package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/server/models"
)

const (
	testOwner = "7b8a1c9e-3f2d-4e5a-9b6c-1d2e3f4a5b6c"
	testOther = "0f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b"
)

func validAssetFields() (string, int64, string, []string) {
	return "genesis-artwork", 1024, "first asset in the ledger", []string{"art", "genesis"}
}

func TestCreateAsset_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		a:  &fakeAssetsRepo{},
		g:  &fakeGrantsRepo{},
		st: &fakeStateRepo{nextSeq: 100},
	}
	s := NewRegistryService(db, rm)

	name, size, desc, tags := validAssetFields()
	id, err := s.CreateAsset(context.Background(), testOwner, name, size, desc, tags)
	if err != nil {
		t.Fatalf("CreateAsset error: %v", err)
	}
	if id != 1 {
		t.Fatalf("want first id 1, got %d", id)
	}
	if len(rm.a.created) != 1 {
		t.Fatalf("want 1 created asset, got %d", len(rm.a.created))
	}
	created := rm.a.created[0]
	if created.Owner != testOwner || created.CreatedAt != 101 {
		t.Fatalf("unexpected created asset: %+v", created)
	}
	if len(rm.g.upserts) != 1 || rm.g.upserts[0] != testOwner {
		t.Fatalf("creator grant not written: %v", rm.g.upserts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sqlmock expectations: %v", err)
	}
}

func TestCreateAsset_IDsIncrement(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{a: &fakeAssetsRepo{}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	name, size, desc, tags := validAssetFields()
	first, err := s.CreateAsset(context.Background(), testOwner, name, size, desc, tags)
	if err != nil {
		t.Fatalf("CreateAsset error: %v", err)
	}
	second, err := s.CreateAsset(context.Background(), testOwner, name, size, desc, tags)
	if err != nil {
		t.Fatalf("CreateAsset error: %v", err)
	}
	if second != first+1 {
		t.Fatalf("ids not sequential: %d then %d", first, second)
	}
}

func TestCreateAsset_ValidationRejectsBeforeTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	// no Begin expected: invalid input must not open a transaction

	rm := &fakeRepoManager{a: &fakeAssetsRepo{}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	tests := []struct {
		name    string
		argName string
		size    int64
		desc    string
		tags    []string
		want    error
	}{
		{"empty name", "", 1, "d", nil, common.ErrorInvalidParameters},
		{"name too long", strings.Repeat("n", 65), 1, "d", nil, common.ErrorInvalidParameters},
		{"zero size", "n", 0, "d", nil, common.ErrorCapacityExceeded},
		{"size too large", "n", 1_000_000_000, "d", nil, common.ErrorCapacityExceeded},
		{"description too long", "n", 1, strings.Repeat("d", 129), nil, common.ErrorInvalidParameters},
		{"too many tags", "n", 1, "d", make([]string, 11), common.ErrorFormatValidation},
		{"empty tag", "n", 1, "d", []string{""}, common.ErrorFormatValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateAsset(context.Background(), testOwner, tt.argName, tt.size, tt.desc, tt.tags)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sqlmock expectations: %v", err)
	}
}

func TestCreateAsset_GrantFailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		a:  &fakeAssetsRepo{},
		g:  &fakeGrantsRepo{upsertErr: errors.New("boom")},
		st: &fakeStateRepo{},
	}
	s := NewRegistryService(db, rm)

	name, size, desc, tags := validAssetFields()
	_, err := s.CreateAsset(context.Background(), testOwner, name, size, desc, tags)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sqlmock expectations: %v", err)
	}
}

func TestUpdateAsset_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	existing := &models.Asset{ID: 7, Name: "old", Owner: testOwner, SizeBytes: 10, CreatedAt: 3}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.UpdateAsset(context.Background(), testOwner, 7, "new-name", 2048, "updated", []string{"x"})
	if err != nil {
		t.Fatalf("UpdateAsset error: %v", err)
	}
	if rm.a.updatedContent == nil || rm.a.updatedContent.Name != "new-name" {
		t.Fatalf("content not updated: %+v", rm.a.updatedContent)
	}
	if rm.a.updatedContent.CreatedAt != 3 || rm.a.updatedContent.Owner != testOwner {
		t.Fatalf("owner/created_at must be preserved: %+v", rm.a.updatedContent)
	}
}

func TestUpdateAsset_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{a: &fakeAssetsRepo{getErr: common.ErrorNotFound}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.UpdateAsset(context.Background(), testOwner, 999, "n", 1, "d", nil)
	if !errors.Is(err, common.ErrorAssetNotFound) {
		t.Fatalf("want ErrorAssetNotFound, got %v", err)
	}
}

func TestUpdateAsset_NonOwnerDenied(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.UpdateAsset(context.Background(), testOther, 7, "n", 1, "d", nil)
	if !errors.Is(err, common.ErrorPermissionDenied) {
		t.Fatalf("want ErrorPermissionDenied, got %v", err)
	}
	if rm.a.updatedContent != nil {
		t.Fatal("update must not be applied")
	}
}

func TestUpdateAsset_OwnershipCheckedBeforeValidation(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	// both non-owner and invalid name: ownership must win
	err := s.UpdateAsset(context.Background(), testOther, 7, "", 0, "", nil)
	if !errors.Is(err, common.ErrorPermissionDenied) {
		t.Fatalf("want ErrorPermissionDenied, got %v", err)
	}
}

func TestTransferOwnership_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	if err := s.TransferOwnership(context.Background(), testOwner, 7, testOther); err != nil {
		t.Fatalf("TransferOwnership error: %v", err)
	}
	if rm.a.newOwner != testOther {
		t.Fatalf("owner not updated: %q", rm.a.newOwner)
	}
	if len(rm.g.upserts) != 0 {
		t.Fatalf("transfer must not touch grants: %v", rm.g.upserts)
	}
}

func TestTransferOwnership_InvalidTarget(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.TransferOwnership(context.Background(), testOwner, 7, "not-a-principal")
	if !errors.Is(err, common.ErrorInvalidParameters) {
		t.Fatalf("want ErrorInvalidParameters, got %v", err)
	}
}

func TestTransferOwnership_NonOwnerDenied(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.TransferOwnership(context.Background(), testOther, 7, testOther)
	if !errors.Is(err, common.ErrorPermissionDenied) {
		t.Fatalf("want ErrorPermissionDenied, got %v", err)
	}
}

func TestDeleteAsset_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	if err := s.DeleteAsset(context.Background(), testOwner, 7); err != nil {
		t.Fatalf("DeleteAsset error: %v", err)
	}
	if rm.a.deletedID != 7 {
		t.Fatalf("asset not deleted: %d", rm.a.deletedID)
	}
}

func TestDeleteAsset_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{a: &fakeAssetsRepo{getErr: common.ErrorNotFound}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.DeleteAsset(context.Background(), testOwner, 999)
	if !errors.Is(err, common.ErrorAssetNotFound) {
		t.Fatalf("want ErrorAssetNotFound, got %v", err)
	}
}

func TestDeleteAsset_NonOwnerDenied(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	existing := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: existing}, g: &fakeGrantsRepo{}, st: &fakeStateRepo{}}
	s := NewRegistryService(db, rm)

	err := s.DeleteAsset(context.Background(), testOther, 7)
	if !errors.Is(err, common.ErrorPermissionDenied) {
		t.Fatalf("want ErrorPermissionDenied, got %v", err)
	}
	if rm.a.deletedID != 0 {
		t.Fatal("delete must not be applied")
	}
}
