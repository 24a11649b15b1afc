package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/server/models"
)

func TestGetAssetInformation_Owner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Name: "doc", Owner: testOwner, SizeBytes: 100}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getErr: common.ErrorNotFound},
	}
	s := NewAccessService(db, rm)

	got, err := s.GetAssetInformation(context.Background(), testOwner, 7)
	if err != nil {
		t.Fatalf("GetAssetInformation error: %v", err)
	}
	if got.Name != "doc" {
		t.Fatalf("unexpected asset: %+v", got)
	}
}

func TestGetAssetInformation_GrantedPrincipal(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getOut: &models.AccessGrant{AssetID: 7, Principal: testOther, ReadEnabled: true}},
	}
	s := NewAccessService(db, rm)

	if _, err := s.GetAssetInformation(context.Background(), testOther, 7); err != nil {
		t.Fatalf("GetAssetInformation error: %v", err)
	}
}

func TestGetAssetInformation_NoGrantRestricted(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getErr: common.ErrorNotFound},
	}
	s := NewAccessService(db, rm)

	_, err := s.GetAssetInformation(context.Background(), testOther, 7)
	if !errors.Is(err, common.ErrorContentRestricted) {
		t.Fatalf("want ErrorContentRestricted, got %v", err)
	}
}

func TestGetAssetInformation_DisabledGrantRestricted(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getOut: &models.AccessGrant{AssetID: 7, Principal: testOther, ReadEnabled: false}},
	}
	s := NewAccessService(db, rm)

	_, err := s.GetAssetInformation(context.Background(), testOther, 7)
	if !errors.Is(err, common.ErrorContentRestricted) {
		t.Fatalf("want ErrorContentRestricted, got %v", err)
	}
}

func TestGetAssetInformation_MissingAssetBeatsAccess(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getErr: common.ErrorNotFound},
		g: &fakeGrantsRepo{getErr: common.ErrorNotFound},
	}
	s := NewAccessService(db, rm)

	_, err := s.GetAssetInformation(context.Background(), testOther, 999)
	if !errors.Is(err, common.ErrorAssetNotFound) {
		t.Fatalf("want ErrorAssetNotFound, got %v", err)
	}
}

func TestVerifyAccessStatus_Owner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getErr: common.ErrorNotFound},
	}
	s := NewAccessService(db, rm)

	st, err := s.VerifyAccessStatus(context.Background(), 7, testOwner)
	if err != nil {
		t.Fatalf("VerifyAccessStatus error: %v", err)
	}
	if st.HasGrantedAccess || !st.IsAssetOwner || !st.CanReadAsset {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestVerifyAccessStatus_GrantedNonOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getOut: &models.AccessGrant{AssetID: 7, Principal: testOther, ReadEnabled: true}},
	}
	s := NewAccessService(db, rm)

	st, err := s.VerifyAccessStatus(context.Background(), 7, testOther)
	if err != nil {
		t.Fatalf("VerifyAccessStatus error: %v", err)
	}
	if !st.HasGrantedAccess || st.IsAssetOwner || !st.CanReadAsset {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestVerifyAccessStatus_Stranger(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getOut: asset},
		g: &fakeGrantsRepo{getErr: common.ErrorNotFound},
	}
	s := NewAccessService(db, rm)

	st, err := s.VerifyAccessStatus(context.Background(), 7, testOther)
	if err != nil {
		t.Fatalf("VerifyAccessStatus error: %v", err)
	}
	if st.HasGrantedAccess || st.IsAssetOwner || st.CanReadAsset {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestVerifyAccessStatus_MissingAsset(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		a: &fakeAssetsRepo{getErr: common.ErrorNotFound},
		g: &fakeGrantsRepo{},
	}
	s := NewAccessService(db, rm)

	_, err := s.VerifyAccessStatus(context.Background(), 999, testOther)
	if !errors.Is(err, common.ErrorAssetNotFound) {
		t.Fatalf("want ErrorAssetNotFound, got %v", err)
	}
}

func TestGetAssetOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	asset := &models.Asset{ID: 7, Owner: testOwner}
	rm := &fakeRepoManager{a: &fakeAssetsRepo{getOut: asset}, g: &fakeGrantsRepo{}}
	s := NewAccessService(db, rm)

	owner, err := s.GetAssetOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetAssetOwner error: %v", err)
	}
	if owner != testOwner {
		t.Fatalf("want %q, got %q", testOwner, owner)
	}

	rm.a.getErr = common.ErrorNotFound
	if _, err := s.GetAssetOwner(context.Background(), 999); !errors.Is(err, common.ErrorAssetNotFound) {
		t.Fatalf("want ErrorAssetNotFound, got %v", err)
	}
}

func TestGetRegistryStatistics(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		st: &fakeStateRepo{getOut: &models.RegistryState{LastAssetID: 42, Administrator: "administrator"}},
	}
	s := NewAccessService(db, rm)

	stats, err := s.GetRegistryStatistics(context.Background())
	if err != nil {
		t.Fatalf("GetRegistryStatistics error: %v", err)
	}
	if stats.TotalAssetsRegistered != 42 || stats.SystemAdministrator != "administrator" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
