package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/avasiljevs/assetledger/internal/common"
	pb "github.com/avasiljevs/assetledger/internal/proto"
	"github.com/avasiljevs/assetledger/internal/server/models"
	"github.com/avasiljevs/assetledger/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	regResp *models.User
	regErr  error

	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error
}

func (f *fakeUser) Register(ctx context.Context, username string, password string) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) Login(ctx context.Context, username string, password string) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

type fakeRegistry struct {
	createID  int64
	createErr error

	updateErr   error
	transferErr error
	deleteErr   error

	lastCaller string
}

func (f *fakeRegistry) CreateAsset(ctx context.Context, caller string, name string, sizeBytes int64, description string, tags []string) (int64, error) {
	f.lastCaller = caller
	return f.createID, f.createErr
}
func (f *fakeRegistry) UpdateAsset(ctx context.Context, caller string, assetID int64, name string, sizeBytes int64, description string, tags []string) error {
	f.lastCaller = caller
	return f.updateErr
}
func (f *fakeRegistry) TransferOwnership(ctx context.Context, caller string, assetID int64, newOwner string) error {
	f.lastCaller = caller
	return f.transferErr
}
func (f *fakeRegistry) DeleteAsset(ctx context.Context, caller string, assetID int64) error {
	f.lastCaller = caller
	return f.deleteErr
}

type fakeAccess struct {
	infoResp *models.Asset
	infoErr  error

	statusResp *models.AccessStatus
	statusErr  error

	ownerResp string
	ownerErr  error

	statsResp *models.RegistryStatistics
	statsErr  error
}

func (f *fakeAccess) GetAssetInformation(ctx context.Context, caller string, assetID int64) (*models.Asset, error) {
	return f.infoResp, f.infoErr
}
func (f *fakeAccess) VerifyAccessStatus(ctx context.Context, assetID int64, principal string) (*models.AccessStatus, error) {
	return f.statusResp, f.statusErr
}
func (f *fakeAccess) GetAssetOwner(ctx context.Context, assetID int64) (string, error) {
	return f.ownerResp, f.ownerErr
}
func (f *fakeAccess) GetRegistryStatistics(ctx context.Context) (*models.RegistryStatistics, error) {
	return f.statsResp, f.statsErr
}

type fakeContent struct {
	uploadURL string
	uploadKey string
	uploadErr error

	downloadURL string
	downloadErr error
}

func (f *fakeContent) GetUploadURL(ctx context.Context, caller string, assetID int64) (string, string, error) {
	return f.uploadURL, f.uploadKey, f.uploadErr
}
func (f *fakeContent) GetDownloadURL(ctx context.Context, caller string, assetID int64) (string, error) {
	return f.downloadURL, f.downloadErr
}

func newHandlerServer(u UserService, r RegistryService, a AccessService, c ContentService) *GRPCServer {
	return &GRPCServer{
		logger:   nopLogger{},
		users:    u,
		registry: r,
		access:   a,
		content:  c,
	}
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}

// ---- tests ----

func TestRegisterUser(t *testing.T) {
	s := newHandlerServer(&fakeUser{regResp: &models.User{ID: "u1", UserName: "alice"}}, nil, nil, nil)

	resp, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("RegisterUser error: %v", err)
	}
	if resp.UserId != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterUser_Duplicate(t *testing.T) {
	s := newHandlerServer(&fakeUser{regErr: common.ErrorDuplicateEntry}, nil, nil, nil)

	_, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "alice", Password: "pw"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", status.Code(err))
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	s := newHandlerServer(&fakeUser{loginErr: common.ErrorUnauthorized}, nil, nil, nil)

	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestLogin_Success(t *testing.T) {
	s := newHandlerServer(&fakeUser{loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}, nil, nil, nil)

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken != "a" || resp.RefreshToken != "r" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPing(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, nil)
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil || resp.Status != "OK" {
		t.Fatalf("unexpected ping result: %v %v", resp, err)
	}
}

func TestCreateAsset_Success(t *testing.T) {
	reg := &fakeRegistry{createID: 1}
	s := newHandlerServer(nil, reg, nil, nil)

	resp, err := s.CreateAsset(authedCtx("u1"), &pb.CreateAssetRequest{
		Name: "doc", SizeBytes: 100, Description: "x", Tags: []string{"a"},
	})
	if err != nil {
		t.Fatalf("CreateAsset error: %v", err)
	}
	if resp.AssetId != 1 {
		t.Fatalf("unexpected id: %d", resp.AssetId)
	}
	if reg.lastCaller != "u1" {
		t.Fatalf("caller not propagated: %q", reg.lastCaller)
	}
}

func TestCreateAsset_NoCaller(t *testing.T) {
	s := newHandlerServer(nil, &fakeRegistry{}, nil, nil)

	_, err := s.CreateAsset(context.Background(), &pb.CreateAssetRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", common.ErrorAssetNotFound, codes.NotFound},
		{"permission denied", common.ErrorPermissionDenied, codes.PermissionDenied},
		{"content restricted", common.ErrorContentRestricted, codes.PermissionDenied},
		{"invalid parameters", common.ErrorInvalidParameters, codes.InvalidArgument},
		{"format validation", common.ErrorFormatValidation, codes.InvalidArgument},
		{"capacity exceeded", common.ErrorCapacityExceeded, codes.OutOfRange},
		{"duplicate entry", common.ErrorDuplicateEntry, codes.AlreadyExists},
		{"unauthorized", common.ErrorUnauthorized, codes.Unauthenticated},
		{"internal", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(mapDomainError(tt.err)); got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUpdateAsset_ErrorPropagates(t *testing.T) {
	s := newHandlerServer(nil, &fakeRegistry{updateErr: common.ErrorPermissionDenied}, nil, nil)

	_, err := s.UpdateAsset(authedCtx("u2"), &pb.UpdateAssetRequest{AssetId: 7})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}
}

func TestTransferAssetOwnership(t *testing.T) {
	reg := &fakeRegistry{}
	s := newHandlerServer(nil, reg, nil, nil)

	if _, err := s.TransferAssetOwnership(authedCtx("u1"), &pb.TransferAssetOwnershipRequest{AssetId: 7, NewOwner: "u2"}); err != nil {
		t.Fatalf("TransferAssetOwnership error: %v", err)
	}
	if reg.lastCaller != "u1" {
		t.Fatalf("caller not propagated: %q", reg.lastCaller)
	}
}

func TestDeleteAsset_NotFound(t *testing.T) {
	s := newHandlerServer(nil, &fakeRegistry{deleteErr: common.ErrorAssetNotFound}, nil, nil)

	_, err := s.DeleteAsset(authedCtx("u1"), &pb.DeleteAssetRequest{AssetId: 999})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestGetAssetInformation(t *testing.T) {
	asset := &models.Asset{ID: 7, Name: "doc", Owner: "u1", SizeBytes: 100, CreatedAt: 5, Description: "x", Tags: []string{"a", "b"}}
	s := newHandlerServer(nil, nil, &fakeAccess{infoResp: asset}, nil)

	resp, err := s.GetAssetInformation(authedCtx("u1"), &pb.GetAssetInformationRequest{AssetId: 7})
	if err != nil {
		t.Fatalf("GetAssetInformation error: %v", err)
	}
	got := resp.Asset
	if got.AssetId != 7 || got.Name != "doc" || got.Owner != "u1" || got.SizeBytes != 100 || got.CreatedAt != 5 || len(got.Tags) != 2 {
		t.Fatalf("unexpected asset: %+v", got)
	}
}

func TestGetAssetInformation_Restricted(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeAccess{infoErr: common.ErrorContentRestricted}, nil)

	_, err := s.GetAssetInformation(authedCtx("u2"), &pb.GetAssetInformationRequest{AssetId: 7})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}
}

func TestVerifyAccessStatus(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeAccess{statusResp: &models.AccessStatus{HasGrantedAccess: true, CanReadAsset: true}}, nil)

	resp, err := s.VerifyAccessStatus(context.Background(), &pb.VerifyAccessStatusRequest{AssetId: 7, Principal: "u2"})
	if err != nil {
		t.Fatalf("VerifyAccessStatus error: %v", err)
	}
	if !resp.HasGrantedAccess || resp.IsAssetOwner || !resp.CanReadAsset {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetAssetOwner(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeAccess{ownerResp: "u1"}, nil)

	resp, err := s.GetAssetOwner(context.Background(), &pb.GetAssetOwnerRequest{AssetId: 7})
	if err != nil {
		t.Fatalf("GetAssetOwner error: %v", err)
	}
	if resp.Owner != "u1" {
		t.Fatalf("unexpected owner: %q", resp.Owner)
	}
}

func TestGetRegistryStatistics(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeAccess{statsResp: &models.RegistryStatistics{TotalAssetsRegistered: 3, SystemAdministrator: "administrator"}}, nil)

	resp, err := s.GetRegistryStatistics(context.Background(), &pb.GetRegistryStatisticsRequest{})
	if err != nil {
		t.Fatalf("GetRegistryStatistics error: %v", err)
	}
	if resp.TotalAssetsRegistered != 3 || resp.SystemAdministrator != "administrator" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetAssetUploadUrl(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, &fakeContent{uploadURL: "https://s3/put", uploadKey: "assets/7"})

	resp, err := s.GetAssetUploadUrl(authedCtx("u1"), &pb.GetAssetUploadUrlRequest{AssetId: 7})
	if err != nil {
		t.Fatalf("GetAssetUploadUrl error: %v", err)
	}
	if resp.Url != "https://s3/put" || resp.StorageKey != "assets/7" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetAssetDownloadUrl_Restricted(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, &fakeContent{downloadErr: common.ErrorContentRestricted})

	_, err := s.GetAssetDownloadUrl(authedCtx("u2"), &pb.GetAssetDownloadUrlRequest{AssetId: 7})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}
}
