package grpc

import (
	"context"
	"errors"

	"github.com/avasiljevs/assetledger/internal/common"
	pb "github.com/avasiljevs/assetledger/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapDomainError converts registry error kinds into gRPC statuses. The
// sentinel is matched with errors.Is so wrapped detail text survives into
// the status message.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, common.ErrorAssetNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorPermissionDenied),
		errors.Is(err, common.ErrorContentRestricted),
		errors.Is(err, common.ErrorInsufficientPrivileges),
		errors.Is(err, common.ErrorAccessDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorInvalidParameters),
		errors.Is(err, common.ErrorFormatValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorCapacityExceeded):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, common.ErrorDuplicateEntry):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapDomainError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateAsset(ctx context.Context, req *pb.CreateAssetRequest) (*pb.CreateAssetResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.registry.CreateAsset(ctx, caller, req.Name, int64(req.SizeBytes), req.Description, req.Tags)
	if err != nil {
		return nil, mapDomainError(err)
	}

	s.logger.Info(ctx, "Asset created", "asset_id", id)
	return &pb.CreateAssetResponse{AssetId: uint64(id)}, nil
}

func (s *GRPCServer) UpdateAsset(ctx context.Context, req *pb.UpdateAssetRequest) (*pb.UpdateAssetResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.registry.UpdateAsset(ctx, caller, int64(req.AssetId), req.Name, int64(req.SizeBytes), req.Description, req.Tags); err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.UpdateAssetResponse{}, nil
}

func (s *GRPCServer) TransferAssetOwnership(ctx context.Context, req *pb.TransferAssetOwnershipRequest) (*pb.TransferAssetOwnershipResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.registry.TransferOwnership(ctx, caller, int64(req.AssetId), req.NewOwner); err != nil {
		return nil, mapDomainError(err)
	}

	s.logger.Info(ctx, "Ownership transferred", "asset_id", req.AssetId)
	return &pb.TransferAssetOwnershipResponse{}, nil
}

func (s *GRPCServer) DeleteAsset(ctx context.Context, req *pb.DeleteAssetRequest) (*pb.DeleteAssetResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.registry.DeleteAsset(ctx, caller, int64(req.AssetId)); err != nil {
		return nil, mapDomainError(err)
	}

	s.logger.Info(ctx, "Asset deleted", "asset_id", req.AssetId)
	return &pb.DeleteAssetResponse{}, nil
}

func (s *GRPCServer) GetAssetInformation(ctx context.Context, req *pb.GetAssetInformationRequest) (*pb.GetAssetInformationResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	asset, err := s.access.GetAssetInformation(ctx, caller, int64(req.AssetId))
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.GetAssetInformationResponse{Asset: &pb.Asset{
		AssetId:     uint64(asset.ID),
		Name:        asset.Name,
		Owner:       asset.Owner,
		SizeBytes:   uint64(asset.SizeBytes),
		CreatedAt:   uint64(asset.CreatedAt),
		Description: asset.Description,
		Tags:        asset.Tags,
	}}, nil
}

func (s *GRPCServer) VerifyAccessStatus(ctx context.Context, req *pb.VerifyAccessStatusRequest) (*pb.VerifyAccessStatusResponse, error) {

	st, err := s.access.VerifyAccessStatus(ctx, int64(req.AssetId), req.Principal)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.VerifyAccessStatusResponse{
		HasGrantedAccess: st.HasGrantedAccess,
		IsAssetOwner:     st.IsAssetOwner,
		CanReadAsset:     st.CanReadAsset,
	}, nil
}

func (s *GRPCServer) GetAssetOwner(ctx context.Context, req *pb.GetAssetOwnerRequest) (*pb.GetAssetOwnerResponse, error) {

	owner, err := s.access.GetAssetOwner(ctx, int64(req.AssetId))
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.GetAssetOwnerResponse{Owner: owner}, nil
}

func (s *GRPCServer) GetRegistryStatistics(ctx context.Context, req *pb.GetRegistryStatisticsRequest) (*pb.GetRegistryStatisticsResponse, error) {

	stats, err := s.access.GetRegistryStatistics(ctx)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.GetRegistryStatisticsResponse{
		TotalAssetsRegistered: uint64(stats.TotalAssetsRegistered),
		SystemAdministrator:   stats.SystemAdministrator,
	}, nil
}

func (s *GRPCServer) GetAssetUploadUrl(ctx context.Context, req *pb.GetAssetUploadUrlRequest) (*pb.GetAssetUploadUrlResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, key, err := s.content.GetUploadURL(ctx, caller, int64(req.AssetId))
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.GetAssetUploadUrlResponse{Url: url, StorageKey: key}, nil
}

func (s *GRPCServer) GetAssetDownloadUrl(ctx context.Context, req *pb.GetAssetDownloadUrlRequest) (*pb.GetAssetDownloadUrlResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.content.GetDownloadURL(ctx, caller, int64(req.AssetId))
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &pb.GetAssetDownloadUrlResponse{Url: url}, nil
}
