// Package client wraps the generated gRPC stubs with token handling and
// error mapping so the CLI layer can work with plain Go values.
package client

import (
	"context"
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
	pb "github.com/avasiljevs/assetledger/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AssetInfo is the CLI-side view of a registry record.
type AssetInfo struct {
	ID          uint64
	Name        string
	Owner       string
	SizeBytes   uint64
	CreatedAt   uint64
	Description string
	Tags        []string
}

// AccessStatus mirrors the server's access probe result.
type AccessStatus struct {
	HasGrantedAccess bool
	IsAssetOwner     bool
	CanReadAsset     bool
}

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.AssetLedgerServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token to every call
// and retries once with a refreshed pair when the server reports an
// expired token.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewAssetLedgerClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAssetLedgerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// IsLoggedIn reports whether a token pair is currently held.
func (s *GRPCClient) IsLoggedIn() bool {
	return s.accessToken != ""
}

// Logout drops the held token pair.
func (s *GRPCClient) Logout() {
	s.accessToken = ""
	s.refreshToken = ""
}

func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) (string, error) {

	req := &pb.RegisterUserRequest{Username: userName, Password: string(password)}

	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) error {

	req := &pb.LoginRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) CreateAsset(ctx context.Context, name string, sizeBytes uint64, description string, tags []string) (uint64, error) {

	req := &pb.CreateAssetRequest{Name: name, SizeBytes: sizeBytes, Description: description, Tags: tags}

	resp, err := s.client.CreateAsset(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.AssetId, nil
}

func (s *GRPCClient) UpdateAsset(ctx context.Context, assetID uint64, name string, sizeBytes uint64, description string, tags []string) error {

	req := &pb.UpdateAssetRequest{AssetId: assetID, Name: name, SizeBytes: sizeBytes, Description: description, Tags: tags}

	if _, err := s.client.UpdateAsset(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) TransferAssetOwnership(ctx context.Context, assetID uint64, newOwner string) error {

	req := &pb.TransferAssetOwnershipRequest{AssetId: assetID, NewOwner: newOwner}

	if _, err := s.client.TransferAssetOwnership(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteAsset(ctx context.Context, assetID uint64) error {

	if _, err := s.client.DeleteAsset(ctx, &pb.DeleteAssetRequest{AssetId: assetID}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetAssetInformation(ctx context.Context, assetID uint64) (*AssetInfo, error) {

	resp, err := s.client.GetAssetInformation(ctx, &pb.GetAssetInformationRequest{AssetId: assetID})
	if err != nil {
		return nil, s.mapError(err)
	}

	a := resp.Asset
	return &AssetInfo{
		ID:          a.AssetId,
		Name:        a.Name,
		Owner:       a.Owner,
		SizeBytes:   a.SizeBytes,
		CreatedAt:   a.CreatedAt,
		Description: a.Description,
		Tags:        a.Tags,
	}, nil
}

func (s *GRPCClient) VerifyAccessStatus(ctx context.Context, assetID uint64, principal string) (*AccessStatus, error) {

	resp, err := s.client.VerifyAccessStatus(ctx, &pb.VerifyAccessStatusRequest{AssetId: assetID, Principal: principal})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &AccessStatus{
		HasGrantedAccess: resp.HasGrantedAccess,
		IsAssetOwner:     resp.IsAssetOwner,
		CanReadAsset:     resp.CanReadAsset,
	}, nil
}

func (s *GRPCClient) GetAssetOwner(ctx context.Context, assetID uint64) (string, error) {

	resp, err := s.client.GetAssetOwner(ctx, &pb.GetAssetOwnerRequest{AssetId: assetID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Owner, nil
}

func (s *GRPCClient) GetRegistryStatistics(ctx context.Context) (uint64, string, error) {

	resp, err := s.client.GetRegistryStatistics(ctx, &pb.GetRegistryStatisticsRequest{})
	if err != nil {
		return 0, "", s.mapError(err)
	}
	return resp.TotalAssetsRegistered, resp.SystemAdministrator, nil
}

func (s *GRPCClient) GetAssetUploadUrl(ctx context.Context, assetID uint64) (string, string, error) {

	resp, err := s.client.GetAssetUploadUrl(ctx, &pb.GetAssetUploadUrlRequest{AssetId: assetID})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Url, resp.StorageKey, nil
}

func (s *GRPCClient) GetAssetDownloadUrl(ctx context.Context, assetID uint64) (string, error) {

	resp, err := s.client.GetAssetDownloadUrl(ctx, &pb.GetAssetDownloadUrlRequest{AssetId: assetID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrDenied
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument, codes.OutOfRange, codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
