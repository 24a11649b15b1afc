package client

import (
	"context"
	"errors"
	"testing"

	"github.com/avasiljevs/assetledger/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestWithAccessToken_SetsMetadata(t *testing.T) {
	ctx := withAccessToken(context.Background(), "tok-1")

	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("no outgoing metadata")
	}
	toks := md.Get(common.AccessTokenHeaderName)
	if len(toks) != 1 || toks[0] != "tok-1" {
		t.Fatalf("unexpected token metadata: %v", toks)
	}
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.NewOutgoingContext(context.Background(),
		metadata.New(map[string]string{common.AccessTokenHeaderName: "stale"}))

	ctx = withAccessToken(ctx, "fresh")

	md, _ := metadata.FromOutgoingContext(ctx)
	toks := md.Get(common.AccessTokenHeaderName)
	if len(toks) != 1 || toks[0] != "fresh" {
		t.Fatalf("unexpected token metadata: %v", toks)
	}
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{"permission denied", status.Error(codes.PermissionDenied, "x"), ErrDenied},
		{"not found", status.Error(codes.NotFound, "x"), ErrNotFound},
		{"invalid argument", status.Error(codes.InvalidArgument, "x"), ErrInvalid},
		{"out of range", status.Error(codes.OutOfRange, "x"), ErrInvalid},
		{"already exists", status.Error(codes.AlreadyExists, "x"), ErrInvalid},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.mapError(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("want nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLoginStateTracking(t *testing.T) {
	c := &GRPCClient{}
	if c.IsLoggedIn() {
		t.Fatal("fresh client must not be logged in")
	}

	c.accessToken = "a"
	c.refreshToken = "r"
	if !c.IsLoggedIn() {
		t.Fatal("client with tokens must be logged in")
	}

	c.Logout()
	if c.IsLoggedIn() || c.refreshToken != "" {
		t.Fatal("logout must drop tokens")
	}
}
