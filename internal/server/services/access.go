package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/server/models"
	"github.com/avasiljevs/assetledger/internal/server/repositories/repomanager"
)

// AccessService provides the read surface of the asset registry: metadata
// lookup gated by the per-principal access list, plus the ungated owner,
// access-status and statistics queries.
type AccessService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAccessService constructs an AccessService using repositories from m.
func NewAccessService(db *sql.DB, m repomanager.RepositoryManager) *AccessService {
	return &AccessService{db: db, repomanager: m}
}

// GetAssetInformation returns the full metadata record of an asset. The
// caller must either own the asset or hold an enabled read grant;
// otherwise the call fails with ErrorContentRestricted. Existence is
// checked before access, so a missing asset is always AssetNotFound.
func (s *AccessService) GetAssetInformation(ctx context.Context, caller string, assetID int64) (*models.Asset, error) {
	asset, err := s.repomanager.Assets(s.db).Get(ctx, assetID)
	if err != nil {
		return nil, mapAssetLookupError(err)
	}
	if asset.Owner != caller {
		ok, err := s.hasReadGrant(ctx, assetID, caller)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, common.ErrorContentRestricted
		}
	}
	return asset, nil
}

// VerifyAccessStatus reports whether principal holds an enabled read grant
// for the asset, whether it is the owner, and the disjunction of the two.
// The query itself is ungated: any caller may probe any pair.
func (s *AccessService) VerifyAccessStatus(ctx context.Context, assetID int64, principal string) (*models.AccessStatus, error) {
	asset, err := s.repomanager.Assets(s.db).Get(ctx, assetID)
	if err != nil {
		return nil, mapAssetLookupError(err)
	}
	granted, err := s.hasReadGrant(ctx, assetID, principal)
	if err != nil {
		return nil, err
	}
	isOwner := asset.Owner == principal
	return &models.AccessStatus{
		HasGrantedAccess: granted,
		IsAssetOwner:     isOwner,
		CanReadAsset:     granted || isOwner,
	}, nil
}

// GetAssetOwner returns the current owner of an asset. Ungated.
func (s *AccessService) GetAssetOwner(ctx context.Context, assetID int64) (string, error) {
	asset, err := s.repomanager.Assets(s.db).Get(ctx, assetID)
	if err != nil {
		return "", mapAssetLookupError(err)
	}
	return asset.Owner, nil
}

// GetRegistryStatistics returns the cumulative number of assets ever
// registered and the recorded administrator principal. The count never
// decreases when assets are deleted.
func (s *AccessService) GetRegistryStatistics(ctx context.Context) (*models.RegistryStatistics, error) {
	state, err := s.repomanager.RegistryState(s.db).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading registry state: %w", err)
	}
	return &models.RegistryStatistics{
		TotalAssetsRegistered: state.LastAssetID,
		SystemAdministrator:   state.Administrator,
	}, nil
}

// hasReadGrant resolves the access list entry for (assetID, principal).
// An absent entry means no access.
func (s *AccessService) hasReadGrant(ctx context.Context, assetID int64, principal string) (bool, error) {
	grant, err := s.repomanager.Grants(s.db).Get(ctx, assetID, principal)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error loading access grant: %w", err)
	}
	return grant.ReadEnabled, nil
}
