// Package services contains server-side business logic. This file
// implements RegistryService, which owns every mutation of the asset
// registry: creation with the monotonic id counter, owner-gated update,
// ownership transfer, and deletion. Each operation runs inside a single
// transaction, so it either commits all of its state changes or none.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/dbx"
	"github.com/avasiljevs/assetledger/internal/server/models"
	"github.com/avasiljevs/assetledger/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// RegistryService provides the write surface of the asset registry.
type RegistryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewRegistryService constructs a RegistryService using repositories from m.
func NewRegistryService(db *sql.DB, m repomanager.RepositoryManager) *RegistryService {
	return &RegistryService{db: db, repomanager: m}
}

// CreateAsset validates the content fields, assigns the next asset id,
// records the current registry sequence number into created_at, inserts
// the record owned by caller and the caller's read grant, and returns the
// new id. The counter advance, record insert and grant insert share one
// transaction, so a failure anywhere leaves no partial state and no gap
// in the id space.
func (s *RegistryService) CreateAsset(ctx context.Context, caller string, name string, sizeBytes int64, description string, tags []string) (int64, error) {
	if err := models.ValidateAssetContent(name, sizeBytes, description, tags); err != nil {
		return 0, err
	}

	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		stateRepo := s.repomanager.RegistryState(tx)

		newID, err := stateRepo.NextAssetID(ctx)
		if err != nil {
			return fmt.Errorf("error advancing asset counter: %w", err)
		}

		seq, err := stateRepo.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("error reading registry sequence: %w", err)
		}

		asset := &models.Asset{
			ID:          newID,
			Name:        name,
			Owner:       caller,
			SizeBytes:   sizeBytes,
			CreatedAt:   seq,
			Description: description,
			Tags:        tags,
		}
		if err := s.repomanager.Assets(tx).Create(ctx, asset); err != nil {
			return fmt.Errorf("error creating asset: %w", err)
		}

		// The creator grant is the only grant ever written implicitly.
		if err := s.repomanager.Grants(tx).Upsert(ctx, newID, caller, true); err != nil {
			return fmt.Errorf("error creating access grant: %w", err)
		}

		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateAsset replaces the content fields of an existing asset. Checks
// run in contract order: existence, then ownership, then field
// validation. Owner and created_at are never touched.
func (s *RegistryService) UpdateAsset(ctx context.Context, caller string, assetID int64, name string, sizeBytes int64, description string, tags []string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		assetRepo := s.repomanager.Assets(tx)

		asset, err := assetRepo.Get(ctx, assetID)
		if err != nil {
			return mapAssetLookupError(err)
		}
		if asset.Owner != caller {
			return common.ErrorPermissionDenied
		}
		if err := models.ValidateAssetContent(name, sizeBytes, description, tags); err != nil {
			return err
		}

		asset.Name = name
		asset.SizeBytes = sizeBytes
		asset.Description = description
		asset.Tags = tags

		if err := assetRepo.UpdateContent(ctx, asset); err != nil {
			return fmt.Errorf("error updating asset: %w", err)
		}
		return nil
	})
}

// TransferOwnership hands the asset to newOwner. The new owner is only
// checked for being a well-formed principal; it needs no prior grant,
// and no grants are created or revoked as a side effect.
func (s *RegistryService) TransferOwnership(ctx context.Context, caller string, assetID int64, newOwner string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		assetRepo := s.repomanager.Assets(tx)

		asset, err := assetRepo.Get(ctx, assetID)
		if err != nil {
			return mapAssetLookupError(err)
		}
		if asset.Owner != caller {
			return common.ErrorPermissionDenied
		}
		if _, err := uuid.Parse(newOwner); err != nil {
			return fmt.Errorf("%w: new owner is not a well-formed principal", common.ErrorInvalidParameters)
		}

		if err := assetRepo.UpdateOwner(ctx, assetID, newOwner); err != nil {
			return fmt.Errorf("error transferring ownership: %w", err)
		}
		return nil
	})
}

// DeleteAsset removes the record permanently. The id is never reissued
// and the registry counter is not decremented. Grant rows are left in
// place; they are unreachable because every read checks existence first.
func (s *RegistryService) DeleteAsset(ctx context.Context, caller string, assetID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		assetRepo := s.repomanager.Assets(tx)

		asset, err := assetRepo.Get(ctx, assetID)
		if err != nil {
			return mapAssetLookupError(err)
		}
		if asset.Owner != caller {
			return common.ErrorPermissionDenied
		}

		if err := assetRepo.Delete(ctx, assetID); err != nil {
			return fmt.Errorf("error deleting asset: %w", err)
		}
		return nil
	})
}

// mapAssetLookupError turns the repository-level not-found sentinel into
// the registry's AssetNotFound kind and passes everything else through.
func mapAssetLookupError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorAssetNotFound
	}
	return fmt.Errorf("error loading asset: %w", err)
}
