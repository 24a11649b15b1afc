// Package grants provides a PostgreSQL-backed repository for per-asset
// read-access grants.
package grants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/dbx"
	"github.com/avasiljevs/assetledger/internal/server/models"
)

// PostgresRepository implements grant storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert writes the grant row for (assetID, principal).
func (r *PostgresRepository) Upsert(ctx context.Context, assetID int64, principal string, readEnabled bool) error {
	query := `
		INSERT INTO access_grants (asset_id, principal, read_enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (asset_id, principal)
		DO UPDATE SET read_enabled = EXCLUDED.read_enabled
	`
	if _, err := r.db.ExecContext(ctx, query, assetID, principal, readEnabled); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the grant row for (assetID, principal), or
// common.ErrorNotFound when no explicit grant exists. Absence means
// read_enabled=false; callers default at the call site rather than the
// repository storing sentinel rows.
func (r *PostgresRepository) Get(ctx context.Context, assetID int64, principal string) (*models.AccessGrant, error) {
	query := `
		SELECT asset_id, principal, read_enabled
		FROM access_grants
		WHERE asset_id = $1 AND principal = $2
	`
	grant := &models.AccessGrant{}
	err := r.db.QueryRowContext(ctx, query, assetID, principal).Scan(&grant.AssetID, &grant.Principal, &grant.ReadEnabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return grant, nil
}
