// Package registrystate provides a PostgreSQL-backed repository for the
// singleton registry counter row and the creation sequence.
package registrystate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/dbx"
	"github.com/avasiljevs/assetledger/internal/server/models"
)

// PostgresRepository implements registry-state storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Init records the administrator identity on first boot. The row is
// written at most once; later calls are no-ops so the administrator value
// never changes after initialization.
func (r *PostgresRepository) Init(ctx context.Context, administrator string) error {
	query := `
		INSERT INTO registry_state (id, last_asset_id, administrator)
		VALUES (1, 0, $1)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, administrator); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the singleton state row.
func (r *PostgresRepository) Get(ctx context.Context) (*models.RegistryState, error) {
	query := `SELECT last_asset_id, administrator FROM registry_state WHERE id = 1`
	state := &models.RegistryState{}
	if err := r.db.QueryRowContext(ctx, query).Scan(&state.LastAssetID, &state.Administrator); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return state, nil
}

// NextAssetID advances the creation counter by exactly one and returns
// the new value. The counter only moves forward, so ids are dense and
// never reused even after deletions. Must run inside the creation
// transaction so a failed creation rolls the counter back with it.
func (r *PostgresRepository) NextAssetID(ctx context.Context) (int64, error) {
	query := `
		UPDATE registry_state SET last_asset_id = last_asset_id + 1
		WHERE id = 1
		RETURNING last_asset_id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// NextSequence returns the next registry sequence number. Creation
// records it verbatim into the asset's created_at field; it plays the
// role a block height plays in chain-hosted registries.
func (r *PostgresRepository) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('registry_sequence')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return seq, nil
}
