// Package assets provides a PostgreSQL-backed repository for asset
// metadata records.
package assets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/dbx"
	"github.com/avasiljevs/assetledger/internal/server/models"
)

// PostgresRepository implements asset storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new asset row. The ID must already be assigned by the
// registry counter; the monotonic counter makes collisions unreachable.
func (r *PostgresRepository) Create(ctx context.Context, asset *models.Asset) error {
	tags, err := json.Marshal(asset.Tags)
	if err != nil {
		return fmt.Errorf("tags marshal error: %w", err)
	}

	query := `
		INSERT INTO assets (id, name, owner, size_bytes, created_at, description, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.Name, asset.Owner, asset.SizeBytes, asset.CreatedAt, asset.Description, tags); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the asset row for id, or common.ErrorNotFound if absent.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Asset, error) {
	query := `
		SELECT id, name, owner, size_bytes, created_at, description, tags
		FROM assets
		WHERE id = $1
	`
	asset := &models.Asset{}
	var tags []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.ID, &asset.Name, &asset.Owner, &asset.SizeBytes, &asset.CreatedAt, &asset.Description, &tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(tags, &asset.Tags); err != nil {
		return nil, fmt.Errorf("tags unmarshal error: %w", err)
	}
	return asset, nil
}

// UpdateContent replaces the mutable content fields in place. Owner and
// created_at are never touched here. Returns common.ErrorNotFound when no
// row matched.
func (r *PostgresRepository) UpdateContent(ctx context.Context, asset *models.Asset) error {
	tags, err := json.Marshal(asset.Tags)
	if err != nil {
		return fmt.Errorf("tags marshal error: %w", err)
	}

	query := `
		UPDATE assets
		SET name = $2, size_bytes = $3, description = $4, tags = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, asset.ID, asset.Name, asset.SizeBytes, asset.Description, tags)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

// UpdateOwner sets the owner field.
func (r *PostgresRepository) UpdateOwner(ctx context.Context, id int64, owner string) error {
	query := `UPDATE assets SET owner = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

// Delete removes the asset row permanently. The id is never reissued
// because the counter only moves forward.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM assets WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

func checkOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
