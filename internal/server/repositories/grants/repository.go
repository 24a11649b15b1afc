package grants

import (
	"context"

	"github.com/avasiljevs/assetledger/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, assetID int64, principal string, readEnabled bool) error
	Get(ctx context.Context, assetID int64, principal string) (*models.AccessGrant, error)
}
