package assets

import (
	"context"

	"github.com/avasiljevs/assetledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, asset *models.Asset) error
	Get(ctx context.Context, id int64) (*models.Asset, error)
	UpdateContent(ctx context.Context, asset *models.Asset) error
	UpdateOwner(ctx context.Context, id int64, owner string) error
	Delete(ctx context.Context, id int64) error
}
