package registrystate

import (
	"context"

	"github.com/avasiljevs/assetledger/internal/server/models"
)

type Repository interface {
	Init(ctx context.Context, administrator string) error
	Get(ctx context.Context) (*models.RegistryState, error)
	NextAssetID(ctx context.Context) (int64, error)
	NextSequence(ctx context.Context) (int64, error)
}
