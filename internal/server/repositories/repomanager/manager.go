package repomanager

import (
	"context"
	"database/sql"

	"github.com/avasiljevs/assetledger/internal/dbx"
	"github.com/avasiljevs/assetledger/internal/server/repositories/assets"
	"github.com/avasiljevs/assetledger/internal/server/repositories/grants"
	"github.com/avasiljevs/assetledger/internal/server/repositories/refreshtokens"
	"github.com/avasiljevs/assetledger/internal/server/repositories/registrystate"
	"github.com/avasiljevs/assetledger/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to an arbitrary DBTX, so a
// service can run several repositories against one shared transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Assets(db dbx.DBTX) assets.Repository
	Grants(db dbx.DBTX) grants.Repository
	RegistryState(db dbx.DBTX) registrystate.Repository
}
