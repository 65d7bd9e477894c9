package components

import (
	"plateful/internal/infra/db"
	"plateful/internal/infra/ledger"
	"plateful/internal/infra/readstore"
	"plateful/internal/infra/uow"
	"plateful/internal/pkg/config"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Readstores
		fx.Annotate(
			readstore.NewBundleReadStore,
			fx.As(new(queries.BundleReadStore)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		// Points ledger gateway
		fx.Annotate(
			NewLedgerGateway,
			fx.As(new(shared.PointsLedger)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewLedgerGateway(cfg config.Config) *ledger.HTTPGateway {
	return ledger.NewHTTPGateway(cfg.Ledger)
}
