package components

import (
	"autocare-api/internal/infra/db"
	"autocare-api/internal/infra/readstore"
	"autocare-api/internal/infra/uow"
	"autocare-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are created per transaction inside the unit of
// work; only the read stores and the UoW itself live in the container.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentViewRepo)),
		),
		fx.Annotate(
			readstore.NewTimeLogReadStore,
			fx.As(new(queries.TimeLogViewRepo)),
		),
		fx.Annotate(
			readstore.NewModificationRequestReadStore,
			fx.As(new(queries.ModificationViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
