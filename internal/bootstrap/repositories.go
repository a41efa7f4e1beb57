package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elite747/ValhallaLootList-sub000/internal/database/postgres"
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	LootList repository.LootList
	Priority repository.Priority
	Drop     repository.Drop
}

// InitializeRepositories creates all repository implementations.
// The drop repository needs the attendance window to compute eligibility in one query.
func InitializeRepositories(dbPool *pgxpool.Pool, scope domain.PriorityScope) *Repositories {
	return &Repositories{
		LootList: postgres.NewLootListRepository(dbPool),
		Priority: postgres.NewPriorityRepository(dbPool),
		Drop:     postgres.NewDropRepository(dbPool, scope.ObservedAttendances),
	}
}
