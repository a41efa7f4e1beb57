package repository

import (
	"context"
	"time"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// Drop defines the data access required by the drop allocation service
type Drop interface {
	GetDrop(ctx context.Context, dropID string) (*domain.Drop, error)
	// GetEligibility lists every character present at the drop's kill, with the
	// list and entry they would compete with for the drop's item.
	GetEligibility(ctx context.Context, dropID string) ([]domain.DropEligibility, error)

	BeginTx(ctx context.Context) (DropTx, error)
}

// DropTx is the transactional half of the drop repository
type DropTx interface {
	Tx

	GetDropForUpdate(ctx context.Context, dropID string) (*domain.Drop, error)
	SetWinner(ctx context.Context, dropID string, winnerID, entryID *string, awardedAt *time.Time, awardedBy *string) error
	ReplacePasses(ctx context.Context, dropID string, passes []domain.DropPass) error
	LinkEntry(ctx context.Context, entryID, dropID string) error
	UnlinkEntries(ctx context.Context, dropID string) error
}
