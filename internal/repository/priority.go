package repository

import (
	"context"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// Priority defines the data access required by the priority service
type Priority interface {
	GetCharacter(ctx context.Context, characterID string) (*domain.Character, error)
	// CountAttendances counts kills the character attended among the team's most recent `limit` raids
	CountAttendances(ctx context.Context, characterID string, limit int) (int, error)
	GetDonations(ctx context.Context, characterID string) ([]domain.MonthDonation, error)
	InsertDonation(ctx context.Context, donation *domain.MonthDonation) error
	// CountTimesSeen counts drops of the item the character was eligible for and passed on
	CountTimesSeen(ctx context.Context, characterID string, itemID int) (int, error)
	// GetEntryForItem returns the character's best priority unawarded entry holding the item
	// on their list for the phase and raid size, or nil
	GetEntryForItem(ctx context.Context, characterID string, phase, size, itemID int) (*domain.LootListEntry, error)
}
