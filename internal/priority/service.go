package priority

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/donation"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
	"github.com/Elite747/ValhallaLootList-sub000/internal/metrics"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

// Report is a character's priority breakdown for one item
type Report struct {
	CharacterID string         `json:"character_id"`
	ItemID      int            `json:"item_id"`
	Bonuses     []domain.Bonus `json:"bonuses"`
	// Rank and Score are nil when the character has no entry holding the item
	Rank  *byte `json:"rank,omitempty"`
	Score *int  `json:"score,omitempty"`
}

// Service defines the interface for priority operations
type Service interface {
	Bonuses(ctx context.Context, characterID string, phase, size, itemID int) (*Report, error)
	Evaluate(ctx context.Context, e domain.DropEligibility, itemID int) (*Report, error)
	RecordDonation(ctx context.Context, d domain.MonthDonation) error
	DonationCredit(ctx context.Context, characterID string) (int64, error)
}

type service struct {
	repo       repository.Priority
	calculator *Calculator
	ledgers    *ledgerCache
	now        func() time.Time
}

// Option configures the priority service
type Option func(*service)

// WithClock overrides the time source used to pick the current month
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithLedgerCache sets the ledger cache size and TTL
func WithLedgerCache(size int, ttl time.Duration) Option {
	return func(s *service) {
		s.ledgers = newLedgerCache(size, ttl)
	}
}

// NewService creates a new priority service
func NewService(repo repository.Priority, calculator *Calculator, opts ...Option) Service {
	s := &service{
		repo:       repo,
		calculator: calculator,
		ledgers:    newLedgerCache(DefaultLedgerCacheSize, DefaultLedgerCacheTTL),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bonuses loads everything the formulas need for one character and item.
// The entry is taken from the character's list for the phase and raid size, the same
// one drop standings use.
func (s *service) Bonuses(ctx context.Context, characterID string, phase, size, itemID int) (*Report, error) {
	log := logger.FromContext(ctx)

	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCharacter, err)
	}
	if character == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
	}

	attendances, err := s.repo.CountAttendances(ctx, characterID, s.calculator.Scope().ObservedAttendances)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCountAttended, err)
	}

	timesSeen, err := s.repo.CountTimesSeen(ctx, characterID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCountSeen, err)
	}

	entry, err := s.repo.GetEntryForItem(ctx, characterID, phase, size, itemID)
	if err != nil && !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetEntry, err)
	}

	report, err := s.Evaluate(ctx, domain.DropEligibility{
		Character:  *character,
		Entry:      entry,
		Attendance: attendances,
		TimesSeen:  timesSeen,
	}, itemID)
	if err != nil {
		return nil, err
	}

	if report.Score != nil {
		log.Debug("Computed priority", "character_id", characterID, "phase", phase, "size", size, "item_id", itemID, "score", *report.Score)
	}
	return report, nil
}

// Evaluate scores an already loaded eligibility record.
// Donation credit comes from the cached ledger; everything else from e.
func (s *service) Evaluate(ctx context.Context, e domain.DropEligibility, itemID int) (*Report, error) {
	credit, err := s.DonationCredit(ctx, e.Character.ID)
	if err != nil {
		return nil, err
	}

	bonuses := s.calculator.Bonuses(Input{
		Attendances:   e.Attendance,
		Status:        e.Character.MembershipStatus,
		DonatedCopper: credit,
		Enchanted:     e.Character.Enchanted,
		Prepared:      e.Character.Prepared,
		TimesSeen:     e.TimesSeen,
	})

	report := &Report{CharacterID: e.Character.ID, ItemID: itemID, Bonuses: bonuses}
	if e.Entry != nil {
		rank := e.Entry.Rank
		score := s.calculator.Score(rank, bonuses)
		report.Rank = &rank
		report.Score = &score
	}
	return report, nil
}

// DonationCredit is the character's donation credit for the current month
func (s *service) DonationCredit(ctx context.Context, characterID string) (int64, error) {
	current := domain.MonthOf(s.now().UTC())

	if ledger, ok := s.ledgers.Get(characterID); ok {
		metrics.LedgerCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return ledger.CreditForMonth(characterID, current), nil
	}
	metrics.LedgerCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	records, err := s.repo.GetDonations(ctx, characterID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetDonations, err)
	}

	ledger := donation.Build(records, s.calculator.Scope(), current)
	s.ledgers.Set(characterID, ledger)
	return ledger.CreditForMonth(characterID, current), nil
}

// RecordDonation stores a donation and drops the character's cached ledger
func (s *service) RecordDonation(ctx context.Context, d domain.MonthDonation) error {
	log := logger.FromContext(ctx)

	if d.Amount <= 0 {
		return domain.Reject(domain.ReasonDonationNotPositive)
	}

	if err := s.repo.InsertDonation(ctx, &d); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToRecordDonation, err)
	}
	s.ledgers.Invalidate(d.CharacterID)

	log.Info("Donation recorded", "character_id", d.CharacterID, "month", d.Period().String(), "amount", d.Amount)
	return nil
}
