package allocation

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
	"github.com/Elite747/ValhallaLootList-sub000/internal/metrics"
	"github.com/Elite747/ValhallaLootList-sub000/internal/priority"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

// Scorer computes a character's priority for a drop
type Scorer interface {
	Evaluate(ctx context.Context, e domain.DropEligibility, itemID int) (*priority.Report, error)
}

// Standing is one candidate's position in a drop's competition
type Standing struct {
	Candidate
	Name    string         `json:"name"`
	Rank    *byte          `json:"rank,omitempty"`
	Bonuses []domain.Bonus `json:"bonuses"`
}

// Service defines the interface for drop allocation operations
type Service interface {
	Standings(ctx context.Context, dropID string) ([]Standing, error)
	Award(ctx context.Context, dropID string, winnerID *string, awardedBy string) (*domain.Drop, error)
}

type service struct {
	repo        repository.Drop
	scorer      Scorer
	engine      Engine
	concurrency int
	now         func() time.Time
}

// NewService creates a new drop allocation service
func NewService(repo repository.Drop, scorer Scorer) Service {
	return &service{
		repo:        repo,
		scorer:      scorer,
		concurrency: runtime.GOMAXPROCS(0),
		now:         time.Now,
	}
}

// Standings scores every character present at the kill and orders them
func (s *service) Standings(ctx context.Context, dropID string) ([]Standing, error) {
	drop, err := s.getDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	return s.standings(ctx, drop)
}

func (s *service) standings(ctx context.Context, drop *domain.Drop) ([]Standing, error) {
	start := time.Now()
	defer func() { metrics.StandingsDuration.Observe(time.Since(start).Seconds()) }()

	eligible, err := s.repo.GetEligibility(ctx, drop.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetEligibility, err)
	}

	reports := make([]*priority.Report, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, e := range eligible {
		g.Go(func() error {
			report, err := s.scorer.Evaluate(gctx, e, drop.ItemID)
			if err != nil {
				return fmt.Errorf("%s %s: %w", ErrContextFailedToScore, e.Character.ID, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]Standing, len(eligible))
	candidates := make([]Candidate, 0, len(eligible))
	for i, e := range eligible {
		c := Candidate{
			CharacterID:   e.Character.ID,
			PriorityScore: reports[i].Score,
			IsLockedList:  e.LootList != nil && e.LootList.IsLocked(),
		}
		if e.Entry != nil {
			c.EntryID = &e.Entry.ID
		}
		candidates = append(candidates, c)
		byID[c.CharacterID] = Standing{Candidate: c, Name: e.Character.Name, Rank: reports[i].Rank, Bonuses: reports[i].Bonuses}
	}

	ranked := s.engine.Rank(candidates)
	out := make([]Standing, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, byID[c.CharacterID])
	}
	return out, nil
}

// Award sets or clears a drop's winner. Passes, winner fields and the winning
// entry link are written in one transaction.
func (s *service) Award(ctx context.Context, dropID string, winnerID *string, awardedBy string) (*domain.Drop, error) {
	log := logger.FromContext(ctx)

	drop, err := s.getDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	if winnerID != nil {
		standings, err := s.standings(ctx, drop)
		if err != nil {
			return nil, err
		}
		candidates = make([]Candidate, 0, len(standings))
		for _, st := range standings {
			candidates = append(candidates, st.Candidate)
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetDropForUpdate(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetDrop, err)
	}
	if locked == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDropNotFound, dropID)
	}

	result, err := s.engine.Assign(locked.WinnerID, candidates, winnerID)
	if err != nil {
		log.Warn(LogMsgAwardRefused, "drop_id", dropID, "reason", domain.RejectionReason(err))
		return nil, err
	}

	updated := *locked
	if result.Cleared {
		err = s.clear(ctx, tx, dropID)
		updated.WinnerID, updated.WinningEntry, updated.AwardedAtUtc, updated.AwardedBy, updated.Passes = nil, nil, nil, nil, nil
	} else {
		for i := range result.Passes {
			result.Passes[i].DropID = dropID
		}
		now := s.now().UTC()
		err = s.assign(ctx, tx, dropID, result, now, awardedBy)
		updated.WinnerID = result.WinnerID
		updated.WinningEntry = result.WinningEntryID
		updated.AwardedAtUtc = &now
		updated.AwardedBy = &awardedBy
		updated.Passes = result.Passes
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	if result.Cleared {
		metrics.DropsCleared.Inc()
		log.Info(LogMsgDropCleared, "drop_id", dropID, "previous_winner", *locked.WinnerID, "by", awardedBy)
	} else {
		metrics.DropsAwarded.Inc()
		metrics.DropPassesRecorded.Add(float64(len(result.Passes)))
		log.Info(LogMsgDropAwarded, "drop_id", dropID, "winner_id", *result.WinnerID, "passes", len(result.Passes), "by", awardedBy)
	}
	return &updated, nil
}

func (s *service) clear(ctx context.Context, tx repository.DropTx, dropID string) error {
	if err := tx.UnlinkEntries(ctx, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLinkEntry, err)
	}
	if err := tx.ReplacePasses(ctx, dropID, nil); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSavePasses, err)
	}
	if err := tx.SetWinner(ctx, dropID, nil, nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSetWinner, err)
	}
	return nil
}

func (s *service) assign(ctx context.Context, tx repository.DropTx, dropID string, result AllocationResult, at time.Time, awardedBy string) error {
	if err := tx.SetWinner(ctx, dropID, result.WinnerID, result.WinningEntryID, &at, &awardedBy); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSetWinner, err)
	}
	if err := tx.ReplacePasses(ctx, dropID, result.Passes); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSavePasses, err)
	}
	if result.WinningEntryID != nil {
		if err := tx.LinkEntry(ctx, *result.WinningEntryID, dropID); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToLinkEntry, err)
		}
	}
	return nil
}

func (s *service) getDrop(ctx context.Context, dropID string) (*domain.Drop, error) {
	drop, err := s.repo.GetDrop(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetDrop, err)
	}
	if drop == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDropNotFound, dropID)
	}
	return drop, nil
}
