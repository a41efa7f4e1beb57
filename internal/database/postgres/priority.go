package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

const characterColumns = `c.character_id, c.name, c.class, c.race, c.team_id, c.membership_status, c.enchanted, c.prepared`

// attendanceCountSQL counts raids attended by character $1 among their team's $2 most recent raids
const attendanceCountSQL = `
	SELECT COUNT(*) FROM attendances a
	WHERE a.character_id = c.character_id
	  AND a.raid_id IN (
		SELECT r.raid_id FROM raids r
		WHERE r.team_id = c.team_id
		ORDER BY r.started_at DESC
		LIMIT %s
	  )`

// timesSeenSQL counts passes the character has recorded on drops of item %s
const timesSeenSQL = `
	SELECT COUNT(*) FROM drop_passes p
	JOIN drops pd ON pd.drop_id = p.drop_id
	WHERE p.character_id = c.character_id AND pd.item_id = %s`

// PriorityRepository implements the priority service's data access for PostgreSQL
type PriorityRepository struct {
	db *pgxpool.Pool
}

// NewPriorityRepository creates a new PriorityRepository
func NewPriorityRepository(db *pgxpool.Pool) *PriorityRepository {
	return &PriorityRepository{db: db}
}

// GetCharacter returns the character or nil when it does not exist
func (r *PriorityRepository) GetCharacter(ctx context.Context, characterID string) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters c WHERE c.character_id = $1`

	c, err := scanCharacter(r.db.QueryRow(ctx, query, characterID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return c, nil
}

// CountAttendances counts raids the character attended among the team's most recent limit raids
func (r *PriorityRepository) CountAttendances(ctx context.Context, characterID string, limit int) (int, error) {
	query := `SELECT (` + fmt.Sprintf(attendanceCountSQL, "$2") + `) FROM characters c WHERE c.character_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, characterID, limit).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountAttendances, err)
	}
	return count, nil
}

// GetDonations returns every donation record of the character, oldest first
func (r *PriorityRepository) GetDonations(ctx context.Context, characterID string) ([]domain.MonthDonation, error) {
	query := `
		SELECT character_id, year, month, amount
		FROM donations
		WHERE character_id = $1
		ORDER BY year, month, donation_id
	`

	rows, err := r.db.Query(ctx, query, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDonations, err)
	}
	defer rows.Close()

	var donations []domain.MonthDonation
	for rows.Next() {
		var d domain.MonthDonation
		var month int16
		if err := rows.Scan(&d.CharacterID, &d.Year, &month, &d.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		d.Month = time.Month(month)
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}
	return donations, nil
}

// InsertDonation stores one donation record
func (r *PriorityRepository) InsertDonation(ctx context.Context, d *domain.MonthDonation) error {
	query := `INSERT INTO donations (character_id, year, month, amount) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, d.CharacterID, d.Year, int(d.Month), d.Amount)
	if hasPgCode(err, PgErrorCodeForeignKeyViolation) {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, d.CharacterID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDonation, err)
	}
	return nil
}

// CountTimesSeen counts drops of the item the character was eligible for and passed on
func (r *PriorityRepository) CountTimesSeen(ctx context.Context, characterID string, itemID int) (int, error) {
	query := `SELECT (` + fmt.Sprintf(timesSeenSQL, "$2") + `) FROM characters c WHERE c.character_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, characterID, itemID).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountTimesSeen, err)
	}
	return count, nil
}

// GetEntryForItem returns the unawarded entry holding the item with the best priority
// (lowest rank number) on the character's list for the phase and raid size, or nil.
// It selects the same entry GetEligibility does for a drop.
func (r *PriorityRepository) GetEntryForItem(ctx context.Context, characterID string, phase, size, itemID int) (*domain.LootListEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM loot_list_entries e
		JOIN loot_lists l ON l.loot_list_id = e.loot_list_id
		WHERE l.character_id = $1 AND l.phase = $2 AND l.size = $3 AND e.item_id = $4 AND e.drop_id IS NULL
		ORDER BY e.rank, e.heroic, e.entry_id
		LIMIT 1
	`

	entry, err := scanEntry(r.db.QueryRow(ctx, query, characterID, phase, size, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntryForItem, err)
	}
	return entry, nil
}

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	var status string
	err := row.Scan(&c.ID, &c.Name, &c.Class, &c.Race, &c.TeamID, &status, &c.Enchanted, &c.Prepared)
	if err != nil {
		return nil, err
	}
	c.MembershipStatus = domain.MembershipStatus(status)
	return &c, nil
}
