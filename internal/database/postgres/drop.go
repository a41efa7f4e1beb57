package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

const dropColumns = `d.drop_id, d.kill_id, d.item_id, d.winner_id, d.winning_entry_id, d.awarded_at, d.awarded_by`

// DropRepository implements the drop repository for PostgreSQL
type DropRepository struct {
	db                  *pgxpool.Pool
	observedAttendances int
}

// NewDropRepository creates a new DropRepository. observedAttendances is how many
// of a team's recent raids count towards each candidate's attendance.
func NewDropRepository(db *pgxpool.Pool, observedAttendances int) *DropRepository {
	return &DropRepository{db: db, observedAttendances: observedAttendances}
}

// GetDrop returns the drop with its recorded passes, or nil
func (r *DropRepository) GetDrop(ctx context.Context, dropID string) (*domain.Drop, error) {
	return getDrop(ctx, r.db, dropID, false)
}

// GetEligibility lists every character present at the drop's kill. Each row carries the
// character's list for the drop's phase and raid size, and the unawarded entry holding
// the item with the best priority (lowest rank number).
func (r *DropRepository) GetEligibility(ctx context.Context, dropID string) ([]domain.DropEligibility, error) {
	query := `
		WITH target AS (
			SELECT d.drop_id, d.kill_id, d.item_id, i.phase, rd.size
			FROM drops d
			JOIN items i ON i.item_id = d.item_id
			JOIN kills k ON k.kill_id = d.kill_id
			JOIN raids rd ON rd.raid_id = k.raid_id
			WHERE d.drop_id = $1
		)
		SELECT ` + characterColumns + `,
			l.loot_list_id, l.character_id, l.phase, l.size, l.main_spec, l.off_spec, l.status, l.approved_by, l.timestamp, l.updated_at,
			e.entry_id, e.loot_list_id, e.rank, e.heroic, e.item_id, e.justification, e.won, e.drop_id,
			(` + fmt.Sprintf(attendanceCountSQL, "$2") + `),
			(` + fmt.Sprintf(timesSeenSQL, "target.item_id") + `)
		FROM target
		JOIN kill_characters kc ON kc.kill_id = target.kill_id
		JOIN characters c ON c.character_id = kc.character_id
		LEFT JOIN LATERAL (
			SELECT * FROM loot_lists ll
			WHERE ll.character_id = c.character_id AND ll.phase = target.phase AND ll.size = target.size
		) l ON TRUE
		LEFT JOIN LATERAL (
			SELECT * FROM loot_list_entries le
			WHERE le.loot_list_id = l.loot_list_id AND le.item_id = target.item_id AND le.drop_id IS NULL
			ORDER BY le.rank, le.heroic, le.entry_id
			LIMIT 1
		) e ON TRUE
		ORDER BY c.character_id
	`

	rows, err := r.db.Query(ctx, query, dropID, r.observedAttendances)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEligibility, err)
	}
	defer rows.Close()

	var eligible []domain.DropEligibility
	for rows.Next() {
		e, err := scanEligibility(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		eligible = append(eligible, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}
	return eligible, nil
}

// BeginTx starts a drop transaction
func (r *DropRepository) BeginTx(ctx context.Context) (repository.DropTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &dropTx{pgTx: pgTx{tx: tx}}, nil
}

type dropTx struct {
	pgTx
}

// GetDropForUpdate locks the drop row until the transaction ends
func (t *dropTx) GetDropForUpdate(ctx context.Context, dropID string) (*domain.Drop, error) {
	return getDrop(ctx, t.tx, dropID, true)
}

func (t *dropTx) SetWinner(ctx context.Context, dropID string, winnerID, entryID *string, awardedAt *time.Time, awardedBy *string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE drops
		SET winner_id = $2, winning_entry_id = $3, awarded_at = $4, awarded_by = $5
		WHERE drop_id = $1
	`, dropID, winnerID, entryID, awardedAt, awardedBy)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetWinner, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDropNotFound, dropID)
	}
	return nil
}

// ReplacePasses deletes the drop's passes and writes the given set
func (t *dropTx) ReplacePasses(ctx context.Context, dropID string, passes []domain.DropPass) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM drop_passes WHERE drop_id = $1`, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePasses, err)
	}
	if len(passes) == 0 {
		return nil
	}

	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"drop_passes"},
		[]string{"drop_id", "character_id", "entry_id", "relative_priority"},
		pgx.CopyFromSlice(len(passes), func(i int) ([]any, error) {
			p := passes[i]
			return []any{dropID, p.CharacterID, p.EntryID, int32(p.RelativePriority)}, nil
		}),
	)
	if hasPgCode(err, PgErrorCodeUniqueViolation) {
		return fmt.Errorf("%w: duplicate pass on drop %s", domain.ErrInvalidInput, dropID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPasses, err)
	}
	return nil
}

// LinkEntry marks the winner's entry as won by the drop
func (t *dropTx) LinkEntry(ctx context.Context, entryID, dropID string) error {
	tag, err := t.tx.Exec(ctx, `UPDATE loot_list_entries SET won = TRUE, drop_id = $2 WHERE entry_id = $1`, entryID, dropID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLinkEntry, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, entryID)
	}
	return nil
}

// UnlinkEntries releases every entry won by the drop
func (t *dropTx) UnlinkEntries(ctx context.Context, dropID string) error {
	if _, err := t.tx.Exec(ctx, `UPDATE loot_list_entries SET won = FALSE, drop_id = NULL WHERE drop_id = $1`, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnlinkEntries, err)
	}
	return nil
}

func getDrop(ctx context.Context, q querier, dropID string, forUpdate bool) (*domain.Drop, error) {
	query := `SELECT ` + dropColumns + ` FROM drops d WHERE d.drop_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var d domain.Drop
	err := q.QueryRow(ctx, query, dropID).Scan(&d.ID, &d.KillID, &d.ItemID, &d.WinnerID, &d.WinningEntry, &d.AwardedAtUtc, &d.AwardedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDrop, err)
	}
	if d.AwardedAtUtc != nil {
		at := d.AwardedAtUtc.UTC()
		d.AwardedAtUtc = &at
	}

	rows, err := q.Query(ctx, `
		SELECT drop_id, character_id, entry_id, relative_priority
		FROM drop_passes
		WHERE drop_id = $1
		ORDER BY relative_priority DESC, character_id
	`, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPasses, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.DropPass
		if err := rows.Scan(&p.DropID, &p.CharacterID, &p.EntryID, &p.RelativePriority); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		d.Passes = append(d.Passes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}
	return &d, nil
}

func scanEligibility(row pgx.Row) (domain.DropEligibility, error) {
	var (
		e         domain.DropEligibility
		status    string
		listID    *string
		list      domain.CharacterLootList
		mainSpec  *int64
		offSpec   *int64
		lstatus   *string
		lphase    *int
		lsize     *int
		lcharID   *string
		ltoken    *string
		lupdated  *time.Time
		entryID   *string
		entryList *string
		rank      *int16
		heroic    *bool
		won       *bool
		entry     domain.LootListEntry
	)
	err := row.Scan(
		&e.Character.ID, &e.Character.Name, &e.Character.Class, &e.Character.Race, &e.Character.TeamID,
		&status, &e.Character.Enchanted, &e.Character.Prepared,
		&listID, &lcharID, &lphase, &lsize, &mainSpec, &offSpec, &lstatus, &list.ApprovedBy, &ltoken, &lupdated,
		&entryID, &entryList, &rank, &heroic, &entry.ItemID, &entry.Justification, &won, &entry.DropID,
		&e.Attendance, &e.TimesSeen,
	)
	if err != nil {
		return e, err
	}
	e.Character.MembershipStatus = domain.MembershipStatus(status)

	if listID != nil {
		list.ID = *listID
		list.CharacterID = *lcharID
		list.Phase = *lphase
		list.Size = *lsize
		list.MainSpec = domain.Specializations(*mainSpec)
		list.OffSpec = domain.Specializations(*offSpec)
		list.Status = domain.LootListStatus(*lstatus)
		list.Timestamp = *ltoken
		list.UpdatedAt = lupdated.UTC()
		e.LootList = &list
	}
	if entryID != nil {
		entry.ID = *entryID
		entry.LootListID = *entryList
		entry.Rank = byte(*rank)
		entry.Heroic = *heroic
		entry.Won = *won
		e.Entry = &entry
	}
	return e, nil
}
