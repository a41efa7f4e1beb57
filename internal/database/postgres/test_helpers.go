package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seed runs fixture statements against the test database
func seed(t *testing.T, pool *pgxpool.Pool, statements ...string) {
	t.Helper()
	ctx := context.Background()
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			t.Fatalf("seed failed: %v\n%s", err, stmt)
		}
	}
}

// resetTables empties every table between tests
func resetTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	seed(t, pool, `TRUNCATE drop_passes, drops, donations, kill_characters, kills, attendances, raids,
		loot_list_entries, loot_lists, item_restrictions, items, characters CASCADE`)
}

// seedRaidNight creates a team with two characters, their phase 1 lists, items and one drop:
//
//	alice: locked list, rank 5 entry holding item 100; attended both raids
//	bob:   locked list, rank 3 entry holding item 100; attended the latest raid
//	item 100 dropped from kill-1 as drop-1; item 101 is restricted for spec 4
func seedRaidNight(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	seed(t, pool,
		`INSERT INTO characters (character_id, name, class, race, team_id, membership_status, enchanted, prepared) VALUES
			('alice', 'Alice', 'Priest', 'Human', 'team-1', 'Member', TRUE, TRUE),
			('bob', 'Bob', 'Warrior', 'Dwarf', 'team-1', 'HalfTrial', FALSE, TRUE),
			('carol', 'Carol', 'Mage', 'Gnome', NULL, 'Member', FALSE, FALSE)`,
		`INSERT INTO items (item_id, name, phase, item_type, inventory_slot, quest_id, heroic) VALUES
			(100, 'Band of the Eternal Sage', 1, 'Misc', 'Finger', NULL, FALSE),
			(101, 'Warglaive', 1, 'Sword', 'OneHand', 7, FALSE)`,
		`INSERT INTO item_restrictions (item_id, specs, restriction_level, reason) VALUES
			(101, 4, 'Unequippable', 'Cannot use swords.')`,
		`INSERT INTO loot_lists (loot_list_id, character_id, phase, size, main_spec, off_spec, status, timestamp) VALUES
			('list-alice', 'alice', 1, 25, 1, 2, 'Locked', 'ts-a'),
			('list-bob', 'bob', 1, 25, 4, 0, 'Locked', 'ts-b'),
			('list-carol', 'carol', 1, 25, 8, 0, 'Editing', 'ts-c')`,
		`INSERT INTO loot_list_entries (entry_id, loot_list_id, rank, heroic, item_id, justification) VALUES
			('ea5', 'list-alice', 5, FALSE, 100, 'BiS'),
			('ea4', 'list-alice', 4, FALSE, NULL, NULL),
			('eb3', 'list-bob', 3, FALSE, 100, NULL),
			('ec1', 'list-carol', 1, FALSE, NULL, NULL)`,
		`INSERT INTO raids (raid_id, team_id, phase, size, started_at) VALUES
			('raid-1', 'team-1', 1, 25, '2021-07-01T20:00:00Z'),
			('raid-2', 'team-1', 1, 25, '2021-07-08T20:00:00Z')`,
		`INSERT INTO attendances (raid_id, character_id) VALUES
			('raid-1', 'alice'), ('raid-2', 'alice'), ('raid-2', 'bob'), ('raid-2', 'carol')`,
		`INSERT INTO kills (kill_id, raid_id, encounter_id) VALUES ('kill-1', 'raid-2', 'gruul')`,
		`INSERT INTO kill_characters (kill_id, character_id) VALUES ('kill-1', 'alice'), ('kill-1', 'bob'), ('kill-1', 'carol')`,
		`INSERT INTO drops (drop_id, kill_id, item_id) VALUES ('drop-1', 'kill-1', 100)`,
	)
}
