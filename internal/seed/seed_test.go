package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/breakeven-sim/simulator/internal/db"
	"github.com/breakeven-sim/simulator/internal/migrations"
	"github.com/breakeven-sim/simulator/internal/presets"
)

func newSeedTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return database
}

func TestRunIsIdempotent(t *testing.T) {
	database := newSeedTestDB(t)
	list := presets.All()

	for i := 0; i < 10; i++ {
		stats, err := Run(database, list)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != len(list) {
				t.Fatalf("expected %d inserts in first run, got %d", len(list), stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 || stats.Updates != 0 {
			t.Fatalf("expected no writes in iteration %d, got %+v", i, stats)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM presets`, len(list))
	assertCount(t, database, `SELECT COUNT(*) FROM presets WHERE key = 'restaurant'`, 1)
}

func TestRunRewritesDriftedPreset(t *testing.T) {
	database := newSeedTestDB(t)
	if _, err := Run(database, presets.All()); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	if _, err := database.Exec(`UPDATE presets SET input_json = '{}' WHERE key = 'cafe'`); err != nil {
		t.Fatalf("corrupt preset: %v", err)
	}

	stats, err := Run(database, presets.All())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if stats.Inserts != 0 || stats.Updates != 1 {
		t.Fatalf("expected exactly one update, got %+v", stats)
	}

	p, ok, err := Get(database, "cafe")
	if err != nil || !ok {
		t.Fatalf("get cafe: ok=%v err=%v", ok, err)
	}
	if p.Input.AOV.StoreAOV != 8000 {
		t.Fatalf("expected restored cafe preset, got %+v", p.Input)
	}
}

func TestRunRewritesRenamedPreset(t *testing.T) {
	database := newSeedTestDB(t)
	if _, err := Run(database, presets.All()); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	if _, err := database.Exec(`UPDATE presets SET name = 'Old', description = '', position = 9 WHERE key = 'restaurant'`); err != nil {
		t.Fatalf("rename preset: %v", err)
	}

	stats, err := Run(database, presets.All())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if stats.Inserts != 0 || stats.Updates != 1 {
		t.Fatalf("expected exactly one update, got %+v", stats)
	}

	want, _ := presets.Get("restaurant")
	p, ok, err := Get(database, "restaurant")
	if err != nil || !ok {
		t.Fatalf("get restaurant: ok=%v err=%v", ok, err)
	}
	if p.Name != want.Name || p.Description != want.Description {
		t.Fatalf("expected restored name and description, got %q / %q", p.Name, p.Description)
	}
	assertCount(t, database, `SELECT position FROM presets WHERE key = 'restaurant'`, 0)
}

func TestListKeepsDisplayOrder(t *testing.T) {
	database := newSeedTestDB(t)
	if _, err := Run(database, presets.All()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	list, err := List(database)
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}

	want := []string{"restaurant", "cafe", "retail", "service"}
	if len(list) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(list))
	}
	for i, key := range want {
		if list[i].Key != key {
			t.Fatalf("position %d: got %q, want %q", i, list[i].Key, key)
		}
	}
	if list[0].Input.TargetProfit == nil || *list[0].Input.TargetProfit != 3000000 {
		t.Fatalf("expected restaurant target profit to round-trip")
	}
	if list[0].Input.Capacity == nil || list[0].Input.Capacity.Store == nil {
		t.Fatalf("expected restaurant capacity check to round-trip")
	}
}

func TestGetUnknownPreset(t *testing.T) {
	database := newSeedTestDB(t)
	if _, ok, err := Get(database, "nope"); err != nil || ok {
		t.Fatalf("expected missing preset, ok=%v err=%v", ok, err)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, expected int) {
	t.Helper()

	var count int
	if err := database.QueryRow(query).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
