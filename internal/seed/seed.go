package seed

import (
	"database/sql"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/breakeven-sim/simulator/internal/presets"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run writes the industry presets in an idempotent way. Rows whose stored
// columns drifted from the shipped preset are rewritten.
func Run(db *sql.DB, list []presets.Preset) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for i, p := range list {
		if err := ensurePreset(tx, p, i, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensurePreset(tx *sql.Tx, p presets.Preset, position int, stats *Stats) error {
	inputJSON, err := json.Marshal(p.Input)
	if err != nil {
		return fmt.Errorf("encode preset %s: %w", p.Key, err)
	}

	var stored struct {
		name        string
		description string
		inputJSON   string
		position    int
	}
	err = tx.QueryRow(`
		SELECT name, description, input_json, position
		FROM presets
		WHERE key = ?
	`, p.Key).Scan(&stored.name, &stored.description, &stored.inputJSON, &stored.position)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.Exec(`
			INSERT INTO presets (key, name, description, input_json, position)
			VALUES (?, ?, ?, ?, ?)
		`, p.Key, p.Name, p.Description, string(inputJSON), position); err != nil {
			return fmt.Errorf("insert preset %s: %w", p.Key, err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("check preset %s existence: %w", p.Key, err)
	}

	if stored.name == p.Name &&
		stored.description == p.Description &&
		stored.inputJSON == string(inputJSON) &&
		stored.position == position {
		return nil
	}

	if _, err := tx.Exec(`
		UPDATE presets
		SET name = ?, description = ?, input_json = ?, position = ?
		WHERE key = ?
	`, p.Name, p.Description, string(inputJSON), position, p.Key); err != nil {
		return fmt.Errorf("update preset %s: %w", p.Key, err)
	}
	stats.Updates++
	return nil
}

// List reads the seeded presets in display order.
func List(db *sql.DB) ([]presets.Preset, error) {
	rows, err := db.Query(`
		SELECT key, name, description, input_json
		FROM presets
		ORDER BY position, key
	`)
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer rows.Close()

	list := make([]presets.Preset, 0)
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}

	return list, nil
}

// Get reads one preset. ok is false when the key is unknown.
func Get(db *sql.DB, key string) (presets.Preset, bool, error) {
	row := db.QueryRow(`SELECT key, name, description, input_json FROM presets WHERE key = ?`, key)
	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return presets.Preset{}, false, nil
	}
	if err != nil {
		return presets.Preset{}, false, err
	}
	return p, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(s scanner) (presets.Preset, error) {
	var p presets.Preset
	var inputJSON string
	if err := s.Scan(&p.Key, &p.Name, &p.Description, &inputJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return presets.Preset{}, err
		}
		return presets.Preset{}, fmt.Errorf("scan preset: %w", err)
	}
	if err := json.Unmarshal([]byte(inputJSON), &p.Input); err != nil {
		return presets.Preset{}, fmt.Errorf("decode preset %s: %w", p.Key, err)
	}
	return p, nil
}
