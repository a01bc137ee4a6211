package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"hash/crc32"
	"strconv"

	"github.com/vovakirdan/flamin-maze/internal/core"
)

// Keys of the persisted player data.
const (
	keyBestScore = "K1"
	keyGameCount = "K2"
	keyChecksum  = "K3"
)

// Prefs is a key/value preference table scoped to one player.
type Prefs struct {
	store *Store
	scope string
}

// Prefs returns the preferences of a scope, usually a player id.
func (s *Store) Prefs(scope string) *Prefs {
	return &Prefs{store: s, scope: scope}
}

// String returns the value of key; ok is false when it is not set.
func (p *Prefs) String(key string) (value string, ok bool, err error) {
	err = p.store.db.QueryRow(
		"SELECT value FROM prefs WHERE scope = ? AND key = ?",
		p.scope, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read pref %s: %w", key, err)
	}
	return value, true, nil
}

// SetString stores value under key.
func (p *Prefs) SetString(key, value string) error {
	_, err := p.store.db.Exec(
		`INSERT INTO prefs (scope, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value`,
		p.scope, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write pref %s: %w", key, err)
	}
	return nil
}

// Int returns the integer under key, or 0 when unset or not a number.
func (p *Prefs) Int(key string) (int, error) {
	v, ok, err := p.String(key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// SetInt stores an integer under key.
func (p *Prefs) SetInt(key string, value int) error {
	return p.SetString(key, strconv.Itoa(value))
}

// DeleteAll removes every key of the scope.
func (p *Prefs) DeleteAll() error {
	if _, err := p.store.db.Exec("DELETE FROM prefs WHERE scope = ?", p.scope); err != nil {
		return fmt.Errorf("storage: cannot clear prefs: %w", err)
	}
	return nil
}

// PlayerChecksum is the integrity hash stored next to the player data:
// the CRC-32 of "Fl{gameCount}aM{bestScore}iN" as a signed 32-bit value.
func PlayerChecksum(d core.PlayerData) int {
	s := fmt.Sprintf("Fl%daM%diN", d.GameCount, d.BestScore)
	return int(int32(crc32.ChecksumIEEE([]byte(s))))
}

// LoadPlayer reads the player data. When the stored checksum does not
// match, every key of the scope is deleted and zero data is returned.
func (p *Prefs) LoadPlayer() (core.PlayerData, error) {
	var d core.PlayerData
	var sum int
	var err error
	if d.BestScore, err = p.Int(keyBestScore); err != nil {
		return core.PlayerData{}, err
	}
	if d.GameCount, err = p.Int(keyGameCount); err != nil {
		return core.PlayerData{}, err
	}
	if sum, err = p.Int(keyChecksum); err != nil {
		return core.PlayerData{}, err
	}

	if sum != PlayerChecksum(d) {
		return core.PlayerData{}, p.DeleteAll()
	}
	return d, nil
}

// SavePlayer writes the player data and its checksum atomically.
func (p *Prefs) SavePlayer(d core.PlayerData) error {
	tx, err := p.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	values := []struct {
		key   string
		value int
	}{
		{keyBestScore, d.BestScore},
		{keyGameCount, d.GameCount},
		{keyChecksum, PlayerChecksum(d)},
	}
	for _, v := range values {
		_, err := tx.Exec(
			`INSERT INTO prefs (scope, key, value) VALUES (?, ?, ?)
			 ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value`,
			p.scope, v.key, strconv.Itoa(v.value),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot write pref %s: %w", v.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit player data: %w", err)
	}
	return nil
}

var _ core.PlayerStore = (*Prefs)(nil)
