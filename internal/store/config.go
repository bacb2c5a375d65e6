package store

import (
	"fmt"
	"strings"
)

// Keys recognized by the calculate command when flags are omitted.
const (
	ConfigDefaultFormula = "default_formula"
	ConfigDefaultUser    = "default_user"
)

func (s *Store) SetConfig(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("set config: store not initialized")
	}
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	_, err := s.db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func (s *Store) GetConfig(key string) (string, bool) {
	if s.db == nil {
		return "", false
	}
	key = strings.TrimSpace(strings.ToLower(key))
	var value string
	if err := s.db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value); err != nil {
		return "", false
	}
	return value, true
}

func (s *Store) ListConfig() map[string]string {
	out := map[string]string{}
	if s.db == nil {
		return out
	}
	rows, err := s.db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return map[string]string{}
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return map[string]string{}
	}
	return out
}
