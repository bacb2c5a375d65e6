// Package store owns the persistent calculation history. A Store wraps the
// process's single SQLite connection with an explicit lifecycle: callers
// construct it, Init it once, and Close it when done.
//
// Failure semantics are deliberate and preserved by tests: Init failures
// surface to the caller, write failures surface after logging, read
// failures are logged and degrade to empty/neutral results so history
// display never crashes the rest of the application.
package store

import (
	"database/sql"
	"fmt"

	"github.com/avoronin/bmrcalc/internal/db"
	"github.com/avoronin/bmrcalc/internal/logger"
	"github.com/avoronin/bmrcalc/internal/model"
)

// DefaultListLimit bounds history reads when the caller does not.
const DefaultListLimit = 100

type Store struct {
	path string
	db   *sql.DB
}

// New builds a store for the database at path. No I/O happens until Init.
func New(path string) *Store {
	return &Store{path: path}
}

// Init opens the connection and applies the schema. Idempotent: a second
// call on an initialized store returns immediately without reopening.
func (s *Store) Init() error {
	if s.db != nil {
		return nil
	}
	sqldb, err := db.Open(s.path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return fmt.Errorf("init store: %w", err)
	}
	s.db = sqldb
	return nil
}

// Close releases the connection and resets initialization state, so a
// subsequent Init fully reinitializes.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// DB exposes the underlying handle for schema introspection in tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveCalculation inserts the result and returns the assigned id. The
// passed-in value is left untouched; only the returned id makes a result
// durable.
func (s *Store) SaveCalculation(res model.CalculationResult) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("save calculation: store not initialized")
	}
	row := rowFromResult(res)
	out, err := s.db.Exec(`
INSERT INTO calculations(user_id, weight, height, age, gender, activity_level, formula_type, bmr, tdee, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, row.userID, row.weight, row.height, row.age, row.gender, row.activityLevel, row.formulaType, row.bmr, row.tdee, row.createdAt)
	if err != nil {
		logger.Error("save calculation failed", "err", err)
		return 0, fmt.Errorf("save calculation: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		logger.Error("resolve calculation id failed", "err", err)
		return 0, fmt.Errorf("resolve calculation id: %w", err)
	}
	return id, nil
}

// GetCalculations returns records newest-first, optionally restricted to
// one user. limit <= 0 falls back to DefaultListLimit. Storage failures
// are logged and degrade to an empty slice.
func (s *Store) GetCalculations(userID string, limit int) []model.CalculationResult {
	if s.db == nil {
		return []model.CalculationResult{}
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `
SELECT id, user_id, weight, height, age, gender, activity_level, formula_type, bmr, tdee, created_at
FROM calculations`
	args := make([]any, 0, 2)
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		logger.Warn("list calculations failed, returning empty history", "err", err)
		return []model.CalculationResult{}
	}
	defer rows.Close()

	items := make([]model.CalculationResult, 0)
	for rows.Next() {
		var row calculationRow
		if err := rows.Scan(&row.id, &row.userID, &row.weight, &row.height, &row.age,
			&row.gender, &row.activityLevel, &row.formulaType, &row.bmr, &row.tdee, &row.createdAt); err != nil {
			logger.Warn("scan calculation failed, returning empty history", "err", err)
			return []model.CalculationResult{}
		}
		res, err := resultFromRow(row)
		if err != nil {
			logger.Warn("decode calculation failed, returning empty history", "id", row.id, "err", err)
			return []model.CalculationResult{}
		}
		items = append(items, res)
	}
	if err := rows.Err(); err != nil {
		logger.Warn("iterate calculations failed, returning empty history", "err", err)
		return []model.CalculationResult{}
	}
	return items
}

// GetCalculationByID returns the matching record and whether it was found.
// Missing ids and read failures both come back as not-found; the latter
// are logged first.
func (s *Store) GetCalculationByID(id int64) (model.CalculationResult, bool) {
	if s.db == nil {
		return model.CalculationResult{}, false
	}
	var row calculationRow
	err := s.db.QueryRow(`
SELECT id, user_id, weight, height, age, gender, activity_level, formula_type, bmr, tdee, created_at
FROM calculations WHERE id = ?
`, id).Scan(&row.id, &row.userID, &row.weight, &row.height, &row.age,
		&row.gender, &row.activityLevel, &row.formulaType, &row.bmr, &row.tdee, &row.createdAt)
	if err == sql.ErrNoRows {
		return model.CalculationResult{}, false
	}
	if err != nil {
		logger.Warn("get calculation failed", "id", id, "err", err)
		return model.CalculationResult{}, false
	}
	res, err := resultFromRow(row)
	if err != nil {
		logger.Warn("decode calculation failed", "id", id, "err", err)
		return model.CalculationResult{}, false
	}
	return res, true
}

// DeleteCalculation removes one record. Deleting a missing id succeeds
// silently.
func (s *Store) DeleteCalculation(id int64) error {
	if s.db == nil {
		return fmt.Errorf("delete calculation: store not initialized")
	}
	if _, err := s.db.Exec(`DELETE FROM calculations WHERE id = ?`, id); err != nil {
		logger.Error("delete calculation failed", "id", id, "err", err)
		return fmt.Errorf("delete calculation %d: %w", id, err)
	}
	return nil
}

// ClearHistory removes every record, or just one user's when userID is
// set. Clearing an already-empty set succeeds silently.
func (s *Store) ClearHistory(userID string) error {
	if s.db == nil {
		return fmt.Errorf("clear history: store not initialized")
	}
	var err error
	if userID != "" {
		_, err = s.db.Exec(`DELETE FROM calculations WHERE user_id = ?`, userID)
	} else {
		_, err = s.db.Exec(`DELETE FROM calculations`)
	}
	if err != nil {
		logger.Error("clear history failed", "err", err)
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
