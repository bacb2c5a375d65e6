package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avoronin/bmrcalc/internal/model"
	"github.com/google/uuid"
)

// CreateUser stores a profile and returns its generated id.
func (s *Store) CreateUser(name, email string, role model.UserRole) (model.User, error) {
	if s.db == nil {
		return model.User{}, fmt.Errorf("create user: store not initialized")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, fmt.Errorf("user name is required")
	}

	user := model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Role:      role,
		CreatedAt: time.Now(),
	}
	var emailVal sql.NullString
	if user.Email != "" {
		emailVal = sql.NullString{String: user.Email, Valid: true}
	}
	_, err := s.db.Exec(`
INSERT INTO users(id, name, email, role, created_at)
VALUES(?, ?, ?, ?, ?)
`, user.ID, user.Name, emailVal, user.Role.String(), user.CreatedAt.Unix())
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser returns the profile with the given id and whether it exists.
func (s *Store) GetUser(id string) (model.User, bool) {
	if s.db == nil {
		return model.User{}, false
	}
	row := s.db.QueryRow(`SELECT id, name, IFNULL(email, ''), role, created_at FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if err != nil {
		return model.User{}, false
	}
	return user, true
}

// ListUsers returns every profile ordered by creation time. Read failures
// degrade to an empty slice like the calculation reads.
func (s *Store) ListUsers() []model.User {
	if s.db == nil {
		return []model.User{}
	}
	rows, err := s.db.Query(`SELECT id, name, IFNULL(email, ''), role, created_at FROM users ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return []model.User{}
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return []model.User{}
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return []model.User{}
	}
	return users
}

// DeleteUser removes a profile. The user's calculations stay; their
// user_id simply stops resolving to a profile.
func (s *Store) DeleteUser(id string) error {
	if s.db == nil {
		return fmt.Errorf("delete user: store not initialized")
	}
	if _, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var (
		user      model.User
		roleTag   string
		createdAt int64
	)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &roleTag, &createdAt); err != nil {
		return model.User{}, err
	}
	role, err := model.ParseUserRole(roleTag)
	if err != nil {
		return model.User{}, err
	}
	user.Role = role
	user.CreatedAt = time.Unix(createdAt, 0)
	return user, nil
}
