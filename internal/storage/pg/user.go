package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bulletin-dev/bulletin/internal/domain"
	internal_errors "github.com/bulletin-dev/bulletin/internal/errors"
)

// SaveUser inserts a new user and returns the stored row with its
// server-assigned id and creation timestamp.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO users(email, username, pass_hash, user_role)
			VALUES($1, $2, $3, $4)
			RETURNING user_id, email, username, pass_hash, user_role, created`,
			user.Email, user.Username, user.PassHash, user.Role)
		return scanUser(row, &saved)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, internal_errors.Conflict("User with that email or username already exists")
		}
		return domain.User{}, err
	}
	return saved, nil
}

func (s *Storage) User(id domain.UserId) (domain.User, error) {
	row := s.db.QueryRow(`
		SELECT user_id, email, username, pass_hash, user_role, created
		FROM users WHERE user_id = $1`, id)
	var user domain.User
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	row := s.db.QueryRow(`
		SELECT user_id, email, username, pass_hash, user_role, created
		FROM users WHERE username = $1`, username)
	var user domain.User
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Storage) UpdateUserRole(id domain.UserId, role domain.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE users SET user_role = $1 WHERE user_id = $2", role, id)
		if err != nil {
			return err
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if updated == 0 {
			return internal_errors.NotFound("User not found")
		}
		return nil
	})
}

func scanUser(row *sql.Row, user *domain.User) error {
	return row.Scan(&user.Id, &user.Email, &user.Username, &user.PassHash, &user.Role, &user.CreatedAt)
}
