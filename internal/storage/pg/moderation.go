package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bulletin-dev/bulletin/internal/domain"
	internal_errors "github.com/bulletin-dev/bulletin/internal/errors"
)

// CreateModeration inserts a PENDING record for the (board, user) pair.
// The UNIQUE(board_id, user_id) constraint arbitrates concurrent
// invites: the loser observes a Conflict.
func (s *Storage) CreateModeration(boardId domain.BoardId, userId domain.UserId) (domain.Moderation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var mod domain.Moderation
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO board_moderators(board_id, user_id, status)
			VALUES($1, $2, $3)
			RETURNING board_moderator_id, board_id, user_id, status, created`,
			boardId, userId, domain.ModerationPending)
		return scanModeration(row, &mod)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Moderation{}, internal_errors.Conflict("Moderation already exists for that board and user")
		}
		return domain.Moderation{}, err
	}
	return mod, nil
}

func (s *Storage) Moderation(boardId domain.BoardId, userId domain.UserId) (domain.Moderation, error) {
	row := s.db.QueryRow(`
		SELECT board_moderator_id, board_id, user_id, status, created
		FROM board_moderators WHERE board_id = $1 AND user_id = $2`,
		boardId, userId)
	var mod domain.Moderation
	if err := scanModeration(row, &mod); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Moderation{}, internal_errors.NotFound("Moderation not found")
		}
		return domain.Moderation{}, err
	}
	return mod, nil
}

func (s *Storage) ConfirmModeration(boardId domain.BoardId, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE board_moderators SET status = $1
			WHERE board_id = $2 AND user_id = $3`,
			domain.ModerationConfirmed, boardId, userId)
		if err != nil {
			return err
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if updated == 0 {
			return internal_errors.NotFound("Moderation not found")
		}
		return nil
	})
}

// DeleteModeration removes the record regardless of its status.
func (s *Storage) DeleteModeration(boardId domain.BoardId, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			DELETE FROM board_moderators
			WHERE board_id = $1 AND user_id = $2`, boardId, userId)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return internal_errors.NotFound("Moderation not found")
		}
		return nil
	})
}

func (s *Storage) Moderations() ([]domain.Moderation, error) {
	return s.queryModerations(`
		SELECT board_moderator_id, board_id, user_id, status, created
		FROM board_moderators ORDER BY created ASC`)
}

func (s *Storage) ModerationsByUser(userId domain.UserId) ([]domain.Moderation, error) {
	return s.queryModerations(`
		SELECT board_moderator_id, board_id, user_id, status, created
		FROM board_moderators WHERE user_id = $1 ORDER BY created ASC`, userId)
}

func (s *Storage) queryModerations(query string, args ...any) ([]domain.Moderation, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mods []domain.Moderation
	for rows.Next() {
		var mod domain.Moderation
		if err := rows.Scan(&mod.Id, &mod.BoardId, &mod.UserId, &mod.Status, &mod.CreatedAt); err != nil {
			return nil, err
		}
		mods = append(mods, mod)
	}
	return mods, rows.Err()
}

func scanModeration(row *sql.Row, mod *domain.Moderation) error {
	return row.Scan(&mod.Id, &mod.BoardId, &mod.UserId, &mod.Status, &mod.CreatedAt)
}
