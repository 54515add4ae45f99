package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bulletin-dev/bulletin/internal/domain"
	internal_errors "github.com/bulletin-dev/bulletin/internal/errors"
)

func (s *Storage) CreateBoard(data domain.BoardCreationData) (domain.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var board domain.Board
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO boards(board_name, board_owner)
			VALUES($1, $2)
			RETURNING board_id, board_name, board_owner, created`,
			data.Name, data.Owner)
		return row.Scan(&board.Id, &board.Name, &board.Owner, &board.CreatedAt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Board{}, internal_errors.Conflict("Board with that name already exists")
		}
		return domain.Board{}, err
	}
	return board, nil
}

// Board returns the board with its confirmed and pending moderator id
// lists. The lists are read from the main pool alongside the board row;
// a torn read here is acceptable for a read-only projection.
func (s *Storage) Board(id domain.BoardId) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRow(`
		SELECT board_id, board_name, board_owner, created
		FROM boards WHERE board_id = $1`, id).
		Scan(&board.Id, &board.Name, &board.Owner, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, err
	}

	if err := s.loadModerators(&board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (s *Storage) BoardByName(name domain.BoardName) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRow(`
		SELECT board_id, board_name, board_owner, created
		FROM boards WHERE board_name = $1`, name).
		Scan(&board.Id, &board.Name, &board.Owner, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, err
	}

	if err := s.loadModerators(&board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (s *Storage) Boards() ([]domain.Board, error) {
	rows, err := s.db.Query(`
		SELECT board_id, board_name, board_owner, created
		FROM boards ORDER BY created ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Id, &board.Name, &board.Owner, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

func (s *Storage) UpdateBoardName(id domain.BoardId, name domain.BoardName) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE boards SET board_name = $1 WHERE board_id = $2", name, id)
		if err != nil {
			return err
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if updated == 0 {
			return internal_errors.NotFound("Board not found")
		}
		return nil
	})
	if err != nil && isUniqueViolation(err) {
		return internal_errors.Conflict("Board with that name already exists")
	}
	return err
}

// DeleteBoard removes the board and its whole subtree: threads of its
// posts, the posts, and all moderation records, in one transaction.
func (s *Storage) DeleteBoard(id domain.BoardId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM threads USING posts
			WHERE threads.post_id = posts.post_id AND posts.board_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM posts WHERE board_id = $1", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM board_moderators WHERE board_id = $1", id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM boards WHERE board_id = $1", id)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return internal_errors.NotFound("Board not found")
		}
		return nil
	})
}

func (s *Storage) loadModerators(board *domain.Board) error {
	rows, err := s.db.Query(`
		SELECT user_id, status
		FROM board_moderators WHERE board_id = $1
		ORDER BY created ASC`, board.Id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userId domain.UserId
		var status domain.ModerationStatus
		if err := rows.Scan(&userId, &status); err != nil {
			return err
		}
		switch status {
		case domain.ModerationConfirmed:
			board.ConfirmedModerators = append(board.ConfirmedModerators, userId)
		case domain.ModerationPending:
			board.PendingModerators = append(board.PendingModerators, userId)
		}
	}
	return rows.Err()
}
