package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bulletin-dev/bulletin/internal/domain"
	internal_errors "github.com/bulletin-dev/bulletin/internal/errors"
)

func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.Thread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var thread domain.Thread
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO threads(post_id, thread_owner, thread_content)
			VALUES($1, $2, $3)
			RETURNING thread_id, post_id, thread_owner, thread_content, created`,
			data.PostId, data.Owner, data.Content)
		return scanThread(row, &thread)
	})
	if err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

func (s *Storage) Thread(id domain.ThreadId) (domain.Thread, error) {
	row := s.db.QueryRow(`
		SELECT thread_id, post_id, thread_owner, thread_content, created
		FROM threads WHERE thread_id = $1`, id)
	var thread domain.Thread
	if err := scanThread(row, &thread); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, err
	}
	return thread, nil
}

// ThreadsByPost lists threads in creation-time order, unpaginated.
func (s *Storage) ThreadsByPost(postId domain.PostId) ([]domain.Thread, error) {
	rows, err := s.db.Query(`
		SELECT thread_id, post_id, thread_owner, thread_content, created
		FROM threads WHERE post_id = $1
		ORDER BY created ASC`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.Id, &thread.PostId, &thread.Owner, &thread.Content, &thread.CreatedAt); err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	return threads, rows.Err()
}

func (s *Storage) UpdateThreadContent(id domain.ThreadId, content domain.ThreadContent) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE threads SET thread_content = $1 WHERE thread_id = $2", content, id)
		if err != nil {
			return err
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if updated == 0 {
			return internal_errors.NotFound("Thread not found")
		}
		return nil
	})
}

func (s *Storage) DeleteThread(id domain.ThreadId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM threads WHERE thread_id = $1", id)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return internal_errors.NotFound("Thread not found")
		}
		return nil
	})
}

func scanThread(row *sql.Row, thread *domain.Thread) error {
	return row.Scan(&thread.Id, &thread.PostId, &thread.Owner, &thread.Content, &thread.CreatedAt)
}
