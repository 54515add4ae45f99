package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bulletin-dev/bulletin/internal/domain"
	internal_errors "github.com/bulletin-dev/bulletin/internal/errors"
)

func (s *Storage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var post domain.Post
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO posts(board_id, post_owner, post_title)
			VALUES($1, $2, $3)
			RETURNING post_id, board_id, post_owner, post_title, created`,
			data.BoardId, data.Owner, data.Title)
		return scanPost(row, &post)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *Storage) Post(id domain.PostId) (domain.Post, error) {
	row := s.db.QueryRow(`
		SELECT post_id, board_id, post_owner, post_title, created
		FROM posts WHERE post_id = $1`, id)
	var post domain.Post
	if err := scanPost(row, &post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, err
	}
	return post, nil
}

// PostsByBoard lists posts in creation-time order, unpaginated.
func (s *Storage) PostsByBoard(boardId domain.BoardId) ([]domain.Post, error) {
	rows, err := s.db.Query(`
		SELECT post_id, board_id, post_owner, post_title, created
		FROM posts WHERE board_id = $1
		ORDER BY created ASC`, boardId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.Id, &post.BoardId, &post.Owner, &post.Title, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *Storage) UpdatePostTitle(id domain.PostId, title domain.PostTitle) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE posts SET post_title = $1 WHERE post_id = $2", title, id)
		if err != nil {
			return err
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if updated == 0 {
			return internal_errors.NotFound("Post not found")
		}
		return nil
	})
}

// DeletePost removes the post and its threads in one transaction.
func (s *Storage) DeletePost(id domain.PostId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM threads WHERE post_id = $1", id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM posts WHERE post_id = $1", id)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return internal_errors.NotFound("Post not found")
		}
		return nil
	})
}

func scanPost(row *sql.Row, post *domain.Post) error {
	return row.Scan(&post.Id, &post.BoardId, &post.Owner, &post.Title, &post.CreatedAt)
}
