package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulletin-dev/bulletin/internal/domain"
)

func TestCreatePost(t *testing.T) {
	owner := mustCreateUser(t)
	board := mustCreateBoard(t, owner.Id)

	post, err := storage.CreatePost(domain.PostCreationData{BoardId: board.Id, Owner: owner.Id, Title: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, post.Id)
	assert.Equal(t, board.Id, post.BoardId)
	assert.Equal(t, "hello", post.Title)
}

func TestGetPost(t *testing.T) {
	owner := mustCreateUser(t)
	board := mustCreateBoard(t, owner.Id)
	post := mustCreatePost(t, board.Id, owner.Id)

	t.Run("existing post", func(t *testing.T) {
		got, err := storage.Post(post.Id)
		require.NoError(t, err)
		assert.Equal(t, post.Title, got.Title)
		assert.Equal(t, owner.Id, got.Owner)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := storage.Post(999999999)
		requireNotFoundError(t, err)
	})
}

func TestPostsByBoard(t *testing.T) {
	owner := mustCreateUser(t)
	board := mustCreateBoard(t, owner.Id)
	first := mustCreatePost(t, board.Id, owner.Id)
	second := mustCreatePost(t, board.Id, owner.Id)

	posts, err := storage.PostsByBoard(board.Id)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first.Id, posts[0].Id, "posts should be ordered oldest first")
	assert.Equal(t, second.Id, posts[1].Id)

	t.Run("empty board lists nothing", func(t *testing.T) {
		empty := mustCreateBoard(t, owner.Id)
		posts, err := storage.PostsByBoard(empty.Id)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestUpdatePostTitle(t *testing.T) {
	owner := mustCreateUser(t)
	board := mustCreateBoard(t, owner.Id)
	post := mustCreatePost(t, board.Id, owner.Id)

	t.Run("title change persists", func(t *testing.T) {
		require.NoError(t, storage.UpdatePostTitle(post.Id, "renamed"))

		got, err := storage.Post(post.Id)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
	})

	t.Run("missing post", func(t *testing.T) {
		requireNotFoundError(t, storage.UpdatePostTitle(999999999, "renamed"))
	})
}

// TestDeletePost verifies threads under the post are removed in the
// same transaction.
func TestDeletePost(t *testing.T) {
	owner := mustCreateUser(t)
	board := mustCreateBoard(t, owner.Id)
	post := mustCreatePost(t, board.Id, owner.Id)
	thread := mustCreateThread(t, post.Id, owner.Id)
	sibling := mustCreatePost(t, board.Id, owner.Id)

	require.NoError(t, storage.DeletePost(post.Id))

	_, err := storage.Post(post.Id)
	requireNotFoundError(t, err)

	_, err = storage.Thread(thread.Id)
	requireNotFoundError(t, err)

	// Sibling post on the same board is untouched.
	_, err = storage.Post(sibling.Id)
	require.NoError(t, err)

	t.Run("second delete is not found", func(t *testing.T) {
		requireNotFoundError(t, storage.DeletePost(post.Id))
	})
}
