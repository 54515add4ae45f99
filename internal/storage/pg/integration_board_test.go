package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulletin-dev/bulletin/internal/domain"
)

func TestCreateBoard(t *testing.T) {
	owner := mustCreateUser(t)

	t.Run("create new board", func(t *testing.T) {
		board := mustCreateBoard(t, owner.Id)
		assert.NotZero(t, board.Id)
		assert.Equal(t, owner.Id, board.Owner)
		assert.False(t, board.CreatedAt.IsZero())
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		board := mustCreateBoard(t, owner.Id)

		_, err := storage.CreateBoard(domain.BoardCreationData{Name: board.Name, Owner: owner.Id})
		requireConflictError(t, err)
	})
}

func TestGetBoard(t *testing.T) {
	owner := mustCreateUser(t)
	board := mustCreateBoard(t, owner.Id)

	t.Run("by id", func(t *testing.T) {
		got, err := storage.Board(board.Id)
		require.NoError(t, err)
		assert.Equal(t, board.Name, got.Name)
		assert.Equal(t, owner.Id, got.Owner)
		assert.Empty(t, got.ConfirmedModerators)
		assert.Empty(t, got.PendingModerators)
	})

	t.Run("by name", func(t *testing.T) {
		got, err := storage.BoardByName(board.Name)
		require.NoError(t, err)
		assert.Equal(t, board.Id, got.Id)
	})

	t.Run("moderator lists split by status", func(t *testing.T) {
		pending := mustCreateUser(t)
		confirmed := mustCreateUser(t)

		_, err := storage.CreateModeration(board.Id, pending.Id)
		require.NoError(t, err)
		_, err = storage.CreateModeration(board.Id, confirmed.Id)
		require.NoError(t, err)
		require.NoError(t, storage.ConfirmModeration(board.Id, confirmed.Id))

		got, err := storage.Board(board.Id)
		require.NoError(t, err)
		assert.Equal(t, []domain.UserId{confirmed.Id}, got.ConfirmedModerators)
		assert.Equal(t, []domain.UserId{pending.Id}, got.PendingModerators)
	})

	t.Run("missing board", func(t *testing.T) {
		_, err := storage.Board(999999999)
		requireNotFoundError(t, err)

		_, err = storage.BoardByName("no-such-board")
		requireNotFoundError(t, err)
	})
}

func TestListBoards(t *testing.T) {
	owner := mustCreateUser(t)
	first := mustCreateBoard(t, owner.Id)
	second := mustCreateBoard(t, owner.Id)

	boards, err := storage.Boards()
	require.NoError(t, err)

	var firstIdx, secondIdx = -1, -1
	for i, b := range boards {
		switch b.Id {
		case first.Id:
			firstIdx = i
		case second.Id:
			secondIdx = i
		}
	}
	require.NotEqual(t, -1, firstIdx, "first board should be listed")
	require.NotEqual(t, -1, secondIdx, "second board should be listed")
	assert.Less(t, firstIdx, secondIdx, "boards should be ordered by creation time")
}

func TestUpdateBoardName(t *testing.T) {
	owner := mustCreateUser(t)

	t.Run("rename persists", func(t *testing.T) {
		board := mustCreateBoard(t, owner.Id)
		newName := generateString(t)

		require.NoError(t, storage.UpdateBoardName(board.Id, newName))

		got, err := storage.Board(board.Id)
		require.NoError(t, err)
		assert.Equal(t, newName, got.Name)
	})

	t.Run("rename to taken name conflicts", func(t *testing.T) {
		board := mustCreateBoard(t, owner.Id)
		other := mustCreateBoard(t, owner.Id)

		err := storage.UpdateBoardName(board.Id, other.Name)
		requireConflictError(t, err)
	})

	t.Run("missing board", func(t *testing.T) {
		err := storage.UpdateBoardName(999999999, generateString(t))
		requireNotFoundError(t, err)
	})
}

// TestDeleteBoard verifies the whole subtree goes away atomically.
func TestDeleteBoard(t *testing.T) {
	owner := mustCreateUser(t)
	moderator := mustCreateUser(t)

	board, err := storage.CreateBoard(domain.BoardCreationData{Name: generateString(t), Owner: owner.Id})
	require.NoError(t, err)

	post := mustCreatePost(t, board.Id, owner.Id)
	thread := mustCreateThread(t, post.Id, owner.Id)

	_, err = storage.CreateModeration(board.Id, moderator.Id)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteBoard(board.Id))

	_, err = storage.Board(board.Id)
	requireNotFoundError(t, err)

	_, err = storage.Post(post.Id)
	requireNotFoundError(t, err)

	_, err = storage.Thread(thread.Id)
	requireNotFoundError(t, err)

	_, err = storage.Moderation(board.Id, moderator.Id)
	requireNotFoundError(t, err)

	t.Run("second delete is not found", func(t *testing.T) {
		requireNotFoundError(t, storage.DeleteBoard(board.Id))
	})
}
