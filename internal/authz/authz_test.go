package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bulletin-dev/bulletin/internal/domain"
)

var (
	superadmin = domain.User{Id: 1, Role: domain.RoleSuperadmin}
	staff      = domain.User{Id: 2, Role: domain.RoleStaff}
	owner      = domain.User{Id: 3, Role: domain.RoleGuest}
	moderator  = domain.User{Id: 4, Role: domain.RoleGuest}
	pending    = domain.User{Id: 5, Role: domain.RoleGuest}
	stranger   = domain.User{Id: 6, Role: domain.RoleGuest}
)

func testBoard() *domain.Board {
	return &domain.Board{
		Id:                  10,
		Name:                "general",
		Owner:               owner.Id,
		ConfirmedModerators: []domain.UserId{moderator.Id},
		PendingModerators:   []domain.UserId{pending.Id},
	}
}

func TestCanManageBoard(t *testing.T) {
	board := testBoard()

	testCases := []struct {
		name    string
		actor   domain.User
		allowed bool
	}{
		{"superadmin", superadmin, true},
		{"staff", staff, true},
		{"board owner", owner, true},
		{"confirmed moderator", moderator, false},
		{"pending moderator", pending, false},
		{"stranger", stranger, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanManageBoard(&tc.actor, board))
		})
	}
}

func TestCanModerateBoard(t *testing.T) {
	board := testBoard()

	testCases := []struct {
		name    string
		actor   domain.User
		allowed bool
	}{
		{"superadmin", superadmin, true},
		{"board owner", owner, true},
		{"confirmed moderator", moderator, true},
		{"pending moderator is not confirmed", pending, false},
		{"stranger", stranger, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanModerateBoard(&tc.actor, board))
		})
	}
}

func TestCanCreatePost(t *testing.T) {
	board := testBoard()

	// same privilege set as moderation standing
	assert.True(t, CanCreatePost(&staff, board))
	assert.True(t, CanCreatePost(&owner, board))
	assert.True(t, CanCreatePost(&moderator, board))
	assert.False(t, CanCreatePost(&pending, board))
	assert.False(t, CanCreatePost(&stranger, board))
}

func TestCanManagePost(t *testing.T) {
	board := testBoard()
	post := &domain.Post{Id: 100, BoardId: board.Id, Owner: moderator.Id}

	testCases := []struct {
		name    string
		actor   domain.User
		allowed bool
	}{
		{"post owner", moderator, true},
		{"board owner", owner, true},
		{"staff", staff, true},
		{"pending moderator", pending, false},
		{"stranger", stranger, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanManagePost(&tc.actor, board, post))
		})
	}
}

func TestCanCreateThread(t *testing.T) {
	board := testBoard()
	post := &domain.Post{Id: 100, BoardId: board.Id, Owner: stranger.Id}

	assert.True(t, CanCreateThread(&stranger, board, post), "post owner may open threads under own post")
	assert.True(t, CanCreateThread(&moderator, board, post))
	assert.True(t, CanCreateThread(&owner, board, post))
	assert.False(t, CanCreateThread(&pending, board, post))
}

func TestCanManageThread(t *testing.T) {
	board := testBoard()
	post := &domain.Post{Id: 100, BoardId: board.Id, Owner: owner.Id}
	thread := &domain.Thread{Id: 1000, PostId: post.Id, Owner: stranger.Id}

	testCases := []struct {
		name    string
		actor   domain.User
		allowed bool
	}{
		{"thread owner", stranger, true},
		{"post owner", owner, true},
		{"superadmin", superadmin, true},
		{"confirmed moderator without ownership", moderator, false},
		{"unrelated user", pending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanManageThread(&tc.actor, board, post, thread))
		})
	}
}

func TestCanChangeRole(t *testing.T) {
	testCases := []struct {
		name    string
		actor   domain.User
		target  domain.User
		allowed bool
	}{
		{"superadmin changes staff", superadmin, staff, true},
		{"superadmin changes guest", superadmin, stranger, true},
		{"staff changes guest", staff, stranger, true},
		{"staff cannot touch superadmin", staff, superadmin, false},
		{"guest cannot change roles", stranger, pending, false},
		{"nobody changes own role", superadmin, superadmin, false},
		{"staff cannot change own role", staff, staff, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanChangeRole(&tc.actor, &tc.target))
		})
	}
}
