// Package authz holds the permission rules for every mutating operation.
// All checks are pure functions over already-loaded entities: no I/O,
// no side effects. Callers load the board with its moderator lists
// before asking any question that involves moderator standing.
package authz

import "github.com/bulletin-dev/bulletin/internal/domain"

// CanManageBoard: board owner or staff-tier. Gates board rename/delete
// and every moderation invite/revoke on the board.
func CanManageBoard(actor *domain.User, board *domain.Board) bool {
	return board.Owner == actor.Id || actor.Role.StaffTier()
}

// CanModerateBoard extends CanManageBoard with confirmed-moderator
// standing. A PENDING invite grants nothing.
func CanModerateBoard(actor *domain.User, board *domain.Board) bool {
	return CanManageBoard(actor, board) || board.HasConfirmedModerator(actor.Id)
}

// CanCreatePost: starting a post requires board-admin, staff-tier or
// confirmed-moderator standing. Ordinary authenticated users cannot
// start posts on boards they have no standing on.
func CanCreatePost(actor *domain.User, board *domain.Board) bool {
	return CanModerateBoard(actor, board)
}

// CanManagePost: post owner or anyone who can manage the parent board.
func CanManagePost(actor *domain.User, board *domain.Board, post *domain.Post) bool {
	return post.Owner == actor.Id || CanManageBoard(actor, board)
}

// CanCreateThread: same privilege set as post creation, plus the post
// owner themself may always open threads under their own post.
func CanCreateThread(actor *domain.User, board *domain.Board, post *domain.Post) bool {
	return CanManagePost(actor, board, post) || board.HasConfirmedModerator(actor.Id)
}

// CanManageThread: thread owner or anyone who can manage the parent post.
func CanManageThread(actor *domain.User, board *domain.Board, post *domain.Post, thread *domain.Thread) bool {
	return thread.Owner == actor.Id || CanManagePost(actor, board, post)
}

// CanChangeRole: staff-tier actors only, never on themselves, and STAFF
// may not touch a SUPERADMIN target.
func CanChangeRole(actor *domain.User, target *domain.User) bool {
	if !actor.Role.StaffTier() {
		return false
	}
	if actor.Id == target.Id {
		return false
	}
	if actor.Role == domain.RoleStaff && target.Role == domain.RoleSuperadmin {
		return false
	}
	return true
}
