package service

import (
	"github.com/bulletin-dev/bulletin/internal/authz"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
)

// ModerationService drives the invitation lifecycle per (board, user)
// pair: no record -> PENDING -> CONFIRMED, with revoke at any state.
type ModerationService interface {
	Invite(actorId domain.UserId, boardId domain.BoardId, inviteeId domain.UserId) (domain.Moderation, error)
	Accept(actorId domain.UserId, boardId domain.BoardId, inviteeId domain.UserId) (domain.Moderation, error)
	Revoke(actorId domain.UserId, boardId domain.BoardId, targetId domain.UserId) error
	List() ([]domain.Moderation, error)
	ListByUser(userId domain.UserId) ([]domain.Moderation, error)
}

type Moderation struct {
	storage ModerationStorage
}

type ModerationStorage interface {
	User(id domain.UserId) (domain.User, error)
	Board(id domain.BoardId) (domain.Board, error)
	CreateModeration(boardId domain.BoardId, userId domain.UserId) (domain.Moderation, error)
	Moderation(boardId domain.BoardId, userId domain.UserId) (domain.Moderation, error)
	ConfirmModeration(boardId domain.BoardId, userId domain.UserId) error
	DeleteModeration(boardId domain.BoardId, userId domain.UserId) error
	Moderations() ([]domain.Moderation, error)
	ModerationsByUser(userId domain.UserId) ([]domain.Moderation, error)
}

func NewModeration(storage ModerationStorage) *Moderation {
	return &Moderation{storage}
}

// Invite creates a PENDING record. Self-invites are rejected outright;
// a second invite for the pair is a Conflict regardless of status.
func (m *Moderation) Invite(actorId domain.UserId, boardId domain.BoardId, inviteeId domain.UserId) (domain.Moderation, error) {
	if actorId == inviteeId {
		return domain.Moderation{}, errors.InvalidOperation("Not allowed to invite self as moderator")
	}

	board, err := m.storage.Board(boardId)
	if err != nil {
		return domain.Moderation{}, err
	}
	actor, err := m.storage.User(actorId)
	if err != nil {
		return domain.Moderation{}, err
	}

	if !authz.CanManageBoard(&actor, &board) {
		return domain.Moderation{}, errors.Forbidden("Not allowed to invite moderators for that board")
	}

	if _, err := m.storage.User(inviteeId); err != nil {
		return domain.Moderation{}, err
	}

	// The unique (board_id, user_id) constraint backs this up under
	// concurrent invites.
	return m.storage.CreateModeration(boardId, inviteeId)
}

// Accept transitions PENDING -> CONFIRMED. Only the invitee may accept;
// accepting an already-CONFIRMED record is an idempotent no-op.
func (m *Moderation) Accept(actorId domain.UserId, boardId domain.BoardId, inviteeId domain.UserId) (domain.Moderation, error) {
	if actorId != inviteeId {
		return domain.Moderation{}, errors.Forbidden("Not allowed to accept moderation for another user")
	}

	mod, err := m.storage.Moderation(boardId, inviteeId)
	if err != nil {
		return domain.Moderation{}, err
	}

	if mod.Status == domain.ModerationConfirmed {
		return mod, nil
	}

	if err := m.storage.ConfirmModeration(boardId, inviteeId); err != nil {
		return domain.Moderation{}, err
	}

	mod.Status = domain.ModerationConfirmed
	return mod, nil
}

// Revoke deletes the record unconditionally, PENDING or CONFIRMED.
func (m *Moderation) Revoke(actorId domain.UserId, boardId domain.BoardId, targetId domain.UserId) error {
	board, err := m.storage.Board(boardId)
	if err != nil {
		return err
	}
	actor, err := m.storage.User(actorId)
	if err != nil {
		return err
	}

	if !authz.CanManageBoard(&actor, &board) {
		return errors.Forbidden("Not allowed to revoke moderation for that board")
	}

	return m.storage.DeleteModeration(boardId, targetId)
}

// List and ListByUser are read-only projections without a permission
// check beyond authentication, mirroring the board moderator lists
// being publicly embedded in board reads.
func (m *Moderation) List() ([]domain.Moderation, error) {
	return m.storage.Moderations()
}

func (m *Moderation) ListByUser(userId domain.UserId) ([]domain.Moderation, error) {
	return m.storage.ModerationsByUser(userId)
}
