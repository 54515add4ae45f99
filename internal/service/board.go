package service

import (
	"github.com/bulletin-dev/bulletin/internal/authz"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
)

// to mock service in tests
type BoardService interface {
	Create(actorId domain.UserId, name domain.BoardName) (domain.Board, error)
	Get(id domain.BoardId) (domain.Board, error)
	GetAll() ([]domain.Board, error)
	Update(actorId domain.UserId, id domain.BoardId, name domain.BoardName) (domain.Board, error)
	Delete(actorId domain.UserId, id domain.BoardId) error
}

type Board struct {
	storage       BoardStorage
	nameValidator BoardValidator
}

type BoardStorage interface {
	User(id domain.UserId) (domain.User, error)
	CreateBoard(data domain.BoardCreationData) (domain.Board, error)
	Board(id domain.BoardId) (domain.Board, error)
	Boards() ([]domain.Board, error)
	UpdateBoardName(id domain.BoardId, name domain.BoardName) error
	DeleteBoard(id domain.BoardId) error
}

type BoardValidator interface {
	Name(name string) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) *Board {
	return &Board{storage, validator}
}

// Create makes the acting user the board owner. Any authenticated user
// may create a board; duplicate names surface as Conflict.
func (b *Board) Create(actorId domain.UserId, name domain.BoardName) (domain.Board, error) {
	if err := b.nameValidator.Name(name); err != nil {
		return domain.Board{}, err
	}

	if _, err := b.storage.User(actorId); err != nil {
		return domain.Board{}, err
	}

	return b.storage.CreateBoard(domain.BoardCreationData{Name: name, Owner: actorId})
}

// Get returns the board with its confirmed and pending moderator lists
// embedded. Publicly readable.
func (b *Board) Get(id domain.BoardId) (domain.Board, error) {
	return b.storage.Board(id)
}

func (b *Board) GetAll() ([]domain.Board, error) {
	return b.storage.Boards()
}

// Update renames the board. Renaming to the current name is the
// idempotence short-circuit: NotModified, no write performed.
func (b *Board) Update(actorId domain.UserId, id domain.BoardId, name domain.BoardName) (domain.Board, error) {
	if err := b.nameValidator.Name(name); err != nil {
		return domain.Board{}, err
	}

	board, err := b.storage.Board(id)
	if err != nil {
		return domain.Board{}, err
	}
	actor, err := b.storage.User(actorId)
	if err != nil {
		return domain.Board{}, err
	}

	if !authz.CanManageBoard(&actor, &board) {
		return domain.Board{}, errors.Forbidden("Not allowed to edit that board")
	}

	if board.Name == name {
		return domain.Board{}, errors.NotModified("Board name unchanged")
	}

	if err := b.storage.UpdateBoardName(id, name); err != nil {
		return domain.Board{}, err
	}

	board.Name = name
	return board, nil
}

// Delete cascades to the board's posts, their threads and all
// moderation records, atomically.
func (b *Board) Delete(actorId domain.UserId, id domain.BoardId) error {
	board, err := b.storage.Board(id)
	if err != nil {
		return err
	}
	actor, err := b.storage.User(actorId)
	if err != nil {
		return err
	}

	if !authz.CanManageBoard(&actor, &board) {
		return errors.Forbidden("Not allowed to delete that board")
	}

	return b.storage.DeleteBoard(id)
}
