package service

import (
	"github.com/bulletin-dev/bulletin/internal/authz"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
)

// PostBoardRef addresses the parent board by id, by name, or both.
type PostBoardRef struct {
	Id   *domain.BoardId
	Name domain.BoardName
}

type PostService interface {
	Create(actorId domain.UserId, board PostBoardRef, title domain.PostTitle) (domain.Post, error)
	Get(id domain.PostId) (domain.Post, error)
	ListByBoard(boardId domain.BoardId) ([]domain.Post, error)
	Update(actorId domain.UserId, id domain.PostId, title domain.PostTitle) (domain.Post, error)
	Delete(actorId domain.UserId, id domain.PostId) error
}

type Post struct {
	storage        PostStorage
	titleValidator PostValidator
}

type PostStorage interface {
	User(id domain.UserId) (domain.User, error)
	Board(id domain.BoardId) (domain.Board, error)
	BoardByName(name domain.BoardName) (domain.Board, error)
	CreatePost(data domain.PostCreationData) (domain.Post, error)
	Post(id domain.PostId) (domain.Post, error)
	PostsByBoard(boardId domain.BoardId) ([]domain.Post, error)
	UpdatePostTitle(id domain.PostId, title domain.PostTitle) error
	DeletePost(id domain.PostId) error
}

type PostValidator interface {
	Title(title string) error
}

func NewPost(storage PostStorage, validator PostValidator) *Post {
	return &Post{storage, validator}
}

// resolveBoard loads the parent board by id or name. When both are
// given they must address the same board.
func (p *Post) resolveBoard(ref PostBoardRef) (domain.Board, error) {
	switch {
	case ref.Id != nil:
		board, err := p.storage.Board(*ref.Id)
		if err != nil {
			return domain.Board{}, err
		}
		if ref.Name != "" && board.Name != ref.Name {
			return domain.Board{}, errors.InvalidInput("board_id and board_name address different boards")
		}
		return board, nil
	case ref.Name != "":
		return p.storage.BoardByName(ref.Name)
	default:
		return domain.Board{}, errors.InvalidInput("Need to provide either board_id or board_name")
	}
}

// Create starts a post on a board. Requires board-admin, staff-tier or
// confirmed-moderator standing on the board.
func (p *Post) Create(actorId domain.UserId, boardRef PostBoardRef, title domain.PostTitle) (domain.Post, error) {
	if err := p.titleValidator.Title(title); err != nil {
		return domain.Post{}, err
	}

	board, err := p.resolveBoard(boardRef)
	if err != nil {
		return domain.Post{}, err
	}
	actor, err := p.storage.User(actorId)
	if err != nil {
		return domain.Post{}, err
	}

	if !authz.CanCreatePost(&actor, &board) {
		return domain.Post{}, errors.Forbidden("Not allowed to create posts on that board")
	}

	return p.storage.CreatePost(domain.PostCreationData{BoardId: board.Id, Owner: actorId, Title: title})
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	return p.storage.Post(id)
}

// ListByBoard returns the board's posts in creation-time order.
func (p *Post) ListByBoard(boardId domain.BoardId) ([]domain.Post, error) {
	if _, err := p.storage.Board(boardId); err != nil {
		return nil, err
	}
	return p.storage.PostsByBoard(boardId)
}

func (p *Post) Update(actorId domain.UserId, id domain.PostId, title domain.PostTitle) (domain.Post, error) {
	if err := p.titleValidator.Title(title); err != nil {
		return domain.Post{}, err
	}

	post, err := p.storage.Post(id)
	if err != nil {
		return domain.Post{}, err
	}
	board, err := p.storage.Board(post.BoardId)
	if err != nil {
		return domain.Post{}, err
	}
	actor, err := p.storage.User(actorId)
	if err != nil {
		return domain.Post{}, err
	}

	if !authz.CanManagePost(&actor, &board, &post) {
		return domain.Post{}, errors.Forbidden("Not allowed to edit that post")
	}

	if post.Title == title {
		return domain.Post{}, errors.NotModified("Post title unchanged")
	}

	if err := p.storage.UpdatePostTitle(id, title); err != nil {
		return domain.Post{}, err
	}

	post.Title = title
	return post, nil
}

// Delete removes the post and cascades to its threads.
func (p *Post) Delete(actorId domain.UserId, id domain.PostId) error {
	post, err := p.storage.Post(id)
	if err != nil {
		return err
	}
	board, err := p.storage.Board(post.BoardId)
	if err != nil {
		return err
	}
	actor, err := p.storage.User(actorId)
	if err != nil {
		return err
	}

	if !authz.CanManagePost(&actor, &board, &post) {
		return errors.Forbidden("Not allowed to delete that post")
	}

	return p.storage.DeletePost(id)
}
