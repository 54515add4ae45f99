package service

import (
	"github.com/bulletin-dev/bulletin/internal/authz"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
)

type ThreadService interface {
	Create(actorId domain.UserId, postId domain.PostId, content domain.ThreadContent) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	ListByPost(postId domain.PostId) ([]domain.Thread, error)
	Update(actorId domain.UserId, id domain.ThreadId, content domain.ThreadContent) (domain.Thread, error)
	Delete(actorId domain.UserId, id domain.ThreadId) error
}

type Thread struct {
	storage          ThreadStorage
	contentValidator ThreadValidator
	renderer         ContentRenderer
}

type ThreadStorage interface {
	User(id domain.UserId) (domain.User, error)
	Board(id domain.BoardId) (domain.Board, error)
	Post(id domain.PostId) (domain.Post, error)
	CreateThread(data domain.ThreadCreationData) (domain.Thread, error)
	Thread(id domain.ThreadId) (domain.Thread, error)
	ThreadsByPost(postId domain.PostId) ([]domain.Thread, error)
	UpdateThreadContent(id domain.ThreadId, content domain.ThreadContent) error
	DeleteThread(id domain.ThreadId) error
}

type ThreadValidator interface {
	Content(content string) error
}

// ContentRenderer turns raw thread content into sanitized HTML for
// representations.
type ContentRenderer interface {
	Render(text string) string
}

func NewThread(storage ThreadStorage, validator ThreadValidator, renderer ContentRenderer) *Thread {
	return &Thread{storage, validator, renderer}
}

// loadParents resolves the thread's post and that post's board.
// A missing parent is a NotFound outcome, never a permission failure.
func (t *Thread) loadParents(postId domain.PostId) (domain.Post, domain.Board, error) {
	post, err := t.storage.Post(postId)
	if err != nil {
		return domain.Post{}, domain.Board{}, err
	}
	board, err := t.storage.Board(post.BoardId)
	if err != nil {
		return domain.Post{}, domain.Board{}, err
	}
	return post, board, nil
}

func (t *Thread) Create(actorId domain.UserId, postId domain.PostId, content domain.ThreadContent) (domain.Thread, error) {
	if err := t.contentValidator.Content(content); err != nil {
		return domain.Thread{}, err
	}

	post, board, err := t.loadParents(postId)
	if err != nil {
		return domain.Thread{}, err
	}
	actor, err := t.storage.User(actorId)
	if err != nil {
		return domain.Thread{}, err
	}

	if !authz.CanCreateThread(&actor, &board, &post) {
		return domain.Thread{}, errors.Forbidden("Not allowed to create threads under that post")
	}

	thread, err := t.storage.CreateThread(domain.ThreadCreationData{PostId: postId, Owner: actorId, Content: content})
	if err != nil {
		return domain.Thread{}, err
	}
	thread.RenderedContent = t.renderer.Render(thread.Content)
	return thread, nil
}

func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	thread, err := t.storage.Thread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	thread.RenderedContent = t.renderer.Render(thread.Content)
	return thread, nil
}

// ListByPost returns the post's threads in creation-time order.
func (t *Thread) ListByPost(postId domain.PostId) ([]domain.Thread, error) {
	if _, err := t.storage.Post(postId); err != nil {
		return nil, err
	}
	threads, err := t.storage.ThreadsByPost(postId)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		threads[i].RenderedContent = t.renderer.Render(threads[i].Content)
	}
	return threads, nil
}

func (t *Thread) Update(actorId domain.UserId, id domain.ThreadId, content domain.ThreadContent) (domain.Thread, error) {
	if err := t.contentValidator.Content(content); err != nil {
		return domain.Thread{}, err
	}

	thread, err := t.storage.Thread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	post, board, err := t.loadParents(thread.PostId)
	if err != nil {
		return domain.Thread{}, err
	}
	actor, err := t.storage.User(actorId)
	if err != nil {
		return domain.Thread{}, err
	}

	if !authz.CanManageThread(&actor, &board, &post, &thread) {
		return domain.Thread{}, errors.Forbidden("Not allowed to edit that thread")
	}

	if thread.Content == content {
		return domain.Thread{}, errors.NotModified("Thread content unchanged")
	}

	if err := t.storage.UpdateThreadContent(id, content); err != nil {
		return domain.Thread{}, err
	}

	thread.Content = content
	thread.RenderedContent = t.renderer.Render(content)
	return thread, nil
}

func (t *Thread) Delete(actorId domain.UserId, id domain.ThreadId) error {
	thread, err := t.storage.Thread(id)
	if err != nil {
		return err
	}
	post, board, err := t.loadParents(thread.PostId)
	if err != nil {
		return err
	}
	actor, err := t.storage.User(actorId)
	if err != nil {
		return err
	}

	if !authz.CanManageThread(&actor, &board, &post, &thread) {
		return errors.Forbidden("Not allowed to delete that thread")
	}

	return t.storage.DeleteThread(id)
}
