package service

import (
	"testing"

	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

// MockPostStorage mocks the PostStorage interface.
type MockPostStorage struct {
	userFunc            func(id domain.UserId) (domain.User, error)
	boardFunc           func(id domain.BoardId) (domain.Board, error)
	boardByNameFunc     func(name domain.BoardName) (domain.Board, error)
	createPostFunc      func(data domain.PostCreationData) (domain.Post, error)
	postFunc            func(id domain.PostId) (domain.Post, error)
	postsByBoardFunc    func(boardId domain.BoardId) ([]domain.Post, error)
	updatePostTitleFunc func(id domain.PostId, title domain.PostTitle) error
	deletePostFunc      func(id domain.PostId) error
}

func (m *MockPostStorage) User(id domain.UserId) (domain.User, error) {
	if m.userFunc != nil {
		return m.userFunc(id)
	}
	return domain.User{Id: id, Role: domain.RoleGuest}, nil
}

func (m *MockPostStorage) Board(id domain.BoardId) (domain.Board, error) {
	if m.boardFunc != nil {
		return m.boardFunc(id)
	}
	return domain.Board{Id: id}, nil
}

func (m *MockPostStorage) BoardByName(name domain.BoardName) (domain.Board, error) {
	if m.boardByNameFunc != nil {
		return m.boardByNameFunc(name)
	}
	return domain.Board{}, errors.NotFound("Board not found")
}

func (m *MockPostStorage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	if m.createPostFunc != nil {
		return m.createPostFunc(data)
	}
	return domain.Post{Id: 100, BoardId: data.BoardId, Owner: data.Owner, Title: data.Title}, nil
}

func (m *MockPostStorage) Post(id domain.PostId) (domain.Post, error) {
	if m.postFunc != nil {
		return m.postFunc(id)
	}
	return domain.Post{Id: id}, nil
}

func (m *MockPostStorage) PostsByBoard(boardId domain.BoardId) ([]domain.Post, error) {
	if m.postsByBoardFunc != nil {
		return m.postsByBoardFunc(boardId)
	}
	return nil, nil
}

func (m *MockPostStorage) UpdatePostTitle(id domain.PostId, title domain.PostTitle) error {
	if m.updatePostTitleFunc != nil {
		return m.updatePostTitleFunc(id, title)
	}
	return nil
}

func (m *MockPostStorage) DeletePost(id domain.PostId) error {
	if m.deletePostFunc != nil {
		return m.deletePostFunc(id)
	}
	return nil
}

func boardRefId(id domain.BoardId) PostBoardRef {
	return PostBoardRef{Id: &id}
}

func TestPostCreate(t *testing.T) {
	board := domain.Board{Id: 10, Name: "general", Owner: 1, ConfirmedModerators: []domain.UserId{2}, PendingModerators: []domain.UserId{3}}

	newStorage := func() *MockPostStorage {
		return &MockPostStorage{
			boardFunc: func(id domain.BoardId) (domain.Board, error) { return board, nil },
			boardByNameFunc: func(name domain.BoardName) (domain.Board, error) {
				if name == board.Name {
					return board, nil
				}
				return domain.Board{}, errors.NotFound("Board not found")
			},
		}
	}

	testCases := []struct {
		name       string
		actorId    domain.UserId
		wantErr    func(error) bool
		wantErrStr string
	}{
		{name: "board owner creates post", actorId: 1},
		{name: "confirmed moderator creates post", actorId: 2},
		{name: "pending moderator is forbidden", actorId: 3, wantErr: errors.IsForbidden, wantErrStr: "Forbidden"},
		{name: "unrelated user is forbidden", actorId: 4, wantErr: errors.IsForbidden, wantErrStr: "Forbidden"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewPost(newStorage(), &utils.PostTitleValidator{})

			post, err := s.Create(tc.actorId, boardRefId(10), "First post")

			if tc.wantErr != nil {
				if !tc.wantErr(err) {
					t.Errorf("expected %s, got %v", tc.wantErrStr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if post.Owner != tc.actorId {
				t.Errorf("expected creator to own the post, got owner=%d", post.Owner)
			}
		})
	}

	t.Run("resolve board by name", func(t *testing.T) {
		s := NewPost(newStorage(), &utils.PostTitleValidator{})

		post, err := s.Create(1, PostBoardRef{Name: "general"}, "First post")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post.BoardId != 10 {
			t.Errorf("expected board to be resolved by name, got board_id=%d", post.BoardId)
		}
	})

	t.Run("mismatched id and name", func(t *testing.T) {
		s := NewPost(newStorage(), &utils.PostTitleValidator{})

		_, err := s.Create(1, PostBoardRef{Id: &board.Id, Name: "offtopic"}, "First post")
		if !errors.IsInvalidInput(err) {
			t.Errorf("expected InvalidInput, got %v", err)
		}
	})

	t.Run("neither id nor name", func(t *testing.T) {
		s := NewPost(newStorage(), &utils.PostTitleValidator{})

		_, err := s.Create(1, PostBoardRef{}, "First post")
		if !errors.IsInvalidInput(err) {
			t.Errorf("expected InvalidInput, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		s := NewPost(newStorage(), &utils.PostTitleValidator{})

		_, err := s.Create(1, boardRefId(10), "")
		if !errors.IsInvalidInput(err) {
			t.Errorf("expected InvalidInput, got %v", err)
		}
	})
}

func TestPostUpdate(t *testing.T) {
	post := domain.Post{Id: 100, BoardId: 10, Owner: 5, Title: "Old title"}
	board := domain.Board{Id: 10, Owner: 1}

	newStorage := func() *MockPostStorage {
		return &MockPostStorage{
			postFunc:  func(id domain.PostId) (domain.Post, error) { return post, nil },
			boardFunc: func(id domain.BoardId) (domain.Board, error) { return board, nil },
		}
	}

	t.Run("post owner edits title", func(t *testing.T) {
		s := NewPost(newStorage(), &utils.PostTitleValidator{})

		updated, err := s.Update(5, 100, "New title")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "New title" {
			t.Errorf("expected new title, got %s", updated.Title)
		}
	})

	t.Run("unchanged title yields NotModified", func(t *testing.T) {
		storage := newStorage()
		storage.updatePostTitleFunc = func(domain.PostId, domain.PostTitle) error {
			t.Error("no write expected for unchanged title")
			return nil
		}
		s := NewPost(storage, &utils.PostTitleValidator{})

		_, err := s.Update(5, 100, "Old title")
		if !errors.IsNotModified(err) {
			t.Errorf("expected NotModified, got %v", err)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		s := NewPost(newStorage(), &utils.PostTitleValidator{})

		_, err := s.Update(6, 100, "New title")
		if !errors.IsForbidden(err) {
			t.Errorf("expected Forbidden, got %v", err)
		}
	})
}

func TestPostDelete(t *testing.T) {
	post := domain.Post{Id: 100, BoardId: 10, Owner: 5}
	board := domain.Board{Id: 10, Owner: 1, ConfirmedModerators: []domain.UserId{2}}

	newStorage := func() *MockPostStorage {
		return &MockPostStorage{
			postFunc:  func(id domain.PostId) (domain.Post, error) { return post, nil },
			boardFunc: func(id domain.BoardId) (domain.Board, error) { return board, nil },
		}
	}

	testCases := []struct {
		name      string
		actorId   domain.UserId
		forbidden bool
	}{
		{name: "post owner", actorId: 5},
		{name: "board owner", actorId: 1},
		{name: "confirmed moderator without post ownership", actorId: 2, forbidden: true},
		{name: "stranger", actorId: 9, forbidden: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewPost(newStorage(), &utils.PostTitleValidator{})

			err := s.Delete(tc.actorId, 100)
			if tc.forbidden {
				if !errors.IsForbidden(err) {
					t.Errorf("expected Forbidden, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPostListByBoard(t *testing.T) {
	t.Run("missing board yields NotFound", func(t *testing.T) {
		storage := &MockPostStorage{
			boardFunc: func(domain.BoardId) (domain.Board, error) {
				return domain.Board{}, errors.NotFound("Board not found")
			},
		}
		s := NewPost(storage, &utils.PostTitleValidator{})

		_, err := s.ListByBoard(99)
		if !errors.IsNotFound(err) {
			t.Errorf("expected NotFound, got %v", err)
		}
	})
}
