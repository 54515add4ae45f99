package api

import "github.com/bulletin-dev/bulletin/internal/domain"

// Request DTOs

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SetRoleRequest struct {
	UserId     int64  `json:"user_id" validate:"required"`
	TargetRole string `json:"target_role" validate:"required"`
}

type CreateBoardRequest struct {
	Name string `json:"board_name" validate:"required"`
}

type UpdateBoardRequest struct {
	Name string `json:"board_name" validate:"required"`
}

type CreatePostRequest struct {
	BoardId   *int64 `json:"board_id,omitempty"`
	BoardName string `json:"board_name,omitempty"`
	Title     string `json:"post_title" validate:"required"`
}

type UpdatePostRequest struct {
	Title string `json:"post_title" validate:"required"`
}

type CreateThreadRequest struct {
	PostId  int64  `json:"post_id" validate:"required"`
	Content string `json:"thread_content" validate:"required"`
}

type UpdateThreadRequest struct {
	Content string `json:"thread_content" validate:"required"`
}

type ModerationRequest struct {
	BoardId           int64 `json:"board_id" validate:"required"`
	ProposedModerator int64 `json:"proposed_moderator" validate:"required"`
}

// Response DTOs

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}

type PostListResponse struct {
	BoardId int64         `json:"board_id"`
	Posts   []domain.Post `json:"posts"`
}

type ThreadListResponse struct {
	PostId  int64           `json:"post_id"`
	Threads []domain.Thread `json:"threads"`
}

type ModerationListResponse struct {
	Moderation []domain.Moderation `json:"moderation"`
}
