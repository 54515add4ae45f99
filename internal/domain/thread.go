package domain

import "time"

type ThreadCreationData struct {
	PostId  PostId
	Owner   UserId
	Content ThreadContent
}

type Thread struct {
	Id        ThreadId      `json:"thread_id"`
	PostId    PostId        `json:"post_id"`
	Owner     UserId        `json:"thread_owner"`
	Content   ThreadContent `json:"thread_content"`
	CreatedAt time.Time     `json:"date_created"`

	// Sanitized HTML rendering of Content, filled in by the service layer.
	RenderedContent string `json:"rendered_content,omitempty"`
}
