package domain

import "time"

type PostCreationData struct {
	BoardId BoardId
	Owner   UserId
	Title   PostTitle
}

type Post struct {
	Id        PostId    `json:"post_id"`
	BoardId   BoardId   `json:"board_id"`
	Owner     UserId    `json:"post_owner"`
	Title     PostTitle `json:"post_title"`
	CreatedAt time.Time `json:"date_created"`
}
