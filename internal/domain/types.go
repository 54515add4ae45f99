package domain

type (
	UserId   = int64
	BoardId  = int64
	PostId   = int64
	ThreadId = int64

	Email    = string
	Username = string
	Password = string

	BoardName     = string
	PostTitle     = string
	ThreadContent = string
)
