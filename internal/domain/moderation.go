package domain

import "time"

// ModerationStatus is the state of a moderation invite.
// There is no ABSENT value: absence is the absence of the record itself.
type ModerationStatus string

const (
	ModerationPending   ModerationStatus = "PENDING"
	ModerationConfirmed ModerationStatus = "CONFIRMED"
)

// Moderation is an invitation of a user to moderate a board.
// At most one record may exist per (board, user) pair.
type Moderation struct {
	Id        int64            `json:"board_moderator_id"`
	BoardId   BoardId          `json:"board_id"`
	UserId    UserId           `json:"user_id"`
	Status    ModerationStatus `json:"status"`
	CreatedAt time.Time        `json:"date_created"`
}
