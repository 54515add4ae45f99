package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name  BoardName
	Owner UserId
}

type Board struct {
	Id        BoardId   `json:"board_id"`
	Name      BoardName `json:"board_name"`
	Owner     UserId    `json:"board_owner"`
	CreatedAt time.Time `json:"date_created"`

	// Moderator id lists, populated on single-board reads.
	ConfirmedModerators []UserId `json:"confirmed_moderators,omitempty"`
	PendingModerators   []UserId `json:"pending_moderators,omitempty"`
}

// HasConfirmedModerator reports whether userId holds a CONFIRMED
// moderation record on the board. Lists must be loaded by the caller.
func (b *Board) HasConfirmedModerator(userId UserId) bool {
	for _, id := range b.ConfirmedModerators {
		if id == userId {
			return true
		}
	}
	return false
}
