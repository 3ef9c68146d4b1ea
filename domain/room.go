package domain

import "time"

type RoomID int

// Room is the list-view shape of a conference room.
type Room struct {
	ID                RoomID    `json:"id"`
	Name              string    `json:"name"`
	OwnerID           int       `json:"owner_id"`
	IsActive          bool      `json:"is_active"`
	ParticipantsCount int       `json:"participants_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// OwnedBy reports whether the given user created the room.
// Only the owner is offered the delete action.
func (r Room) OwnedBy(u User) bool {
	return r.OwnerID == u.ID
}

// RoomDetail expands a Room with its current participants.
type RoomDetail struct {
	Room
	Participants []Participant `json:"participants"`
}
