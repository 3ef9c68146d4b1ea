// Package domain contains core concepts of the conferencing client.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// ParticipantStatus is the presence state reported by the backend.
type ParticipantStatus string

const (
	StatusInCall ParticipantStatus = "in_call"
	StatusOnline ParticipantStatus = "online"
)

// Participant is one member of a room detail snapshot.
type Participant struct {
	ID              int               `json:"id"`
	UserID          int               `json:"user_id"`
	UserDisplayName string            `json:"user_display_name"`
	Status          ParticipantStatus `json:"status"`
	IsOwner         bool              `json:"is_owner"`
	JoinTime        time.Time         `json:"join_time"`
	LeaveTime       *time.Time        `json:"leave_time,omitempty"`
}

func (p Participant) InCall() bool {
	return p.Status == StatusInCall
}
