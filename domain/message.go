// Package domain contains core concepts of the conferencing client.
// This file defines chat messages as returned by the backend.
// Messages are append-only from the client's perspective and never
// mutated locally; each poll snapshot fully replaces the previous one.
package domain

import "time"

// Message represents one chat entry of a room.
type Message struct {
	ID              int       `json:"id"`
	RoomID          int       `json:"room_id"`
	UserID          int       `json:"user_id"`
	UserDisplayName string    `json:"user_display_name"`
	IsOwner         bool      `json:"is_owner"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}

// MessageList is the paged message envelope of the backend,
// ordered by creation time ascending.
type MessageList struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
}
