// Package controllers owns the page logic of the client. Each controller
// drives the API client, renders snapshots through a ui.Screen, and owns
// the lifecycle of its own background workers. Navigation is an explicit
// value handed back to the app loop, never a side effect buried in the
// transport layer.
package controllers

import (
	stderrors "errors"

	"cloudmeet-client/domain"
	"cloudmeet-client/errors"
)

type Route string

const (
	// RouteAuth is the unauthenticated entry point.
	RouteAuth  Route = "auth"
	RouteRooms Route = "rooms"
	RouteRoom  Route = "room"
	RouteQuit  Route = "quit"
)

// Navigation tells the app loop where to go next. A nil *Navigation
// means "stay on the current page".
type Navigation struct {
	Route  Route
	RoomID domain.RoomID
}

// Confirmer blocks for a yes/no answer before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// isUnauthorized reports whether the session was rejected server-side.
// The transport has already cleared the token; the page only has to
// route back to the entry point.
func isUnauthorized(err error) bool {
	return stderrors.Is(err, errors.ErrUnauthorized)
}
