package controllers

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cloudmeet-client/api"
	"cloudmeet-client/domain"
	"cloudmeet-client/session"
	"cloudmeet-client/ui"
)

// RoomsController handles the room list page: a one-time snapshot per
// load, with no periodic refresh.
type RoomsController struct {
	api     api.IConferenceAPI
	tokens  session.ITokenStore
	screen  *ui.Screen
	confirm Confirmer
	log     *slog.Logger

	viewer domain.User
	rooms  []domain.Room

	mu         sync.Mutex
	alert      string
	alertTimer *time.Timer

	PageLimit       int
	OnlyActive      bool
	NavigationDelay time.Duration
	// AlertTTL is how long a failure alert stays on screen before it is
	// dismissed on its own.
	AlertTTL time.Duration
}

func NewRoomsController(client api.IConferenceAPI, tokens session.ITokenStore, screen *ui.Screen, confirm Confirmer, log *slog.Logger) *RoomsController {
	return &RoomsController{
		api:             client,
		tokens:          tokens,
		screen:          screen,
		confirm:         confirm,
		log:             log,
		PageLimit:       20,
		OnlyActive:      true,
		NavigationDelay: 500 * time.Millisecond,
		AlertTTL:        5 * time.Second,
	}
}

func (c *RoomsController) Viewer() domain.User  { return c.viewer }
func (c *RoomsController) Rooms() []domain.Room { return c.rooms }

// Alert returns the currently displayed alert text, empty once dismissed.
func (c *RoomsController) Alert() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alert
}

// Load requires an existing session, fetches the viewer and the room
// snapshot, and renders the cards.
func (c *RoomsController) Load(ctx context.Context) (*Navigation, error) {
	if !c.tokens.IsAuthenticated() {
		return &Navigation{Route: RouteAuth}, nil
	}

	viewer, err := c.api.Me(ctx)
	if err != nil {
		return c.fail("Failed to load your profile: ", err)
	}
	c.viewer = viewer

	if err := c.Refresh(ctx); err != nil {
		return c.fail("Failed to load rooms: ", err)
	}
	return nil, nil
}

// Refresh re-fetches the list and redraws it. There is no optimistic
// local mutation anywhere on this page.
func (c *RoomsController) Refresh(ctx context.Context) error {
	rooms, err := c.api.Rooms(ctx, 0, c.PageLimit, c.OnlyActive)
	if err != nil {
		return err
	}
	c.rooms = rooms
	c.screen.Clear()
	c.screen.RenderRooms(rooms, c.viewer)
	return nil
}

// Join enters a room. The room page will issue its own join call, but
// joining from the list gives immediate feedback on failure.
func (c *RoomsController) Join(ctx context.Context, id domain.RoomID) (*Navigation, error) {
	if err := c.api.JoinRoom(ctx, id); err != nil {
		return c.fail("Failed to join: ", err)
	}
	return &Navigation{Route: RouteRoom, RoomID: id}, nil
}

// Delete asks for a blocking confirmation first; declining issues no
// request at all. Success re-fetches the snapshot instead of removing
// the card locally.
func (c *RoomsController) Delete(ctx context.Context, id domain.RoomID) error {
	if !c.confirm.Confirm("Are you sure you want to delete this room?") {
		return nil
	}

	if err := c.api.DeleteRoom(ctx, id); err != nil {
		c.showAlert(ui.AlertDanger, "Failed to delete: "+err.Error())
		return err
	}

	c.showAlert(ui.AlertSuccess, "Room deleted")
	return c.Refresh(ctx)
}

// Create submits a trimmed, non-empty name and navigates into the new
// room after a short delay.
func (c *RoomsController) Create(ctx context.Context, name string) (*Navigation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.showAlert(ui.AlertDanger, "Enter a room name")
		return nil, nil
	}

	room, err := c.api.CreateRoom(ctx, name)
	if err != nil {
		return c.fail("Failed to create room: ", err)
	}

	c.showAlert(ui.AlertSuccess, "Room created!")
	time.Sleep(c.NavigationDelay)
	return &Navigation{Route: RouteRoom, RoomID: room.ID}, nil
}

// Logout clears the session and routes to the entry point.
func (c *RoomsController) Logout() (*Navigation, error) {
	if err := c.tokens.Remove(); err != nil {
		c.log.Error("Failed to clear session", "error", err)
	}
	return &Navigation{Route: RouteAuth}, nil
}

func (c *RoomsController) fail(prefix string, err error) (*Navigation, error) {
	if isUnauthorized(err) {
		return &Navigation{Route: RouteAuth}, err
	}
	c.showAlert(ui.AlertDanger, prefix+err.Error())
	return nil, err
}

func (c *RoomsController) showAlert(kind ui.AlertKind, message string) {
	c.screen.Alert(kind, message)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.alert = message
	if c.alertTimer != nil {
		c.alertTimer.Stop()
	}
	c.alertTimer = time.AfterFunc(c.AlertTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.alert = ""
	})
}
