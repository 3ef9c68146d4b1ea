package controllers

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cloudmeet-client/api"
	"cloudmeet-client/domain"
	"cloudmeet-client/errors"
	"cloudmeet-client/runtime/workers"
	"cloudmeet-client/session"
	"cloudmeet-client/ui"
)

// RoomController handles one conference room page. It runs two
// independent pollers for the lifetime of the page: room detail
// (participants, name) and messages. Each poller re-renders only its own
// screen section; the last snapshot received wins for that section, with
// no ordering guarantee between the two.
type RoomController struct {
	api    api.IConferenceAPI
	tokens session.ITokenStore
	screen *ui.Screen
	log    *slog.Logger

	roomID domain.RoomID
	viewer domain.User
	chat   *ui.ChatView

	// mu guards the latest snapshots and serializes renders of the two
	// racing pollers.
	mu       sync.Mutex
	detail   domain.RoomDetail
	messages []domain.Message

	pollers  *workers.Supervisor
	stopOnce sync.Once

	sendBusy     bool
	inputFocused bool

	RoomPollInterval    time.Duration
	MessagePollInterval time.Duration
	MessagePageLimit    int
}

func NewRoomController(client api.IConferenceAPI, tokens session.ITokenStore, screen *ui.Screen, log *slog.Logger, roomID domain.RoomID) *RoomController {
	return &RoomController{
		api:                 client,
		tokens:              tokens,
		screen:              screen,
		log:                 log,
		roomID:              roomID,
		chat:                ui.NewChatView(20),
		inputFocused:        true,
		RoomPollInterval:    5 * time.Second,
		MessagePollInterval: 1500 * time.Millisecond,
		MessagePageLimit:    50,
	}
}

func (c *RoomController) Viewer() domain.User { return c.viewer }
func (c *RoomController) Chat() *ui.ChatView  { return c.chat }
func (c *RoomController) InputFocused() bool  { return c.inputFocused }

// Detail returns the latest room snapshot.
func (c *RoomController) Detail() domain.RoomDetail {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detail
}

// Messages returns the latest chat snapshot.
func (c *RoomController) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages
}

// Enter joins the room, loads the initial snapshots, and starts both
// pollers. A missing session or room id routes away without touching the
// network; any failure during entry routes back to the room list.
func (c *RoomController) Enter(ctx context.Context) (*Navigation, error) {
	if !c.tokens.IsAuthenticated() {
		return &Navigation{Route: RouteAuth}, nil
	}
	if c.roomID == 0 {
		return &Navigation{Route: RouteRooms}, errors.ErrMissingRoomID
	}

	viewer, err := c.api.Me(ctx)
	if err != nil {
		return c.entryFailed(err)
	}
	c.viewer = viewer

	if err := c.api.JoinRoom(ctx, c.roomID); err != nil {
		return c.entryFailed(err)
	}
	if err := c.refreshRoom(ctx); err != nil {
		return c.entryFailed(err)
	}
	if err := c.refreshMessages(ctx); err != nil {
		return c.entryFailed(err)
	}

	c.pollers = workers.NewSupervisor(c.log).Add(
		workers.NewPoller("room-detail", c.RoomPollInterval, c.refreshRoom, c.log),
		workers.NewPoller("messages", c.MessagePollInterval, c.refreshMessages, c.log),
	)
	c.pollers.Start(ctx)

	return nil, nil
}

func (c *RoomController) entryFailed(err error) (*Navigation, error) {
	if isUnauthorized(err) {
		return &Navigation{Route: RouteAuth}, err
	}
	c.screen.Alert(ui.AlertDanger, "Failed to enter the room: "+err.Error())
	return &Navigation{Route: RouteRooms}, err
}

// refreshRoom is one poll tick of the participants section.
func (c *RoomController) refreshRoom(ctx context.Context) error {
	detail, err := c.api.Room(ctx, c.roomID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.detail = detail
	c.screen.Clear()
	c.screen.RenderParticipants(detail, c.viewer)
	return nil
}

// refreshMessages is one poll tick of the chat section.
func (c *RoomController) refreshMessages(ctx context.Context) error {
	list, err := c.api.Messages(ctx, c.roomID, 0, c.MessagePageLimit)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = list.Messages
	c.screen.Clear()
	c.screen.RenderMessages(c.chat, list.Messages, c.viewer)
	return nil
}

// Send posts a message. Empty or whitespace-only input is rejected
// before any request. On success the chat refreshes immediately instead
// of waiting for the next poll tick. Input focus is restored on every
// path.
func (c *RoomController) Send(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.ErrEmptyMessage
	}
	if c.sendBusy {
		return nil
	}

	c.sendBusy = true
	c.inputFocused = false
	defer func() {
		c.sendBusy = false
		c.inputFocused = true
	}()

	if _, err := c.api.SendMessage(ctx, c.roomID, content); err != nil {
		c.screen.Alert(ui.AlertDanger, "Failed to send: "+err.Error())
		return err
	}

	c.chat.PinToBottom()
	if err := c.refreshMessages(ctx); err != nil {
		c.log.Warn("Immediate refresh after send failed", "error", err)
	}
	return nil
}

// Leave stops both pollers, notifies the backend best-effort, and routes
// back to the room list. A failed leave call never blocks navigation.
func (c *RoomController) Leave(ctx context.Context) (*Navigation, error) {
	c.stopPolling()
	if err := c.api.LeaveRoom(ctx, c.roomID); err != nil {
		c.log.Error("Failed to leave room", "room_id", c.roomID, "error", err)
	}
	return &Navigation{Route: RouteRooms}, nil
}

// Logout stops the pollers, leaves best-effort, and clears the session.
func (c *RoomController) Logout(ctx context.Context) (*Navigation, error) {
	c.stopPolling()
	if err := c.api.LeaveRoom(ctx, c.roomID); err != nil {
		c.log.Error("Failed to leave room on logout", "room_id", c.roomID, "error", err)
	}
	if err := c.tokens.Remove(); err != nil {
		c.log.Error("Failed to clear session", "error", err)
	}
	return &Navigation{Route: RouteAuth}, nil
}

// Teardown is the page-close path: both pollers are cancelled and the
// leave notification is fired without waiting for a response.
func (c *RoomController) Teardown() {
	c.stopPolling()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := c.api.LeaveRoom(ctx, c.roomID); err != nil {
			c.log.Debug("Leave notification failed during teardown", "error", err)
		}
	}()
}

// stopPolling cancels both pollers exactly once and waits for them to
// exit, so no interval leaks across page transitions.
func (c *RoomController) stopPolling() {
	c.stopOnce.Do(func() {
		if c.pollers != nil {
			c.pollers.Stop()
		}
	})
}
