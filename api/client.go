//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_conference_api.go -package=mocks

// Package api wraps the conference backend's HTTP endpoints behind typed
// calls. One Client is built per session; there is no package-level
// singleton.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cloudmeet-client/domain"
	"cloudmeet-client/errors"
	"cloudmeet-client/session"

	"github.com/google/uuid"
)

// IConferenceAPI is the full surface the page controllers drive.
type IConferenceAPI interface {
	Register(ctx context.Context, email, displayName, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) error
	Me(ctx context.Context) (domain.User, error)
	Rooms(ctx context.Context, skip, limit int, onlyActive bool) ([]domain.Room, error)
	Room(ctx context.Context, id domain.RoomID) (domain.RoomDetail, error)
	CreateRoom(ctx context.Context, name string) (domain.Room, error)
	JoinRoom(ctx context.Context, id domain.RoomID) error
	LeaveRoom(ctx context.Context, id domain.RoomID) error
	DeleteRoom(ctx context.Context, id domain.RoomID) error
	Messages(ctx context.Context, roomID domain.RoomID, skip, limit int) (domain.MessageList, error)
	SendMessage(ctx context.Context, roomID domain.RoomID, content string) (domain.Message, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  session.ITokenStore
	log     *slog.Logger
}

func NewClient(baseURL string, tokens session.ITokenStore, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// WithHTTPClient swaps the underlying HTTP client, keeping everything
// else. Used to inject instrumented transports in tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// request performs one call against the backend and normalizes the outcome:
//   - 204 returns an empty body and no error
//   - 401 removes the stored token and returns errors.ErrUnauthorized,
//     letting the calling page decide where to navigate
//   - any other non-2xx returns a *errors.RequestError carrying the body's
//     detail field, or a fixed fallback when the body is unparseable
//   - a transport failure is wrapped and returned as-is
func (c *Client) request(ctx context.Context, method, path string, body any, requiresAuth bool) ([]byte, error) {
	var payload io.Reader
	if body != nil && mutating(method) {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	if requiresAuth {
		token, err := c.tokens.Get()
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("conference backend unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is dead server-side. Clear it here so every page
		// observes the same logged-out state on its next check.
		if err := c.tokens.Remove(); err != nil {
			c.log.Error("failed to clear rejected token", "error", err)
		}
		return nil, errors.ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure errorBody
		_ = json.Unmarshal(raw, &failure)
		return nil, errors.NewRequestError(resp.StatusCode, failure.Detail)
	}

	return raw, nil
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

func decode[T any](raw []byte) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, email, displayName, password string) (domain.User, error) {
	raw, err := c.request(ctx, http.MethodPost, "/auth/register", registerRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
	}, false)
	if err != nil {
		return domain.User{}, err
	}
	return decode[domain.User](raw)
}

// Login authenticates and persists the returned access token, so every
// subsequent authenticated call carries it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	raw, err := c.request(ctx, http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, false)
	if err != nil {
		return err
	}
	token, err := decode[tokenResponse](raw)
	if err != nil {
		return err
	}
	if token.AccessToken == "" {
		return fmt.Errorf("login response missing access_token")
	}
	return c.tokens.Set(token.AccessToken)
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	raw, err := c.request(ctx, http.MethodGet, "/auth/me", nil, true)
	if err != nil {
		return domain.User{}, err
	}
	return decode[domain.User](raw)
}

func (c *Client) Rooms(ctx context.Context, skip, limit int, onlyActive bool) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("only_active", strconv.FormatBool(onlyActive))

	raw, err := c.request(ctx, http.MethodGet, "/rooms?"+query.Encode(), nil, true)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.Room](raw)
}

func (c *Client) Room(ctx context.Context, id domain.RoomID) (domain.RoomDetail, error) {
	raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d", id), nil, true)
	if err != nil {
		return domain.RoomDetail{}, err
	}
	return decode[domain.RoomDetail](raw)
}

func (c *Client) CreateRoom(ctx context.Context, name string) (domain.Room, error) {
	raw, err := c.request(ctx, http.MethodPost, "/rooms", createRoomRequest{Name: name}, true)
	if err != nil {
		return domain.Room{}, err
	}
	return decode[domain.Room](raw)
}

func (c *Client) JoinRoom(ctx context.Context, id domain.RoomID) error {
	_, err := c.request(ctx, http.MethodPost, fmt.Sprintf("/rooms/%d/join", id), nil, true)
	return err
}

func (c *Client) LeaveRoom(ctx context.Context, id domain.RoomID) error {
	_, err := c.request(ctx, http.MethodPost, fmt.Sprintf("/rooms/%d/leave", id), nil, true)
	return err
}

func (c *Client) DeleteRoom(ctx context.Context, id domain.RoomID) error {
	_, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, true)
	return err
}

func (c *Client) Messages(ctx context.Context, roomID domain.RoomID, skip, limit int) (domain.MessageList, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d/messages?%s", roomID, query.Encode()), nil, true)
	if err != nil {
		return domain.MessageList{}, err
	}
	return decode[domain.MessageList](raw)
}

func (c *Client) SendMessage(ctx context.Context, roomID domain.RoomID, content string) (domain.Message, error) {
	raw, err := c.request(ctx, http.MethodPost, fmt.Sprintf("/rooms/%d/messages", roomID), sendMessageRequest{Content: content}, true)
	if err != nil {
		return domain.Message{}, err
	}
	return decode[domain.Message](raw)
}
