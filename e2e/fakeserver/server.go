// Package fakeserver is an in-process stand-in for the conference
// backend, faithful to its JSON contract: detail error bodies, 204 on
// delete, 401 on missing or invalid bearer tokens, paged lists.
// It exists only for tests; the client never ships a server.
package fakeserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"
)

type user struct {
	ID           int
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

type participant struct {
	ID        int
	UserID    int
	Status    string
	IsOwner   bool
	JoinTime  time.Time
	LeaveTime *time.Time
}

type message struct {
	ID        int
	UserID    int
	Content   string
	CreatedAt time.Time
}

type room struct {
	ID           int
	Name         string
	OwnerID      int
	IsActive     bool
	CreatedAt    time.Time
	Participants []*participant
	Messages     []*message
}

type Server struct {
	mu sync.Mutex

	usersByEmail map[string]*user
	usersByID    map[int]*user
	rooms        map[int]*room

	nextUserID        int
	nextRoomID        int
	nextParticipantID int
	nextMessageID     int

	tokenTTL time.Duration
	httpSrv  *httptest.Server
}

func New() *Server {
	s := &Server{
		usersByEmail: make(map[string]*user),
		usersByID:    make(map[int]*user),
		rooms:        make(map[int]*room),
		tokenTTL:     time.Hour,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/me", s.authed(s.handleMe))
	mux.HandleFunc("GET /rooms", s.authed(s.handleListRooms))
	mux.HandleFunc("POST /rooms", s.authed(s.handleCreateRoom))
	mux.HandleFunc("GET /rooms/{id}", s.authed(s.handleRoomDetail))
	mux.HandleFunc("DELETE /rooms/{id}", s.authed(s.handleDeleteRoom))
	mux.HandleFunc("POST /rooms/{id}/join", s.authed(s.handleJoin))
	mux.HandleFunc("POST /rooms/{id}/leave", s.authed(s.handleLeave))
	mux.HandleFunc("GET /rooms/{id}/messages", s.authed(s.handleListMessages))
	mux.HandleFunc("POST /rooms/{id}/messages", s.authed(s.handleSendMessage))

	s.httpSrv = httptest.NewServer(mux)
	return s
}

// URL is the base URL clients should be pointed at.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

func (s *Server) Close() {
	s.httpSrv.Close()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

type authedHandler func(w http.ResponseWriter, r *http.Request, viewer *user)

// authed resolves the bearer token or fails with 401.
func (s *Server) authed(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, err := validateToken(token)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		s.mu.Lock()
		viewer, found := s.usersByID[userID]
		s.mu.Unlock()
		if !found {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next(w, r, viewer)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Password    string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if len(req.Password) < 6 {
		writeDetail(w, http.StatusUnprocessableEntity, "Password must contain at least 6 characters")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[req.Email]; exists {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Hashing failed")
		return
	}

	s.nextUserID++
	u := &user{
		ID:           s.nextUserID,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.usersByEmail[u.Email] = u
	s.usersByID[u.ID] = u

	writeJSON(w, http.StatusCreated, userJSON(u))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	s.mu.Lock()
	u, found := s.usersByEmail[req.Email]
	s.mu.Unlock()

	if !found {
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if match, err := comparePassword(req.Password, u.PasswordHash); err != nil || !match {
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := generateToken(u.ID, s.tokenTTL)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Token generation failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, _ *http.Request, viewer *user) {
	writeJSON(w, http.StatusOK, userJSON(viewer))
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request, _ *user) {
	skip, limit := paging(r, 0, 20)
	onlyActive := r.URL.Query().Get("only_active") != "false"

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []map[string]any
	for id := 1; id <= s.nextRoomID; id++ {
		rm, exists := s.rooms[id]
		if !exists || (onlyActive && !rm.IsActive) {
			continue
		}
		out = append(out, roomJSON(rm))
	}

	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	if out == nil {
		out = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request, viewer *user) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "Room name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRoomID++
	rm := &room{
		ID:        s.nextRoomID,
		Name:      req.Name,
		OwnerID:   viewer.ID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.rooms[rm.ID] = rm
	writeJSON(w, http.StatusCreated, roomJSON(rm))
}

func (s *Server) handleRoomDetail(w http.ResponseWriter, r *http.Request, _ *user) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, found := s.findRoom(r)
	if !found {
		writeDetail(w, http.StatusNotFound, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, s.roomDetailJSON(rm))
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request, viewer *user) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, found := s.findRoom(r)
	if !found {
		writeDetail(w, http.StatusNotFound, "Room not found")
		return
	}
	if rm.OwnerID != viewer.ID {
		writeDetail(w, http.StatusForbidden, "Only the owner can delete the room")
		return
	}
	delete(s.rooms, rm.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request, viewer *user) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, found := s.findRoom(r)
	if !found {
		writeDetail(w, http.StatusNotFound, "Room not found")
		return
	}

	for _, p := range rm.Participants {
		if p.UserID == viewer.ID && p.LeaveTime == nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"message":        "Already in the room",
				"participant_id": p.ID,
				"room_id":        rm.ID,
			})
			return
		}
	}

	s.nextParticipantID++
	p := &participant{
		ID:       s.nextParticipantID,
		UserID:   viewer.ID,
		Status:   "in_call",
		IsOwner:  rm.OwnerID == viewer.ID,
		JoinTime: time.Now().UTC(),
	}
	rm.Participants = append(rm.Participants, p)

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Joined the room",
		"participant_id": p.ID,
		"room_id":        rm.ID,
	})
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request, viewer *user) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, found := s.findRoom(r)
	if !found {
		writeDetail(w, http.StatusNotFound, "Room not found")
		return
	}

	for _, p := range rm.Participants {
		if p.UserID == viewer.ID && p.LeaveTime == nil {
			now := time.Now().UTC()
			p.LeaveTime = &now
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Left the room"})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request, _ *user) {
	skip, limit := paging(r, 0, 50)

	s.mu.Lock()
	defer s.mu.Unlock()

	rm, found := s.findRoom(r)
	if !found {
		writeDetail(w, http.StatusNotFound, "Room not found")
		return
	}

	total := len(rm.Messages)
	msgs := rm.Messages
	if skip > len(msgs) {
		skip = len(msgs)
	}
	msgs = msgs[skip:]
	if limit < len(msgs) {
		msgs = msgs[:limit]
	}

	out := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, s.messageJSON(rm, m))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": out,
		"total":    total,
	})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request, viewer *user) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "Message content is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rm, found := s.findRoom(r)
	if !found {
		writeDetail(w, http.StatusNotFound, "Room not found")
		return
	}

	s.nextMessageID++
	m := &message{
		ID:        s.nextMessageID,
		UserID:    viewer.ID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	rm.Messages = append(rm.Messages, m)
	writeJSON(w, http.StatusCreated, s.messageJSON(rm, m))
}

// findRoom resolves the {id} path value. Callers must hold s.mu.
func (s *Server) findRoom(r *http.Request) (*room, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return nil, false
	}
	rm, found := s.rooms[id]
	return rm, found
}

func paging(r *http.Request, defaultSkip, defaultLimit int) (int, int) {
	skip, limit := defaultSkip, defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return skip, limit
}

func userJSON(u *user) map[string]any {
	return map[string]any{
		"id":           u.ID,
		"email":        u.Email,
		"display_name": u.DisplayName,
		"is_active":    true,
		"created_at":   u.CreatedAt,
	}
}

func roomJSON(rm *room) map[string]any {
	count := 0
	for _, p := range rm.Participants {
		if p.LeaveTime == nil {
			count++
		}
	}
	return map[string]any{
		"id":                 rm.ID,
		"name":               rm.Name,
		"owner_id":           rm.OwnerID,
		"is_active":          rm.IsActive,
		"participants_count": count,
		"created_at":         rm.CreatedAt,
	}
}

func (s *Server) roomDetailJSON(rm *room) map[string]any {
	out := roomJSON(rm)
	participants := []map[string]any{}
	for _, p := range rm.Participants {
		if p.LeaveTime != nil {
			continue
		}
		participants = append(participants, map[string]any{
			"id":                p.ID,
			"user_id":           p.UserID,
			"user_display_name": s.displayName(p.UserID),
			"status":            p.Status,
			"is_owner":          p.IsOwner,
			"join_time":         p.JoinTime,
		})
	}
	out["participants"] = participants
	return out
}

func (s *Server) messageJSON(rm *room, m *message) map[string]any {
	return map[string]any{
		"id":                m.ID,
		"room_id":           rm.ID,
		"user_id":           m.UserID,
		"user_display_name": s.displayName(m.UserID),
		"is_owner":          rm.OwnerID == m.UserID,
		"content":           m.Content,
		"created_at":        m.CreatedAt,
	}
}

func (s *Server) displayName(userID int) string {
	if u, found := s.usersByID[userID]; found {
		return u.DisplayName
	}
	return "unknown"
}
