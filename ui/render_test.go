package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloudmeet-client/domain"

	"github.com/stretchr/testify/require"
)

func newTestScreen() (*Screen, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewScreen(&buf, false), &buf
}

func TestRenderRooms_EmptyState(t *testing.T) {
	screen, buf := newTestScreen()
	screen.RenderRooms(nil, domain.User{ID: 1})
	require.Contains(t, buf.String(), EmptyRooms)
}

func TestRenderRooms_DeleteOnlyForOwner(t *testing.T) {
	req := require.New(t)
	screen, buf := newTestScreen()
	viewer := domain.User{ID: 1, DisplayName: "Alice"}
	rooms := []domain.Room{
		{ID: 10, Name: "mine", OwnerID: 1, ParticipantsCount: 2, CreatedAt: time.Now()},
		{ID: 11, Name: "theirs", OwnerID: 2, ParticipantsCount: 0, CreatedAt: time.Now()},
	}

	screen.RenderRooms(rooms, viewer)

	lines := strings.Split(buf.String(), "\n")
	var mine, theirs string
	for _, line := range lines {
		if strings.Contains(line, "mine") {
			mine = line
		}
		if strings.Contains(line, "theirs") {
			theirs = line
		}
	}
	req.Contains(mine, "delete")
	req.NotContains(theirs, "delete")
}

func TestRenderParticipants_EmptyState(t *testing.T) {
	screen, buf := newTestScreen()
	detail := domain.RoomDetail{Room: domain.Room{Name: "standup"}}

	screen.RenderParticipants(detail, domain.User{ID: 1})

	require.Contains(t, buf.String(), EmptyParticipants)
	require.Contains(t, buf.String(), "standup (0)")
}

func TestRenderParticipants_MarksOwnerAndViewer(t *testing.T) {
	req := require.New(t)
	screen, buf := newTestScreen()
	detail := domain.RoomDetail{
		Room: domain.Room{Name: "standup"},
		Participants: []domain.Participant{
			{UserID: 1, UserDisplayName: "Alice Smith", IsOwner: true, Status: domain.StatusInCall},
			{UserID: 2, UserDisplayName: "Bob", Status: domain.StatusOnline},
		},
	}

	screen.RenderParticipants(detail, domain.User{ID: 1})

	out := buf.String()
	req.Contains(out, "* Alice Smith (you)")
	req.Contains(out, "in call")
	req.Contains(out, "Bob")
	req.Contains(out, "online")
	req.Contains(out, "[AS]")
}

func TestRenderMessages_EmptyState(t *testing.T) {
	screen, buf := newTestScreen()
	screen.RenderMessages(NewChatView(10), nil, domain.User{ID: 1})
	require.Contains(t, buf.String(), EmptyMessages)
}

func TestRenderMessages_ShowsWindowContent(t *testing.T) {
	req := require.New(t)
	screen, buf := newTestScreen()
	at := time.Date(2026, 3, 14, 15, 4, 0, 0, time.Local)
	messages := []domain.Message{
		{UserID: 2, UserDisplayName: "Bob", IsOwner: true, Content: "hello", CreatedAt: at},
		{UserID: 1, UserDisplayName: "Alice", Content: "hi Bob", CreatedAt: at.Add(time.Minute)},
	}

	screen.RenderMessages(NewChatView(10), messages, domain.User{ID: 1})

	out := buf.String()
	req.Contains(out, "[15:04] * Bob: hello")
	req.Contains(out, "[15:05] Alice: hi Bob")
}

func TestInitials(t *testing.T) {
	req := require.New(t)
	req.Equal("AS", Initials("Alice Smith"))
	req.Equal("BO", Initials("bob"))
	req.Equal("?", Initials("   "))
	req.Equal("X", Initials("x"))
}
