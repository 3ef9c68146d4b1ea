package ui

import (
	"fmt"
	"strings"

	"cloudmeet-client/domain"

	"github.com/gookit/color"
	"github.com/samber/lo"
)

const (
	EmptyParticipants = "No participants yet"
	EmptyMessages     = "No messages yet. Start the conversation!"
)

// RenderParticipants draws the participant panel from a room detail
// snapshot.
func (s *Screen) RenderParticipants(detail domain.RoomDetail, viewer domain.User) {
	s.Header(fmt.Sprintf("%s (%d)", detail.Name, len(detail.Participants)))

	if len(detail.Participants) == 0 {
		s.println(EmptyParticipants)
		return
	}

	lines := lo.Map(detail.Participants, func(p domain.Participant, _ int) string {
		return s.participantLine(p, viewer)
	})
	for _, line := range lines {
		s.println(line)
	}
}

func (s *Screen) participantLine(p domain.Participant, viewer domain.User) string {
	var b strings.Builder
	b.WriteString("  [")
	b.WriteString(Initials(p.UserDisplayName))
	b.WriteString("] ")
	if p.IsOwner {
		b.WriteString("* ")
	}
	b.WriteString(p.UserDisplayName)
	if p.UserID == viewer.ID {
		b.WriteString(" (you)")
	}

	status := "online"
	if p.InCall() {
		status = "in call"
	}
	if s.colours {
		if p.InCall() {
			status = color.Green.Render(status)
		} else {
			status = color.Gray.Render(status)
		}
	}
	b.WriteString(" - ")
	b.WriteString(status)
	return b.String()
}

// RenderMessages draws the visible chat window. The view keeps the scroll
// position across snapshots unless it was pinned to the bottom, in which
// case it re-pins after the new snapshot lands.
func (s *Screen) RenderMessages(view *ChatView, messages []domain.Message, viewer domain.User) {
	if len(messages) == 0 {
		view.SetSnapshot(0)
		s.println(EmptyMessages)
		return
	}

	view.SetSnapshot(len(messages))
	start, end := view.Window()
	for _, msg := range messages[start:end] {
		s.println(s.messageLine(msg, viewer))
	}
}

func (s *Screen) messageLine(msg domain.Message, viewer domain.User) string {
	author := msg.UserDisplayName
	if msg.IsOwner {
		author = "* " + author
	}
	line := fmt.Sprintf("[%s] %s: %s", msg.CreatedAt.Local().Format("15:04"), author, msg.Content)
	if s.colours && msg.UserID == viewer.ID {
		line = color.New(color.FgCyan).Render(line)
	}
	return line
}

// Initials derives the avatar shorthand from a display name.
func Initials(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	parts := strings.Fields(trimmed)
	if len(parts) >= 2 {
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[1]))
	}
	runes := []rune(trimmed)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
