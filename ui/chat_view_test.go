package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatView_StartsPinnedAndFollowsNewMessages(t *testing.T) {
	req := require.New(t)
	view := NewChatView(5)

	view.SetSnapshot(3)
	start, end := view.Window()
	req.Equal(0, start)
	req.Equal(3, end)
	req.True(view.PinnedToBottom())

	// More messages than fit: a pinned view shows the tail.
	view.SetSnapshot(12)
	start, end = view.Window()
	req.Equal(7, start)
	req.Equal(12, end)
	req.True(view.PinnedToBottom())
}

func TestChatView_PreservesOffsetWhenScrolledUp(t *testing.T) {
	req := require.New(t)
	view := NewChatView(5)
	view.SetSnapshot(12)

	view.ScrollUp()
	view.ScrollUp()
	req.False(view.PinnedToBottom())
	start, _ := view.Window()
	req.Equal(5, start)

	// A new snapshot lands; the reading position does not move.
	view.SetSnapshot(20)
	start, _ = view.Window()
	req.Equal(5, start)
	req.False(view.PinnedToBottom())
}

func TestChatView_ScrollingBackDownRePins(t *testing.T) {
	req := require.New(t)
	view := NewChatView(5)
	view.SetSnapshot(10)

	view.ScrollUp()
	req.False(view.PinnedToBottom())

	view.ScrollDown()
	req.True(view.PinnedToBottom())

	view.SetSnapshot(11)
	start, end := view.Window()
	req.Equal(6, start)
	req.Equal(11, end)
}

func TestChatView_PinToBottomJumpsToTail(t *testing.T) {
	req := require.New(t)
	view := NewChatView(5)
	view.SetSnapshot(30)
	for i := 0; i < 10; i++ {
		view.ScrollUp()
	}

	view.PinToBottom()
	start, end := view.Window()
	req.Equal(25, start)
	req.Equal(30, end)
}

func TestChatView_ClampsWhenSnapshotShrinks(t *testing.T) {
	req := require.New(t)
	view := NewChatView(5)
	view.SetSnapshot(20)
	view.ScrollUp()

	view.SetSnapshot(4)
	start, end := view.Window()
	req.Equal(0, start)
	req.Equal(4, end)
}
