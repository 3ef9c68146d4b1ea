package ui

// ChatView models the scroll state of the chat section. Snapshots fully
// replace the message list, so only the offset and the pinned flag
// survive a re-render: a view pinned to the bottom follows new messages,
// anything else keeps its place.
type ChatView struct {
	height int
	offset int
	pinned bool
	total  int
}

// NewChatView starts pinned to the bottom, like a freshly opened chat.
func NewChatView(height int) *ChatView {
	if height < 1 {
		height = 1
	}
	return &ChatView{height: height, pinned: true}
}

// SetSnapshot installs the size of the latest snapshot and applies the
// preserve-or-repin rule.
func (v *ChatView) SetSnapshot(total int) {
	v.total = total
	if v.pinned {
		v.offset = v.maxOffset()
		return
	}
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
}

// Window returns the half-open range of messages currently visible.
func (v *ChatView) Window() (start, end int) {
	start = v.offset
	end = start + v.height
	if end > v.total {
		end = v.total
	}
	return start, end
}

func (v *ChatView) ScrollUp() {
	if v.offset > 0 {
		v.offset--
	}
	v.pinned = v.offset == v.maxOffset()
}

func (v *ChatView) ScrollDown() {
	if v.offset < v.maxOffset() {
		v.offset++
	}
	v.pinned = v.offset == v.maxOffset()
}

func (v *ChatView) PinToBottom() {
	v.offset = v.maxOffset()
	v.pinned = true
}

func (v *ChatView) PinnedToBottom() bool {
	return v.pinned
}

func (v *ChatView) maxOffset() int {
	if v.total <= v.height {
		return 0
	}
	return v.total - v.height
}
