package controllers

import (
	"bytes"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"cloudmeet-client/domain"
	"cloudmeet-client/errors"
	"cloudmeet-client/mocks"
	"cloudmeet-client/ui"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomFixture struct {
	ctrl   *RoomController
	api    *mocks.MockIConferenceAPI
	tokens *mocks.MockITokenStore
	buf    *bytes.Buffer
}

func newRoomFixture(t *testing.T, roomID domain.RoomID) *roomFixture {
	t.Helper()
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	f := &roomFixture{
		api:    mocks.NewMockIConferenceAPI(mockCtrl),
		tokens: mocks.NewMockITokenStore(mockCtrl),
		buf:    &bytes.Buffer{},
	}
	f.ctrl = NewRoomController(f.api, f.tokens, ui.NewScreen(f.buf, false), slog.Default(), roomID)
	// Pollers are effectively disabled unless a test shortens these.
	f.ctrl.RoomPollInterval = time.Hour
	f.ctrl.MessagePollInterval = time.Hour
	return f
}

func (f *roomFixture) expectEntry() {
	f.tokens.EXPECT().IsAuthenticated().Return(true)
	f.api.EXPECT().Me(gomock.Any()).Return(domain.User{ID: 1, DisplayName: "Alice"}, nil)
	f.api.EXPECT().JoinRoom(gomock.Any(), domain.RoomID(3)).Return(nil)
	f.api.EXPECT().Room(gomock.Any(), domain.RoomID(3)).
		Return(domain.RoomDetail{Room: domain.Room{ID: 3, Name: "standup"}}, nil)
	f.api.EXPECT().Messages(gomock.Any(), domain.RoomID(3), 0, 50).
		Return(domain.MessageList{}, nil)
}

func TestRoomController_EnterWithoutSessionRoutesToAuth(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)

	f.tokens.EXPECT().IsAuthenticated().Return(false)

	nav, err := f.ctrl.Enter(context.Background())

	req.NoError(err)
	req.Equal(RouteAuth, nav.Route)
}

func TestRoomController_EnterWithoutRoomIDRoutesToRooms(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 0)

	f.tokens.EXPECT().IsAuthenticated().Return(true)

	nav, err := f.ctrl.Enter(context.Background())

	req.ErrorIs(err, errors.ErrMissingRoomID)
	req.Equal(RouteRooms, nav.Route)
}

func TestRoomController_EntryFailureRoutesBackToRooms(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)

	f.tokens.EXPECT().IsAuthenticated().Return(true)
	f.api.EXPECT().Me(gomock.Any()).Return(domain.User{ID: 1}, nil)
	f.api.EXPECT().JoinRoom(gomock.Any(), domain.RoomID(3)).
		Return(errors.NewRequestError(404, "Room not found"))

	nav, err := f.ctrl.Enter(context.Background())

	req.Error(err)
	req.Equal(RouteRooms, nav.Route)
	req.Contains(f.buf.String(), "Room not found")
}

func TestRoomController_EnterLoadsSnapshotsAndRenders(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.expectEntry()
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).Return(nil)

	nav, err := f.ctrl.Enter(context.Background())

	req.NoError(err)
	req.Nil(nav)
	req.Equal("standup", f.ctrl.Detail().Name)
	req.Contains(f.buf.String(), ui.EmptyMessages)

	_, _ = f.ctrl.Leave(context.Background())
}

func TestRoomController_PollersKeepRefreshingUntilLeave(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.ctrl.MessagePollInterval = 10 * time.Millisecond
	f.ctrl.RoomPollInterval = 15 * time.Millisecond

	var messagePolls, roomPolls atomic.Int32

	f.tokens.EXPECT().IsAuthenticated().Return(true)
	f.api.EXPECT().Me(gomock.Any()).Return(domain.User{ID: 1}, nil)
	f.api.EXPECT().JoinRoom(gomock.Any(), domain.RoomID(3)).Return(nil)
	f.api.EXPECT().Room(gomock.Any(), domain.RoomID(3)).
		DoAndReturn(func(context.Context, domain.RoomID) (domain.RoomDetail, error) {
			roomPolls.Add(1)
			return domain.RoomDetail{Room: domain.Room{ID: 3, Name: "standup"}}, nil
		}).
		AnyTimes()
	f.api.EXPECT().Messages(gomock.Any(), domain.RoomID(3), 0, 50).
		DoAndReturn(func(context.Context, domain.RoomID, int, int) (domain.MessageList, error) {
			messagePolls.Add(1)
			return domain.MessageList{}, nil
		}).
		AnyTimes()
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).Return(nil)

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	require.Eventually(t, func() bool {
		// More than the single entry fetch means the pollers are ticking.
		return messagePolls.Load() >= 3 && roomPolls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	nav, err := f.ctrl.Leave(context.Background())
	req.NoError(err)
	req.Equal(RouteRooms, nav.Route)

	// Both pollers must be stopped: no further ticks after leaving.
	settled := messagePolls.Load()
	time.Sleep(60 * time.Millisecond)
	req.Equal(settled, messagePolls.Load())
}

func TestRoomController_FailedTickIsSkippedNotFatal(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.ctrl.MessagePollInterval = 10 * time.Millisecond

	var polls atomic.Int32

	f.tokens.EXPECT().IsAuthenticated().Return(true)
	f.api.EXPECT().Me(gomock.Any()).Return(domain.User{ID: 1}, nil)
	f.api.EXPECT().JoinRoom(gomock.Any(), domain.RoomID(3)).Return(nil)
	f.api.EXPECT().Room(gomock.Any(), domain.RoomID(3)).
		Return(domain.RoomDetail{Room: domain.Room{ID: 3}}, nil).
		AnyTimes()

	first := f.api.EXPECT().Messages(gomock.Any(), domain.RoomID(3), 0, 50).
		Return(domain.MessageList{}, nil)
	f.api.EXPECT().Messages(gomock.Any(), domain.RoomID(3), 0, 50).
		DoAndReturn(func(context.Context, domain.RoomID, int, int) (domain.MessageList, error) {
			polls.Add(1)
			return domain.MessageList{}, errors.NewRequestError(500, "flaky")
		}).
		After(first).
		AnyTimes()
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).Return(nil)

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	require.Eventually(t, func() bool {
		return polls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	_, _ = f.ctrl.Leave(context.Background())
}

func TestRoomController_SendEmptyMessageIssuesNoRequest(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	// SendMessage must not be called for whitespace-only input.

	req.ErrorIs(f.ctrl.Send(context.Background(), "   \t  "), errors.ErrEmptyMessage)
}

func TestRoomController_SendRefreshesImmediately(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.expectEntry()

	sent := domain.Message{ID: 42, UserID: 1, Content: "hello"}
	gomock.InOrder(
		f.api.EXPECT().SendMessage(gomock.Any(), domain.RoomID(3), "hello").Return(sent, nil),
		// The refresh happens right after the send, not on the next tick
		// (intervals are an hour in this fixture).
		f.api.EXPECT().Messages(gomock.Any(), domain.RoomID(3), 0, 50).
			Return(domain.MessageList{Messages: []domain.Message{sent}, Total: 1}, nil),
	)
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).Return(nil)

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	req.NoError(f.ctrl.Send(context.Background(), "  hello  "))
	req.Len(f.ctrl.Messages(), 1)
	req.True(f.ctrl.InputFocused())
	req.True(f.ctrl.Chat().PinnedToBottom())

	_, _ = f.ctrl.Leave(context.Background())
}

func TestRoomController_SendFailureRestoresFocus(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)

	f.api.EXPECT().SendMessage(gomock.Any(), domain.RoomID(3), "hello").
		Return(domain.Message{}, errors.NewRequestError(500, "backend down"))

	req.Error(f.ctrl.Send(context.Background(), "hello"))
	req.True(f.ctrl.InputFocused())
	req.Contains(f.buf.String(), "backend down")
}

func TestRoomController_LeaveFailureNeverBlocksNavigation(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.expectEntry()
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).
		Return(errors.NewRequestError(500, "backend down"))

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	nav, err := f.ctrl.Leave(context.Background())
	req.NoError(err)
	req.Equal(RouteRooms, nav.Route)
}

func TestRoomController_LogoutStopsPollingAndClearsSession(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.expectEntry()
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).Return(nil)
	f.tokens.EXPECT().Remove().Return(nil)

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	nav, err := f.ctrl.Logout(context.Background())
	req.NoError(err)
	req.Equal(RouteAuth, nav.Route)
}

func TestRoomController_TeardownFiresLeaveWithoutWaiting(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.expectEntry()

	left := make(chan struct{})
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).
		DoAndReturn(func(context.Context, domain.RoomID) error {
			close(left)
			return nil
		})

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	f.ctrl.Teardown()

	select {
	case <-left:
	case <-time.After(time.Second):
		req.Fail("leave notification was never sent")
	}
}

func TestRoomController_StopPollingIsIdempotent(t *testing.T) {
	req := require.New(t)
	f := newRoomFixture(t, 3)
	f.expectEntry()
	// Leave issues one notification per explicit call; the cancellation
	// underneath must still happen exactly once.
	f.api.EXPECT().LeaveRoom(gomock.Any(), domain.RoomID(3)).Return(nil).Times(2)

	_, err := f.ctrl.Enter(context.Background())
	req.NoError(err)

	_, _ = f.ctrl.Leave(context.Background())
	req.NotPanics(func() {
		_, _ = f.ctrl.Leave(context.Background())
	})
}
