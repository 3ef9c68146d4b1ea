package controllers

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"cloudmeet-client/auth"
	"cloudmeet-client/domain"
	"cloudmeet-client/errors"
	"cloudmeet-client/mocks"
	"cloudmeet-client/ui"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthController(t *testing.T) (*AuthController, *mocks.MockIConferenceAPI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	apiMock := mocks.NewMockIConferenceAPI(ctrl)
	var buf bytes.Buffer
	c := NewAuthController(apiMock, ui.NewScreen(&buf, false), slog.Default())
	c.NavigationDelay = 0
	c.RegisterSwitchDelay = 0
	return c, apiMock, &buf
}

func TestAuthController_TabToggleIsLocal(t *testing.T) {
	req := require.New(t)
	c, _, _ := newAuthController(t)
	// No expectations registered: any API call here fails the test.

	req.Equal(ModeLogin, c.Mode())
	c.ShowRegister()
	req.Equal(ModeRegister, c.Mode())
	c.ShowLogin()
	req.Equal(ModeLogin, c.Mode())
}

func TestAuthController_LoginSuccessNavigatesToRooms(t *testing.T) {
	req := require.New(t)
	c, apiMock, _ := newAuthController(t)

	apiMock.EXPECT().
		Login(gomock.Any(), "alice@example.com", "secret123").
		Return(nil).
		Times(1)

	nav, err := c.SubmitLogin(context.Background(), "alice@example.com", "secret123")

	req.NoError(err)
	req.NotNil(nav)
	req.Equal(RouteRooms, nav.Route)
	req.False(c.Busy())
}

func TestAuthController_LoginFailureStaysOnPage(t *testing.T) {
	req := require.New(t)
	c, apiMock, buf := newAuthController(t)

	apiMock.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.NewRequestError(500, "backend down")).
		Times(1)

	nav, err := c.SubmitLogin(context.Background(), "alice@example.com", "secret123")

	req.Error(err)
	req.Nil(nav)
	req.Contains(buf.String(), "backend down")
	req.False(c.Busy())
}

func TestAuthController_LoginRejectionShowsCredentialsMessage(t *testing.T) {
	req := require.New(t)
	c, apiMock, buf := newAuthController(t)

	apiMock.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.ErrUnauthorized).
		Times(1)

	nav, _ := c.SubmitLogin(context.Background(), "alice@example.com", "wrong")

	req.Nil(nav)
	req.Contains(buf.String(), "Invalid email or password")
}

func TestAuthController_RegisterShortPasswordNeverHitsNetwork(t *testing.T) {
	req := require.New(t)
	c, _, buf := newAuthController(t)
	// Register must NOT be called for a password under 6 characters.

	err := c.SubmitRegister(context.Background(), auth.RegisterForm{
		Email:           "alice@example.com",
		DisplayName:     "Alice",
		Password:        "abc",
		ConfirmPassword: "abc",
	})

	req.ErrorIs(err, errors.ErrPasswordTooShort)
	req.Contains(buf.String(), errors.ErrPasswordTooShort.Error())
}

func TestAuthController_RegisterMismatchNeverHitsNetwork(t *testing.T) {
	req := require.New(t)
	c, _, _ := newAuthController(t)

	err := c.SubmitRegister(context.Background(), auth.RegisterForm{
		Email:           "alice@example.com",
		DisplayName:     "Alice",
		Password:        "secret123",
		ConfirmPassword: "secret124",
	})

	req.ErrorIs(err, errors.ErrPasswordMismatch)
}

func TestAuthController_RegisterSuccessSwitchesToLoginWithEmail(t *testing.T) {
	req := require.New(t)
	c, apiMock, _ := newAuthController(t)
	c.ShowRegister()

	apiMock.EXPECT().
		Register(gomock.Any(), "alice@example.com", "Alice", "secret123").
		Return(domain.User{ID: 1}, nil).
		Times(1)

	err := c.SubmitRegister(context.Background(), auth.RegisterForm{
		Email:           "alice@example.com",
		DisplayName:     "Alice",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	req.NoError(err)
	req.Equal(ModeLogin, c.Mode())
	req.Equal("alice@example.com", c.LoginEmail())
}

func TestAuthController_RegisterFailureKeepsRegisterMode(t *testing.T) {
	req := require.New(t)
	c, apiMock, buf := newAuthController(t)
	c.ShowRegister()

	apiMock.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.User{}, errors.NewRequestError(400, "Email already registered")).
		Times(1)

	err := c.SubmitRegister(context.Background(), auth.RegisterForm{
		Email:           "alice@example.com",
		DisplayName:     "Alice",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	req.Error(err)
	req.Equal(ModeRegister, c.Mode())
	req.Contains(buf.String(), "Email already registered")
	req.False(c.Busy())
}
