package controllers

import (
	"context"
	"log/slog"
	"time"

	"cloudmeet-client/api"
	"cloudmeet-client/auth"
	"cloudmeet-client/ui"
)

// Mode selects which of the two mutually exclusive auth tabs is active.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// AuthController handles the login/register page. Switching tabs is a
// purely local operation; no network call happens until a form is
// submitted.
type AuthController struct {
	api    api.IConferenceAPI
	screen *ui.Screen
	log    *slog.Logger

	mode Mode
	busy bool
	// loginEmail is pre-filled after a successful registration.
	loginEmail string

	// NavigationDelay is the pause between a successful login and the
	// move to the room list. RegisterSwitchDelay is the pause before the
	// register tab flips back to login.
	NavigationDelay     time.Duration
	RegisterSwitchDelay time.Duration
}

func NewAuthController(client api.IConferenceAPI, screen *ui.Screen, log *slog.Logger) *AuthController {
	return &AuthController{
		api:                 client,
		screen:              screen,
		log:                 log,
		mode:                ModeLogin,
		NavigationDelay:     500 * time.Millisecond,
		RegisterSwitchDelay: 1500 * time.Millisecond,
	}
}

func (c *AuthController) Mode() Mode         { return c.mode }
func (c *AuthController) Busy() bool         { return c.busy }
func (c *AuthController) LoginEmail() string { return c.loginEmail }

func (c *AuthController) ShowLogin() {
	c.mode = ModeLogin
}

func (c *AuthController) ShowRegister() {
	c.mode = ModeRegister
}

// SubmitLogin authenticates and, on success, navigates to the room list
// after a short delay. On failure the error is shown inline and the form
// is left untouched for another attempt.
func (c *AuthController) SubmitLogin(ctx context.Context, email, password string) (*Navigation, error) {
	if c.busy {
		return nil, nil
	}
	c.busy = true
	defer func() { c.busy = false }()

	if err := c.api.Login(ctx, email, password); err != nil {
		message := err.Error()
		if isUnauthorized(err) {
			// There is no session to lose yet; a 401 here just means bad
			// credentials.
			message = "Invalid email or password"
		}
		c.screen.Alert(ui.AlertDanger, message)
		return nil, err
	}

	c.screen.Alert(ui.AlertSuccess, "Logged in! Redirecting...")
	time.Sleep(c.NavigationDelay)
	return &Navigation{Route: RouteRooms}, nil
}

// SubmitRegister validates locally first; an invalid form never reaches
// the network. On success the controller flips back to the login tab
// with the email pre-filled.
func (c *AuthController) SubmitRegister(ctx context.Context, form auth.RegisterForm) error {
	if c.busy {
		return nil
	}

	if err := auth.ValidateRegister(form); err != nil {
		c.screen.Alert(ui.AlertDanger, err.Error())
		return err
	}

	c.busy = true
	defer func() { c.busy = false }()

	if _, err := c.api.Register(ctx, form.Email, form.DisplayName, form.Password); err != nil {
		c.screen.Alert(ui.AlertDanger, err.Error())
		return err
	}

	c.screen.Alert(ui.AlertSuccess, "Registration successful! Now log in.")
	time.Sleep(c.RegisterSwitchDelay)
	c.mode = ModeLogin
	c.loginEmail = form.Email
	return nil
}
