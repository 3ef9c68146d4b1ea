package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"cloudmeet-client/api"
	"cloudmeet-client/auth"
	"cloudmeet-client/controllers"
	"cloudmeet-client/domain"
	"cloudmeet-client/session"
	"cloudmeet-client/ui"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, drives the page loop, and centralizes
// error reporting so every defer executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Session storage (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.TokenDBPath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("session storage opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing session storage...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Client wiring: one API client per session, one screen
	tokens := session.NewTokenStore(db)
	client := api.NewClient(config.APIBaseURL, tokens, config.HTTPTimeout, log)
	screen := ui.NewScreen(os.Stdout, config.Colours)

	app := &app{
		config: config,
		log:    log,
		screen: screen,
		tokens: tokens,
		client: client,
		input:  bufio.NewScanner(os.Stdin),
	}

	// 5. Page loop
	return app.loop(ctx)
}

type app struct {
	config Config
	log    *slog.Logger
	screen *ui.Screen
	tokens session.ITokenStore
	client *api.Client
	input  *bufio.Scanner
}

// loop dispatches between pages. Controllers hand navigation back as an
// explicit value; the loop is the only place that moves between pages.
func (a *app) loop(ctx context.Context) error {
	nav := controllers.Navigation{Route: controllers.RouteAuth}
	if a.tokens.IsAuthenticated() {
		nav = controllers.Navigation{Route: controllers.RouteRooms}
	}

	for ctx.Err() == nil {
		switch nav.Route {
		case controllers.RouteAuth:
			nav = a.authPage(ctx)
		case controllers.RouteRooms:
			nav = a.roomsPage(ctx)
		case controllers.RouteRoom:
			nav = a.roomPage(ctx, nav.RoomID)
		case controllers.RouteQuit:
			return nil
		default:
			return fmt.Errorf("unknown route %q", nav.Route)
		}
	}
	return nil
}

// readLine blocks on the next input line. A closed stdin quits the app.
func (a *app) readLine() (string, bool) {
	fmt.Print("> ")
	if !a.input.Scan() {
		return "", false
	}
	return a.input.Text(), true
}

// Confirm implements controllers.Confirmer over stdin.
func (a *app) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	if !a.input.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(a.input.Text()))
	return answer == "y" || answer == "yes"
}

func (a *app) authPage(ctx context.Context) controllers.Navigation {
	ctrl := controllers.NewAuthController(a.client, a.screen, a.log)

	a.screen.Header("CloudMeet - sign in")
	a.screen.Alert(ui.AlertInfo, "Commands: login <email> <password> | register | tab <login|register> | quit")

	for {
		line, ok := a.readLine()
		if !ok {
			return controllers.Navigation{Route: controllers.RouteQuit}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			return controllers.Navigation{Route: controllers.RouteQuit}

		case "tab":
			if len(fields) == 2 && fields[1] == "register" {
				ctrl.ShowRegister()
			} else {
				ctrl.ShowLogin()
			}

		case "login":
			if ctrl.Mode() != controllers.ModeLogin || len(fields) != 3 {
				a.screen.Alert(ui.AlertDanger, "Usage: login <email> <password>")
				continue
			}
			nav, _ := ctrl.SubmitLogin(ctx, fields[1], fields[2])
			if nav != nil {
				return *nav
			}

		case "register":
			if ctrl.Mode() != controllers.ModeRegister {
				ctrl.ShowRegister()
				a.screen.Alert(ui.AlertInfo, "Register tab. Usage: register <email> <display-name> <password> <confirm>")
				continue
			}
			if len(fields) != 5 {
				a.screen.Alert(ui.AlertDanger, "Usage: register <email> <display-name> <password> <confirm>")
				continue
			}
			err := ctrl.SubmitRegister(ctx, auth.RegisterForm{
				Email:           fields[1],
				DisplayName:     fields[2],
				Password:        fields[3],
				ConfirmPassword: fields[4],
			})
			if err == nil {
				a.screen.Alert(ui.AlertInfo, "Log in as "+ctrl.LoginEmail())
			}

		default:
			a.screen.Alert(ui.AlertDanger, "Unknown command: "+fields[0])
		}
	}
}

func (a *app) roomsPage(ctx context.Context) controllers.Navigation {
	ctrl := controllers.NewRoomsController(a.client, a.tokens, a.screen, a, a.log)
	ctrl.PageLimit = a.config.RoomPageLimit

	if nav, err := ctrl.Load(ctx); nav != nil {
		if err != nil {
			a.log.Warn("Room list load failed", "error", err)
		}
		return *nav
	}

	a.screen.Alert(ui.AlertInfo, "Commands: join <id> | create <name> | delete <id> | refresh | logout | quit")

	for {
		line, ok := a.readLine()
		if !ok {
			return controllers.Navigation{Route: controllers.RouteQuit}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			return controllers.Navigation{Route: controllers.RouteQuit}

		case "logout":
			nav, _ := ctrl.Logout()
			return *nav

		case "refresh":
			if err := ctrl.Refresh(ctx); err != nil {
				a.screen.Alert(ui.AlertDanger, "Failed to refresh: "+err.Error())
			}

		case "join":
			id, err := parseRoomID(fields)
			if err != nil {
				a.screen.Alert(ui.AlertDanger, err.Error())
				continue
			}
			if nav, _ := ctrl.Join(ctx, id); nav != nil {
				return *nav
			}

		case "delete":
			id, err := parseRoomID(fields)
			if err != nil {
				a.screen.Alert(ui.AlertDanger, err.Error())
				continue
			}
			_ = ctrl.Delete(ctx, id)

		case "create":
			name := strings.TrimSpace(strings.TrimPrefix(line, "create"))
			if nav, _ := ctrl.Create(ctx, name); nav != nil {
				return *nav
			}

		default:
			a.screen.Alert(ui.AlertDanger, "Unknown command: "+fields[0])
		}
	}
}

func (a *app) roomPage(ctx context.Context, roomID domain.RoomID) controllers.Navigation {
	ctrl := controllers.NewRoomController(a.client, a.tokens, a.screen, a.log, roomID)
	ctrl.RoomPollInterval = a.config.RoomPollInterval
	ctrl.MessagePollInterval = a.config.MessagePollInterval
	ctrl.MessagePageLimit = a.config.MessagePageLimit

	if nav, err := ctrl.Enter(ctx); nav != nil {
		if err != nil {
			a.log.Warn("Room entry failed", "room_id", roomID, "error", err)
		}
		return *nav
	}

	a.screen.Alert(ui.AlertInfo, "Commands: say <text> | up | down | leave | logout | quit")

	for {
		line, ok := a.readLine()
		if !ok {
			// Closed input is the page-close path: cancel the pollers and
			// fire the leave notification without waiting.
			ctrl.Teardown()
			return controllers.Navigation{Route: controllers.RouteQuit}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			ctrl.Teardown()
			return controllers.Navigation{Route: controllers.RouteQuit}

		case "leave":
			nav, _ := ctrl.Leave(ctx)
			return *nav

		case "logout":
			nav, _ := ctrl.Logout(ctx)
			return *nav

		case "up":
			ctrl.Chat().ScrollUp()

		case "down":
			ctrl.Chat().ScrollDown()

		case "say":
			content := strings.TrimPrefix(line, "say")
			_ = ctrl.Send(ctx, content)

		default:
			a.screen.Alert(ui.AlertDanger, "Unknown command: "+fields[0])
		}
	}
}

func parseRoomID(fields []string) (domain.RoomID, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: %s <room-id>", fields[0])
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid room id %q", fields[1])
	}
	return domain.RoomID(id), nil
}
