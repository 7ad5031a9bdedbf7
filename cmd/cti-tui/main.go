package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/pflag"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/clock"
	"github.com/altinukshini/cti-tui/internal/config"
	"github.com/altinukshini/cti-tui/internal/events"
	"github.com/altinukshini/cti-tui/internal/logging"
	"github.com/altinukshini/cti-tui/internal/prefs"
	"github.com/altinukshini/cti-tui/internal/tui"
	"github.com/altinukshini/cti-tui/internal/ui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet("cti-tui", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println("cti-tui", version)
		return nil
	}

	if err := cfg.Finalize(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !term.FromEnv().IsTerminalOutput() {
		return errors.New("cti-tui needs an interactive terminal")
	}

	fileLogger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()
	status := logging.NewStatusHandler(slog.LevelWarn)
	logger := slog.New(logging.Tee(fileLogger.Handler(), status))
	logger.Info("starting", "version", version, "api", cfg.APIURL, "user", cfg.Username)

	store, err := prefs.NewStore(cfg.StateDir)
	if err != nil {
		return err
	}

	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.APIURL,
		Username:  cfg.Username,
		Token:     cfg.Token,
		RateLimit: cfg.RateLimit,
		PageSize:  cfg.PageSize,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("auth error: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relay := tui.NewRelay()
	defer relay.Stop()

	sub := events.NewSubscriber(events.Options{
		URL:      cfg.WSURL,
		Username: cfg.Username,
		Token:    cfg.Token,
		Logger:   logger,
		OnEvent: func(ev events.Event) {
			switch {
			case ev.Notification != nil:
				relay.Send(ui.NotificationMsg{Notification: *ev.Notification})
			case ev.Presence != nil:
				relay.Send(ui.PresenceMsg{Username: ev.Presence.Username, Presence: ev.Presence.Presence})
			}
		},
		OnStatus: func(connected bool) {
			relay.Send(ui.EventsStatusMsg{Connected: connected})
		},
	})

	app := tui.NewApp(tui.Deps{
		Ctx:    ctx,
		Config: *cfg,
		Client: client,
		Prefs:  store,
		Relay:  relay,
		Logger: logger,
		Clock:  clock.Real(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	relay.Attach(p)
	status.SetSender(relay)

	go func() {
		if err := sub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("event subscription stopped", "error", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("exiting")
	return nil
}
