package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"eventsphere/internal/adapters/notify"
	"eventsphere/internal/application"
	"eventsphere/internal/config"
	"eventsphere/internal/infrastructure/api"
	"eventsphere/internal/infrastructure/i18n"
	"eventsphere/internal/infrastructure/session"
)

// App owns the whole object graph and dispatches command lines to the
// handler. One App serves one process invocation.
type App struct {
	handler  *Handler
	notifier *notify.DiscordNotifier
}

func NewApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	sessions := session.NewStore(cfg.SessionFile)
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions)
	events := api.NewEventRepository(client)
	reservationClient := api.NewReservationClient(client)
	auth := api.NewAuthClient(client)

	translator := i18n.NewTranslator(cfg.Locale)

	reservations := application.NewReservationService(events, reservationClient)
	browse := application.NewBrowseService(events)
	myEvents := application.NewMyEventsService(events, reservationClient, reservations)
	organizer := application.NewOrganizerService(events)

	handler := NewHandler(
		browse,
		reservations,
		myEvents,
		organizer,
		auth,
		sessions,
		translator,
		cfg.Locale,
		cfg.APIBaseURL,
		in,
		out,
	)

	app := &App{handler: handler}

	if cfg.DiscordToken != "" {
		discord, err := notify.NewDiscordNotifier(cfg.DiscordToken, cfg.DiscordChannelID)
		if err != nil {
			return nil, err
		}
		app.notifier = discord
		handler.SetWatcher(application.NewWatchService(events, discord, translator, cfg.Locale), cfg.WatchCron)
	} else {
		terminal := notify.NewTerminalNotifier(out)
		handler.SetWatcher(application.NewWatchService(events, terminal, translator, cfg.Locale), cfg.WatchCron)
	}

	handler.SetReplay(app.Run)
	return app, nil
}

// Run dispatches one command line: the first element selects the command,
// the rest are its arguments.
func (a *App) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		a.usage()
		return nil
	}

	cmd, args := argv[0], argv[1:]
	switch cmd {
	case "events", "list":
		return a.handler.Browse(ctx, args)
	case "show":
		return a.handler.Show(ctx, args)
	case "rsvp":
		return a.handler.RSVP(ctx, args)
	case "save":
		return a.handler.Save(ctx, args)
	case "attending":
		return a.handler.Attending(ctx, args)
	case "hosting":
		return a.handler.Hosting(ctx, args)
	case "saved":
		return a.handler.Saved(ctx, args)
	case "delete":
		return a.handler.Delete(ctx, args)
	case "create":
		return a.handler.Create(ctx, args)
	case "edit":
		return a.handler.Edit(ctx, args)
	case "participants":
		return a.handler.Participants(ctx, args)
	case "login":
		return a.handler.Login(ctx, args)
	case "signup":
		return a.handler.Signup(ctx, args)
	case "logout":
		return a.handler.Logout(ctx, args)
	case "contact":
		return a.handler.Contact(ctx, args)
	case "export":
		return a.handler.Export(ctx, args)
	case "watch":
		return a.handler.Watch(ctx, args)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// Close releases long-lived adapter resources.
func (a *App) Close() error {
	if a.notifier != nil {
		return a.notifier.Close()
	}
	return nil
}

func (a *App) usage() {
	fmt.Fprint(os.Stderr, `Usage: eventsphere <command> [arguments]

Browse
  events [-q text] [-postal code] [-category name] [-page n] [-size n]
  show <event-id>

Reservations
  rsvp <event-id>
  save <event-id>
  watch <event-id> [event-id...]

My events
  attending | hosting | saved
  export [-o file] [attending|saved]

Organizer
  create [flags]        (see create -h)
  edit <event-id> [flags]
  delete <event-id>
  participants <event-id>

Account
  login | signup | logout
  contact
`)
}
