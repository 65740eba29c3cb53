package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/input"
	"eventsphere/internal/ports/output"
)

// Handler translates terminal commands into use-case calls and renders the
// results. All user-facing text goes through the translator; errors are
// resolved by their domain code, never by their raw text.
type Handler struct {
	browse       input.BrowseUseCase
	reservations input.ReservationUseCase
	myEvents     input.MyEventsUseCase
	organizer    input.OrganizerUseCase
	auth         output.AuthClient
	sessions     output.SessionStore
	translator   output.T
	locale       string
	apiBaseURL   string

	in  *bufio.Reader
	out io.Writer

	// replay re-dispatches a recorded command line after login.
	replay func(ctx context.Context, argv []string) error

	watcher   input.WatchUseCase
	watchCron string
}

// SetReplay wires the command dispatcher used for return-to replays.
func (h *Handler) SetReplay(replay func(ctx context.Context, argv []string) error) {
	h.replay = replay
}

// SetWatcher wires the watch use case and its polling schedule.
func (h *Handler) SetWatcher(watcher input.WatchUseCase, cronSpec string) {
	h.watcher = watcher
	h.watchCron = cronSpec
}

func NewHandler(
	browse input.BrowseUseCase,
	reservations input.ReservationUseCase,
	myEvents input.MyEventsUseCase,
	organizer input.OrganizerUseCase,
	auth output.AuthClient,
	sessions output.SessionStore,
	translator output.T,
	locale string,
	apiBaseURL string,
	in io.Reader,
	out io.Writer,
) *Handler {
	return &Handler{
		browse:       browse,
		reservations: reservations,
		myEvents:     myEvents,
		organizer:    organizer,
		auth:         auth,
		sessions:     sessions,
		translator:   translator,
		locale:       locale,
		apiBaseURL:   apiBaseURL,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

func (h *Handler) t(key string, data map[string]any) string {
	return h.translator.T(h.locale, key, data)
}

// errorMessage resolves err to a localized, user-facing message.
func (h *Handler) errorMessage(err error) string {
	code := domain.Code(err)
	if code == "" {
		return h.t("error.unknown", nil)
	}
	return h.t("error."+code, nil)
}

func (h *Handler) printError(err error) {
	fmt.Fprintln(h.out, h.errorMessage(err))
}

// readLine reads one line of input, trimmed. io.EOF maps to an empty line.
func (h *Handler) readLine() string {
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// confirm shows a localized yes/no question and reads the answer.
// Anything but y/yes declines.
func (h *Handler) confirm(key string, data map[string]any) bool {
	fmt.Fprint(h.out, h.t(key, data))
	answer := strings.ToLower(h.readLine())
	return answer == "y" || answer == "yes"
}

// requireSession returns the active session, running the login flow first
// when there is none. The pending command line is persisted as return-to
// state so an aborted login can still be resumed by a later `login`.
func (h *Handler) requireSession(ctx context.Context, pending []string) (*entities.Session, error) {
	session, err := h.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session.Authenticated() {
		// A stored token can be expired or revoked server-side. A rejected
		// verify drops the session and falls through to a fresh login.
		if _, err := h.auth.Verify(ctx); domain.Code(err) == "not_authenticated" {
			if err := h.sessions.Clear(); err != nil {
				return nil, err
			}
			session = nil
		} else {
			return session, nil
		}
	}

	if len(pending) > 0 {
		if session == nil {
			session = &entities.Session{}
		}
		session.ReturnTo = pending
		if err := h.sessions.Save(session); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(h.out, h.t("login.redirect", nil))
	if err := h.loginFlow(ctx); err != nil {
		h.printError(err)
		return nil, domain.ErrNotAuthenticated
	}

	session, err = h.sessions.Load()
	if err != nil {
		return nil, err
	}
	if !session.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	// The refused command resumes inline; the recorded return-to is spent.
	if len(session.ReturnTo) > 0 {
		session.ReturnTo = nil
		if err := h.sessions.Save(session); err != nil {
			return nil, err
		}
	}
	fmt.Fprintln(h.out, h.t("login.success", map[string]any{"Name": displayName(session)}))
	return session, nil
}
