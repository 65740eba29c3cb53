package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"eventsphere/internal/domain/entities"
)

// Login runs the interactive login flow. When a return-to command was
// recorded by a refused action, it is replayed after a successful login so
// the user lands back where they started.
func (h *Handler) Login(ctx context.Context, args []string) error {
	if err := h.loginFlow(ctx); err != nil {
		h.printError(err)
		return err
	}

	session, err := h.sessions.Load()
	if err != nil || session == nil {
		return err
	}
	fmt.Fprintln(h.out, h.t("login.success", map[string]any{"Name": displayName(session)}))

	if len(session.ReturnTo) > 0 && h.replay != nil {
		pending := session.ReturnTo
		session.ReturnTo = nil
		if err := h.sessions.Save(session); err != nil {
			return err
		}
		fmt.Fprintln(h.out, h.t("login.replaying", nil))
		return h.replay(ctx, pending)
	}
	return nil
}

// loginFlow prompts for credentials and persists the returned session.
// The recorded return-to command, if any, survives the write.
func (h *Handler) loginFlow(ctx context.Context) error {
	fmt.Fprint(h.out, h.t("login.prompt_email", nil))
	email := h.readLine()
	password := h.readPassword()

	session, err := h.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if existing, err := h.sessions.Load(); err == nil && existing != nil {
		session.ReturnTo = existing.ReturnTo
	}
	return h.sessions.Save(session)
}

// Signup registers a new account and logs straight into it.
func (h *Handler) Signup(ctx context.Context, args []string) error {
	fmt.Fprint(h.out, h.t("login.prompt_name", nil))
	name := h.readLine()
	fmt.Fprint(h.out, h.t("login.prompt_email", nil))
	email := h.readLine()
	password := h.readPassword()

	session, err := h.auth.Signup(ctx, name, email, password)
	if err != nil {
		h.printError(err)
		return err
	}
	if err := h.sessions.Save(session); err != nil {
		return err
	}
	fmt.Fprintln(h.out, h.t("login.success", map[string]any{"Name": displayName(session)}))
	return nil
}

// Logout drops the persisted session.
func (h *Handler) Logout(ctx context.Context, args []string) error {
	if err := h.sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(h.out, h.t("login.logged_out", nil))
	return nil
}

// readPassword reads without echo when stdin is a terminal, falling back to
// a plain line read otherwise (pipes, tests).
func (h *Handler) readPassword() string {
	fmt.Fprint(h.out, h.t("login.prompt_password", nil))
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(h.out)
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return h.readLine()
}

func displayName(session *entities.Session) string {
	if session.User.Name != "" {
		return session.User.Name
	}
	return session.User.Email
}
