package cli

import (
	"context"
	"fmt"
	"strings"

	"eventsphere/internal/ports/output"
)

// Contact sends a message to the site operators. Name and email are prefilled
// from the session when one exists; the message body is read until an empty
// line.
func (h *Handler) Contact(ctx context.Context, args []string) error {
	msg := output.ContactMessage{}
	if session, err := h.sessions.Load(); err == nil && session.Authenticated() {
		msg.Name = session.User.Name
		msg.Email = session.User.Email
	}

	if msg.Name == "" {
		fmt.Fprint(h.out, h.t("login.prompt_name", nil))
		msg.Name = h.readLine()
	}
	if msg.Email == "" {
		fmt.Fprint(h.out, h.t("login.prompt_email", nil))
		msg.Email = h.readLine()
	}

	fmt.Fprintln(h.out, h.t("contact.prompt_message", nil))
	var lines []string
	for {
		line := h.readLine()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	msg.Message = strings.Join(lines, "\n")

	if err := h.auth.SendContact(ctx, msg); err != nil {
		h.printError(err)
		return err
	}
	fmt.Fprintln(h.out, h.t("contact.sent", nil))
	return nil
}
