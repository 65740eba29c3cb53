package notify

import (
	"context"
	"fmt"
	"io"

	"eventsphere/internal/ports/output"
)

var _ output.Notifier = (*TerminalNotifier)(nil)

// TerminalNotifier prints watch alerts to the terminal. Used when no
// Discord credentials are configured.
type TerminalNotifier struct {
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Notify(_ context.Context, text string) error {
	_, err := fmt.Fprintln(n.out, text)
	return err
}
