package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"eventsphere/internal/ports/output"
)

var _ output.Notifier = (*DiscordNotifier)(nil)

// DiscordNotifier posts watch alerts to a Discord channel. The session is
// opened lazily on the first alert so watch mode without any alert never
// touches Discord.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
	opened    bool
}

func NewDiscordNotifier(token, channelID string) (*DiscordNotifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &DiscordNotifier{session: s, channelID: channelID}, nil
}

func (n *DiscordNotifier) Notify(_ context.Context, text string) error {
	if !n.opened {
		if err := n.session.Open(); err != nil {
			return fmt.Errorf("open discord session: %w", err)
		}
		n.opened = true
	}
	if _, err := n.session.ChannelMessageSend(n.channelID, text); err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}
	return nil
}

// Close shuts the underlying websocket down if it was ever opened.
func (n *DiscordNotifier) Close() error {
	if !n.opened {
		return nil
	}
	n.opened = false
	return n.session.Close()
}
