// Package channel provides the conversation surfaces the assistant
// speaks through: an interactive console and a Telegram bot.
package channel

import (
	"context"
	"time"
)

// InboundMessage is a user turn arriving from a channel.
type InboundMessage struct {
	ChannelName string
	SenderID    string
	SenderName  string
	ChatID      string
	Text        string
	Timestamp   time.Time
}

// OutboundMessage is an assistant reply to deliver through a channel.
type OutboundMessage struct {
	ChatID string
	Text   string
}

// Channel is a bidirectional conversation surface.
type Channel interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Send(ctx context.Context, msg OutboundMessage) error
	OnMessage(handler func(InboundMessage))
	IsRunning() bool
}
