package channel

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	tele "gopkg.in/telebot.v3"
)

// telegramChunk is kept under Telegram's 4096-char message limit.
const telegramChunk = 4000

// TelegramChannel lets the user talk to the assistant over Telegram.
// When AllowedIDs is set, messages from anyone else are dropped.
type TelegramChannel struct {
	mu         sync.Mutex
	token      string
	allowedIDs map[int64]bool
	bot        *tele.Bot
	handler    func(InboundMessage)
	running    bool
}

// TelegramConfig holds the bot token and optional sender allow-list.
type TelegramConfig struct {
	Token      string
	AllowedIDs []int64
}

// NewTelegramChannel creates an unstarted Telegram channel.
func NewTelegramChannel(cfg TelegramConfig) *TelegramChannel {
	allowed := make(map[int64]bool, len(cfg.AllowedIDs))
	for _, id := range cfg.AllowedIDs {
		allowed[id] = true
	}
	return &TelegramChannel{
		token:      cfg.Token,
		allowedIDs: allowed,
	}
}

func (t *TelegramChannel) Name() string { return "telegram" }

func (t *TelegramChannel) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return nil
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  t.token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("telegram bot init: %w", err)
	}

	bot.Handle(tele.OnText, func(c tele.Context) error {
		sender := c.Sender()
		if len(t.allowedIDs) > 0 && !t.allowedIDs[sender.ID] {
			log.Printf("[telegram] dropping message from unauthorized user %d (%s)", sender.ID, sender.Username)
			return nil
		}

		t.mu.Lock()
		handler := t.handler
		t.mu.Unlock()
		if handler == nil {
			return nil
		}

		handler(InboundMessage{
			ChannelName: "telegram",
			SenderID:    strconv.FormatInt(sender.ID, 10),
			SenderName:  sender.FirstName + " " + sender.LastName,
			ChatID:      strconv.FormatInt(c.Chat().ID, 10),
			Text:        c.Text(),
			Timestamp:   time.Now(),
		})
		return nil
	})

	t.bot = bot
	t.running = true

	go bot.Start()
	go func() {
		<-ctx.Done()
		bot.Stop()
	}()

	return nil
}

func (t *TelegramChannel) Stop(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bot != nil {
		t.bot.Stop()
	}
	t.running = false
	return nil
}

func (t *TelegramChannel) Send(_ context.Context, msg OutboundMessage) error {
	t.mu.Lock()
	bot := t.bot
	t.mu.Unlock()

	if bot == nil {
		return fmt.Errorf("telegram bot not started")
	}

	chatID, err := strconv.ParseInt(msg.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat ID: %w", err)
	}
	recipient := &tele.Chat{ID: chatID}

	for _, chunk := range splitChunks(msg.Text, telegramChunk) {
		if _, err := bot.Send(recipient, chunk); err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
	}
	return nil
}

func (t *TelegramChannel) OnMessage(handler func(InboundMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

func (t *TelegramChannel) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func splitChunks(text string, size int) []string {
	var chunks []string
	for len(text) > size {
		chunks = append(chunks, text[:size])
		text = text[size:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
