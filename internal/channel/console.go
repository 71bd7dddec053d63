package channel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ConsoleChannel reads user turns from stdin and prints assistant
// replies to stdout. It is the default interactive surface.
type ConsoleChannel struct {
	mu      sync.Mutex
	in      io.Reader
	handler func(InboundMessage)
	onEOF   func()
	running bool
	cancel  context.CancelFunc
}

func NewConsoleChannel() *ConsoleChannel {
	return &ConsoleChannel{in: os.Stdin}
}

func (c *ConsoleChannel) Name() string { return "console" }

// OnEOF registers a callback for when stdin closes, so the app can
// end the session gracefully.
func (c *ConsoleChannel) OnEOF(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEOF = fn
}

func (c *ConsoleChannel) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.running = true

	go c.readLoop(ctx)
	return nil
}

func (c *ConsoleChannel) Stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.running = false
	return nil
}

func (c *ConsoleChannel) Send(_ context.Context, msg OutboundMessage) error {
	fmt.Printf("\n[Oracle]: %s\n\n> ", msg.Text)
	return nil
}

func (c *ConsoleChannel) OnMessage(handler func(InboundMessage)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

func (c *ConsoleChannel) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *ConsoleChannel) readLoop(ctx context.Context) {
	scanner := bufio.NewScanner(c.in)
	fmt.Print("> ")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			// stdin closed, hand off so the session can wrap up
			c.mu.Lock()
			c.running = false
			onEOF := c.onEOF
			c.mu.Unlock()
			if onEOF != nil {
				onEOF()
			}
			return
		}

		text := scanner.Text()
		if text == "" {
			fmt.Print("> ")
			continue
		}

		c.mu.Lock()
		handler := c.handler
		c.mu.Unlock()

		if handler != nil {
			handler(InboundMessage{
				ChannelName: "console",
				SenderID:    "local",
				SenderName:  "User",
				ChatID:      "console",
				Text:        text,
				Timestamp:   time.Now(),
			})
		}
	}
}
