package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/agent"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/channel"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/config"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/eventbus"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/llm"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/memory"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/prompts"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/security"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/tool"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

const (
	secretNameLLMKey        = "llm_api_key"
	secretNameMem0Key       = "mem0_api_key"
	secretNameTelegramToken = "telegram_token"
	secretNameEmailUser     = "email_user"
	secretNameEmailPassword = "email_password"
)

// App wires configuration, memory, the LLM stack, tools, and channels
// into one assistant session.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cfg     *config.Config
	bus     *eventbus.Bus
	store   memory.Store
	session *agent.Session
	chanMgr *channel.Manager
	done    chan struct{}
}

// NewApp creates an unstarted App.
func NewApp() *App {
	return &App{
		bus:  eventbus.New(),
		done: make(chan struct{}),
	}
}

// Done is closed when the user ends the session from a channel.
func (a *App) Done() <-chan struct{} { return a.done }

// Startup loads config, preloads memory context, builds the session,
// and starts all channels. The assistant greets the user once running.
func (a *App) Startup(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	a.ctx = ctx
	a.cancel = cancel

	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		log.Printf("[app] config load failed, using defaults: %v", err)
		cfg = config.Defaults()
	}
	a.cfg = cfg
	a.resolveSecrets()
	log.Printf("[app] llm provider %s (key %s)", cfg.LLM.Provider, security.MaskKey(cfg.LLM.APIKey))

	a.store = memory.NewMem0Client(memory.Mem0Config{
		APIKey:  cfg.Memory.APIKey,
		BaseURL: cfg.Memory.BaseURL,
	})

	// Preload long-term memory into the system instructions.
	assembler := memory.NewContextAssembler(a.store, memory.AssemblerConfig{
		UserID:       cfg.Agent.UserID,
		ProfileFacts: cfg.Memory.ProfileFacts,
		SummaryLimit: cfg.Memory.SummaryPreload,
		RecentLimit:  cfg.Memory.RecentPreload,
		QueryTimeout: time.Duration(cfg.Memory.QueryTimeoutSecs) * time.Second,
	})
	memoryBlock := assembler.Assemble(ctx)
	a.bus.Publish(eventbus.TopicContextAssembled, memoryBlock)
	instructions := prompts.Build(cfg.Agent.UserTitle, memoryBlock)

	provider, err := a.buildProvider()
	if err != nil {
		return err
	}

	registry := a.buildTools()

	a.session = agent.NewSession(cfg.Agent, provider, registry, a.bus, instructions)

	// Persist the transcript to long-term memory when the session ends.
	var redact func(string) string
	if r := security.NewRedactor(cfg.Privacy); r != nil {
		redact = r.Redact
	}
	persister := memory.NewSessionPersister(a.store, cfg.Agent.UserID, redact)
	a.session.OnSessionEnd(func(ctx context.Context) {
		turns := transcript.Parse(a.session.History())
		if err := persister.Persist(ctx, turns); err != nil {
			log.Printf("[app] session persistence: %v", err)
			return
		}
		a.bus.Publish(eventbus.TopicMemoryPersisted, a.session.ID())
	})

	a.bus.Subscribe(eventbus.TopicError, func(e eventbus.Event) {
		log.Printf("[app] error event: %v", e.Payload)
	})

	if err := a.startChannels(); err != nil {
		return err
	}

	greeting := a.session.Greet(ctx, prompts.TimeOfDay(time.Now().Hour()))
	a.greetConsole(greeting)
	return nil
}

// Shutdown stops channels and closes the session under the configured
// grace window so the memory write can finish.
func (a *App) Shutdown() {
	if a.chanMgr != nil {
		a.chanMgr.StopAll(context.Background())
	}
	if a.session != nil {
		grace := time.Duration(a.cfg.Memory.ShutdownGraceSecs) * time.Second
		if grace <= 0 {
			grace = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		a.session.Close(ctx)
	}
	if a.cancel != nil {
		a.cancel()
	}
}

// resolveSecrets fills credential fields from the environment or the
// OS keyring. The config file never holds real keys.
func (a *App) resolveSecrets() {
	if a.cfg.LLM.APIKey == "" {
		envVar := "OPENAI_API_KEY"
		if a.cfg.LLM.Provider == "anthropic" {
			envVar = "ANTHROPIC_API_KEY"
		}
		a.cfg.LLM.APIKey = security.Secret(secretNameLLMKey, envVar)
	}
	if a.cfg.Memory.APIKey == "" {
		a.cfg.Memory.APIKey = security.Secret(secretNameMem0Key, "MEM0_API_KEY")
	}
	if a.cfg.Channels.Telegram != nil && a.cfg.Channels.Telegram.Token == "" {
		a.cfg.Channels.Telegram.Token = security.Secret(secretNameTelegramToken, "TELEGRAM_TOKEN")
	}
}

func (a *App) buildProvider() (llm.Provider, error) {
	provider, err := llm.NewProvider(a.cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	if a.cfg.FallbackLLM != nil && a.cfg.FallbackLLM.APIKey != "" {
		if fallback, err := llm.NewProvider(*a.cfg.FallbackLLM); err == nil {
			provider = llm.NewFallbackProvider(provider, fallback)
		} else {
			log.Printf("[app] fallback provider unavailable: %v", err)
		}
	}
	return provider, nil
}

func (a *App) buildTools() *tool.Registry {
	registry := tool.NewRegistry()
	registry.Register(tool.NewLocalTimeTool())
	registry.Register(tool.NewWeatherTool(a.cfg.Weather, a.cfg.Agent.UserTitle))
	registry.Register(tool.NewWebSearchTool(a.cfg.Agent.UserTitle))
	registry.Register(tool.NewSendEmailTool(
		a.cfg.Email,
		security.Secret(secretNameEmailUser, "GMAIL_USER"),
		security.Secret(secretNameEmailPassword, "GMAIL_APP_PASSWORD"),
		a.cfg.Agent.UserTitle,
	))
	registry.Register(tool.NewRecallMemoryTool(a.store, a.cfg.Agent.UserID, a.cfg.Memory.RecallLimit))
	return registry
}

func (a *App) startChannels() error {
	a.chanMgr = channel.NewManager()

	console := channel.NewConsoleChannel()
	console.OnEOF(a.endSession)
	a.chanMgr.Register(console)

	if tg := a.cfg.Channels.Telegram; tg != nil && tg.Token != "" {
		a.chanMgr.Register(channel.NewTelegramChannel(channel.TelegramConfig{
			Token:      tg.Token,
			AllowedIDs: tg.AllowedIDs,
		}))
	}

	for name := range a.chanMgr.List() {
		ch, ok := a.chanMgr.Get(name)
		if !ok {
			continue
		}
		ch.OnMessage(func(msg channel.InboundMessage) {
			// Observers must not delay the response path.
			a.bus.PublishAsync(eventbus.TopicInboundMessage, msg)
			a.handleMessage(msg)
		})
	}

	if err := a.chanMgr.StartAll(a.ctx); err != nil {
		return fmt.Errorf("start channels: %w", err)
	}
	return nil
}

func (a *App) handleMessage(msg channel.InboundMessage) {
	if isFarewell(msg.Text) {
		a.reply(msg, prompts.RandomGoodbye(a.cfg.Agent.UserTitle))
		a.endSession()
		return
	}

	response, err := a.session.Respond(a.ctx, msg.Text)
	if err != nil {
		log.Printf("[app] respond failed: %v", err)
		a.bus.Publish(eventbus.TopicError, err)
		response = fmt.Sprintf("Apologies, %s, something went wrong on my end. Please try again.", a.cfg.Agent.UserTitle)
	}
	a.reply(msg, response)
}

func (a *App) reply(msg channel.InboundMessage, text string) {
	ch, ok := a.chanMgr.Get(msg.ChannelName)
	if !ok {
		log.Printf("[app] channel %s not found", msg.ChannelName)
		return
	}
	out := channel.OutboundMessage{ChatID: msg.ChatID, Text: text}
	a.bus.Publish(eventbus.TopicOutboundMessage, out)
	if err := ch.Send(a.ctx, out); err != nil {
		log.Printf("[app] send failed on %s: %v", msg.ChannelName, err)
	}
}

// greetConsole prints the opening greeting on the console channel.
// Remote channels only see replies to their own messages.
func (a *App) greetConsole(text string) {
	ch, ok := a.chanMgr.Get("console")
	if !ok {
		return
	}
	out := channel.OutboundMessage{ChatID: "console", Text: text}
	if err := ch.Send(a.ctx, out); err != nil {
		log.Printf("[app] greeting send failed: %v", err)
	}
}

func (a *App) endSession() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

var farewells = map[string]bool{
	"bye":       true,
	"goodbye":   true,
	"good bye":  true,
	"exit":      true,
	"quit":      true,
	"see ya":    true,
	"see you":   true,
	"goodnight": true,
}

func isFarewell(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimRight(t, ".!? ")
	return farewells[t]
}
