// Package agent runs a single conversational session: it feeds user
// turns through the LLM tool loop and keeps the transcript for
// end-of-session persistence.
package agent

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/config"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/eventbus"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/llm"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/prompts"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/tool"
	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

// Session is one conversation with the user. History lives in memory
// for the lifetime of the session; long-term recall goes through the
// recall_memory tool and the end-of-session persister.
type Session struct {
	mu           sync.Mutex
	id           string
	cfg          config.AgentConfig
	provider     llm.Provider
	tools        *tool.Registry
	bus          *eventbus.Bus
	instructions string
	history      []llm.Message
	endHooks     []func(context.Context)
}

// NewSession creates a session with the given system instructions
// (persona plus any preloaded memory context).
func NewSession(
	cfg config.AgentConfig,
	provider llm.Provider,
	tools *tool.Registry,
	bus *eventbus.Bus,
	instructions string,
) *Session {
	s := &Session{
		id:           uuid.NewString(),
		cfg:          cfg,
		provider:     provider,
		tools:        tools,
		bus:          bus,
		instructions: instructions,
	}
	bus.Publish(eventbus.TopicSessionStarted, s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Greet asks the model to open the session with a short greeting. If
// the provider is unavailable a canned greeting is used so the session
// still opens.
func (s *Session) Greet(ctx context.Context, timeOfDay string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := &llm.ChatRequest{
		Messages: []llm.Message{{
			Role:    "user",
			Content: prompts.SessionInstruction(s.cfg.UserTitle, timeOfDay),
		}},
		MaxTokens:    s.cfg.MaxTokens,
		Temperature:  s.cfg.Temperature,
		SystemPrompt: s.instructions,
	}
	resp, err := s.provider.Chat(ctx, req)
	greeting := ""
	if err != nil || resp.Content == "" {
		if err != nil {
			log.Printf("[session] greeting generation failed: %v", err)
		}
		greeting = prompts.RandomGreeting(timeOfDay, s.cfg.UserTitle)
	} else {
		greeting = resp.Content
	}

	s.history = append(s.history, llm.Message{Role: "assistant", Content: greeting})
	return greeting
}

// Respond runs the tool loop for one user turn and returns the final
// assistant text.
func (s *Session) Respond(ctx context.Context, userText string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, llm.Message{Role: "user", Content: userText})
	s.trimHistory()

	toolCallCount := 0
	for {
		req := &llm.ChatRequest{
			Messages:     s.history,
			Tools:        s.tools.Definitions(),
			MaxTokens:    s.cfg.MaxTokens,
			Temperature:  s.cfg.Temperature,
			SystemPrompt: s.instructions,
		}

		s.bus.Publish(eventbus.TopicLLMRequest, req)

		resp, err := s.provider.Chat(ctx, req)
		if err != nil {
			return "", fmt.Errorf("LLM error: %w", err)
		}

		s.bus.Publish(eventbus.TopicLLMResponse, resp)

		if len(resp.ToolCalls) == 0 {
			s.history = append(s.history, llm.Message{Role: "assistant", Content: resp.Content})
			return resp.Content, nil
		}

		toolCallCount += len(resp.ToolCalls)
		if toolCallCount > s.cfg.MaxToolCalls {
			msg := "I've reached the maximum number of tool calls for this request. Here's what I have so far: " + resp.Content
			s.history = append(s.history, llm.Message{Role: "assistant", Content: msg})
			return msg, nil
		}

		s.history = append(s.history, llm.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, tc := range resp.ToolCalls {
			s.bus.Publish(eventbus.TopicToolCall, tc)

			result := s.runTool(ctx, tc)

			s.bus.Publish(eventbus.TopicToolResult, map[string]string{"id": tc.ID, "result": result})

			s.history = append(s.history, llm.Message{
				Role:       "tool",
				Content:    result,
				ToolCallID: tc.ID,
			})
		}
	}
}

func (s *Session) runTool(ctx context.Context, tc llm.ToolCall) string {
	t, err := s.tools.Get(tc.Name)
	if err != nil {
		return fmt.Sprintf("Error: tool '%s' not found", tc.Name)
	}
	res, err := t.Execute(ctx, tc.Arguments)
	if err != nil {
		return "Error executing tool: " + err.Error()
	}
	if res.IsError {
		return "Error: " + res.Error
	}
	return res.Output
}

// trimHistory bounds the in-memory history. It drops the oldest
// messages, then any orphaned tool results left at the front.
func (s *Session) trimHistory() {
	if s.cfg.MaxHistory <= 0 || len(s.history) <= s.cfg.MaxHistory {
		return
	}
	s.history = s.history[len(s.history)-s.cfg.MaxHistory:]
	for len(s.history) > 0 && s.history[0].Role == "tool" {
		s.history = s.history[1:]
	}
}

// History returns the conversation so far as transcript items. Tool
// results and intermediate tool-call turns are excluded.
func (s *Session) History() []transcript.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]transcript.Item, 0, len(s.history))
	for _, m := range s.history {
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		if m.Content == "" {
			continue
		}
		items = append(items, transcript.Item{Role: m.Role, Content: m.Content})
	}
	return items
}

// OnSessionEnd registers a hook to run when the session closes, such
// as persisting the transcript to long-term memory.
func (s *Session) OnSessionEnd(fn func(context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endHooks = append(s.endHooks, fn)
}

// Close runs the registered end hooks under the caller's context. The
// caller bounds the context with the shutdown grace window.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	hooks := make([]func(context.Context), len(s.endHooks))
	copy(hooks, s.endHooks)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(ctx)
	}
	s.bus.Publish(eventbus.TopicSessionEnded, s.id)
	log.Printf("[session] %s closed", s.id)
}
