package eventbus

import "time"

// Topic represents an event topic.
type Topic string

const (
	TopicSessionStarted   Topic = "session_started"
	TopicSessionEnded     Topic = "session_ended"
	TopicInboundMessage   Topic = "inbound_message"
	TopicOutboundMessage  Topic = "outbound_message"
	TopicContextAssembled Topic = "context_assembled"
	TopicToolCall         Topic = "tool_call"
	TopicToolResult       Topic = "tool_result"
	TopicLLMRequest       Topic = "llm_request"
	TopicLLMResponse      Topic = "llm_response"
	TopicMemoryPersisted  Topic = "memory_persisted"
	TopicError            Topic = "error"
)

// Event is a message passed through the event bus.
type Event struct {
	Topic     Topic
	Payload   any
	Timestamp time.Time
}

// Handler processes an event.
type Handler func(Event)
