package agui

import "github.com/google/uuid"

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
	RoleTool      Role = "tool"
	RoleActivity  Role = "activity"
)

// FunctionCall holds the name and serialized arguments of a tool invocation.
// Arguments is a JSON-encoded string, accumulated incrementally during
// streaming.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall represents a tool invocation requested by the assistant, modelled
// after OpenAI tool calls.
type ToolCall struct {
	ID string `json:"id"`
	// Type is always "function".
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// NewToolCall creates a function tool call.
func NewToolCall(id, name, arguments string) ToolCall {
	return ToolCall{
		ID:   id,
		Type: "function",
		Function: FunctionCall{
			Name:      name,
			Arguments: arguments,
		},
	}
}

// Message represents a single message in a conversation, in the AG-UI wire
// shape (camelCase JSON). The role determines which optional fields are
// meaningful: ToolCalls is set only on assistant messages, ToolCallID only on
// tool result messages.
type Message struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`
	// Name optionally identifies the author of the message.
	Name string `json:"name,omitempty"`
	// ToolCalls contains tool invocation requests from an assistant message.
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
	// ToolCallID links a tool result message back to the call it answers.
	ToolCallID string `json:"toolCallId,omitempty"`
	// Error carries a tool execution failure on a tool result message.
	Error string `json:"error,omitempty"`
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// GenerateToolCallID creates a unique tool call identifier.
func GenerateToolCallID() string {
	return "call-" + uuid.New().String()
}

// GenerateThreadID creates a unique conversation thread identifier.
func GenerateThreadID() string {
	return "thread-" + uuid.New().String()
}

// GenerateRunID creates a unique run identifier.
func GenerateRunID() string {
	return "run-" + uuid.New().String()
}
