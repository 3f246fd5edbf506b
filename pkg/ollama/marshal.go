package ollama

import (
	"encoding/json"
	"strconv"

	// Packages
	assistant "github.com/rxwp5657/ia-agent-demo"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	tool "github.com/rxwp5657/ia-agent-demo/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// chatMessage is the wire format for a message in a chat request or response
type chatMessage struct {
	Role      string     `json:"role"`           // system, user, assistant, tool
	Content   string     `json:"content"`        // text content
	Name      string     `json:"name,omitempty"` // function name, when role is tool
	ToolCalls []toolCall `json:"tool_calls,omitempty"`
}

// toolCall is a function invocation requested by the model
type toolCall struct {
	Function toolCallFunction `json:"function"`
}

type toolCallFunction struct {
	Index     int            `json:"index,omitempty"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// toolDefinition advertises a callable function to the model
type toolDefinition struct {
	Type     string          `json:"type"` // function
	Function toolFunctionDef `json:"function"`
}

type toolFunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

///////////////////////////////////////////////////////////////////////////////
// SESSION -> WIRE MESSAGES

// messagesFromSession converts a schema.Session to the wire message format.
// Tool result messages are split so each carries exactly one function result,
// with the role "tool".
func messagesFromSession(session *schema.Session) ([]chatMessage, error) {
	if session == nil {
		return nil, nil
	}

	messages := make([]chatMessage, 0, len(*session))
	for _, msg := range *session {
		if hasToolResult(msg) {
			for i := range msg.Content {
				if msg.Content[i].ToolResult == nil {
					continue
				}
				messages = append(messages, toolResultMessage(msg.Content[i].ToolResult))
			}
			continue
		}

		mm, err := messageFromSchema(msg)
		if err != nil {
			return nil, err
		}
		messages = append(messages, mm)
	}
	return messages, nil
}

// messageFromSchema converts a single schema.Message to the wire format.
// Text blocks are concatenated and tool call blocks become tool_calls entries.
func messageFromSchema(msg *schema.Message) (chatMessage, error) {
	mm := chatMessage{
		Role:    msg.Role,
		Content: msg.Text(),
	}

	for i, call := range msg.ToolCalls() {
		tc := toolCall{
			Function: toolCallFunction{
				Index: i,
				Name:  call.Name,
			},
		}
		if len(call.Input) > 0 {
			if err := json.Unmarshal(call.Input, &tc.Function.Arguments); err != nil {
				return chatMessage{}, assistant.ErrBadParameter.Withf("invalid tool call arguments for %q: %v", call.Name, err)
			}
		}
		mm.ToolCalls = append(mm.ToolCalls, tc)
	}

	return mm, nil
}

// toolResultMessage creates a "tool" role message from a ToolResult
func toolResultMessage(tr *schema.ToolResult) chatMessage {
	var content string
	if len(tr.Content) > 0 {
		content = string(tr.Content)
	}
	return chatMessage{
		Role:    schema.RoleTool,
		Content: content,
		Name:    tr.Name,
	}
}

///////////////////////////////////////////////////////////////////////////////
// WIRE RESPONSE -> SCHEMA MESSAGE

// messageFromResponse converts a chat response to a schema.Message. Tool call
// IDs are synthesized from the call index, as the API does not assign them.
func messageFromResponse(response *chatResponse) (*schema.Message, error) {
	var blocks []schema.ContentBlock

	if text := response.Message.Content; text != "" {
		blocks = append(blocks, schema.ContentBlock{Text: &text})
	}

	for i, tc := range response.Message.ToolCalls {
		input, err := json.Marshal(tc.Function.Arguments)
		if err != nil {
			return nil, assistant.ErrConflict.Withf("invalid tool call arguments for %q: %v", tc.Function.Name, err)
		}
		blocks = append(blocks, schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    strconv.Itoa(i),
				Name:  tc.Function.Name,
				Input: input,
			},
		})
	}

	result := resultFromDoneReason(response.Reason)
	if len(response.Message.ToolCalls) > 0 {
		result = schema.ResultToolCall
	}

	return &schema.Message{
		Role:    schema.RoleAssistant,
		Content: blocks,
		Result:  result,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// toolsFromToolkit converts a tool.Toolkit to wire tool definitions
func toolsFromToolkit(tk *tool.Toolkit) ([]toolDefinition, error) {
	tools := tk.Tools()
	result := make([]toolDefinition, 0, len(tools))
	for _, t := range tools {
		s, err := t.Schema()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		result = append(result, toolDefinition{
			Type: "function",
			Function: toolFunctionDef{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  data,
			},
		})
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// DONE REASON -> RESULT TYPE

// resultFromDoneReason maps done reasons to schema.ResultType
func resultFromDoneReason(reason string) schema.ResultType {
	switch reason {
	case doneReasonStop:
		return schema.ResultStop
	case doneReasonLength:
		return schema.ResultMaxTokens
	default:
		return schema.ResultOther
	}
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// hasToolResult reports whether any content block is a tool result
func hasToolResult(msg *schema.Message) bool {
	for _, b := range msg.Content {
		if b.ToolResult != nil {
			return true
		}
	}
	return false
}
