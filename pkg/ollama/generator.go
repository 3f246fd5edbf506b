package ollama

import (
	"context"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	assistant "github.com/rxwp5657/ia-agent-demo"
	opt "github.com/rxwp5657/ia-agent-demo/pkg/opt"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	tool "github.com/rxwp5657/ia-agent-demo/pkg/tool"
	types "github.com/rxwp5657/ia-agent-demo/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// chatRequest is the request body for the chat endpoint
type chatRequest struct {
	Model    string           `json:"model"`
	Messages []chatMessage    `json:"messages"`
	Tools    []toolDefinition `json:"tools,omitempty"`
	Options  map[string]any   `json:"options,omitempty"`
	Stream   bool             `json:"stream"`
}

// chatResponse is the response body for the chat endpoint. In streaming mode
// the endpoint emits a sequence of these, the last with Done set.
type chatResponse struct {
	Model     string      `json:"model"`
	CreatedAt time.Time   `json:"created_at"`
	Message   chatMessage `json:"message"`
	Done      bool        `json:"done"`
	Reason    string      `json:"done_reason,omitempty"`
	Metrics
}

// Metrics are the token and timing counters reported with a completed response
type Metrics struct {
	TotalDuration      time.Duration `json:"total_duration,omitempty"`
	LoadDuration       time.Duration `json:"load_duration,omitempty"`
	PromptEvalCount    int           `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration,omitempty"`
	EvalCount          int           `json:"eval_count,omitempty"`
	EvalDuration       time.Duration `json:"eval_duration,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	doneReasonStop   = "stop"
	doneReasonLength = "length"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE CHECK

var _ assistant.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r chatResponse) String() string {
	return types.Stringify(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithoutSession sends a single message and returns the response (stateless)
func (ollama *Client) WithoutSession(ctx context.Context, model schema.Model, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if message == nil {
		return nil, assistant.ErrBadParameter.With("message is required")
	}
	session := schema.Session{message}
	return ollama.generate(ctx, model.Name, &session, opts...)
}

// WithSession sends a message within a session and returns the response (stateful)
func (ollama *Client) WithSession(ctx context.Context, model schema.Model, session *schema.Session, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if session == nil {
		return nil, assistant.ErrBadParameter.With("session is required")
	}
	if message == nil {
		return nil, assistant.ErrBadParameter.With("message is required")
	}
	session.Append(*message)
	return ollama.generate(ctx, model.Name, session, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate is the core method that builds a request from options and sends it
func (ollama *Client) generate(ctx context.Context, model string, session *schema.Session, opts ...opt.Opt) (*schema.Message, error) {
	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	streamFn := options.GetStream()

	// Build request
	request, err := chatRequestFromOpts(model, session, options)
	if err != nil {
		return nil, err
	}

	// Force stream flag when streaming callback is set
	if streamFn != nil {
		request.Stream = true
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Streaming path
	if streamFn != nil {
		return ollama.generateStream(ctx, payload, session, streamFn)
	}

	// Non-streaming path
	var response chatResponse
	if err := ollama.DoWithContext(ctx, payload, &response, client.OptPath("chat")); err != nil {
		return nil, err
	}

	return ollama.processResponse(&response, session)
}

// generateStream handles the NDJSON streaming response from the chat endpoint
func (ollama *Client) generateStream(ctx context.Context, payload client.Payload, session *schema.Session, streamFn opt.StreamFn) (*schema.Message, error) {
	var response, delta chatResponse
	if err := ollama.DoWithContext(ctx, payload, &delta, client.OptPath("chat"), client.OptJsonStreamCallback(func(v any) error {
		chunk, ok := v.(*chatResponse)
		if !ok || chunk == nil {
			return assistant.ErrConflict.Withf("invalid stream chunk: %v", v)
		}

		// Accumulate the final response from the chunks
		response.Model = chunk.Model
		response.CreatedAt = chunk.CreatedAt
		response.Message.Role = chunk.Message.Role
		response.Message.Content += chunk.Message.Content
		response.Message.ToolCalls = append(response.Message.ToolCalls, chunk.Message.ToolCalls...)
		if chunk.Done {
			response.Done = chunk.Done
			response.Reason = chunk.Reason
			response.Metrics = chunk.Metrics
		}

		// Stream incremental text to the callback
		if chunk.Message.Content != "" {
			streamFn(schema.RoleAssistant, chunk.Message.Content)
		}
		return nil
	})); err != nil {
		return nil, err
	}

	return ollama.processResponse(&response, session)
}

// processResponse converts a chat response to a schema message and appends it
// to the session
func (ollama *Client) processResponse(response *chatResponse, session *schema.Session) (*schema.Message, error) {
	message, err := messageFromResponse(response)
	if err != nil {
		return nil, err
	}
	session.Append(*message)

	// Truncated responses need caller attention
	if response.Reason == doneReasonLength {
		return message, assistant.ErrMaxTokens
	}
	return message, nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// chatRequestFromOpts builds a chat request from the session and applied options
func chatRequestFromOpts(model string, session *schema.Session, options *opt.Options) (*chatRequest, error) {
	// Convert session to the wire message format
	messages, err := messagesFromSession(session)
	if err != nil {
		return nil, err
	}

	request := &chatRequest{
		Model:    model,
		Messages: messages,
	}

	// System prompt is prepended as a system role message
	if systemPrompt := options.GetString(opt.SystemPromptKey); systemPrompt != "" {
		sysMsg := chatMessage{
			Role:    schema.RoleSystem,
			Content: systemPrompt,
		}
		request.Messages = append([]chatMessage{sysMsg}, request.Messages...)
	}

	// Sampling options go into the options map
	if options.Has(opt.TemperatureKey) {
		setOption(request, "temperature", options.GetFloat64(opt.TemperatureKey))
	}
	if options.Has(opt.MaxTokensKey) {
		setOption(request, "num_predict", int(options.GetUint(opt.MaxTokensKey)))
	}

	// Tools from toolkit
	if v := options.Get(opt.ToolkitKey); v != nil {
		if tk, ok := v.(*tool.Toolkit); ok {
			tools, err := toolsFromToolkit(tk)
			if err != nil {
				return nil, err
			}
			if len(tools) > 0 {
				request.Tools = tools
			}
		}
	}

	return request, nil
}

func setOption(request *chatRequest, key string, value any) {
	if request.Options == nil {
		request.Options = make(map[string]any)
	}
	request.Options[key] = value
}
