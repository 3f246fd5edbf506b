package agent

import (
	"context"
	"errors"

	// Packages
	assistant "github.com/rxwp5657/ia-agent-demo"
	opt "github.com/rxwp5657/ia-agent-demo/pkg/opt"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	tool "github.com/rxwp5657/ia-agent-demo/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ask processes a message outside of a conversation (stateless). The
// tool-calling loop still runs; the conversation is discarded afterwards.
// If fn is non-nil, text chunks are streamed to the callback as they arrive.
func (m *Manager) Ask(ctx context.Context, model, text string, fn opt.StreamFn) (*schema.Message, error) {
	resolved, generator, err := m.resolve(ctx, model)
	if err != nil {
		return nil, err
	}
	session := new(schema.Session)
	return m.run(ctx, generator, *resolved, session, schema.NewMessage(schema.RoleUser, text), fn)
}

// Chat processes a message within a conversation (stateful).
// If fn is non-nil, text chunks are streamed to the callback as they arrive.
func (m *Manager) Chat(ctx context.Context, conversation, model, text string, fn opt.StreamFn) (*schema.Message, error) {
	// Retrieve the session
	session := m.Conversation(conversation)
	if session == nil {
		return nil, assistant.ErrNotFound.Withf("conversation %q", conversation)
	}

	resolved, generator, err := m.resolve(ctx, model)
	if err != nil {
		return nil, err
	}
	return m.run(ctx, generator, *resolved, session, schema.NewMessage(schema.RoleUser, text), fn)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolve maps a model name to its schema model and generator client
func (m *Manager) resolve(ctx context.Context, model string) (*schema.Model, assistant.Generator, error) {
	resolved, err := m.getModel(ctx, "", model)
	if err != nil {
		return nil, nil, err
	}
	generator, err := m.generatorForModel(resolved)
	if err != nil {
		return nil, nil, err
	}
	return resolved, generator, nil
}

// run sends the message and drives the tool-calling loop: while the model
// requests tool calls, execute them and feed the results back, until a final
// response arrives or the iteration limit is reached. On exhaustion the
// session is rolled back to before the message was sent.
func (m *Manager) run(ctx context.Context, generator assistant.Generator, model schema.Model, session *schema.Session, message *schema.Message, fn opt.StreamFn) (*schema.Message, error) {
	// Build generation options
	var opts []opt.Opt
	if m.systemprompt != "" {
		opts = append(opts, opt.WithSystemPrompt(m.systemprompt))
	}
	if fn != nil {
		opts = append(opts, opt.WithStream(fn))
	}
	if len(m.toolkit.Tools()) > 0 {
		opts = append(opts, tool.WithToolkit(m.toolkit))
	}

	// Snapshot the session length so we can roll back if we exhaust iterations
	snapshot := len(*session)

	// Send the message. A truncated response is still a response: the
	// session retains it and the caller should see the partial text.
	result, err := generator.WithSession(ctx, model, session, message, opts...)
	switch {
	case errors.Is(err, assistant.ErrMaxTokens):
		return result, nil
	case err != nil:
		return nil, err
	}

	// Tool-calling loop
	for i := uint(0); i < m.maxIterations && result.Result == schema.ResultToolCall; i++ {
		toolCalls := result.ToolCalls()
		if len(toolCalls) == 0 {
			break
		}

		// Execute each tool call and collect result blocks
		var toolResults []schema.ContentBlock
		for _, call := range toolCalls {
			output, err := m.toolkit.Run(ctx, call.Name, call.Input)
			switch {
			case errors.Is(err, assistant.ErrParse):
				// A malformed timestamp is a programming error upstream,
				// not something the model can recover from
				return nil, err
			case err != nil:
				toolResults = append(toolResults, schema.NewToolError(call.ID, call.Name, err))
			default:
				toolResults = append(toolResults, schema.NewToolResult(call.ID, call.Name, output))
			}
		}

		// Build a tool-result message and send it back
		toolMessage := &schema.Message{
			Role:    schema.RoleTool,
			Content: toolResults,
		}
		result, err = generator.WithSession(ctx, model, session, toolMessage, opts...)
		switch {
		case errors.Is(err, assistant.ErrMaxTokens):
			return result, nil
		case err != nil:
			return nil, err
		}
	}

	// If we exhausted the iteration limit while the model still wants tool
	// calls, roll back the conversation and report the condition
	if result.Result == schema.ResultToolCall {
		session.Truncate(snapshot)
		result.Result = schema.ResultMaxIterations
	}

	return result, nil
}
