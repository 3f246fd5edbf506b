package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	assert := assert.New(t)

	msg := schema.NewMessage(schema.RoleUser, "should I go outside?")
	assert.Equal(schema.RoleUser, msg.Role)
	assert.Equal("should I go outside?", msg.Text())
	assert.Empty(msg.ToolCalls())
}

func TestMessageToolCalls(t *testing.T) {
	assert := assert.New(t)

	msg := schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{ToolCall: &schema.ToolCall{ID: "0", Name: "current_datetime"}},
			{ToolCall: &schema.ToolCall{ID: "1", Name: "forecast_weather", Input: json.RawMessage(`{"location":"Berlin,DE"}`)}},
		},
		Result: schema.ResultToolCall,
	}

	calls := msg.ToolCalls()
	assert.Len(calls, 2)
	assert.Equal("current_datetime", calls[0].Name)
	assert.Equal("forecast_weather", calls[1].Name)
	assert.JSONEq(`{"location":"Berlin,DE"}`, string(calls[1].Input))
}

func TestNewToolResult(t *testing.T) {
	assert := assert.New(t)

	block := schema.NewToolResult("1", "current_datetime", "2025-06-01T12:00:00+00:00")
	assert.NotNil(block.ToolResult)
	assert.False(block.ToolResult.IsError)
	assert.Equal("current_datetime", block.ToolResult.Name)
	assert.JSONEq(`"2025-06-01T12:00:00+00:00"`, string(block.ToolResult.Content))
}

func TestNewToolError(t *testing.T) {
	assert := assert.New(t)

	block := schema.NewToolError("1", "forecast_weather", errors.New("no such city"))
	assert.NotNil(block.ToolResult)
	assert.True(block.ToolResult.IsError)
	assert.JSONEq(`"no such city"`, string(block.ToolResult.Content))
}

func TestSessionAppendTruncate(t *testing.T) {
	assert := assert.New(t)

	var session schema.Session
	assert.Nil(session.Last())

	session.Append(*schema.NewMessage(schema.RoleUser, "hello"))
	session.Append(*schema.NewMessage(schema.RoleAssistant, "hi"))
	assert.Len(session, 2)
	assert.Equal("hi", session.Last().Text())

	session.Truncate(1)
	assert.Len(session, 1)
	assert.Equal("hello", session.Last().Text())
}

func TestResultTypeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(schema.ResultToolCall)
	assert.NoError(err)
	assert.Equal(`"tool_call"`, string(data))

	var r schema.ResultType
	assert.NoError(json.Unmarshal(data, &r))
	assert.Equal(schema.ResultToolCall, r)

	assert.Error(json.Unmarshal([]byte(`"bogus"`), &r))
}
