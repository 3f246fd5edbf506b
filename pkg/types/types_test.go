package types_test

import (
	"testing"

	// Packages
	types "github.com/rxwp5657/ia-agent-demo/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	assert := assert.New(t)
	v := types.Ptr("hello")
	assert.NotNil(v)
	assert.Equal("hello", *v)
}

func TestStringify(t *testing.T) {
	assert := assert.New(t)
	assert.JSONEq(`{"Name":"test"}`, types.Stringify(struct{ Name string }{Name: "test"}))
}

func TestIsIdentifier(t *testing.T) {
	assert := assert.New(t)
	assert.True(types.IsIdentifier("forecast_weather"))
	assert.True(types.IsIdentifier("_private"))
	assert.True(types.IsIdentifier("tool2"))
	assert.False(types.IsIdentifier(""))
	assert.False(types.IsIdentifier("2tool"))
	assert.False(types.IsIdentifier("has space"))
	assert.False(types.IsIdentifier("has-dash"))
}
