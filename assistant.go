/*
assistant is a conversational weather assistant which decides whether you
should go outside or stay indoors, by calling weather-forecast tools and
reasoning over the result with a language model.
*/
package assistant

import (
	"context"

	// Packages
	opt "github.com/rxwp5657/ia-agent-demo/pkg/opt"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps basic LLM client methods
type Client interface {
	// Return the provider name
	Name() string

	// ListModels returns the list of available models
	ListModels(ctx context.Context) ([]schema.Model, error)

	// GetModel returns the model with the given name
	GetModel(ctx context.Context, name string) (*schema.Model, error)
}

// Generator is an interface for conducting conversations with a model
type Generator interface {
	// WithoutSession sends a single message and returns the response (stateless)
	WithoutSession(ctx context.Context, model schema.Model, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)

	// WithSession sends a message within a session and returns the response (stateful)
	WithSession(ctx context.Context, model schema.Model, session *schema.Session, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)
}
