/*
agent wires language model clients and tools together into a conversational
assistant, running the tool-calling loop until the model produces a final
answer.
*/
package agent

import (
	"context"
	"sort"
	"strings"
	"sync"

	// Packages
	uuid "github.com/google/uuid"
	assistant "github.com/rxwp5657/ia-agent-demo"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	tool "github.com/rxwp5657/ia-agent-demo/pkg/tool"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Manager struct {
	clients       map[string]assistant.Client
	toolkit       *tool.Toolkit
	systemprompt  string
	maxIterations uint

	mu       sync.RWMutex
	sessions map[string]*schema.Session
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultMaxIterations bounds the tool-calling loop for a single turn
const DefaultMaxIterations = 10

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewManager(opts ...Opt) (*Manager, error) {
	// Create the manager
	m := new(Manager)
	m.clients = make(map[string]assistant.Client)
	m.sessions = make(map[string]*schema.Session)
	m.maxIterations = DefaultMaxIterations

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// At least one client is needed to generate anything
	if len(m.clients) == 0 {
		return nil, assistant.ErrBadParameter.With("no clients configured")
	}

	// Default to empty toolkit if none was provided
	if m.toolkit == nil {
		m.toolkit, _ = tool.NewToolkit()
	}

	// Return success
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewConversation creates an empty conversation and returns its identifier
func (m *Manager) NewConversation() string {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = new(schema.Session)
	return id
}

// Conversation returns the session for the given identifier, or nil when
// the conversation does not exist
func (m *Manager) Conversation(id string) *schema.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Toolkit returns the toolkit used for generation
func (m *Manager) Toolkit() *tool.Toolkit {
	return m.toolkit
}

// ListModels returns the models of all configured clients, sorted by name
func (m *Manager) ListModels(ctx context.Context) ([]schema.Model, error) {
	var mu sync.Mutex
	var result []schema.Model

	g, ctx := errgroup.WithContext(ctx)
	for _, client := range m.clients {
		g.Go(func() error {
			models, err := client.ListModels(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			result = append(result, models...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// getModel resolves a model by name, optionally qualified by provider. When
// the provider is empty, all clients are searched in parallel.
func (m *Manager) getModel(ctx context.Context, provider, model string) (*schema.Model, error) {
	if provider := strings.TrimSpace(provider); provider == "" {
		// Search all clients for the model in parallel
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		var mu sync.Mutex
		var result *schema.Model

		g, ctx := errgroup.WithContext(ctx)
		for _, client := range m.clients {
			g.Go(func() error {
				models, err := client.ListModels(ctx)
				if err != nil {
					return nil // Swallow per-provider errors
				}

				mu.Lock()
				defer mu.Unlock()
				if result != nil {
					return nil // Already found
				}
				for _, m := range models {
					if m.Name == model {
						result = &m
						cancel()
						return nil
					}
				}
				return nil
			})
		}
		g.Wait()

		if result != nil {
			return result, nil
		}
		return nil, assistant.ErrNotFound.Withf("model %q not found in any provider", model)
	} else if client, ok := m.clients[provider]; !ok {
		return nil, assistant.ErrNotFound.Withf("no client found for provider %q", provider)
	} else {
		return client.GetModel(ctx, model)
	}
}

// generatorForModel returns the generator client which owns the model
func (m *Manager) generatorForModel(model *schema.Model) (assistant.Generator, error) {
	client, ok := m.clients[model.OwnedBy]
	if !ok {
		return nil, assistant.ErrNotFound.Withf("no provider found for model %q", model.Name)
	}
	generator, ok := client.(assistant.Generator)
	if !ok {
		return nil, assistant.ErrInternalServerError.Withf("provider %q does not support messaging", client.Name())
	}
	return generator, nil
}
