package agent

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	assistant "github.com/rxwp5657/ia-agent-demo"
	ollama "github.com/rxwp5657/ia-agent-demo/pkg/ollama"
	tool "github.com/rxwp5657/ia-agent-demo/pkg/tool"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt configures a manager
type Opt func(*Manager) error

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithOllama adds an ollama client with the given endpoint
func WithOllama(endpoint string, opts ...client.ClientOpt) Opt {
	return func(m *Manager) error {
		client, err := ollama.New(endpoint, opts...)
		if err != nil {
			return err
		}
		return m.withClient(client)
	}
}

// WithClient adds a client to the manager
func WithClient(client assistant.Client) Opt {
	return func(m *Manager) error {
		return m.withClient(client)
	}
}

// WithTools registers tools for use during generation
func WithTools(tools ...tool.Tool) Opt {
	return func(m *Manager) error {
		if m.toolkit == nil {
			toolkit, err := tool.NewToolkit()
			if err != nil {
				return err
			}
			m.toolkit = toolkit
		}
		return m.toolkit.Register(tools...)
	}
}

// WithToolkit sets the toolkit used during generation
func WithToolkit(toolkit *tool.Toolkit) Opt {
	return func(m *Manager) error {
		if toolkit == nil {
			return assistant.ErrBadParameter.With("toolkit")
		}
		m.toolkit = toolkit
		return nil
	}
}

// WithSystemPrompt sets the system prompt for all conversations
func WithSystemPrompt(prompt string) Opt {
	return func(m *Manager) error {
		m.systemprompt = prompt
		return nil
	}
}

// WithMaxIterations bounds the tool-calling loop for a single turn
func WithMaxIterations(n uint) Opt {
	return func(m *Manager) error {
		if n == 0 {
			return assistant.ErrBadParameter.With("max iterations")
		}
		m.maxIterations = n
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *Manager) withClient(client assistant.Client) error {
	// Check parameters
	if client == nil || m.clients == nil {
		return assistant.ErrBadParameter.With("client")
	}

	// Add client
	name := client.Name()
	if _, exists := m.clients[name]; exists {
		return assistant.ErrConflict.Withf("client %q already exists", name)
	}
	m.clients[name] = client

	// Return success
	return nil
}
