package schema

import (
	"time"

	// Packages
	types "github.com/rxwp5657/ia-agent-demo/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Represents an LLM model
type Model struct {
	Name        string
	Description string
	Created     time.Time `json:",omitzero"`
	OwnedBy     string
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return types.Stringify(m)
}
