package ollama

import (
	"context"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// model represents the API response for a model from ollama
type model struct {
	Name       string       `json:"name"`
	Model      string       `json:"model,omitempty"`
	ModifiedAt time.Time    `json:"modified_at"`
	Size       int64        `json:"size,omitempty"`
	Digest     string       `json:"digest,omitempty"`
	Details    ModelDetails `json:"details"`
}

// ModelDetails are the details of the model
type ModelDetails struct {
	ParentModel       string   `json:"parent_model,omitempty"`
	Format            string   `json:"format"`
	Family            string   `json:"family"`
	Families          []string `json:"families"`
	ParameterSize     string   `json:"parameter_size"`
	QuantizationLevel string   `json:"quantization_level"`
}

// listModelsResponse represents the API response for listing models
type listModelsResponse struct {
	Data []model `json:"models"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List all models available on the ollama instance
func (ollama *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	// Send the request
	var response listModelsResponse
	if err := ollama.DoWithContext(ctx, nil, &response, client.OptPath("tags")); err != nil {
		return nil, err
	}

	result := make([]schema.Model, len(response.Data))
	for i, m := range response.Data {
		result[i] = m.toSchema()
	}

	// Return models
	return result, nil
}

// GetModel returns the model with the given name
func (ollama *Client) GetModel(ctx context.Context, name string) (*schema.Model, error) {
	var response model
	req, err := client.NewJSONRequest(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	if err := ollama.DoWithContext(ctx, req, &response, client.OptPath("show")); err != nil {
		return nil, err
	}

	result := response.toSchema()
	// The show endpoint doesn't return the name, so set it from the request
	if result.Name == "" {
		result.Name = name
	}
	return &result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toSchema converts an API model response to schema.Model
func (m model) toSchema() schema.Model {
	return schema.Model{
		Name:        m.Name,
		Description: m.Model,
		Created:     m.ModifiedAt,
		OwnedBy:     defaultName,
	}
}
