package main

import (
	"os"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config mirrors the global flags which can be stored in a YAML file.
// File values take precedence over environment variables and defaults.
type Config struct {
	Model             string `yaml:"model,omitempty"`
	OllamaEndpoint    string `yaml:"ollama_endpoint,omitempty"`
	OpenWeatherMapKey string `yaml:"openweathermap_api_key,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// applyConfig reads a YAML configuration file and overrides the globals with
// any values it sets
func applyConfig(path string, globals *Globals) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	if config.Model != "" {
		globals.Model = config.Model
	}
	if config.OllamaEndpoint != "" {
		globals.OllamaEndpoint = config.OllamaEndpoint
	}
	if config.OpenWeatherMapKey != "" {
		globals.OpenWeatherMapKey = config.OpenWeatherMapKey
	}

	return nil
}
