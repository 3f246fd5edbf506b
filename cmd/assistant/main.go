package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	agent "github.com/rxwp5657/ia-agent-demo/pkg/agent"
	weather "github.com/rxwp5657/ia-agent-demo/pkg/weather"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config string `name:"config" help:"Path to YAML configuration file" optional:""`
	Model  string `name:"model" help:"Model name" default:"qwen2.5:7b-instruct"`

	// Providers
	Ollama         `embed:"" help:"Ollama configuration"`
	OpenWeatherMap `embed:"" help:"OpenWeatherMap configuration"`

	// Context
	ctx     context.Context
	manager *agent.Manager
}

type Ollama struct {
	OllamaEndpoint string `env:"OLLAMA_URL" default:"http://localhost:11434/api" help:"Ollama endpoint"`
}

type OpenWeatherMap struct {
	OpenWeatherMapKey string `env:"OPENWEATHERMAP_API_KEY" help:"OpenWeatherMap API Key"`
}

type CLI struct {
	Globals

	// Commands
	Chat   ChatCmd       `cmd:"" default:"1" help:"Start an interactive chat session"`
	Ask    AskCmd        `cmd:"" help:"Ask a single question"`
	Models ListModelsCmd `cmd:"" help:"Return a list of models"`
	Tools  ListToolsCmd  `cmd:"" help:"Return a list of tools"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load environment from .env when present
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Conversational weather assistant which tells you whether to go outside"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Apply configuration file overrides
	if cli.Config != "" {
		if err := applyConfig(cli.Config, &cli.Globals); err != nil {
			cmd.FatalIfErrorf(err)
			return
		}
	}

	// The weather tools cannot work without an API key
	if cli.OpenWeatherMapKey == "" {
		cmd.Fatalf("OPENWEATHERMAP_API_KEY is required")
		return
	}

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Create the weather tools
	tools, err := weather.NewTools(cli.OpenWeatherMapKey, clientopts...)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}

	// Create the manager
	manager, err := agent.NewManager(
		agent.WithOllama(cli.OllamaEndpoint, clientopts...),
		agent.WithTools(tools...),
		agent.WithSystemPrompt(systemPrompt),
	)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.manager = manager

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
