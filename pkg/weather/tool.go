package weather

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	assistant "github.com/rxwp5657/ia-agent-demo"
	openweathermap "github.com/rxwp5657/ia-agent-demo/pkg/openweathermap"
	tool "github.com/rxwp5657/ia-agent-demo/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type currentDatetime struct{}

type forecastWeather struct {
	fetcher *Fetcher
}

type currentWeather struct {
	fetcher *Fetcher
}

// DatetimeInput is the (empty) input for the current datetime tool
type DatetimeInput struct{}

// ForecastInput is the input for the forecast weather tool
type ForecastInput struct {
	Location string `json:"location" jsonschema:"Location in 'City,CountryCode' form (ISO 3166-1 alpha-2 country suffix)"`
	EndTime  string `json:"end_time,omitempty" jsonschema:"Target time as an absolute ISO-8601 timestamp; defaults to the current time"`
}

// CurrentInput is the input for the current weather tool
type CurrentInput struct {
	Location string `json:"location" jsonschema:"Location in 'City,CountryCode' form (ISO 3166-1 alpha-2 country suffix)"`
}

var _ tool.Tool = (*currentDatetime)(nil)
var _ tool.Tool = (*forecastWeather)(nil)
var _ tool.Tool = (*currentWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Apology is the fixed user-facing message returned when forecast retrieval
// fails for any reason
const Apology = "I'm sorry, but I couldn't retrieve the weather forecasts at this time. Please try again later :(."

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather tools for use with the agent, backed by a new
// OpenWeatherMap client
func NewTools(apikey string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := openweathermap.New(apikey, opts...)
	if err != nil {
		return nil, err
	}
	return Tools(client), nil
}

// Tools returns the weather tools backed by the given provider
func Tools(provider Provider) []tool.Tool {
	fetcher := NewFetcher(provider)
	return []tool.Tool{
		&currentDatetime{},
		&forecastWeather{fetcher: fetcher},
		&currentWeather{fetcher: fetcher},
	}
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT DATETIME

func (*currentDatetime) Name() string {
	return "current_datetime"
}

func (*currentDatetime) Description() string {
	return "Get the current UTC date and time as an ISO-8601 timestamp. Use this to resolve relative time expressions like 'tomorrow' or 'in two hours'."
}

// Return the JSON schema for the tool input
func (*currentDatetime) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[DatetimeInput](nil)
}

// Run the tool with the given input
func (*currentDatetime) Run(_ context.Context, _ json.RawMessage) (any, error) {
	return Now(), nil
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST WEATHER

func (*forecastWeather) Name() string {
	return "forecast_weather"
}

func (*forecastWeather) Description() string {
	return "Get the weather forecast for a location at a target time up to 5 days ahead, including temperature, rain chance, wind, humidity and conditions."
}

// Return the JSON schema for the tool input
func (*forecastWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ForecastInput](nil)
}

// Run the tool with the given input. Provider failures are logged and
// converted into the fixed apology message; a malformed end time propagates
// to the runtime.
func (t *forecastWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastInput

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, assistant.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.Location == "" {
		return nil, assistant.ErrBadParameter.With("location is required")
	}
	if req.EndTime == "" {
		req.EndTime = Now()
	}

	report, err := t.fetcher.Fetch(ctx, req.Location, req.EndTime)
	if err != nil {
		if errors.Is(err, assistant.ErrParse) {
			return nil, err
		}
		log.Printf("forecast_weather: %v", err)
		return Apology, nil
	}

	return report.String(), nil
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func (*currentWeather) Name() string {
	return "current_weather"
}

func (*currentWeather) Description() string {
	return "Get the current weather conditions for a location, including temperature, rain, wind, humidity and conditions."
}

// Return the JSON schema for the tool input
func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CurrentInput](nil)
}

// Run the tool with the given input
func (t *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CurrentInput

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, assistant.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.Location == "" {
		return nil, assistant.ErrBadParameter.With("location is required")
	}

	report, err := t.fetcher.FetchCurrent(ctx, req.Location)
	if err != nil {
		log.Printf("current_weather: %v", err)
		return Apology, nil
	}

	return report.String(), nil
}
