/*
openweathermap implements an API client for the OpenWeatherMap API
https://openweathermap.org/api
*/
package openweathermap

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	assistant "github.com/rxwp5657/ia-agent-demo"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.openweathermap.org/data/2.5"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The API key is read once at startup; a missing key is
// a configuration error and the client is not created.
func New(ApiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if ApiKey == "" {
		return nil, assistant.ErrBadParameter.With("missing API key")
	}
	// Create client
	opts = append(opts, client.OptEndpoint(endPoint))
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    ApiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current weather conditions for a location
func (c *Client) Current(ctx context.Context, req *CurrentRequest) (Current, error) {
	var response Current

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("weather"), client.OptQuery(req.Values(c.key))); err != nil {
		return Current{}, err
	}

	return response, nil
}

// Forecast returns consecutive 3-hour forecast entries for a location,
// in chronologically ascending order (earliest first)
func (c *Client) Forecast(ctx context.Context, req *ForecastRequest) (Forecast, error) {
	var response Forecast

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values(c.key))); err != nil {
		return Forecast{}, err
	}

	return response, nil
}
