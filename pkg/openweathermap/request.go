package openweathermap

import (
	"fmt"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentRequest defines the input for a current weather query
type CurrentRequest struct {
	Location string `json:"location" jsonschema:"Location in 'City,CountryCode' form (ISO 3166-1 alpha-2 country suffix)"`
}

// ForecastRequest defines the input for a 3-hour-bucket forecast query
type ForecastRequest struct {
	Location string `json:"location" jsonschema:"Location in 'City,CountryCode' form (ISO 3166-1 alpha-2 country suffix)"`
	Count    int    `json:"count,omitempty" jsonschema:"Number of consecutive 3-hour forecast entries to return"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts CurrentRequest to URL query parameters. Temperatures are
// requested in the API's native unit (Kelvin).
func (r *CurrentRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("appid", apiKey)
	result.Set("q", r.Location)
	return result
}

// Values converts ForecastRequest to URL query parameters
func (r *ForecastRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("appid", apiKey)
	result.Set("q", r.Location)
	if r.Count > 0 {
		result.Set("cnt", fmt.Sprint(r.Count))
	}
	return result
}
