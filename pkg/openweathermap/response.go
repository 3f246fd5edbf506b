package openweathermap

import (
	"time"

	// Packages
	types "github.com/rxwp5657/ia-agent-demo/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TYPES

// Forecast is the response to a forecast query: consecutive 3-hour buckets
// for a location
type Forecast struct {
	Count int     `json:"cnt"`
	List  []Entry `json:"list"`
	City  City    `json:"city"`
}

// Entry is one 3-hour-bucket weather snapshot. Temperatures are in the API's
// native unit (Kelvin).
type Entry struct {
	Timestamp int64       `json:"dt"` // Unix UTC
	Main      Main        `json:"main"`
	Weather   []Condition `json:"weather"`
	Wind      Wind        `json:"wind"`
	Rain      *Rain       `json:"rain,omitempty"`
}

// Main holds the temperature and humidity fields of a snapshot
type Main struct {
	Temp      float64 `json:"temp"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// Condition is a textual weather status
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Wind is a wind vector: speed plus direction in meteorological degrees
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// Rain holds the rain fraction of a snapshot. Forecast entries report it
// under "3h"; the current weather endpoint reports it under "1h", with "3h"
// also possible. The field is omitted by the API when there is no rain.
type Rain struct {
	OneHour   float64 `json:"1h,omitempty"`
	ThreeHour float64 `json:"3h,omitempty"`
}

// City identifies the resolved location of a forecast
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Current is the response to a current weather query
type Current struct {
	Name      string      `json:"name"`
	Timestamp int64       `json:"dt"`
	Main      Main        `json:"main"`
	Weather   []Condition `json:"weather"`
	Wind      Wind        `json:"wind"`
	Rain      *Rain       `json:"rain,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Time returns the reference time of the entry, in UTC
func (e Entry) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// Status returns the textual weather description of the entry, or empty
// when the API supplied none
func (e Entry) Status() string {
	if len(e.Weather) == 0 {
		return ""
	}
	return e.Weather[0].Description
}

// RainFraction returns the rain fraction for the 3-hour bucket, in the range
// 0.0 to 1.0, defaulting to 0.0 when the field is absent
func (e Entry) RainFraction() float64 {
	if e.Rain == nil {
		return 0
	}
	return e.Rain.ThreeHour
}

// Time returns the reference time of the observation, in UTC
func (c Current) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

// Status returns the textual weather description of the observation
func (c Current) Status() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Description
}

// RainFraction returns the rain fraction for the observation, preferring the
// one-hour value and falling back to the three-hour one, defaulting to 0.0
// when the field is absent
func (c Current) RainFraction() float64 {
	if c.Rain == nil {
		return 0
	}
	if c.Rain.OneHour > 0 {
		return c.Rain.OneHour
	}
	return c.Rain.ThreeHour
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Forecast) String() string {
	return types.Stringify(f)
}

func (c Current) String() string {
	return types.Stringify(c)
}
