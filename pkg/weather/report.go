package weather

import (
	"fmt"

	// Packages
	openweathermap "github.com/rxwp5657/ia-agent-demo/pkg/openweathermap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Report is a formatted weather snapshot for one location and display time.
// Temperatures are in Celsius; RainChance is a percentage.
type Report struct {
	Location       string
	Time           string
	Temperature    float64
	MinTemperature float64
	MaxTemperature float64
	FeelsLike      float64
	RainChance     float64
	WindSpeed      float64
	WindDirection  int
	Humidity       int
	Status         string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewReport converts one forecast entry into a report for the given location
// and display time. Temperatures are converted from Kelvin to Celsius and the
// rain fraction to a percentage.
func NewReport(location, displayTime string, entry openweathermap.Entry) *Report {
	return &Report{
		Location:       location,
		Time:           displayTime,
		Temperature:    KelvinToCelsius(entry.Main.Temp),
		MinTemperature: KelvinToCelsius(entry.Main.TempMin),
		MaxTemperature: KelvinToCelsius(entry.Main.TempMax),
		FeelsLike:      KelvinToCelsius(entry.Main.FeelsLike),
		RainChance:     entry.RainFraction() * 100,
		WindSpeed:      entry.Wind.Speed,
		WindDirection:  entry.Wind.Deg,
		Humidity:       entry.Main.Humidity,
		Status:         entry.Status(),
	}
}

// NewCurrentReport converts a current weather observation into a report
func NewCurrentReport(location string, current openweathermap.Current) *Report {
	return &Report{
		Location:       location,
		Time:           current.Time().Format(iso8601),
		Temperature:    KelvinToCelsius(current.Main.Temp),
		MinTemperature: KelvinToCelsius(current.Main.TempMin),
		MaxTemperature: KelvinToCelsius(current.Main.TempMax),
		FeelsLike:      KelvinToCelsius(current.Main.FeelsLike),
		RainChance:     current.RainFraction() * 100,
		WindSpeed:      current.Wind.Speed,
		WindDirection:  current.Wind.Deg,
		Humidity:       current.Main.Humidity,
		Status:         current.Status(),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// KelvinToCelsius converts a temperature from Kelvin to Celsius
func KelvinToCelsius(kelvin float64) float64 {
	return kelvin - 273.15
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

// String renders the fixed multi-line report. Temperatures carry exactly two
// decimal places; the remaining numeric fields pass through unformatted.
func (r *Report) String() string {
	return fmt.Sprintf(
		"Weather report for %s at %s:\n"+
			"- Temperature: %.2f°C\n"+
			"- Minimum temperature: %.2f°C\n"+
			"- Maximum temperature: %.2f°C\n"+
			"- Feels like: %.2f°C\n"+
			"- Rain: %v%% chance\n"+
			"- Wind: %v m/s, direction: %v°\n"+
			"- Humidity: %v%%\n"+
			"- Status: %s",
		r.Location, r.Time,
		r.Temperature, r.MinTemperature, r.MaxTemperature, r.FeelsLike,
		r.RainChance, r.WindSpeed, r.WindDirection, r.Humidity, r.Status,
	)
}
