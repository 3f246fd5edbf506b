package openweathermap_test

import (
	"encoding/json"
	"testing"

	// Packages
	openweathermap "github.com/rxwp5657/ia-agent-demo/pkg/openweathermap"
	assert "github.com/stretchr/testify/assert"
)

func TestForecastRequestValues(t *testing.T) {
	assert := assert.New(t)

	req := openweathermap.ForecastRequest{Location: "Mexico City,MX", Count: 5}
	values := req.Values("test-api-key")
	assert.Equal("test-api-key", values.Get("appid"))
	assert.Equal("Mexico City,MX", values.Get("q"))
	assert.Equal("5", values.Get("cnt"))

	// A zero count is omitted so the API returns its default window
	req = openweathermap.ForecastRequest{Location: "Berlin,DE"}
	values = req.Values("test-api-key")
	assert.Empty(values.Get("cnt"))
}

func TestCurrentRequestValues(t *testing.T) {
	assert := assert.New(t)

	req := openweathermap.CurrentRequest{Location: "Berlin,DE"}
	values := req.Values("test-api-key")
	assert.Equal("test-api-key", values.Get("appid"))
	assert.Equal("Berlin,DE", values.Get("q"))
}

func TestForecastUnmarshal(t *testing.T) {
	assert := assert.New(t)

	data := `{
		"cnt": 2,
		"list": [
			{
				"dt": 1748779200,
				"main": {"temp": 291.3, "temp_min": 290.1, "temp_max": 292.4, "feels_like": 290.9, "humidity": 72},
				"weather": [{"main": "Clouds", "description": "overcast clouds"}],
				"wind": {"speed": 4.2, "deg": 210}
			},
			{
				"dt": 1748790000,
				"main": {"temp": 289.7, "temp_min": 288.9, "temp_max": 290.2, "feels_like": 289.1, "humidity": 85},
				"weather": [{"main": "Rain", "description": "light rain"}],
				"wind": {"speed": 6.1, "deg": 240},
				"rain": {"3h": 0.4}
			}
		],
		"city": {"name": "Berlin", "country": "DE"}
	}`

	var forecast openweathermap.Forecast
	assert.NoError(json.Unmarshal([]byte(data), &forecast))
	assert.Equal(2, forecast.Count)
	assert.Len(forecast.List, 2)
	assert.Equal("Berlin", forecast.City.Name)

	// First entry has no rain field, so the fraction defaults to zero
	first := forecast.List[0]
	assert.Equal("overcast clouds", first.Status())
	assert.Equal(0.0, first.RainFraction())
	assert.Equal(int64(1748779200), first.Time().Unix())

	// Second entry carries a 3h rain fraction
	second := forecast.List[1]
	assert.Equal("light rain", second.Status())
	assert.Equal(0.4, second.RainFraction())
	assert.Equal(72, first.Main.Humidity)
}

func TestCurrentUnmarshal(t *testing.T) {
	assert := assert.New(t)

	// The current weather endpoint reports rain under "1h"
	data := `{
		"name": "Berlin",
		"dt": 1748779200,
		"main": {"temp": 289.7, "temp_min": 288.9, "temp_max": 290.2, "feels_like": 289.1, "humidity": 85},
		"weather": [{"main": "Rain", "description": "moderate rain"}],
		"wind": {"speed": 6.1, "deg": 240},
		"rain": {"1h": 0.5}
	}`

	var current openweathermap.Current
	assert.NoError(json.Unmarshal([]byte(data), &current))
	assert.Equal("Berlin", current.Name)
	assert.Equal("moderate rain", current.Status())
	assert.Equal(0.5, current.RainFraction())
	assert.Equal(int64(1748779200), current.Time().Unix())
}

func TestCurrentRainFallback(t *testing.T) {
	assert := assert.New(t)

	// Without a 1h value the 3h one is used
	current := openweathermap.Current{Rain: &openweathermap.Rain{ThreeHour: 0.3}}
	assert.Equal(0.3, current.RainFraction())

	// The 1h value wins when both are present
	current.Rain.OneHour = 0.6
	assert.Equal(0.6, current.RainFraction())

	current.Rain = nil
	assert.Equal(0.0, current.RainFraction())
}

func TestEntryStatusEmpty(t *testing.T) {
	assert := assert.New(t)

	var entry openweathermap.Entry
	assert.Equal("", entry.Status())
	assert.Equal(0.0, entry.RainFraction())
}
