package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	// Packages
	assistant "github.com/rxwp5657/ia-agent-demo"
	openweathermap "github.com/rxwp5657/ia-agent-demo/pkg/openweathermap"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// FAKE PROVIDER

type fakeProvider struct {
	forecast    openweathermap.Forecast
	current     openweathermap.Current
	err         error
	forecastReq *openweathermap.ForecastRequest
	currentReq  *openweathermap.CurrentRequest
}

func (f *fakeProvider) Forecast(_ context.Context, req *openweathermap.ForecastRequest) (openweathermap.Forecast, error) {
	f.forecastReq = req
	return f.forecast, f.err
}

func (f *fakeProvider) Current(_ context.Context, req *openweathermap.CurrentRequest) (openweathermap.Current, error) {
	f.currentReq = req
	return f.current, f.err
}

func entryWithTemp(temp float64) openweathermap.Entry {
	return openweathermap.Entry{
		Main: openweathermap.Main{
			Temp:      temp,
			TempMin:   temp - 1,
			TempMax:   temp + 1,
			FeelsLike: temp,
			Humidity:  70,
		},
		Weather: []openweathermap.Condition{{Main: "Clouds", Description: "scattered clouds"}},
		Wind:    openweathermap.Wind{Speed: 3.5, Deg: 180},
	}
}

func fetcherAt(provider Provider, now time.Time) *Fetcher {
	fetcher := NewFetcher(provider)
	fetcher.now = func() time.Time { return now }
	return fetcher
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestFetchSelectsLastEntry(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Three entries; only the last should feed the report
	provider := &fakeProvider{
		forecast: openweathermap.Forecast{
			Count: 3,
			List: []openweathermap.Entry{
				entryWithTemp(280.15),
				entryWithTemp(285.15),
				entryWithTemp(290.15),
			},
		},
	}

	fetcher := fetcherAt(provider, now)
	report, err := fetcher.Fetch(context.Background(), "Berlin,DE", "2025-06-01T20:00:00+00:00")
	assert.NoError(err)
	assert.InDelta(17.0, report.Temperature, 1e-9)

	// Eight hours ahead is a three-bucket window
	assert.NotNil(provider.forecastReq)
	assert.Equal(3, provider.forecastReq.Count)
	assert.Equal("Berlin,DE", provider.forecastReq.Location)
}

func TestFetchProviderError(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	provider := &fakeProvider{err: errors.New("city not found")}
	fetcher := fetcherAt(provider, now)

	_, err := fetcher.Fetch(context.Background(), "Nowhere,XX", "2025-06-01T15:00:00+00:00")
	assert.ErrorIs(err, assistant.ErrProvider)
	assert.Contains(err.Error(), "city not found")
}

func TestFetchEmptyWindow(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	provider := &fakeProvider{}
	fetcher := fetcherAt(provider, now)

	_, err := fetcher.Fetch(context.Background(), "Berlin,DE", "2025-06-01T15:00:00+00:00")
	assert.ErrorIs(err, assistant.ErrProvider)
}

func TestFetchPastTarget(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	provider := &fakeProvider{}
	fetcher := fetcherAt(provider, now)

	// A target far enough in the past yields a zero-bucket window; the
	// provider is never called
	_, err := fetcher.Fetch(context.Background(), "Berlin,DE", "2025-05-31T12:00:00+00:00")
	assert.ErrorIs(err, assistant.ErrProvider)
	assert.Nil(provider.forecastReq)
}

func TestFetchParseError(t *testing.T) {
	assert := assert.New(t)

	provider := &fakeProvider{}
	fetcher := NewFetcher(provider)

	_, err := fetcher.Fetch(context.Background(), "Berlin,DE", "next tuesday")
	assert.ErrorIs(err, assistant.ErrParse)
	assert.NotErrorIs(err, assistant.ErrProvider)
}

func TestFetchCurrent(t *testing.T) {
	assert := assert.New(t)

	provider := &fakeProvider{
		current: openweathermap.Current{
			Name:      "Berlin",
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Unix(),
			Main:      openweathermap.Main{Temp: 293.15, TempMin: 292.15, TempMax: 294.15, FeelsLike: 293.15, Humidity: 60},
			Weather:   []openweathermap.Condition{{Main: "Clear", Description: "clear sky"}},
			Wind:      openweathermap.Wind{Speed: 2.1, Deg: 90},
		},
	}

	fetcher := NewFetcher(provider)
	report, err := fetcher.FetchCurrent(context.Background(), "Berlin,DE")
	assert.NoError(err)
	assert.InDelta(20.0, report.Temperature, 1e-9)
	assert.Equal("clear sky", report.Status)
	assert.Equal("Berlin,DE", provider.currentReq.Location)
}
