package weather

import (
	"context"
	"time"

	// Packages
	assistant "github.com/rxwp5657/ia-agent-demo"
	openweathermap "github.com/rxwp5657/ia-agent-demo/pkg/openweathermap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Provider is the weather API surface the fetcher depends on. The concrete
// client is constructed once at startup and shared read-only; tests
// substitute a fake.
type Provider interface {
	// Forecast returns consecutive 3-hour forecast entries, earliest first
	Forecast(ctx context.Context, req *openweathermap.ForecastRequest) (openweathermap.Forecast, error)

	// Current returns the current weather conditions
	Current(ctx context.Context, req *openweathermap.CurrentRequest) (openweathermap.Current, error)
}

// Fetcher retrieves the forecast window for a target time and selects the
// representative entry
type Fetcher struct {
	provider Provider
	now      func() time.Time
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFetcher creates a fetcher backed by the given provider
func NewFetcher(provider Provider) *Fetcher {
	return &Fetcher{
		provider: provider,
		now:      time.Now,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Fetch retrieves the forecast window for the location and target time, and
// returns the report for the entry closest to the target. A malformed target
// time returns ErrParse; every other failure (network, empty window, bad
// location) returns ErrProvider. The caller decides how failures are
// presented.
func (f *Fetcher) Fetch(ctx context.Context, location, endTime string) (*Report, error) {
	// Number of 3-hour buckets between now and the target
	count, err := windows(endTime, f.now())
	if err != nil {
		return nil, err
	}

	// A window of zero buckets means the target is in the past; there are no
	// entries to select from
	if count == 0 {
		return nil, assistant.ErrProvider.Withf("no forecast window for target time %q", endTime)
	}

	// Request exactly count consecutive entries, ascending
	forecast, err := f.provider.Forecast(ctx, &openweathermap.ForecastRequest{
		Location: location,
		Count:    count,
	})
	if err != nil {
		return nil, assistant.ErrProvider.Withf("fetching forecast for %q: %v", location, err)
	}
	if len(forecast.List) == 0 {
		return nil, assistant.ErrProvider.Withf("no forecast entries returned for %q", location)
	}

	// The last entry of the window is the one closest to, but not exceeding,
	// the target time at 3-hour granularity
	entry := forecast.List[len(forecast.List)-1]
	return NewReport(location, endTime, entry), nil
}

// FetchCurrent retrieves the current conditions for the location
func (f *Fetcher) FetchCurrent(ctx context.Context, location string) (*Report, error) {
	current, err := f.provider.Current(ctx, &openweathermap.CurrentRequest{
		Location: location,
	})
	if err != nil {
		return nil, assistant.ErrProvider.Withf("fetching current weather for %q: %v", location, err)
	}
	return NewCurrentReport(location, current), nil
}
