package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a client or generation request
type Opt func(*Options) error

// Options is a set of applied options. Scalar options are stored as url.Values
// so they can double as query parameters; arbitrary values (toolkits, stream
// callbacks) are stored in a separate map.
type Options struct {
	url.Values
	values map[string]any
}

// StreamFn is called with incremental text as it arrives from the model.
// The role is "assistant" for response text.
type StreamFn func(role, text string)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys
const (
	SystemPromptKey = "system_prompt"
	TemperatureKey  = "temperature"
	MaxTokensKey    = "max_tokens"
	ToolkitKey      = "toolkit"
	StreamKey       = "stream"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*Options, error) {
	opts := &Options{Values: make(url.Values), values: make(map[string]any)}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns an arbitrary value for key, or nil if not set
func (o *Options) Get(key string) any {
	return o.values[key]
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Options) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Options) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// Has returns true if the key exists
func (o *Options) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.values[key]
	return ok
}

// GetStream returns the stream callback, or nil when streaming is not requested
func (o *Options) GetStream() StreamFn {
	if fn, ok := o.values[StreamKey].(StreamFn); ok {
		return fn
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString sets a scalar string option
func SetString(key, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// SetFloat64 sets a scalar float option
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetUint sets a scalar unsigned integer option
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, fmt.Sprintf("%d", value))
		return nil
	}
}

// SetAny sets an arbitrary value option
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		o.values[key] = value
		return nil
	}
}

// WithSystemPrompt sets the system prompt for a generation request
func WithSystemPrompt(value string) Opt {
	return SetString(SystemPromptKey, value)
}

// WithTemperature sets the sampling temperature for a generation request
func WithTemperature(value float64) Opt {
	return SetFloat64(TemperatureKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate
func WithMaxTokens(value uint) Opt {
	return SetUint(MaxTokensKey, value)
}

// WithStream sets a callback which receives incremental response text
func WithStream(fn StreamFn) Opt {
	return SetAny(StreamKey, fn)
}
