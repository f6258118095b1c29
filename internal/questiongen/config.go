package questiongen

import "time"

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds a single generation call. Zero leaves the caller's
	// context in charge.
	Timeout time.Duration
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.9,
		Timeout:     30 * time.Second,
	}
}
