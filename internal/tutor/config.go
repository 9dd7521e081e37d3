package tutor

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// SimpleLanguage asks for the plainest possible wording, for
	// learners on the simplified content variant.
	SimpleLanguage bool
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.7,
	}
}
