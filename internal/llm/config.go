// Package llm provides the Gemini client used by the chat assistant.
package llm

// Provider identifies an LLM provider.
type Provider string

// Providers.
const (
	ProviderGemini Provider = "gemini"
)

// ModelTier selects between a cheap fast model and a deeper one.
type ModelTier string

// Model tiers.
const (
	TierFast ModelTier = "fast"
	TierDeep ModelTier = "deep"
)

// Config holds provider and per-tier model selection.
type Config struct {
	Provider  Provider `json:"provider"`
	FastModel string   `json:"fast_model"`
	DeepModel string   `json:"deep_model"`
}

// DefaultConfig returns the default Gemini model configuration. The fast
// tier matches the legacy assistant's model.
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderGemini,
		FastModel: "gemini-2.5-flash-lite",
		DeepModel: "gemini-2.5-pro",
	}
}

// GetModel returns the model name for a tier.
func (c *Config) GetModel(tier ModelTier) string {
	switch tier {
	case TierDeep:
		return c.DeepModel
	default:
		return c.FastModel
	}
}
