// Package llm provides the client abstraction over the locally hosted
// language-model inference endpoint.
package llm

// DefaultBaseURL is the default address of a local Ollama server.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModel is the model used when none is configured.
const DefaultModel = "phi3"

// Config holds the model configuration for the application.
type Config struct {
	BaseURL string
	Model   string
}

// DefaultConfig returns the default local-endpoint configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
	}
}

// WithModel returns a copy of the config with a different model selected.
func (c *Config) WithModel(model string) *Config {
	return &Config{
		BaseURL: c.BaseURL,
		Model:   model,
	}
}
