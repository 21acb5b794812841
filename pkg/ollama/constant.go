package ollama

import "time"

const (
	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model to use
	DefaultModel = "qwen2.5:7b"

	// DefaultTimeout bounds a single chat call; local inference can be slow
	DefaultTimeout = 60 * time.Second
)
