package claude

import "time"

const (
	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "claude-3-5-haiku-latest"

	// APIVersion is the required anthropic-version header value
	APIVersion = "2023-06-01"

	// DefaultMaxTokens applies when the request does not set one;
	// the messages API rejects requests without it
	DefaultMaxTokens = 1024

	// DefaultTimeout bounds a single messages call
	DefaultTimeout = 30 * time.Second
)
