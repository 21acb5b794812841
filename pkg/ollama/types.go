package ollama

// Config holds Ollama client configuration. No API key: the daemon is
// assumed to be reachable on a trusted network.
type Config struct {
	Model   string
	BaseURL string
	Timeout string // Go duration string, e.g. "60s"
}

// Request is an Ollama /api/chat request. Stream is always false here;
// the recognizer wants one complete JSON reply, not a token stream.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Options  *Options  `json:"options,omitempty"`
}

// Options carries sampling parameters
type Options struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// Message is one chat message
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Response is an Ollama /api/chat response (non-streaming)
type Response struct {
	Model           string  `json:"model"`
	Message         Message `json:"message"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

// ErrorResponse is the error body the daemon returns on failure
type ErrorResponse struct {
	Error string `json:"error"`
}
