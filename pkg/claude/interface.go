package claude

import "context"

// IClaude defines the interface for the Claude messages client
type IClaude interface {
	CreateMessage(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
