package llmprovider

import (
	"context"

	"smart-planner/pkg/claude"
	"smart-planner/pkg/ollama"
	"smart-planner/pkg/openai"
)

// flattenText joins the text parts of a normalized message into one string.
func flattenText(m Message) string {
	out := ""
	for _, p := range m.Parts {
		out += p.Text
	}
	return out
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

var _ Provider = (*OpenAIAdapter)(nil)

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		openaiReq.Messages = append(openaiReq.Messages, openai.Message{
			Role:    "system",
			Content: flattenText(*req.SystemInstruction),
		})
	}
	for _, m := range req.Messages {
		openaiReq.Messages = append(openaiReq.Messages, openai.Message{
			Role:    m.Role,
			Content: flattenText(m),
		})
	}

	resp, err := a.client.ChatCompletion(ctx, openaiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	choice := resp.Choices[0]
	return &Response{
		Content: Message{
			Role:  choice.Message.Role,
			Parts: []Part{{Text: choice.Message.Content}},
		},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name implements Provider interface
func (a *OpenAIAdapter) Name() string { return "openai" }

// Model implements Provider interface
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// ClaudeAdapter adapts pkg/claude to llmprovider.Provider interface
type ClaudeAdapter struct {
	client claude.IClaude
}

var _ Provider = (*ClaudeAdapter)(nil)

// NewClaudeAdapter creates a new Claude adapter
func NewClaudeAdapter(client claude.IClaude) *ClaudeAdapter {
	return &ClaudeAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ClaudeAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	claudeReq := &claude.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// The messages API takes system text as a dedicated field.
	if req.SystemInstruction != nil {
		claudeReq.System = flattenText(*req.SystemInstruction)
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "system" {
			// Claude rejects system roles inside the message list.
			claudeReq.System += "\n" + flattenText(m)
			continue
		}
		claudeReq.Messages = append(claudeReq.Messages, claude.Message{
			Role:    role,
			Content: flattenText(m),
		})
	}

	resp, err := a.client.CreateMessage(ctx, claudeReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	text := resp.Text()
	if text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: text}},
		},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// Name implements Provider interface
func (a *ClaudeAdapter) Name() string { return "claude" }

// Model implements Provider interface
func (a *ClaudeAdapter) Model() string { return a.client.Model() }

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

var _ Provider = (*OllamaAdapter)(nil)

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.Request{}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		ollamaReq.Options = &ollama.Options{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		}
	}

	if req.SystemInstruction != nil {
		ollamaReq.Messages = append(ollamaReq.Messages, ollama.Message{
			Role:    "system",
			Content: flattenText(*req.SystemInstruction),
		})
	}
	for _, m := range req.Messages {
		ollamaReq.Messages = append(ollamaReq.Messages, ollama.Message{
			Role:    m.Role,
			Content: flattenText(m),
		})
	}

	resp, err := a.client.Chat(ctx, ollamaReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	if resp.Message.Content == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: resp.Message.Content}},
		},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name implements Provider interface
func (a *OllamaAdapter) Name() string { return "ollama" }

// Model implements Provider interface
func (a *OllamaAdapter) Model() string { return a.client.Model() }
