package recognizer

import "smart-planner/internal/model"

// Message is one turn of conversation history.
type Message struct {
	Role     model.Role     `json:"role"`
	Content  string         `json:"content"`
	Intent   model.Intent   `json:"intent,omitempty"`
	Entities model.Entities `json:"entities,omitempty"`
}

// CurrentState tracks what the conversation has settled on so far.
type CurrentState struct {
	ActiveIntent      model.Intent   `json:"activeIntent,omitempty"`
	CollectedEntities model.Entities `json:"collectedEntities"`
	PendingAction     model.Action   `json:"pendingAction,omitempty"`
	PlanDomain        model.Domain   `json:"planDomain,omitempty"`
}

// ConversationContext is the per-session memory owned by the Recognizer.
// It is created on the first turn, mutated every turn, and cleared only by
// an explicit reset.
type ConversationContext struct {
	SessionID string    `json:"sessionId"`
	History   []Message `json:"history"`
	State     CurrentState
}

// wireResult is the loosely-typed shape the remote classifier replies with.
// Normalization turns it into a model.IntentResult.
type wireResult struct {
	Intent                string         `json:"intent"`
	Action                string         `json:"action"`
	Confidence            any            `json:"confidence"`
	Entities              map[string]any `json:"entities"`
	SubIntents            []string       `json:"subIntents"`
	NeedsClarification    bool           `json:"needsClarification"`
	ClarificationQuestion string         `json:"clarificationQuestion"`
	SuggestedResponse     string         `json:"suggestedResponse"`
}
