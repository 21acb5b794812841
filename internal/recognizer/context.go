package recognizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"smart-planner/internal/model"
)

// UpdateContext appends one turn to the history and folds its entities
// into the collected pool. New values overwrite old ones, always.
func (r *Recognizer) UpdateContext(role model.Role, content string, intent model.Intent, entities model.Entities) {
	r.convCtx.History = append(r.convCtx.History, Message{
		Role:     role,
		Content:  content,
		Intent:   intent,
		Entities: entities,
	})
	if len(r.convCtx.History) > MaxHistoryMessages {
		r.convCtx.History = r.convCtx.History[len(r.convCtx.History)-MaxHistoryMessages:]
	}

	if role == model.RoleUser && intent != "" && intent != model.IntentUnknown {
		r.convCtx.State.ActiveIntent = intent
	}
	r.convCtx.State.CollectedEntities = r.convCtx.State.CollectedEntities.Merge(entities)
}

// Context returns the live conversation context.
func (r *Recognizer) Context() *ConversationContext {
	return r.convCtx
}

// ClearContext drops history and state, keeping the session id. Idempotent.
func (r *Recognizer) ClearContext() {
	r.convCtx = &ConversationContext{
		SessionID: r.convCtx.SessionID,
		State:     CurrentState{CollectedEntities: model.Entities{}},
	}
}

// buildContextBlock summarizes the session for the classification prompt:
// active intent, collected entities, and the tail of the history.
func (r *Recognizer) buildContextBlock() string {
	var sb strings.Builder

	if r.convCtx.State.ActiveIntent != "" || len(r.convCtx.State.CollectedEntities) > 0 {
		sb.WriteString(PromptContextHeader)
		if r.convCtx.State.ActiveIntent != "" {
			sb.WriteString(fmt.Sprintf("- 当前意图: %s\n", r.convCtx.State.ActiveIntent))
		}
		if len(r.convCtx.State.CollectedEntities) > 0 {
			if raw, err := json.Marshal(r.convCtx.State.CollectedEntities); err == nil {
				sb.WriteString(fmt.Sprintf("- 已收集实体: %s\n", raw))
			}
		}
		sb.WriteString("\n")
	}

	history := r.convCtx.History
	if len(history) > PromptHistoryWindow {
		history = history[len(history)-PromptHistoryWindow:]
	}
	if len(history) > 0 {
		sb.WriteString(PromptHistoryHeader)
		for i, msg := range history {
			sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, msg.Role, msg.Content))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
