package http

import (
	"smart-planner/internal/model"
	"smart-planner/internal/orchestrator"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required,min=1,max=2000"`
}

type resetReq struct {
	SessionID string `json:"session_id" binding:"required"`
}

type exportReq struct {
	SessionID string `json:"session_id" binding:"required"`
}

// --- Response DTOs ---

type chatResp struct {
	SessionID          string                  `json:"session_id"`
	Reply              string                  `json:"reply"`
	Intent             model.Intent            `json:"intent"`
	Action             model.Action            `json:"action"`
	Confidence         float64                 `json:"confidence"`
	NeedsClarification bool                    `json:"needs_clarification"`
	Entities           model.Entities          `json:"entities,omitempty"`
	Widgets            []model.WidgetDirective `json:"widgets,omitempty"`
	Plan               *model.PlanOutput       `json:"plan,omitempty"`
}

func newChatResp(out orchestrator.TurnOutput) chatResp {
	return chatResp{
		SessionID:          out.SessionID,
		Reply:              out.Reply,
		Intent:             out.Intent,
		Action:             out.Action,
		Confidence:         out.Confidence,
		NeedsClarification: out.NeedsClarification,
		Entities:           out.Entities,
		Widgets:            out.Widgets,
		Plan:               out.Plan,
	}
}

type contextResp struct {
	SessionID       string               `json:"session_id"`
	ActiveIntent    model.Intent         `json:"active_intent,omitempty"`
	Entities        model.Entities       `json:"entities"`
	History         []historyMessageResp `json:"history"`
	Workflow        *workflowStateResp   `json:"workflow,omitempty"`
	RemoteAvailable bool                 `json:"remote_available"`
}

type historyMessageResp struct {
	Role    model.Role `json:"role"`
	Content string     `json:"content"`
}

type workflowStateResp struct {
	Domain          model.Domain `json:"domain"`
	CurrentPhase    string       `json:"current_phase"`
	CompletedPhases []string     `json:"completed_phases"`
	IsComplete      bool         `json:"is_complete"`
}

func newContextResp(snap orchestrator.SessionSnapshot) contextResp {
	resp := contextResp{
		SessionID:       snap.SessionID,
		ActiveIntent:    snap.ActiveIntent,
		Entities:        snap.Entities,
		History:         make([]historyMessageResp, 0, len(snap.History)),
		RemoteAvailable: snap.RemoteAvailable,
	}
	for _, msg := range snap.History {
		resp.History = append(resp.History, historyMessageResp{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	if snap.Workflow != nil {
		state := &workflowStateResp{
			Domain:       snap.Workflow.Domain,
			CurrentPhase: string(snap.Workflow.CurrentPhaseID),
			IsComplete:   snap.Workflow.IsComplete,
		}
		for _, id := range snap.Workflow.CompletedPhases {
			state.CompletedPhases = append(state.CompletedPhases, string(id))
		}
		resp.Workflow = state
	}
	return resp
}

type exportResp struct {
	EventID  string `json:"event_id"`
	HtmlLink string `json:"html_link"`
	Summary  string `json:"summary"`
}
