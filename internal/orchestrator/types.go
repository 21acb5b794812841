package orchestrator

import (
	"sync"

	"smart-planner/internal/model"
	"smart-planner/internal/recognizer"
	"smart-planner/internal/router"
	"smart-planner/internal/workflow"
)

// Session bundles one conversation's components. The mutex serializes
// turns: a turn's context mutation completes before the next turn's
// recognition reads it.
type Session struct {
	mu         sync.Mutex
	ID         string
	Recognizer *recognizer.Recognizer
	Router     *router.SmartRouter
	Engine     *workflow.Engine

	lastPlan *model.PlanOutput
}

// TurnOutput is everything one processed turn hands back to the caller.
type TurnOutput struct {
	SessionID          string                  `json:"sessionId"`
	Reply              string                  `json:"reply"`
	Intent             model.Intent            `json:"intent"`
	Action             model.Action            `json:"action"`
	Confidence         float64                 `json:"confidence"`
	NeedsClarification bool                    `json:"needsClarification"`
	Entities           model.Entities          `json:"entities,omitempty"`
	Widgets            []model.WidgetDirective `json:"widgets,omitempty"`
	Plan               *model.PlanOutput       `json:"plan,omitempty"`
}

// SessionSnapshot is a read-only view of a session for the API.
type SessionSnapshot struct {
	SessionID       string               `json:"sessionId"`
	ActiveIntent    model.Intent         `json:"activeIntent,omitempty"`
	Entities        model.Entities       `json:"entities"`
	History         []recognizer.Message `json:"history"`
	Workflow        *workflow.State      `json:"workflow,omitempty"`
	RemoteAvailable bool                 `json:"remoteAvailable"`
}
