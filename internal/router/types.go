package router

import "smart-planner/internal/model"

// RouteContext is the slice of conversational state handlers read and
// write: the accumulated entity pool plus the previous turn's intent.
type RouteContext struct {
	SessionID      string
	History        []string
	Collected      model.Entities
	PreviousIntent model.Intent
}

// RouteResult is a handler's output for one turn.
type RouteResult struct {
	Success         bool                   `json:"success"`
	Response        string                 `json:"response"`
	Widget          *model.WidgetDirective `json:"widget,omitempty"`
	NextAction      model.Action           `json:"nextAction,omitempty"`
	UpdatedEntities model.Entities         `json:"updatedEntities,omitempty"`
}
