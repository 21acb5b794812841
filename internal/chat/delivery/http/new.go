package http

import (
	"context"

	"smart-planner/internal/model"
	"smart-planner/internal/orchestrator"
	"smart-planner/pkg/gcalendar"
	"smart-planner/pkg/log"
)

// Conversation is the slice of the orchestrator the delivery layer uses.
type Conversation interface {
	ProcessTurn(ctx context.Context, sessionID, text string) (orchestrator.TurnOutput, error)
	Reset(ctx context.Context, sessionID string)
	Snapshot(sessionID string) (orchestrator.SessionSnapshot, error)
	LastPlan(sessionID string) (*model.PlanOutput, error)
}

type handler struct {
	l        log.Logger
	orch     Conversation
	calendar gcalendar.ICalendar // nil when export is not configured
}

// New creates a new HTTP handler for the chat surface.
// calendar may be nil; the export endpoint then reports unavailable.
func New(l log.Logger, orch Conversation, calendar gcalendar.ICalendar) *handler {
	return &handler{
		l:        l,
		orch:     orch,
		calendar: calendar,
	}
}
