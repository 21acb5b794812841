package router

import (
	"context"

	"smart-planner/internal/model"
	"smart-planner/pkg/log"
)

// Router dispatches recognized intents to conversational handlers.
type Router interface {
	Route(ctx context.Context, res model.IntentResult) RouteResult
	Context() *RouteContext
	Reset()
}

// SmartRouter maps each intent to its slot-filling handler and keeps
// the entity pool shared across turns of one session.
type SmartRouter struct {
	rc *RouteContext
	l  log.Logger
}

// Ensure SmartRouter implements Router interface
var _ Router = (*SmartRouter)(nil)

// New creates a new SmartRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(sessionID string, l log.Logger) *SmartRouter {
	return &SmartRouter{
		rc: &RouteContext{
			SessionID: sessionID,
			Collected: model.Entities{},
		},
		l: l,
	}
}

// Context returns the router's accumulated state.
func (r *SmartRouter) Context() *RouteContext {
	return r.rc
}

// Reset clears the entity pool and previous intent. Idempotent.
func (r *SmartRouter) Reset() {
	r.rc.Collected = model.Entities{}
	r.rc.PreviousIntent = ""
	r.rc.History = nil
}
