package workflow

import (
	"context"
	"fmt"

	"smart-planner/internal/model"
	"smart-planner/pkg/log"
)

// Engine drives one session's slot-filling state machine. At most one
// workflow is active at a time; starting another domain discards it.
type Engine struct {
	def   *Definition
	state *State
	l     log.Logger
}

// New creates a new Engine
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *Engine {
	return &Engine{l: l}
}

// Active reports whether a workflow has been started and not reset.
func (e *Engine) Active() bool {
	return e.state != nil
}

// State returns the current workflow state, nil when none is active.
func (e *Engine) State() *State {
	return e.state
}

// Start selects a definition for the recognized intent and resets the
// state to its start phase. entities[domain] takes priority over the
// intent→domain table. Returns false when the intent has no workflow.
func (e *Engine) Start(ctx context.Context, res model.IntentResult) bool {
	domain, ok := e.resolveDomain(res)
	if !ok {
		return false
	}

	// Same-domain restart keeps accumulated progress.
	if e.state != nil && e.state.Domain == domain {
		return true
	}

	def, ok := definitionFor(domain)
	if !ok {
		return false
	}

	e.def = def
	e.state = &State{
		Domain:         domain,
		CurrentPhaseID: def.StartPhase,
	}
	e.l.Infof(ctx, "%s: domain=%s phase=%s", LogPrefixStart, domain, def.StartPhase)
	return true
}

func (e *Engine) resolveDomain(res model.IntentResult) (model.Domain, bool) {
	if raw, ok := res.Entities.String(model.SlotDomain); ok {
		domain := model.Domain(raw)
		if _, known := definitionFor(domain); known {
			return domain, true
		}
	}
	return domainForIntent(res.Intent)
}

// currentPhase panics when the state references a phase missing from
// the definition. That is a phase-graph construction bug, not input.
func (e *Engine) currentPhase() Phase {
	phase, ok := e.def.Phases[e.state.CurrentPhaseID]
	if !ok {
		panic(fmt.Sprintf("workflow %s: phase %s not in definition", e.state.Domain, e.state.CurrentPhaseID))
	}
	return phase
}

// CurrentWidgets returns widget directives for the active phase's
// required slots not yet present in entities. Phase order gates the
// requests: slots of later phases are never requested early.
func (e *Engine) CurrentWidgets(entities model.Entities) []model.WidgetDirective {
	if e.state == nil || e.state.IsComplete {
		return nil
	}

	phase := e.currentPhase()
	var widgets []model.WidgetDirective
	for _, slot := range phase.RequiredSlots {
		if entities.Has(slot) {
			continue
		}
		widgetType, ok := widgetForSlot(slot)
		if !ok {
			continue
		}
		widgets = append(widgets, model.WidgetDirective{
			Type:    widgetType,
			Payload: map[string]any{"slot": string(slot)},
		})
	}
	return widgets
}

// AdvancePhase moves to the next phase when the current one is
// complete. Incomplete phase or finished workflow: silent no-op.
// Callers poll completeness; they must not assume advancement.
func (e *Engine) AdvancePhase(ctx context.Context, entities model.Entities) {
	if e.state == nil || e.state.IsComplete {
		return
	}

	phase := e.currentPhase()
	if !phase.IsComplete(entities) {
		return
	}

	e.state.CompletedPhases = append(e.state.CompletedPhases, phase.ID)
	if phase.NextPhase == "" {
		e.state.IsComplete = true
		e.l.Infof(ctx, "%s: domain=%s complete", LogPrefixAdvance, e.state.Domain)
		return
	}

	e.state.CurrentPhaseID = phase.NextPhase
	e.l.Infof(ctx, "%s: domain=%s phase=%s", LogPrefixAdvance, e.state.Domain, phase.NextPhase)
}

// Reset discards the active workflow. Idempotent.
func (e *Engine) Reset() {
	e.def = nil
	e.state = nil
}
