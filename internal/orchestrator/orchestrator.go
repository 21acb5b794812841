package orchestrator

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"smart-planner/internal/model"
	"smart-planner/internal/recognizer"
)

// ProcessTurn runs one conversational turn: recognize the utterance,
// route it, drive the workflow, and when the workflow just finished,
// generate the plan. A missing sessionID mints a fresh one.
// Convention: Method accepts context.Context as first parameter
func (o *Orchestrator) ProcessTurn(ctx context.Context, sessionID, text string) (TurnOutput, error) {
	if strings.TrimSpace(text) == "" {
		return TurnOutput{}, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s := o.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.Recognizer.Recognize(ctx, text)
	s.Recognizer.UpdateContext(model.RoleUser, text, res.Intent, res.Entities)

	routeOut := s.Router.Route(ctx, res)

	out := TurnOutput{
		SessionID:          sessionID,
		Reply:              routeOut.Response,
		Intent:             res.Intent,
		Action:             res.Action,
		Confidence:         res.Confidence,
		NeedsClarification: res.NeedsClarification,
		Entities:           s.Router.Context().Collected.Clone(),
	}
	if routeOut.Widget != nil {
		out.Widgets = append(out.Widgets, *routeOut.Widget)
	}

	// A follow-up answer ("12月25日到1月2日") often carries no intent
	// keywords; an already-active workflow keeps driving the turn.
	if s.Engine.Start(ctx, res) || s.Engine.Active() {
		pool := s.Router.Context().Collected
		wasComplete := s.Engine.State().IsComplete

		// A turn can fill several phases' slots at once; advance until
		// the engine stops moving.
		for !s.Engine.State().IsComplete {
			before := s.Engine.State().CurrentPhaseID
			s.Engine.AdvancePhase(ctx, pool)
			if !s.Engine.State().IsComplete && s.Engine.State().CurrentPhaseID == before {
				break
			}
		}

		out.Widgets = append(out.Widgets, s.Engine.CurrentWidgets(pool)...)

		if !wasComplete && s.Engine.State().IsComplete {
			plan, err := s.Engine.GeneratePlan(ctx, pool)
			if err != nil {
				o.l.Errorf(ctx, "%s: plan generation failed: %v", LogPrefixProcessTurn, err)
			} else {
				s.lastPlan = plan
				out.Plan = plan
			}
		}
	}

	out.Widgets = dedupeWidgets(out.Widgets)

	s.Recognizer.UpdateContext(model.RoleAssistant, out.Reply, "", nil)

	o.l.Infof(ctx, "%s: session=%s intent=%s widgets=%d plan=%t",
		LogPrefixProcessTurn, sessionID, res.Intent, len(out.Widgets), out.Plan != nil)
	return out, nil
}

// dedupeWidgets keeps one widget per requested slot. The router's
// follow-up and the engine's phase widgets can target the same slot in
// a single turn; the first occurrence wins since it carries the label.
// Widgets without a slot payload pass through untouched.
func dedupeWidgets(widgets []model.WidgetDirective) []model.WidgetDirective {
	if len(widgets) < 2 {
		return widgets
	}

	seen := make(map[string]bool, len(widgets))
	deduped := make([]model.WidgetDirective, 0, len(widgets))
	for _, w := range widgets {
		slot, ok := w.Payload["slot"].(string)
		if ok && slot != "" {
			if seen[slot] {
				continue
			}
			seen[slot] = true
		}
		deduped = append(deduped, w)
	}
	return deduped
}

// Reset clears a session's context and workflow state. Idempotent:
// resetting an unknown session is a no-op.
func (o *Orchestrator) Reset(ctx context.Context, sessionID string) {
	s, ok := o.sessions.Get(sessionID)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Recognizer.ClearContext()
	s.Router.Reset()
	s.Engine.Reset()
	s.lastPlan = nil
	o.l.Infof(ctx, "%s: session=%s", LogPrefixReset, sessionID)
}

// Snapshot returns a read-only view of a session's conversational state.
func (o *Orchestrator) Snapshot(sessionID string) (SessionSnapshot, error) {
	s, ok := o.sessions.Get(sessionID)
	if !ok {
		return SessionSnapshot{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	convCtx := s.Recognizer.Context()
	snap := SessionSnapshot{
		SessionID:       sessionID,
		ActiveIntent:    convCtx.State.ActiveIntent,
		Entities:        convCtx.State.CollectedEntities.Clone(),
		History:         append([]recognizer.Message(nil), convCtx.History...),
		RemoteAvailable: s.Recognizer.RemoteAvailable(),
	}
	if s.Engine.Active() {
		state := *s.Engine.State()
		snap.Workflow = &state
	}
	return snap, nil
}

// LastPlan returns the most recently generated plan for a session.
func (o *Orchestrator) LastPlan(sessionID string) (*model.PlanOutput, error) {
	s, ok := o.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastPlan == nil {
		return nil, ErrNoPlan
	}
	return s.lastPlan, nil
}
