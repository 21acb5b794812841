package router

import (
	"context"

	"smart-planner/internal/model"
)

// Route merges the turn's entities into the pool (new values win),
// dispatches on the intent, then records it as the previous intent.
// Convention: Method accepts context.Context as first parameter
func (r *SmartRouter) Route(ctx context.Context, res model.IntentResult) RouteResult {
	r.rc.Collected = r.rc.Collected.Merge(res.Entities)

	out, handled := r.dispatch(res)
	if !handled {
		out = r.handleDefault(res)
	}

	r.rc.PreviousIntent = res.Intent
	r.l.Infof(ctx, "%s: intent=%s action=%s success=%t", LogPrefixRoute, res.Intent, res.Action, out.Success)
	return out
}

// dispatch is an exhaustive switch over the closed intent set. A handler
// returns handled=false to decline, which falls through to the default.
func (r *SmartRouter) dispatch(res model.IntentResult) (RouteResult, bool) {
	switch res.Intent {
	case model.IntentTravelPlan:
		return r.handleTravelPlan(res)
	case model.IntentFlightSearch:
		return r.handleFlightSearch(res)
	case model.IntentHotelSearch:
		return r.handleHotelSearch(res)
	case model.IntentAttractionSearch:
		return r.handleAttractionSearch(res)
	case model.IntentStudyPlan:
		return r.handleStudyPlan(res)
	case model.IntentProjectPlan:
		return r.handleProjectPlan(res)
	case model.IntentEventPlan:
		return r.handleEventPlan(res)
	case model.IntentHabitPlan:
		return r.handleHabitPlan(res)
	case model.IntentGeneralChat:
		return r.handleGeneralChat(res)
	case model.IntentUnknown:
		return RouteResult{}, false
	default:
		return RouteResult{}, false
	}
}

// handleDefault echoes the recognizer's clarification question when it
// has one, else its suggested response, else a fixed fallback.
func (r *SmartRouter) handleDefault(res model.IntentResult) RouteResult {
	response := MsgNotUnderstood
	if res.ClarificationQuestion != "" {
		response = res.ClarificationQuestion
	} else if res.SuggestedResponse != "" {
		response = res.SuggestedResponse
	}
	return RouteResult{
		Success:  false,
		Response: response,
	}
}
