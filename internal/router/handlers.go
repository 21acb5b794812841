package router

import (
	"fmt"

	"smart-planner/internal/model"
)

// askFor builds the uniform "missing precursor slot" result: a targeted
// follow-up question plus a widget requesting exactly that slot.
func askFor(slot model.Slot, question string, widget model.WidgetType) (RouteResult, bool) {
	return RouteResult{
		Success:  true,
		Response: question,
		Widget: &model.WidgetDirective{
			Type: widget,
			Payload: map[string]any{
				payloadKeySlot:  string(slot),
				payloadKeyLabel: question,
			},
		},
	}, true
}

func (r *SmartRouter) handleTravelPlan(res model.IntentResult) (RouteResult, bool) {
	dest, ok := r.rc.Collected.String(model.SlotDestination)
	if !ok {
		return askFor(model.SlotDestination, MsgAskDestination, model.WidgetTextInput)
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgTravelPlanStart, dest),
		NextAction: model.ActionPlan,
		Widget: &model.WidgetDirective{
			Type:    model.WidgetMapView,
			Payload: map[string]any{payloadKeyCity: dest},
		},
	}, true
}

func (r *SmartRouter) handleFlightSearch(res model.IntentResult) (RouteResult, bool) {
	dest, ok := r.rc.Collected.String(model.SlotDestination)
	if !ok {
		return askFor(model.SlotDestination, MsgAskDestination, model.WidgetTextInput)
	}

	payload := map[string]any{payloadKeyDestination: dest}
	if origin, ok := r.rc.Collected.String(model.SlotOrigin); ok {
		payload[payloadKeyOrigin] = origin
	}
	if dates, ok := r.rc.Collected.Dates(model.SlotDates); ok {
		payload[payloadKeyStartDate] = dates.Start
		payload[payloadKeyEndDate] = dates.End
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgFlightSearching, dest),
		NextAction: model.ActionSearch,
		Widget: &model.WidgetDirective{
			Type:    model.WidgetFlightSearch,
			Payload: payload,
		},
	}, true
}

func (r *SmartRouter) handleHotelSearch(res model.IntentResult) (RouteResult, bool) {
	dest, ok := r.rc.Collected.String(model.SlotDestination)
	if !ok {
		return askFor(model.SlotDestination, MsgAskDestination, model.WidgetTextInput)
	}
	dates, ok := r.rc.Collected.Dates(model.SlotDates)
	if !ok {
		return askFor(model.SlotDates, MsgAskDates, model.WidgetDateRange)
	}

	payload := map[string]any{
		payloadKeyCity:      dest,
		payloadKeyStartDate: dates.Start,
		payloadKeyEndDate:   dates.End,
	}
	if budget, ok := r.rc.Collected.Int(model.SlotBudget); ok {
		payload[payloadKeyBudget] = budget
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgHotelSearching, dest),
		NextAction: model.ActionSearch,
		Widget: &model.WidgetDirective{
			Type:    model.WidgetHotelSearch,
			Payload: payload,
		},
	}, true
}

func (r *SmartRouter) handleAttractionSearch(res model.IntentResult) (RouteResult, bool) {
	dest, ok := r.rc.Collected.String(model.SlotDestination)
	if !ok {
		return askFor(model.SlotDestination, MsgAskDestination, model.WidgetTextInput)
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgAttractionListing, dest),
		NextAction: model.ActionRecommend,
		Widget: &model.WidgetDirective{
			Type:    model.WidgetAttractionCards,
			Payload: map[string]any{payloadKeyCity: dest},
		},
	}, true
}

func (r *SmartRouter) handleStudyPlan(res model.IntentResult) (RouteResult, bool) {
	subject, ok := r.rc.Collected.String(model.SlotSubject)
	if !ok {
		return askFor(model.SlotSubject, MsgAskSubject, model.WidgetTextInput)
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgStudyPlanStart, subject),
		NextAction: model.ActionPlan,
	}, true
}

func (r *SmartRouter) handleProjectPlan(res model.IntentResult) (RouteResult, bool) {
	name, ok := r.rc.Collected.String(model.SlotProjectName)
	if !ok {
		return askFor(model.SlotProjectName, MsgAskProjectName, model.WidgetTextInput)
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgProjectPlanStart, name),
		NextAction: model.ActionPlan,
	}, true
}

func (r *SmartRouter) handleEventPlan(res model.IntentResult) (RouteResult, bool) {
	name, ok := r.rc.Collected.String(model.SlotEventName)
	if !ok {
		return askFor(model.SlotEventName, MsgAskEventName, model.WidgetTextInput)
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgEventPlanStart, name),
		NextAction: model.ActionPlan,
	}, true
}

func (r *SmartRouter) handleHabitPlan(res model.IntentResult) (RouteResult, bool) {
	name, ok := r.rc.Collected.String(model.SlotHabitName)
	if !ok {
		return askFor(model.SlotHabitName, MsgAskHabitName, model.WidgetTextInput)
	}

	return RouteResult{
		Success:    true,
		Response:   fmt.Sprintf(MsgHabitPlanStart, name),
		NextAction: model.ActionPlan,
	}, true
}

func (r *SmartRouter) handleGeneralChat(res model.IntentResult) (RouteResult, bool) {
	response := MsgGeneralChat
	if res.SuggestedResponse != "" {
		response = res.SuggestedResponse
	}
	return RouteResult{
		Success:  true,
		Response: response,
	}, true
}
