package workflow

import "smart-planner/internal/model"

// definitionFor returns the static phase graph for a domain.
// The travel graph deliberately orders budget after destination and
// dates: requests follow phase order, not mere slot absence.
func definitionFor(domain model.Domain) (*Definition, bool) {
	switch domain {
	case model.DomainTravel:
		return &Definition{
			Domain:     model.DomainTravel,
			StartPhase: PhaseTravelDestination,
			Phases: map[PhaseID]Phase{
				PhaseTravelDestination: {
					ID:            PhaseTravelDestination,
					RequiredSlots: []model.Slot{model.SlotDestination},
					OptionalSlots: []model.Slot{model.SlotOrigin},
					NextPhase:     PhaseTravelDates,
				},
				PhaseTravelDates: {
					ID:            PhaseTravelDates,
					RequiredSlots: []model.Slot{model.SlotDates},
					NextPhase:     PhaseTravelBudget,
				},
				PhaseTravelBudget: {
					ID:            PhaseTravelBudget,
					RequiredSlots: []model.Slot{model.SlotBudget},
					OptionalSlots: []model.Slot{model.SlotTravelers, model.SlotTransportMode},
					NextPhase:     PhaseTravelSummary,
				},
				PhaseTravelSummary: {
					ID: PhaseTravelSummary,
				},
			},
		}, true

	case model.DomainStudy:
		return &Definition{
			Domain:     model.DomainStudy,
			StartPhase: PhaseStudySubject,
			Phases: map[PhaseID]Phase{
				PhaseStudySubject: {
					ID:            PhaseStudySubject,
					RequiredSlots: []model.Slot{model.SlotSubject},
					NextPhase:     PhaseStudyTimeframe,
				},
				PhaseStudyTimeframe: {
					ID:            PhaseStudyTimeframe,
					RequiredSlots: []model.Slot{model.SlotDeadline},
					OptionalSlots: []model.Slot{model.SlotDailyHours},
					NextPhase:     PhaseStudySummary,
				},
				PhaseStudySummary: {
					ID: PhaseStudySummary,
				},
			},
		}, true

	case model.DomainProject:
		return &Definition{
			Domain:     model.DomainProject,
			StartPhase: PhaseProjectBasics,
			Phases: map[PhaseID]Phase{
				PhaseProjectBasics: {
					ID:            PhaseProjectBasics,
					RequiredSlots: []model.Slot{model.SlotProjectName},
					NextPhase:     PhaseProjectTimeline,
				},
				PhaseProjectTimeline: {
					ID:            PhaseProjectTimeline,
					RequiredSlots: []model.Slot{model.SlotDeadline},
					OptionalSlots: []model.Slot{model.SlotTeamSize},
					NextPhase:     PhaseProjectSummary,
				},
				PhaseProjectSummary: {
					ID: PhaseProjectSummary,
				},
			},
		}, true

	case model.DomainEvent:
		return &Definition{
			Domain:     model.DomainEvent,
			StartPhase: PhaseEventBasics,
			Phases: map[PhaseID]Phase{
				PhaseEventBasics: {
					ID:            PhaseEventBasics,
					RequiredSlots: []model.Slot{model.SlotEventName},
					NextPhase:     PhaseEventDate,
				},
				PhaseEventDate: {
					ID:            PhaseEventDate,
					RequiredSlots: []model.Slot{model.SlotEventDate},
					OptionalSlots: []model.Slot{model.SlotGuests},
					NextPhase:     PhaseEventSummary,
				},
				PhaseEventSummary: {
					ID: PhaseEventSummary,
				},
			},
		}, true

	case model.DomainHabit:
		return &Definition{
			Domain:     model.DomainHabit,
			StartPhase: PhaseHabitBasics,
			Phases: map[PhaseID]Phase{
				PhaseHabitBasics: {
					ID:            PhaseHabitBasics,
					RequiredSlots: []model.Slot{model.SlotHabitName},
					NextPhase:     PhaseHabitCadence,
				},
				PhaseHabitCadence: {
					ID:            PhaseHabitCadence,
					RequiredSlots: []model.Slot{model.SlotFrequency},
					NextPhase:     PhaseHabitSummary,
				},
				PhaseHabitSummary: {
					ID: PhaseHabitSummary,
				},
			},
		}, true
	}

	return nil, false
}

// domainForIntent maps intent categories onto planning domains.
// Chat-like intents have no workflow.
func domainForIntent(intent model.Intent) (model.Domain, bool) {
	switch intent {
	case model.IntentTravelPlan, model.IntentFlightSearch, model.IntentHotelSearch, model.IntentAttractionSearch:
		return model.DomainTravel, true
	case model.IntentStudyPlan:
		return model.DomainStudy, true
	case model.IntentProjectPlan:
		return model.DomainProject, true
	case model.IntentEventPlan:
		return model.DomainEvent, true
	case model.IntentHabitPlan:
		return model.DomainHabit, true
	case model.IntentGeneralChat, model.IntentUnknown:
		return "", false
	default:
		return "", false
	}
}

// widgetForSlot maps a missing slot to the widget requesting it.
// Slots with no sensible widget (e.g. domain) are skipped by callers.
func widgetForSlot(slot model.Slot) (model.WidgetType, bool) {
	switch slot {
	case model.SlotDestination, model.SlotOrigin, model.SlotSubject,
		model.SlotProjectName, model.SlotEventName, model.SlotHabitName:
		return model.WidgetTextInput, true
	case model.SlotDates:
		return model.WidgetDateRange, true
	case model.SlotDeadline, model.SlotEventDate:
		return model.WidgetDatePicker, true
	case model.SlotTravelers, model.SlotTeamSize, model.SlotGuests, model.SlotDailyHours:
		return model.WidgetNumberInput, true
	case model.SlotBudget:
		return model.WidgetBudgetSlider, true
	case model.SlotTransportMode, model.SlotFrequency:
		return model.WidgetRadioCards, true
	default:
		return "", false
	}
}
