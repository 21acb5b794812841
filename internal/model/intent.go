package model

// Intent represents the coarse category of what the user wants.
type Intent string

const (
	IntentTravelPlan       Intent = "TRAVEL_PLAN"
	IntentFlightSearch     Intent = "FLIGHT_SEARCH"
	IntentHotelSearch      Intent = "HOTEL_SEARCH"
	IntentAttractionSearch Intent = "ATTRACTION_SEARCH"
	IntentStudyPlan        Intent = "STUDY_PLAN"
	IntentProjectPlan      Intent = "PROJECT_PLAN"
	IntentEventPlan        Intent = "EVENT_PLAN"
	IntentHabitPlan        Intent = "HABIT_PLAN"
	IntentGeneralChat      Intent = "GENERAL_CHAT"
	IntentUnknown          Intent = "UNKNOWN"
)

// Action qualifies what should happen for the intent.
type Action string

const (
	ActionSearch    Action = "SEARCH"
	ActionPlan      Action = "PLAN"
	ActionBook      Action = "BOOK"
	ActionQuery     Action = "QUERY"
	ActionRecommend Action = "RECOMMEND"
)

// Domain is a planning domain driven by one workflow definition.
type Domain string

const (
	DomainTravel  Domain = "travel"
	DomainStudy   Domain = "study"
	DomainProject Domain = "project"
	DomainEvent   Domain = "event"
	DomainHabit   Domain = "habit"
)

// IntentResult is the recognizer's output for one turn. It is produced
// fresh each turn and never mutated afterwards.
type IntentResult struct {
	Intent                Intent   `json:"intent"`
	Action                Action   `json:"action"`
	Confidence            float64  `json:"confidence"`
	Entities              Entities `json:"entities,omitempty"`
	SubIntents            []Intent `json:"subIntents,omitempty"`
	NeedsClarification    bool     `json:"needsClarification"`
	ClarificationQuestion string   `json:"clarificationQuestion,omitempty"`
	SuggestedResponse     string   `json:"suggestedResponse,omitempty"`
}

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)
