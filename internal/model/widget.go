package model

// WidgetType is the closed vocabulary of UI directives the core can request.
// The UI layer owns rendering; the core only names what should appear next.
type WidgetType string

const (
	WidgetTextInput       WidgetType = "text_input"
	WidgetDatePicker      WidgetType = "date_picker"
	WidgetDateRange       WidgetType = "date_range"
	WidgetNumberInput     WidgetType = "number_input"
	WidgetBudgetSlider    WidgetType = "budget_slider"
	WidgetRadioCards      WidgetType = "radio_cards"
	WidgetMultiSelect     WidgetType = "multi_select"
	WidgetFlightSearch    WidgetType = "flight_search"
	WidgetHotelSearch     WidgetType = "hotel_search"
	WidgetAttractionCards WidgetType = "attraction_cards"
	WidgetMapView         WidgetType = "map_view"
	WidgetChecklist       WidgetType = "checklist"
	WidgetTimeline        WidgetType = "timeline"
)

// WidgetDirective asks the UI collaborator to render one widget.
// Payload carries type-specific fields (labels, options, city, dates ...).
type WidgetDirective struct {
	Type    WidgetType     `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}
