package model

// Slot is the closed set of entity keys the conversation can collect.
type Slot string

const (
	SlotDestination   Slot = "destination"
	SlotOrigin        Slot = "origin"
	SlotDates         Slot = "dates"
	SlotTravelers     Slot = "travelers"
	SlotBudget        Slot = "budget"
	SlotTransportMode Slot = "transportMode"
	SlotSubject       Slot = "subject"
	SlotDailyHours    Slot = "dailyHours"
	SlotDeadline      Slot = "deadline"
	SlotProjectName   Slot = "projectName"
	SlotTeamSize      Slot = "teamSize"
	SlotEventName     Slot = "eventName"
	SlotEventDate     Slot = "eventDate"
	SlotGuests        Slot = "guests"
	SlotHabitName     Slot = "habitName"
	SlotFrequency     Slot = "frequency"
	SlotDomain        Slot = "domain"
)

// DateRange is a start/end date pair in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Entities maps slots to collected values. Presence of a key is the only
// "filled" signal; values are scalars, DateRange, or small string slices.
type Entities map[Slot]any

// Merge copies every key from other into e, overwriting existing values.
// New values always win; this is the single merge rule used everywhere.
func (e Entities) Merge(other Entities) Entities {
	if e == nil {
		e = Entities{}
	}
	for k, v := range other {
		e[k] = v
	}
	return e
}

// Clone returns a shallow copy of e.
func (e Entities) Clone() Entities {
	out := make(Entities, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Has reports whether every given slot is present.
func (e Entities) Has(slots ...Slot) bool {
	for _, s := range slots {
		if _, ok := e[s]; !ok {
			return false
		}
	}
	return true
}

// String returns the slot value as a string.
func (e Entities) String(s Slot) (string, bool) {
	v, ok := e[s].(string)
	return v, ok
}

// Int returns the slot value as an int. JSON decoding produces float64,
// so both numeric forms are accepted.
func (e Entities) Int(s Slot) (int, bool) {
	switch v := e[s].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Dates returns the slot value as a DateRange.
func (e Entities) Dates(s Slot) (DateRange, bool) {
	switch v := e[s].(type) {
	case DateRange:
		return v, true
	case map[string]any:
		start, _ := v["start"].(string)
		end, _ := v["end"].(string)
		if start == "" && end == "" {
			return DateRange{}, false
		}
		return DateRange{Start: start, End: end}, true
	}
	return DateRange{}, false
}
