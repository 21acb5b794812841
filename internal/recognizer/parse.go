package recognizer

import "smart-planner/internal/model"

// extractJSON returns the first balanced {...} span in s. Remote models
// routinely wrap the object in prose or markdown fences; everything
// outside the braces is ignored.
func extractJSON(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

var knownIntents = map[string]model.Intent{
	string(model.IntentTravelPlan):       model.IntentTravelPlan,
	string(model.IntentFlightSearch):     model.IntentFlightSearch,
	string(model.IntentHotelSearch):      model.IntentHotelSearch,
	string(model.IntentAttractionSearch): model.IntentAttractionSearch,
	string(model.IntentStudyPlan):        model.IntentStudyPlan,
	string(model.IntentProjectPlan):      model.IntentProjectPlan,
	string(model.IntentEventPlan):        model.IntentEventPlan,
	string(model.IntentHabitPlan):        model.IntentHabitPlan,
	string(model.IntentGeneralChat):      model.IntentGeneralChat,
}

func parseIntent(s string) model.Intent {
	if intent, ok := knownIntents[s]; ok {
		return intent
	}
	return model.IntentUnknown
}

var knownActions = map[string]model.Action{
	string(model.ActionSearch):    model.ActionSearch,
	string(model.ActionPlan):      model.ActionPlan,
	string(model.ActionBook):      model.ActionBook,
	string(model.ActionQuery):     model.ActionQuery,
	string(model.ActionRecommend): model.ActionRecommend,
}

func parseAction(s string) model.Action {
	if action, ok := knownActions[s]; ok {
		return action
	}
	return model.ActionSearch
}

// parseConfidence accepts the numeric forms JSON decoding can produce and
// clamps to [0,1]; anything else becomes the default.
func parseConfidence(v any) float64 {
	var c float64
	switch n := v.(type) {
	case float64:
		c = n
	case int:
		c = float64(n)
	default:
		return DefaultRemoteConfidence
	}
	if c < 0 {
		return 0
	}
	if c > 1 {
		// Some models answer on a 0-100 scale.
		if c <= 100 {
			return c / 100
		}
		return 1
	}
	return c
}
