package recognizer

import (
	"strings"

	"smart-planner/internal/extractor"
	"smart-planner/internal/model"
)

// intentPriority fixes both iteration order and tie-breaking: when two
// categories score the same keyword count, the one listed earlier wins.
var intentPriority = []model.Intent{
	model.IntentFlightSearch,
	model.IntentHotelSearch,
	model.IntentAttractionSearch,
	model.IntentTravelPlan,
	model.IntentStudyPlan,
	model.IntentProjectPlan,
	model.IntentEventPlan,
	model.IntentHabitPlan,
	model.IntentGeneralChat,
}

var intentKeywords = map[model.Intent][]string{
	model.IntentFlightSearch:     {"机票", "航班", "飞机票", "特价票"},
	model.IntentHotelSearch:      {"酒店", "住宿", "宾馆", "民宿", "订房"},
	model.IntentAttractionSearch: {"景点", "攻略", "好玩的", "打卡地", "必去"},
	model.IntentTravelPlan:       {"旅游", "旅行", "出游", "度假", "想去", "去玩", "行程", "玩"},
	model.IntentStudyPlan:        {"学习", "考试", "备考", "复习", "课程", "雅思", "托福", "考研"},
	model.IntentProjectPlan:      {"项目", "开发", "上线", "需求", "迭代", "排期"},
	model.IntentEventPlan:        {"活动", "聚会", "婚礼", "年会", "派对", "团建"},
	model.IntentHabitPlan:        {"习惯", "健身", "减肥", "早起", "跑步", "养成", "打卡"},
	model.IntentGeneralChat:      {"你好", "您好", "谢谢", "再见", "你是谁", "能做什么"},
}

// actionKeywords is an ordered list: the first entry with a hit wins,
// which is why BOOK sits before the broader SEARCH/PLAN vocabulary.
var actionKeywords = []struct {
	action model.Action
	words  []string
}{
	{model.ActionBook, []string{"预订", "预定", "订票", "订一个"}},
	{model.ActionQuery, []string{"查询", "查一下", "看看"}},
	{model.ActionRecommend, []string{"推荐", "有什么", "有没有"}},
	{model.ActionSearch, []string{"搜索", "查找", "搜一下", "找"}},
	{model.ActionPlan, []string{"计划", "规划", "安排", "帮我", "想去", "打算", "制定"}},
}

// recognizeLocally is the deterministic fallback: keyword scoring over a
// case-normalized input, no external state, identical output for
// identical input.
func (r *Recognizer) recognizeLocally(text string) model.IntentResult {
	normalized := strings.ToLower(text)

	best := model.IntentUnknown
	bestScore := 0
	for _, intent := range intentPriority {
		score := 0
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = intent, score
		}
	}

	action := model.ActionSearch
	for _, entry := range actionKeywords {
		matched := false
		for _, kw := range entry.words {
			if strings.Contains(normalized, kw) {
				matched = true
				break
			}
		}
		if matched {
			action = entry.action
			break
		}
	}

	extracted := r.extractEntities(text, best)

	result := model.IntentResult{
		Intent:     best,
		Action:     action,
		Confidence: LocalConfidence,
		Entities:   r.convCtx.State.CollectedEntities.Clone().Merge(extracted),
	}

	if best == model.IntentUnknown {
		result.NeedsClarification = true
		result.ClarificationQuestion = ClarificationFallback
	}

	return result
}

// extractEntities runs the pattern extractors and resolves relative date
// words into the slot the intent cares about.
func (r *Recognizer) extractEntities(text string, intent model.Intent) model.Entities {
	now := r.now()
	entities := extractor.All(text, now)

	if r.dates != nil && !entities.Has(model.SlotDates) {
		if t, ok := r.dates.FindRelative(text, now); ok {
			slot := model.SlotDeadline
			if intent == model.IntentEventPlan {
				slot = model.SlotEventDate
			}
			entities[slot] = t.Format("2006-01-02")
		}
	}

	return entities
}
