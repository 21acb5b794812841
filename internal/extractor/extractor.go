// Package extractor pulls structured slot values out of raw utterances.
// Every function is pure: same text in, same entities out, no state and
// no errors. "Not found" is the zero value plus ok=false.
package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-planner/internal/model"
)

var (
	// M月D日 到/至/- [M月]D日, the day marker and the end month optional.
	dateRangeRe = regexp.MustCompile(`(\d{1,2})月(\d{1,2})[日号]?\s*(?:到|至|-|~|～|to)\s*(?:(\d{1,2})月)?(\d{1,2})[日号]?`)

	// 预算3000 / 预算大概1万 / 3000元的预算 / 花费5千
	budgetMarkedRe = regexp.MustCompile(`(?:预算|花费|费用)(?:大概|大约|控制在)?(\d+(?:\.\d+)?)\s*(万|千|[kK])?`)
	budgetUnitRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(万|千|[kK])?\s*(?:元|块|人民币)`)

	// 3人 / 3个人 / 5位 / 两名
	travelerRe = regexp.MustCompile(`([0-9一二两三四五六七八九十]+)\s*(?:个人|人|位|名)`)
)

var chineseDigits = map[string]int{
	"一": 1, "二": 2, "两": 2, "三": 3, "四": 4,
	"五": 5, "六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

var originMarkers = []string{"从", "由", "from "}

// transportKeywords maps keyword → canonical mode. Checked in a fixed
// order so overlapping keywords resolve the same way every time.
var transportKeywords = []struct {
	words []string
	mode  string
}{
	{[]string{"飞机", "机票", "航班"}, "flight"},
	{[]string{"高铁", "火车", "动车"}, "train"},
	{[]string{"自驾", "开车", "租车"}, "car"},
	{[]string{"大巴", "巴士", "客车"}, "bus"},
}

// Destination returns the gazetteer city appearing earliest in text. A
// match is dropped when its span overlaps an occurrence of a deny-listed
// word, in which case later occurrences and later cities still apply.
func Destination(text string) (string, bool) {
	best, bestIdx := "", -1
	for _, city := range destinationGazetteer {
		from := 0
		for {
			idx := strings.Index(text[from:], city)
			if idx < 0 {
				break
			}
			at := from + idx
			if !insideDenylisted(text, at, len(city)) {
				if bestIdx < 0 || at < bestIdx {
					best, bestIdx = city, at
				}
				break
			}
			from = at + len(city)
		}
	}
	return best, bestIdx >= 0
}

// Origin looks for an origin marker and re-runs destination extraction on
// the text after it.
func Origin(text string) (string, bool) {
	for _, marker := range originMarkers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		if city, ok := Destination(text[idx+len(marker):]); ok {
			return city, true
		}
	}
	return "", false
}

// DateRange parses "M月D日 到 M月D日" spans. Year comes from base; when the
// end month/day numerically precedes the start, the trip crosses New Year
// and the end date is assigned to the following year.
func DateRange(text string, base time.Time) (model.DateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return model.DateRange{}, false
	}

	startMonth, _ := strconv.Atoi(m[1])
	startDay, _ := strconv.Atoi(m[2])
	endMonth := startMonth
	if m[3] != "" {
		endMonth, _ = strconv.Atoi(m[3])
	}
	endDay, _ := strconv.Atoi(m[4])

	if !validMonthDay(startMonth, startDay) || !validMonthDay(endMonth, endDay) {
		return model.DateRange{}, false
	}

	startYear := base.Year()
	endYear := startYear
	if endMonth < startMonth || (endMonth == startMonth && endDay < startDay) {
		endYear++
	}

	return model.DateRange{
		Start: fmt.Sprintf("%04d-%02d-%02d", startYear, startMonth, startDay),
		End:   fmt.Sprintf("%04d-%02d-%02d", endYear, endMonth, endDay),
	}, true
}

// Budget returns an amount in yuan. A bare number is only treated as a
// budget when it carries a budget marker or an explicit currency unit.
func Budget(text string) (int, bool) {
	for _, re := range []*regexp.Regexp{budgetMarkedRe, budgetUnitRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "万":
			amount *= 10000
		case "千", "k", "K":
			amount *= 1000
		}
		return int(amount), true
	}
	return 0, false
}

// TravelerCount returns the number of travelers mentioned in text.
func TravelerCount(text string) (int, bool) {
	m := travelerRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		return n, true
	}
	if n, ok := chineseDigits[m[1]]; ok {
		return n, true
	}
	return 0, false
}

// TransportMode maps transport keywords to a canonical mode token.
func TransportMode(text string) (string, bool) {
	for _, entry := range transportKeywords {
		for _, w := range entry.words {
			if strings.Contains(text, w) {
				return entry.mode, true
			}
		}
	}
	return "", false
}

// All runs every extractor against text and returns the slots that matched.
func All(text string, base time.Time) model.Entities {
	entities := model.Entities{}
	destText := text
	if city, ok := Origin(text); ok {
		entities[model.SlotOrigin] = city
		// Mask the origin occurrence so it cannot double as the destination.
		destText = strings.Replace(text, city, strings.Repeat("*", len(city)), 1)
	}
	if city, ok := Destination(destText); ok {
		entities[model.SlotDestination] = city
	}
	if dates, ok := DateRange(text, base); ok {
		entities[model.SlotDates] = dates
	}
	if budget, ok := Budget(text); ok {
		entities[model.SlotBudget] = budget
	}
	if count, ok := TravelerCount(text); ok {
		entities[model.SlotTravelers] = count
	}
	if mode, ok := TransportMode(text); ok {
		entities[model.SlotTransportMode] = mode
	}
	return entities
}

// insideDenylisted reports whether the span [idx, idx+length) overlaps an
// occurrence of any deny-listed word in text.
func insideDenylisted(text string, idx, length int) bool {
	for _, deny := range destinationDenylist {
		from := 0
		for {
			d := strings.Index(text[from:], deny)
			if d < 0 {
				break
			}
			start := from + d
			end := start + len(deny)
			if idx < end && idx+length > start {
				return true
			}
			from = end
		}
	}
	return false
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}
