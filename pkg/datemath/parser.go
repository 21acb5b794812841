package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative Chinese date expressions to absolute time.Time
// values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Asia/Shanghai".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var dayWords = []struct {
	word   string
	offset int
}{
	// Longer words first so 大后天 does not match as 后天.
	{"大后天", 3},
	{"后天", 2},
	{"明天", 1},
	{"今天", 0},
	{"昨天", -1},
}

var weekdayNames = map[string]time.Weekday{
	"一": time.Monday,
	"二": time.Tuesday,
	"三": time.Wednesday,
	"四": time.Thursday,
	"五": time.Friday,
	"六": time.Saturday,
	"日": time.Sunday,
	"天": time.Sunday,
}

var (
	// 3天后 / 两周后 / 1个月之后
	inDurationRe = regexp.MustCompile(`([0-9一二两三四五六七八九十]+)\s*(天|周|个月)(?:后|之后|以后)`)
	// 下周五 / 下星期三 / 下礼拜天
	nextWeekdayRe = regexp.MustCompile(`下(?:周|星期|礼拜)([一二三四五六日天])`)
)

var numerals = map[string]int{
	"一": 1, "二": 2, "两": 2, "三": 3, "四": 4,
	"五": 5, "六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

// Parse converts a relative date expression to an absolute start-of-day
// time. Unknown expressions fall back to the start of the base day.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = strings.TrimSpace(relative)

	for _, w := range dayWords {
		if relative == w.word {
			return p.startOfDay(base.AddDate(0, 0, w.offset)), nil
		}
	}

	if m := inDurationRe.FindStringSubmatch(relative); m != nil {
		return p.addDuration(base, m[1], m[2])
	}

	if m := nextWeekdayRe.FindStringSubmatch(relative); m != nil {
		return p.nextWeekday(base, m[1])
	}

	return p.startOfDay(base), fmt.Errorf("unrecognized relative date: %q", relative)
}

// FindRelative scans free text for the first relative date expression and
// resolves it. Returns false when the text carries none.
func (p *Parser) FindRelative(text string, base time.Time) (time.Time, bool) {
	if m := nextWeekdayRe.FindStringSubmatch(text); m != nil {
		t, err := p.nextWeekday(base, m[1])
		return t, err == nil
	}
	if m := inDurationRe.FindStringSubmatch(text); m != nil {
		t, err := p.addDuration(base, m[1], m[2])
		return t, err == nil
	}
	for _, w := range dayWords {
		if strings.Contains(text, w.word) {
			return p.startOfDay(base.AddDate(0, 0, w.offset)), true
		}
	}
	return time.Time{}, false
}

func (p *Parser) addDuration(base time.Time, amountStr, unit string) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		var ok bool
		amount, ok = numerals[amountStr]
		if !ok {
			return base, fmt.Errorf("invalid amount: %q", amountStr)
		}
	}

	switch unit {
	case "天":
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case "周":
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	case "个月":
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
	return base, fmt.Errorf("unknown unit: %q", unit)
}

// nextWeekday resolves 下周X: weekday X of the following Monday-start week,
// so 下周五 asked on a Wednesday is nine days out, not two.
func (p *Parser) nextWeekday(base time.Time, name string) (time.Time, error) {
	target, ok := weekdayNames[name]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", name)
	}

	untilNextMonday := (int(time.Monday) - int(base.Weekday()) + 7) % 7
	if untilNextMonday == 0 {
		untilNextMonday = 7
	}
	offsetInWeek := (int(target) - int(time.Monday) + 7) % 7

	return p.startOfDay(base.AddDate(0, 0, untilNextMonday+offsetInWeek)), nil
}

// startOfDay returns midnight of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day that starts at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
