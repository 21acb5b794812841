package datemath_test

import (
	"testing"
	"time"

	"smart-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "今天", relative: "今天", want: startOfBase},
		{name: "明天", relative: "明天", want: startOfBase.AddDate(0, 0, 1)},
		{name: "后天", relative: "后天", want: startOfBase.AddDate(0, 0, 2)},
		{name: "大后天", relative: "大后天", want: startOfBase.AddDate(0, 0, 3)},
		{name: "昨天", relative: "昨天", want: startOfBase.AddDate(0, 0, -1)},
		{name: "3天后", relative: "3天后", want: startOfBase.AddDate(0, 0, 3)},
		{name: "两周后", relative: "两周后", want: startOfBase.AddDate(0, 0, 14)},
		{name: "1个月之后", relative: "1个月之后", want: startOfBase.AddDate(0, 1, 0)},
		{name: "下周一 from Wednesday", relative: "下周一", want: startOfBase.AddDate(0, 0, 5)},
		{name: "下周三 is a full week away", relative: "下周三", want: startOfBase.AddDate(0, 0, 7)},
		{name: "下周五", relative: "下周五", want: startOfBase.AddDate(0, 0, 9)},
		{name: "下礼拜天 is end of next week", relative: "下礼拜天", want: startOfBase.AddDate(0, 0, 11)},
		{name: "Unknown falls back to today", relative: "随便哪天", want: startOfBase, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindRelative(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		text  string
		want  time.Time
		found bool
	}{
		{name: "Deadline in sentence", text: "下周五之前要考完试", want: startOfBase.AddDate(0, 0, 9), found: true},
		{name: "Duration in sentence", text: "希望3天后上线", want: startOfBase.AddDate(0, 0, 3), found: true},
		{name: "Day word in sentence", text: "明天开始健身", want: startOfBase.AddDate(0, 0, 1), found: true},
		{name: "No relative date", text: "帮我做个计划", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.FindRelative(tt.text, baseTime)
			if ok != tt.found {
				t.Fatalf("FindRelative(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("FindRelative(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, 6, 18, 23, 59, 59, 0, time.UTC)

	if got := parser.EndOfDay(base); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
