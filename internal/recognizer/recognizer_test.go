package recognizer_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"smart-planner/internal/model"
	"smart-planner/internal/recognizer"
	"smart-planner/pkg/datemath"
	"smart-planner/pkg/llmprovider"
	"smart-planner/pkg/log"
)

// mockGenerator is a test implementation of the ContentGenerator interface
type mockGenerator struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	available    bool
	callCount    int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	return m.generateFunc(ctx, req)
}

func (m *mockGenerator) Available() bool { return m.available }

func textResponse(s string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: s}},
		},
	}
}

func newLocalRecognizer(t *testing.T) *recognizer.Recognizer {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return recognizer.New("test-session", nil, dates, log.Noop())
}

func TestRecognize_LocalTravelScenario(t *testing.T) {
	r := newLocalRecognizer(t)

	res := r.Recognize(context.Background(), "我想去三亚玩，预算1万")

	if res.Intent != model.IntentTravelPlan {
		t.Errorf("intent = %s, want %s", res.Intent, model.IntentTravelPlan)
	}
	if res.NeedsClarification {
		t.Error("category found; clarification must not be requested")
	}
	if dest, _ := res.Entities.String(model.SlotDestination); dest != "三亚" {
		t.Errorf("destination = %q, want 三亚", dest)
	}
	if budget, _ := res.Entities.Int(model.SlotBudget); budget != 10000 {
		t.Errorf("budget = %d, want 10000", budget)
	}
}

func TestRecognize_UnknownNeedsClarification(t *testing.T) {
	r := newLocalRecognizer(t)

	res := r.Recognize(context.Background(), "嗯嗯哈哈")

	if res.Intent != model.IntentUnknown {
		t.Errorf("intent = %s, want %s", res.Intent, model.IntentUnknown)
	}
	if !res.NeedsClarification {
		t.Error("unknown intent must request clarification")
	}
	if res.ClarificationQuestion == "" {
		t.Error("unknown intent must carry a clarification question")
	}
}

func TestRecognize_LocalDeterminism(t *testing.T) {
	r := newLocalRecognizer(t)
	ctx := context.Background()
	input := "帮我订北京到上海的机票，3个人"

	first := r.Recognize(ctx, input)
	for i := 0; i < 5; i++ {
		got := r.Recognize(ctx, input)
		if !reflect.DeepEqual(first, got) {
			t.Fatalf("call %d differed: %+v vs %+v", i, first, got)
		}
	}
}

func TestRecognize_TieBreakFollowsPriorityOrder(t *testing.T) {
	r := newLocalRecognizer(t)

	// One hotel keyword and one travel keyword: equal scores; the hotel
	// category is listed earlier in the priority order and must win.
	res := r.Recognize(context.Background(), "旅游住的酒店")
	if res.Intent != model.IntentHotelSearch {
		t.Errorf("intent = %s, want %s", res.Intent, model.IntentHotelSearch)
	}
}

func TestRecognize_ActionFirstMatchOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Action
	}{
		// 帮我 belongs to PLAN, but 预订 is listed earlier and wins.
		{"book beats plan", "帮我预订机票", model.ActionBook},
		{"recommend", "有什么好玩的景点", model.ActionRecommend},
		{"default is search", "三亚机票", model.ActionSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newLocalRecognizer(t)
			res := r.Recognize(context.Background(), tt.input)
			if res.Action != tt.want {
				t.Errorf("action = %s, want %s", res.Action, tt.want)
			}
		})
	}
}

func TestRecognize_RemotePath(t *testing.T) {
	llm := &mockGenerator{
		available: true,
		generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse("分类结果：{\"intent\":\"HOTEL_SEARCH\",\"action\":\"BOOK\",\"confidence\":0.92,\"entities\":{\"destination\":\"三亚\"}}"), nil
		},
	}
	dates, _ := datemath.NewParser("Asia/Shanghai")
	r := recognizer.New("test-session", llm, dates, log.Noop())

	res := r.Recognize(context.Background(), "帮我订三亚的酒店")

	if llm.callCount != 1 {
		t.Fatalf("expected one remote call, got %d", llm.callCount)
	}
	if res.Intent != model.IntentHotelSearch {
		t.Errorf("intent = %s, want %s", res.Intent, model.IntentHotelSearch)
	}
	if res.Action != model.ActionBook {
		t.Errorf("action = %s, want %s", res.Action, model.ActionBook)
	}
	if res.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", res.Confidence)
	}
	if dest, _ := res.Entities.String(model.SlotDestination); dest != "三亚" {
		t.Errorf("destination = %q, want 三亚", dest)
	}
}

func TestRecognize_RemoteEntitiesMergeOverCollected(t *testing.T) {
	llm := &mockGenerator{
		available: true,
		generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse(`{"intent":"TRAVEL_PLAN","entities":{"destination":"上海"}}`), nil
		},
	}
	dates, _ := datemath.NewParser("Asia/Shanghai")
	r := recognizer.New("test-session", llm, dates, log.Noop())

	r.UpdateContext(model.RoleUser, "我想去三亚", model.IntentTravelPlan,
		model.Entities{model.SlotDestination: "三亚", model.SlotBudget: 5000})

	res := r.Recognize(context.Background(), "改成去上海吧")

	if dest, _ := res.Entities.String(model.SlotDestination); dest != "上海" {
		t.Errorf("new destination must win, got %q", dest)
	}
	if budget, ok := res.Entities.Int(model.SlotBudget); !ok || budget != 5000 {
		t.Errorf("unrelated collected budget must persist, got %d (ok=%t)", budget, ok)
	}
}

func TestRecognize_RemoteFailureFallsBackWithoutContextMutation(t *testing.T) {
	tests := []struct {
		name     string
		generate func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	}{
		{
			name: "transport error",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "no JSON in reply",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse("我不确定你的意思。"), nil
			},
		},
		{
			name: "malformed JSON",
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(`{"intent": TRAVEL_PLAN}`), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockGenerator{available: true, generateFunc: tt.generate}
			dates, _ := datemath.NewParser("Asia/Shanghai")
			r := recognizer.New("test-session", llm, dates, log.Noop())

			historyBefore := len(r.Context().History)
			res := r.Recognize(context.Background(), "我想去三亚玩，预算1万")

			if llm.callCount != 1 {
				t.Fatalf("expected one remote attempt, got %d", llm.callCount)
			}
			// Local fallback must still find the category and entities.
			if res.Intent != model.IntentTravelPlan {
				t.Errorf("fallback intent = %s, want %s", res.Intent, model.IntentTravelPlan)
			}
			if dest, _ := res.Entities.String(model.SlotDestination); dest != "三亚" {
				t.Errorf("fallback destination = %q, want 三亚", dest)
			}
			if len(r.Context().History) != historyBefore {
				t.Error("failed remote attempt must not mutate context")
			}
		})
	}
}

func TestUpdateContext_LastWriteWins(t *testing.T) {
	r := newLocalRecognizer(t)

	r.UpdateContext(model.RoleUser, "去A", model.IntentTravelPlan, model.Entities{model.SlotDestination: "A"})
	r.UpdateContext(model.RoleUser, "改去B", model.IntentTravelPlan, model.Entities{model.SlotDestination: "B"})

	dest, _ := r.Context().State.CollectedEntities.String(model.SlotDestination)
	if dest != "B" {
		t.Errorf("destination = %q, want B", dest)
	}
}

func TestClearContext_Idempotent(t *testing.T) {
	r := newLocalRecognizer(t)
	r.UpdateContext(model.RoleUser, "我想去三亚", model.IntentTravelPlan, model.Entities{model.SlotDestination: "三亚"})

	r.ClearContext()
	r.ClearContext()

	if len(r.Context().History) != 0 {
		t.Error("history survived clear")
	}
	if len(r.Context().State.CollectedEntities) != 0 {
		t.Error("entities survived clear")
	}
	if r.Context().SessionID != "test-session" {
		t.Error("session id must survive clear")
	}
}
