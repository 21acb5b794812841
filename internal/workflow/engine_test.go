package workflow_test

import (
	"context"
	"testing"

	"smart-planner/internal/model"
	"smart-planner/internal/workflow"
	"smart-planner/pkg/log"
)

func startTravel(t *testing.T) *workflow.Engine {
	t.Helper()
	e := workflow.New(log.Noop())
	if !e.Start(context.Background(), model.IntentResult{Intent: model.IntentTravelPlan}) {
		t.Fatal("travel intent should start a workflow")
	}
	return e
}

func TestStart_DomainSelection(t *testing.T) {
	tests := []struct {
		name       string
		result     model.IntentResult
		wantStart  bool
		wantDomain model.Domain
	}{
		{
			name:       "travel plan intent",
			result:     model.IntentResult{Intent: model.IntentTravelPlan},
			wantStart:  true,
			wantDomain: model.DomainTravel,
		},
		{
			name:       "flight search maps to travel",
			result:     model.IntentResult{Intent: model.IntentFlightSearch},
			wantStart:  true,
			wantDomain: model.DomainTravel,
		},
		{
			name: "explicit domain entity wins over intent",
			result: model.IntentResult{
				Intent:   model.IntentTravelPlan,
				Entities: model.Entities{model.SlotDomain: "study"},
			},
			wantStart:  true,
			wantDomain: model.DomainStudy,
		},
		{
			name:      "general chat has no workflow",
			result:    model.IntentResult{Intent: model.IntentGeneralChat},
			wantStart: false,
		},
		{
			name:      "unknown has no workflow",
			result:    model.IntentResult{Intent: model.IntentUnknown},
			wantStart: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := workflow.New(log.Noop())
			got := e.Start(context.Background(), tt.result)
			if got != tt.wantStart {
				t.Fatalf("Start = %t, want %t", got, tt.wantStart)
			}
			if !tt.wantStart {
				if e.Active() {
					t.Error("engine should stay inactive")
				}
				return
			}
			if e.State().Domain != tt.wantDomain {
				t.Errorf("domain = %s, want %s", e.State().Domain, tt.wantDomain)
			}
			if len(e.State().CompletedPhases) != 0 {
				t.Errorf("fresh workflow should have no completed phases")
			}
		})
	}
}

func TestStart_SameDomainKeepsProgress(t *testing.T) {
	e := startTravel(t)
	e.AdvancePhase(context.Background(), model.Entities{model.SlotDestination: "三亚"})
	phase := e.State().CurrentPhaseID

	e.Start(context.Background(), model.IntentResult{Intent: model.IntentHotelSearch})
	if e.State().CurrentPhaseID != phase {
		t.Errorf("same-domain restart moved phase to %s", e.State().CurrentPhaseID)
	}
}

func TestStart_DifferentDomainDiscardsState(t *testing.T) {
	e := startTravel(t)
	e.AdvancePhase(context.Background(), model.Entities{model.SlotDestination: "三亚"})

	e.Start(context.Background(), model.IntentResult{Intent: model.IntentStudyPlan})
	if e.State().Domain != model.DomainStudy {
		t.Fatalf("domain = %s, want study", e.State().Domain)
	}
	if len(e.State().CompletedPhases) != 0 {
		t.Error("new domain must start with empty completed phases")
	}
}

func TestCurrentWidgets_PhaseOrderGatesRequests(t *testing.T) {
	e := startTravel(t)

	// Empty entities: only the destination slot is requested.
	widgets := e.CurrentWidgets(model.Entities{})
	if len(widgets) != 1 || widgets[0].Type != model.WidgetTextInput {
		t.Fatalf("expected one text_input widget, got %v", widgets)
	}
	if widgets[0].Payload["slot"] != string(model.SlotDestination) {
		t.Errorf("expected destination request, got %v", widgets[0].Payload)
	}

	// Budget already known must not surface a budget request while the
	// workflow is still in the destination phase.
	widgets = e.CurrentWidgets(model.Entities{model.SlotBudget: 10000})
	for _, w := range widgets {
		if w.Type == model.WidgetBudgetSlider {
			t.Error("budget widget requested before the budget phase")
		}
	}
}

func TestAdvancePhase_Monotonicity(t *testing.T) {
	e := startTravel(t)
	ctx := context.Background()

	// Predicate false: state unchanged.
	e.AdvancePhase(ctx, model.Entities{})
	if got := e.State().CurrentPhaseID; got != "travel_destination" {
		t.Fatalf("no-op advance moved phase to %s", got)
	}
	if len(e.State().CompletedPhases) != 0 {
		t.Fatal("no-op advance appended a completed phase")
	}

	// Predicate true: phase appended exactly once, current moves on.
	e.AdvancePhase(ctx, model.Entities{model.SlotDestination: "三亚"})
	if got := e.State().CurrentPhaseID; got != "travel_dates" {
		t.Fatalf("phase = %s, want travel_dates", got)
	}
	if len(e.State().CompletedPhases) != 1 {
		t.Fatalf("completed phases = %v, want one entry", e.State().CompletedPhases)
	}
}

func TestAdvancePhase_Termination(t *testing.T) {
	e := startTravel(t)
	ctx := context.Background()
	entities := model.Entities{
		model.SlotDestination: "三亚",
		model.SlotDates:       model.DateRange{Start: "2025-12-25", End: "2026-01-02"},
		model.SlotBudget:      10000,
	}

	// destination → dates → budget → summary (terminal).
	e.AdvancePhase(ctx, entities)
	e.AdvancePhase(ctx, entities)
	e.AdvancePhase(ctx, entities)
	if e.State().IsComplete {
		t.Fatal("workflow complete before terminal phase advanced")
	}

	e.AdvancePhase(ctx, entities)
	if !e.State().IsComplete {
		t.Fatal("terminal phase with satisfied predicate must complete the workflow")
	}

	completed := len(e.State().CompletedPhases)
	e.AdvancePhase(ctx, entities)
	e.AdvancePhase(ctx, entities)
	if len(e.State().CompletedPhases) != completed {
		t.Error("advancing a completed workflow must be a no-op")
	}
	if e.CurrentWidgets(model.Entities{}) != nil {
		t.Error("completed workflow must not request widgets")
	}
}

func TestGeneratePlan(t *testing.T) {
	t.Run("no active workflow", func(t *testing.T) {
		e := workflow.New(log.Noop())
		if _, err := e.GeneratePlan(context.Background(), model.Entities{}); err == nil {
			t.Error("expected error without an active workflow")
		}
	})

	t.Run("travel plan interpolates entities and requests searches", func(t *testing.T) {
		e := startTravel(t)
		plan, err := e.GeneratePlan(context.Background(), model.Entities{
			model.SlotDestination: "三亚",
			model.SlotDates:       model.DateRange{Start: "2025-12-25", End: "2026-01-02"},
			model.SlotBudget:      10000,
		})
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		if plan.Title != "三亚旅行计划" {
			t.Errorf("title = %q", plan.Title)
		}
		if len(plan.Sections) != 3 {
			t.Errorf("sections = %d, want 3", len(plan.Sections))
		}
		types := map[model.WidgetType]bool{}
		for _, w := range plan.Widgets {
			types[w.Type] = true
		}
		for _, want := range []model.WidgetType{
			model.WidgetFlightSearch, model.WidgetHotelSearch,
			model.WidgetAttractionCards, model.WidgetMapView,
		} {
			if !types[want] {
				t.Errorf("missing widget %s", want)
			}
		}
	})

	t.Run("study plan", func(t *testing.T) {
		e := workflow.New(log.Noop())
		e.Start(context.Background(), model.IntentResult{Intent: model.IntentStudyPlan})
		plan, err := e.GeneratePlan(context.Background(), model.Entities{
			model.SlotSubject:  "高等数学",
			model.SlotDeadline: "2025-09-01",
		})
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		if plan.Domain != model.DomainStudy {
			t.Errorf("domain = %s", plan.Domain)
		}
		if plan.Title != "「高等数学」学习计划" {
			t.Errorf("title = %q", plan.Title)
		}
	})
}

func TestReset_Idempotent(t *testing.T) {
	e := startTravel(t)
	e.Reset()
	e.Reset()
	if e.Active() {
		t.Error("engine active after reset")
	}
	if e.CurrentWidgets(model.Entities{}) != nil {
		t.Error("reset engine must not request widgets")
	}
}
