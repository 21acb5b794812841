package orchestrator_test

import (
	"context"
	"testing"
	"time"

	"smart-planner/internal/model"
	"smart-planner/internal/orchestrator"
	"smart-planner/pkg/datemath"
	"smart-planner/pkg/log"
)

func newLocalOrchestrator(t *testing.T) *orchestrator.Orchestrator {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return orchestrator.New(orchestrator.Config{MaxSessions: 16, TTL: time.Minute}, nil, dates, log.Noop())
}

func TestProcessTurn_EmptyMessage(t *testing.T) {
	o := newLocalOrchestrator(t)
	if _, err := o.ProcessTurn(context.Background(), "s1", "   "); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestProcessTurn_MintsSessionID(t *testing.T) {
	o := newLocalOrchestrator(t)
	out, err := o.ProcessTurn(context.Background(), "", "你好")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if out.SessionID == "" {
		t.Error("expected a minted session id")
	}
}

func TestProcessTurn_TravelScenario(t *testing.T) {
	o := newLocalOrchestrator(t)
	ctx := context.Background()

	out, err := o.ProcessTurn(ctx, "s1", "我想去三亚玩，预算1万")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	if out.Intent != model.IntentTravelPlan {
		t.Errorf("intent = %s, want %s", out.Intent, model.IntentTravelPlan)
	}
	if out.NeedsClarification {
		t.Error("category was found; no clarification needed")
	}
	if dest, _ := out.Entities.String(model.SlotDestination); dest != "三亚" {
		t.Errorf("destination = %q, want 三亚", dest)
	}
	if budget, _ := out.Entities.Int(model.SlotBudget); budget != 10000 {
		t.Errorf("budget = %d, want 10000", budget)
	}

	// The workflow sits in the dates phase now: a date_range request must
	// be present, a budget request must not (budget is already known and
	// its phase has not been reached anyway).
	var sawDateRange, sawBudget bool
	for _, w := range out.Widgets {
		switch w.Type {
		case model.WidgetDateRange:
			sawDateRange = true
		case model.WidgetBudgetSlider:
			sawBudget = true
		}
	}
	if !sawDateRange {
		t.Error("expected a date_range widget request")
	}
	if sawBudget {
		t.Error("budget widget requested out of phase order")
	}
	if out.Plan != nil {
		t.Error("plan generated before the workflow finished")
	}
}

func TestProcessTurn_OneWidgetPerSlot(t *testing.T) {
	o := newLocalOrchestrator(t)

	// No destination yet: the router's follow-up and the workflow's
	// destination phase both want the slot, but only one widget may ask.
	out, err := o.ProcessTurn(context.Background(), "s1", "我想去旅游")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	slotCounts := make(map[string]int)
	for _, w := range out.Widgets {
		if slot, ok := w.Payload["slot"].(string); ok && slot != "" {
			slotCounts[slot]++
		}
	}
	if slotCounts[string(model.SlotDestination)] != 1 {
		t.Errorf("destination requested %d times, want exactly once (widgets: %v)",
			slotCounts[string(model.SlotDestination)], out.Widgets)
	}
	for slot, n := range slotCounts {
		if n > 1 {
			t.Errorf("slot %s requested %d times in one turn", slot, n)
		}
	}
}

func TestProcessTurn_FollowUpCompletesWorkflow(t *testing.T) {
	o := newLocalOrchestrator(t)
	ctx := context.Background()

	if _, err := o.ProcessTurn(ctx, "s1", "我想去三亚玩，预算1万"); err != nil {
		t.Fatalf("turn 1: %v", err)
	}

	// The follow-up carries no intent keywords; the active workflow still
	// consumes the date range and runs to completion.
	out, err := o.ProcessTurn(ctx, "s1", "12月25日到1月2日")
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}

	if out.Plan == nil {
		t.Fatal("expected a generated plan once all phases completed")
	}
	if out.Plan.Domain != model.DomainTravel {
		t.Errorf("plan domain = %s, want travel", out.Plan.Domain)
	}
	if out.Plan.Title != "三亚旅行计划" {
		t.Errorf("plan title = %q", out.Plan.Title)
	}

	plan, err := o.LastPlan("s1")
	if err != nil {
		t.Fatalf("LastPlan: %v", err)
	}
	if plan.Title != out.Plan.Title {
		t.Error("LastPlan should return the turn's plan")
	}
}

func TestProcessTurn_SessionIsolation(t *testing.T) {
	o := newLocalOrchestrator(t)
	ctx := context.Background()

	if _, err := o.ProcessTurn(ctx, "a", "我想去三亚玩"); err != nil {
		t.Fatalf("session a: %v", err)
	}
	out, err := o.ProcessTurn(ctx, "b", "帮我规划去北京旅游")
	if err != nil {
		t.Fatalf("session b: %v", err)
	}

	if dest, _ := out.Entities.String(model.SlotDestination); dest != "北京" {
		t.Errorf("session b destination = %q, want 北京", dest)
	}

	snapA, err := o.Snapshot("a")
	if err != nil {
		t.Fatalf("Snapshot a: %v", err)
	}
	if dest, _ := snapA.Entities.String(model.SlotDestination); dest != "三亚" {
		t.Errorf("session a destination = %q, want 三亚", dest)
	}
}

func TestReset_Idempotent(t *testing.T) {
	o := newLocalOrchestrator(t)
	ctx := context.Background()

	if _, err := o.ProcessTurn(ctx, "s1", "我想去三亚玩，预算1万"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	o.Reset(ctx, "s1")
	o.Reset(ctx, "s1")
	o.Reset(ctx, "never-seen")

	snap, err := o.Snapshot("s1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Entities) != 0 {
		t.Errorf("entities survived reset: %v", snap.Entities)
	}
	if len(snap.History) != 0 {
		t.Errorf("history survived reset: %d messages", len(snap.History))
	}
	if snap.Workflow != nil {
		t.Error("workflow state survived reset")
	}
	if _, err := o.LastPlan("s1"); err == nil {
		t.Error("expected no plan after reset")
	}
}

func TestSnapshot_UnknownSession(t *testing.T) {
	o := newLocalOrchestrator(t)
	if _, err := o.Snapshot("missing"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestProcessTurn_LocalOnlyModeReported(t *testing.T) {
	o := newLocalOrchestrator(t)
	if o.RemoteAvailable() {
		t.Error("nil provider must report remote unavailable")
	}
	if _, err := o.ProcessTurn(context.Background(), "s1", "你好"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	snap, err := o.Snapshot("s1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.RemoteAvailable {
		t.Error("snapshot must reflect local-only mode")
	}
}
