package workflow

import (
	"context"
	"fmt"
	"strings"

	"smart-planner/internal/model"
)

// GeneratePlan builds the terminal deliverable for the active workflow
// from collected entities. It performs no I/O: searches the plan needs
// (flights, hotels, attractions) are requested as widget directives for
// external collaborators to fulfill.
func (e *Engine) GeneratePlan(ctx context.Context, entities model.Entities) (*model.PlanOutput, error) {
	if e.state == nil {
		return nil, ErrNoActiveWorkflow
	}

	var plan *model.PlanOutput
	switch e.state.Domain {
	case model.DomainTravel:
		plan = travelPlan(entities)
	case model.DomainStudy:
		plan = studyPlan(entities)
	case model.DomainProject:
		plan = projectPlan(entities)
	case model.DomainEvent:
		plan = eventPlan(entities)
	case model.DomainHabit:
		plan = habitPlan(entities)
	default:
		return nil, fmt.Errorf("%w: unknown domain %s", ErrNoActiveWorkflow, e.state.Domain)
	}

	e.l.Infof(ctx, "%s: domain=%s title=%s", LogPrefixPlan, plan.Domain, plan.Title)
	return plan, nil
}

func travelPlan(entities model.Entities) *model.PlanOutput {
	dest, _ := entities.String(model.SlotDestination)

	var overview strings.Builder
	overview.WriteString(fmt.Sprintf("目的地：%s。", dest))
	if origin, ok := entities.String(model.SlotOrigin); ok {
		overview.WriteString(fmt.Sprintf("从%s出发。", origin))
	}
	if dates, ok := entities.Dates(model.SlotDates); ok {
		overview.WriteString(fmt.Sprintf("出行日期：%s 至 %s。", dates.Start, dates.End))
	}
	if travelers, ok := entities.Int(model.SlotTravelers); ok {
		overview.WriteString(fmt.Sprintf("同行%d人。", travelers))
	}

	budgetBody := "预算未设定，可根据机票和酒店报价再调整。"
	if budget, ok := entities.Int(model.SlotBudget); ok {
		budgetBody = fmt.Sprintf("总预算%d元，建议六成留给交通和住宿，其余用于餐饮和游玩。", budget)
	}

	suggestion := "行前确认证件和天气，热门景点建议提前订票。"
	if mode, ok := entities.String(model.SlotTransportMode); ok {
		suggestion = fmt.Sprintf("已选择%s出行。", mode) + suggestion
	}

	searchPayload := map[string]any{"city": dest}
	if dates, ok := entities.Dates(model.SlotDates); ok {
		searchPayload["startDate"] = dates.Start
		searchPayload["endDate"] = dates.End
	}

	return &model.PlanOutput{
		Domain: model.DomainTravel,
		Title:  fmt.Sprintf(PlanTitleTravel, dest),
		Sections: []model.PlanSection{
			{Heading: SectionOverview, Body: overview.String()},
			{Heading: SectionBudget, Body: budgetBody},
			{Heading: SectionSuggestion, Body: suggestion},
		},
		Widgets: []model.WidgetDirective{
			{Type: model.WidgetFlightSearch, Payload: searchPayload},
			{Type: model.WidgetHotelSearch, Payload: searchPayload},
			{Type: model.WidgetAttractionCards, Payload: map[string]any{"city": dest}},
			{Type: model.WidgetMapView, Payload: map[string]any{"city": dest}},
		},
	}
}

func studyPlan(entities model.Entities) *model.PlanOutput {
	subject, _ := entities.String(model.SlotSubject)

	goal := fmt.Sprintf("系统学习「%s」，按阶段推进并定期复盘。", subject)

	schedule := "学习截止日期未设定。"
	if deadline, ok := entities.String(model.SlotDeadline); ok {
		schedule = fmt.Sprintf("目标完成日期：%s。", deadline)
	}
	if hours, ok := entities.Int(model.SlotDailyHours); ok {
		schedule += fmt.Sprintf("每天投入%d小时。", hours)
	}

	return &model.PlanOutput{
		Domain: model.DomainStudy,
		Title:  fmt.Sprintf(PlanTitleStudy, subject),
		Sections: []model.PlanSection{
			{Heading: SectionGoal, Body: goal},
			{Heading: SectionSchedule, Body: schedule},
		},
		Widgets: []model.WidgetDirective{
			{Type: model.WidgetChecklist, Payload: map[string]any{"subject": subject}},
			{Type: model.WidgetTimeline, Payload: map[string]any{"subject": subject}},
		},
	}
}

func projectPlan(entities model.Entities) *model.PlanOutput {
	name, _ := entities.String(model.SlotProjectName)

	milestones := "按需求、开发、验收三个阶段拆分里程碑。"
	if deadline, ok := entities.String(model.SlotDeadline); ok {
		milestones = fmt.Sprintf("交付截止：%s。", deadline) + milestones
	}
	if team, ok := entities.Int(model.SlotTeamSize); ok {
		milestones += fmt.Sprintf("团队规模%d人，任务按人头拆分。", team)
	}

	return &model.PlanOutput{
		Domain: model.DomainProject,
		Title:  fmt.Sprintf(PlanTitleProject, name),
		Sections: []model.PlanSection{
			{Heading: SectionGoal, Body: fmt.Sprintf("按期交付项目「%s」。", name)},
			{Heading: SectionMilestones, Body: milestones},
		},
		Widgets: []model.WidgetDirective{
			{Type: model.WidgetTimeline, Payload: map[string]any{"project": name}},
			{Type: model.WidgetChecklist, Payload: map[string]any{"project": name}},
		},
	}
}

func eventPlan(entities model.Entities) *model.PlanOutput {
	name, _ := entities.String(model.SlotEventName)

	schedule := "活动日期未设定。"
	if date, ok := entities.String(model.SlotEventDate); ok {
		schedule = fmt.Sprintf("活动日期：%s。提前两周确认场地，提前三天发提醒。", date)
	}

	guests := "宾客名单待定。"
	if count, ok := entities.Int(model.SlotGuests); ok {
		guests = fmt.Sprintf("预计%d位宾客，按人数准备餐饮和座位。", count)
	}

	return &model.PlanOutput{
		Domain: model.DomainEvent,
		Title:  fmt.Sprintf(PlanTitleEvent, name),
		Sections: []model.PlanSection{
			{Heading: SectionSchedule, Body: schedule},
			{Heading: SectionGuests, Body: guests},
		},
		Widgets: []model.WidgetDirective{
			{Type: model.WidgetChecklist, Payload: map[string]any{"event": name}},
		},
	}
}

func habitPlan(entities model.Entities) *model.PlanOutput {
	name, _ := entities.String(model.SlotHabitName)

	cadence := "节奏未设定，建议从每周三次开始。"
	if freq, ok := entities.String(model.SlotFrequency); ok {
		cadence = fmt.Sprintf("打卡频率：%s。前三周重在坚持，不追求强度。", freq)
	}

	return &model.PlanOutput{
		Domain: model.DomainHabit,
		Title:  fmt.Sprintf(PlanTitleHabit, name),
		Sections: []model.PlanSection{
			{Heading: SectionGoal, Body: fmt.Sprintf("把「%s」变成稳定的日常习惯。", name)},
			{Heading: SectionCadence, Body: cadence},
		},
		Widgets: []model.WidgetDirective{
			{Type: model.WidgetChecklist, Payload: map[string]any{"habit": name}},
		},
	}
}
