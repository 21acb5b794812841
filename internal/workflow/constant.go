package workflow

// Log prefixes
const (
	LogPrefixStart   = "internal.workflow.Start"
	LogPrefixAdvance = "internal.workflow.AdvancePhase"
	LogPrefixPlan    = "internal.workflow.GeneratePlan"
)

// Phase ids
const (
	PhaseTravelDestination PhaseID = "travel_destination"
	PhaseTravelDates       PhaseID = "travel_dates"
	PhaseTravelBudget      PhaseID = "travel_budget"
	PhaseTravelSummary     PhaseID = "travel_summary"

	PhaseStudySubject   PhaseID = "study_subject"
	PhaseStudyTimeframe PhaseID = "study_timeframe"
	PhaseStudySummary   PhaseID = "study_summary"

	PhaseProjectBasics   PhaseID = "project_basics"
	PhaseProjectTimeline PhaseID = "project_timeline"
	PhaseProjectSummary  PhaseID = "project_summary"

	PhaseEventBasics  PhaseID = "event_basics"
	PhaseEventDate    PhaseID = "event_date"
	PhaseEventSummary PhaseID = "event_summary"

	PhaseHabitBasics  PhaseID = "habit_basics"
	PhaseHabitCadence PhaseID = "habit_cadence"
	PhaseHabitSummary PhaseID = "habit_summary"
)

// Plan templates
const (
	PlanTitleTravel  = "%s旅行计划"
	PlanTitleStudy   = "「%s」学习计划"
	PlanTitleProject = "项目「%s」规划"
	PlanTitleEvent   = "「%s」活动方案"
	PlanTitleHabit   = "「%s」养成计划"

	SectionOverview   = "行程概览"
	SectionBudget     = "预算安排"
	SectionSuggestion = "出行建议"
	SectionGoal       = "目标"
	SectionSchedule   = "时间安排"
	SectionMilestones = "里程碑"
	SectionGuests     = "宾客与准备"
	SectionCadence    = "打卡节奏"
)
