package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Follow-up questions for missing slots
const (
	MsgAskDestination = "你想去哪里呢？告诉我目的地，我来帮你安排。"
	MsgAskDates       = "打算什么时候出发？选一个日期范围吧。"
	MsgAskSubject     = "你想学习什么内容？"
	MsgAskProjectName = "这个项目叫什么名字？"
	MsgAskEventName   = "要筹备什么活动呢？"
	MsgAskHabitName   = "想养成什么习惯？"
)

// Response templates. Interpolated with collected entities.
const (
	MsgTravelPlanStart   = "好的，我们来规划%s之行！"
	MsgFlightSearching   = "正在为你查找飞往%s的航班。"
	MsgHotelSearching    = "正在为你查找%s的酒店。"
	MsgAttractionListing = "这些是%s值得一去的景点。"
	MsgStudyPlanStart    = "好的，我们来制定「%s」的学习计划。"
	MsgProjectPlanStart  = "好的，开始规划项目「%s」。"
	MsgEventPlanStart    = "好的，我们来筹备「%s」。"
	MsgHabitPlanStart    = "好的，一起来养成「%s」这个习惯。"
	MsgGeneralChat       = "我是你的智能规划助手，可以帮你安排旅行、学习、项目、活动和习惯计划。"
	MsgNotUnderstood     = "抱歉，我没有理解你的意思，可以换个说法吗？"
)

// Widget payload keys
const (
	payloadKeySlot        = "slot"
	payloadKeyLabel       = "label"
	payloadKeyCity        = "city"
	payloadKeyOrigin      = "origin"
	payloadKeyDestination = "destination"
	payloadKeyStartDate   = "startDate"
	payloadKeyEndDate     = "endDate"
	payloadKeyBudget      = "budget"
	payloadKeyTravelers   = "travelers"
)
