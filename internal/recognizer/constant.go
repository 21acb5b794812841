package recognizer

// Log prefixes
const (
	LogPrefixRecognize = "internal.recognizer.Recognize"
)

// Classification prompt. The remote model must answer with a single JSON
// object; everything around it is stripped before parsing.
const (
	PromptRecognizerSystem = `你是一个智能规划助手的意图识别器。分析用户消息，判断意图并抽取实体。

可能的意图：
1. TRAVEL_PLAN: 旅行规划（去某地玩、度假、做行程）
2. FLIGHT_SEARCH: 查机票、航班
3. HOTEL_SEARCH: 查酒店、住宿
4. ATTRACTION_SEARCH: 查景点、攻略
5. STUDY_PLAN: 学习计划（备考、复习、课程）
6. PROJECT_PLAN: 项目计划（开发、上线、排期）
7. EVENT_PLAN: 活动策划（聚会、婚礼、年会）
8. HABIT_PLAN: 习惯养成（健身、早起、打卡）
9. GENERAL_CHAT: 闲聊、问功能
10. UNKNOWN: 无法判断

可抽取的实体键：destination, origin, dates({start,end}，格式YYYY-MM-DD), travelers, budget（数字，单位元）, transportMode(flight|train|car|bus), subject, deadline, projectName, eventName, eventDate, guests, habitName, frequency, domain。

只返回一个JSON对象，不要任何其他文字：
{
  "intent": "TRAVEL_PLAN|FLIGHT_SEARCH|HOTEL_SEARCH|ATTRACTION_SEARCH|STUDY_PLAN|PROJECT_PLAN|EVENT_PLAN|HABIT_PLAN|GENERAL_CHAT|UNKNOWN",
  "action": "SEARCH|PLAN|BOOK|QUERY|RECOMMEND",
  "confidence": 0.0-1.0,
  "entities": {},
  "needsClarification": false,
  "clarificationQuestion": "",
  "suggestedResponse": ""
}`

	PromptContextHeader = "当前会话状态：\n"
	PromptHistoryHeader = "最近对话：\n"
)

// Recognizer configuration
const (
	RecognizerTemperature = 0.1
	RecognizerMaxTokens   = 512

	// DefaultRemoteConfidence replaces a missing or non-numeric confidence
	// in the remote reply.
	DefaultRemoteConfidence = 0.5

	// LocalConfidence is the flat confidence of the keyword path. It sits
	// below what a healthy remote classifier reports.
	LocalConfidence = 0.6

	// MaxHistoryMessages bounds stored history; PromptHistoryWindow bounds
	// how much of it goes into the classification prompt.
	MaxHistoryMessages  = 20
	PromptHistoryWindow = 6
)

// Clarification texts
const (
	ClarificationFallback = "抱歉，我没太明白您的意思。您是想规划旅行、学习、项目、活动，还是养成一个习惯呢？"
)
