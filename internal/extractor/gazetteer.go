package extractor

// destinationGazetteer is the allow-list of place names the extractor
// recognizes. First textual match in the input wins, so more specific
// names should come before names they contain.
var destinationGazetteer = []string{
	// Domestic
	"三亚", "北京", "上海", "广州", "深圳", "成都", "杭州", "西安", "重庆",
	"厦门", "丽江", "大理", "桂林", "青岛", "昆明", "拉萨", "哈尔滨", "南京",
	"苏州", "武汉", "长沙", "西双版纳", "张家界", "敦煌", "乌鲁木齐", "呼伦贝尔",
	"香港", "澳门", "台北",
	// International
	"东京", "大阪", "京都", "首尔", "曼谷", "清迈", "普吉岛", "新加坡",
	"吉隆坡", "巴厘岛", "马尔代夫", "迪拜", "巴黎", "伦敦", "罗马", "纽约",
	"洛杉矶", "悉尼", "墨尔本",
}

// destinationDenylist holds generic vocabulary that produces false city
// matches: "不大理解" contains 大理, "马上海运" contains 上海. A gazetteer
// match whose span overlaps an occurrence of one of these words is
// rejected; the deny check always wins over the positive match.
var destinationDenylist = []string{
	"计划", "规划", "帮助", "帮我", "安排", "攻略", "预算", "推荐",
	"理解", "马上", "海运", "大概", "大约",
}
