package chronicle

// planetNames is the pool colony placeholders draw from in random generation.
var planetNames = []string{
	"新伊甸", "太阳城", "星辰港", "晨曦星", "暮光城", "银河港", "星云基地", "虹光星",
	"黄金港", "蓝宝石城", "翡翠星", "钻石港", "水晶城", "珍珠港", "琥珀星", "玛瑙城",
	"自由港", "和平星", "希望城", "繁荣港", "兴旺星", "昌盛城", "富饶港", "丰收星",
	"北极星", "南十字", "天狼星", "织女星", "牛郎星", "北斗星", "启明星", "长庚星",
	"凤凰城", "龙腾港", "麒麟星", "玄武城", "朱雀港", "白虎星", "青龙城", "神鹰港",
	"雷神港", "海神城", "火神星", "土神港", "木神城", "金神星", "水神港", "风神城",
}

// empireNames is the pool faction placeholders draw from in random generation.
var empireNames = []string{
	"星辰联邦", "银河共和国", "天狼帝国", "织女联盟", "北极星王国", "天鹰联邦",
	"猎户座帝国", "仙女座联盟", "半人马联邦", "天龙帝国", "凤凰共和国", "麒麟王国",
	"白虎联盟", "青龙帝国", "朱雀联邦", "玄武王国", "神鹰共和国", "雷神联盟",
	"海神帝国", "火神王国", "风神联邦", "土神共和国", "水神联盟", "木神帝国",
	"金神王国", "日神联邦", "月神共和国", "星神联盟", "光明帝国", "黑暗联邦",
	"永恒王国", "无限共和国", "至高联盟", "终极帝国", "绝对王国", "完美联邦",
	"和谐共和国", "统一联盟", "秩序帝国", "正义王国", "自由联邦", "平等共和国",
}

// leviathanNames maps creature type tags to display names. Named tags come
// from a leviathan_type field; numeric tags are the first two numbers of a
// number-list payload.
var leviathanNames = map[string]string{
	"guardian_dragon":      "以太巨龙",
	"guardian_sphere":      "神秘球体",
	"guardian_dreadnought": "古代无畏舰",
	"guardian_horror":      "恐惧实体",
	"guardian_fortress":    "装甲堡垒",
	"0 39":                 "神秘堡垒",
	"0 134217816":          "幽魂",
}

const (
	unknownLeviathanName = "未知星神兽" // type tag present but not in leviathanNames
	untypedLeviathanName = "神秘星神兽" // no type tag at all
)

// literalDefaults is the last resort for a placeholder with no other value.
var literalDefaults = map[string]string{
	"location":        "未知星系",
	"system_name":     "未知恒星系",
	"leader_name":     "未知领袖",
	"planet_name":     "未知星球",
	"fleet_name":      "无敌舰队",
	"ship_name":       "旗舰",
	"new_capital":     "新首都",
	"target_empire":   "未知帝国",
	"defeated_empire": "未知帝国",
	"subject_empire":  "未知帝国",
	"fallen_empire":   "未知失落帝国",
}

// empireRoles describes each faction placeholder in requirement hints.
var empireRoles = map[string]string{
	"target_empire":   "目标帝国",
	"defeated_empire": "被击败帝国",
	"subject_empire":  "附庸帝国",
	"fallen_empire":   "失落帝国",
}
