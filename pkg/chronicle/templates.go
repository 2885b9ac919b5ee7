package chronicle

// builtinTemplates maps definition codes to narrative templates. Each template
// reads title_subtitle_category_body; the body carries the [玩家帝国] marker
// and {placeholder} slots.
var builtinTemplates = map[string]string{
	"timeline_first_robot":                    "电动之躯_首台机器人_里程碑_[玩家帝国]在{location}首次组装了一台机器人",
	"timeline_first_precursor_discovered":     "太虚古迹_初见先驱者_里程碑_[玩家帝国]首次发现文明先驱",
	"timeline_first_precursor":                "太虚古迹_初见先驱者_里程碑_[玩家帝国]首次发现文明先驱",
	"timeline_first_colony":                   "新世界_殖民先登_里程碑_[玩家帝国]在{colony_name}首先设立了殖民地",
	"timeline_new_colony":                     "新殖民地_新殖民地_帝国事件_[玩家帝国]在{colony_name}设立殖民地",
	"timeline_elections":                      "选举_选举_帝国事件_[玩家帝国]举行了选举",
	"timeline_first_contact":                  "海内存知己_首遇智慧生命_里程碑_[玩家帝国]首先遭遇智慧生命",
	"timeline_first_ascension_perk":           "崇高之路_首个飞升天赋_里程碑_[玩家帝国]首次选择飞升天赋",
	"timeline_first_espionage_operation":      "行走的秘密_谍海初涉_里程碑_[玩家帝国]首次执行谍报活动",
	"timeline_first_rare_tech":                "创新先锋_首个稀有科技_里程碑_[玩家帝国]首次研究了稀有科技",
	"timeline_first_unique_system":            "千载一见_首得独特星系_里程碑_[玩家帝国]控制了一个独特的{system_name}恒星系",
	"timeline_first_max_level_leader_cap":     "举贤纳言_内阁扩容_里程碑_[玩家帝国]将内阁扩容到上限",
	"timeline_first_gateway":                  "群星之门_首见星门_里程碑_[玩家帝国]在{system_name}恒星系首次发现了一座远古星门",
	"timeline_first_species_modification":     "设计进化_首度物种修饰_里程碑_[玩家帝国]首次修饰了物种",
	"timeline_first_relic":                    "岁月遗珠_首获遗珍_里程碑_[玩家帝国]首次取得遗珍",
	"timeline_galactic_community_formed":      "新秩序_星海共同体_星系事件_星系的各国汇聚一堂形成一个政治实体。星海共同体建立了，这座集外交、辩论和权力斗争为一体的论坛将塑造群星的未来。它的实际作用还有待观察。",
	"timeline_first_storm":                    "再无宁港_首遇风暴_里程碑_[玩家帝国]在其境内的{system_name}恒星系首次遭遇粒子风暴",
	"timeline_first_shroud":                   "空间裂隙_初探星界裂隙_里程碑_[玩家帝国]首次探索星界裂隙",
	"timeline_first_destiny_trait":            "卓越之证_首获命定特质_里程碑_[玩家帝国]的{leader_name}首次获得命定特质",
	"timeline_synthetic_evolution":            "合成化_社会合成化_帝国事件_[玩家帝国]完成了合成飞升",
	"timeline_first_terraforming":             "星球新生_初探环境改造_里程碑_[玩家帝国]首次环境改造了{planet_name}",
	"timeline_first_war_declared":             "戒撼星际_首战打响_里程碑_[玩家帝国]首先向[帝国{target_empire}]宣战",
	"timeline_first_war_won":                  "星光凯旋_首获凯旋_里程碑_[玩家帝国]首次击败了[帝国{defeated_empire}]",
	"timeline_first_subject":                  "忠诚之链_第一附属国_里程碑_[玩家帝国]收[帝国{subject_empire}]为附庸",
	"timeline_first_wormhole":                 "宇宙密道_初探虫洞_里程碑_[玩家帝国]首次在{system_name}恒星系发现虫洞",
	"timeline_fallen_empire_encountered":      "失落帝国_失落帝国_帝国事件_[玩家帝国]遭遇了[堕落帝国{fallen_empire}]",
	"timeline_great_khan":                     "脱缰汗国_大可汗_危机事件_一位新起的军阀将支离破碎的掠夺者部落联合起来，锻造成一个无情的汗国。大汗带着等离子与碳纤维横扫星系，推翻帝国，奴役星球。无法无天的掠夺者现在以一个可怕的目标凝聚一群，舰队在他们的力量面前一支又一支崩溃。掠夺的时代结束，征服的纪元开始。",
	"timeline_first_repeatable_tech":          "学海无涯_首个循环科技_里程碑_[玩家帝国]首次研究了循环科技",
	"timeline_first_100k_fleet":               "无敌主宰_首支100K舰队_里程碑_[玩家帝国]首次组建了前所未有的强大舰队, {fleet_name}",
	"timeline_first_juggernaut":               "首舰下水_首舰下水_里程碑_[玩家帝国]首次建造了, {ship_name}",
	"timeline_war_declared":                   "宣战_宣战_帝国事件_[玩家帝国]向[帝国{target_empire}]宣战",
	"timeline_capital_changed":                "拔地而起_迁都_帝国事件_[玩家帝国]迁都至{new_capital}",
	"timeline_first_terraform":                "改天换地_首次环境改造_里程碑_[玩家帝国]进行了环境改造",
	"timeline_first_arc_site":                 "叩问古人_首次探索考古地点_里程碑_[玩家帝国]首次进行了考古地点发掘",
	"timeline_galactic_community_resolution":  "议案通过_星系事件_星海共同体已经发布了一则声明。一项新的决议即将重塑星际法则。有些文明欢欣鼓舞，其他文明则愤怒不已，但所有成员都必须遵从这一规定。",
	"timeline_first_vassal":                   "忠诚之链_第一附属国_里程碑_[玩家帝国]收某个帝国为附庸",
	"timeline_new_vassal":                     "再添附庸_新的仆从_帝国事件_[玩家帝国]又收了一个新的附庸",
	"timeline_first_astral_rift":              "空间裂隙_初探星界裂隙_里程碑_[玩家帝国]首次侦测到并探索了一处星界裂隙",
	"timeline_war_declared_attacker":          "战争号角_主动宣战_帝国事件_[玩家帝国]作为攻击方，向另一个帝国主动宣战",
	"timeline_first_storm_within_borders":     "虚空风暴_首遇风暴_里程碑_[玩家帝国]在境内首次遭遇了太空风暴",
	"timeline_meet_fallen_empire_discover":    "昔日巨像_遭遇失落帝国_帝国事件_[玩家帝国]的飞船遭遇了一个古老而停滞的失落帝国",
	"timeline_council_max_expansion":          "议会全席_内阁扩容_里程碑_[玩家帝国]将议会席位扩充至上限",
	"timeline_encountered_leviathan":          "眠者将醒_发现星神兽_帝国事件_[玩家帝国]遭遇了{leviathan_name}",
	"timeline_become_the_crisis":              "星海天罚_化身天灾_危机事件_黑暗已经降临银河系。[玩家帝国]抛弃了所有外交伪装，宣称自己是银河生存的最大威胁。他们的舰队正在集结，而情报人员则低声传递着一项最终的、末日般的计划。他们不再仅仅是一个帝国，而是演变成了一场危机。",
	"timeline_modularity":                     "全面模组_帝国事件_[玩家帝国]完全变为模组化",
	"timeline_destroyed_leviathan":            "守护者不再_摧毁星神兽_帝国事件_[玩家帝国]摧毁了{leviathan_name}",
	"timeline_first_deficit":                  "贪婪之价_首现赤字_里程碑_[玩家帝国]首次出现资源短缺",
	"timeline_deficit":                        "资源短缺_资源短缺_帝国事件_[玩家帝国]发生了资源短缺",
	"timeline_first_war_lost":                 "败者之尘_初尝败绩_里程碑_[玩家帝国]首次被[帝国{defeated_empire}]击败",
	"timeline_event_year":                     "年度标记_{date}_时光荏苒，{date}年悄然而至。",

	// origins
	"timeline_origin_default":                 "繁荣一统_帝国起源_[玩家帝国]通过斗争和胜利，这个社会已经实现了每一个年轻文明的抱负：一个有着统一目标的家园，一条通向璀璨繁星的道路",
	"timeline_origin_separatists":             "分离主义者_帝国起源_[玩家帝国]这个文明并非诞生于全球统一，而是由一群大胆的殖民者建立的，他们在一个崭新的世界上寻求自己的命运",
	"timeline_origin_mechanists":              "机械师_帝国起源_[玩家帝国]尽管该文明在生物层面仍是有机体，但他们早已对自动化的机器人劳工习以为常。他们已经将许多卑微（甚至不那么卑微）的苦差事都交给了自动化仆从",
	"timeline_origin_syncretic_evolution":     "协同进化_帝国起源_[玩家帝国]在一颗共享的母星上，两个不同的物种并肩演化，相得益彰。一个物种发展出了高级认知能力，而另一个物种则进化出了超凡的力量和耐力——这是一个完美的组合",
	"timeline_origin_life_seeded":             "生命之籽_帝国起源_[玩家帝国]这个文明在一位远超其想象的远古仁善存在的监护下逐渐演化，他们的母星是一颗完美的盖亚星球，这样的环境无疑是智慧生命发展的摇篮",
	"timeline_origin_post_apocalyptic":        "后启示录_帝国起源_[玩家帝国]在一场将母星变为辐射废土的灭世核战争之后，这个文明的幸存者们终于从地下的防辐射掩体中走了出来，准备在群星中建立一个新的、更光明的未来",
	"timeline_origin_remnants":                "复国孑遗_帝国起源_[玩家帝国]这个文明的母星曾是一个庞大、先进帝国的首都。但在一场神秘的灾难之后，帝国分崩离析，只留下了这个星球上不断衰败的城市和这个曾经自豪的文明的遗民",
	"timeline_origin_shattered_ring":          "破碎之环_帝国起源_[玩家帝国]这个文明并非在行星上，而是在一个巨大的人造环形世界的一部分上演化。尽管他们已经忘记了它的起源，但他们的祖先毫无疑问曾是技术大师",
	"timeline_origin_void_dwellers":           "虚空居者_帝国起源_[玩家帝国]数十万年来，这个文明的先辈们一直生活在他们太阳系深空的轨道栖息地里。对于他们而言，他们的母星只是一个被遗忘已久的传说——一个他们现在希望能重新发现的传说",
	"timeline_origin_scion":                   "先辈子弟_帝国起源_[玩家帝国]出于某种原因，一个古老而强大的堕落帝国对这个年轻的文明产生了兴趣，并决定将他们置于自己的羽翼之下。至于未来会怎样，只有时间才能证明",
	"timeline_origin_galactic_doorstep":       "繁星门阶_帝国起源_[玩家帝国]这个文明的母星位于一个由未知先行者建造的废弃巨构——星门附近。尽管目前它还处于休眠状态，但这个文明正在努力解开它的秘密，希望它能成为通往银河系的捷径",
	"timeline_origin_tree_of_life":            "生命之树_帝国起源_[玩家帝国]这个蜂巢思维文明与一个古老的生命之树共生。它扎根于他们的母星，并与其所有的人口进行心灵感应连接，赋予他们生命，并加速他们的成长",
	"timeline_origin_shoulders_of_giants":     "屹于巨人之肩_帝国起源_[玩家帝国]在他们的母星上发现了一系列可以追溯到数百万年前的古代遗迹。尽管其建设者的身份仍然是个谜，但这个文明已经学会了破译他们留下的一些基本文本，并正处于技术革命的边缘",
	"timeline_origin_lithoid":                 "降世灾星_帝国起源_[玩家帝国]这个岩石物种并非在他们的母星上演化而来。他们乘坐一颗巨大的小行星来到这里，在撞击中幸存下来，然后逐渐占据了主导地位",
	"timeline_origin_common_ground":           "共同命运_帝国起源_[玩家帝国]这个文明是银河联盟的创始成员之一，银河联盟是一个旨在促进星际合作和商业发展的新生组织。另外两个创始成员国也已经实现了超光速旅行，并准备好与他们的邻国一起探索银河系",
	"timeline_origin_hegemon":                 "一方霸主_帝国起源_[玩家帝国]这个文明是霸权联盟的领导者，霸权联盟是一个强大的政治集团，另外两个成员国都曾是其附庸。现在他们已经都实现了超光速旅行，他们已经准备好在银河系的舞台上维护他们的统治地位了",
	"timeline_origin_doomsday":                "末日将临_帝国起源_[玩家帝国]这个文明的母星极不稳定。根据他们最可靠的科学模型的预测，在他们的文明开始星际航行的几十年内，它将被一场灾难所吞噬。生存的唯一希望就在于群星之中",
	"timeline_origin_lost_colony":             "失落行星_帝国起源_[玩家帝国]这个文明的祖先乘坐殖民船来到他们的母星，但所有关于他们母星的记录都已丢失。也许在银河系的某个地方，他们可以找到他们失散已久的同胞",
	"timeline_origin_necrophage":              "食尸文化_帝国起源_[玩家帝国]这个文明由两个物种组成，一个是被转化为主物种的次级物种，另一个是作为次级物种存在的原生生物。他们通过转化其他物种的人口来繁衍，将他们带入自己不朽的行列",
	"timeline_origin_clone_army":              "克隆大军_帝国起源_[玩家帝国]这个文明是由古代、技术先进的克隆战士创造的，他们已经在一个被遗忘的时代为他们的主人赢得了无数的战争。但现在他们的主人已经不在了，他们必须为自己开创一条新的道路",
	"timeline_origin_here_be_dragons":         "与龙共舞_帝国起源_[玩家帝国]一条以太巨龙在他们的母星上空盘旋，保护着它，就像保护自己的孩子一样。这个文明已经学会了与它共存，甚至崇拜它。只要巨龙还活着，就没有人敢威胁他们的母星",
	"timeline_origin_ocean_paradise":          "海洋天堂_帝国起源_[玩家帝国]这个文明在一个被巨大海洋覆盖的星球上演化而来。他们的母星是一个水生天堂，充满了生命和丰富的资源",
	"timeline_origin_progenitor_hive":         "始祖蜂巢_帝国起源_[玩家帝国]这个蜂巢思维文明由一个古老而强大的祖先蜂后领导，它通过心灵感应网络将其意志强加给它的子民。只要蜂后还活着，蜂巢就会繁荣昌盛",
	"timeline_origin_subterranean":            "地底人_帝国起源_[玩家帝国]由于他们母星的表面环境恶劣，这个文明的祖先们在地下寻求庇护。他们已经适应了地下的生活，并学会了利用其丰富的资源",
	"timeline_origin_star_slingshot":          "射向星际_帝国起源_[玩家帝国]在他们的太阳系中发现了一个巨大的量子弹弓，这是一个由未知先行者建造的废弃巨构。在对其进行了数十年的研究之后，这个文明终于学会了如何使用它，并准备好以前所未有的速度将自己弹射到银河系中",
	"timeline_origin_shroudwalker_apprentice": "虚境导师_帝国起源_[玩家帝国]一群被称为'虚行者'的神秘灵能主义者对这个文明产生了兴趣，并决定将他们收为学徒。他们承诺会教给他们虚境的奥秘，但这背后可能隐藏着更深层次的动机",
	"timeline_origin_imperial_vassal":         "帝国封邑_帝国起源_[玩家帝国]这个文明是某个更强大的星际帝国的一个小附庸。他们受制于宗主国的法律和异想天开，但他们也受到宗主国的保护，并可以从宗主国的先进技术中受益",
	"timeline_origin_overtuned":               "强夺天工_帝国起源_[玩家帝国]这个文明已经掌握了基因工程的艺术，他们不断地调整自己的身体，以追求完美。他们的领导人痴迷于效率和生产力，他们将不惜一切代价来实现自己的目标",
	"timeline_origin_toxic_knights":           "毒圣骑士_帝国起源_[玩家帝国]一群神秘的骑士来到了这个文明的母星，他们承诺会保护他们免受银河系中潜伏的恐怖势力的侵害。他们带来了一种神秘的'毒液'，他们说这种毒液可以赋予他们超人的力量，但代价是什么呢？",
	"timeline_origin_payback":                 "血债血偿_帝国起源_[玩家帝国]这个文明的母星曾被一个更强大的星际帝国征服和奴役。在多年的压迫之后，他们终于成功地发动了一场成功的起义，并赢得了自由。但他们永远不会忘记他们所遭受的苦难，他们发誓要向他们的前压迫者复仇",
	"timeline_origin_broken_shackles":         "粉碎的枷锁_帝国起源_[玩家帝国]这个文明由来自银河系各地不同物种的难民和逃亡的奴隶组成。他们在共同的苦难中找到了团结，并建立了一个新的社会，在这个社会中，所有人都生而平等。他们发誓要解放所有被奴役的人民，并粉碎压迫他们的枷锁",
	"timeline_origin_fear_of_the_dark":        "黑暗之怖_帝国起源_[玩家帝国]这个文明对黑暗有着一种非理性的恐惧。他们相信，在群星之间的虚空中潜伏着一些可怕的东西，他们会不惜一切代价避免与它接触。他们将自己的文明局限在自己的太阳系中，并希望永远不会有任何东西来打扰他们",
	"timeline_origin_riftworld":               "裂隙当空_帝国起源_[玩家帝国]这个文明的母星正处于被一个巨大的、不断扩大的时空裂缝吞噬的边缘。他们必须在自己的世界被撕裂之前找到逃离的方法",
	"timeline_origin_cybernetic_creed":        "义体信条_帝国起源_[玩家帝国]这个文明相信，有机体是脆弱和不完美的。他们寻求通过控制论来超越自己的肉体，并成为一种新的、更高级的存在形式",
	"timeline_origin_synthetic_fertility":     "合成繁衍_帝国起源_[玩家帝国]这个文明已经失去了自然繁殖的能力。他们现在依靠先进的机器人技术和基因工程来创造新的后代。但这种对技术的依赖也让他们变得脆弱",
	"timeline_origin_arc_welders":             "电弧焊机_帝国起源_[玩家帝国]这个文明由一群技术娴熟的工程师和工匠组成，他们擅长建造和维修大型结构。他们以其在电弧焊方面的专业知识而闻名，他们可以用它来创造出令人惊叹的艺术品和强大的战争机器",
}
