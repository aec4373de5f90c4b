package constants

// 匹配阈值。这些阈值直接决定匹配分类结果，必须以命名常量形式存在，
// 测试用例依赖它们的精确值。
const (
	// TypoMatchThreshold MatchEngine第一轮容错匹配的相似度阈值
	TypoMatchThreshold = 0.70
	// AutocorrectThreshold 拼写纠正查找的默认相似度阈值
	AutocorrectThreshold = 0.80
	// StrongMatchThreshold 相似度达到该值归为强匹配
	StrongMatchThreshold = 0.65
	// PartialMatchThreshold 相似度达到该值（且低于强匹配阈值）归为部分匹配
	PartialMatchThreshold = 0.45
)

// 复合评分的固定权重，总和必须为1.0。不支持按调用配置。
const (
	SkillMatchWeight    = 0.55
	RequiredMatchWeight = 0.18
	DemonstrationWeight = 0.10
	StructureWeight     = 0.10
	MetricsWeight       = 0.07
)

// 评分管线的校准常量。顺序固定：加权和 → 乘数 → 下限 → 加分 → 截断。
// 1.4乘数与各项加分是无推导依据的经验值，为保持行为兼容而保留。
const (
	// IndustryAdjustment 行业校准乘数
	IndustryAdjustment = 1.4
	// ScoreFloor 只要从JD中提取出至少一个关键词，得分下限即为20
	ScoreFloor = 20.0

	// StrongBonusPerMatch 每个强匹配的加分
	StrongBonusPerMatch = 0.8
	// StrongBonusCap 强匹配加分上限
	StrongBonusCap = 12.0
	// PartialBonusPerMatch 每个部分匹配的加分
	PartialBonusPerMatch = 0.5
	// PartialBonusCap 部分匹配加分上限
	PartialBonusCap = 8.0
	// SectionBonus 同时存在技能与经历区块的加分
	SectionBonus = 5.0
	// MetricsBonus 经历中含量化指标的加分
	MetricsBonus = 3.0
)

// 子分量的下限/缺省值
const (
	// SkillMatchFloor skillMatch子分量的下限
	SkillMatchFloor = 0.3
	// SkillMatchEmptyDefault JD无关键词时skillMatch的缺省值
	SkillMatchEmptyDefault = 0.50
	// RequiredMatchFloor requiredMatch子分量的下限
	RequiredMatchFloor = 0.25
	// PartialCreditFactor skillMatch中部分匹配的折算系数
	PartialCreditFactor = 0.95
	// RequiredPartialCredit requiredMatch中部分匹配的折算系数
	RequiredPartialCredit = 0.75
)

// ImportanceWeighter 的权重调整系数，按此顺序乘性应用
const (
	// RequiredBoost 硬性要求关键词的权重乘数
	RequiredBoost = 3.0
	// PreferredBoost 加分项关键词的权重乘数（与RequiredBoost互斥，required优先）
	PreferredBoost = 1.5
	// FrequencyBoost 在JD中出现超过2次的关键词的权重乘数
	FrequencyBoost = 1.3
	// GenericPenalty 通用词的权重乘数
	GenericPenalty = 0.3
	// CueWindow 判定required/preferred时在首次出现位置前后检查的字符数
	CueWindow = 100
)

// MissingSkill 的影响等级由权重阈值决定
const (
	HighImpactWeight   = 0.5
	MediumImpactWeight = 0.2
)

// 结构子分量中各区块的权重
const (
	StructureSkillsWeight     = 0.4
	StructureExperienceWeight = 0.4
	StructureSummaryWeight    = 0.2
)

// 区块检测与解析参数
const (
	// HeaderMaxLineLength 模糊标题匹配时标题行的最大长度
	HeaderMaxLineLength = 50
	// SkillFragmentMinLen 技能片段最小长度（不含）
	SkillFragmentMinLen = 1
	// SkillFragmentMaxLen 技能片段最大长度（不含）
	SkillFragmentMaxLen = 50
	// MinResumeTermLength 参与匹配的简历关键词最小长度（不含）
	MinResumeTermLength = 2
)

// InsightGenerator 的规则参数
const (
	// MinActionVerbs 经历区块中动作动词的期望下限
	MinActionVerbs = 5
	// MinExplicitSkills 显式技能列表的期望下限
	MinExplicitSkills = 5
	// SkillsAfterExperienceGap 技能区块落后经历区块超过该距离时建议调整顺序
	SkillsAfterExperienceGap = 1
)
