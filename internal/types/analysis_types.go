package types

// SectionType 表示简历区块类型
type SectionType string

const (
	// SectionHeader 头部区块（检测到第一个标题之前的内容）
	SectionHeader SectionType = "header"
	// SectionSummary 个人简介区块
	SectionSummary SectionType = "summary"
	// SectionSkills 技能区块
	SectionSkills SectionType = "skills"
	// SectionExperience 工作经历区块
	SectionExperience SectionType = "experience"
	// SectionEducation 教育经历区块
	SectionEducation SectionType = "education"
	// SectionProjects 项目经历区块
	SectionProjects SectionType = "projects"
	// SectionCertifications 证书区块
	SectionCertifications SectionType = "certifications"
	// SectionAchievements 成就区块
	SectionAchievements SectionType = "achievements"
	// SectionUnknown 未识别区块
	SectionUnknown SectionType = "unknown"
)

// Section 简历中的一个命名区块
type Section struct {
	Name     SectionType // 区块名称
	Content  string      // 区块原始内容
	Position int         // 区块在简历中出现的序号（从0开始）
}

// ExperienceEntry 工作经历中的一条记录：职位行 + 该职位下的要点
type ExperienceEntry struct {
	Title   string   // 职位行原文
	Bullets []string // 已去掉列表标记的要点，按出现顺序
}

// Term 从岗位描述中提取出的加权关键词。完成加权后不再修改。
type Term struct {
	Raw        string  // 原文形式
	Normalized string  // 归一化（同义词映射后）形式
	Weight     float64 // 综合权重
	Required   bool    // 是否为硬性要求
	Preferred  bool    // 是否为加分项
	Frequency  int     // 在JD中的出现次数
}

// Importance 返回该关键词的重要性标签
func (t Term) Importance() string {
	if t.Preferred && !t.Required {
		return "preferred"
	}
	return "required"
}

// MatchCategory 匹配分类
type MatchCategory string

const (
	// MatchStrong 强匹配
	MatchStrong MatchCategory = "strong"
	// MatchPartial 部分匹配
	MatchPartial MatchCategory = "partial"
	// MatchMissing 未命中
	MatchMissing MatchCategory = "missing"
)

// MatchRecord 一个JD关键词与简历内容的匹配结果。
// 每个加权JD关键词恰好对应一条记录，三个分类互斥。
type MatchRecord struct {
	JDTerm          Term          // 被匹配的JD关键词
	ResumeTerm      string        // 匹配到的简历关键词（missing时为空）
	Similarity      float64       // [0,1] 相似度
	Category        MatchCategory // strong / partial / missing
	InSkillsSection bool          // 匹配词是否出现在显式技能列表中（仅strong有意义）
	InExperience    bool          // 匹配词是否出现在工作经历要点中（仅strong有意义）
	TypoCorrected   bool          // 匹配过程中是否经过拼写纠正
}

// InsightType 洞察类型
type InsightType string

const (
	InsightCritical     InsightType = "critical"
	InsightWarning      InsightType = "warning"
	InsightImprovement  InsightType = "improvement"
	InsightOptimization InsightType = "optimization"
)

// Priority 洞察/清单优先级
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Insight 一条面向用户的分析结论
type Insight struct {
	Type       InsightType `json:"type"`
	Category   string      `json:"category"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
	Priority   Priority    `json:"priority"`
}

// ScoreBreakdown 复合评分的各个子分量，均在[0,1]区间
type ScoreBreakdown struct {
	SkillMatch    float64 `json:"skillMatch"`
	RequiredMatch float64 `json:"requiredMatch"`
	Demonstration float64 `json:"demonstration"`
	Structure     float64 `json:"structure"`
	Metrics       float64 `json:"metrics"`
	// Final 最终得分，已取整并限制在[0,100]
	Final int `json:"final"`
}

// StrongMatch API输出：强匹配项
type StrongMatch struct {
	Skill           string `json:"skill"`
	MatchedAs       string `json:"matchedAs"`
	InSkillsSection bool   `json:"inSkillsSection"`
	Demonstrated    bool   `json:"demonstrated"`
	Importance      string `json:"importance"`
}

// PartialMatch API输出：部分匹配项
type PartialMatch struct {
	Skill      string `json:"skill"`
	MatchedAs  string `json:"matchedAs"`
	Similarity int    `json:"similarity"` // 0-100
	Importance string `json:"importance"`
}

// MissingSkill API输出：未命中的JD关键词
type MissingSkill struct {
	Skill      string `json:"skill"`
	Importance string `json:"importance"`
	Impact     string `json:"impact"` // high / medium / low，由权重阈值决定
}

// SectionFeedback API输出：简历结构反馈
type SectionFeedback struct {
	HasSkillsSection     bool     `json:"hasSkillsSection"`
	HasExperienceSection bool     `json:"hasExperienceSection"`
	HasMetrics           bool     `json:"hasMetrics"`
	SkillCount           int      `json:"skillCount"`
	Sections             []string `json:"sections"`
}

// ChecklistSection 行动清单中的一个分组
type ChecklistSection struct {
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Items    []string `json:"items"`
}

// ContactInfo 从简历头部提取的联系方式补充字段
type ContactInfo struct {
	Email string   `json:"email,omitempty"`
	Phone string   `json:"phone,omitempty"`
	Links []string `json:"links,omitempty"`
}

// AnalysisResult 一次(简历, JD)分析的完整输出。
// 所有字段总是存在，集合类字段缺省为空切片，保证JSON输出稳定。
type AnalysisResult struct {
	ATSScore        int                `json:"atsScore"`
	StrongMatches   []StrongMatch      `json:"strongMatches"`
	PartialMatches  []PartialMatch     `json:"partialMatches"`
	MissingSkills   []MissingSkill     `json:"missingSkills"`
	SectionFeedback SectionFeedback    `json:"sectionFeedback"`
	Insights        []Insight          `json:"insights"`
	Checklist       []ChecklistSection `json:"checklist"`
	Breakdown       ScoreBreakdown     `json:"breakdown"`
	Contact         *ContactInfo       `json:"contact,omitempty"`
}
