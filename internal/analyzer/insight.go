package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"ats-match-go/internal/constants"
	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

// InsightGenerator 从匹配结果推导可读的分析结论。
// 规则按固定顺序逐条评估，最终按优先级稳定排序，
// 同优先级保持规则产出顺序
type InsightGenerator struct {
	dicts *dict.Dictionaries
}

// NewInsightGenerator 创建洞察生成器
func NewInsightGenerator(d *dict.Dictionaries) *InsightGenerator {
	return &InsightGenerator{dicts: d}
}

// InsightInput 洞察推导所需的上下文
type InsightInput struct {
	Matches            []types.MatchRecord
	HasMetrics         bool
	HasSummary         bool
	SkillsPosition     int // 技能区块在简历中的序号，缺失为-1
	ExperiencePosition int // 经历区块在简历中的序号，缺失为-1
	ExperienceText     string
	ExplicitSkillCount int
}

// Generate 依次评估全部规则并返回排序后的洞察列表
func (g *InsightGenerator) Generate(in InsightInput) []types.Insight {
	insights := make([]types.Insight, 0, len(in.Matches))

	insights = append(insights, g.missingRequired(in.Matches)...)
	insights = append(insights, g.undemonstrated(in.Matches)...)
	if !in.HasMetrics {
		insights = append(insights, types.Insight{
			Type:       types.InsightImprovement,
			Category:   "missing_metrics",
			Message:    "工作经历缺少可量化的业务指标",
			Suggestion: "在经历要点中补充具体数字，例如性能提升百分比、服务的用户量或节省的成本",
			Priority:   types.PriorityHigh,
		})
	}
	insights = append(insights, g.sectionOrder(in)...)
	if verbs := g.countActionVerbs(in.ExperienceText); verbs < constants.MinActionVerbs {
		insights = append(insights, types.Insight{
			Type:       types.InsightImprovement,
			Category:   "weak_verbs",
			Message:    fmt.Sprintf("经历描述中只找到%d个行动动词", verbs),
			Suggestion: "用built、led、designed、optimized等行动动词开头描述每条工作成果",
			Priority:   types.PriorityMedium,
		})
	}
	insights = append(insights, g.requiredPartial(in.Matches)...)
	if in.ExplicitSkillCount < constants.MinExplicitSkills {
		insights = append(insights, types.Insight{
			Type:       types.InsightImprovement,
			Category:   "sparse_skills",
			Message:    fmt.Sprintf("技能区块只显式列出了%d项技能", in.ExplicitSkillCount),
			Suggestion: "在技能区块集中列出与目标职位相关的全部技术栈，便于关键词扫描",
			Priority:   types.PriorityHigh,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return priorityRank(insights[i].Priority) < priorityRank(insights[j].Priority)
	})
	return insights
}

// missingRequired 规则1：每个未命中的required关键词产出一条critical洞察
func (g *InsightGenerator) missingRequired(matches []types.MatchRecord) []types.Insight {
	var out []types.Insight
	for _, m := range matches {
		if m.Category != types.MatchMissing || !m.JDTerm.Required {
			continue
		}
		out = append(out, types.Insight{
			Type:       types.InsightCritical,
			Category:   "missing_skill",
			Message:    fmt.Sprintf("职位要求的「%s」在简历中没有找到", m.JDTerm.Raw),
			Suggestion: fmt.Sprintf("如具备%s相关经验，请在技能区块和经历要点中明确写出", m.JDTerm.Raw),
			Priority:   types.PriorityHigh,
		})
	}
	return out
}

// undemonstrated 规则2：写在技能区块但经历中没有体现的强命中
func (g *InsightGenerator) undemonstrated(matches []types.MatchRecord) []types.Insight {
	var out []types.Insight
	for _, m := range matches {
		if m.Category != types.MatchStrong || !m.InSkillsSection || m.InExperience {
			continue
		}
		out = append(out, types.Insight{
			Type:       types.InsightWarning,
			Category:   "undemonstrated_skill",
			Message:    fmt.Sprintf("「%s」列在技能区块，但工作经历中没有体现", m.JDTerm.Raw),
			Suggestion: fmt.Sprintf("补充一条使用%s完成具体工作的经历要点", m.JDTerm.Raw),
			Priority:   types.PriorityMedium,
		})
	}
	return out
}

// sectionOrder 规则4：区块顺序与摘要缺失的优化建议
func (g *InsightGenerator) sectionOrder(in InsightInput) []types.Insight {
	var out []types.Insight
	if in.SkillsPosition >= 0 && in.ExperiencePosition >= 0 &&
		in.SkillsPosition > in.ExperiencePosition+constants.SkillsAfterExperienceGap {
		out = append(out, types.Insight{
			Type:       types.InsightOptimization,
			Category:   "section_order",
			Message:    "技能区块位置偏后，落在工作经历之后较远处",
			Suggestion: "把技能区块上移到摘要之后，让关键词在扫描早期就被捕获",
			Priority:   types.PriorityMedium,
		})
	}
	if !in.HasSummary {
		out = append(out, types.Insight{
			Type:       types.InsightOptimization,
			Category:   "missing_summary",
			Message:    "简历缺少开头的职业摘要区块",
			Suggestion: "在简历开头加2-3句摘要，点出年限、方向和核心技术栈",
			Priority:   types.PriorityLow,
		})
	}
	return out
}

// requiredPartial 规则6：required关键词只达到partial档时给出相似度提示
func (g *InsightGenerator) requiredPartial(matches []types.MatchRecord) []types.Insight {
	var out []types.Insight
	for _, m := range matches {
		if m.Category != types.MatchPartial || !m.JDTerm.Required {
			continue
		}
		out = append(out, types.Insight{
			Type:       types.InsightWarning,
			Category:   "partial_match",
			Message:    fmt.Sprintf("「%s」只与简历中的「%s」部分匹配（相似度%d%%）", m.JDTerm.Raw, m.ResumeTerm, int(m.Similarity*100)),
			Suggestion: fmt.Sprintf("如掌握%s本身，请使用职位描述中的准确写法", m.JDTerm.Raw),
			Priority:   types.PriorityMedium,
		})
	}
	return out
}

// countActionVerbs 统计经历文本中出现的不同行动动词数量
func (g *InsightGenerator) countActionVerbs(experienceText string) int {
	lower := strings.ToLower(experienceText)
	count := 0
	for _, verb := range g.dicts.ActionVerbs {
		if containsWord(lower, verb) {
			count++
		}
	}
	return count
}

func priorityRank(p types.Priority) int {
	switch p {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	default:
		return 2
	}
}
