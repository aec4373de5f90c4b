package analyzer

import (
	"math"

	"ats-match-go/internal/constants"
	"ats-match-go/internal/types"
)

// ScoreCalculator 把匹配结果归并成五个[0,1]子分，
// 再按固定权重合成最终的0-100整数分
type ScoreCalculator struct{}

// NewScoreCalculator 创建评分器
func NewScoreCalculator() *ScoreCalculator {
	return &ScoreCalculator{}
}

// ScoreInput 评分所需的全部信号
type ScoreInput struct {
	Matches       []types.MatchRecord
	HasSkills     bool
	HasExperience bool
	HasSummary    bool
	HasMetrics    bool
}

// Calculate 计算分数拆解。合成管线的顺序固定：
// 加权求和 → ×100 → 行业校准乘数 → 下限托底 → 附加加分 → 取整钳位。
// 下限与加分的先后会改变结果，不能调换
func (c *ScoreCalculator) Calculate(in ScoreInput) types.ScoreBreakdown {
	bd := types.ScoreBreakdown{
		SkillMatch:    c.skillMatch(in.Matches),
		RequiredMatch: c.requiredMatch(in.Matches),
		Demonstration: c.demonstration(in.Matches),
		Structure:     c.structure(in),
		Metrics:       0.0,
	}
	if in.HasMetrics {
		bd.Metrics = 1.0
	}

	weighted := bd.SkillMatch*constants.SkillMatchWeight +
		bd.RequiredMatch*constants.RequiredMatchWeight +
		bd.Demonstration*constants.DemonstrationWeight +
		bd.Structure*constants.StructureWeight +
		bd.Metrics*constants.MetricsWeight

	score := weighted * 100 * constants.IndustryAdjustment
	if len(in.Matches) > 0 && score < constants.ScoreFloor {
		score = constants.ScoreFloor
	}

	strong, partial := countByCategory(in.Matches)
	score += math.Min(float64(strong)*constants.StrongBonusPerMatch, constants.StrongBonusCap)
	score += math.Min(float64(partial)*constants.PartialBonusPerMatch, constants.PartialBonusCap)
	if in.HasSkills && in.HasExperience {
		score += constants.SectionBonus
	}
	if in.HasMetrics {
		score += constants.MetricsBonus
	}

	final := int(math.Round(score))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	bd.Final = final
	return bd
}

// skillMatch 全量关键词命中率，partial按0.95折算。
// 职位描述没有关键词时返回0.50的中性值
func (c *ScoreCalculator) skillMatch(matches []types.MatchRecord) float64 {
	if len(matches) == 0 {
		return constants.SkillMatchEmptyDefault
	}
	strong, partial := countByCategory(matches)
	ratio := (float64(strong) + constants.PartialCreditFactor*float64(partial)) / float64(len(matches))
	return clamp(ratio, constants.SkillMatchFloor, 1.0)
}

// requiredMatch 只看required关键词的命中率，partial按0.75折算。
// 职位描述没有required关键词时视为天然满足，返回1.0
func (c *ScoreCalculator) requiredMatch(matches []types.MatchRecord) float64 {
	total, strong, partial := 0, 0, 0
	for _, m := range matches {
		if !m.JDTerm.Required {
			continue
		}
		total++
		switch m.Category {
		case types.MatchStrong:
			strong++
		case types.MatchPartial:
			partial++
		}
	}
	if total == 0 {
		return 1.0
	}
	ratio := (float64(strong) + constants.RequiredPartialCredit*float64(partial)) / float64(total)
	return clamp(ratio, constants.RequiredMatchFloor, 1.0)
}

// demonstration 强命中里在经历要点中出现的占比
func (c *ScoreCalculator) demonstration(matches []types.MatchRecord) float64 {
	strong, demonstrated := 0, 0
	for _, m := range matches {
		if m.Category != types.MatchStrong {
			continue
		}
		strong++
		if m.InExperience {
			demonstrated++
		}
	}
	if strong == 0 {
		return 0.0
	}
	return float64(demonstrated) / float64(strong)
}

// structure 技能/经历/摘要三个区块的加权存在度
func (c *ScoreCalculator) structure(in ScoreInput) float64 {
	score := 0.0
	if in.HasSkills {
		score += constants.StructureSkillsWeight
	}
	if in.HasExperience {
		score += constants.StructureExperienceWeight
	}
	if in.HasSummary {
		score += constants.StructureSummaryWeight
	}
	max := constants.StructureSkillsWeight + constants.StructureExperienceWeight + constants.StructureSummaryWeight
	return score / max
}

func countByCategory(matches []types.MatchRecord) (strong, partial int) {
	for _, m := range matches {
		switch m.Category {
		case types.MatchStrong:
			strong++
		case types.MatchPartial:
			partial++
		}
	}
	return strong, partial
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
