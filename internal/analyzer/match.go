package analyzer

import (
	"strings"

	"ats-match-go/internal/constants"
	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

// MatchEngine 将职位描述关键词与简历关键词逐一配对，
// 并给出 strong/partial/missing 三档分类结果
type MatchEngine struct {
	dicts      *dict.Dictionaries
	fuzzy      *FuzzyMatcher
	normalizer *SkillNormalizer
}

// NewMatchEngine 创建匹配引擎
func NewMatchEngine(d *dict.Dictionaries) *MatchEngine {
	return &MatchEngine{
		dicts:      d,
		fuzzy:      NewFuzzyMatcher(d),
		normalizer: NewSkillNormalizer(d),
	}
}

// MatchInput 匹配所需的简历侧上下文
type MatchInput struct {
	JDTerms     []types.Term // 按权重降序排列的职位描述关键词
	ResumeTerms []string     // 归一化后的简历关键词全集
	SkillTerms  []string     // 技能区块显式列出的技能（归一化后）
	Experience  []types.ExperienceEntry
	RawExperience string // 经历区块原文，条目解析失败时的兜底
}

// Match 为每个职位描述关键词生成且仅生成一条匹配记录。
// 先带拼写纠错做一轮匹配（阈值0.70），未命中再退回
// 不带纠错的普通模糊匹配取最佳候选
func (e *MatchEngine) Match(in MatchInput) []types.MatchRecord {
	records := make([]types.MatchRecord, 0, len(in.JDTerms))
	for _, term := range in.JDTerms {
		records = append(records, e.matchOne(term, in))
	}
	return records
}

func (e *MatchEngine) matchOne(term types.Term, in MatchInput) types.MatchRecord {
	rec := types.MatchRecord{
		JDTerm:   term,
		Category: types.MatchMissing,
	}
	if len(in.ResumeTerms) == 0 {
		return rec
	}

	best := e.fuzzy.BestMatch(term.Normalized, in.ResumeTerms, constants.TypoMatchThreshold, true)
	if !best.OK {
		// 纠错轮未过阈值时退回普通模糊匹配，保留最佳候选
		// 供partial档使用
		best = e.fuzzy.BestMatch(term.Normalized, in.ResumeTerms, constants.PartialMatchThreshold, false)
	}

	rec.ResumeTerm = best.Candidate
	rec.Similarity = best.Score
	rec.TypoCorrected = best.TypoCorrected

	switch {
	case best.Score >= constants.StrongMatchThreshold:
		rec.Category = types.MatchStrong
	case best.Score >= constants.PartialMatchThreshold:
		rec.Category = types.MatchPartial
	default:
		rec.Category = types.MatchMissing
		rec.ResumeTerm = ""
		rec.Similarity = 0
		rec.TypoCorrected = false
		return rec
	}

	rec.InSkillsSection = e.inSkillsSection(best.Candidate, in.SkillTerms)
	rec.InExperience = e.inExperience(best.Candidate, in)
	return rec
}

// inSkillsSection 判断命中的简历关键词是否出现在技能区块的
// 显式技能列表中（归一化后相等或互为子串）
func (e *MatchEngine) inSkillsSection(resumeTerm string, skills []string) bool {
	norm := e.normalizer.Normalize(resumeTerm)
	if norm == "" {
		return false
	}
	for _, s := range skills {
		if s == norm || strings.Contains(s, norm) || strings.Contains(norm, s) {
			return true
		}
	}
	return false
}

// inExperience 判断命中的简历关键词是否出现在经历要点里。
// 条目没有要点时退回经历区块原文做子串查找
func (e *MatchEngine) inExperience(resumeTerm string, in MatchInput) bool {
	needle := strings.ToLower(resumeTerm)
	if needle == "" {
		return false
	}
	seen := false
	for _, entry := range in.Experience {
		for _, b := range entry.Bullets {
			seen = true
			if strings.Contains(strings.ToLower(b), needle) {
				return true
			}
		}
	}
	if !seen && in.RawExperience != "" {
		return strings.Contains(strings.ToLower(in.RawExperience), needle)
	}
	return false
}
