// Package analyzer 实现简历与职位描述的确定性匹配评分管线。
// 整条管线是对两个输入字符串的纯同步计算，不依赖外部服务，
// 相同输入永远产生逐字节相同的结果。
package analyzer

import (
	"ats-match-go/internal/constants"
	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

// Analyzer 分析管线的对外入口，聚合全部子组件。
// 所有子组件只读共享静态词表，可跨goroutine并发调用
type Analyzer struct {
	dicts      *dict.Dictionaries
	sections   *SectionDetector
	extractor  *TermExtractor
	normalizer *SkillNormalizer
	weighter   *ImportanceWeighter
	matcher    *MatchEngine
	scorer     *ScoreCalculator
	insights   *InsightGenerator
	checklist  *ChecklistBuilder
}

// New 基于给定词表构建分析器
func New(d *dict.Dictionaries) *Analyzer {
	extractor := NewTermExtractor(d)
	normalizer := NewSkillNormalizer(d)
	return &Analyzer{
		dicts:      d,
		sections:   NewSectionDetector(d),
		extractor:  extractor,
		normalizer: normalizer,
		weighter:   NewImportanceWeighter(d, extractor, normalizer),
		matcher:    NewMatchEngine(d),
		scorer:     NewScoreCalculator(),
		insights:   NewInsightGenerator(d),
		checklist:  NewChecklistBuilder(),
	}
}

// Analyze 对一对(简历文本, 职位描述文本)执行完整分析。
// 空输入不报错，按优雅降级产出退化但结构完整的结果
func (a *Analyzer) Analyze(resumeText, jdText string) *types.AnalysisResult {
	cleanResume := CleanText(resumeText)

	// 区块检测在原始文本上进行，保留换行等结构信号
	sections := a.sections.Detect(resumeText)

	var skillsContent, experienceContent string
	if sec := sections.Get(types.SectionSkills); sec != nil {
		skillsContent = sec.Content
	}
	if sec := sections.Get(types.SectionExperience); sec != nil {
		experienceContent = sec.Content
	}
	explicitSkills := a.normalizer.NormalizeAll(a.sections.ParseSkills(skillsContent))
	experience := a.sections.ParseExperience(experienceContent)
	hasMetrics := HasMetrics(experienceContent)

	// 重要性判定依赖句子边界，传入未清洗的原文
	jdTerms := a.weighter.AnalyzeJD(jdText)
	resumeTerms := a.collectResumeTerms(cleanResume, explicitSkills)

	matches := a.matcher.Match(MatchInput{
		JDTerms:       jdTerms,
		ResumeTerms:   resumeTerms,
		SkillTerms:    explicitSkills,
		Experience:    experience,
		RawExperience: experienceContent,
	})

	breakdown := a.scorer.Calculate(ScoreInput{
		Matches:       matches,
		HasSkills:     sections.Has(types.SectionSkills),
		HasExperience: sections.Has(types.SectionExperience),
		HasSummary:    sections.Has(types.SectionSummary),
		HasMetrics:    hasMetrics,
	})

	insights := a.insights.Generate(InsightInput{
		Matches:            matches,
		HasMetrics:         hasMetrics,
		HasSummary:         sections.Has(types.SectionSummary),
		SkillsPosition:     sectionPosition(sections, types.SectionSkills),
		ExperiencePosition: sectionPosition(sections, types.SectionExperience),
		ExperienceText:     experienceContent,
		ExplicitSkillCount: len(explicitSkills),
	})

	result := &types.AnalysisResult{
		ATSScore:       breakdown.Final,
		StrongMatches:  []types.StrongMatch{},
		PartialMatches: []types.PartialMatch{},
		MissingSkills:  []types.MissingSkill{},
		SectionFeedback: types.SectionFeedback{
			HasSkillsSection:     sections.Has(types.SectionSkills),
			HasExperienceSection: sections.Has(types.SectionExperience),
			HasMetrics:           hasMetrics,
			SkillCount:           len(explicitSkills),
			Sections:             sections.Names(),
		},
		Insights:  insights,
		Checklist: a.checklist.Build(insights),
		Breakdown: breakdown,
		Contact:   a.extractContact(sections, resumeText),
	}
	if result.Insights == nil {
		result.Insights = []types.Insight{}
	}
	if result.Checklist == nil {
		result.Checklist = []types.ChecklistSection{}
	}

	for _, m := range matches {
		switch m.Category {
		case types.MatchStrong:
			result.StrongMatches = append(result.StrongMatches, types.StrongMatch{
				Skill:           m.JDTerm.Raw,
				MatchedAs:       m.ResumeTerm,
				InSkillsSection: m.InSkillsSection,
				Demonstrated:    m.InExperience,
				Importance:      m.JDTerm.Importance(),
			})
		case types.MatchPartial:
			result.PartialMatches = append(result.PartialMatches, types.PartialMatch{
				Skill:      m.JDTerm.Raw,
				MatchedAs:  m.ResumeTerm,
				Similarity: int(m.Similarity * 100),
				Importance: m.JDTerm.Importance(),
			})
		case types.MatchMissing:
			result.MissingSkills = append(result.MissingSkills, types.MissingSkill{
				Skill:      m.JDTerm.Raw,
				Importance: m.JDTerm.Importance(),
				Impact:     impactLevel(m.JDTerm.Weight),
			})
		}
	}
	return result
}

// collectResumeTerms 汇总简历侧关键词：规则抽取的候选词并入
// 技能区块显式技能，归一化去重后只保留长度大于2的词
func (a *Analyzer) collectResumeTerms(cleanResume string, explicitSkills []string) []string {
	var raw []string
	for _, c := range a.extractor.Extract(cleanResume) {
		raw = append(raw, c.Text)
	}
	raw = append(raw, explicitSkills...)

	normalized := a.normalizer.NormalizeAll(raw)
	out := make([]string, 0, len(normalized))
	for _, t := range normalized {
		if len(t) > constants.MinResumeTermLength {
			out = append(out, t)
		}
	}
	return out
}

// extractContact 优先从头部区块提取联系方式，头部缺失时
// 退回全文扫描
func (a *Analyzer) extractContact(sections *SectionSet, resumeText string) *types.ContactInfo {
	if sec := sections.Get(types.SectionHeader); sec != nil && sec.Content != "" {
		if info := ExtractContact(sec.Content); info != nil {
			return info
		}
	}
	return ExtractContact(resumeText)
}

// sectionPosition 返回区块在简历中的序号，缺失返回-1
func sectionPosition(sections *SectionSet, name types.SectionType) int {
	if sec := sections.Get(name); sec != nil {
		return sec.Position
	}
	return -1
}

// impactLevel 按权重阈值把未命中关键词折算成影响等级
func impactLevel(weight float64) string {
	switch {
	case weight > constants.HighImpactWeight:
		return "high"
	case weight > constants.MediumImpactWeight:
		return "medium"
	default:
		return "low"
	}
}
