package analyzer

import (
	"sort"
	"strings"

	"ats-match-go/internal/constants"
	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

// ImportanceWeighter 分析岗位描述，对每个提取出的关键词判定
// required/preferred并赋权。没有语料可用，无法计算真正的逆文档频率，
// 基础权重用单文档词频（相对最高频词归一化）近似。
type ImportanceWeighter struct {
	dicts      *dict.Dictionaries
	extractor  *TermExtractor
	normalizer *SkillNormalizer
}

// NewImportanceWeighter 创建ImportanceWeighter
func NewImportanceWeighter(d *dict.Dictionaries, e *TermExtractor, n *SkillNormalizer) *ImportanceWeighter {
	return &ImportanceWeighter{dicts: d, extractor: e, normalizer: n}
}

// AnalyzeJD 提取并加权JD关键词，按归一化形式去重（首次出现保留），
// 最终按权重降序排列（同权保持出现顺序）。
func (w *ImportanceWeighter) AnalyzeJD(jdText string) []types.Term {
	candidates := w.extractor.Extract(jdText)
	if len(candidates) == 0 {
		return nil
	}

	maxFreq := 1
	for _, c := range candidates {
		if c.Frequency > maxFreq {
			maxFreq = c.Frequency
		}
	}

	lowerJD := strings.ToLower(jdText)
	seen := make(map[string]bool, len(candidates))
	terms := make([]types.Term, 0, len(candidates))

	for _, c := range candidates {
		normalized := w.normalizer.Normalize(c.Text)
		if normalized == "" || seen[normalized] {
			continue
		}

		required, preferred := w.classify(lowerJD, c.Text)

		// 基础权重：相对词频。调整系数按固定顺序乘性应用，
		// required与preferred互斥，required优先。
		weight := float64(c.Frequency) / float64(maxFreq)
		switch {
		case required:
			weight *= constants.RequiredBoost
		case preferred:
			weight *= constants.PreferredBoost
		}
		if c.Frequency > 2 {
			weight *= constants.FrequencyBoost
		}
		if w.dicts.GenericWords[c.Text] {
			weight *= constants.GenericPenalty
		}

		seen[normalized] = true
		terms = append(terms, types.Term{
			Raw:        c.Text,
			Normalized: normalized,
			Weight:     weight,
			Required:   required,
			Preferred:  preferred,
			Frequency:  c.Frequency,
		})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Weight > terms[j].Weight
	})
	return terms
}

// classify 在关键词首次出现位置的±CueWindow字符窗口内查找
// 要求/偏好提示短语。窗口在句子边界处截断，避免上一句末尾的
// "required"影响下一句的词。required提示优先于preferred。
// 两类都未命中时默认归为required，未标注的关键词按硬性要求对待
// （有意的保守偏置）。
func (w *ImportanceWeighter) classify(lowerJD, lowerTerm string) (required, preferred bool) {
	idx := strings.Index(lowerJD, lowerTerm)
	if idx < 0 {
		return true, false
	}

	start := idx - constants.CueWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(lowerTerm) + constants.CueWindow
	if end > len(lowerJD) {
		end = len(lowerJD)
	}
	window := clipAtSentence(lowerJD[start:end], idx-start, idx-start+len(lowerTerm))

	for _, cue := range w.dicts.RequirementCues {
		if strings.Contains(window, cue) {
			return true, false
		}
	}
	for _, cue := range w.dicts.PreferenceCues {
		if strings.Contains(window, cue) {
			return false, true
		}
	}
	return true, false
}

// clipAtSentence 把窗口收缩到包含[termStart,termEnd)的句子范围内，
// 句子边界为 . ! ? ; 或换行
func clipAtSentence(window string, termStart, termEnd int) string {
	isBoundary := func(b byte) bool {
		return b == '.' || b == '!' || b == '?' || b == ';' || b == '\n'
	}
	lo := 0
	for i := termStart - 1; i >= 0; i-- {
		if isBoundary(window[i]) {
			lo = i + 1
			break
		}
	}
	hi := len(window)
	for i := termEnd; i < len(window); i++ {
		if isBoundary(window[i]) {
			hi = i
			break
		}
	}
	return window[lo:hi]
}
