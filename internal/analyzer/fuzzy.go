package analyzer

import (
	"strings"

	"ats-match-go/internal/constants"
	"ats-match-go/internal/dict"
)

// FuzzyMatcher 提供容错的关键词相似度计算：
// 编辑距离相似度偏向拼写小错，词集相似度偏向乱序/部分命中的多词短语，
// 二者取最大值。单独使用任何一个都会系统性漏掉另一类近似匹配。
type FuzzyMatcher struct {
	dicts *dict.Dictionaries
}

// NewFuzzyMatcher 创建FuzzyMatcher
func NewFuzzyMatcher(d *dict.Dictionaries) *FuzzyMatcher {
	return &FuzzyMatcher{dicts: d}
}

// FuzzyResult 一次候选匹配的结果
type FuzzyResult struct {
	Candidate     string  // 得分最高的候选词
	Score         float64 // [0,1]
	TypoCorrected bool    // 匹配过程中是否发生过拼写纠正
	OK            bool    // 得分是否达到调用方阈值
}

// Autocorrect 对词做词典纠错：先精确查表，再对表键做相似度达标的模糊查找。
// 返回纠正后的词以及是否发生了纠正。
func (f *FuzzyMatcher) Autocorrect(term string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return term, false
	}
	if canonical, ok := f.dicts.TypoMap[t]; ok {
		return canonical, true
	}
	// 本身就是已知技能的词不做模糊纠错，
	// 避免"python"被距离1的错拼键"pythn"反向误纠
	if f.dicts.KnownSkills[t] {
		return t, false
	}
	if _, ok := f.dicts.Synonyms[t]; ok {
		return t, false
	}
	// 模糊查找按有序键遍历，保证结果确定。
	// 阈值高于普通匹配阈值，短词的单字符差异达不到0.80，不会被误纠。
	for _, key := range f.dicts.TypoKeys() {
		if f.Similarity(t, key) >= constants.AutocorrectThreshold {
			return f.dicts.TypoMap[key], true
		}
	}
	return t, false
}

// Similarity 计算两个词的相似度：完全相等短路为1.0，
// 否则取词集相似度与归一化编辑距离相似度的最大值。
func (f *FuzzyMatcher) Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}
	ts := tokenSetSimilarity(a, b)
	ed := editSimilarity(a, b)
	if ts > ed {
		return ts
	}
	return ed
}

// BestMatch 在候选列表中为target找得分最高的候选。
// autocorrect为true时先对target与各候选做词典纠错再计分。
// 无论是否达到threshold都返回最佳候选及其得分，OK指示是否达标。
func (f *FuzzyMatcher) BestMatch(target string, candidates []string, threshold float64, autocorrect bool) FuzzyResult {
	best := FuzzyResult{}
	corrected := target
	targetCorrected := false
	if autocorrect {
		corrected, targetCorrected = f.Autocorrect(target)
	}

	for _, cand := range candidates {
		c := cand
		candCorrected := false
		if autocorrect {
			c, candCorrected = f.Autocorrect(cand)
		}
		score := f.Similarity(corrected, c)
		if score > best.Score {
			best.Candidate = cand
			best.Score = score
			best.TypoCorrected = targetCorrected || candCorrected
		}
	}
	best.OK = best.Candidate != "" && best.Score >= threshold
	return best
}

// tokenSetSimilarity 词集（bag-of-words）相似度：
// 唯一词交集大小除以较小词集的大小（overlap系数），
// 使"rest api"与"api"这类部分短语能得到高分。
func tokenSetSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	minLen := len(setA)
	if len(setB) < minLen {
		minLen = len(setB)
	}
	return float64(inter) / float64(minLen)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// editSimilarity 归一化编辑距离相似度：1 − distance/max(len_a, len_b)
func editSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein 计算标准编辑距离，滚动两行DP
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
