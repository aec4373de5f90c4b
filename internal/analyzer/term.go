package analyzer

import (
	"regexp"
	"strings"

	"ats-match-go/internal/dict"
)

// TermExtractor 基于词法启发从归一化文本中提取候选关键词：
// 单词与2-4词的名词短语，经过多级过滤后只保留带技术信号的词。
// 过滤建模为有序的命名判定规则，先拒绝后接受，第一条命中的规则生效，
// 每条规则可独立测试。
type TermExtractor struct {
	dicts *dict.Dictionaries
	rules []TermRule
}

// TermContext 规则判定所需的源文本上下文
type TermContext struct {
	Source      string // 原始文本（保留大小写）
	LowerSource string // 小写副本
}

// TermRule 一条命名的接受规则：对(词, 上下文)返回是否接受
type TermRule struct {
	Name  string
	Match func(term string, ctx *TermContext) bool
}

// Candidate 一个提取出的候选词及其频次
type Candidate struct {
	Text      string // 小写形式
	Frequency int    // 在源文本中的出现次数
}

// NewTermExtractor 创建TermExtractor并装配默认规则链
func NewTermExtractor(d *dict.Dictionaries) *TermExtractor {
	e := &TermExtractor{dicts: d}
	e.rules = []TermRule{
		{Name: "known_skill", Match: e.isKnownSkill},
		{Name: "contains_digit", Match: containsDigit},
		{Name: "tech_punctuation", Match: hasTechPunctuation},
		{Name: "acronym", Match: e.isAcronym},
		{Name: "mixed_case_compound", Match: e.isMixedCaseCompound},
		{Name: "capitalized_near_tech", Match: e.capitalizedNearTechContext},
	}
	return e
}

// Rules 返回规则链（用于测试单条规则）
func (e *TermExtractor) Rules() []TermRule {
	return e.rules
}

// Extract 提取候选关键词，按首次出现顺序去重。
// 输入为空时返回nil，不会报错。
func (e *TermExtractor) Extract(text string) []Candidate {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil
	}

	ctx := &TermContext{Source: text, LowerSource: strings.ToLower(text)}
	tokens := strings.Fields(cleaned)

	var out []Candidate
	index := make(map[string]int) // 小写词 → out下标

	add := func(term string) {
		lower := strings.ToLower(strings.TrimSpace(term))
		if lower == "" {
			return
		}
		if _, ok := index[lower]; ok {
			return
		}
		index[lower] = len(out)
		out = append(out, Candidate{
			Text:      lower,
			Frequency: countOccurrences(ctx.LowerSource, lower),
		})
	}

	// 单词候选
	for _, tok := range tokens {
		term := trimFragment(tok)
		if term == "" {
			continue
		}
		if e.rejectGeneric(term) {
			continue
		}
		if e.accepts(term, ctx) {
			add(term)
		}
	}

	// 已知多词技术短语直接按模式匹配
	for _, compound := range e.dicts.CompoundSkills {
		if strings.Contains(ctx.LowerSource, compound) {
			add(compound)
		}
	}

	// 2-4词的短语候选
	for n := 2; n <= 4; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			phrase := strings.Join(tokens[i:i+n], " ")
			phrase = trimFragment(phrase)
			if phrase == "" {
				continue
			}
			if !e.phraseShape(tokens[i : i+n]) {
				continue
			}
			if e.accepts(phrase, ctx) {
				add(phrase)
			}
		}
	}

	return out
}

// accepts 按规则链顺序判定，第一条命中即接受
func (e *TermExtractor) accepts(term string, ctx *TermContext) bool {
	for _, rule := range e.rules {
		if rule.Match(term, ctx) {
			return true
		}
	}
	return false
}

// rejectGeneric 通用词/停用词直接拒绝
func (e *TermExtractor) rejectGeneric(term string) bool {
	return e.dicts.GenericWords[strings.ToLower(term)]
}

// phraseShape 短语形态过滤：所有组成词都不能是通用词，
// 否则"strong experience with"之类的碎片会被放进候选
func (e *TermExtractor) phraseShape(tokens []string) bool {
	for _, tok := range tokens {
		if e.dicts.GenericWords[strings.ToLower(tok)] {
			return false
		}
	}
	return true
}

// trimFragment 片段清理：去掉首尾空白、尾部标点与列表标记。
// 清理后为空或过短的片段返回空串。
func trimFragment(term string) string {
	t := strings.TrimSpace(term)
	t = strings.TrimLeft(t, "-*•")
	t = strings.TrimRight(t, ".,:;-")
	if len(t) < 2 {
		return ""
	}
	return t
}

// --- 接受规则 ---

// isKnownSkill 词典中的已知技能（含同义词表的键与值）
func (e *TermExtractor) isKnownSkill(term string, _ *TermContext) bool {
	lower := strings.ToLower(term)
	if e.dicts.KnownSkills[lower] {
		return true
	}
	if _, ok := e.dicts.Synonyms[lower]; ok {
		return true
	}
	for _, canonical := range e.dicts.Synonyms {
		if canonical == lower {
			return true
		}
	}
	return false
}

func containsDigit(term string, _ *TermContext) bool {
	for _, r := range term {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// hasTechPunctuation 含技术性标点（c++、c#、node.js、ci/cd）
func hasTechPunctuation(term string, _ *TermContext) bool {
	return strings.ContainsAny(term, "+#./")
}

var acronymRe = regexp.MustCompile(`\b[A-Z]{2,6}\b`)

// isAcronym 在源文本中以2-6个连续大写字母出现
func (e *TermExtractor) isAcronym(term string, ctx *TermContext) bool {
	if strings.Contains(term, " ") {
		return false
	}
	upper := strings.ToUpper(term)
	for _, m := range acronymRe.FindAllString(ctx.Source, -1) {
		if m == upper {
			return true
		}
	}
	return false
}

var mixedCaseRe = regexp.MustCompile(`\b[A-Z][a-z]+[A-Z][A-Za-z]*\b`)

// isMixedCaseCompound 源文本中以混合大小写拼接出现（如JavaScript、PostgreSQL）
func (e *TermExtractor) isMixedCaseCompound(term string, ctx *TermContext) bool {
	if strings.Contains(term, " ") {
		return false
	}
	lower := strings.ToLower(term)
	for _, m := range mixedCaseRe.FindAllString(ctx.Source, -1) {
		if strings.ToLower(m) == lower {
			return true
		}
	}
	return false
}

// capitalizedNearTechContext 在源文本中以首字母大写形式出现，
// 且50字符窗口内存在技术上下文提示词
func (e *TermExtractor) capitalizedNearTechContext(term string, ctx *TermContext) bool {
	if strings.Contains(term, " ") {
		return false
	}
	capitalized := strings.ToUpper(term[:1]) + strings.ToLower(term[1:])
	idx := strings.Index(ctx.Source, capitalized)
	if idx < 0 {
		return false
	}

	start := idx - 50
	if start < 0 {
		start = 0
	}
	end := idx + len(capitalized) + 50
	if end > len(ctx.LowerSource) {
		end = len(ctx.LowerSource)
	}
	window := ctx.LowerSource[start:end]
	for _, cue := range e.dicts.TechContextWords {
		if containsWord(window, cue) {
			return true
		}
	}
	return false
}

// containsWord 词边界感知的包含判断
func containsWord(haystack, word string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], word)
		if pos < 0 {
			return false
		}
		pos += idx
		beforeOK := pos == 0 || !isWordByte(haystack[pos-1])
		after := pos + len(word)
		afterOK := after >= len(haystack) || !isWordByte(haystack[after])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// countOccurrences 统计词在文本中的词边界出现次数
func countOccurrences(lowerText, lowerTerm string) int {
	if lowerTerm == "" {
		return 0
	}
	count := 0
	idx := 0
	for {
		pos := strings.Index(lowerText[idx:], lowerTerm)
		if pos < 0 {
			return count
		}
		pos += idx
		beforeOK := pos == 0 || !isWordByte(lowerText[pos-1])
		after := pos + len(lowerTerm)
		afterOK := after >= len(lowerText) || !isWordByte(lowerText[after])
		if beforeOK && afterOK {
			count++
		}
		idx = pos + len(lowerTerm)
	}
}
