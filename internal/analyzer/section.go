package analyzer

import (
	"regexp"
	"strings"

	"ats-match-go/internal/constants"
	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

// SectionDetector 对简历文本做逐行状态机扫描，切分出命名区块。
// 状态为当前区块名，初始为header；每遇到一个标题行就把已累积的行
// 刷入上一个区块，并切换状态。
type SectionDetector struct {
	dicts *dict.Dictionaries
}

// NewSectionDetector 创建SectionDetector
func NewSectionDetector(d *dict.Dictionaries) *SectionDetector {
	return &SectionDetector{dicts: d}
}

// SectionSet 一次检测的结果：有序区块列表 + 按名称索引
type SectionSet struct {
	Ordered  []types.Section
	byName   map[types.SectionType]int // 名称 → Ordered下标
	Fallback bool                      // 为true表示未检测到结构，已将全文视为skills+experience
}

// Get 按名称取区块，不存在返回nil。区块缺失本身携带信息（影响结构评分）。
func (s *SectionSet) Get(name types.SectionType) *types.Section {
	idx, ok := s.byName[name]
	if !ok {
		return nil
	}
	return &s.Ordered[idx]
}

// Has 区块是否存在且内容非空
func (s *SectionSet) Has(name types.SectionType) bool {
	sec := s.Get(name)
	return sec != nil && strings.TrimSpace(sec.Content) != ""
}

// Names 返回检测到的区块名称，按出现顺序
func (s *SectionSet) Names() []string {
	names := make([]string, 0, len(s.Ordered))
	for _, sec := range s.Ordered {
		names = append(names, string(sec.Name))
	}
	return names
}

// Detect 运行区块切分状态机。
// 若检测到的非空区块数≤1（即没有识别出任何结构），应用降级策略：
// 把整个文本同时作为skills与experience内容，避免纯排版问题
// 造成"没有技能区块"之类的误判。
func (d *SectionDetector) Detect(text string) *SectionSet {
	set := &SectionSet{byName: make(map[types.SectionType]int)}
	if strings.TrimSpace(text) == "" {
		return set
	}

	current := types.SectionHeader
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		if content == "" {
			return
		}
		if idx, ok := set.byName[current]; ok {
			// 同名区块重复出现时内容合并，保留首次出现的位置
			set.Ordered[idx].Content += "\n" + content
			return
		}
		set.Ordered = append(set.Ordered, types.Section{
			Name:     current,
			Content:  content,
			Position: len(set.Ordered),
		})
		set.byName[current] = len(set.Ordered) - 1
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if name, ok := d.matchHeader(trimmed); ok {
			flush()
			current = name
			continue
		}
		buf = append(buf, trimmed)
	}
	flush()

	if len(set.Ordered) <= 1 {
		return d.fallback(text)
	}
	return set
}

// fallback 无结构时的降级：全文既是skills又是experience
func (d *SectionDetector) fallback(text string) *SectionSet {
	content := strings.TrimSpace(text)
	set := &SectionSet{
		byName:   make(map[types.SectionType]int),
		Fallback: true,
	}
	set.Ordered = []types.Section{
		{Name: types.SectionSkills, Content: content, Position: 0},
		{Name: types.SectionExperience, Content: content, Position: 1},
	}
	set.byName[types.SectionSkills] = 0
	set.byName[types.SectionExperience] = 1
	return set
}

// matchHeader 判断一行是否为区块标题。
// 先做精确/冒号后缀匹配，再做受标题形态约束的模糊包含匹配
// （行长<50且不含句子标点，避免把正文行当作标题）。
func (d *SectionDetector) matchHeader(line string) (types.SectionType, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	lower = strings.TrimSuffix(lower, ":")
	lower = strings.TrimSpace(lower)

	for _, name := range d.dicts.SectionOrder() {
		for _, kw := range d.dicts.SectionHeaders[name] {
			if lower == kw {
				return name, true
			}
		}
	}

	if !looksLikeHeader(line) {
		return types.SectionUnknown, false
	}
	for _, name := range d.dicts.SectionOrder() {
		for _, kw := range d.dicts.SectionHeaders[name] {
			if strings.Contains(lower, kw) {
				return name, true
			}
		}
	}
	return types.SectionUnknown, false
}

// looksLikeHeader 标题形态启发：短行且无句子标点
func looksLikeHeader(line string) bool {
	if len(line) >= constants.HeaderMaxLineLength {
		return false
	}
	return !strings.ContainsAny(line, ".,!?;")
}

var (
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	// bulletRe 行首的列表标记：常见符号或编号
	bulletRe = regexp.MustCompile(`^\s*([-*•▪‣◦·]|\d+[.)])\s+`)
)

// ParseExperience 解析experience区块内容为职位条目。
// 含四位年份、角色词或分隔符（|、以及各类破折号）的行视为职位行；
// 其后形如列表项的行作为该职位的要点，去掉行首标记。
// 出现在任何职位行之前的孤立要点归入一个无标题条目，避免丢数据。
func (d *SectionDetector) ParseExperience(content string) []types.ExperienceEntry {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var entries []types.ExperienceEntry
	currentIdx := -1

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if d.isTitleLine(trimmed) {
			entries = append(entries, types.ExperienceEntry{Title: trimmed})
			currentIdx = len(entries) - 1
			continue
		}
		if bulletRe.MatchString(trimmed) {
			bullet := strings.TrimSpace(bulletRe.ReplaceAllString(trimmed, ""))
			if bullet == "" {
				continue
			}
			if currentIdx < 0 {
				entries = append(entries, types.ExperienceEntry{})
				currentIdx = 0
			}
			entries[currentIdx].Bullets = append(entries[currentIdx].Bullets, bullet)
		}
	}
	return entries
}

// isTitleLine 职位行判定
func (d *SectionDetector) isTitleLine(line string) bool {
	if bulletRe.MatchString(line) {
		return false
	}
	if yearRe.MatchString(line) {
		return true
	}
	if strings.ContainsAny(line, "|–—") {
		return true
	}
	lower := strings.ToLower(line)
	for _, role := range d.dicts.RoleKeywords {
		if strings.Contains(lower, role) {
			return true
		}
	}
	return false
}

// skillSplitRe 技能列表的分隔符：逗号、分号、竖线、列表符号、换行
var skillSplitRe = regexp.MustCompile(`[,;|•▪‣◦·\n]+`)

// ParseSkills 解析skills区块内容为技能列表。
// 去掉"label:"前缀，转小写，丢弃过短（≤1字符）或过长（≥50字符）的片段。
func (d *SectionDetector) ParseSkills(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var skills []string
	seen := make(map[string]bool)
	for _, frag := range skillSplitRe.Split(content, -1) {
		s := strings.TrimSpace(frag)
		s = strings.TrimLeft(s, "-* \t")
		// "Languages: Python" → "Python"
		if idx := strings.Index(s, ":"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if len(s) <= constants.SkillFragmentMinLen || len(s) >= constants.SkillFragmentMaxLen {
			continue
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
	}
	return skills
}

// 量化指标的模式集合
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?\s*%`),                                       // 百分比
	regexp.MustCompile(`[$€£¥]\s*\d`),                                           // 货币
	regexp.MustCompile(`(?i)\b\d+[km]?\+?\s*(users|customers|clients|projects)\b`), // 数量+单位名词
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?x\b`),                                  // 倍数
	regexp.MustCompile(`(?i)\bby\s+\d+`),                                        // "by N"
	regexp.MustCompile(`(?i)\b\d+\s*(thousand|million|billion)\b`),              // 大数+量级词
}

// HasMetrics 判断一段文本是否含量化指标
func HasMetrics(text string) bool {
	if text == "" {
		return false
	}
	for _, re := range metricPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
