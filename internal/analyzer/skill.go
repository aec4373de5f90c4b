package analyzer

import (
	"strings"

	"ats-match-go/internal/dict"
)

// SkillNormalizer 通过静态同义词表把技能词映射到规范形式。
// 未映射的词转小写并去空白后原样通过。归一化是幂等的：
// 对已归一化的词再次归一化不改变结果（同义词表的值不得是其他键）。
type SkillNormalizer struct {
	dicts *dict.Dictionaries
}

// NewSkillNormalizer 创建SkillNormalizer
func NewSkillNormalizer(d *dict.Dictionaries) *SkillNormalizer {
	return &SkillNormalizer{dicts: d}
}

// Normalize 归一化单个技能词
func (n *SkillNormalizer) Normalize(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	t = strings.TrimRight(t, ".,:;")
	if t == "" {
		return ""
	}
	if canonical, ok := n.dicts.Synonyms[t]; ok {
		return canonical
	}
	return t
}

// NormalizeAll 归一化一组技能词，按首次出现顺序去重，丢弃空结果
func (n *SkillNormalizer) NormalizeAll(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		norm := n.Normalize(t)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	return out
}
