package analyzer

import (
	"strings"
	"unicode"
)

// CleanText 为下游分词清洗原始文本：保留字母数字与技术性标点
// （. + # - / 及括号），其余标点替换为空格，并折叠连续空白。
// 对空输入返回空字符串，任何输入都不会panic。
func CleanText(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevSpace = false
		case r == '.' || r == '+' || r == '#' || r == '-' || r == '/' || r == '(' || r == ')':
			b.WriteRune(r)
			prevSpace = false
		default:
			// 其余字符（含全部空白与标点）折叠为单个空格
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}
