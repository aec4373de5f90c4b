package tracing

import (
	"regexp"
	"strings"
)

const (
	// MaxHeaderLength HTTP头类属性的最大长度
	MaxHeaderLength = 100
	// MaxResumeLength 简历内容预览的最大长度
	MaxResumeLength = 150
	// MaxJDLength 职位描述预览的最大长度
	MaxJDLength = 150
)

// 属性名含这些关键字时值按敏感信息处理
var sensitiveKeywords = []string{
	"email", "phone", "password", "secret", "token", "key",
	"name", "姓名", "address", "地址", "身份证", "id_card",
}

// 简历内容里最常见的两类PII
var (
	piiEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	piiPhoneRe = regexp.MustCompile(`(\+?\d[\d\s().-]{7,}\d)`)
)

// SafeAttributeValue 属性写入span前的统一入口：
// 敏感属性名做掩码，其余只截断。
func SafeAttributeValue(name, value string, maxLength int) string {
	lowerName := strings.ToLower(name)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowerName, keyword) {
			return MaskPII(value)
		}
	}
	return TruncateString(value, maxLength)
}

// MaskPII 掩码敏感值，仅保留首尾少量字符用于对账
func MaskPII(value string) string {
	runes := []rune(value)
	switch n := len(runes); {
	case n == 0:
		return ""
	case n <= 2:
		return strings.Repeat("*", n)
	case n <= 6:
		return string(runes[:1]) + strings.Repeat("*", n-2) + string(runes[n-1:])
	default:
		return string(runes[:2]) + strings.Repeat("*", n-4) + string(runes[n-2:])
	}
}

// TruncateString 按rune截断并追加省略号
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 0 {
		return ""
	}
	return string(runes[:maxLength]) + "..."
}

// scrubPII 把文本中的邮箱和电话替换为掩码形式
func scrubPII(s string) string {
	s = piiEmailRe.ReplaceAllStringFunc(s, MaskPII)
	s = piiPhoneRe.ReplaceAllStringFunc(s, MaskPII)
	return s
}

// SafeResumeContent 简历内容预览：先抹掉联系方式再截断
func SafeResumeContent(content string) string {
	return TruncateString(scrubPII(content), MaxResumeLength)
}

// SafeJDContent 职位描述预览
func SafeJDContent(content string) string {
	return TruncateString(content, MaxJDLength)
}
