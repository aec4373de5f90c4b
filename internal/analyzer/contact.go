package analyzer

import (
	"regexp"
	"strings"

	"ats-match-go/internal/types"
)

// 联系方式只从简历头部区块提取，作为补充字段，不参与评分
var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?\(?\d{3,4}\)?[\s\-.]?\d{3,4}[\s\-.]?\d{4}`)
	linkRe  = regexp.MustCompile(`(https?://[^\s|,;]+|(www\.|github\.com/|linkedin\.com/)[^\s|,;]+)`)
)

// ExtractContact 从文本中抓取邮箱、电话和个人链接。
// 什么都没找到时返回nil，输出里省略contact字段
func ExtractContact(text string) *types.ContactInfo {
	info := &types.ContactInfo{}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	for _, m := range linkRe.FindAllString(text, -1) {
		link := strings.TrimRight(m, ").,")
		if strings.Contains(link, "@") {
			continue // 邮箱域名误命中
		}
		info.Links = append(info.Links, link)
	}

	if info.Email == "" && info.Phone == "" && len(info.Links) == 0 {
		return nil
	}
	return info
}
