package extractor

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog"

	"ats-match-go/internal/logger"
)

// DOCX正文是WordprocessingML，提取后需要剥离标签
var (
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// DocxExtractor DOCX文档解析器
type DocxExtractor struct {
	logger zerolog.Logger
}

// NewDocxExtractor 创建DOCX解析器
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{
		logger: logger.Logger.With().Str("component", "docx").Logger(),
	}
}

// ExtractDocx 从DOCX文件内容中提取纯文本，段落之间以换行分隔
func (e *DocxExtractor) ExtractDocx(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("打开DOCX失败: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := docxToPlainText(content)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	e.logger.Debug().Int("text_length", len(text)).Msg("DOCX解析完成")
	return text, nil
}

// docxToPlainText 将WordprocessingML内容转换为纯文本
func docxToPlainText(content string) string {
	// 段落结束标签换成换行，保留简历的分行结构
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	var sb strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line)
	}
	return sb.String()
}
