package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"ats-match-go/internal/logger"
)

// LocalPDFExtractor 进程内PDF解析后端，不依赖外部服务
type LocalPDFExtractor struct {
	logger zerolog.Logger
}

var _ PDFBackend = (*LocalPDFExtractor)(nil)

// NewLocalPDFExtractor 创建本地PDF解析后端
func NewLocalPDFExtractor() *LocalPDFExtractor {
	return &LocalPDFExtractor{
		logger: logger.Logger.With().Str("component", "local_pdf").Logger(),
	}
}

// ExtractPDF 逐页提取纯文本，单页失败时跳过该页继续
func (e *LocalPDFExtractor) ExtractPDF(ctx context.Context, data []byte, uri string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("打开PDF失败 (URI: %s): %w", uri, err)
	}

	var sb strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn().Err(err).Int("page", i).Str("uri", uri).Msg("跳过无法解析的页面")
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("%w (URI: %s)", ErrEmptyDocument, uri)
	}

	e.logger.Debug().
		Str("uri", uri).
		Int("pages", totalPages).
		Int("text_length", sb.Len()).
		Msg("本地PDF解析完成")
	return sb.String(), nil
}
