package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"ats-match-go/internal/logger"
)

// EinoPDFExtractor 使用Eino PDF Parser的解析后端
type EinoPDFExtractor struct {
	parser *pdf.PDFParser
	logger zerolog.Logger
}

var _ PDFBackend = (*EinoPDFExtractor)(nil)

// NewEinoPDFExtractor 初始化Eino PDF解析后端。
// 配置为不按页面分割，以获取整个文档的连续文本。
func NewEinoPDFExtractor(ctx context.Context) (*EinoPDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	return &EinoPDFExtractor{
		parser: p,
		logger: logger.Logger.With().Str("component", "eino_pdf").Logger(),
	}, nil
}

// ExtractPDF 解析PDF内容并合并所有文档片段的文本
func (e *EinoPDFExtractor) ExtractPDF(ctx context.Context, data []byte, uri string) (string, error) {
	startTime := time.Now()

	// 解析大文件可能很慢，限制单次解析时长
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	extraMeta := map[string]interface{}{
		"source_uri":      uri,
		"extraction_time": time.Now().Format(time.RFC3339),
	}

	docs, err := e.parser.Parse(ctx, bytes.NewReader(data),
		einoParser.WithURI(uri),
		einoParser.WithExtraMeta(extraMeta),
	)
	if err != nil {
		return "", fmt.Errorf("eino解析PDF失败 (URI: %s): %w", uri, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("eino解析PDF无结果 (URI: %s)", uri)
	}

	// 合并所有文档的内容，以防返回了多个
	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(doc.Content)
	}

	e.logger.Debug().
		Str("uri", uri).
		Int("document_count", len(docs)).
		Int("text_length", sb.Len()).
		Dur("duration", time.Since(startTime)).
		Msg("Eino解析完成")
	return sb.String(), nil
}
