// Package extractor 从上传的简历文件中提取纯文本。
// 支持PDF(本地解析/Eino/Tika三种引擎)、DOCX和纯文本三类输入。
package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ats-match-go/internal/config"
	"ats-match-go/internal/logger"
)

var (
	// ErrUnsupportedFormat 表示文件扩展名不在支持范围内
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
	// ErrEmptyDocument 表示解析成功但没有提取到任何文本
	ErrEmptyDocument = errors.New("文档中没有可提取的文本")
)

// TextExtractor 文本提取器接口
type TextExtractor interface {
	// Extract 从文件内容中提取纯文本，filename用于按扩展名选择解析方式
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// PDFBackend PDF解析后端，不同引擎实现同一签名
type PDFBackend interface {
	ExtractPDF(ctx context.Context, data []byte, uri string) (string, error)
}

// Service 按扩展名分发到对应解析器的提取服务
type Service struct {
	pdf    PDFBackend
	docx   *DocxExtractor
	logger zerolog.Logger
}

// 确保Service实现了TextExtractor接口
var _ TextExtractor = (*Service)(nil)

// New 根据配置构建提取服务，PDF后端由extractor.engine决定
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	log := logger.Logger.With().Str("component", "extractor").Logger()

	var backend PDFBackend
	switch cfg.Extractor.Engine {
	case "tika":
		backend = NewTikaExtractor(cfg.Tika.ServerURL,
			WithTimeout(time.Duration(cfg.Tika.Timeout)*time.Second))
	case "eino":
		eino, err := NewEinoPDFExtractor(ctx)
		if err != nil {
			return nil, fmt.Errorf("初始化Eino PDF解析器失败: %w", err)
		}
		backend = eino
	case "local":
		backend = NewLocalPDFExtractor()
	default:
		return nil, fmt.Errorf("未知的提取引擎: %s", cfg.Extractor.Engine)
	}

	log.Info().Str("engine", cfg.Extractor.Engine).Msg("文本提取服务已初始化")
	return &Service{
		pdf:    backend,
		docx:   NewDocxExtractor(),
		logger: log,
	}, nil
}

// Extract 按文件扩展名分发解析，扩展名大小写不敏感
func (s *Service) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	ext := strings.ToLower(filepath.Ext(filename))
	start := time.Now()

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = s.pdf.ExtractPDF(ctx, data, filename)
	case ".docx":
		text, err = s.docx.ExtractDocx(ctx, data)
	case ".txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("文本提取失败")
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	s.logger.Debug().
		Str("filename", filename).
		Int("text_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("文本提取完成")
	return text, nil
}
