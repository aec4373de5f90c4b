// Package handler 实现分析服务的HTTP处理器
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"ats-match-go/internal/analyzer"
	"ats-match-go/internal/config"
	"ats-match-go/internal/extractor"
	"ats-match-go/internal/logger"
	"ats-match-go/internal/tracing"
	"ats-match-go/internal/types"
	pkgutils "ats-match-go/pkg/utils"
)

// AnalyzeHandler 简历分析处理器，协调文本提取与匹配分析
type AnalyzeHandler struct {
	cfg       *config.Config
	analyzer  *analyzer.Analyzer
	extractor extractor.TextExtractor
}

// NewAnalyzeHandler 创建分析处理器
func NewAnalyzeHandler(cfg *config.Config, a *analyzer.Analyzer, ext extractor.TextExtractor) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:       cfg,
		analyzer:  a,
		extractor: ext,
	}
}

// AnalyzeRequest 分析请求体
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// AnalyzeResponse 分析响应体
type AnalyzeResponse struct {
	AnalysisID string                `json:"analysis_id"`
	Result     *types.AnalysisResult `json:"result"`
}

// HandleAnalyze 处理 POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyze(c context.Context, ctx *app.RequestContext) {
	tracer := otel.Tracer("ats-match/api")
	c, span := tracer.Start(c, "handler.Analyze")
	defer span.End()

	var req AnalyzeRequest
	if err := ctx.BindAndValidate(&req); err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusBadRequest)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
		return
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		err := errors.New("resume_text不能为空")
		tracing.RecordHTTPError(span, err, consts.StatusBadRequest)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		err := errors.New("job_description不能为空")
		tracing.RecordHTTPError(span, err, consts.StatusBadRequest)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}

	resp, err := h.runAnalysis(c, req.ResumeText, req.JobDescription)
	if err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusInternalServerError)
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("analysis.id", resp.AnalysisID),
		attribute.Int("analysis.score", resp.Result.ATSScore),
	)
	ctx.JSON(consts.StatusOK, resp)
}

// HandleUpload 处理 POST /api/v1/analyze/upload
// 接收multipart文件与job_description表单字段，提取文本后走同一分析路径。
func (h *AnalyzeHandler) HandleUpload(c context.Context, ctx *app.RequestContext) {
	tracer := otel.Tracer("ats-match/api")
	c, span := tracer.Start(c, "handler.AnalyzeUpload")
	defer span.End()

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusBadRequest)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
		return
	}

	jobDescription := ctx.PostForm("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		err := errors.New("job_description不能为空")
		tracing.RecordHTTPError(span, err, consts.StatusBadRequest)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}

	maxSize := int64(h.cfg.Server.MaxUploadSizeMB) * 1024 * 1024
	if fileHeader.Size > maxSize {
		err := fmt.Errorf("文件超过大小限制 %dMB", h.cfg.Server.MaxUploadSizeMB)
		tracing.RecordHTTPError(span, err, consts.StatusRequestEntityTooLarge)
		ctx.JSON(consts.StatusRequestEntityTooLarge, utils.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusInternalServerError)
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusInternalServerError)
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取上传文件内容失败"})
		return
	}

	span.SetAttributes(
		attribute.String("upload.filename", tracing.SafeAttributeValue("upload.filename", fileHeader.Filename, tracing.MaxHeaderLength)),
		attribute.Int64("upload.size_bytes", fileHeader.Size),
	)

	resumeText, err := h.extractor.Extract(c, fileBytes, fileHeader.Filename)
	if err != nil {
		status := extractionStatus(err)
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction,
			attribute.Int("http.status_code", status))
		ctx.JSON(status, utils.H{"error": err.Error()})
		return
	}

	resp, err := h.runAnalysis(c, resumeText, jobDescription)
	if err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusInternalServerError)
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("analysis.id", resp.AnalysisID),
		attribute.Int("analysis.score", resp.Result.ATSScore),
	)
	ctx.JSON(consts.StatusOK, resp)
}

// runAnalysis 执行核心分析并包装响应
func (h *AnalyzeHandler) runAnalysis(c context.Context, resumeText, jobDescription string) (*AnalyzeResponse, error) {
	tracer := otel.Tracer("ats-match/api")
	_, span := tracer.Start(c, "analyzer.Analyze")
	defer span.End()

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成分析ID失败: %w", err)
	}
	analysisID := uuidV7.String()

	// 简历原文含PII，span属性只记录脱敏截断后的摘要
	span.SetAttributes(
		attribute.String("analysis.id", analysisID),
		attribute.String("resume.preview", tracing.SafeResumeContent(resumeText)),
		attribute.String("jd.preview", tracing.SafeJDContent(jobDescription)),
	)

	start := time.Now()
	result := h.analyzer.Analyze(resumeText, jobDescription)

	// 日志不落简历原文，只记录内容指纹
	logger.Info().
		Str("analysis_id", analysisID).
		Str("resume_md5", pkgutils.CalculateMD5([]byte(resumeText))).
		Int("ats_score", result.ATSScore).
		Int("strong_matches", len(result.StrongMatches)).
		Int("missing_skills", len(result.MissingSkills)).
		Dur("duration", time.Since(start)).
		Msg("简历分析完成")

	return &AnalyzeResponse{
		AnalysisID: analysisID,
		Result:     result,
	}, nil
}

// extractionStatus 将提取错误映射为HTTP状态码
func extractionStatus(err error) int {
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return consts.StatusUnsupportedMediaType
	case errors.Is(err, extractor.ErrEmptyDocument):
		return consts.StatusUnprocessableEntity
	default:
		return consts.StatusInternalServerError
	}
}
