// Package tracing 提供span错误记录与属性脱敏辅助函数。
// 只封装otel API层，不做SDK接线，宿主未安装provider时所有span为noop。
package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorType 错误分类，作为span属性便于过滤
type ErrorType string

const (
	// ErrorTypeHTTP HTTP层错误
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypeExtraction 文档文本抽取错误
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeInternal 内部错误
	ErrorTypeInternal ErrorType = "internal"
)

// RecordError 在span上记录错误，统一附加分类与消息属性
func RecordError(span trace.Span, err error, errorType ErrorType, attrs ...attribute.KeyValue) {
	if span == nil || err == nil {
		return
	}

	span.RecordError(err)
	span.SetAttributes(append(attrs,
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)...)
	span.SetStatus(codes.Error, err.Error())
}

// RecordHTTPError 记录HTTP层错误并按状态码归类
func RecordHTTPError(span trace.Span, err error, statusCode int) {
	category := "unknown"
	switch {
	case statusCode >= 500:
		category = "server_error"
	case statusCode >= 400:
		category = "client_error"
	}

	RecordError(span, err, ErrorTypeHTTP,
		attribute.Int("http.status_code", statusCode),
		attribute.String("error.category", category),
	)
}
