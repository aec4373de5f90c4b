// Package router 注册API路由与中间件
package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"

	"ats-match-go/internal/api/handler"
	"ats-match-go/internal/config"
	"ats-match-go/internal/logger"
	"ats-match-go/pkg/ratelimit"
)

// RegisterRoutes 注册API路由。
// 健康检查不走鉴权与限流，分析接口按配置启用两者。
func RegisterRoutes(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	api := h.Group("/api/v1")
	api.GET("/health", handler.HandleHealth)

	analyze := api.Group("/analyze")
	if len(cfg.Server.APIKeys) > 0 {
		analyze.Use(apiKeyMiddleware(cfg.Server.APIKeys))
		logger.Info().Int("key_count", len(cfg.Server.APIKeys)).Msg("API密钥鉴权已启用")
	}
	if cfg.RateLimit.Enabled {
		analyze.Use(rateLimitMiddleware(cfg.RateLimit))
		logger.Info().
			Int("capacity", cfg.RateLimit.Capacity).
			Float64("refill_per_second", cfg.RateLimit.RefillPerSecond).
			Msg("请求限流已启用")
	}

	analyze.POST("", analyzeHandler.HandleAnalyze)
	analyze.POST("/upload", analyzeHandler.HandleUpload)
}

// apiKeyMiddleware 校验X-API-Key请求头
func apiKeyMiddleware(keys []string) app.HandlerFunc {
	validKeys := make(map[string]bool, len(keys))
	for _, k := range keys {
		validKeys[k] = true
	}

	return keyauth.New(
		keyauth.WithKeyLookUp("header:X-API-Key", ""),
		keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
			return validKeys[key], nil
		}),
		keyauth.WithErrorHandler(func(ctx context.Context, c *app.RequestContext, err error) {
			c.AbortWithStatusJSON(consts.StatusUnauthorized, utils.H{"error": "无效的API密钥"})
		}),
	)
}

// rateLimitMiddleware 基于客户端IP的令牌桶限流
func rateLimitMiddleware(cfg config.RateLimitConfig) app.HandlerFunc {
	limiter := ratelimit.NewLimiter(cfg.RefillPerSecond, cfg.Capacity)

	return func(c context.Context, ctx *app.RequestContext) {
		clientIP := ctx.ClientIP()
		if !limiter.Allow(clientIP) {
			logger.Warn().Str("client_ip", clientIP).Msg("请求被限流")
			ctx.AbortWithStatusJSON(consts.StatusTooManyRequests, utils.H{"error": "请求过于频繁，请稍后再试"})
			return
		}
		ctx.Next(c)
	}
}
