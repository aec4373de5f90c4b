package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"ats-match-go/internal/analyzer"
	"ats-match-go/internal/api/handler"
	"ats-match-go/internal/api/router"
	"ats-match-go/internal/config"
	"ats-match-go/internal/dict"
	"ats-match-go/internal/extractor"
	"ats-match-go/internal/logger"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径，为空时按默认路径查找")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置失败")
	}

	logger.Init(cfg.Logger)
	// Hertz框架日志统一走zerolog
	glog.SetLogger(hertzadapter.From(logger.Logger))
	logger.Info().Str("address", cfg.Server.Address).Msg("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dicts, err := dict.Load(cfg.Dict.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Dict.Path).Msg("加载词典失败")
	}
	logger.Info().Msg("词典初始化成功")

	textExtractor, err := extractor.New(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化文本提取服务失败")
	}

	analyzeHandler := handler.NewAnalyzeHandler(cfg, analyzer.New(dicts), textExtractor)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		glog.CtxInfof(c, "%s %s -> %d (%s)",
			string(ctx.Method()), string(ctx.Path()),
			ctx.Response.StatusCode(), time.Since(start))
	})

	router.RegisterRoutes(h, cfg, analyzeHandler)
	logger.Info().Msg("HTTP路由注册成功")

	go func() {
		logger.Info().Str("address", cfg.Server.Address).Msg("HTTP服务器启动中")
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
	}
	logger.Info().Msg("优雅退出完成")
}
