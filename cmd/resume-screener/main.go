package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"resume-screener-go/internal/api/handler"
	"resume-screener-go/internal/api/router"
	"resume-screener-go/internal/config"
	"resume-screener-go/internal/constants"
	"resume-screener-go/internal/extractor"
	appLogger "resume-screener-go/internal/logger"
	"resume-screener-go/internal/parser"
	"resume-screener-go/internal/scorer"
)

var (
	version     = "1.0.0"             //nolint:gochecknoglobals
	serviceName = "resume-screener"   //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", constants.DefaultConfigPath, "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Infof("配置加载成功 (%s v%s)", serviceName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 文档解码器（PDF/DOCX/TXT）
	decoderLogger := log.New(appLogger.Logger, "[Decoder] ", log.LstdFlags)
	decoder, err := parser.NewDocumentDecoder(ctx, parser.WithDecoderLogger(decoderLogger))
	if err != nil {
		glog.Fatalf("初始化文档解码器失败: %v", err)
	}
	glog.Info("文档解码器初始化成功")

	// 文本抽取服务，实体增强器为可选能力
	extractorOptions := []extractor.Option{
		extractor.WithExtractorLogger(log.New(appLogger.Logger, "[Extractor] ", log.LstdFlags)),
	}
	if cfg.Augmenter.Enabled {
		// 本构建未接入真实聊天模型后端，回退到Mock模型
		glog.Warn("实体增强器已启用但未接入真实LLM后端，将回退到MockChatModel")
		augmenter := extractor.NewEinoEntityAugmenter(
			&extractor.MockChatModel{Response: "[]"},
			extractor.WithAugmenterLogger(log.New(appLogger.Logger, "[Augmenter] ", log.LstdFlags)),
		)
		extractorOptions = append(extractorOptions, extractor.WithAugmenter(augmenter))
	}
	textExtractor := extractor.NewTextExtractor(decoder, extractorOptions...)
	glog.Info("文本抽取服务初始化成功")

	// 匹配打分服务
	matchScorer := scorer.NewMatchScorer(
		scorer.WithScorerLogger(log.New(appLogger.Logger, "[Scorer] ", log.LstdFlags)),
	)
	glog.Info("匹配打分服务初始化成功")

	screeningHandler := handler.NewScreeningHandler(cfg, textExtractor, matchScorer)
	glog.Info("ScreeningHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Parser.MaxUploadBytes)*2+1<<20),
	)

	// CORS：未配置来源时允许所有来源
	if len(cfg.Server.CORSAllowOrigins) == 0 {
		h.Use(cors.Default())
	} else {
		h.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSAllowOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 请求日志
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, screeningHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog全局日志并接管Hertz的日志输出
func initLogger(cfg *config.Config) {
	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	hertzCompatibleLogger := hertzadapter.From(appLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
