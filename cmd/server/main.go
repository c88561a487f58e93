package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cgtsc/website/internal/config"
	"cgtsc/website/internal/db"
	"cgtsc/website/internal/handler"
	transport "cgtsc/website/internal/http"
	"cgtsc/website/internal/i18n"
	"cgtsc/website/internal/logger"
	"cgtsc/website/internal/network"
	"cgtsc/website/internal/repository"
	"cgtsc/website/internal/scheduler"
	"cgtsc/website/internal/service"
	"cgtsc/website/internal/site"
	"cgtsc/website/internal/snowflake"
	"cgtsc/website/internal/source"
	"cgtsc/website/internal/web"
)

// @title CGTSC Website API
// @version 1.0
// @description Notices and status checks for the Chatkhil Government Technical School and College website.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	table, err := i18n.LoadTable()
	if err != nil {
		log.Fatalf("load translations: %v", err)
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("load templates: %v", err)
	}

	noticeRepo := repository.NewNoticeRepository(dbConn)
	statusRepo := repository.NewStatusCheckRepository(dbConn)

	clients, err := network.NewClientFactory(cfg.ProxyURL, cfg.UpstreamQPS, config.SiteUserAgent)
	if err != nil {
		log.Fatalf("build upstream client: %v", err)
	}
	noticeSource := newNoticeSource(cfg, clients.NewHTTPClient(30*time.Second))

	noticeService := service.NewNoticeService(noticeRepo, noticeSource, cfg.Notices.Limit)
	statusService := service.NewStatusService(statusRepo)

	loader := site.NewLoader(cfg.BackendURL, &http.Client{Timeout: cfg.Notices.LoadTimeout})

	router := transport.NewRouter(transport.Handlers{
		Root:    handler.NewRootHandler(),
		Notices: handler.NewNoticeHandler(noticeService),
		Status:  handler.NewStatusHandler(statusService),
		Site:    handler.NewSiteHandler(table, loader),
	}, renderer, cfg.CORSOrigins)

	sched := scheduler.New(noticeService, cfg.Notices.RefreshInterval)
	sched.Start()

	go func() {
		logger.Info("server started", "module", "http", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "source", noticeSource.Name(), "backend_url", cfg.BackendURL)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("start server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down", "module", "http", "action", "stop", "resource", "http", "result", "ok")

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "module", "http", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}

func newNoticeSource(cfg config.Config, client *http.Client) source.Source {
	url := cfg.NoticeSourceURL()
	switch cfg.Notices.Source {
	case config.SourceFeed:
		return source.NewFeedSource(url, client)
	case config.SourceBoard:
		return source.NewBoardSource(url, client, source.BoardSelectors{
			Item:        cfg.Board.ItemSelector,
			Title:       cfg.Board.TitleSelector,
			Date:        cfg.Board.DateSelector,
			Description: cfg.Board.DescriptionSelector,
		})
	default:
		return source.NewSheetSource(url, client)
	}
}
