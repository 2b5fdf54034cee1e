package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"namelab/app/echo-server/router"
	"namelab/business/campaign"
	"namelab/business/shadow"
	"namelab/internal/middleware"
	"namelab/internal/repository/postgres"
	"namelab/internal/rest"
	"namelab/pkg/config"
	"namelab/pkg/database"
	"namelab/pkg/logger"
	"namelab/pkg/metrics"
	"namelab/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Fatal("failed to load config", "error", err)
	}

	logger.Init(cfg.App.Environment)
	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	stateRepo := postgres.NewCampaignStateRepository(db)
	roundRepo := postgres.NewCampaignRoundRepository(db)
	eventRepo := postgres.NewSidecarEventRepository(db)

	campaignSvc := campaign.NewService(stateRepo, roundRepo, eventRepo, cfg.Campaign.Seed, cfg.Campaign.ExplorationFloor)
	shadowSvc := shadow.NewService(cfg.Model.ArtifactPath, cfg.Model.MetaPath, cfg.Model.Seed)

	campaignHandler := rest.NewCampaignHandler(campaignSvc)
	scoringHandler := rest.NewScoringHandler(shadowSvc)
	replayHandler := rest.NewReplayHandler()
	adminHandler := rest.NewAdminHandler(shadowSvc, campaignSvc)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.SetCampaignRoutes(e, campaignHandler)
	router.SetScoringRoutes(e, scoringHandler)
	router.SetReplayRoutes(e, replayHandler)
	router.SetAdminRoutes(e, adminHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "env", cfg.App.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", "error", err)
	}
	logger.Info("server stopped gracefully")
}
