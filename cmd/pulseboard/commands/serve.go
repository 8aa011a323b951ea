package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pulseboard/internal/adapter/cache"
	"pulseboard/internal/adapter/handler"
	"pulseboard/internal/adapter/marketdata/demo"
	"pulseboard/internal/adapter/marketdata/yahoo"
	"pulseboard/internal/adapter/storage"
	"pulseboard/internal/application/service"
	"pulseboard/internal/application/usecase"
	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/infrastructure/logger"
	"pulseboard/internal/infrastructure/server"
)

var (
	configPath string
	portFlag   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "configs/config.yaml", "path to config file")
	serveCmd.Flags().IntVar(&portFlag, "port", 0, "override the configured HTTP port")
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if portFlag != 0 {
		cfg.Server.Port = portFlag
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting pulseboard", "version", version)

	postgresAdapter, err := storage.NewPostgresAdapter(cfg.PostgresDSN())
	if err != nil {
		log.Error("failed to initialize postgres", "error", err)
		return err
	}
	defer postgresAdapter.Close()

	if err := postgresAdapter.InitSchema(context.Background()); err != nil {
		log.Error("failed to initialize schema", "error", err)
		return err
	}

	redisAdapter, err := cache.NewRedisAdapter(
		cfg.RedisAddr(),
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Market.QuoteTTL,
		cfg.Market.SeriesTTL,
	)
	if err != nil {
		log.Error("failed to initialize redis", "error", err)
		return err
	}
	defer redisAdapter.Close()

	liveProvider := yahoo.NewProvider(cfg.Market.Timeout, cfg.Market.Retries, log)
	demoProvider := demo.NewProvider(log)

	modeService := service.NewModeService(log)
	insightService := service.NewInsightService()
	kpiService := service.NewKPIService()
	anomalyService := service.NewAnomalyService()
	pipelineService := service.NewPipelineService()
	reportService := service.NewReportService(postgresAdapter, kpiService, log, time.Now().UnixNano())

	quoteUseCase := usecase.NewQuoteUseCase(liveProvider, demoProvider, redisAdapter, postgresAdapter, modeService, log)

	quoteHandler := handler.NewQuoteHandler(quoteUseCase, insightService, cfg.Market.Tickers, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	analyticsHandler := handler.NewAnalyticsHandler(anomalyService, pipelineService, kpiService)
	modeHandler := handler.NewModeHandler(modeService, log)
	healthHandler := handler.NewHealthHandler(postgresAdapter, redisAdapter, modeService, log)
	streamHandler := handler.NewStreamHandler(quoteUseCase, cfg.Market.PollInterval, log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /symbols", quoteHandler.ListSymbols)
	mux.HandleFunc("GET /quotes/{symbol}", quoteHandler.GetQuote)
	mux.HandleFunc("GET /quotes/{symbol}/history", quoteHandler.GetHistory)
	mux.HandleFunc("GET /quotes/{symbol}/insight", quoteHandler.GetInsight)
	mux.HandleFunc("POST /reports/ask", reportHandler.Ask)
	mux.HandleFunc("GET /reports/history", reportHandler.History)
	mux.HandleFunc("GET /reports/stats", reportHandler.Stats)
	mux.HandleFunc("GET /anomalies", analyticsHandler.GetAnomalies)
	mux.HandleFunc("GET /anomalies/series", analyticsHandler.GetAnomalySeries)
	mux.HandleFunc("GET /pipelines", analyticsHandler.GetPipelines)
	mux.HandleFunc("GET /pipelines/summary", analyticsHandler.GetPipelineSummary)
	mux.HandleFunc("GET /kpis", analyticsHandler.GetKPIs)
	mux.HandleFunc("GET /kpis/revenue-trend", analyticsHandler.GetRevenueTrend)
	mux.HandleFunc("POST /mode/demo", modeHandler.SwitchToDemo)
	mux.HandleFunc("POST /mode/live", modeHandler.SwitchToLive)
	mux.HandleFunc("GET /mode", modeHandler.GetMode)
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.HandleFunc("GET /ws/quotes", streamHandler.StreamQuotes)

	srv := server.NewServer(cfg.Server.Port, mux, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, log)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		return err
	case sig := <-sigCh:
		log.Info("shutting down gracefully", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("shutdown complete")
	return nil
}
