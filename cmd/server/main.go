package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"market_watch/internal/app/di"
	"market_watch/internal/app/router"
	"market_watch/internal/config"
	candleshandler "market_watch/internal/feature/candles/transport/handler"
	candlesusecase "market_watch/internal/feature/candles/usecase"
	"market_watch/internal/feature/dashboard/adapters/echarts"
	dashboardhandler "market_watch/internal/feature/dashboard/transport/handler"
	dashboardusecase "market_watch/internal/feature/dashboard/usecase"
	symbollistadapters "market_watch/internal/feature/symbollist/adapters"
	symbollisthandler "market_watch/internal/feature/symbollist/transport/handler"
	symbollistusecase "market_watch/internal/feature/symbollist/usecase"
	platformhandler "market_watch/internal/platform/http/handler"
	"market_watch/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env は任意
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return bootstrapError("failed to load config", err)
	}

	log, syncLog, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return bootstrapError("failed to init logger", err)
	}
	defer syncLog()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", zap.Error(err))
		return err
	}
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repository
	market, err := di.NewMarket(cfg)
	if err != nil {
		log.Error("failed to build market provider", zap.Error(err))
		return err
	}
	symbolRepo := symbollistadapters.NewSymbolCatalog()

	// Usecase
	historyUC := candlesusecase.NewHistoryUsecase(market, candlesusecase.DefaultPeriod)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)

	// 画面構成は起動時に一度だけ組み立てる
	symbols, err := symbolUC.ListActiveSymbols(context.Background())
	if err != nil {
		log.Error("failed to load symbols", zap.Error(err))
		return err
	}
	defaultSymbol, err := symbolUC.DefaultSymbol(context.Background())
	if err != nil {
		log.Error("failed to resolve default symbol", zap.Error(err))
		return err
	}
	figureUC := dashboardusecase.NewFigureUsecase(historyUC, defaultSymbol)
	layout := dashboardusecase.BuildLayout(symbols, defaultSymbol)

	tmpl, err := dashboardhandler.Templates()
	if err != nil {
		log.Error("failed to parse templates", zap.Error(err))
		return err
	}

	// Handler
	r := router.NewRouter(log, tmpl, router.Handlers{
		Dashboard: dashboardhandler.NewDashboardHandler(figureUC, echarts.NewRenderer(), layout, log, cfg.Debug),
		Candles:   candleshandler.NewCandlesHandler(historyUC, log, cfg.Debug),
		Symbols:   symbollisthandler.NewSymbolHandler(symbolUC, log),
		Health:    platformhandler.NewHealth(cfg.Provider),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("server starting",
			zap.String("addr", cfg.Addr),
			zap.String("provider", cfg.Provider),
			zap.Bool("debug", cfg.Debug),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

// bootstrapError はロガー生成前のエラーを標準エラー出力に書きます。
func bootstrapError(msg string, err error) error {
	l, _ := zap.NewProduction()
	if l != nil {
		l.Error(msg, zap.Error(err))
		_ = l.Sync()
	}
	return err
}
