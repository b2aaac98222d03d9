// cmd/atm/main.go

// 啟動 ATM 模擬器的 HTTP 介面。
// 啟動時從帳戶檔載入所有帳戶（檔案不存在或格式錯誤即中止），
// 使用者登出時由 server 寫回帳戶檔；收到 SIGINT/SIGTERM 時若仍有登入中的工作階段，也會寫回一次。

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atm/internal/bank"
	"atm/internal/config"
	"atm/internal/logging"
	promMetrics "atm/internal/metrics/prometheus"
	"atm/internal/server"
	"atm/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	logger, err := logging.FromEnv()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	flag.StringVar(&cfg.AccountsFile, "accounts", cfg.AccountsFile, "accounts file (cardNumber,password,balance per line)")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.Language, "lang", cfg.Language, "default interface language (fa or en)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	recs, err := storage.Load(cfg.AccountsFile)
	if err != nil {
		logger.Fatal("load accounts", zap.String("path", cfg.AccountsFile), zap.Error(err))
	}
	svc := bank.NewService(bank.FromRecords(recs))
	logger.Info("accounts loaded", zap.String("path", cfg.AccountsFile), zap.Int("count", len(recs)))

	// persist 將目前帳戶切片整份寫回帳戶檔
	persist := func() error {
		return storage.Save(cfg.AccountsFile, bank.ToRecords(svc.Accounts()))
	}

	registry := prometheus.NewRegistry()
	collector := promMetrics.NewCollector("atm")
	if err := collector.Register(registry); err != nil {
		logger.Fatal("register metrics", zap.Error(err))
	}

	s := server.NewServer(svc, persist, server.Options{
		Logger:         logger.Named("server"),
		Metrics:        collector,
		Language:       cfg.Language,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("ATM server running", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}

	// 伺服器已停止，不會再有 handler 同時存取 svc
	if svc.CurrentAccount() != nil {
		if err := persist(); err != nil {
			logger.Error("persist accounts on exit", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("accounts saved on exit", zap.String("session", svc.SessionID()))
	}
}
