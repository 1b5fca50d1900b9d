package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/sources/backend"
	"artfolio/artfolio/sources/storage"
	"artfolio/artfolio/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		// loggers are not up yet
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogDir, cfg.LogStdout)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := backend.Open(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("store connection error", zap.String("backend", cfg.StoreBackend), zap.Error(err))
		os.Exit(1)
	}
	defer s.Close()

	files, err := storage.NewFileHost(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("file host error", zap.String("file_host", cfg.FileHost), zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(cfg, s, files),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("server listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.StoreBackend),
			zap.String("file_host", cfg.FileHost),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
