package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"notesboard/notesboard/config"
	"notesboard/notesboard/controllers"
	"notesboard/notesboard/routes"
	"notesboard/notesboard/sources/psql"
	"notesboard/notesboard/sources/psql/dao"
	"notesboard/notesboard/sources/storage"
	"notesboard/notesboard/utils/logging"
	"notesboard/notesboard/utils/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "logging error:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "database connection error:", err)
		os.Exit(1)
	}
	defer db.Close()

	var snapshots controllers.Snapshotter
	if cfg.ExportEnabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			fmt.Fprintln(os.Stderr, "minio connection error:", err)
			os.Exit(1)
		}
		snapshots = minioClient
	}

	m := metrics.NewMetrics("api")
	stopStats := recordPoolStats(db, m, 15*time.Second)
	defer stopStats()

	handler := routes.NewRouter(routes.Deps{
		Notes:   controllers.NewNotesController(dao.NewNoteDAO(db.DB), snapshots),
		Health:  controllers.NewHealthController(db),
		Metrics: m,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			fmt.Fprintln(os.Stderr, "server listen error:", err)
			os.Exit(1)
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

// recordPoolStats refreshes the pool gauges every interval until stopped.
func recordPoolStats(db *psql.Database, m *metrics.Metrics, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				if stats, err := db.Stats(); err == nil {
					m.RecordDBPoolStats(stats)
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}
