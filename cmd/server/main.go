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

	"github.com/putraaxzy/Artemis-PKL/config"
	"github.com/putraaxzy/Artemis-PKL/internal/api/handler"
	"github.com/putraaxzy/Artemis-PKL/internal/api/router"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/database"
	"github.com/putraaxzy/Artemis-PKL/pkg/gemini"
	"github.com/putraaxzy/Artemis-PKL/pkg/jwt"
	applogger "github.com/putraaxzy/Artemis-PKL/pkg/logger"
	"github.com/putraaxzy/Artemis-PKL/pkg/redis"
	"github.com/putraaxzy/Artemis-PKL/pkg/storage"
)

func main() {
	// 1. muat konfigurasi
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal memuat konfigurasi: %v\n", err)
		os.Exit(1)
	}

	// 2. inisialisasi logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal inisialisasi logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("aplikasi dimulai...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. koneksi database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("koneksi database gagal", zap.Error(err))
	}
	logger.Info("database terhubung")

	// 3.1 migrasi skema
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("migrasi database gagal", zap.Error(err))
	}

	// 4. koneksi Redis (opsional: startup tetap lanjut saat gagal,
	//    blacklist token dan antrean pengingat dinonaktifkan)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("koneksi Redis gagal, blacklist token dan pengingat tidak tersedia", zap.Error(err))
		rdb = nil
	}

	// 5. pengelola JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. klien model generatif
	chatter := gemini.NewClient(&cfg.Gemini)

	// 7. penyimpanan lampiran (opsional: tanpa kredensial B2, fitur
	//    lampiran dimatikan)
	var files storage.FileStore
	if cfg.Storage.AccountID != "" {
		b2, err := storage.NewB2Storage(context.Background(), cfg.Storage.AccountID, cfg.Storage.AppKey, cfg.Storage.Bucket)
		if err != nil {
			logger.Warn("koneksi B2 gagal, lampiran tugas tidak tersedia", zap.Error(err))
		} else {
			files = b2
		}
	}

	// 8. injeksi dependensi: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, chatter, files, logger)
	h := handler.NewHandler(cfg, svc)

	// 9. router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 10. HTTP server dengan graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // panggilan model generatif bisa lama
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server berjalan", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server gagal", zap.Error(err))
		}
	}()

	// 11. tunggu sinyal, lalu matikan dengan rapi
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinyal berhenti diterima, menutup server...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("penutupan server tidak mulus", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server berhenti")
}
