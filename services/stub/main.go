// Заглушка сервера LapLogger: записи в памяти, JWT-авторизация. Для локальной разработки и демо CLI.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/laplogger/internal/config"
	"github.com/laplogger/internal/handler"
	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/repository"
	"github.com/laplogger/internal/service"
)

func main() {
	logger.SetPrefix("stub")
	logger.Info("starting stub server")
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	secret := cfg.StubJWTSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.Errorf("generate jwt secret: %v", err)
			os.Exit(1)
		}
		secret = hex.EncodeToString(buf)
		logger.Info("JWT_SECRET не задан: сгенерирован временный ключ, токены не переживут перезапуск")
	}

	repo := repository.NewStore()
	authSvc := service.NewAuthService(repo, secret)
	r := handler.NewRouter(repo, authSvc, cfg.CORSAllowedOrigins)

	addr := cfg.StubAddr
	srv := &http.Server{Addr: addr, Handler: r, ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second}
	var srvWg sync.WaitGroup
	srvWg.Add(1)
	go func() {
		defer srvWg.Done()
		logger.Infof("stub server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("stub server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down stub server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("stub server shutdown: %v", err)
	}
	srvWg.Wait()
	logger.Info("stub server stopped")
	logger.Flush(time.Second)
}
