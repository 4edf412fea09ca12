package main

import (
	"os"
	"os/signal"
	"syscall"

	"zappy-server/internal/config"
	"zappy-server/internal/engine"
	"zappy-server/internal/server"
	"zappy-server/internal/version"
	"zappy-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	logger.Log.Info("Starting Zappy Server...")
	logger.Log.Info(version.String())

	// 1. Конфигурация: флаги поверх YAML-файла
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Log.Fatal(err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"map":   [2]int{cfg.Width, cfg.Height},
		"teams": cfg.Teams,
		"freq":  cfg.Freq,
	}).Info("🗺 Мир сконфигурирован")

	if cfg.Seed != 0 {
		logger.Log.Infof("🎲 Фиксированный сид: %d", cfg.Seed)
	}

	// 2. Инициализация ядра
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	srv.Stop()
	gameService.Stop()
	<-gameService.Done()

	logger.Log.Info("Done.")
}
