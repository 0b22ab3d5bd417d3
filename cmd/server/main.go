package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/content"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/generator"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/infrastructure/storage"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/schema"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/server"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/settings"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/version"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var contentPath string
	flag.StringVar(&configPath, "config", "settings.yaml", "Path to settings file")
	flag.StringVar(&contentPath, "content", "", "Override path to content document")
	flag.Parse()

	logger.Log.Info("Starting authoring server...")
	logger.Log.Info(version.String())

	cfg, err := settings.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Failed to load settings:", err)
	}
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}

	// 2. Схема: кеш -> игровой сервер -> встроенная
	loader := schema.NewLoader(cfg.SchemaCachePath, cfg.SchemaURL(), cfg.FetchTimeout())
	sch, source := loader.Load(context.Background())
	logger.Log.WithField("source", source).Info("Schema loaded")

	// 3. Документ контента. Отсутствующий файл - первый запуск, поднимаем
	// дефолтный набор и сразу пишем его на диск.
	contentFile := storage.NewContentService(cfg.ContentPath)
	doc, err := contentFile.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Fatal("Failed to read content document:", err)
		}
		logger.Log.WithField("path", cfg.ContentPath).Info("Content document missing, writing defaults")
		doc = storage.DefaultDocument()
		if err := contentFile.Save(doc.GameObjects, doc.Levels); err != nil {
			logger.Log.Fatal("Failed to write default content:", err)
		}
	}

	st, err := content.FromDocument(doc.GameObjects, doc.Levels)
	if err != nil {
		logger.Log.Fatal("Content document is unusable:", err)
	}

	gen := generator.NewClient(cfg.GameServerURL, cfg.FetchTimeout())

	svc := server.NewService(st, sch, source, gen, contentFile)

	// Загруженный контент может быть битым - это рабочее состояние,
	// сервер стартует и отдаёт проблемы через /api/validate.
	if issues, _ := svc.Validate(); len(issues) > 0 {
		logger.Log.WithField("count", len(issues)).Warn("Loaded content has validation issues")
	}

	if cfg.WatchContent {
		watcher, err := server.WatchContent(svc, cfg.ContentPath)
		if err != nil {
			logger.Log.WithError(err).Warn("Content watcher unavailable, live reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(svc, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}
