package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chatbot-nlp-service/config"
	_ "chatbot-nlp-service/docs" // Swagger docs
	chatHTTP "chatbot-nlp-service/internal/chat/delivery/http"
	"chatbot-nlp-service/internal/chat/repository/memory"
	"chatbot-nlp-service/internal/chat/usecase"
	"chatbot-nlp-service/internal/httpserver"
	"chatbot-nlp-service/internal/intent"
	"chatbot-nlp-service/internal/middleware"
	"chatbot-nlp-service/pkg/bayes"
	"chatbot-nlp-service/pkg/log"
	"chatbot-nlp-service/pkg/tfidf"
)

// @title       Chatbot NLP API
// @description Conversational text-understanding service: intent classification, sentiment, entities and symbolic math.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chatbot NLP Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model artifacts. A serving process without its model is useless,
	// so any load failure is fatal.
	catalog, err := intent.Load(cfg.Model.IntentsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load intent catalog: %v", err)
	}
	logger.Infof(ctx, "Intent catalog loaded: %d intents from %s", catalog.Len(), cfg.Model.IntentsPath)

	vectorizer, err := tfidf.Load(cfg.Model.VectorizerPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load vectorizer: %v", err)
	}
	logger.Infof(ctx, "Vectorizer loaded: %d features", vectorizer.NumFeatures())

	classifier, err := bayes.Load(cfg.Model.ClassifierPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load classifier: %v", err)
	}
	logger.Infof(ctx, "Classifier loaded: %d classes", len(classifier.Classes()))

	// 4. Chat domain
	historyStore := memory.New()
	chatUC := usecase.New(logger, catalog, vectorizer, classifier, historyStore, usecase.Config{
		TopK:          cfg.Pipeline.TopK,
		Threshold:     cfg.Pipeline.Threshold,
		CacheSize:     cfg.Pipeline.CacheSize,
		SolverTimeout: cfg.Pipeline.SolverTimeout,
	})
	chatHandler := chatHTTP.New(logger, chatUC)

	// 5. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
