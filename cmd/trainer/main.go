package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"chatbot-nlp-service/config"
	"chatbot-nlp-service/internal/intent"
	"chatbot-nlp-service/pkg/bayes"
	"chatbot-nlp-service/pkg/log"
	"chatbot-nlp-service/pkg/tfidf"
)

// trainer fits the TF-IDF vectorizer and the naive Bayes classifier on the
// intent catalog and writes both artifacts to the configured paths. Run it
// whenever intents.json changes, then restart the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	catalog, err := intent.Load(cfg.Model.IntentsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load intent catalog: %v", err)
	}
	logger.Infof(ctx, "Loaded %d intents from %s", catalog.Len(), cfg.Model.IntentsPath)

	set := intent.BuildTrainingSet(ctx, catalog, logger)
	if len(set.Docs) == 0 {
		logger.Fatalf(ctx, "No training patterns in catalog, nothing to fit")
	}
	logger.Infof(ctx, "Training set: %d documents across %d intents", len(set.Docs), catalog.Len())

	vectorizer := tfidf.Fit(set.Docs)
	logger.Infof(ctx, "Vectorizer fitted: %d features", vectorizer.NumFeatures())

	X := make([][]float64, len(set.Docs))
	for i, doc := range set.Docs {
		X[i] = vectorizer.Transform(doc)
	}

	classifier, err := bayes.Train(X, set.Tags, bayes.DefaultAlpha)
	if err != nil {
		logger.Fatalf(ctx, "Failed to train classifier: %v", err)
	}
	logger.Infof(ctx, "Classifier trained: %d classes", len(classifier.Classes()))

	for _, path := range []string{cfg.Model.VectorizerPath, cfg.Model.ClassifierPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			logger.Fatalf(ctx, "Failed to create artifact directory: %v", err)
		}
	}

	if err := vectorizer.Save(cfg.Model.VectorizerPath); err != nil {
		logger.Fatalf(ctx, "Failed to save vectorizer: %v", err)
	}
	logger.Infof(ctx, "Vectorizer saved to %s", cfg.Model.VectorizerPath)

	if err := classifier.Save(cfg.Model.ClassifierPath); err != nil {
		logger.Fatalf(ctx, "Failed to save classifier: %v", err)
	}
	logger.Infof(ctx, "Classifier saved to %s", cfg.Model.ClassifierPath)

	logger.Info(ctx, "Training complete!")
}
