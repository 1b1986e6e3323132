package usecase

import (
	"chatbot-nlp-service/internal/model"
	"chatbot-nlp-service/pkg/entities"
	"chatbot-nlp-service/pkg/sentiment"
)

// detectSentiment buckets the continuous polarity score into a label.
func detectSentiment(text string) model.Sentiment {
	polarity := sentiment.Polarity(text)
	switch {
	case polarity > positivePolarityMin:
		return model.SentimentPositive
	case polarity < negativePolarityMax:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// extractEntities returns named-entity spans in extraction order.
func extractEntities(text string) []string {
	return entities.Extract(text)
}
