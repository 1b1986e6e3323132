package usecase

import (
	"math/rand"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"chatbot-nlp-service/internal/chat"
	"chatbot-nlp-service/internal/chat/repository"
	"chatbot-nlp-service/internal/intent"
	pkgLog "chatbot-nlp-service/pkg/log"
)

// Vectorizer converts normalized text into a feature vector. The concrete
// implementation is a TF-IDF model trained offline.
type Vectorizer interface {
	Transform(doc string) []float64
}

// Classifier yields tag probabilities for a feature vector. Classes returns
// the native tag ordering used for tie-breaking.
type Classifier interface {
	PredictProba(x []float64) ([]float64, error)
	Classes() []string
}

// Config holds the serving-time knobs of the pipeline.
type Config struct {
	TopK          int
	Threshold     float64
	CacheSize     int
	SolverTimeout time.Duration // 0 disables the guard around math solving

	// Rand drives template selection; tests inject a seeded source.
	// Defaults to a time-seeded source.
	Rand *rand.Rand

	// Now supplies the clock for the time/date tags. Defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l          pkgLog.Logger
	catalog    *intent.Catalog
	vectorizer Vectorizer
	classifier Classifier
	history    repository.HistoryRepository

	topK          int
	threshold     float64
	solverTimeout time.Duration
	now           func() time.Time

	// rand is shared across in-flight requests and *rand.Rand is not safe
	// for concurrent use, so every draw goes through randMu.
	randMu sync.Mutex
	rand   *rand.Rand

	// classifyCache memoizes classification by normalized text; the model is
	// immutable so entries never go stale.
	classifyCache *lru.Cache[string, []chat.Classification]
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	catalog *intent.Catalog,
	vectorizer Vectorizer,
	classifier Classifier,
	history repository.HistoryRepository,
	cfg Config,
) *implUseCase {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	uc := &implUseCase{
		l:             l,
		catalog:       catalog,
		vectorizer:    vectorizer,
		classifier:    classifier,
		history:       history,
		topK:          cfg.TopK,
		threshold:     cfg.Threshold,
		solverTimeout: cfg.SolverTimeout,
		rand:          cfg.Rand,
		now:           cfg.Now,
	}

	if cfg.CacheSize > 0 {
		// lru.New only fails on a non-positive size.
		uc.classifyCache, _ = lru.New[string, []chat.Classification](cfg.CacheSize)
	}

	return uc
}
