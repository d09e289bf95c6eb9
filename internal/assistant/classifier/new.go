package classifier

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
	"marketplace-assistant/pkg/gemini"
	pkgLog "marketplace-assistant/pkg/log"
)

// Classifier resolves an utterance plus a caller profile to an intent
// category. Rule matches are deterministic and never touch the model;
// the LLM path is the fallback for everything the rules cannot place.
type Classifier interface {
	Classify(ctx context.Context, utterance string, profile model.UserProfile) (taxonomy.IntentCategory, error)
}

type hybridClassifier struct {
	llm   gemini.IGemini
	l     pkgLog.Logger
	cache *expirable.LRU[string, taxonomy.IntentCategory]
}

var _ Classifier = (*hybridClassifier)(nil)

// New creates the hybrid rule-then-LLM classifier.
func New(llm gemini.IGemini, l pkgLog.Logger) *hybridClassifier {
	return &hybridClassifier{
		llm:   llm,
		l:     l,
		cache: expirable.NewLRU[string, taxonomy.IntentCategory](CacheMaxEntries, nil, CacheTTL),
	}
}

// Classify applies the rule table first and falls back to the model.
// Any completion-service failure resolves to ErrCompletionUnavailable;
// no transport error ever propagates past this boundary.
func (c *hybridClassifier) Classify(ctx context.Context, utterance string, profile model.UserProfile) (taxonomy.IntentCategory, error) {
	if category, ok := matchRules(utterance, profile.Role); ok {
		c.l.Infof(ctx, "%s: rule match %s", LogPrefixClassify, category)
		return category, nil
	}

	key := string(profile.Role) + "|" + utterance
	if category, ok := c.cache.Get(key); ok {
		return category, nil
	}

	category, err := c.classifyWithModel(ctx, utterance, profile.Role)
	if err != nil {
		return taxonomy.CategoryOutOfScope, err
	}

	c.cache.Add(key, category)
	return category, nil
}

// CacheMaxEntries bounds the LLM classification cache.
const CacheMaxEntries = 1000

// CacheTTL expires cached LLM classifications.
const CacheTTL = 10 * time.Minute
