package recommend

import (
	"log"

	"SilverAdvisor/internal/catalog"
	"SilverAdvisor/internal/model"
	"SilverAdvisor/internal/store"
)

// Engine runs the full recommendation pipeline: candidate filtering, vector
// ranking, and explanation building, over the process-lifetime catalog.
// Each call is a pure read of the catalog snapshot; nothing is shared
// between requests.
type Engine struct {
	catalog *catalog.Catalog
	store   store.Store
	topK    int
}

// NewEngine creates an Engine over an opened catalog.
func NewEngine(cat *catalog.Catalog, st store.Store, topK int) *Engine {
	return &Engine{catalog: cat, store: st, topK: topK}
}

// Recommend produces the ranked top-K recommendations for one preference,
// or the explicit no-match result when nothing survives the relaxed filter.
func (e *Engine) Recommend(pref *model.UserPreference) *model.RecommendationResult {
	products := e.catalog.Products()

	filtered, relaxed := Filter(products, pref)
	if len(filtered) == 0 {
		res := &model.RecommendationResult{NoMatch: true}
		e.record(pref, res)
		return res
	}

	ranked := Rank(filtered, pref, e.topK)
	res := BuildResult(ranked, pref, relaxed)
	e.record(pref, res)
	return res
}

func (e *Engine) record(pref *model.UserPreference, res *model.RecommendationResult) {
	if err := e.store.RecordRecommendation(pref, res); err != nil {
		log.Printf("[ERROR] record recommendation: %v", err)
	}
}
