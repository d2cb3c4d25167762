package store

import "SilverAdvisor/internal/model"

// Store persists catalog snapshots and recommendation history for offline
// analysis. Writes never mutate state visible to in-flight reads: each
// snapshot is a fresh set of rows keyed by its own snapshot id.
type Store interface {
	SaveCatalogSnapshot(products []model.CanonicalProduct) error
	RecordRecommendation(pref *model.UserPreference, res *model.RecommendationResult) error
	Close() error
}
