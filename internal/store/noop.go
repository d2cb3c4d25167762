package store

import "SilverAdvisor/internal/model"

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) SaveCatalogSnapshot(_ []model.CanonicalProduct) error { return nil }
func (n *NoopStore) RecordRecommendation(_ *model.UserPreference, _ *model.RecommendationResult) error {
	return nil
}
func (n *NoopStore) Close() error { return nil }
