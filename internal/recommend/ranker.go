package recommend

import (
	"sort"

	"SilverAdvisor/internal/model"
)

// embedProduct maps a candidate into the shared 3-D space. The divisors put
// each dimension into a comparable numeric range so no raw magnitude
// dominates the distance.
func embedProduct(p *model.CanonicalProduct) [3]float64 {
	return [3]float64{
		float64(p.MinInvestment) / 1000,
		p.ExpectedReturn * 100,
		float64(p.RecommendedHorizonMonths) / 12,
	}
}

// embedQuery maps the user preference into the same space. The second
// dimension is the desired absolute monthly payout against the candidates'
// annualized percentage: an approximate proxy carried over deliberately,
// not a literal unit match.
func embedQuery(pref *model.UserPreference) [3]float64 {
	return [3]float64{
		pref.Budget / 1000,
		pref.TargetMonthlyIncome,
		float64(pref.HorizonMonths) / 12,
	}
}

func sqDist(a, b [3]float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}

// Rank returns up to k candidates nearest to the user's preference vector,
// by brute-force squared Euclidean distance. Ties keep the filtered-table
// order, so the output is a deterministic total order. Duplicate product
// names are collapsed to the first occurrence both before indexing and
// after ranking.
func Rank(filtered []model.CanonicalProduct, pref *model.UserPreference, k int) []model.CanonicalProduct {
	candidates := dedupeByName(filtered)
	if len(candidates) == 0 {
		return nil
	}

	query := embedQuery(pref)
	dists := make([]float64, len(candidates))
	for i := range candidates {
		dists[i] = sqDist(embedProduct(&candidates[i]), query)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dists[order[i]] < dists[order[j]]
	})

	if k > len(order) {
		k = len(order)
	}
	ranked := make([]model.CanonicalProduct, 0, k)
	for _, idx := range order[:k] {
		ranked = append(ranked, candidates[idx])
	}
	return dedupeByName(ranked)
}

func dedupeByName(products []model.CanonicalProduct) []model.CanonicalProduct {
	seen := make(map[string]bool, len(products))
	out := make([]model.CanonicalProduct, 0, len(products))
	for _, p := range products {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out
}
