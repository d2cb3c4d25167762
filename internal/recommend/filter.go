package recommend

import (
	"log"
	"sort"

	"SilverAdvisor/internal/model"
)

// maxCandidates bounds the cost of the vector search and biases the
// candidate pool toward higher-yield products when more qualify.
const maxCandidates = 200

// riskCompat maps a user's risk-profile tag to the product tiers it accepts.
var riskCompat = map[model.RiskProfileTag][]model.RiskTier{
	model.TagConservative: {model.RiskLow, model.RiskMedium},
	model.TagNeutral:      {model.RiskMedium, model.RiskLow, model.RiskHigh},
	model.TagAggressive:   {model.RiskHigh, model.RiskMedium},
}

// allowedTiers returns the accepted tier set for a tag. An unknown tag is
// recovered by allowing all tiers.
func allowedTiers(tag model.RiskProfileTag) map[model.RiskTier]bool {
	tiers, ok := riskCompat[tag]
	if !ok {
		log.Printf("[WARN] unknown risk profile tag %q, allowing all risk tiers", tag)
		tiers = model.RiskTiers
	}
	set := make(map[model.RiskTier]bool, len(tiers))
	for _, t := range tiers {
		set[t] = true
	}
	return set
}

// Filter applies the hard candidate constraints. The strict pass requires an
// exact risk-profile tag match on top of budget, horizon, and tier
// compatibility; if it keeps nothing, one relaxation drops the tag match.
// The result is sorted by expected return descending and capped at
// maxCandidates rows. An empty result after relaxation means no product
// qualifies; no further relaxation is attempted.
func Filter(products []model.CanonicalProduct, pref *model.UserPreference) (filtered []model.CanonicalProduct, relaxed bool) {
	tiers := allowedTiers(pref.RiskProfileTag)

	filtered = filterPass(products, pref, tiers, true)
	if len(filtered) == 0 {
		filtered = filterPass(products, pref, tiers, false)
		relaxed = len(filtered) > 0
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ExpectedReturn > filtered[j].ExpectedReturn
	})
	if len(filtered) > maxCandidates {
		filtered = filtered[:maxCandidates]
	}
	return filtered, relaxed
}

func filterPass(products []model.CanonicalProduct, pref *model.UserPreference, tiers map[model.RiskTier]bool, exactTag bool) []model.CanonicalProduct {
	var out []model.CanonicalProduct
	for _, p := range products {
		if float64(p.MinInvestment) > pref.Budget {
			continue
		}
		if p.RecommendedHorizonMonths > pref.HorizonMonths {
			continue
		}
		if !tiers[p.RiskTier] {
			continue
		}
		if exactTag && p.RiskProfileTag != pref.RiskProfileTag {
			continue
		}
		out = append(out, p)
	}
	return out
}
