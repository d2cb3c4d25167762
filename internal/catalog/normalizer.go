package catalog

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"SilverAdvisor/internal/model"
)

// Column synonyms tried against normalized headers. Real bank exports label
// the same attribute inconsistently across files.
var (
	nameSynonyms     = []string{"상품명", "productname"}
	fundSynonyms     = []string{"펀드명", "fundname"}
	fileSynonyms     = []string{"파일명", "filename", "sourcefile"}
	maxLimitSynonyms = []string{"최고한도", "maximumlimit", "maxlimit"}
	rateSynonyms     = []string{"기준금리", "baserate", "금리", "interestrate", "세전", "pretax"}
	riskSynonyms     = []string{"위험등급", "riskgrade"}
)

var numberToken = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}

func containsFold(header, synonym string) bool {
	return strings.Contains(header, synonym)
}

// unnamedSentinel is the synthesized name for a row with no resolvable
// identity. Such rows are dropped from the canonical table.
func unnamedSentinel(rowIndex int) string {
	return fmt.Sprintf("unnamed_product_%d", rowIndex)
}

// Normalize converts a raw catalog into the canonical product table.
// All synthetic backfill derives from the single seed, and draws happen in a
// fixed per-row order (min investment, return, risk tier, horizon, tag), so
// identical raw input always yields an identical canonical table.
func Normalize(raw *RawTable, seed int64) []model.CanonicalProduct {
	rng := rand.New(rand.NewSource(seed))

	nameCol := raw.FindColumn(nameSynonyms...)
	fundCol := raw.FindColumn(fundSynonyms...)
	fileCol := raw.FindColumn(fileSynonyms...)
	limitCol := raw.FindColumn(maxLimitSynonyms...)
	rateCol := raw.FindColumn(rateSynonyms...)
	riskCol := raw.FindColumn(riskSynonyms...)

	products := make([]model.CanonicalProduct, 0, len(raw.Rows))
	seen := make(map[string]bool, len(raw.Rows))
	dropped := 0

	for i := range raw.Rows {
		name := resolveName(raw, i, nameCol, fundCol, fileCol)

		minInvest := resolveMinInvestment(raw.Field(i, limitCol), rng)
		expectedReturn := resolveExpectedReturn(raw.Field(i, rateCol), rateCol >= 0, rng)
		riskTier := resolveRiskTier(raw.Field(i, riskCol), riskCol >= 0, rng)
		horizon := model.HorizonChoices[rng.Intn(len(model.HorizonChoices))]
		tag := model.RiskProfileTags[rng.Intn(len(model.RiskProfileTags))]

		// Sentinel rows carry no addressable identity; drop them after the
		// draws above so the stream stays aligned for the remaining rows.
		if name == unnamedSentinel(i) {
			dropped++
			continue
		}
		if seen[name] {
			continue // first occurrence wins
		}
		seen[name] = true

		products = append(products, model.CanonicalProduct{
			Name:                     name,
			MinInvestment:            minInvest,
			ExpectedReturn:           expectedReturn,
			RiskTier:                 riskTier,
			RecommendedHorizonMonths: horizon,
			RiskProfileTag:           tag,
		})
	}

	if dropped > 0 {
		log.Printf("[WARN] normalizer dropped %d unnamed catalog row(s)", dropped)
	}
	return products
}

// resolveName tries product name, fund name, then source filename (extension
// stripped), falling through to the unnamed sentinel.
func resolveName(raw *RawTable, row, nameCol, fundCol, fileCol int) string {
	if v := strings.TrimSpace(raw.Field(row, nameCol)); v != "" {
		return v
	}
	if v := strings.TrimSpace(raw.Field(row, fundCol)); v != "" {
		return v
	}
	if v := strings.TrimSpace(raw.Field(row, fileCol)); v != "" {
		return strings.TrimSuffix(v, filepath.Ext(v))
	}
	return unnamedSentinel(row)
}

// resolveMinInvestment parses the maximum-limit field; missing or zero values
// get a reproducible draw from [100, 1000).
func resolveMinInvestment(field string, rng *rand.Rand) int64 {
	v := strings.ReplaceAll(strings.TrimSpace(field), ",", "")
	if v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			return int64(n)
		}
	}
	return int64(100 + rng.Intn(900))
}

// resolveExpectedReturn parses the rate field into an annualized fraction.
// Percentage-scale values (>1) are divided by 100. Synthetic draws are made
// directly in [0.01, 0.08) and never rescaled, to avoid double-scaling.
func resolveExpectedReturn(field string, hasRateCol bool, rng *rand.Rand) float64 {
	if hasRateCol {
		v := strings.ReplaceAll(strings.TrimSpace(field), ",", "")
		if tok := numberToken.FindString(v); tok != "" {
			if n, err := strconv.ParseFloat(tok, 64); err == nil {
				if n > 1 {
					n /= 100
				}
				if n > 0 && n <= 1 {
					return n
				}
			}
		}
	}
	return 0.01 + rng.Float64()*0.07
}

// resolveRiskTier maps a risk-grade value onto a tier: grades containing
// digit 4 or 5 are HIGH, 3 is MEDIUM, anything else LOW. Without a risk
// column the tier is drawn uniformly.
func resolveRiskTier(field string, hasRiskCol bool, rng *rand.Rand) model.RiskTier {
	if hasRiskCol {
		switch {
		case strings.ContainsAny(field, "45"):
			return model.RiskHigh
		case strings.Contains(field, "3"):
			return model.RiskMedium
		default:
			return model.RiskLow
		}
	}
	return model.RiskTiers[rng.Intn(len(model.RiskTiers))]
}
