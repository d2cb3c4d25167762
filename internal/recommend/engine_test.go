package recommend

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"SilverAdvisor/internal/model"
)

func threeProductCatalog() []model.CanonicalProduct {
	return []model.CanonicalProduct{
		{Name: "A", MinInvestment: 100, ExpectedReturn: 0.03, RiskTier: model.RiskLow, RecommendedHorizonMonths: 6, RiskProfileTag: model.TagConservative},
		{Name: "B", MinInvestment: 500, ExpectedReturn: 0.06, RiskTier: model.RiskHigh, RecommendedHorizonMonths: 12, RiskProfileTag: model.TagAggressive},
		{Name: "C", MinInvestment: 200, ExpectedReturn: 0.04, RiskTier: model.RiskMedium, RecommendedHorizonMonths: 24, RiskProfileTag: model.TagNeutral},
	}
}

func TestFilter_StrictTagMatch(t *testing.T) {
	pref := &model.UserPreference{Budget: 600, HorizonMonths: 24, RiskProfileTag: model.TagNeutral, TargetMonthlyIncome: 10}

	filtered, relaxed := Filter(threeProductCatalog(), pref)
	if relaxed {
		t.Error("strict pass should not need relaxation")
	}
	if len(filtered) != 1 || filtered[0].Name != "C" {
		t.Fatalf("expected strict filter to keep only C, got %v", filtered)
	}

	ranked := Rank(filtered, pref, 3)
	if len(ranked) != 1 || ranked[0].Name != "C" {
		t.Fatalf("expected ranker to return [C], got %v", ranked)
	}
}

func TestFilter_RelaxationDropsTagMatch(t *testing.T) {
	products := []model.CanonicalProduct{
		{Name: "타성향상품", MinInvestment: 100, ExpectedReturn: 0.04, RiskTier: model.RiskLow, RecommendedHorizonMonths: 6, RiskProfileTag: model.TagAggressive},
	}
	pref := &model.UserPreference{Budget: 500, HorizonMonths: 12, RiskProfileTag: model.TagConservative}

	filtered, relaxed := Filter(products, pref)
	if !relaxed {
		t.Error("expected the relaxed pass to be used")
	}
	if len(filtered) != 1 || filtered[0].Name != "타성향상품" {
		t.Fatalf("expected relaxed filter to recover the product, got %v", filtered)
	}
}

func TestFilter_EmptyAfterRelaxation(t *testing.T) {
	pref := &model.UserPreference{Budget: 1, HorizonMonths: 36, RiskProfileTag: model.TagNeutral}

	filtered, relaxed := Filter(threeProductCatalog(), pref)
	if len(filtered) != 0 {
		t.Fatalf("expected no candidates under budget 1, got %v", filtered)
	}
	if relaxed {
		t.Error("an empty relaxed pass must not be reported as relaxed")
	}

	res := BuildResult(nil, pref, false)
	if !res.NoMatch {
		t.Error("expected explicit no-match sentinel")
	}
	if len(res.Items) != 0 {
		t.Error("sentinel result must carry no items")
	}
}

func TestFilter_RiskCompatibility(t *testing.T) {
	products := []model.CanonicalProduct{
		{Name: "저위험", MinInvestment: 10, ExpectedReturn: 0.02, RiskTier: model.RiskLow, RecommendedHorizonMonths: 6, RiskProfileTag: model.TagAggressive},
		{Name: "고위험", MinInvestment: 10, ExpectedReturn: 0.08, RiskTier: model.RiskHigh, RecommendedHorizonMonths: 6, RiskProfileTag: model.TagAggressive},
	}
	pref := &model.UserPreference{Budget: 100, HorizonMonths: 12, RiskProfileTag: model.TagAggressive}

	filtered, _ := Filter(products, pref)
	for _, p := range filtered {
		if p.RiskTier == model.RiskLow {
			t.Error("AGGRESSIVE must not receive LOW-tier products")
		}
	}
	if len(filtered) != 1 || filtered[0].Name != "고위험" {
		t.Fatalf("expected only the HIGH-tier product, got %v", filtered)
	}
}

func TestFilter_UnknownTagAllowsAllTiers(t *testing.T) {
	pref := &model.UserPreference{Budget: 600, HorizonMonths: 36, RiskProfileTag: "EXOTIC"}

	filtered, relaxed := Filter(threeProductCatalog(), pref)
	if !relaxed {
		t.Error("unknown tag never matches exactly, so relaxation is expected")
	}
	if len(filtered) != 3 {
		t.Fatalf("expected all 3 products for an unknown tag, got %d", len(filtered))
	}
}

func TestFilter_SortAndCap(t *testing.T) {
	products := make([]model.CanonicalProduct, 250)
	for i := range products {
		products[i] = model.CanonicalProduct{
			Name:                     fmt.Sprintf("상품%d", i),
			MinInvestment:            10,
			ExpectedReturn:           0.01 + float64(i)*0.0001,
			RiskTier:                 model.RiskMedium,
			RecommendedHorizonMonths: 12,
			RiskProfileTag:           model.TagNeutral,
		}
	}
	pref := &model.UserPreference{Budget: 1000, HorizonMonths: 36, RiskProfileTag: model.TagNeutral}

	filtered, _ := Filter(products, pref)
	if len(filtered) != 200 {
		t.Fatalf("expected cap at 200 rows, got %d", len(filtered))
	}
	for i := 1; i < len(filtered); i++ {
		if filtered[i].ExpectedReturn > filtered[i-1].ExpectedReturn {
			t.Fatal("expected return-descending order")
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	pref := &model.UserPreference{Budget: 600, HorizonMonths: 36, RiskProfileTag: model.TagNeutral}

	once, _ := Filter(threeProductCatalog(), pref)
	twice, _ := Filter(once, pref)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not a stable projection: %v vs %v", once, twice)
	}
}

func TestRank_Deterministic(t *testing.T) {
	pref := &model.UserPreference{Budget: 600, HorizonMonths: 36, RiskProfileTag: model.TagNeutral, TargetMonthlyIncome: 5}
	filtered, _ := Filter(threeProductCatalog(), pref)

	first := Rank(filtered, pref, 3)
	second := Rank(filtered, pref, 3)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical ranking across runs")
	}
}

func TestRank_ClampsKAndDeduplicates(t *testing.T) {
	products := []model.CanonicalProduct{
		{Name: "중복", MinInvestment: 100, ExpectedReturn: 0.05, RiskTier: model.RiskLow, RecommendedHorizonMonths: 12},
		{Name: "중복", MinInvestment: 900, ExpectedReturn: 0.02, RiskTier: model.RiskLow, RecommendedHorizonMonths: 36},
		{Name: "단일", MinInvestment: 200, ExpectedReturn: 0.04, RiskTier: model.RiskLow, RecommendedHorizonMonths: 12},
	}
	pref := &model.UserPreference{Budget: 1000, HorizonMonths: 36, TargetMonthlyIncome: 5}

	ranked := Rank(products, pref, 10)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 products after dedup and clamp, got %d", len(ranked))
	}
	for _, p := range ranked {
		if p.Name == "중복" && p.MinInvestment != 100 {
			t.Error("expected first occurrence of duplicate name to win")
		}
	}
}

func TestRank_TieBreakKeepsFilteredOrder(t *testing.T) {
	// Identical embeddings: distance ties must keep the input order.
	products := []model.CanonicalProduct{
		{Name: "첫째", MinInvestment: 100, ExpectedReturn: 0.05, RecommendedHorizonMonths: 12},
		{Name: "둘째", MinInvestment: 100, ExpectedReturn: 0.05, RecommendedHorizonMonths: 12},
	}
	pref := &model.UserPreference{Budget: 500, HorizonMonths: 12, TargetMonthlyIncome: 5}

	ranked := Rank(products, pref, 2)
	if len(ranked) != 2 || ranked[0].Name != "첫째" || ranked[1].Name != "둘째" {
		t.Fatalf("expected stable tie-break, got %v", ranked)
	}
}

func TestBuildResult_Explanations(t *testing.T) {
	pref := &model.UserPreference{Budget: 600, HorizonMonths: 24, RiskProfileTag: model.TagNeutral, TargetMonthlyIncome: 10}
	ranked := []model.CanonicalProduct{
		{Name: "C", MinInvestment: 200, ExpectedReturn: 0.04, RiskTier: model.RiskMedium, RecommendedHorizonMonths: 24, RiskProfileTag: model.TagNeutral},
	}

	res := BuildResult(ranked, pref, false)
	if res.NoMatch {
		t.Fatal("unexpected no-match")
	}
	item := res.Items[0]
	if item.Rank != 1 || item.ProductName != "C" {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.ExpectedAnnualReturnPercent != 4.0 {
		t.Errorf("expected 4.0 percent, got %v", item.ExpectedAnnualReturnPercent)
	}
	wantPayout := 600 * 0.04 / 12
	if item.ExpectedMonthlyPayout != wantPayout {
		t.Errorf("expected payout %v, got %v", wantPayout, item.ExpectedMonthlyPayout)
	}

	report := FormatReport(res)
	if !strings.Contains(report, "C") || !strings.Contains(report, "24개월") {
		t.Errorf("report missing product details:\n%s", report)
	}
}

func TestFormatReport_NoMatch(t *testing.T) {
	report := FormatReport(&model.RecommendationResult{NoMatch: true})
	if !strings.Contains(report, "조건에 맞는 상품이 없습니다") {
		t.Errorf("expected no-match message, got:\n%s", report)
	}
}
