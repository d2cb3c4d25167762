package recommend

import (
	"fmt"
	"strings"

	"SilverAdvisor/internal/model"
)

// riskTierLabel renders a tier in the survey's language.
func riskTierLabel(t model.RiskTier) string {
	switch t {
	case model.RiskLow:
		return "낮음"
	case model.RiskMedium:
		return "보통"
	case model.RiskHigh:
		return "높음"
	default:
		return string(t)
	}
}

// BuildResult converts ranked products into user-facing recommendation
// records. The expected monthly payout assumes the full budget is invested
// at the product's annualized return.
func BuildResult(ranked []model.CanonicalProduct, pref *model.UserPreference, relaxed bool) *model.RecommendationResult {
	if len(ranked) == 0 {
		return &model.RecommendationResult{NoMatch: true}
	}

	items := make([]model.Recommendation, 0, len(ranked))
	for i, p := range ranked {
		items = append(items, model.Recommendation{
			Rank:                        i + 1,
			ProductName:                 p.Name,
			ExpectedMonthlyPayout:       pref.Budget * p.ExpectedReturn / 12,
			RiskTier:                    p.RiskTier,
			HorizonMonths:               p.RecommendedHorizonMonths,
			ExpectedAnnualReturnPercent: p.ExpectedReturn * 100,
		})
	}
	return &model.RecommendationResult{Items: items, Relaxed: relaxed}
}

// FormatReport renders a recommendation result as a Korean text report.
func FormatReport(res *model.RecommendationResult) string {
	var b strings.Builder

	b.WriteString("📊 맞춤 금융상품 추천 결과\n\n")

	if res.NoMatch {
		b.WriteString("❌ 조건에 맞는 상품이 없습니다.\n")
		b.WriteString("   예산 또는 투자 기간을 조정해 보세요.\n")
		return b.String()
	}

	if res.Relaxed {
		b.WriteString("ℹ️ 투자 성향과 정확히 일치하는 상품이 없어 조건을 완화했습니다.\n\n")
	}

	for _, item := range res.Items {
		b.WriteString(fmt.Sprintf("%d. %s\n", item.Rank, item.ProductName))
		b.WriteString(fmt.Sprintf("   예상 월 수익: %.1f만원\n", item.ExpectedMonthlyPayout))
		b.WriteString(fmt.Sprintf("   위험도: %s | 추천 기간: %d개월 | 연 수익률: %.2f%%\n",
			riskTierLabel(item.RiskTier), item.HorizonMonths, item.ExpectedAnnualReturnPercent))
	}

	return b.String()
}
