package classifier

import "SilverAdvisor/internal/model"

// aggressivePreferences are the survey answers counted as risk-seeking.
var aggressivePreferences = map[string]bool{
	"공격적":    true,
	"매우 공격적": true,
}

// SurveyScore computes the original coarse survey score and its band:
// pension over 100 and assets over 3000 score two points each, a monthly
// living cost under 150 and an aggressive risk preference one point each.
// Score >= 5 is the active band, >= 3 the stable band, below that the
// conservative band.
func SurveyScore(p *model.SurveyProfile) (int, model.SurveyBand) {
	score := 0
	if p.Pension > 100 {
		score += 2
	}
	if p.Assets > 3000 {
		score += 2
	}
	if p.MonthlyExpense < 150 {
		score++
	}
	if aggressivePreferences[p.RiskPreference] {
		score++
	}

	switch {
	case score >= 5:
		return score, model.BandActiveAsset
	case score >= 3:
		return score, model.BandStableAsset
	default:
		return score, model.BandConservative
	}
}
