package model

// SurveyProfile holds the raw answers of the eight-question senior survey.
// Monetary amounts are in 만원 (10,000 KRW) units, matching the survey wording.
type SurveyProfile struct {
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	HouseholdSize  int     `json:"household_size"`
	Pension        float64 `json:"pension"`
	Assets         float64 `json:"assets"`
	MonthlyExpense float64 `json:"monthly_expense"`
	HobbyExpense   float64 `json:"hobby_expense"`
	RiskPreference string  `json:"risk_preference"`
}

// FinancialCategory is the financial-behavior segment produced by the
// quantile rule cascade.
type FinancialCategory string

const (
	CategoryAssetManagement    FinancialCategory = "ASSET_MANAGEMENT"
	CategoryBalanced           FinancialCategory = "BALANCED"
	CategoryIncomeDependent    FinancialCategory = "INCOME_DEPENDENT"
	CategorySpendingVulnerable FinancialCategory = "SPENDING_VULNERABLE"
	CategoryBasicSecurity      FinancialCategory = "BASIC_SECURITY"
)

// DisplayName returns the Korean user-facing label for a category.
func (c FinancialCategory) DisplayName() string {
	switch c {
	case CategoryAssetManagement:
		return "자산운용형"
	case CategoryBalanced:
		return "균형형"
	case CategoryIncomeDependent:
		return "연금의존형"
	case CategorySpendingVulnerable:
		return "지출취약형"
	case CategoryBasicSecurity:
		return "기초안정형"
	default:
		return string(c)
	}
}

// SurveyBand is the coarse three-level grade of the original score-based
// survey classification.
type SurveyBand string

const (
	BandActiveAsset  SurveyBand = "ACTIVE_ASSET"
	BandStableAsset  SurveyBand = "STABLE_ASSET"
	BandConservative SurveyBand = "CONSERVATIVE_MANAGEMENT"
)

// DisplayName returns the Korean user-facing label for a survey band.
func (b SurveyBand) DisplayName() string {
	switch b {
	case BandActiveAsset:
		return "자산운용 적극형"
	case BandStableAsset:
		return "안정적 자산형"
	case BandConservative:
		return "보수적 관리형"
	default:
		return string(b)
	}
}
