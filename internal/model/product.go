package model

// RiskTier is the categorical riskiness of a product.
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// RiskProfileTag is a stated risk-appetite bucket, used both for products
// and for user preferences.
type RiskProfileTag string

const (
	TagConservative RiskProfileTag = "CONSERVATIVE"
	TagNeutral      RiskProfileTag = "NEUTRAL"
	TagAggressive   RiskProfileTag = "AGGRESSIVE"
)

// RiskTiers and RiskProfileTags list the valid values in a fixed order,
// used by the normalizer when it has to synthesize a value.
var (
	RiskTiers       = []RiskTier{RiskLow, RiskMedium, RiskHigh}
	RiskProfileTags = []RiskProfileTag{TagConservative, TagNeutral, TagAggressive}
)

// HorizonChoices is the fixed set of recommended horizons, in months.
var HorizonChoices = []int{6, 12, 24, 36}

// CanonicalProduct is one normalized catalog row. Every field is populated;
// missing or unparseable source data is backfilled during normalization.
type CanonicalProduct struct {
	Name                     string         `json:"name"`
	MinInvestment            int64          `json:"min_investment"`
	ExpectedReturn           float64        `json:"expected_return"` // annualized fraction in (0, 1]
	RiskTier                 RiskTier       `json:"risk_tier"`
	RecommendedHorizonMonths int            `json:"recommended_horizon_months"`
	RiskProfileTag           RiskProfileTag `json:"risk_profile_tag"`
}
