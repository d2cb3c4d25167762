package model

// Recommendation is one ranked product summary in user-facing terms.
type Recommendation struct {
	Rank                        int      `json:"rank"`
	ProductName                 string   `json:"product_name"`
	ExpectedMonthlyPayout       float64  `json:"expected_monthly_payout"`
	RiskTier                    RiskTier `json:"risk_tier"`
	HorizonMonths               int      `json:"horizon_months"`
	ExpectedAnnualReturnPercent float64  `json:"expected_annual_return_percent"`
}

// RecommendationResult is the full outcome of one recommendation request.
// NoMatch is the explicit empty-result sentinel: when set, Items is empty
// and no product satisfied even the relaxed filter. Relaxed records whether
// the exact tag-match requirement had to be dropped.
type RecommendationResult struct {
	Items   []Recommendation `json:"items"`
	NoMatch bool             `json:"no_match"`
	Relaxed bool             `json:"relaxed"`
}
