package model

// UserPreference captures one recommendation request. It is built per
// request and discarded once the result is produced.
type UserPreference struct {
	Budget              float64        `json:"budget"`
	HorizonMonths       int            `json:"horizon_months"`
	RiskProfileTag      RiskProfileTag `json:"risk_profile_tag"`
	TargetMonthlyIncome float64        `json:"target_monthly_income"`
}
