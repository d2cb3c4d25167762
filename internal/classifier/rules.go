package classifier

import (
	"SilverAdvisor/internal/model"
)

// Quintile boundaries per attribute, in 만원 units.
var (
	PensionBounds  = [4]float64{50, 100, 200, 300}
	AssetBounds    = [4]float64{1000, 3000, 5000, 10000}
	SpendingBounds = [4]float64{100, 150, 250, 400}
)

// Buckets holds the three quintile buckets consumed by the rule cascade.
type Buckets struct {
	Pension  int
	Assets   int
	Spending int
}

// categoryRule is one row of the decision table. The cascade is evaluated
// top to bottom and the first matching rule wins; categories are mutually
// exclusive only by evaluation order, so the order must not be changed.
type categoryRule struct {
	Match    func(b Buckets) bool
	Category model.FinancialCategory
}

var categoryRules = []categoryRule{
	{func(b Buckets) bool { return b.Pension >= 4 && b.Assets >= 4 && b.Spending <= 2 }, model.CategoryAssetManagement},
	{func(b Buckets) bool { return b.Assets >= 4 && b.Spending >= 4 }, model.CategorySpendingVulnerable},
	{func(b Buckets) bool { return b.Pension >= 3 && b.Assets >= 3 }, model.CategoryBalanced},
	{func(b Buckets) bool { return b.Pension >= 3 && b.Assets <= 2 }, model.CategoryIncomeDependent},
	{func(b Buckets) bool { return b.Spending >= 4 }, model.CategorySpendingVulnerable},
}

// defaultCategory is the catch-all: a category is always produced.
var defaultCategory = model.CategoryBasicSecurity

// ClassifyProfile buckets the profile's pension, assets, and total monthly
// spending (living plus hobby cost) and runs the rule cascade.
func ClassifyProfile(p *model.SurveyProfile) (model.FinancialCategory, Buckets) {
	b := Buckets{
		Pension:  Quintile(p.Pension, PensionBounds),
		Assets:   Quintile(p.Assets, AssetBounds),
		Spending: Quintile(p.MonthlyExpense+p.HobbyExpense, SpendingBounds),
	}
	for _, r := range categoryRules {
		if r.Match(b) {
			return r.Category, b
		}
	}
	return defaultCategory, b
}
