package catalog

import (
	"reflect"
	"strings"
	"testing"

	"SilverAdvisor/internal/model"
)

func TestNormalize_Deterministic(t *testing.T) {
	raw := &RawTable{
		Columns: []string{"상품명", "최고한도", "기준금리"},
		Rows: [][]string{
			{"연금저축A", "500", "4.5%"},
			{"정기예금B", "", "bad-rate"},
			{"펀드C", "0", ""},
		},
	}
	first := Normalize(raw, 42)
	second := Normalize(raw, 42)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical canonical tables for identical input and seed")
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 products, got %d", len(first))
	}
}

func TestNormalize_NameResolutionPriority(t *testing.T) {
	raw := &RawTable{
		Columns: []string{"상품명", "펀드명", "파일명"},
		Rows: [][]string{
			{"주력상품", "무시되는펀드명", "ignored.csv"},
			{"", "성장펀드", "ignored.csv"},
			{"", "", "fund_list.csv"},
			{"", "", ""},
		},
	}
	products := Normalize(raw, 1)
	if len(products) != 3 {
		t.Fatalf("expected 3 products (unnamed row dropped), got %d", len(products))
	}
	want := []string{"주력상품", "성장펀드", "fund_list"}
	for i, name := range want {
		if products[i].Name != name {
			t.Errorf("row %d: expected name %q, got %q", i, name, products[i].Name)
		}
	}
}

func TestNormalize_ExpectedReturnParsing(t *testing.T) {
	tests := []struct {
		rate     string
		want     float64
		backfill bool
	}{
		{"4.5%", 0.045, false},
		{"0.05", 0.05, false},
		{"연 3.2% 확정", 0.032, false},
		{"1,234", 0, true}, // 12.34 after scaling, outside (0,1]
		{"금리 미정", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		raw := &RawTable{
			Columns: []string{"상품명", "기준금리"},
			Rows:    [][]string{{"상품X", tt.rate}},
		}
		products := Normalize(raw, 7)
		got := products[0].ExpectedReturn
		if tt.backfill {
			if got < 0.01 || got >= 0.08 {
				t.Errorf("rate %q: expected backfill in [0.01, 0.08), got %v", tt.rate, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("rate %q: expected %v, got %v", tt.rate, tt.want, got)
		}
	}
}

func TestNormalize_NoRateColumn(t *testing.T) {
	raw := &RawTable{
		Columns: []string{"상품명"},
		Rows:    [][]string{{"상품A"}, {"상품B"}},
	}
	for _, p := range Normalize(raw, 3) {
		if p.ExpectedReturn < 0.01 || p.ExpectedReturn >= 0.08 {
			t.Errorf("%s: expected synthetic return in [0.01, 0.08), got %v", p.Name, p.ExpectedReturn)
		}
	}
}

func TestNormalize_RiskGradeMapping(t *testing.T) {
	tests := []struct {
		grade string
		want  model.RiskTier
	}{
		{"5등급", model.RiskHigh},
		{"4", model.RiskHigh},
		{"3등급", model.RiskMedium},
		{"2등급", model.RiskLow},
		{"1", model.RiskLow},
		{"", model.RiskLow},
	}
	for _, tt := range tests {
		raw := &RawTable{
			Columns: []string{"상품명", "위험등급"},
			Rows:    [][]string{{"상품X", tt.grade}},
		}
		products := Normalize(raw, 9)
		if products[0].RiskTier != tt.want {
			t.Errorf("grade %q: expected %s, got %s", tt.grade, tt.want, products[0].RiskTier)
		}
	}
}

func TestNormalize_MinInvestmentBackfill(t *testing.T) {
	raw := &RawTable{
		Columns: []string{"상품명", "최고한도"},
		Rows: [][]string{
			{"상품A", "500"},
			{"상품B", "0"},
			{"상품C", ""},
		},
	}
	products := Normalize(raw, 11)
	if products[0].MinInvestment != 500 {
		t.Errorf("expected parsed limit 500, got %d", products[0].MinInvestment)
	}
	for _, p := range products[1:] {
		if p.MinInvestment < 100 || p.MinInvestment >= 1000 {
			t.Errorf("%s: expected backfill in [100, 1000), got %d", p.Name, p.MinInvestment)
		}
	}
}

func TestNormalize_DuplicateNamesCollapse(t *testing.T) {
	raw := &RawTable{
		Columns: []string{"상품명", "최고한도"},
		Rows: [][]string{
			{"중복상품", "300"},
			{"중복상품", "900"},
			{"다른상품", "400"},
		},
	}
	products := Normalize(raw, 5)
	if len(products) != 2 {
		t.Fatalf("expected 2 products after duplicate collapse, got %d", len(products))
	}
	if products[0].MinInvestment != 300 {
		t.Errorf("expected first occurrence to win (limit 300), got %d", products[0].MinInvestment)
	}
}

func TestNormalize_EveryFieldPopulated(t *testing.T) {
	raw := &RawTable{
		Columns: []string{"상품명"},
		Rows:    [][]string{{"최소정보상품"}},
	}
	products := Normalize(raw, 13)
	p := products[0]
	if p.Name == "" || p.MinInvestment <= 0 || p.ExpectedReturn <= 0 || p.ExpectedReturn > 1 {
		t.Fatalf("expected all fields populated, got %+v", p)
	}
	if p.RiskTier == "" || p.RiskProfileTag == "" {
		t.Errorf("expected synthetic tier and tag, got %+v", p)
	}
	validHorizon := false
	for _, h := range model.HorizonChoices {
		if p.RecommendedHorizonMonths == h {
			validHorizon = true
		}
	}
	if !validHorizon {
		t.Errorf("horizon %d not in fixed set", p.RecommendedHorizonMonths)
	}
}

func TestFindColumn_HeaderVariants(t *testing.T) {
	raw := &RawTable{Columns: []string{"No", "상품명 ", "세전 이자율(%)"}}
	if got := raw.FindColumn(nameSynonyms...); got != 1 {
		t.Errorf("expected name column 1, got %d", got)
	}
	if got := raw.FindColumn(rateSynonyms...); got != 2 {
		t.Errorf("expected rate column 2, got %d", got)
	}
	if got := raw.FindColumn(riskSynonyms...); got != -1 {
		t.Errorf("expected no risk column, got %d", got)
	}
	if !strings.HasPrefix(unnamedSentinel(7), "unnamed_product_") {
		t.Error("unexpected sentinel format")
	}
}
