package match

import "testing"

func TestNormalizeRisk(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RiskTolerance
	}{
		{"low", "low", RiskLow},
		{"low mixed case", " LOW ", RiskLow},
		{"high", "High", RiskHigh},
		{"medium collapses", "medium", RiskModerate},
		{"moderate", "moderate", RiskModerate},
		{"empty", "", RiskModerate},
		{"unknown", "aggressive", RiskModerate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeRisk(tc.input); got != tc.expected {
				t.Fatalf("expected %s got %s", tc.expected, got)
			}
		})
	}
}

func TestCategoryEqual(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		preference string
		expected   bool
	}{
		{"exact", "Child-Care", "Child-Care", true},
		{"case folded", "child-care", "CHILD-CARE", true},
		{"whitespace", " Education ", "education", true},
		{"substring rejected", "Elderly-Care", "Care", false},
		{"prefix rejected", "Elderly-Care", "Elder", false},
		{"empty category", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategoryEqual(tc.category, tc.preference); got != tc.expected {
				t.Fatalf("expected %v got %v", tc.expected, got)
			}
		})
	}
}

func TestCategoryInAny(t *testing.T) {
	prefs := []string{"Child-Care", "Education"}
	if !CategoryInAny("education", prefs) {
		t.Fatal("expected education to match")
	}
	if CategoryInAny("Environment", prefs) {
		t.Fatal("expected environment not to match")
	}
	if CategoryInAny("Environment", nil) {
		t.Fatal("expected no match with empty preferences")
	}
}
