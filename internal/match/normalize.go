package match

import "strings"

// Product risk levels as persisted in the investment catalog.
const (
	ProductRiskLow    = "Low"
	ProductRiskMedium = "Medium"
	ProductRiskHigh   = "High"
)

// RiskTolerance is a user's normalized risk appetite.
type RiskTolerance string

const (
	RiskLow      RiskTolerance = "low"
	RiskModerate RiskTolerance = "moderate"
	RiskHigh     RiskTolerance = "high"
)

// NormalizeRisk folds a free-text risk profile into the three-way tolerance.
// "medium" and "moderate" collapse together; anything unrecognized is treated
// as moderate, matching how empty profiles behave.
func NormalizeRisk(value string) RiskTolerance {
	switch fold(value) {
	case "low":
		return RiskLow
	case "high":
		return RiskHigh
	default:
		return RiskModerate
	}
}

// CategoryEqual reports whether a declared preference names the item category.
// The comparison is exact after case folding; substring containment is
// deliberately not honored here.
func CategoryEqual(category, preference string) bool {
	c := fold(category)
	return c != "" && c == fold(preference)
}

// CategoryInAny reports whether any preference matches the category.
func CategoryInAny(category string, preferences []string) bool {
	for _, pref := range preferences {
		if CategoryEqual(category, pref) {
			return true
		}
	}
	return false
}

// RiskEqual compares a product risk label against a level, ignoring case.
func RiskEqual(productRisk, level string) bool {
	return fold(productRisk) == fold(level)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
