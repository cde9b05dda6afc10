package scoring

import (
	"fmt"
	"sort"
	"strings"

	"impact-finance/backend/internal/catalog"
	"impact-finance/backend/internal/match"
)

const (
	categoryAffinityBonus = 20
	riskAlignedBonus      = 30
	riskMisalignedPenalty = -10
	moderateAlignedBonus  = 15
	moderatePenalty       = -5

	compatibilityWeight = 0.5
	investmentTopCount  = 3
)

// InvestmentRecommendations scores the product table against a resolved user
// profile: category affinity, risk alignment and the static compatibility
// rating, plus bounded jitter. No collaborative term and no prior-holdings
// exclusion. The caller is responsible for resolving the profile; the
// matcher does no lookup.
func (e *Engine) InvestmentRecommendations(profile catalog.UserProfile) []ProductRecommendation {
	causes := profile.PreferredCauses()
	tolerance := match.NormalizeRisk(profile.RiskProfile)

	type ranked struct {
		product catalog.InvestmentProduct
		score   float64
	}
	scored := make([]ranked, 0, len(e.catalog.Products()))
	for _, product := range e.catalog.Products() {
		score := 0.0
		for _, cause := range causes {
			if match.CategoryEqual(product.Category, cause) {
				score += categoryAffinityBonus
			}
		}
		score += riskAlignment(tolerance, product.Risk)
		score += compatibilityWeight * product.AICompatibility
		score += float64(uniformInt(e.noise, -10, 10))
		score = clampFloat(score, 0, 100)
		scored = append(scored, ranked{product: product, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := investmentTopCount
	if top > len(scored) {
		top = len(scored)
	}
	recs := make([]ProductRecommendation, 0, top)
	for _, candidate := range scored[:top] {
		confidence := candidate.score + float64(uniformInt(e.noise, 0, 5))
		if confidence > 100 {
			confidence = 100
		}
		recs = append(recs, ProductRecommendation{
			Product:         candidate.product,
			MatchScore:      int(candidate.score),
			ConfidenceLevel: int(confidence),
			PrimaryReason: fmt.Sprintf("Based on your preferences, this %s investment is a strong match.",
				strings.ToLower(candidate.product.Category)),
			SecondaryReasons: []string{
				// Products carry no trust score field.
				"High Trust Score (N/A)",
				"Proven Track Record",
			},
		})
	}
	return recs
}

func riskAlignment(tolerance match.RiskTolerance, productRisk string) float64 {
	switch tolerance {
	case match.RiskLow:
		if match.RiskEqual(productRisk, match.ProductRiskLow) {
			return riskAlignedBonus
		}
		return riskMisalignedPenalty
	case match.RiskHigh:
		if match.RiskEqual(productRisk, match.ProductRiskHigh) {
			return riskAlignedBonus
		}
		return riskMisalignedPenalty
	default:
		if match.RiskEqual(productRisk, match.ProductRiskLow) || match.RiskEqual(productRisk, match.ProductRiskMedium) {
			return moderateAlignedBonus
		}
		return moderatePenalty
	}
}
