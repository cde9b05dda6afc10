package api

import (
	"impact-finance/backend/internal/scoring"
)

// DonationRecommendationDTO is the wire shape for a donation recommendation.
// Field names are the persisted API contract consumed by the frontend.
type DonationRecommendationDTO struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	TrustScore        int      `json:"trustScore"`
	TransparencyScore int      `json:"transparencyScore"`
	EfficiencyScore   int      `json:"efficiencyScore"`
	Impact            string   `json:"impact"`
	Location          string   `json:"location"`
	MatchScore        int      `json:"matchScore"`
	ConfidenceLevel   int      `json:"confidenceLevel"`
	PrimaryReason     string   `json:"primaryReason"`
	SecondaryReasons  []string `json:"secondaryReasons"`
	AlgorithmUsed     string   `json:"algorithmUsed"`
	ModelVersion      string   `json:"modelVersion"`
}

// InvestmentRecommendationDTO is the wire shape for an investment recommendation.
type InvestmentRecommendationDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Risk             string   `json:"risk"`
	Volatility       float64  `json:"volatility"`
	AnalystRating    float64  `json:"analystRating"`
	ProjectedGrowth  string   `json:"projectedGrowth"`
	MatchScore       int      `json:"matchScore"`
	ConfidenceLevel  int      `json:"confidenceLevel"`
	PrimaryReason    string   `json:"primaryReason"`
	SecondaryReasons []string `json:"secondaryReasons"`
}

// InvestmentRequest is the POST body for investment recommendations.
type InvestmentRequest struct {
	UserProfile InvestmentRequestProfile `json:"userProfile"`
}

// InvestmentRequestProfile identifies the stored profile to score against.
type InvestmentRequestProfile struct {
	ID string `json:"id"`
}

// DonationFromResult converts an engine result into the DTO representation.
func DonationFromResult(r scoring.CharityRecommendation) DonationRecommendationDTO {
	return DonationRecommendationDTO{
		ID:                r.Charity.ID,
		Name:              r.Charity.Name,
		Type:              r.Charity.Type,
		Category:          r.Charity.Category,
		Description:       r.Charity.Description,
		TrustScore:        r.Charity.TrustScore,
		TransparencyScore: r.Charity.TransparencyScore,
		EfficiencyScore:   r.Charity.EfficiencyScore,
		Impact:            r.Charity.Impact,
		Location:          r.Charity.Location,
		MatchScore:        r.MatchScore,
		ConfidenceLevel:   r.ConfidenceLevel,
		PrimaryReason:     r.PrimaryReason,
		SecondaryReasons:  r.SecondaryReasons,
		AlgorithmUsed:     r.AlgorithmUsed,
		ModelVersion:      r.ModelVersion,
	}
}

// InvestmentFromResult converts an engine result into the DTO representation.
func InvestmentFromResult(r scoring.ProductRecommendation) InvestmentRecommendationDTO {
	return InvestmentRecommendationDTO{
		ID:               r.Product.ID,
		Name:             r.Product.Name,
		Type:             r.Product.Type,
		Category:         r.Product.Category,
		Description:      r.Product.Description,
		Risk:             r.Product.Risk,
		Volatility:       r.Product.Volatility,
		AnalystRating:    r.Product.AnalystRating,
		ProjectedGrowth:  r.Product.ProjectedGrowth,
		MatchScore:       r.MatchScore,
		ConfidenceLevel:  r.ConfidenceLevel,
		PrimaryReason:    r.PrimaryReason,
		SecondaryReasons: r.SecondaryReasons,
	}
}
