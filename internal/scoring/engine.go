package scoring

import (
	"errors"

	"impact-finance/backend/internal/catalog"
)

// ErrUserNotFound signals an unknown user id against the profile table, the
// only validated precondition in the engine.
var ErrUserNotFound = errors.New("user profile not found")

// ScoreMap maps item ids to accumulated scores within one request.
type ScoreMap map[string]float64

// Engine runs the recommendation scorers over an immutable catalog. Stateless
// apart from the injected noise source; safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	noise   Noise
}

// NewEngine builds an engine over the loaded catalog. A nil noise source
// falls back to the production random draw.
func NewEngine(c *catalog.Catalog, noise Noise) *Engine {
	if noise == nil {
		noise = NewRandomNoise()
	}
	return &Engine{catalog: c, noise: noise}
}

// CharityRecommendation pairs a charity with its presented scores and the
// explanation of how it was chosen.
type CharityRecommendation struct {
	Charity          catalog.Charity
	MatchScore       int
	ConfidenceLevel  int
	PrimaryReason    string
	SecondaryReasons []string
	AlgorithmUsed    string
	ModelVersion     string
}

// ProductRecommendation pairs an investment product with its presented scores.
type ProductRecommendation struct {
	Product          catalog.InvestmentProduct
	MatchScore       int
	ConfidenceLevel  int
	PrimaryReason    string
	SecondaryReasons []string
}
