package scoring

import (
	"fmt"
	"math"
	"sort"

	"impact-finance/backend/internal/catalog"
)

const (
	contentWeight       = 0.5
	collaborativeWeight = 0.5

	hybridAlgorithmName = "Hybrid Collaborative & Content-Based"
	hybridModelVersion  = "v4.0"
)

// DefaultRecommendationCount is the donation result count when the caller
// does not ask for a specific one.
const DefaultRecommendationCount = 3

// DonationRecommendations blends the content and collaborative scores with
// equal weights, drops charities the user has already donated to, and
// returns the top numRecs with jittered presentation scores. numRecs <= 0
// yields an empty list. An unknown user id returns ErrUserNotFound.
func (e *Engine) DonationRecommendations(userID string, numRecs int) ([]CharityRecommendation, error) {
	contentScores, err := e.ContentScores(userID)
	if err != nil {
		return nil, err
	}
	collaborativeScores, err := e.CollaborativeScores(userID)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		charity catalog.Charity
		score   float64
	}
	donated := e.catalog.DonatedSet(userID)
	candidates := make([]ranked, 0, len(e.catalog.Charities()))
	for _, charity := range e.catalog.Charities() {
		if _, already := donated[charity.ID]; already {
			continue
		}
		hybrid := contentScores[charity.ID]*contentWeight +
			collaborativeScores[charity.ID]*collaborativeWeight
		candidates = append(candidates, ranked{charity: charity, score: hybrid})
	}

	// Stable keeps catalog order as the tie break.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if numRecs < 0 {
		numRecs = 0
	}
	if numRecs > len(candidates) {
		numRecs = len(candidates)
	}

	recs := make([]CharityRecommendation, 0, numRecs)
	for _, candidate := range candidates[:numRecs] {
		recs = append(recs, CharityRecommendation{
			Charity:         candidate.charity,
			MatchScore:      clampInt(int(math.Round(candidate.score+e.noise.Uniform(-5, 5))), 0, 100),
			ConfidenceLevel: clampInt(int(math.Round(candidate.score+e.noise.Uniform(5, 10))), 0, 99),
			PrimaryReason:   fmt.Sprintf("High alignment with your preferences in %s.", candidate.charity.Category),
			SecondaryReasons: []string{
				"High Trust & Transparency",
				"Similar users have donated here",
			},
			AlgorithmUsed: hybridAlgorithmName,
			ModelVersion:  hybridModelVersion,
		})
	}
	return recs, nil
}
