package scoring

import "impact-finance/backend/internal/match"

// contentMatchScore is the flat score for a preference hit. Eligibility is
// binary; no partial-match weighting.
const contentMatchScore = 100

// ContentScores scores every charity against the user's declared cause
// preferences: 100 when the charity's category matches one of them, else 0.
// The returned map covers every charity id.
func (e *Engine) ContentScores(userID string) (ScoreMap, error) {
	user, ok := e.catalog.User(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	causes := user.PreferredCauses()

	scores := make(ScoreMap, len(e.catalog.Charities()))
	for _, charity := range e.catalog.Charities() {
		if match.CategoryInAny(charity.Category, causes) {
			scores[charity.ID] = contentMatchScore
		} else {
			scores[charity.ID] = 0
		}
	}
	return scores, nil
}
