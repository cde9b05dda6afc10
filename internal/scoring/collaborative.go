package scoring

// collaborativeIncrement is added per donation made by a similar user to a
// charity the target has not donated to. Increments accumulate uncapped;
// clamping happens when scores are presented.
const collaborativeIncrement = 50

// CollaborativeScores scores charities by what users with overlapping
// donation history also chose. Similarity is binary: any shared donated
// charity makes another user similar. The returned map is sparse; absent ids
// implicitly score 0.
func (e *Engine) CollaborativeScores(userID string) (ScoreMap, error) {
	if _, ok := e.catalog.User(userID); !ok {
		return nil, ErrUserNotFound
	}

	donated := e.catalog.DonatedSet(userID)
	scores := make(ScoreMap)
	for otherID, otherDonations := range e.catalog.DonationsByUser() {
		if otherID == userID {
			continue
		}
		if !intersects(donated, otherDonations) {
			continue
		}
		for _, charityID := range otherDonations {
			if _, already := donated[charityID]; already {
				continue
			}
			scores[charityID] += collaborativeIncrement
		}
	}
	return scores, nil
}

func intersects(set map[string]struct{}, ids []string) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
