package card

// Score totals a hand for the scoring game. Aces count 11; while the total
// exceeds 21 and soft aces remain, one ace at a time is downgraded to 1.
func Score(hand []Card) int {
	score := 0
	aces := 0

	for _, c := range hand {
		score += c.Value()
		if c.Rank == RankA {
			aces++
		}
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}
