package card

import (
	"fmt"
	"sort"
)

// HandEvaluation is the categorical strength of a card set.
type HandEvaluation struct {
	Rank        int // 0 high card .. 9 royal flush, -1 if too few cards
	Name        string
	Description string
}

// Hand category ranks.
const (
	HighCard      = 0
	Pair          = 1
	TwoPair       = 2
	ThreeOfAKind  = 3
	Straight      = 4
	Flush         = 5
	FullHouse     = 6
	FourOfAKind   = 7
	StraightFlush = 8
	RoyalFlush    = 9
)

// Evaluate returns the best categorical rank of the combined card set
// (hole plus community). Only the category is decided; ties within a
// category are not broken by kickers. Straights and flushes are detected
// over the whole set, not the best five of it, so extra cards that break
// consecutiveness or suit uniformity defeat them.
func Evaluate(cards []Card) HandEvaluation {
	if len(cards) < 5 {
		return HandEvaluation{Rank: -1, Name: "Not enough cards"}
	}

	rankCounts := make(map[Rank]int)
	for _, c := range cards {
		rankCounts[c.Rank]++
	}

	sorted := make([]int, len(cards))
	for i, c := range cards {
		sorted[i] = int(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	isFlush := true
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]-1 {
			isStraight = false
			break
		}
	}

	var highCard Rank
	var pairRanks []Rank
	var tripRank, quadRank Rank
	var hasTrip, hasQuad bool
	for r, n := range rankCounts {
		if r > highCard {
			highCard = r
		}
		switch n {
		case 2:
			pairRanks = append(pairRanks, r)
		case 3:
			tripRank, hasTrip = r, true
		case 4:
			quadRank, hasQuad = r, true
		}
	}
	sort.Slice(pairRanks, func(i, j int) bool { return pairRanks[i] > pairRanks[j] })

	switch {
	case isStraight && isFlush && sorted[0] == int(RankA):
		return HandEvaluation{RoyalFlush, "Royal Flush", "🏆 ROYAL FLUSH! Best hand possible!"}
	case isStraight && isFlush:
		return HandEvaluation{StraightFlush, "Straight Flush", fmt.Sprintf("💎 Straight Flush, %s high!", highCard)}
	case hasQuad:
		return HandEvaluation{FourOfAKind, "Four of a Kind", fmt.Sprintf("🎯 Four %ss!", quadRank)}
	case hasTrip && len(pairRanks) >= 1:
		return HandEvaluation{FullHouse, "Full House", fmt.Sprintf("🏠 Full House: %ss over %ss", tripRank, pairRanks[0])}
	case isFlush:
		return HandEvaluation{Flush, "Flush", fmt.Sprintf("✨ Flush, %s high!", highCard)}
	case isStraight:
		return HandEvaluation{Straight, "Straight", fmt.Sprintf("📊 Straight, %s high!", highCard)}
	case hasTrip:
		return HandEvaluation{ThreeOfAKind, "Three of a Kind", fmt.Sprintf("🎲 Three %ss", tripRank)}
	case len(pairRanks) >= 2:
		return HandEvaluation{TwoPair, "Two Pair", fmt.Sprintf("👥 Two Pair: %ss and %ss", pairRanks[0], pairRanks[1])}
	case len(pairRanks) == 1:
		return HandEvaluation{Pair, "Pair", fmt.Sprintf("🎴 Pair of %ss", pairRanks[0])}
	default:
		return HandEvaluation{HighCard, "High Card", fmt.Sprintf("High card: %s", highCard)}
	}
}
