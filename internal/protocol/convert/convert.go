// Package convert maps game domain types to their wire DTOs.
package convert

import (
	"github.com/JackT-C/poker/internal/game/card"
	"github.com/JackT-C/poker/internal/protocol"
)

// CardToInfo converts a card to its wire form.
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Rank:  c.Rank.String(),
		Suit:  c.Suit.String(),
		Value: c.Value(),
	}
}

// CardsToInfos converts a card slice to wire form. A nil slice becomes an
// empty slice so clients always see an array.
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// EvalToInfo converts a hand evaluation to wire form.
func EvalToInfo(eval card.HandEvaluation) protocol.HandEvalInfo {
	return protocol.HandEvalInfo{
		Rank:        eval.Rank,
		Name:        eval.Name,
		Description: eval.Description,
	}
}
