package card

import (
	"errors"
	"math/rand/v2"
	"strconv"
)

// Suit is a card suit.
type Suit int

// Rank is a card rank, 2 through ace.
type Rank int

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

// suitSymbols maps suits to their display symbols.
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

// rankNames maps ranks to their display strings.
var rankNames = map[Rank]string{
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value returns the scoring value of the card: ace 11, face cards 10,
// everything else its pip value.
func (c Card) Value() int {
	switch {
	case c.Rank == RankA:
		return 11
	case c.Rank >= RankJ:
		return 10
	default:
		return int(c.Rank)
	}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ErrEmptyDeck is returned when drawing from an exhausted deck.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered sequence of cards consumed from the end.
type Deck []Card

// NewDeck returns the canonical 52-card deck in fixed order.
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for s := Spade; s <= Club; s++ {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// NewShuffledDeck returns a freshly shuffled 52-card deck. The shuffle is
// an unbiased Fisher–Yates walk from the end.
func NewShuffledDeck() Deck {
	deck := NewDeck()
	for i := len(deck) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// Draw removes and returns the last card of the deck.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return c, nil
}
