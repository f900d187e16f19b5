package cards

import "math/rand"

// Deck is an ordered sequence of distinct cards.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52-card deck minus any cards in removed, in canonical order.
func NewDeck(removed []Card) Deck {
	all := AllCards()
	cs := make([]Card, 0, len(all))
	for _, c := range all {
		if !ContainsCard(removed, c) {
			cs = append(cs, c)
		}
	}
	return Deck{cards: cs}
}

// Cards returns a defensive copy of the deck's cards.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Size returns the number of cards remaining in the deck.
func (d Deck) Size() int {
	return len(d.cards)
}

// Shuffle randomizes the deck in place using the injected random source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
