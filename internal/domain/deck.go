package domain

import "math/rand"

// NewDeck returns the 48-card deck in catalog order.
func NewDeck() []Card {
	return Catalog()
}

// ShuffleDeck returns a shuffled copy of the given deck using the supplied rng.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// RemoveCards removes the specified cards (by identity) from a set and returns
// the updated set.
func RemoveCards(set []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(set) == 0 {
		return set
	}

	removeIDs := make(map[int]bool, len(toRemove))
	for _, c := range toRemove {
		removeIDs[c.ID] = true
	}

	updated := make([]Card, 0, len(set))
	for _, c := range set {
		if removeIDs[c.ID] {
			continue
		}
		updated = append(updated, c)
	}
	return updated
}

// ContainsCard reports whether the set holds the card, compared by identity.
func ContainsCard(set []Card, card Card) bool {
	for _, c := range set {
		if c.ID == card.ID {
			return true
		}
	}
	return false
}

// MatchesByMonth returns the field cards sharing the played card's month, in
// field order.
func MatchesByMonth(field []Card, played Card) []Card {
	var out []Card
	for _, c := range field {
		if c.Month == played.Month {
			out = append(out, c)
		}
	}
	return out
}
