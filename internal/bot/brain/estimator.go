// Package brain holds the probabilistic reasoning used by the bot strategies:
// completion-probability estimation over the shrinking stock, the koi-koi
// continue/stop decision, and the reduced three-option decision for the
// alternate game mode. Everything here operates on scalar game facts; the
// combinatorial card analysis lives in the bot's internal package.
package brain

import "math"

const (
	// cardsDrawnPerTurn is how many capture chances a turn yields: one hand
	// play plus one stock flip.
	cardsDrawnPerTurn = 2

	// maxCompletionProbability caps the estimate; even a lock-certain yaku
	// can be interrupted by the round ending.
	maxCompletionProbability = 0.95
)

// CompletionProbability estimates the chance the opponent completes a yaku
// needing `needed` more cards, with `remainingQualifying` qualifying cards
// still in circulation and `deckRemaining` stock cards left. Recomputed from
// current state on every call; nothing is cached.
//
// Remaining opponent turns approximate to ceil(deck / cardsDrawnPerTurn),
// clamped to at least one so an empty stock never degenerates the model. Wide
// families (many qualifying cards) push the estimate up, narrow single-card
// needs pull it down, and needing several cards discounts sharply.
func CompletionProbability(needed, remainingQualifying, deckRemaining int) float64 {
	if needed <= 0 {
		return maxCompletionProbability
	}
	if remainingQualifying < needed {
		return 0
	}
	if deckRemaining < 1 {
		deckRemaining = 1
	}

	turns := (deckRemaining + cardsDrawnPerTurn - 1) / cardsDrawnPerTurn
	if turns < 1 {
		turns = 1
	}

	q := float64(remainingQualifying) / float64(deckRemaining)
	if q > 1 {
		q = 1
	}

	// Chance at least one qualifying card surfaces across all exposures.
	pOne := 1 - math.Pow(1-q, float64(cardsDrawnPerTurn*turns))

	var p float64
	switch {
	case needed == 1:
		p = pOne
	case needed == 2:
		p = pOne * 0.55
	default:
		p = pOne * 0.25
	}

	if p > maxCompletionProbability {
		return maxCompletionProbability
	}
	if p < 0 {
		return 0
	}
	return p
}
