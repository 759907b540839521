package internal

import (
	"sort"

	"hanakoi/internal/domain"
)

// Threat describes an opponent's proximity to completing a yaku, relative to
// the cards the AI has already removed from circulation.
type Threat struct {
	Yaku    domain.Yaku
	Current int
	Needed  int
	Points  int
	// Priority is a ranking value only: higher means block first. It rises
	// monotonically with points and with proximity to completion.
	Priority float64
	// BlockingCards are the qualifying cards still in circulation; capturing
	// any of them denies the opponent a step toward the yaku.
	BlockingCards []domain.Card
}

// AnalyzeThreats scans the opponent's captured set against every tracked yaku
// family. Pure and deterministic: identical inputs produce identical output,
// sorted descending by priority with table-order ties. Recompute on every
// decision; captured sets change each turn.
func AnalyzeThreats(rules *domain.Ruleset, opponentCaptured, aiCaptured []domain.Card) []Threat {
	var threats []Threat

	for _, y := range rules.Yaku {
		current := y.Progress(opponentCaptured)
		if current == 0 {
			continue
		}

		needed := y.Need - current
		if needed <= 0 {
			// Already completed; nothing left to block.
			continue
		}

		// Cards the AI holds captured can never reach the opponent. This also
		// covers the viewing-sake exclusivity rule: once the AI has captured
		// the other half of a pair the yaku is mathematically dead.
		removed := y.Progress(aiCaptured)
		remaining := y.Eligible - current - removed
		if remaining < needed {
			continue
		}

		points := y.PointsAt(current + needed)
		threats = append(threats, Threat{
			Yaku:          y,
			Current:       current,
			Needed:        needed,
			Points:        points,
			Priority:      float64(points) / float64(needed),
			BlockingCards: circulatingCards(y, opponentCaptured, aiCaptured),
		})
	}

	sort.SliceStable(threats, func(i, j int) bool {
		return threats[i].Priority > threats[j].Priority
	})
	return threats
}

// circulatingCards returns the qualifying catalog cards not yet captured by
// either player, in catalog order.
func circulatingCards(y domain.Yaku, opponentCaptured, aiCaptured []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range domain.Catalog() {
		if !y.Filter.Matches(c) {
			continue
		}
		if domain.ContainsCard(opponentCaptured, c) || domain.ContainsCard(aiCaptured, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
