package internal

import (
	"sort"

	"hanakoi/internal/domain"
)

// Opportunity describes a yaku the AI can still complete. Unlike a Threat it
// counts reachable cards (on the field with a matching hand card, or in hand
// with a field match) on top of the already-captured base, and its priority
// weights bankable progress over mere feasibility.
type Opportunity struct {
	Yaku      domain.Yaku
	Secured   int // captured-only progress
	Reachable int // secured plus cards acquirable this turn
	Needed    int
	Points    int
	Priority  float64
	// CanMatch is true only when a hand card shares a month with a qualifying
	// field card; the selector ignores opportunities that cannot be advanced
	// right now.
	CanMatch bool
}

// EvaluateOpportunities scans the AI's own reachable cards against the yaku
// table. Pure; output sorted descending by priority with table-order ties.
func EvaluateOpportunities(rules *domain.Ruleset, hand, captured, field, opponentCaptured []domain.Card) []Opportunity {
	var opps []Opportunity

	for _, y := range rules.Yaku {
		secured := y.Progress(captured)
		reachable := secured
		canMatch := false

		// Qualifying field cards the hand can take this turn. Both the played
		// card and the matched card land in the captured set, so a qualifying
		// hand card with any field match counts too.
		for _, f := range field {
			if y.Filter.Matches(f) && hasMonth(hand, f.Month) {
				reachable++
				canMatch = true
			}
		}
		for _, h := range hand {
			if y.Filter.Matches(h) && hasMonth(field, h.Month) {
				reachable++
			}
		}

		if reachable == 0 {
			continue
		}

		needed := y.Need - reachable
		if needed < 0 {
			needed = 0
		}

		// Completability against cards the opponent has locked away.
		taken := y.Progress(opponentCaptured)
		if y.Eligible-reachable-taken < needed {
			continue
		}

		points := y.PointsAt(reachable)
		securedRatio := float64(secured) / float64(y.Need)
		reachRatio := float64(reachable-secured) / float64(y.Need)

		opps = append(opps, Opportunity{
			Yaku:      y,
			Secured:   secured,
			Reachable: reachable,
			Needed:    needed,
			Points:    points,
			Priority:  float64(points) * (securedRatio + 0.25*reachRatio),
			CanMatch:  canMatch,
		})
	}

	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].Priority > opps[j].Priority
	})
	return opps
}

func hasMonth(set []domain.Card, month domain.Month) bool {
	for _, c := range set {
		if c.Month == month {
			return true
		}
	}
	return false
}
