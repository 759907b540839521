package internal

import (
	"errors"
	"fmt"

	"hanakoi/internal/domain"
)

var (
	// ErrEmptyHand is returned when a selection is requested with no cards.
	ErrEmptyHand = errors.New("hand is empty")
	// ErrMalformedCard is returned when an input card is missing required fields.
	ErrMalformedCard = errors.New("malformed card")
)

// SelectWeights tune the strategic selector.
type SelectWeights struct {
	// BlockWeight applies to threat priorities; kept at double AdvanceWeight
	// since an unblocked opponent scores at full value while own progress is
	// only ever worth its eventual points.
	BlockWeight   float64
	AdvanceWeight float64
	// GenericFactor discounts the open Ribbons/Animals/Chaff families.
	GenericFactor float64
}

// Selection is a chosen play: the hand card, the field card to capture (nil
// when the card is simply placed on the field), the winning score, and a
// human-readable rationale for host logs.
type Selection struct {
	Card      domain.Card
	FieldCard *domain.Card
	Score     float64
	Rationale string
}

// A card with no field match scores below every capture; among discards the
// lowest-value card wins.
const discardBase = -1000.0

// SelectCard picks the best hand card and capture target using capture value
// plus threat-blocking and opportunity-advancing bonuses. Ties break to the
// first-seen candidate in input order, so identical inputs always yield the
// identical selection.
func SelectCard(hand, field []domain.Card, threats []Threat, opps []Opportunity, w SelectWeights) (Selection, error) {
	if err := validateHand(hand); err != nil {
		return Selection{}, err
	}

	best := Selection{Score: discardBase * 2}
	for _, h := range hand {
		matches := domain.MatchesByMonth(field, h)

		if len(matches) == 0 {
			s := discardScore(h)
			if s > best.Score {
				best = Selection{
					Card:      h,
					Score:     s,
					Rationale: fmt.Sprintf("no field match; discard %s", h.Name),
				}
			}
			continue
		}

		for i := range matches {
			f := matches[i]
			s := float64(h.Points + f.Points)

			for _, t := range threats {
				if t.Yaku.Filter.Matches(f) {
					s += w.BlockWeight * familyFactor(t.Yaku, w) * t.Priority
				}
			}
			for _, o := range opps {
				if o.CanMatch && o.Yaku.Filter.Matches(f) {
					s += w.AdvanceWeight * familyFactor(o.Yaku, w) * o.Priority
				}
			}

			if s > best.Score {
				fc := f
				best = Selection{
					Card:      h,
					FieldCard: &fc,
					Score:     s,
					Rationale: fmt.Sprintf("capture %s with %s", f.Name, h.Name),
				}
			}
		}
	}

	return best, nil
}

// SelectCardBasic is the baseline tier: capture value and type value only, no
// threat or opportunity modeling. Same tie-break and discard policy.
func SelectCardBasic(hand, field []domain.Card) (Selection, error) {
	return SelectCard(hand, field, nil, nil, SelectWeights{})
}

func familyFactor(y domain.Yaku, w SelectWeights) float64 {
	if y.Generic {
		return w.GenericFactor
	}
	return 1.0
}

func discardScore(c domain.Card) float64 {
	return discardBase - float64(c.Points)
}

func validateHand(hand []domain.Card) error {
	if len(hand) == 0 {
		return ErrEmptyHand
	}
	for _, c := range hand {
		if !c.Valid() {
			return fmt.Errorf("%w: id=%d name=%q", ErrMalformedCard, c.ID, c.Name)
		}
	}
	return nil
}
