package internal

import (
	"testing"

	"hanakoi/internal/domain"
)

func oppFor(opps []Opportunity, kind domain.YakuKind) (Opportunity, bool) {
	for _, o := range opps {
		if o.Yaku.Kind == kind {
			return o, true
		}
	}
	return Opportunity{}, false
}

func TestEvaluateOpportunitiesEmpty(t *testing.T) {
	rules := domain.StandardRuleset()

	opps := EvaluateOpportunities(rules, nil, nil, nil, nil)
	if len(opps) != 0 {
		t.Fatalf("expected no opportunities with nothing in play, got %d", len(opps))
	}
}

func TestEvaluateOpportunitiesFieldMatchSetsCanMatch(t *testing.T) {
	rules := domain.StandardRuleset()
	hand := []domain.Card{cardNamed(t, "Cherry Chaff")}
	field := []domain.Card{cardNamed(t, "Curtain")}

	opps := EvaluateOpportunities(rules, hand, nil, field, nil)
	o, ok := oppFor(opps, domain.YakuBrights)
	if !ok {
		t.Fatal("expected a brights opportunity via the curtain on the field")
	}
	if !o.CanMatch {
		t.Fatal("qualifying field card with a hand match must set CanMatch")
	}
	if o.Secured != 0 || o.Reachable != 1 {
		t.Fatalf("secured/reachable = %d/%d, want 0/1", o.Secured, o.Reachable)
	}
}

func TestEvaluateOpportunitiesHandCardDoesNotSetCanMatch(t *testing.T) {
	rules := domain.StandardRuleset()
	hand := []domain.Card{cardNamed(t, "Crane")}
	field := []domain.Card{cardNamed(t, "Pine Chaff")}

	opps := EvaluateOpportunities(rules, hand, nil, field, nil)
	o, ok := oppFor(opps, domain.YakuBrights)
	if !ok {
		t.Fatal("expected a brights opportunity via the crane in hand")
	}
	if o.CanMatch {
		t.Fatal("a qualifying hand card alone must not set CanMatch")
	}
	if o.Reachable != 1 {
		t.Fatalf("reachable = %d, want 1", o.Reachable)
	}
}

func TestEvaluateOpportunitiesSecuredOutweighsReachable(t *testing.T) {
	rules := domain.StandardRuleset()
	brights := cardsWhere(3, func(c domain.Card) bool { return c.Type == domain.Bright })
	cherryChaff := cardNamed(t, "Cherry Chaff")

	// One bright banked plus the curtain takeable, versus nothing banked and
	// the same curtain takeable. Banked progress must dominate.
	banked := EvaluateOpportunities(rules,
		[]domain.Card{cherryChaff}, []domain.Card{brights[0]},
		[]domain.Card{cardNamed(t, "Curtain")}, nil)
	fresh := EvaluateOpportunities(rules,
		[]domain.Card{cherryChaff}, nil,
		[]domain.Card{cardNamed(t, "Curtain")}, nil)

	bankedOpp, ok := oppFor(banked, domain.YakuBrights)
	if !ok {
		t.Fatal("expected a banked brights opportunity")
	}
	freshOpp, ok := oppFor(fresh, domain.YakuBrights)
	if !ok {
		t.Fatal("expected a fresh brights opportunity")
	}
	if bankedOpp.Priority <= freshOpp.Priority {
		t.Fatalf("banked priority %.2f must exceed fresh %.2f", bankedOpp.Priority, freshOpp.Priority)
	}
}

func TestEvaluateOpportunitiesLockedByOpponent(t *testing.T) {
	rules := domain.StandardRuleset()
	ribbons := cardsWhere(3, func(c domain.Card) bool { return c.Tag == domain.TagPoetryRibbon })

	// The opponent holds two of the three poetry ribbons; holding the last one
	// can never complete the yaku.
	opps := EvaluateOpportunities(rules, nil, ribbons[:1], nil, ribbons[1:])
	if _, ok := oppFor(opps, domain.YakuPoetryRibbons); ok {
		t.Fatal("uncompletable opportunity must be excluded")
	}
}
