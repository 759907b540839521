package brain

import (
	"math/rand"
	"testing"
)

func TestDecideAlwaysContinuesWhileBehind(t *testing.T) {
	in := KoiKoiInput{
		RoundScore:    2,
		AITotal:       3,
		OpponentTotal: 8,
		DeckRemaining: 12,
		Threat:        &ThreatOutlook{Points: 10, Needed: 1, RemainingQualifying: 3},
	}

	for seed := int64(0); seed < 50; seed++ {
		d := NewDecider(rand.New(rand.NewSource(seed)))
		if !d.Decide(in) {
			t.Fatalf("seed %d: must continue while behind", seed)
		}
	}
}

func TestDecideStopsAgainstImminentThreat(t *testing.T) {
	// Four points banked for a two-point lead, while the opponent sits one
	// blue ribbon from six points with ten stock cards left. The doubled
	// downside dwarfs the lead; the stop is deterministic.
	in := KoiKoiInput{
		RoundScore:    4,
		AITotal:       0,
		OpponentTotal: 2,
		DeckRemaining: 10,
		Threat:        &ThreatOutlook{Points: 6, Needed: 1, RemainingQualifying: 1},
	}

	for seed := int64(0); seed < 50; seed++ {
		d := NewDecider(rand.New(rand.NewSource(seed)))
		if d.Decide(in) {
			t.Fatalf("seed %d: must bank against an imminent material threat", seed)
		}
	}
}

func TestDecideSeededDeterminism(t *testing.T) {
	in := KoiKoiInput{RoundScore: 1, AITotal: 4, OpponentTotal: 3, DeckRemaining: 14}

	first := NewDecider(rand.New(rand.NewSource(7))).Decide(in)
	second := NewDecider(rand.New(rand.NewSource(7))).Decide(in)
	if first != second {
		t.Fatal("same seed and input must give the same decision")
	}
}

func TestDecideProtectsLargeBankedScore(t *testing.T) {
	// Huge lead and a big banked round: the continue probability bottoms out
	// at its floor, so almost every draw banks.
	in := KoiKoiInput{RoundScore: 8, AITotal: 10, OpponentTotal: 2, DeckRemaining: 12}

	d := NewDecider(rand.New(rand.NewSource(1)))
	stops := 0
	for i := 0; i < 200; i++ {
		if !d.Decide(in) {
			stops++
		}
	}
	if stops < 170 {
		t.Fatalf("expected near-certain banking, stopped only %d/200", stops)
	}
}

func TestDecideProbabilisticZoneIsLive(t *testing.T) {
	// Thin lead, small round score, no threat: both outcomes must occur.
	in := KoiKoiInput{RoundScore: 1, AITotal: 4, OpponentTotal: 3, DeckRemaining: 14}

	d := NewDecider(rand.New(rand.NewSource(3)))
	var continues, stops int
	for i := 0; i < 200; i++ {
		if d.Decide(in) {
			continues++
		} else {
			stops++
		}
	}
	if continues == 0 || stops == 0 {
		t.Fatalf("probabilistic zone collapsed: continues=%d stops=%d", continues, stops)
	}
}

func TestDecideBiasShiftsContinueRate(t *testing.T) {
	in := KoiKoiInput{RoundScore: 2, AITotal: 5, OpponentTotal: 3, DeckRemaining: 14}

	base := NewDecider(rand.New(rand.NewSource(11)))
	greedy := NewDeciderWithProfile(rand.New(rand.NewSource(11)), RiskProfile{ContinueBias: 0.15})

	var baseContinues, greedyContinues int
	for i := 0; i < 400; i++ {
		if base.Decide(in) {
			baseContinues++
		}
		if greedy.Decide(in) {
			greedyContinues++
		}
	}
	if greedyContinues <= baseContinues {
		t.Fatalf("positive bias must continue more often: base=%d greedy=%d", baseContinues, greedyContinues)
	}
}
