package brain

import (
	"math/rand"
	"time"
)

const (
	// highConfidenceCutoff is the completion probability above which a close
	// opponent threat forces a deterministic stop.
	highConfidenceCutoff = 0.6
	// materialityThreshold is the minimum doubled downside (opponent threat
	// points times two, minus the current advantage) that makes the stop gate
	// fire.
	materialityThreshold = 4
	// comfortableLead marks a lead worth protecting in the probabilistic zone.
	comfortableLead = 5
	// highRoundScore is a banked round score that strongly biases stopping.
	highRoundScore = 7
)

// ThreatOutlook summarizes the opponent's best threat for the decision:
// its completion value, cards still needed, and qualifying cards left in
// circulation.
type ThreatOutlook struct {
	Points              int
	Needed              int
	RemainingQualifying int
}

// KoiKoiInput carries the scalar state for one continue/stop decision. The
// caller guarantees at least one completed yaku; offering the decision without
// one is a host contract violation.
type KoiKoiInput struct {
	RoundScore    int
	AITotal       int
	OpponentTotal int
	DeckRemaining int
	// Threat is the opponent's highest-priority threat, nil when none.
	Threat *ThreatOutlook
}

// RiskProfile shifts the probabilistic zone. Zero is the canonical profile; a
// positive bias makes the bot greedier.
type RiskProfile struct {
	ContinueBias float64
}

// Decider makes the koi-koi / shobu call. The random source is injected so
// tests can pin the probabilistic branch; nil falls back to a time-seeded one.
type Decider struct {
	rng     *rand.Rand
	profile RiskProfile
}

// NewDecider constructs a Decider with the canonical risk profile.
func NewDecider(rng *rand.Rand) *Decider {
	return NewDeciderWithProfile(rng, RiskProfile{})
}

// NewDeciderWithProfile constructs a Decider with a tuned risk profile.
func NewDeciderWithProfile(rng *rand.Rand, profile RiskProfile) *Decider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Decider{rng: rng, profile: profile}
}

// Decide returns true to continue the round (koi-koi) or false to bank it
// (shobu). Deterministic gates run first, in order; the random draw never
// overrides them.
func (d *Decider) Decide(in KoiKoiInput) bool {
	lead := in.AITotal + in.RoundScore - in.OpponentTotal

	// Gate 1: stopping while still behind concedes the match. Gamble.
	if lead <= 0 {
		return true
	}

	// Gate 2: a near-complete opponent threat with high completion odds and a
	// doubled downside that dwarfs the advantage means the expected loss from
	// continuing outweighs further gain.
	if in.Threat != nil && in.Threat.Needed >= 1 && in.Threat.Needed <= 2 {
		p := CompletionProbability(in.Threat.Needed, in.Threat.RemainingQualifying, in.DeckRemaining)
		downside := in.Threat.Points*2 - lead
		if p > highConfidenceCutoff && downside >= materialityThreshold {
			return false
		}
	}

	// Probabilistic zone: protect large leads and large banked scores, shy
	// away from live threats.
	p := 0.5 + d.profile.ContinueBias

	p -= 0.04 * float64(lead)
	if lead >= comfortableLead {
		p -= 0.1
	}

	if in.RoundScore >= highRoundScore {
		p -= 0.25
	} else {
		p -= 0.02 * float64(in.RoundScore)
	}

	if in.Threat != nil {
		threatP := CompletionProbability(in.Threat.Needed, in.Threat.RemainingQualifying, in.DeckRemaining)
		p -= 0.5 * threatP
	}

	if p < 0.05 {
		p = 0.05
	}
	if p > 0.9 {
		p = 0.9
	}

	return d.rng.Float64() < p
}
