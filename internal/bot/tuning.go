package bot

import (
	"hanakoi/internal/bot/brain"
	botinternal "hanakoi/internal/bot/internal"
)

// BotTuning groups selector weights and decision thresholds for a tier.
type BotTuning struct {
	Weights botinternal.SelectWeights
	Risk    brain.RiskProfile

	// Good-tier deterministic banking rules.
	BankThreshold int // bank once the round score reaches this
	LateDeck      int // bank when the stock is this low
}

// DefaultTuning is the canonical strategy tuning. Blocking weight stays at
// double the advancing weight, and the open Ribbons/Animals/Chaff families
// carry a quarter of the named-family multiplier.
var DefaultTuning = BotTuning{
	Weights: botinternal.SelectWeights{
		BlockWeight:   2.0,
		AdvanceWeight: 1.0,
		GenericFactor: 0.25,
	},
	BankThreshold: 3,
	LateDeck:      6,
}

// godTuning trades safety for upside: same weights, greedier continue bias.
var godTuning = BotTuning{
	Weights:       DefaultTuning.Weights,
	Risk:          brain.RiskProfile{ContinueBias: 0.15},
	BankThreshold: DefaultTuning.BankThreshold,
	LateDeck:      DefaultTuning.LateDeck,
}
