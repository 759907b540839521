package brain

// SimpleChoice is the three-option decision used by the alternate game mode.
type SimpleChoice int

const (
	// ChoiceSage continues the round for more points.
	ChoiceSage SimpleChoice = iota
	// ChoiceShoubu ends the round and banks the score.
	ChoiceShoubu
	// ChoiceCancel is the middle option: neither commit nor bank.
	ChoiceCancel
)

func (c SimpleChoice) String() string {
	switch c {
	case ChoiceSage:
		return "sage"
	case ChoiceShoubu:
		return "shoubu"
	case ChoiceCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// SimpleTier selects the decision ruleset.
type SimpleTier int

const (
	TierBasic SimpleTier = iota
	TierAdvanced
)

// SimpleInput carries the aggregate scalars the alternate mode exposes. No
// yaku or threat modeling is available in that mode.
type SimpleInput struct {
	HandValue      int
	OwnScore       int
	OpponentScores []int
	RoundIndex     int // 0-based
	TotalRounds    int
}

// Basic-tier thresholds, evaluated as an ordered rule list.
const (
	simpleBigHand  = 7
	simpleWeakHand = 2
	simpleSafeLead = 5
)

// Advanced-tier expected-value constants.
const (
	simpleSuccessBase     = 0.45
	simpleSuccessPerRound = 0.06
	simpleSuccessCap      = 0.8
	simpleFailurePenalty  = 0.5
	simpleEVMargin        = 0.5
)

// DecideSimple makes the sage/shoubu/cancel call for the given tier. Both
// tiers are deterministic ordered rule lists; the advanced tier prepends an
// expected-value comparison and falls back to the basic rules when it is
// inconclusive.
func DecideSimple(in SimpleInput, tier SimpleTier) SimpleChoice {
	if tier == TierAdvanced {
		if choice, ok := decideByExpectedValue(in); ok {
			return choice
		}
	}
	return decideByThresholds(in)
}

func decideByThresholds(in SimpleInput) SimpleChoice {
	diff := in.OwnScore - maxScore(in.OpponentScores)
	roundsRemaining := in.TotalRounds - in.RoundIndex - 1

	switch {
	case in.HandValue >= simpleBigHand:
		return ChoiceSage
	case diff < 0 && roundsRemaining <= 0:
		// Last round and behind: only continuing can win.
		return ChoiceSage
	case diff >= simpleSafeLead:
		return ChoiceShoubu
	case in.HandValue <= simpleWeakHand:
		return ChoiceShoubu
	default:
		return ChoiceCancel
	}
}

// decideByExpectedValue compares the expected gain of continuing against the
// expected cost of failing, with more remaining rounds buying more risk
// tolerance. Returns ok=false when the margin is too thin to call.
func decideByExpectedValue(in SimpleInput) (SimpleChoice, bool) {
	roundsRemaining := in.TotalRounds - in.RoundIndex - 1
	if roundsRemaining < 0 {
		roundsRemaining = 0
	}

	successRate := simpleSuccessBase + simpleSuccessPerRound*float64(roundsRemaining)
	if successRate > simpleSuccessCap {
		successRate = simpleSuccessCap
	}

	gain := float64(in.HandValue) * successRate
	loss := float64(in.HandValue) * simpleFailurePenalty

	switch {
	case gain-loss > simpleEVMargin:
		return ChoiceSage, true
	case loss-gain > simpleEVMargin:
		return ChoiceShoubu, true
	default:
		return ChoiceCancel, false
	}
}

func maxScore(scores []int) int {
	max := 0
	for i, s := range scores {
		if i == 0 || s > max {
			max = s
		}
	}
	return max
}
