package bot

import (
	"fmt"
	"math/rand"

	"hanakoi/internal/bot/brain"
	"hanakoi/internal/domain"
)

// NewBrain creates an AI brain for the given tier. The ruleset variant is
// fixed at construction; rng may be nil for a time-seeded source.
func NewBrain(level BotLevel, rules *domain.Ruleset, rng *rand.Rand) (Brain, error) {
	if rules == nil {
		rules = domain.StandardRuleset()
	}

	switch level {
	case BotLevelGood:
		return &GoodBot{rules: rules}, nil
	case BotLevelSmart:
		return &SmartBot{
			rules:   rules,
			tuning:  DefaultTuning,
			decider: brain.NewDecider(rng),
		}, nil
	case BotLevelGod:
		return &GodBot{SmartBot: SmartBot{
			rules:   rules,
			tuning:  godTuning,
			decider: brain.NewDeciderWithProfile(rng, godTuning.Risk),
		}}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgent builds an agent for a provisioned bot identity, mapping its
// configured difficulty to a strategy tier.
func NewAgent(userID string, rules *domain.Ruleset, rng *rand.Rand) (*Agent, error) {
	level := BotLevelSmart
	name := userID
	if config, ok := GetBotConfig(userID); ok {
		level = LevelFromDifficulty(config.Difficulty)
		name = config.DisplayName
	}

	strategy, err := NewBrain(level, rules, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: name, Strategy: strategy}, nil
}
