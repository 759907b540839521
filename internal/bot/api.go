package bot

import (
	"errors"

	"hanakoi/internal/domain"
)

// Move represents the play decision made by the AI: the hand card to play and,
// when a capture is possible, the field card to take. FieldCard is nil when
// the card is placed on the field. Both references are values drawn from the
// inputs; the engine never constructs cards.
type Move struct {
	Card      domain.Card
	FieldCard *domain.Card
	Score     float64
	Rationale string
}

// Brain is the interface that all bot strategies must implement. Both methods
// are pure apart from the injected random source: the brain never mutates game
// state and may be invoked repeatedly on the same state.
type Brain interface {
	// SelectCard chooses the card to play and the field card to capture.
	SelectCard(game *domain.Game, player *domain.Player) (Move, error)
	// DecideKoiKoi returns true to continue the round, false to bank it. The
	// host must only call it after the player completed at least one yaku.
	DecideKoiKoi(game *domain.Game, player *domain.Player) (bool, error)
}

// BotLevel selects a strategy tier.
type BotLevel int

const (
	// BotLevelGood is the baseline tier: match-count and type-value
	// heuristics with deterministic continue rules.
	BotLevelGood BotLevel = iota
	// BotLevelSmart adds threat/opportunity scoring and the probabilistic
	// continue/stop decision.
	BotLevelSmart
	// BotLevelGod is the smart tier with an aggressive risk profile.
	BotLevelGod
)

// LevelFromDifficulty maps an identity difficulty string to a tier.
func LevelFromDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "easy":
		return BotLevelGood
	case "hard":
		return BotLevelGod
	default:
		return BotLevelSmart
	}
}

// ErrNotSeated is returned when an agent acts in a game it is not part of.
var ErrNotSeated = errors.New("agent is not part of this game")
