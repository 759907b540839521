package bot

import (
	"hanakoi/internal/bot/brain"
	"hanakoi/internal/bot/internal"
	"hanakoi/internal/domain"
)

// SmartBot is the strategic tier: full threat/opportunity scoring for card
// choice and the probability-weighted koi-koi decision.
type SmartBot struct {
	rules   *domain.Ruleset
	tuning  BotTuning
	decider *brain.Decider
}

func (b *SmartBot) SelectCard(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil {
		return Move{}, internal.ErrEmptyHand
	}

	oppCaptured := b.opponentCaptured(game, player)
	threats := internal.AnalyzeThreats(b.rules, oppCaptured, player.Captured)
	opps := internal.EvaluateOpportunities(b.rules, player.Hand, player.Captured, game.Field, oppCaptured)

	sel, err := internal.SelectCard(player.Hand, game.Field, threats, opps, b.tuning.Weights)
	if err != nil {
		return Move{}, err
	}
	return moveFromSelection(sel), nil
}

func (b *SmartBot) DecideKoiKoi(game *domain.Game, player *domain.Player) (bool, error) {
	opp := game.Opponent(player.UserID)
	if opp == nil {
		opp = &domain.Player{}
	}

	roundScore, _ := b.rules.Score(player.Captured)

	var outlook *brain.ThreatOutlook
	if threats := internal.AnalyzeThreats(b.rules, opp.Captured, player.Captured); len(threats) > 0 {
		top := threats[0]
		outlook = &brain.ThreatOutlook{
			Points:              top.Points,
			Needed:              top.Needed,
			RemainingQualifying: len(top.BlockingCards),
		}
	}

	return b.decider.Decide(brain.KoiKoiInput{
		RoundScore:    roundScore,
		AITotal:       player.Total,
		OpponentTotal: opp.Total,
		DeckRemaining: game.DeckRemaining(),
		Threat:        outlook,
	}), nil
}

func (b *SmartBot) opponentCaptured(game *domain.Game, player *domain.Player) []domain.Card {
	if opp := game.Opponent(player.UserID); opp != nil {
		return opp.Captured
	}
	return nil
}
