package bot

import (
	"hanakoi/internal/bot/internal"
	"hanakoi/internal/domain"
)

// GoodBot is the baseline tier. Card choice uses capture value and the
// discard policy only; the continue decision is a short deterministic rule
// list with no probability model.
type GoodBot struct {
	rules *domain.Ruleset
}

func (b *GoodBot) SelectCard(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil {
		return Move{}, internal.ErrEmptyHand
	}

	sel, err := internal.SelectCardBasic(player.Hand, game.Field)
	if err != nil {
		return Move{}, err
	}
	return moveFromSelection(sel), nil
}

func (b *GoodBot) DecideKoiKoi(game *domain.Game, player *domain.Player) (bool, error) {
	opp := game.Opponent(player.UserID)
	if opp == nil {
		opp = &domain.Player{}
	}

	roundScore, _ := b.rules.Score(player.Captured)

	// Never bank a losing position.
	if player.Total+roundScore <= opp.Total {
		return true, nil
	}
	// Bank anything sizable, and anything once the stock runs low.
	if roundScore >= DefaultTuning.BankThreshold {
		return false, nil
	}
	if game.DeckRemaining() <= DefaultTuning.LateDeck {
		return false, nil
	}
	return true, nil
}

func moveFromSelection(sel internal.Selection) Move {
	return Move{
		Card:      sel.Card,
		FieldCard: sel.FieldCard,
		Score:     sel.Score,
		Rationale: sel.Rationale,
	}
}
