package bot

import (
	"hanakoi/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to choose its card for the current turn.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player, ok := game.Players[a.ID]
	if !ok {
		return Move{}, ErrNotSeated
	}
	return a.Strategy.SelectCard(game, player)
}

// PlayAtSeat resolves the agent by seat index instead of user ID.
func (a *Agent) PlayAtSeat(game *domain.Game, seat int) (Move, error) {
	player := game.PlayerBySeat(seat)
	if player == nil {
		return Move{}, ErrNotSeated
	}
	return a.Strategy.SelectCard(game, player)
}

// DecideKoiKoi asks the agent whether to continue the round after scoring.
func (a *Agent) DecideKoiKoi(game *domain.Game) (bool, error) {
	player, ok := game.Players[a.ID]
	if !ok {
		return false, ErrNotSeated
	}
	return a.Strategy.DecideKoiKoi(game, player)
}
