package app

import (
	"errors"
	"math/rand"
	"time"

	"hanakoi/internal/domain"
)

// Service contains the koi-koi use-cases operating on domain state. All card
// movement between zones happens here; the bot packages only read state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrNotPlaying        = errors.New("match not in playing phase")
	ErrTooFewPlayers     = errors.New("not enough players to start")
	ErrUnknownPlayer     = errors.New("player not found")
	ErrNotYourTurn       = errors.New("not this player's turn")
	ErrCardNotInHand     = errors.New("card is not in hand")
	ErrInvalidCapture    = errors.New("field card does not match the played card")
	ErrDecisionPending   = errors.New("a koi-koi decision is pending")
	ErrNoDecisionPending = errors.New("no koi-koi decision is pending")
)

// StartGame initializes a new Game with the provided players in seat order
// (empty strings for empty seats) and deals the first round.
func (s *Service) StartGame(playerIDs []string, rules *domain.Ruleset, totalRounds int) (*domain.Game, []Event, error) {
	if rules == nil {
		rules = domain.StandardRuleset()
	}

	players := make(map[string]*domain.Player)
	var seats []string
	for i, userID := range playerIDs {
		if userID == "" {
			continue
		}
		players[userID] = &domain.Player{UserID: userID, Seat: i + 1}
		seats = append(seats, userID)
	}
	if len(players) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}

	game := &domain.Game{
		Phase:       domain.PhasePlaying,
		Rules:       rules,
		Players:     players,
		Order:       seats,
		Round:       1,
		TotalRounds: totalRounds,
	}

	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Phase:           game.Phase,
			FirstTurnUserID: seats[0],
			TotalRounds:     totalRounds,
		},
	}}
	events = append(events, s.dealRound(game)...)

	return game, events, nil
}

// dealRound shuffles a fresh stock and deals hands and field for the current
// round. The dealer alternates by round; the non-dealer plays first.
func (s *Service) dealRound(game *domain.Game) []Event {
	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)

	first := game.Order[(game.Round-1)%len(game.Order)]

	var events []Event
	idx := 0
	for _, userID := range game.Order {
		pl := game.Players[userID]
		pl.Hand = append([]domain.Card{}, deck[idx:idx+HandSize]...)
		pl.Captured = nil
		pl.KoiKoiCalls = 0
		pl.SeenYakuPoints = 0
		idx += HandSize

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: userID, Hand: pl.Hand},
			Recipients: []string{userID},
		})
	}

	game.Field = append([]domain.Card{}, deck[idx:idx+FieldSize]...)
	idx += FieldSize
	game.Deck = append([]domain.Card{}, deck[idx:]...)

	game.CurrentTurn = first
	game.AwaitingDecision = ""

	return append([]Event{{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Round:           game.Round,
			Field:           game.Field,
			FirstTurnUserID: first,
		},
	}}, events...)
}

// PlayCard processes one full turn: the hand play with its chosen capture,
// then the stock flip with its automatic capture, then yaku detection. When
// new yaku complete, the turn pauses on a koi-koi decision instead of passing.
func (s *Service) PlayCard(game *domain.Game, actorUserID string, card domain.Card, fieldCard *domain.Card) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if game.AwaitingDecision != "" {
		return nil, ErrDecisionPending
	}
	pl, ok := game.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentTurn != actorUserID {
		return nil, ErrNotYourTurn
	}
	if !domain.ContainsCard(pl.Hand, card) {
		return nil, ErrCardNotInHand
	}

	if fieldCard != nil {
		if fieldCard.Month != card.Month || !domain.ContainsCard(game.Field, *fieldCard) {
			return nil, ErrInvalidCapture
		}
	} else if len(domain.MatchesByMonth(game.Field, card)) > 0 {
		// A matching card on the field must be taken.
		return nil, ErrInvalidCapture
	}

	pl.Hand = domain.RemoveCards(pl.Hand, []domain.Card{card})

	var captured []domain.Card
	if fieldCard != nil {
		game.Field = domain.RemoveCards(game.Field, []domain.Card{*fieldCard})
		captured = []domain.Card{card, *fieldCard}
		pl.Captured = append(pl.Captured, captured...)
	} else {
		game.Field = append(game.Field, card)
	}

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{UserID: actorUserID, Card: card, Captured: captured},
	}}

	events = append(events, s.flipStock(game, pl)...)
	return append(events, s.settleTurn(game, pl)...), nil
}

// flipStock draws the top stock card and resolves its capture automatically:
// among multiple month matches the highest-value field card is taken.
func (s *Service) flipStock(game *domain.Game, pl *domain.Player) []Event {
	if len(game.Deck) == 0 {
		return nil
	}

	drawn := game.Deck[0]
	game.Deck = game.Deck[1:]

	var captured []domain.Card
	if matches := domain.MatchesByMonth(game.Field, drawn); len(matches) > 0 {
		best := matches[0]
		for _, m := range matches[1:] {
			if m.Points > best.Points {
				best = m
			}
		}
		game.Field = domain.RemoveCards(game.Field, []domain.Card{best})
		captured = []domain.Card{drawn, best}
		pl.Captured = append(pl.Captured, captured...)
	} else {
		game.Field = append(game.Field, drawn)
	}

	return []Event{{
		Kind:    EventCardDrawn,
		Payload: CardDrawnPayload{UserID: pl.UserID, Card: drawn, Captured: captured},
	}}
}

// settleTurn checks for newly completed yaku and either pauses on a koi-koi
// decision, ends an exhausted round, or passes the turn.
func (s *Service) settleTurn(game *domain.Game, pl *domain.Player) []Event {
	score, results := game.Rules.Score(pl.Captured)

	if score > pl.SeenYakuPoints {
		game.AwaitingDecision = pl.UserID
		return []Event{{
			Kind:       EventYakuCompleted,
			Payload:    YakuCompletedPayload{UserID: pl.UserID, Yaku: results, RoundScore: score},
			Recipients: nil,
		}}
	}

	if s.roundExhausted(game) {
		return s.endRound(game, "", 0)
	}

	game.CurrentTurn = s.nextTurn(game, pl.UserID)
	return nil
}

// DecideKoiKoi resolves a pending continue/stop decision. Continuing records
// the call and passes the turn; stopping banks the round.
func (s *Service) DecideKoiKoi(game *domain.Game, actorUserID string, continueRound bool) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if game.AwaitingDecision != actorUserID {
		return nil, ErrNoDecisionPending
	}
	pl, ok := game.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	score, _ := game.Rules.Score(pl.Captured)
	game.AwaitingDecision = ""

	if !continueRound {
		return s.endRound(game, actorUserID, score), nil
	}

	pl.KoiKoiCalls++
	pl.SeenYakuPoints = score

	if s.roundExhausted(game) {
		// Nothing left to play for; the declared score still banks.
		return s.endRound(game, actorUserID, score), nil
	}

	game.CurrentTurn = s.nextTurn(game, actorUserID)
	return []Event{{
		Kind: EventKoiKoiCalled,
		Payload: KoiKoiCalledPayload{
			UserID:         actorUserID,
			Calls:          pl.KoiKoiCalls,
			NextTurnUserID: game.CurrentTurn,
		},
	}}, nil
}

// endRound banks the winner's score, advances or ends the match, and deals the
// next round when one remains. An empty winner is an exhaustive draw.
func (s *Service) endRound(game *domain.Game, winnerUserID string, score int) []Event {
	multiplier := 1
	banked := 0

	if winnerUserID != "" {
		winner := game.Players[winnerUserID]

		// Each continue call by either side doubles the stake, as does a big
		// winning score.
		for _, p := range game.Players {
			multiplier <<= p.KoiKoiCalls
		}
		if score >= BigScoreThreshold {
			multiplier <<= 1
		}

		banked = score * multiplier
		winner.Total += banked
	}

	totals := make(map[string]int, len(game.Players))
	for id, p := range game.Players {
		totals[id] = p.Total
	}

	events := []Event{{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			Round:        game.Round,
			WinnerUserID: winnerUserID,
			RoundScore:   score,
			Multiplier:   multiplier,
			Banked:       banked,
			Totals:       totals,
		},
	}}

	if game.Round >= game.TotalRounds {
		game.Phase = domain.PhaseEnded
		return append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinnerUserID: s.leader(game), Totals: totals},
		})
	}

	game.Round++
	return append(events, s.dealRound(game)...)
}

// roundExhausted reports whether no play remains: both hands empty. The stock
// can outlast the hands; leftover stock cards never flip.
func (s *Service) roundExhausted(game *domain.Game) bool {
	for _, p := range game.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

func (s *Service) nextTurn(game *domain.Game, current string) string {
	for i, id := range game.Order {
		if id == current {
			return game.Order[(i+1)%len(game.Order)]
		}
	}
	return current
}

// leader returns the user with the highest banked total, or empty on a tie.
func (s *Service) leader(game *domain.Game) string {
	var best string
	bestTotal := -1
	tied := false
	for _, id := range game.Order {
		t := game.Players[id].Total
		if t > bestTotal {
			best, bestTotal, tied = id, t, false
		} else if t == bestTotal {
			tied = true
		}
	}
	if tied {
		return ""
	}
	return best
}
