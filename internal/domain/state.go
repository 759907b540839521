package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby indicates the match is waiting for players.
	PhaseLobby Phase = "lobby"
	// PhasePlaying indicates a round is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates the match has finished.
	PhaseEnded Phase = "ended"
)

// Player holds the domain state for one participant. The hand and captured set
// are mutated only by the app service; decision code reads them.
type Player struct {
	UserID   string
	Seat     int // 1-based
	Hand     []Card
	Captured []Card

	// Total is the banked score across rounds.
	Total int
	// KoiKoiCalls counts continue declarations this round.
	KoiKoiCalls int
	// SeenYakuPoints is the yaku value already acknowledged this round, used
	// to detect newly completed yaku after a capture.
	SeenYakuPoints int
}

// Game captures the authoritative state for one match. Every card is in
// exactly one zone: the deck, the field, a hand, or a captured set.
type Game struct {
	Phase Phase
	Rules *Ruleset

	Players map[string]*Player
	Order   []string // user IDs in seat order

	Field []Card
	Deck  []Card // face-down stock, drawn from the front

	CurrentTurn string
	// AwaitingDecision names the player who must choose koi-koi or shobu
	// before play resumes; empty when no decision is pending.
	AwaitingDecision string

	Round       int
	TotalRounds int
}

// DeckRemaining returns the number of undrawn stock cards.
func (g *Game) DeckRemaining() int {
	return len(g.Deck)
}

// Opponent returns the other seated player in a two-player match, or nil.
func (g *Game) Opponent(userID string) *Player {
	for _, id := range g.Order {
		if id != userID {
			return g.Players[id]
		}
	}
	return nil
}

// PlayerBySeat returns the player at the 1-based seat, or nil.
func (g *Game) PlayerBySeat(seat int) *Player {
	for _, p := range g.Players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}
