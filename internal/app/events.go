package app

import "hanakoi/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventRoundStarted  EventKind = "round_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventCardPlayed    EventKind = "card_played"
	EventCardDrawn     EventKind = "card_drawn"
	EventYakuCompleted EventKind = "yaku_completed"
	EventKoiKoiCalled  EventKind = "koikoi_called"
	EventRoundEnded    EventKind = "round_ended"
	EventGameEnded     EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	Phase           domain.Phase
	FirstTurnUserID string
	TotalRounds     int
}

type RoundStartedPayload struct {
	Round           int
	Field           []domain.Card
	FirstTurnUserID string
}

type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

// CardPlayedPayload reports a hand play. Captured is empty when the card was
// placed on the field.
type CardPlayedPayload struct {
	UserID   string
	Card     domain.Card
	Captured []domain.Card
}

// CardDrawnPayload reports the stock flip that follows every hand play.
type CardDrawnPayload struct {
	UserID   string
	Card     domain.Card
	Captured []domain.Card
}

// YakuCompletedPayload announces newly completed yaku; the named player owes a
// koi-koi / shobu decision before play resumes.
type YakuCompletedPayload struct {
	UserID     string
	Yaku       []domain.YakuResult
	RoundScore int
}

type KoiKoiCalledPayload struct {
	UserID         string
	Calls          int
	NextTurnUserID string
}

// RoundEndedPayload carries the banked result. WinnerUserID is empty on an
// exhaustive draw.
type RoundEndedPayload struct {
	Round        int
	WinnerUserID string
	RoundScore   int
	Multiplier   int
	Banked       int
	Totals       map[string]int
}

type GameEndedPayload struct {
	WinnerUserID string
	Totals       map[string]int
}
