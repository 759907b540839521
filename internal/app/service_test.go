package app

import (
	"errors"
	"math/rand"
	"testing"

	"hanakoi/internal/domain"
)

func cardNamed(t *testing.T, name string) domain.Card {
	t.Helper()
	for _, c := range domain.Catalog() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no catalog card named %q", name)
	return domain.Card{}
}

func poetryRibbons(t *testing.T, n int) []domain.Card {
	t.Helper()
	var out []domain.Card
	for _, c := range domain.Catalog() {
		if len(out) == n {
			break
		}
		if c.Tag == domain.TagPoetryRibbon {
			out = append(out, c)
		}
	}
	return out
}

func startedGame(t *testing.T, seed int64) (*Service, *domain.Game) {
	t.Helper()
	svc := NewService(rand.New(rand.NewSource(seed)))
	game, _, err := svc.StartGame([]string{"u1", "u2"}, domain.StandardRuleset(), 6)
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	return svc, game
}

func TestStartGameDealsRound(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(42)))

	game, evs, err := svc.StartGame([]string{"u1", "u2"}, domain.StandardRuleset(), 6)
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	if game.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s, want playing", game.Phase)
	}
	if len(game.Field) != FieldSize || len(game.Deck) != 48-2*HandSize-FieldSize {
		t.Fatalf("field/deck = %d/%d, want %d/%d", len(game.Field), len(game.Deck), FieldSize, 48-2*HandSize-FieldSize)
	}

	handEvents := 0
	for _, ev := range evs {
		if ev.Kind == EventHandDealt {
			handEvents++
			payload := ev.Payload.(HandDealtPayload)
			if len(payload.Hand) != HandSize {
				t.Fatalf("hand size = %d, want %d", len(payload.Hand), HandSize)
			}
		}
	}
	if handEvents != 2 {
		t.Fatalf("hand events = %d, want 2", handEvents)
	}
}

func TestStartGameTooFewPlayers(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	if _, _, err := svc.StartGame([]string{"u1", ""}, nil, 6); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("expected ErrTooFewPlayers, got %v", err)
	}
}

func TestPlayCardCaptureAndFlip(t *testing.T) {
	svc, game := startedGame(t, 7)

	cherry := cardNamed(t, "Cherry Chaff")
	curtain := cardNamed(t, "Curtain")
	boar := cardNamed(t, "Boar")

	game.CurrentTurn = "u1"
	game.Players["u1"].Hand = []domain.Card{cherry}
	game.Players["u1"].Captured = nil
	game.Players["u2"].Hand = []domain.Card{cardNamed(t, "Phoenix")}
	game.Field = []domain.Card{curtain}
	game.Deck = []domain.Card{boar}

	evs, err := svc.PlayCard(game, "u1", cherry, &curtain)
	if err != nil {
		t.Fatalf("play card error: %v", err)
	}

	pl := game.Players["u1"]
	if len(pl.Captured) != 2 {
		t.Fatalf("captured = %d cards, want the played pair", len(pl.Captured))
	}
	if !domain.ContainsCard(pl.Captured, curtain) {
		t.Fatal("the matched field card must be captured")
	}
	// The flipped boar had no match and landed on the field.
	if !domain.ContainsCard(game.Field, boar) {
		t.Fatal("unmatched stock flip must join the field")
	}
	if game.CurrentTurn != "u2" {
		t.Fatalf("turn = %s, want u2", game.CurrentTurn)
	}

	var kinds []EventKind
	for _, ev := range evs {
		kinds = append(kinds, ev.Kind)
	}
	if len(kinds) != 2 || kinds[0] != EventCardPlayed || kinds[1] != EventCardDrawn {
		t.Fatalf("events = %v, want played then drawn", kinds)
	}
}

func TestPlayCardValidation(t *testing.T) {
	svc, game := startedGame(t, 9)

	cherry := cardNamed(t, "Cherry Chaff")
	curtain := cardNamed(t, "Curtain")

	game.CurrentTurn = "u1"
	game.Players["u1"].Hand = []domain.Card{cherry}
	game.Field = []domain.Card{curtain}

	if _, err := svc.PlayCard(game, "u2", cherry, &curtain); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := svc.PlayCard(game, "u1", cardNamed(t, "Boar"), nil); !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("expected ErrCardNotInHand, got %v", err)
	}
	// A month match on the field cannot be ignored.
	if _, err := svc.PlayCard(game, "u1", cherry, nil); !errors.Is(err, ErrInvalidCapture) {
		t.Fatalf("expected ErrInvalidCapture, got %v", err)
	}
}

func TestCompletedYakuPausesForDecision(t *testing.T) {
	svc, game := startedGame(t, 11)

	poetry := poetryRibbons(t, 3)
	cherryChaff := cardNamed(t, "Cherry Chaff")

	game.CurrentTurn = "u1"
	game.Players["u1"].Hand = []domain.Card{poetry[2]}
	game.Players["u1"].Captured = poetry[:2]
	game.Players["u2"].Hand = []domain.Card{cardNamed(t, "Phoenix")}
	game.Field = []domain.Card{cherryChaff}
	game.Deck = []domain.Card{cardNamed(t, "Paulownia Chaff")}

	evs, err := svc.PlayCard(game, "u1", poetry[2], &cherryChaff)
	if err != nil {
		t.Fatalf("play card error: %v", err)
	}

	if game.AwaitingDecision != "u1" {
		t.Fatalf("awaiting = %q, want u1", game.AwaitingDecision)
	}
	found := false
	for _, ev := range evs {
		if ev.Kind == EventYakuCompleted {
			found = true
			payload := ev.Payload.(YakuCompletedPayload)
			if payload.RoundScore != 6 {
				t.Fatalf("round score = %d, want 6", payload.RoundScore)
			}
		}
	}
	if !found {
		t.Fatal("expected a yaku completed event")
	}

	// Play is frozen until the decision resolves.
	if _, err := svc.PlayCard(game, "u2", cardNamed(t, "Phoenix"), nil); !errors.Is(err, ErrDecisionPending) {
		t.Fatalf("expected ErrDecisionPending, got %v", err)
	}
}

func TestDecideKoiKoiContinues(t *testing.T) {
	svc, game := startedGame(t, 13)

	game.CurrentTurn = "u1"
	game.AwaitingDecision = "u1"
	game.Players["u1"].Captured = poetryRibbons(t, 3)
	game.Players["u1"].Hand = []domain.Card{cardNamed(t, "Boar")}
	game.Players["u2"].Hand = []domain.Card{cardNamed(t, "Phoenix")}

	evs, err := svc.DecideKoiKoi(game, "u1", true)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}

	pl := game.Players["u1"]
	if pl.KoiKoiCalls != 1 || pl.SeenYakuPoints != 6 {
		t.Fatalf("calls/seen = %d/%d, want 1/6", pl.KoiKoiCalls, pl.SeenYakuPoints)
	}
	if game.AwaitingDecision != "" || game.CurrentTurn != "u2" {
		t.Fatalf("decision must clear and the turn pass, got %q / %s", game.AwaitingDecision, game.CurrentTurn)
	}
	if len(evs) != 1 || evs[0].Kind != EventKoiKoiCalled {
		t.Fatalf("events = %v, want a single koikoi call", evs)
	}
}

func TestDecideShobuBanksWithMultiplier(t *testing.T) {
	svc, game := startedGame(t, 17)

	game.AwaitingDecision = "u1"
	game.Players["u1"].Captured = poetryRibbons(t, 3) // six points
	game.Players["u2"].KoiKoiCalls = 1                // opponent pushed and lost

	evs, err := svc.DecideKoiKoi(game, "u1", false)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}

	if game.Players["u1"].Total != 12 {
		t.Fatalf("total = %d, want 12 (6 doubled by the opponent's call)", game.Players["u1"].Total)
	}

	var ended *RoundEndedPayload
	sawNextDeal := false
	for _, ev := range evs {
		switch ev.Kind {
		case EventRoundEnded:
			p := ev.Payload.(RoundEndedPayload)
			ended = &p
		case EventRoundStarted:
			sawNextDeal = true
		}
	}
	if ended == nil || ended.WinnerUserID != "u1" || ended.Multiplier != 2 || ended.Banked != 12 {
		t.Fatalf("round ended payload wrong: %+v", ended)
	}
	if !sawNextDeal || game.Round != 2 {
		t.Fatalf("next round should deal, round = %d", game.Round)
	}
}

func TestBigScoreDoubles(t *testing.T) {
	svc, game := startedGame(t, 19)

	// Four brights without the rain man: eight points, over the threshold.
	var brights []domain.Card
	for _, c := range domain.Catalog() {
		if c.Type == domain.Bright && c.Tag != domain.TagRainMan {
			brights = append(brights, c)
		}
	}
	game.AwaitingDecision = "u1"
	game.Players["u1"].Captured = brights

	if _, err := svc.DecideKoiKoi(game, "u1", false); err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if game.Players["u1"].Total != 16 {
		t.Fatalf("total = %d, want 16 (8 doubled for a big score)", game.Players["u1"].Total)
	}
}

func TestFinalRoundEndsGame(t *testing.T) {
	svc, game := startedGame(t, 23)

	game.Round = game.TotalRounds
	game.AwaitingDecision = "u1"
	game.Players["u1"].Captured = poetryRibbons(t, 3)

	evs, err := svc.DecideKoiKoi(game, "u1", false)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if game.Phase != domain.PhaseEnded {
		t.Fatalf("phase = %s, want ended", game.Phase)
	}

	found := false
	for _, ev := range evs {
		if ev.Kind == EventGameEnded {
			found = true
			payload := ev.Payload.(GameEndedPayload)
			if payload.WinnerUserID != "u1" {
				t.Fatalf("winner = %q, want u1", payload.WinnerUserID)
			}
		}
	}
	if !found {
		t.Fatal("expected a game ended event")
	}
}

func TestExhaustedHandsDrawTheRound(t *testing.T) {
	svc, game := startedGame(t, 29)

	boar := cardNamed(t, "Boar")
	game.CurrentTurn = "u1"
	game.Players["u1"].Hand = []domain.Card{boar}
	game.Players["u1"].Captured = nil
	game.Players["u2"].Hand = nil
	game.Field = []domain.Card{cardNamed(t, "Phoenix")}
	game.Deck = nil

	evs, err := svc.PlayCard(game, "u1", boar, nil)
	if err != nil {
		t.Fatalf("play card error: %v", err)
	}

	var ended *RoundEndedPayload
	for _, ev := range evs {
		if ev.Kind == EventRoundEnded {
			p := ev.Payload.(RoundEndedPayload)
			ended = &p
		}
	}
	if ended == nil || ended.WinnerUserID != "" || ended.Banked != 0 {
		t.Fatalf("expected a scoreless draw, got %+v", ended)
	}
	if game.Round != 2 {
		t.Fatalf("round = %d, want 2 after the draw", game.Round)
	}
}
