package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"hanakoi/internal/app"
	"hanakoi/internal/bot"
	"hanakoi/internal/config"
	"hanakoi/internal/domain"
	"hanakoi/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [2]string                   `json:"seats"`      // user IDs, empty string means seat is empty
	OwnerSeat int                         `json:"owner_seat"` // seat index of the match owner
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"` // UserID -> Presence for targeted messaging
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"` // nil while in lobby

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`           // min seconds a bot waits before acting
	BotMaxDelay          int                   `json:"bot_max_delay"`           // max seconds a bot waits before acting
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"`     // seconds before filling a solo lobby
	BotWaitUntil         int64                 `json:"bot_wait_until"`          // tick when the pending bot action fires
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"` // tick when a solo human started waiting
	Bots                 map[string]*bot.Agent `json:"-"`

	Economy ports.EconomyPort `json:"-"`
	BaseBet int64             `json:"base_bet"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// seatOf returns the seat index for a user ID, or -1.
func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// matchLabel is the JSON label used for match listing queries.
type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// Client request payloads.

type StartGameRequest struct {
	Tier string `json:"tier"`
}

type PlayCardRequest struct {
	CardID int `json:"card_id"`
	// FieldCardID is the chosen capture target, or -1 to place the card.
	FieldCardID int `json:"field_card_id"`
}

type KoiKoiDecisionRequest struct {
	Continue bool `json:"continue"`
}

// Server event payloads not derived directly from app events.

type playerState struct {
	UserID        string `json:"user_id"`
	Seat          int    `json:"seat"`
	IsOwner       bool   `json:"is_owner"`
	DisplayName   string `json:"display_name"`
	HandCount     int    `json:"hand_count"`
	CapturedCount int    `json:"captured_count"`
	Total         int    `json:"total"`
}

type matchStateSnapshot struct {
	Seats     []string      `json:"seats"`
	OwnerSeat int           `json:"owner_seat"`
	Tick      int64         `json:"tick"`
	Players   []playerState `json:"players"`
}

type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:      time.Now().Unix(),
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		OwnerSeat: -1,
		Bots:      make(map[string]*bot.Agent),
		Economy:   NewNakamaEconomyAdapter(nk),
		BaseBet:   config.GetBaseBet(""),
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["hanakoi_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["hanakoi_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["hanakoi_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	state.BotAutoFillDelay = config.GetAutoFillDelay()

	label, err := json.Marshal(matchLabel{Open: state.GetOpenSeatsCount(), Game: "hanakoi", Phase: "lobby"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(label)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace before play starts.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher)

	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if i := matchState.seatOf(p.GetUserId()); i >= 0 {
			matchState.Seats[i] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])

	if matchState.OwnerSeat == -1 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		case OpKoiKoiDecision:
			mh.handleKoiKoiDecision(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill the lobby with a bot when a solo human has waited long enough.
	if state.Game == nil {
		if state.GetHumanPlayerCount() == 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					agent, err := bot.NewAgent(identity.UserID, rulesFromConfig(), nil)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, i)
				}
				state.LastSinglePlayerTick = 0
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastMatchState(state, dispatcher)
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	if state.Game.Phase != domain.PhasePlaying {
		return
	}

	// 2. A pending koi-koi decision outranks the turn.
	actorID := state.Game.AwaitingDecision
	if actorID == "" {
		actorID = state.Game.CurrentTurn
	}
	if !bot.IsBot(actorID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[actorID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(actorID, state.Game.Rules, nil)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[actorID] = agent
	}

	if state.Game.AwaitingDecision == actorID {
		continueRound, err := agent.DecideKoiKoi(state.Game)
		if err != nil {
			logger.Error("processBots: Bot %s failed to decide koi-koi: %v", actorID, err)
			return
		}
		events, err := state.App.DecideKoiKoi(state.Game, actorID, continueRound)
		if err != nil {
			logger.Error("processBots: Bot %s koi-koi decision rejected: %v", actorID, err)
			return
		}
		logger.Debug("processBots: Bot %s chose %s", actorID, map[bool]string{true: "koi-koi", false: "shobu"}[continueRound])
		mh.broadcastEvents(ctx, state, dispatcher, logger, events)
		return
	}

	move, err := agent.Play(state.Game)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", actorID, err)
		return
	}
	logger.Debug("processBots: Bot %s: %s", actorID, move.Rationale)

	events, err := state.App.PlayCard(state.Game, actorID, move.Card, move.FieldCard)
	if err != nil {
		logger.Error("processBots: Bot %s move rejected: %v", actorID, err)
		return
	}
	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	request := &StartGameRequest{}
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), request); err != nil {
			logger.Warn("StartGame: Invalid StartGameRequest from %s: %v", senderID, err)
			return
		}
	}

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.GetOccupiedSeatCount() < app.MinPlayersToStartGame {
		logger.Warn("StartGame: Cannot start with %d players. Need %d.", state.GetOccupiedSeatCount(), app.MinPlayersToStartGame)
		return
	}
	if state.Game != nil {
		logger.Warn("StartGame: Game already in progress.")
		return
	}

	state.BaseBet = config.GetBaseBet(request.Tier)

	game, events, err := state.App.StartGame(state.Seats[:], rulesFromConfig(), config.GetTotalRounds())
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		return
	}
	state.Game = game

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(ctx, state, dispatcher, logger, events)

	logger.Info("StartGame: Game started with %d players.", state.GetOccupiedSeatCount())
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		logger.Warn("handlePlayCard: Game not started.")
		return
	}

	request := &PlayCardRequest{FieldCardID: -1}
	if err := json.Unmarshal(msg.GetData(), request); err != nil {
		logger.Error("handlePlayCard: Failed to unmarshal PlayCardRequest: %v", err)
		return
	}

	card, ok := domain.CardByID(request.CardID)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, 400, "unknown card")
		return
	}
	var fieldCard *domain.Card
	if request.FieldCardID >= 0 {
		fc, ok := domain.CardByID(request.FieldCardID)
		if !ok {
			mh.sendError(state, dispatcher, logger, senderID, 400, "unknown field card")
			return
		}
		fieldCard = &fc
	}

	events, err := state.App.PlayCard(state.Game, senderID, card, fieldCard)
	if err != nil {
		logger.Warn("handlePlayCard: User %s failed to play card %d: %v", senderID, request.CardID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleKoiKoiDecision(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		logger.Warn("handleKoiKoiDecision: Game not started.")
		return
	}

	request := &KoiKoiDecisionRequest{}
	if err := json.Unmarshal(msg.GetData(), request); err != nil {
		logger.Error("handleKoiKoiDecision: Failed to unmarshal KoiKoiDecisionRequest: %v", err)
		return
	}

	events, err := state.App.DecideKoiKoi(state.Game, senderID, request.Continue)
	if err != nil {
		logger.Warn("handleKoiKoiDecision: User %s decision rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) broadcastEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// broadcastEvent converts an app event to its wire payload and dispatches it.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventGameStarted:
		opCode = OpGameStarted
		p := ev.Payload.(app.GameStartedPayload)
		payload = map[string]any{
			"phase":              string(p.Phase),
			"first_turn_user_id": p.FirstTurnUserID,
			"total_rounds":       p.TotalRounds,
		}
	case app.EventRoundStarted:
		opCode = OpRoundStarted
		p := ev.Payload.(app.RoundStartedPayload)
		payload = map[string]any{
			"round":              p.Round,
			"field":              cardsToWire(p.Field),
			"first_turn_user_id": p.FirstTurnUserID,
		}
	case app.EventHandDealt:
		opCode = OpHandDealt
		p := ev.Payload.(app.HandDealtPayload)
		payload = map[string]any{
			"user_id": p.UserID,
			"hand":    cardsToWire(p.Hand),
		}
	case app.EventCardPlayed:
		opCode = OpCardPlayed
		p := ev.Payload.(app.CardPlayedPayload)
		payload = map[string]any{
			"user_id":  p.UserID,
			"card":     cardToWire(p.Card),
			"captured": cardsToWire(p.Captured),
		}
	case app.EventCardDrawn:
		opCode = OpCardDrawn
		p := ev.Payload.(app.CardDrawnPayload)
		payload = map[string]any{
			"user_id":  p.UserID,
			"card":     cardToWire(p.Card),
			"captured": cardsToWire(p.Captured),
		}
	case app.EventYakuCompleted:
		opCode = OpYakuCompleted
		p := ev.Payload.(app.YakuCompletedPayload)
		payload = map[string]any{
			"user_id":     p.UserID,
			"yaku":        yakuResultsToWire(p.Yaku),
			"round_score": p.RoundScore,
		}
	case app.EventKoiKoiCalled:
		opCode = OpKoiKoiCalled
		p := ev.Payload.(app.KoiKoiCalledPayload)
		payload = map[string]any{
			"user_id":           p.UserID,
			"calls":             p.Calls,
			"next_turn_user_id": p.NextTurnUserID,
		}
	case app.EventRoundEnded:
		opCode = OpRoundEnded
		p := ev.Payload.(app.RoundEndedPayload)
		payload = map[string]any{
			"round":          p.Round,
			"winner_user_id": p.WinnerUserID,
			"round_score":    p.RoundScore,
			"multiplier":     p.Multiplier,
			"banked":         p.Banked,
			"totals":         p.Totals,
		}
	case app.EventGameEnded:
		opCode = OpGameEnded
		p := ev.Payload.(app.GameEndedPayload)
		payload = map[string]any{
			"winner_user_id": p.WinnerUserID,
			"totals":         p.Totals,
		}
		mh.settleStakes(ctx, state, logger, p)
		state.Game = nil
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast).
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// If we had intended recipients but none are connected (e.g. they are
		// bots), we MUST NOT broadcast to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// settleStakes applies the wallet settlement for a finished match: losers pay
// the base bet, the winner collects it minus tax. Bots hold no wallets.
func (mh *matchHandler) settleStakes(ctx context.Context, state *MatchState, logger runtime.Logger, p app.GameEndedPayload) {
	if state.Economy == nil || state.BaseBet <= 0 || p.WinnerUserID == "" {
		return
	}

	taxRate := 0.0
	if cfg := config.GetGameConfig(); cfg != nil {
		taxRate = cfg.TaxRate
	}

	pot := int64(0)
	var updates []ports.WalletUpdate
	meta := map[string]interface{}{
		"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
		"reason":   "game_settlement",
	}

	for _, userID := range state.Seats {
		if userID == "" || userID == p.WinnerUserID {
			continue
		}
		pot += state.BaseBet
		if bot.IsBot(userID) {
			continue
		}
		updates = append(updates, ports.WalletUpdate{UserID: userID, Amount: -state.BaseBet, Metadata: meta})
	}

	if !bot.IsBot(p.WinnerUserID) {
		winnings := pot - int64(float64(pot)*taxRate)
		updates = append(updates, ports.WalletUpdate{UserID: p.WinnerUserID, Amount: winnings, Metadata: meta})
	}

	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("Failed to update balances: %v", err)
	}
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher) {
	var players []playerState
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userID); name != "" {
			displayName = name
		}

		ps := playerState{
			UserID:      userID,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			DisplayName: displayName,
		}
		if state.Game != nil {
			if pl, ok := state.Game.Players[userID]; ok {
				ps.HandCount = len(pl.Hand)
				ps.CapturedCount = len(pl.Captured)
				ps.Total = pl.Total
			}
		}
		players = append(players, ps)
	}

	snapshot := matchStateSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Players:   players,
	}
	bytes, _ := json.Marshal(snapshot)
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

// sendError sends a gameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(gameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal gameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}

	label, err := json.Marshal(matchLabel{Open: state.GetOpenSeatsCount(), Game: "hanakoi", Phase: phase})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(label)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

func rulesFromConfig() *domain.Ruleset {
	return domain.RulesetByName(config.GetRulesetVariant())
}
