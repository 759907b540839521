package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameHanakoi is the authoritative match handler name registered with Nakama.
	MatchNameHanakoi = "hanakoi_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame      int64 = 1
	OpPlayCard       int64 = 2
	OpKoiKoiDecision int64 = 3

	// Server -> Client events
	OpMatchState    int64 = 101
	OpGameStarted   int64 = 102
	OpRoundStarted  int64 = 103
	OpHandDealt     int64 = 104 // send privately
	OpCardPlayed    int64 = 105
	OpCardDrawn     int64 = 106
	OpYakuCompleted int64 = 107
	OpKoiKoiCalled  int64 = 108
	OpRoundEnded    int64 = 109
	OpGameEnded     int64 = 110
	OpGameError     int64 = 120
)
