package app

// Seats and deal shape for a two-player koi-koi match. Keep these centralized
// so tests or local runs can adjust the rule without touching multiple call
// sites.
const (
	// MinPlayersToStartGame defines the number of occupied seats required to
	// start a match.
	MinPlayersToStartGame = 2

	// HandSize and FieldSize are the opening deal: eight cards per hand and
	// eight face-up on the field, leaving 24 in the stock.
	HandSize  = 8
	FieldSize = 8

	// BigScoreThreshold doubles the banked result when the winning round
	// score reaches it.
	BigScoreThreshold = 7
)
