package bot

// GodBot is the smart tier with an aggressive risk profile: identical card
// selection, greedier continue bias in the probabilistic zone. The
// deterministic gates are shared and unaffected by the bias.
type GodBot struct {
	SmartBot
}
