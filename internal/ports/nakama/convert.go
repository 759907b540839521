package nakama

import (
	"hanakoi/internal/domain"
)

// WireCard is the JSON card representation sent to clients. Cards are fully
// identified by their catalog ID; the descriptive fields save clients a local
// catalog lookup.
type WireCard struct {
	ID     int    `json:"id"`
	Month  int    `json:"month"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// WireYakuResult is one completed yaku in a score report.
type WireYakuResult struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Points int    `json:"points"`
}

func cardToWire(c domain.Card) WireCard {
	return WireCard{
		ID:     c.ID,
		Month:  int(c.Month),
		Type:   c.Type.String(),
		Name:   c.Name,
		Points: c.Points,
	}
}

func cardsToWire(cards []domain.Card) []WireCard {
	out := make([]WireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToWire(c))
	}
	return out
}

// cardFromWire resolves a client card reference against the catalog. Only the
// ID is trusted; everything else is re-derived server-side.
func cardFromWire(w WireCard) (domain.Card, bool) {
	return domain.CardByID(w.ID)
}

func yakuResultsToWire(results []domain.YakuResult) []WireYakuResult {
	out := make([]WireYakuResult, 0, len(results))
	for _, r := range results {
		out = append(out, WireYakuResult{
			Kind:   r.Yaku.Kind.String(),
			Name:   r.Yaku.Name,
			Count:  r.Count,
			Points: r.Points,
		})
	}
	return out
}
