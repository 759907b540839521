package brain

import "testing"

func TestCompletionProbabilityBounds(t *testing.T) {
	if got := CompletionProbability(0, 5, 20); got != maxCompletionProbability {
		t.Fatalf("nothing needed should return the cap, got %.2f", got)
	}
	if got := CompletionProbability(2, 1, 20); got != 0 {
		t.Fatalf("fewer qualifying cards than needed must be impossible, got %.2f", got)
	}
	// Certain exposure still caps below one.
	if got := CompletionProbability(1, 40, 40); got != maxCompletionProbability {
		t.Fatalf("expected the cap for saturated odds, got %.2f", got)
	}
}

func TestCompletionProbabilityEmptyDeck(t *testing.T) {
	got := CompletionProbability(1, 3, 0)
	if got <= 0 || got > maxCompletionProbability {
		t.Fatalf("empty deck must still yield a sane estimate, got %.2f", got)
	}
}

func TestCompletionProbabilityNeedScaling(t *testing.T) {
	p1 := CompletionProbability(1, 6, 16)
	p2 := CompletionProbability(2, 6, 16)
	p3 := CompletionProbability(3, 6, 16)

	if !(p1 > p2 && p2 > p3) {
		t.Fatalf("needing more cards must discount: p1=%.3f p2=%.3f p3=%.3f", p1, p2, p3)
	}
}

func TestCompletionProbabilityFamilyWidth(t *testing.T) {
	wide := CompletionProbability(1, 8, 16)
	narrow := CompletionProbability(1, 1, 16)

	if wide <= narrow {
		t.Fatalf("wider families must score higher: wide=%.3f narrow=%.3f", wide, narrow)
	}
}

func TestCompletionProbabilitySingleCardLateRound(t *testing.T) {
	// One card needed, one qualifying card left, ten in the stock. The
	// opponent sees every flip, so the odds land well above the stop cutoff.
	got := CompletionProbability(1, 1, 10)
	if got <= highConfidenceCutoff {
		t.Fatalf("expected high confidence, got %.3f", got)
	}
}
