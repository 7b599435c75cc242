package sampling

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

// TestSweepShape runs a seeded end-to-end sweep and checks the shape and
// range of the result curves.
func TestSweepShape(t *testing.T) {
	cfg := SweepConfig{
		TrueMean:       0.013,
		TrueStd:        0.0026,
		MaxAliquots:    5,
		Simulations:    1000,
		ErrorMarginPct: 10,
		Src:            rand.NewSource(0xC0FFEE),
	}
	curves, err := cfg.Run(DefaultScenarios())
	if err != nil {
		t.Fatalf("failed to run sweep. Error: %v", err)
	}
	if len(curves) != 4 {
		t.Fatalf("expected 4 scenario curves, got %v", len(curves))
	}
	for _, c := range curves {
		if len(c.Values) != cfg.MaxAliquots {
			t.Fatalf("curve %v has length %v; expected %v", c.Scenario.Label, len(c.Values), cfg.MaxAliquots)
		}
		for n, v := range c.Values {
			if v < 0 || v > 100 {
				t.Fatalf("accuracy out of range at n=%v for %v: %v", n+1, c.Scenario.Label, v)
			}
		}
	}
}

// TestSweepAccuracyImproves checks the diminishing-returns property over a
// seeded sweep: the accuracy at the end of the sweep exceeds the accuracy
// of a single aliquot for every scenario.
func TestSweepAccuracyImproves(t *testing.T) {
	cfg := SweepConfig{
		TrueMean:       0.013,
		TrueStd:        0.0026,
		MaxAliquots:    12,
		Simulations:    4000,
		ErrorMarginPct: 10,
		Src:            rand.NewSource(0xBEEF),
	}
	curves, err := cfg.Run(DefaultScenarios())
	if err != nil {
		t.Fatalf("failed to run sweep. Error: %v", err)
	}
	for _, c := range curves {
		first := c.Values[0]
		last := c.Values[len(c.Values)-1]
		if last <= first {
			t.Fatalf("accuracy of %v did not improve over the sweep; %v vs %v", c.Scenario.Label, first, last)
		}
	}
}

// TestSweepValidation checks rejection of out-of-range parameters.
func TestSweepValidation(t *testing.T) {
	src := rand.NewSource(1)
	invalid := []SweepConfig{
		{TrueMean: 0.013, TrueStd: -1, MaxAliquots: 5, Simulations: 10, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, MaxAliquots: 0, Simulations: 10, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, MaxAliquots: 5, Simulations: 0, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, MaxAliquots: 5, Simulations: 10, ErrorMarginPct: -1, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, MaxAliquots: 5, Simulations: 10},
	}
	for _, cfg := range invalid {
		if _, err := cfg.Run(DefaultScenarios()); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("expected a parameter error for %+v, got %v", cfg, err)
		}
	}
	degenerate := SweepConfig{TrueMean: 0, TrueStd: 0.0026, MaxAliquots: 5, Simulations: 10, Src: src}
	if _, err := degenerate.Run(DefaultScenarios()); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("expected a degeneracy error for a zero mean, got %v", err)
	}
}
