package sampling

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// TestFitLogNormalMoments checks the moment-matching identities by
// recomputing the distribution moments from the fitted parameters.
func TestFitLogNormalMoments(t *testing.T) {
	cases := [][2]float64{
		{0.013, 0.0026},
		{1.0, 0.5},
		{100, 30},
		{0.5, 2.0},
	}
	for _, c := range cases {
		checkMomentFit(t, c[0], c[1])
	}
}

// checkMomentFit checks whether the given moments can be rediscovered from
// the fitted log-normal parameters.
func checkMomentFit(t *testing.T, mean float64, std float64) {
	muLog, sigmaLog, err := FitLogNormal(mean, std)
	if err != nil {
		t.Fatalf("failed to fit distribution. Error: %v", err)
	}
	fittedMean := math.Exp(muLog + sigmaLog*sigmaLog/2)
	fittedVar := (math.Exp(sigmaLog*sigmaLog) - 1) * math.Exp(2*muLog+sigmaLog*sigmaLog)
	if math.Abs(fittedMean-mean)/mean > 1e-12 {
		t.Fatalf("failed to recover mean. Expected: %v Computed: %v", mean, fittedMean)
	}
	if math.Abs(math.Sqrt(fittedVar)-std)/std > 1e-12 {
		t.Fatalf("failed to recover standard deviation. Expected: %v Computed: %v", std, math.Sqrt(fittedVar))
	}
}

// TestFitLogNormalRejects checks rejection of degenerate moments.
func TestFitLogNormalRejects(t *testing.T) {
	if _, _, err := FitLogNormal(0, 0.1); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("expected a degeneracy error for a zero mean, got %v", err)
	}
	if _, _, err := FitLogNormal(-1, 0.1); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("expected a degeneracy error for a negative mean, got %v", err)
	}
	if _, _, err := FitLogNormal(1, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected a parameter error for a zero standard deviation, got %v", err)
	}
}

// TestLogNormalRoundTrip draws a large population from the fitted
// distribution and checks that the input moments are recovered within
// Monte Carlo error.
func TestLogNormalRoundTrip(t *testing.T) {
	cfg := LogNormalConfig{
		TrueMean:       0.013,
		TrueStd:        0.0026,
		Aliquots:       1,
		Simulations:    200_000,
		ErrorMarginPct: 10,
		Src:            rand.NewSource(0x1337),
	}
	result, err := cfg.Run()
	if err != nil {
		t.Fatalf("failed to run experiment. Error: %v", err)
	}
	mean := stat.Mean(result.Means, nil)
	std := stat.StdDev(result.Means, nil)
	if math.Abs(mean-cfg.TrueMean)/cfg.TrueMean > 0.01 {
		t.Fatalf("failed to recover mean. Expected: %v Computed: %v", cfg.TrueMean, mean)
	}
	if math.Abs(std-cfg.TrueStd)/cfg.TrueStd > 0.02 {
		t.Fatalf("failed to recover standard deviation. Expected: %v Computed: %v", cfg.TrueStd, std)
	}
}

// TestSingleAliquot checks that one aliquot still yields a defined
// composite mean per trial.
func TestSingleAliquot(t *testing.T) {
	cfg := LogNormalConfig{
		TrueMean:       0.013,
		TrueStd:        0.0026,
		Aliquots:       1,
		Simulations:    10,
		ErrorMarginPct: 10,
		Src:            rand.NewSource(42),
	}
	result, err := cfg.Run()
	if err != nil {
		t.Fatalf("failed to run experiment. Error: %v", err)
	}
	if len(result.Means) != cfg.Simulations {
		t.Fatalf("expected %v composite means, got %v", cfg.Simulations, len(result.Means))
	}
	for _, m := range result.Means {
		if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			t.Fatalf("composite mean of a single log-normal draw must be positive and finite; got %v", m)
		}
	}
}

// TestZeroErrorMargin checks that a zero error band rejects essentially
// all trials (exact ties have probability zero).
func TestZeroErrorMargin(t *testing.T) {
	cfg := LogNormalConfig{
		TrueMean:       0.013,
		TrueStd:        0.0026,
		Aliquots:       9,
		Simulations:    1000,
		ErrorMarginPct: 0,
		Src:            rand.NewSource(7),
	}
	result, err := cfg.Run()
	if err != nil {
		t.Fatalf("failed to run experiment. Error: %v", err)
	}
	if result.Accuracy != 0 {
		t.Fatalf("expected 0%% accuracy for a zero error margin, got %v", result.Accuracy)
	}
}

// TestAccuracyImprovesWithAliquots checks the diminishing-returns property:
// pooling more aliquots raises the accuracy.
func TestAccuracyImprovesWithAliquots(t *testing.T) {
	single := LogNormalConfig{
		TrueMean:       0.013,
		TrueStd:        0.0026,
		Aliquots:       1,
		Simulations:    5000,
		ErrorMarginPct: 10,
		Src:            rand.NewSource(99),
	}
	pooled := single
	pooled.Aliquots = 16
	pooled.Src = rand.NewSource(100)

	singleResult, err := single.Run()
	if err != nil {
		t.Fatalf("failed to run experiment. Error: %v", err)
	}
	pooledResult, err := pooled.Run()
	if err != nil {
		t.Fatalf("failed to run experiment. Error: %v", err)
	}
	if pooledResult.Accuracy <= singleResult.Accuracy {
		t.Fatalf("expected higher accuracy for 16 aliquots than for 1; got %v vs %v",
			pooledResult.Accuracy, singleResult.Accuracy)
	}
}

// TestLogNormalValidation checks rejection of out-of-range parameters.
func TestLogNormalValidation(t *testing.T) {
	src := rand.NewSource(1)
	invalid := []LogNormalConfig{
		{TrueMean: 0.013, TrueStd: 0.0026, Aliquots: 0, Simulations: 10, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, Aliquots: 1, Simulations: 0, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, Aliquots: 1, Simulations: 10, ErrorMarginPct: -1, Src: src},
		{TrueMean: 0.013, TrueStd: 0.0026, Aliquots: 1, Simulations: 10},
	}
	for _, cfg := range invalid {
		if _, err := cfg.Run(); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("expected a parameter error for %+v, got %v", cfg, err)
		}
	}
	degenerate := LogNormalConfig{TrueMean: 0, TrueStd: 0.0026, Aliquots: 1, Simulations: 10, Src: src}
	if _, err := degenerate.Run(); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("expected a degeneracy error for a zero mean, got %v", err)
	}
}
