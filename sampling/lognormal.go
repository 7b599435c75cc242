package sampling

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// FitLogNormal derives the parameters of a log-normal distribution whose
// mean and standard deviation match the given moments:
//
//	muLog    = ln(mean² / sqrt(std² + mean²))
//	sigmaLog = sqrt(ln(1 + std²/mean²))
func FitLogNormal(mean float64, std float64) (float64, float64, error) {
	if mean <= 0 {
		return 0, 0, fmt.Errorf("%w: log-normal fit requires a positive mean; got %v", ErrNumericDegeneracy, mean)
	}
	if std <= 0 {
		return 0, 0, fmt.Errorf("%w: log-normal fit requires a positive standard deviation; got %v", ErrInvalidParameter, std)
	}
	muLog := math.Log(mean * mean / math.Sqrt(std*std+mean*mean))
	sigmaLog := math.Sqrt(math.Log(1 + (std*std)/(mean*mean)))
	return muLog, sigmaLog, nil
}

// LogNormalConfig parameterizes the log-normal Monte Carlo estimator for a
// fixed aliquot count.
type LogNormalConfig struct {
	TrueMean       float64     // mean of the fitted log-normal distribution
	TrueStd        float64     // standard deviation of the fitted distribution
	Aliquots       int         // aliquots pooled into one composite sample
	Simulations    int         // number of simulated composite samples
	ErrorMarginPct float64     // acceptable deviation from the true mean in percent
	Src            rand.Source // random source; must not be nil
}

// LogNormalResult holds the outcome of one log-normal experiment.
type LogNormalResult struct {
	Means      []float64 // one composite mean per trial
	Accuracy   float64   // percentage of trials within the error band
	LowerBound float64   // lower edge of the acceptable band
	UpperBound float64   // upper edge of the acceptable band
	MuLog      float64   // fitted log-scale location parameter
	SigmaLog   float64   // fitted log-scale shape parameter
}

// validate checks the experiment parameters before any computation.
func (c *LogNormalConfig) validate() error {
	if c.Aliquots < 1 {
		return fmt.Errorf("%w: aliquot count must be at least 1; got %v", ErrInvalidParameter, c.Aliquots)
	}
	if c.Simulations < 1 {
		return fmt.Errorf("%w: simulation count must be at least 1; got %v", ErrInvalidParameter, c.Simulations)
	}
	if c.ErrorMarginPct < 0 {
		return fmt.Errorf("%w: error margin must be non-negative; got %v", ErrInvalidParameter, c.ErrorMarginPct)
	}
	if c.Src == nil {
		return fmt.Errorf("%w: random source must not be nil", ErrInvalidParameter)
	}
	return nil
}

// Run simulates composite samples of Aliquots log-normal draws each and
// reports how often the composite mean lands within the error band.
func (c *LogNormalConfig) Run() (*LogNormalResult, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	muLog, sigmaLog, err := FitLogNormal(c.TrueMean, c.TrueStd)
	if err != nil {
		return nil, err
	}
	dist := distuv.LogNormal{Mu: muLog, Sigma: sigmaLog, Src: c.Src}
	means := make([]float64, c.Simulations)
	for t := range means {
		sum := 0.0
		for i := 0; i < c.Aliquots; i++ {
			sum += dist.Rand()
		}
		means[t] = sum / float64(c.Aliquots)
	}
	margin := c.TrueMean * c.ErrorMarginPct / 100
	return &LogNormalResult{
		Means:      means,
		Accuracy:   accuracyWithin(means, c.TrueMean, margin),
		LowerBound: c.TrueMean - margin,
		UpperBound: c.TrueMean + margin,
		MuLog:      muLog,
		SigmaLog:   sigmaLog,
	}, nil
}

// accuracyWithin computes the percentage of composite means lying within
// ±margin of the true mean.
func accuracyWithin(means []float64, trueMean float64, margin float64) float64 {
	hits := 0
	for _, m := range means {
		if math.Abs(m-trueMean) <= margin {
			hits++
		}
	}
	return 100 * float64(hits) / float64(len(means))
}
