package sampling

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SweepConfig parameterizes the normal Monte Carlo diminishing-returns
// estimator, sweeping the aliquot count from 1 to MaxAliquots.
type SweepConfig struct {
	TrueMean       float64     // mean of the sampled normal distribution
	TrueStd        float64     // standard deviation of a single aliquot
	MaxAliquots    int         // upper bound of the aliquot sweep
	Simulations    int         // number of simulated composites per aliquot count
	ErrorMarginPct float64     // acceptable deviation from the true mean in percent
	Src            rand.Source // random source; must not be nil
}

// validate checks the sweep parameters before any computation.
func (c *SweepConfig) validate() error {
	if c.TrueMean <= 0 {
		return fmt.Errorf("%w: true mean must be positive; got %v", ErrNumericDegeneracy, c.TrueMean)
	}
	if c.TrueStd < 0 {
		return fmt.Errorf("%w: true standard deviation must be non-negative; got %v", ErrInvalidParameter, c.TrueStd)
	}
	if c.MaxAliquots < 1 {
		return fmt.Errorf("%w: maximum aliquot count must be at least 1; got %v", ErrInvalidParameter, c.MaxAliquots)
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

// Run computes the empirical accuracy of a composite sample for every
// scenario and every aliquot count of the sweep. Draws are normal; the
// trials of one (scenario, n) cell are drawn as a single block and reduced
// per trial, since all trials are independent.
func (c *SweepConfig) Run(scenarios []Scenario) ([]Curve, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	margin := c.TrueMean * c.ErrorMarginPct / 100
	curves := make([]Curve, 0, len(scenarios))
	block := make([]float64, 0)
	means := make([]float64, c.Simulations)
	for _, s := range scenarios {
		dist := distuv.Normal{Mu: c.TrueMean, Sigma: c.TrueStd * s.Factor, Src: c.Src}
		values := make([]float64, 0, c.MaxAliquots)
		for _, n := range Sweep(c.MaxAliquots) {
			block = block[:0]
			for i := 0; i < c.Simulations*n; i++ {
				block = append(block, dist.Rand())
			}
			for t := 0; t < c.Simulations; t++ {
				sum := 0.0
				for _, x := range block[t*n : (t+1)*n] {
					sum += x
				}
				means[t] = sum / float64(n)
			}
			values = append(values, accuracyWithin(means, c.TrueMean, margin))
		}
		curves = append(curves, Curve{Scenario: s, Values: values})
	}
	return curves, nil
}
