package sampling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the confidence level used when none is given.
const DefaultConfidence = 0.95

// AnalyticConfig parameterizes the closed-form margin-of-error estimator.
type AnalyticConfig struct {
	TrueMean    float64 // true mean of the measured quantity
	TrueStd     float64 // true standard deviation of a single aliquot
	MaxAliquots int     // upper bound of the aliquot sweep
	Confidence  float64 // two-sided confidence level in (0,1)
}

// validate checks the estimator parameters before any computation.
func (c *AnalyticConfig) validate() error {
	if c.TrueMean == 0 {
		return fmt.Errorf("%w: true mean must be nonzero", ErrNumericDegeneracy)
	}
	if c.TrueMean < 0 {
		return fmt.Errorf("%w: true mean must be positive; got %v", ErrInvalidParameter, c.TrueMean)
	}
	if c.TrueStd < 0 {
		return fmt.Errorf("%w: true standard deviation must be non-negative; got %v", ErrInvalidParameter, c.TrueStd)
	}
	if c.MaxAliquots < 1 {
		return fmt.Errorf("%w: maximum aliquot count must be at least 1; got %v", ErrInvalidParameter, c.MaxAliquots)
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("%w: confidence level must lie in (0,1); got %v", ErrInvalidParameter, c.Confidence)
	}
	return nil
}

// ZScore computes the two-sided critical value for a confidence level
// from the inverse standard-normal CDF. For 0.95 it yields ≈1.96.
func ZScore(confidence float64) float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	return norm.Quantile(1 - (1-confidence)/2)
}

// Mdd is the minimum detectable difference of a composite of n aliquots:
// the margin of error of the sample mean at critical value z.
func Mdd(z float64, std float64, n int) float64 {
	return z * std / math.Sqrt(float64(n))
}

// PercentDiffCurves computes, for every scenario, the margin of error as a
// percentage of the true mean over the aliquot sweep 1..MaxAliquots.
func (c *AnalyticConfig) PercentDiffCurves(scenarios []Scenario) ([]Curve, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	z := ZScore(c.Confidence)
	curves := make([]Curve, 0, len(scenarios))
	for _, s := range scenarios {
		adjStd := c.TrueStd * s.Factor
		values := make([]float64, 0, c.MaxAliquots)
		for _, n := range Sweep(c.MaxAliquots) {
			mdd := Mdd(z, adjStd, n)
			values = append(values, 100*mdd/c.TrueMean)
		}
		curves = append(curves, Curve{Scenario: s, Values: values})
	}
	return curves, nil
}
