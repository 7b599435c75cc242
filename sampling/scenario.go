package sampling

import "fmt"

// Package for estimating the accuracy of composite environmental samples.
// A composite sample pools n aliquots; its mean gets tighter as n grows.

// Scenario describes one variability regime as a scaling factor applied
// to the true standard deviation.
type Scenario struct {
	Factor float64 // scaling factor for the true standard deviation
	Label  string  // series label used in reports and charts
}

// scenarioFactors are the fixed variability regimes of the analysis.
var scenarioFactors = []float64{0.9, 1.0, 1.1, 1.2}

// DefaultScenarios returns the four fixed variability scenarios.
func DefaultScenarios() []Scenario {
	scenarios := make([]Scenario, 0, len(scenarioFactors))
	for _, f := range scenarioFactors {
		scenarios = append(scenarios, Scenario{
			Factor: f,
			Label:  fmt.Sprintf("σ×%.1f", f),
		})
	}
	return scenarios
}

// Curve is an ordered series of metric values for one scenario,
// one value per aliquot count of the sweep.
type Curve struct {
	Scenario Scenario
	Values   []float64
}

// Sweep produces the ordered aliquot counts 1..max.
func Sweep(max int) []int {
	counts := make([]int, max)
	for i := range counts {
		counts[i] = i + 1
	}
	return counts
}
