package visualizer

import (
	"math"

	"github.com/ecostat/aliquot/sampling"
)

// AnalyticData is the view model of the analytic margin-of-error chart.
type AnalyticData struct {
	Curves            []sampling.Curve   // percent-difference series, one per scenario
	Costs             sampling.CostTable // optional cost overlay; nil when not loaded
	ReferenceAliquots int                // aliquot count highlighted with a mark line
	Confidence        float64            // confidence level of the margin of error
}

// LogNormalData is the view model of the composite-mean histogram.
type LogNormalData struct {
	Bins       []HistogramBin
	Accuracy   float64 // percentage of trials within the error band
	LowerBound float64
	UpperBound float64
	Aliquots   int
}

// SweepData is the view model of the accuracy-per-aliquot-count chart.
type SweepData struct {
	Curves []sampling.Curve // accuracy series, one per scenario
}

// HistogramBin is one fixed-width bin of composite means.
type HistogramBin struct {
	Center float64
	Count  int
}

// BinMeans groups composite means into nBins fixed-width bins spanning
// the observed range. A degenerate range collapses into a single bin.
func BinMeans(means []float64, nBins int) []HistogramBin {
	if len(means) == 0 || nBins < 1 {
		return nil
	}
	min, max := means[0], means[0]
	for _, m := range means {
		min = math.Min(min, m)
		max = math.Max(max, m)
	}
	if min == max {
		return []HistogramBin{{Center: min, Count: len(means)}}
	}
	width := (max - min) / float64(nBins)
	bins := make([]HistogramBin, nBins)
	for i := range bins {
		bins[i].Center = min + (float64(i)+0.5)*width
	}
	for _, m := range means {
		i := int((m - min) / width)
		// the maximum lands exactly on the upper edge
		if i == nBins {
			i--
		}
		bins[i].Count++
	}
	return bins
}

// binIndex locates the bin closest to x, for placing mark lines on the
// category axis of the histogram.
func binIndex(bins []HistogramBin, x float64) int {
	best := 0
	for i, b := range bins {
		if math.Abs(b.Center-x) < math.Abs(bins[best].Center-x) {
			best = i
		}
	}
	return best
}
