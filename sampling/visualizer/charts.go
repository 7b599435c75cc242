package visualizer

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// defaultGlobalOpts are the shared chart options: chalk theme, toolbox
// with image export and zooming, legend, and titles.
func defaultGlobalOpts(pageTitle string, title string, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: pageTitle,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// convertCurveData converts one scenario curve to chart points over the
// aliquot sweep 1..len.
func convertCurveData(values []float64) []opts.LineData {
	items := []opts.LineData{}
	for i, v := range values {
		items = append(items, opts.LineData{Value: [2]float64{float64(i + 1), v}})
	}
	return items
}

// newAnalyticChart creates the dual-axis chart of the analytic estimator:
// percent-difference curves on the primary axis and, when present, the
// cost curve on a secondary axis, with a mark line at the reference count.
func newAnalyticChart(d *AnalyticData) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(append(defaultGlobalOpts(
		"Margin of Error",
		"Composite-Sample Margin of Error",
		fmt.Sprintf("percent difference at %.0f%% confidence", 100*d.Confidence)),
		charts.WithXAxisOpts(opts.XAxis{Name: "aliquots", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "% difference", Type: "value"}),
	)...)
	for _, c := range d.Curves {
		// the reference mark line is drawn once, on the nominal scenario
		if c.Scenario.Factor == 1.0 {
			chart.AddSeries(c.Scenario.Label, convertCurveData(c.Values),
				charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
					Name:  fmt.Sprintf("n=%d", d.ReferenceAliquots),
					XAxis: d.ReferenceAliquots,
				}))
			continue
		}
		chart.AddSeries(c.Scenario.Label, convertCurveData(c.Values))
	}
	if len(d.Costs) > 0 {
		chart.ExtendYAxis(opts.YAxis{Name: "price", Type: "value", Show: true})
		items := []opts.LineData{}
		for _, p := range d.Costs {
			items = append(items, opts.LineData{Value: [2]float64{float64(p.Aliquots), p.Price}})
		}
		chart.AddSeries("price", items, charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	}
	return chart
}

// newHistogramChart creates the composite-mean histogram of the log-normal
// estimator with mark lines at the acceptable error bounds.
func newHistogramChart(d *LogNormalData) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(append(defaultGlobalOpts(
		"Composite Means",
		fmt.Sprintf("Composite Means of %d Aliquots", d.Aliquots),
		fmt.Sprintf("accuracy %.2f%% within [%.6g, %.6g]", d.Accuracy, d.LowerBound, d.UpperBound)),
		charts.WithXAxisOpts(opts.XAxis{Name: "composite mean"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "trials"}),
	)...)
	labels := []string{}
	items := []opts.BarData{}
	for _, b := range d.Bins {
		labels = append(labels, fmt.Sprintf("%.6g", b.Center))
		items = append(items, opts.BarData{Value: b.Count})
	}
	chart.SetXAxis(labels).AddSeries("composite means", items,
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{Name: "lower bound", XAxis: binIndex(d.Bins, d.LowerBound)},
			opts.MarkLineNameXAxisItem{Name: "upper bound", XAxis: binIndex(d.Bins, d.UpperBound)},
		))
	return chart
}

// newSweepChart creates the accuracy-vs-aliquot-count chart of the
// Monte Carlo sweep, one marked line per scenario.
func newSweepChart(d *SweepData) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(append(defaultGlobalOpts(
		"Sampling Accuracy",
		"Composite-Sample Accuracy",
		"diminishing returns of additional aliquots"),
		charts.WithXAxisOpts(opts.XAxis{Name: "aliquots", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "accuracy %", Type: "value", Max: 100}),
	)...)
	for _, c := range d.Curves {
		chart.AddSeries(c.Scenario.Label, convertCurveData(c.Values),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true, Symbol: "circle", SymbolSize: 6}))
	}
	return chart
}
