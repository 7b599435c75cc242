package visualizer

import (
	"net/http"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
)

// Report collects the view models of one estimator run. Only the
// populated sections are rendered.
type Report struct {
	Analytic  *AnalyticData
	LogNormal *LogNormalData
	Sweep     *SweepData
}

// NewAnalyticReport builds the report of the analytic estimator.
func NewAnalyticReport(d *AnalyticData) *Report {
	return &Report{Analytic: d}
}

// NewLogNormalReport builds the report of the log-normal estimator.
func NewLogNormalReport(d *LogNormalData) *Report {
	return &Report{LogNormal: d}
}

// NewSweepReport builds the report of the Monte Carlo sweep.
func NewSweepReport(d *SweepData) *Report {
	return &Report{Sweep: d}
}

// page assembles the chart page of the report.
func (r *Report) page() *components.Page {
	page := components.NewPage()
	if r.Analytic != nil {
		page.AddCharts(newAnalyticChart(r.Analytic))
	}
	if r.LogNormal != nil {
		page.AddCharts(newHistogramChart(r.LogNormal))
	}
	if r.Sweep != nil {
		page.AddCharts(newSweepChart(r.Sweep))
	}
	return page
}

// WriteHTML renders the report into a standalone HTML file.
func (r *Report) WriteHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.page().Render(f)
}

// FireUpWeb fires up a new web-server for report visualisation.
func (r *Report) FireUpWeb(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		r.page().Render(w)
	})
	return http.ListenAndServe(":"+port, mux)
}
