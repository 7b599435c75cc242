package utils

import (
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
)

// Command line flags of the aliquot estimators.
var (
	TrueMeanFlag = cli.Float64Flag{
		Name:  "true-mean",
		Usage: "true mean of the measured quantity",
		Value: 0.013,
	}
	TrueStdFlag = cli.Float64Flag{
		Name:  "true-std",
		Usage: "true standard deviation of a single aliquot",
		Value: 0.0026,
	}
	MaxAliquotsFlag = cli.IntFlag{
		Name:  "max-aliquots",
		Usage: "upper bound of the aliquot sweep",
		Value: 20,
	}
	AliquotsFlag = cli.IntFlag{
		Name:  "aliquots",
		Usage: "number of aliquots pooled into one composite sample",
		Value: 9,
	}
	SimulationsFlag = cli.IntFlag{
		Name:  "simulations",
		Usage: "number of simulated composite samples",
		Value: 10_000,
	}
	ErrorMarginFlag = cli.Float64Flag{
		Name:  "error-margin",
		Usage: "acceptable deviation from the true mean in percent",
		Value: 10,
	}
	ConfidenceFlag = cli.Float64Flag{
		Name:  "confidence",
		Usage: "two-sided confidence level of the margin of error",
		Value: 0.95,
	}
	CostTableFlag = cli.StringFlag{
		Name:  "cost-table",
		Usage: "URL or path of the cost table (CSV over http(s), .csv file, or sqlite database)",
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random generator; 0 seeds from the clock",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "write the chart report to this HTML file instead of serving it",
	}
)

// RandSource creates a random source for the Monte Carlo estimators.
// A zero seed falls back to the clock; runs are then non-reproducible.
func RandSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}
