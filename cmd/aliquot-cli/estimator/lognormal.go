package estimator

import (
	"github.com/ecostat/aliquot/logger"
	"github.com/ecostat/aliquot/sampling"
	"github.com/ecostat/aliquot/sampling/visualizer"
	"github.com/ecostat/aliquot/utils"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat"
)

// histogramBins is the bin count of the composite-mean histogram.
const histogramBins = 40

// LogNormalCommand data structure for the log-normal estimator app.
var LogNormalCommand = cli.Command{
	Action: logNormalAction,
	Name:   "lognormal",
	Usage:  "simulates composite samples from a fitted log-normal distribution",
	Flags: []cli.Flag{
		&utils.TrueMeanFlag,
		&utils.TrueStdFlag,
		&utils.AliquotsFlag,
		&utils.SimulationsFlag,
		&utils.ErrorMarginFlag,
		&utils.SeedFlag,
		&utils.PortFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The lognormal command fits a log-normal distribution to the true mean and
standard deviation by moment matching, simulates --simulations composite
samples of --aliquots draws each, and reports how often the composite mean
lands within ±--error-margin percent of the true mean.`,
}

// logNormalAction implements the log-normal Monte Carlo estimator.
func logNormalAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "AliquotLogNormal")

	cfg := sampling.LogNormalConfig{
		TrueMean:       ctx.Float64(utils.TrueMeanFlag.Name),
		TrueStd:        ctx.Float64(utils.TrueStdFlag.Name),
		Aliquots:       ctx.Int(utils.AliquotsFlag.Name),
		Simulations:    ctx.Int(utils.SimulationsFlag.Name),
		ErrorMarginPct: ctx.Float64(utils.ErrorMarginFlag.Name),
		Src:            utils.RandSource(ctx.Uint64(utils.SeedFlag.Name)),
	}

	log.Infof("Simulate %v composite samples of %v aliquots", cfg.Simulations, cfg.Aliquots)
	result, err := cfg.Run()
	if err != nil {
		return err
	}

	log.Infof("Fitted log-normal parameters: mu=%v sigma=%v", result.MuLog, result.SigmaLog)
	log.Infof("Composite means: mean=%v std=%v",
		stat.Mean(result.Means, nil), stat.StdDev(result.Means, nil))
	headline("accuracy: %.2f%% of composite means within [%.6g, %.6g]",
		result.Accuracy, result.LowerBound, result.UpperBound)

	return show(ctx, log, visualizer.NewLogNormalReport(&visualizer.LogNormalData{
		Bins:       visualizer.BinMeans(result.Means, histogramBins),
		Accuracy:   result.Accuracy,
		LowerBound: result.LowerBound,
		UpperBound: result.UpperBound,
		Aliquots:   cfg.Aliquots,
	}))
}
