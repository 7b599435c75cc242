package estimator

import (
	"github.com/ecostat/aliquot/logger"
	"github.com/ecostat/aliquot/sampling"
	"github.com/ecostat/aliquot/sampling/visualizer"
	"github.com/ecostat/aliquot/utils"
	"github.com/urfave/cli/v2"
)

// SweepCommand data structure for the diminishing-returns estimator app.
var SweepCommand = cli.Command{
	Action: sweepAction,
	Name:   "sweep",
	Usage:  "simulates composite-sample accuracy for every aliquot count of the sweep",
	Flags: []cli.Flag{
		&utils.TrueMeanFlag,
		&utils.TrueStdFlag,
		&utils.MaxAliquotsFlag,
		&utils.SimulationsFlag,
		&utils.ErrorMarginFlag,
		&utils.SeedFlag,
		&utils.PortFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sweep command runs --simulations normal-model trials for every variability
scenario and every aliquot count up to --max-aliquots, and charts the
empirical accuracy per aliquot count. The flattening of the curves shows the
diminishing returns of pooling additional aliquots.`,
}

// sweepAction implements the normal Monte Carlo diminishing-returns estimator.
func sweepAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "AliquotSweep")

	cfg := sampling.SweepConfig{
		TrueMean:       ctx.Float64(utils.TrueMeanFlag.Name),
		TrueStd:        ctx.Float64(utils.TrueStdFlag.Name),
		MaxAliquots:    ctx.Int(utils.MaxAliquotsFlag.Name),
		Simulations:    ctx.Int(utils.SimulationsFlag.Name),
		ErrorMarginPct: ctx.Float64(utils.ErrorMarginFlag.Name),
		Src:            utils.RandSource(ctx.Uint64(utils.SeedFlag.Name)),
	}

	log.Infof("Simulate %v trials for every aliquot count 1..%v", cfg.Simulations, cfg.MaxAliquots)
	curves, err := cfg.Run(sampling.DefaultScenarios())
	if err != nil {
		return err
	}

	printCurveTable(curves)
	for _, c := range curves {
		if c.Scenario.Factor == 1.0 {
			headline("accuracy at n=%d: %.2f%% of trials within ±%.1f%%",
				cfg.MaxAliquots, c.Values[len(c.Values)-1], cfg.ErrorMarginPct)
		}
	}

	return show(ctx, log, visualizer.NewSweepReport(&visualizer.SweepData{Curves: curves}))
}
