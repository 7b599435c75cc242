package estimator

import (
	"github.com/ecostat/aliquot/logger"
	"github.com/ecostat/aliquot/sampling"
	"github.com/ecostat/aliquot/sampling/visualizer"
	"github.com/ecostat/aliquot/utils"
	"github.com/urfave/cli/v2"
)

// AnalyticCommand data structure for the analytic estimator app.
var AnalyticCommand = cli.Command{
	Action: analyticAction,
	Name:   "analytic",
	Usage:  "computes closed-form margin-of-error curves over the aliquot sweep",
	Flags: []cli.Flag{
		&utils.TrueMeanFlag,
		&utils.TrueStdFlag,
		&utils.MaxAliquotsFlag,
		&utils.AliquotsFlag,
		&utils.ConfidenceFlag,
		&utils.CostTableFlag,
		&utils.PortFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The analytic command computes the margin of error of a composite sample as a
percentage of the true mean, for four variability scenarios and every aliquot
count up to --max-aliquots. With --cost-table it overlays the per-aliquot
price curve on a secondary axis.`,
}

// analyticAction implements the analytic margin-of-error estimator.
func analyticAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "AliquotAnalytic")

	cfg := sampling.AnalyticConfig{
		TrueMean:    ctx.Float64(utils.TrueMeanFlag.Name),
		TrueStd:     ctx.Float64(utils.TrueStdFlag.Name),
		MaxAliquots: ctx.Int(utils.MaxAliquotsFlag.Name),
		Confidence:  ctx.Float64(utils.ConfidenceFlag.Name),
	}
	reference := ctx.Int(utils.AliquotsFlag.Name)

	log.Infof("Compute margin-of-error curves for 1..%v aliquots", cfg.MaxAliquots)
	curves, err := cfg.PercentDiffCurves(sampling.DefaultScenarios())
	if err != nil {
		return err
	}

	var costs sampling.CostTable
	if source := ctx.String(utils.CostTableFlag.Name); source != "" {
		log.Infof("Load cost table from %v", source)
		costs, err = sampling.LoadCostTable(source)
		if err != nil {
			return err
		}
	}

	printCurveTable(curves)
	for _, c := range curves {
		if c.Scenario.Factor == 1.0 && reference >= 1 && reference <= len(c.Values) {
			headline("margin of error at n=%d: %.2f%% of the true mean", reference, c.Values[reference-1])
		}
	}

	return show(ctx, log, visualizer.NewAnalyticReport(&visualizer.AnalyticData{
		Curves:            curves,
		Costs:             costs,
		ReferenceAliquots: reference,
		Confidence:        cfg.Confidence,
	}))
}
