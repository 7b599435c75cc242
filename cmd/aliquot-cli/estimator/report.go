package estimator

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ecostat/aliquot/sampling"
	"github.com/ecostat/aliquot/sampling/visualizer"
	"github.com/ecostat/aliquot/utils"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// printCurveTable prints the result curves as a console table with one
// row per aliquot count and one column per scenario.
func printCurveTable(curves []sampling.Curve) {
	if len(curves) == 0 {
		return
	}
	tbl := tablewriter.NewWriter(os.Stdout)
	header := []string{"Aliquots"}
	for _, c := range curves {
		header = append(header, c.Scenario.Label)
	}
	tbl.SetHeader(header)
	tbl.SetBorder(true)
	for i := range curves[0].Values {
		row := []string{strconv.Itoa(i + 1)}
		for _, c := range curves {
			row = append(row, fmt.Sprintf("%.4f", c.Values[i]))
		}
		tbl.Append(row)
	}
	tbl.Render()
}

// headline prints the highlighted result line of a command.
func headline(format string, args ...interface{}) {
	bold := color.New(color.FgGreen, color.Bold).SprintfFunc()
	fmt.Println(bold(format, args...))
}

// show serves the report on the configured port or, when an output file
// is given, writes it as a standalone HTML report.
func show(ctx *cli.Context, log *logging.Logger, report *visualizer.Report) error {
	if out := ctx.Path(utils.OutputFlag.Name); out != "" {
		log.Noticef("Write report %v", out)
		return report.WriteHTML(out)
	}
	port := ctx.String(utils.PortFlag.Name)
	if port == "" {
		port = "8080"
	}
	log.Noticef("Open web browser with http://localhost:%v", port)
	log.Notice("Cancel visualization with ^C")
	return report.FireUpWeb(port)
}
