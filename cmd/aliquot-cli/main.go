package main

import (
	"fmt"
	"os"

	"github.com/ecostat/aliquot/cmd/aliquot-cli/estimator"
	"github.com/urfave/cli/v2"
)

// initAliquotApp initializes the aliquot-cli app. This function is
// called by the main function and unit tests.
func initAliquotApp() *cli.App {
	return &cli.App{
		Name:     "Aliquot Composite-Sampling Analyzer",
		HelpName: "aliquot",
		Flags:    []cli.Flag{},
		Commands: []*cli.Command{
			&estimator.AnalyticCommand,
			&estimator.LogNormalCommand,
			&estimator.SweepCommand,
		},
	}
}

// main implements the "aliquot" cli application.
func main() {
	app := initAliquotApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
