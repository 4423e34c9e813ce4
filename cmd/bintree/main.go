// Command bintree demonstrates, measures and checks the trees of this module.
package main

import (
	"os"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"
)

type demoCmd struct {
	Tab string `arg:"--tab" default:"--" help:"indentation of the pretty form"`
}

type measureCmd struct {
	Count int  `arg:"--count" default:"100000" help:"number of values per run"`
	Steps uint `arg:"--steps" default:"10" help:"number of runs, each removing a larger share of the values"`
}

type checkCmd struct {
	Count       int   `arg:"--count" default:"10000" help:"number of random operations"`
	Seed        int64 `arg:"--seed,env:BINTREE_SEED" default:"0" help:"seed of the workload"`
	Range       int   `arg:"--range" default:"1000" help:"values are drawn from [0,range)"`
	NoRebalance bool  `arg:"--no-rebalance" help:"skip AVL rebalancing and only check order and heights"`
}

type args struct {
	Demo    *demoCmd    `arg:"subcommand:demo" help:"print the sample trees and traversals"`
	Measure *measureCmd `arg:"subcommand:measure" help:"time insertion and removal workloads"`
	Check   *checkCmd   `arg:"subcommand:check" help:"run a random workload verifying the invariants"`
	Verbose bool        `arg:"-v,--verbose" help:"development logging"`
}

func (args) Description() string {
	return "bintree exercises the BinTree, TreeSet and TreeMap packages.\n"
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	var a args
	p := arg.MustParse(&a)
	logger, err := newLogger(a.Verbose)
	if err != nil {
		p.Fail(err.Error())
	}
	defer logger.Sync()
	if err := mainErr(a, logger); err != nil {
		logger.Error("fatal error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func mainErr(a args, logger *zap.Logger) error {
	switch {
	case a.Demo != nil:
		return demo(os.Stdout, a.Demo.Tab)
	case a.Measure != nil:
		return measure(logger, a.Measure.Count, a.Measure.Steps)
	case a.Check != nil:
		return check(logger, a.Check)
	default:
		return demo(os.Stdout, "--")
	}
}
