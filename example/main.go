// File: params/example/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/averin/params"
)

type solverConfig struct {
	Grid struct {
		Size    int64   `param:"size"`
		Spacing float64 `param:"spacing"`
	} `param:"grid"`
	Tolerance float64       `param:"tolerance"`
	Timeout   time.Duration `param:"timeout"`
	Verbose   bool          `param:"verbose"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	b := params.NewBuilder("example solver parameters")
	params.With[int64](b, "grid.size", "grid points per dimension", 64)
	params.With[float64](b, "grid.spacing", "grid spacing", 0.5)
	params.With[float64](b, "tolerance,tol", "convergence tolerance", 1e-9)
	params.With[string](b, "timeout", "solver wall-clock budget", "30s")
	params.With[bool](b, "verbose,v", "verbose output", false)

	p, help, err := b.Build()
	if err != nil {
		logger.Error("parameter setup failed", "error", err)
		os.Exit(1)
	}
	if help {
		p.Help(os.Stdout)
		return
	}

	var cfg solverConfig
	if err := p.Scan(&cfg); err != nil {
		logger.Error("parameter scan failed", "error", err)
		os.Exit(1)
	}

	logger.Info("resolved parameters",
		"grid.size", cfg.Grid.Size,
		"grid.spacing", cfg.Grid.Spacing,
		"tolerance", cfg.Tolerance,
		"timeout", cfg.Timeout,
		"verbose", cfg.Verbose,
	)

	p.Print(os.Stdout)
}
