package main

import (
	"fmt"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/katalvlaran/colloc/internal/config"
	"github.com/katalvlaran/colloc/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [problem...]",
		Short: "Solve problems by collocation and compare with the exact solution",
		Long: `Builds the collocation system on equispaced nodes, solves it once with a
dense LU solver and prints the approximation next to the exact solution.
Without arguments every built-in problem is solved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := problemsFor(args)
			if err != nil {
				return err
			}
			return a.runSolve(cmd, problems)
		},
	}

	f := cmd.Flags()
	f.Bool("chart", config.Defaults.Chart.Enabled, "draw an ASCII chart (table format only)")
	f.Int("width", config.Defaults.Chart.Width, "chart width in columns")
	f.Int("height", config.Defaults.Chart.Height, "chart height in rows")
	bindFlags(a.v, f, map[string]string{
		"chart":  "chart.enabled",
		"width":  "chart.width",
		"height": "chart.height",
	})

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, problems []bvp.Problem) error {
	out := cmd.OutOrStdout()
	opts := a.solverOptions()
	reports := make([]report.ProblemReport, 0, len(problems))

	for _, p := range problems {
		sol, err := bvp.Solve(p, a.conf.Nodes, opts...)
		if err != nil {
			return err
		}
		r, err := report.FromSolution(sol)
		if err != nil {
			return err
		}
		fields := []zap.Field{
			zap.String("problem", p.Name),
			zap.Int("nodes", sol.N()),
			zap.String("backend", a.conf.Backend),
			zap.Float64("midpoint_residual", r.Residual),
		}
		if r.Metrics != nil {
			fields = append(fields, zap.Float64("max_abs_error", r.Metrics.MaxAbs))
		}
		a.logger.Info("solved", fields...)

		if a.conf.Format != config.FormatTable {
			reports = append(reports, r)
			continue
		}
		fmt.Fprintln(out, report.Table(r))
		if a.conf.Chart.Enabled {
			chart, err := report.Chart(sol, a.conf.Chart.Width, a.conf.Chart.Height)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, chart)
		}
	}

	if a.conf.Format == config.FormatTable {
		return nil
	}
	data, err := report.Marshal(map[string]any{"problems": reports}, a.conf.Format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)

	return err
}
