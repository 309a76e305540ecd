package main

import (
	"fmt"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/katalvlaran/colloc/internal/config"
	"github.com/katalvlaran/colloc/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConvergeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "converge [problem]",
		Short: "Measure the nodal error over a range of node counts",
		Long: `Solves the problem once for every N in from..to (step) and reports the
maximum, mean and RMS nodal error against the exact solution. Defaults to
problem "b".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "b"
			if len(args) == 1 {
				name = args[0]
			}
			p, err := bvp.Lookup(name)
			if err != nil {
				return err
			}
			return a.runConverge(cmd, p)
		},
	}

	f := cmd.Flags()
	f.Int("from", config.Defaults.Converge.From, "smallest node count")
	f.Int("to", config.Defaults.Converge.To, "largest node count")
	f.Int("step", config.Defaults.Converge.Step, "node count increment")
	f.Int("workers", config.Defaults.Converge.Workers, "concurrent solves")
	bindFlags(a.v, f, map[string]string{
		"from":    "converge.from",
		"to":      "converge.to",
		"step":    "converge.step",
		"workers": "converge.workers",
	})

	return cmd
}

func (a *app) runConverge(cmd *cobra.Command, p bvp.Problem) error {
	c := a.conf.Converge
	ns := bvp.Range(c.From, c.To, c.Step)
	opts := append(a.solverOptions(), bvp.WithWorkers(c.Workers))

	points, err := bvp.Study(cmd.Context(), p, ns, opts...)
	if err != nil {
		return err
	}
	s := report.FromStudy(p.Name, points)
	a.logger.Info("convergence study",
		zap.String("problem", p.Name),
		zap.Int("sizes", len(points)),
		zap.Bool("monotone", s.Monotone),
	)

	out := cmd.OutOrStdout()
	if a.conf.Format == config.FormatTable {
		fmt.Fprintln(out, report.StudyTable(s))
		return nil
	}
	data, err := report.Marshal(s, a.conf.Format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)

	return err
}
