// Command colloc solves linear second-order boundary-value problems by
// polynomial collocation and compares the result with the exact solution.
//
// Usage:
//
//	colloc problems
//	colloc solve [a|b ...] [--nodes 8] [--backend native|gonum] [--format table|yaml|json]
//	colloc converge [b] [--from 4 --to 16 --step 2]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/katalvlaran/colloc/internal/config"
	"github.com/katalvlaran/colloc/internal/gonumlu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand.
type app struct {
	v          *viper.Viper
	configFile string
	conf       *config.TopLevel
	logger     *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "colloc",
		Short: "Polynomial collocation for linear second-order BVPs",
		Long: `colloc approximates the solution of P·y'' + Q·y' + R·y = F(t) with
boundary conditions y(a) = ya, y(b) = yb by a polynomial that satisfies
both boundary conditions and the equation at every interior node.

Two reference problems with closed-form solutions are built in; see
"colloc problems".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.conf = conf

			if a.logger == nil {
				zc := zap.NewProductionConfig()
				if conf.Verbose {
					zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				a.logger, err = zc.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			a.logger.Debug("configuration loaded", zap.Any("config", conf))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML configuration file")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.IntP("nodes", "n", config.Defaults.Nodes, "number of collocation nodes")
	pf.String("backend", config.Defaults.Backend, "linear solver backend: native|gonum")
	pf.StringP("format", "o", config.Defaults.Format, "output format: table|yaml|json")
	bindFlags(a.v, pf, map[string]string{
		"verbose": "verbose",
		"nodes":   "nodes",
		"backend": "backend",
		"format":  "format",
	})

	root.AddCommand(
		newProblemsCmd(a),
		newSolveCmd(a),
		newConvergeCmd(a),
	)

	return root
}

// solverOptions maps the configuration onto bvp options.
func (a *app) solverOptions() []bvp.Option {
	opts := []bvp.Option{bvp.WithLogger(a.logger)}
	if a.conf.Backend == config.BackendGonum {
		opts = append(opts, bvp.WithSolver(gonumlu.Solver{}))
	}

	return opts
}

// problemsFor resolves names to catalog problems; no names means all.
func problemsFor(names []string) ([]bvp.Problem, error) {
	if len(names) == 0 {
		return bvp.Catalog(), nil
	}
	out := make([]bvp.Problem, 0, len(names))
	for _, name := range names {
		p, err := bvp.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func main() {
	a := &app{v: config.New()}
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		if a.logger != nil {
			a.logger.Error("colloc failed", zap.Error(err))
			_ = a.logger.Sync()
		}
		os.Exit(1)
	}
}
