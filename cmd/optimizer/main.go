// The optimizer command reads a shopping-list configuration and a scraped
// price snapshot, solves for the cheapest way to buy everything, and writes
// the purchasing plan.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/deckforge/card-order-optimizer/internal/config"
	"github.com/deckforge/card-order-optimizer/internal/logging"
	"github.com/deckforge/card-order-optimizer/internal/optimizer"
	"github.com/deckforge/card-order-optimizer/internal/pricing"
	"github.com/deckforge/card-order-optimizer/internal/report"
	"github.com/deckforge/card-order-optimizer/pkg/core"
	"github.com/deckforge/card-order-optimizer/pkg/solver"
)

const envPrefix = "OPTIMIZER"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "optimizer",
		Short:         "Allocate a card shopping list across vendors at minimum total cost",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	cmd.Flags().StringP("config", "c", "config.yaml", "path to the YAML configuration")
	cmd.Flags().StringP("prices", "p", "", "path to the scraped price data JSON (overrides price_data_file)")
	cmd.Flags().StringP("output", "o", "", "path for the results file (overrides results_file)")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging and solver output")

	bindFlags(v, cmd.Flags())
	return cmd
}

// bindFlags layers environment variables (OPTIMIZER_CONFIG, ...) under
// command-line flags, flags winning.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", f.Name, err))
		}
	})
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	verbose := v.GetBool("verbose")
	log := logging.NewLogger(verbose)
	ctx := logging.IntoContext(cmd.Context(), log)

	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return err
	}

	pricesPath := v.GetString("prices")
	if pricesPath == "" {
		pricesPath = cfg.PriceDataFile
	}
	if pricesPath == "" {
		return fmt.Errorf("no price data: set price_data_file in the config or pass --prices")
	}
	output := v.GetString("output")
	if output == "" {
		output = cfg.ResultsFile
	}

	items, err := cfg.Items()
	if err != nil {
		return err
	}

	problem, avail, err := pricing.BuildProblem(ctx, pricing.NewFileSource(pricesPath), pricing.Inputs{
		Items:         items,
		Vendors:       cfg.VendorList(),
		Tags:          cfg.TagMap(),
		VendorPenalty: cfg.VendorPenalty,
		MinOptional:   cfg.MinOptionalCards,
	})
	if err != nil {
		return err
	}

	timeLimit, err := cfg.Solver.TimeLimitDuration()
	if err != nil {
		return err
	}
	backend := solver.NewHiGHS(
		solver.WithTimeLimit(timeLimit),
		solver.WithMIPGap(cfg.Solver.MIPGap),
		solver.WithVerbose(verbose || cfg.Solver.Verbose),
	)

	opt, err := optimizer.New(backend,
		optimizer.WithLogger(log),
		optimizer.WithRegisterer(prometheus.DefaultRegisterer),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Solving optimisation problem...")
	res, err := opt.Optimize(ctx, problem)
	if err != nil {
		var infeasible *core.InfeasibleError
		if errors.As(err, &infeasible) {
			fmt.Fprintf(cmd.ErrOrStderr(), "No feasible purchasing plan exists.\nDiagnosis: %s\n", infeasible.Diagnosis)
		}
		return err
	}

	if err := report.WriteFile(output, res, avail); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", output)
	fmt.Fprintf(cmd.OutOrStdout(), "Total cost: $%.2f across %d vendor(s)\n", res.Total, res.ActiveVendors())
	if len(res.SkippedOptional) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Optional cards not purchased: %d\n", len(res.SkippedOptional))
	}
	return nil
}
