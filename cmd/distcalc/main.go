package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"distcalc/adapters/distribution"
	"distcalc/adapters/history"
	"distcalc/app"
	"distcalc/domain/dist"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "distcalc",
		Short: "Statistical distribution calculator: pdf/cdf evaluation for 16 distributions",
	}

	rootCmd.AddCommand(
		newListCmd(),
		newInfoCmd(),
		newCalcCmd(),
		newTableCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func historyCapacity() int {
	if raw := os.Getenv("DISTCALC_HISTORY_CAPACITY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return history.DefaultCapacity
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available distributions by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, category := range []dist.Category{dist.Continuous, dist.Discrete} {
				fmt.Printf("%s:\n", strings.ToUpper(string(category)[:1])+string(category)[1:])
				for _, entry := range distribution.ByCategory(category) {
					fmt.Printf("  %-18s params: %s\n", entry.Metadata.Name,
						strings.Join(entry.Metadata.ParamNames, ", "))
				}
			}
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [kind]",
		Short: "Show metadata for one distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dist.ParseKind(args[0])
			if err != nil {
				return err
			}
			meta, _ := distribution.Metadata(kind)

			out, err := json.MarshalIndent(meta, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func parseParams(raw []string) (dist.ParameterSet, error) {
	values := make([]float64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: %w", s, err)
		}
		values = append(values, v)
	}
	return dist.NewParameterSet(values...)
}

func newCalcCmd() *cobra.Command {
	var rawParams []string
	var x float64

	cmd := &cobra.Command{
		Use:   "calc [kind]",
		Short: "Evaluate pdf/pmf and cdf at one input value",
		Long: `Evaluate a distribution at a single point.

Example: distcalc calc binomial -p 10 -p 0.3 -x 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dist.ParseKind(args[0])
			if err != nil {
				return err
			}
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			service := app.NewCalculationService(history.NewMemoryRecorder(historyCapacity()))
			result := service.Calculate(cmd.Context(), dist.CalculationRequest{
				Kind:       kind,
				Parameters: params,
				InputValue: x,
			})
			if !result.Success {
				return fmt.Errorf("%s", result.Error)
			}

			fmt.Printf("PDF: %s\nCDF: %s\n", formatValue(result.PDF), formatValue(result.CDF))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "distribution parameter (repeat per slot, in order)")
	cmd.Flags().Float64VarP(&x, "input", "x", 0, "input value")
	_ = cmd.MarkFlagRequired("param")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newTableCmd() *cobra.Command {
	var rawParams []string
	var from, to float64
	var steps int

	cmd := &cobra.Command{
		Use:   "table [kind]",
		Short: "Evaluate pdf/cdf over a grid of input values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dist.ParseKind(args[0])
			if err != nil {
				return err
			}
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1, got %d", steps)
			}
			if to < from {
				return fmt.Errorf("invalid range [%g, %g]", from, to)
			}

			recorder := history.NewMemoryRecorder(steps + 1)
			service := app.NewCalculationService(recorder)

			// Rows are independent pure evaluations; fan them out and keep
			// the printed order deterministic.
			results := make([]dist.CalculationResult, steps+1)
			g, ctx := errgroup.WithContext(cmd.Context())
			step := (to - from) / float64(steps)

			for i := 0; i <= steps; i++ {
				i := i
				g.Go(func() error {
					x := from + float64(i)*step
					results[i] = service.Calculate(ctx, dist.CalculationRequest{
						Kind:       kind,
						Parameters: params,
						InputValue: x,
					})
					if !results[i].Success {
						return fmt.Errorf("x=%g: %s", x, results[i].Error)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Printf("%-14s %-14s %-14s\n", "x", "pdf", "cdf")
			for i, r := range results {
				fmt.Printf("%-14.6g %-14s %-14s\n", from+float64(i)*step, formatValue(r.PDF), formatValue(r.CDF))
			}

			summary, err := recorder.Summarize()
			if err != nil {
				return err
			}
			fmt.Printf("\n%d rows, mean pdf %.6g, mean cdf %.6g\n", summary.Count, summary.MeanPDF, summary.MeanCDF)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "distribution parameter (repeat per slot, in order)")
	cmd.Flags().Float64Var(&from, "from", 0, "grid start")
	cmd.Flags().Float64Var(&to, "to", 1, "grid end")
	cmd.Flags().IntVar(&steps, "steps", 20, "number of grid steps")
	_ = cmd.MarkFlagRequired("param")
	return cmd
}

// formatValue switches to scientific notation for very small or very large
// magnitudes, matching what a fixed display would otherwise round to zero.
func formatValue(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if (abs > 0 && abs < 0.0001) || abs >= 10000.0 {
		return strconv.FormatFloat(v, 'e', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
