package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/averch/qhobound"
	"github.com/averch/qhobound/bigfloat"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var (
	sweepMaxP   int
	sweepTau    string
	sweepDigits uint
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate L(p, tau) over p and fit its growth",
	Long: `Computes the lower bound for every half-width p = 1..max-p at a fixed
sampling interval, prints the table, and fits L(p) ≈ α + β·ln(p) by least
squares. The asymptotic behavior as p grows has no known closed form; the
fit is an empirical probe, not an asserted invariant.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&sweepMaxP, "max-p", 20, "Largest half-width to evaluate")
	sweepCmd.Flags().StringVar(&sweepTau, "tau", "0.01", "Sampling interval (> 0)")
	sweepCmd.Flags().UintVar(&sweepDigits, "digits", qhobound.DefaultDigits, "Decimal working precision")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepMaxP < 1 {
		return fmt.Errorf("sweep: --max-p must be at least 1, got %d", sweepMaxP)
	}
	ctx := bigfloat.NewContext(sweepDigits)
	tau, err := ctx.Parse(sweepTau)
	if err != nil {
		return fmt.Errorf("parsing --tau: %w", err)
	}

	logP := make([]float64, 0, sweepMaxP)
	bounds := make([]float64, 0, sweepMaxP)
	for p := 1; p <= sweepMaxP; p++ {
		l, err := qhobound.LowerBound(p, tau, sweepDigits)
		if err != nil {
			return fmt.Errorf("computing bound at p=%d: %w", p, err)
		}
		f, _ := l.Float64()
		logP = append(logP, math.Log(float64(p)))
		bounds = append(bounds, f)
		fmt.Printf("p=%-4d L=%.12g\n", p, f)
		slog.Debug("sweep step", "p", p, "L", f)
	}

	alpha, beta := stat.LinearRegression(logP, bounds, nil, false)
	fmt.Printf("\nfit over p=1..%d at tau=%s: L ≈ %.6g + %.6g·ln(p)\n", sweepMaxP, sweepTau, alpha, beta)
	return nil
}
