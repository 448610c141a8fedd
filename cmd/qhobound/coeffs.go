package main

import (
	"fmt"

	"github.com/averch/qhobound"
	"github.com/averch/qhobound/expr"
	"github.com/spf13/cobra"
)

var (
	coeffsP     int
	coeffsLatex bool
)

var coeffsCmd = &cobra.Command{
	Use:   "coeffs",
	Short: "Print the finite-difference stencil coefficients",
	Long: `Prints the 2p+1 exact central finite-difference coefficients for the
second derivative, ordered from offset -p to +p.`,
	RunE: runCoeffs,
}

func init() {
	coeffsCmd.Flags().IntVar(&coeffsP, "p", 1, "Stencil half-width (p >= 1)")
	coeffsCmd.Flags().BoolVar(&coeffsLatex, "latex", false, "Render coefficients as LaTeX")
	rootCmd.AddCommand(coeffsCmd)
}

func runCoeffs(cmd *cobra.Command, args []string) error {
	c, err := qhobound.Coefficients(coeffsP)
	if err != nil {
		return fmt.Errorf("computing coefficients: %w", err)
	}
	for k, v := range c {
		if coeffsLatex {
			fmt.Printf("c[%+d] = %s\n", k-coeffsP, expr.FromRat(v).LaTeX())
		} else {
			fmt.Printf("c[%+d] = %s\n", k-coeffsP, v.RatString())
		}
	}
	return nil
}
