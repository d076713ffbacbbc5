package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salaryproj",
	Short: "Multi-year salary, tax and investment projection",
	Long: `Salaryproj projects an individual's salary, taxes and investments
forward over a multi-year horizon under a progressive slab tax regime.

It provides tools for:
  - Progressive income tax computation with cess and standard deduction
  - Year-over-year salary and investment growth with hard caps
  - Compound portfolio tracking with annual returns
  - Reports in text, CSV, HTML and JSON formats
  - Summary analytics: CAGR, milestones and per-field statistics`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
