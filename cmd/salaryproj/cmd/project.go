package cmd

import (
	"fmt"
	"os"

	"github.com/incomehelper/salary-projector/internal/calculation"
	"github.com/incomehelper/salary-projector/internal/config"
	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/incomehelper/salary-projector/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	configFile string
	formats    []string
	verbose    bool

	flagGross           float64
	flagYears           int
	flagInvestMonthly   float64
	flagInvestHikePct   float64
	flagReturnPct       float64
	flagOtherDeductions float64
	flagSalaryHikePct   float64
	flagSalaryCap       float64
	flagInvestCap       float64
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a salary and investment projection",
	Long: `Run a multi-year projection from a YAML configuration file or from
the raw assumption flags. Hike and return flags are entered in percent
(e.g. --expected-return 12 for 12%) and converted to fractions at this
boundary; configuration files use fractions directly.`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML configuration file (overrides raw flags)")
	projectCmd.Flags().StringSliceVarP(&formats, "format", "f", []string{"console"}, "report formats: console, text, csv, html, json")
	projectCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable per-year debug logging")

	projectCmd.Flags().Float64Var(&flagGross, "gross", 0, "current yearly gross salary")
	projectCmd.Flags().IntVar(&flagYears, "years", 10, "number of years to project")
	projectCmd.Flags().Float64Var(&flagInvestMonthly, "monthly-investment", 0, "current monthly investment")
	projectCmd.Flags().Float64Var(&flagInvestHikePct, "invest-hike", 10, "expected yearly increase in investment (percent)")
	projectCmd.Flags().Float64Var(&flagReturnPct, "expected-return", 12, "expected annual portfolio return (percent)")
	projectCmd.Flags().Float64Var(&flagOtherDeductions, "other-deductions", 0, "other fixed deductions per month")
	projectCmd.Flags().Float64Var(&flagSalaryHikePct, "salary-hike", 5, "expected yearly salary hike (percent)")
	projectCmd.Flags().Float64Var(&flagSalaryCap, "salary-cap", 5000000, "yearly salary ceiling (0 for none)")
	projectCmd.Flags().Float64Var(&flagInvestCap, "invest-cap", 100000, "monthly investment ceiling (0 for none)")

	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	var (
		assumptions domain.ProjectionAssumptions
		taxConfig   *domain.TaxConfig
	)

	if configFile != "" {
		cfg, err := config.NewInputParser().LoadFromFile(configFile)
		if err != nil {
			return err
		}
		assumptions = cfg.Assumptions
		taxConfig = cfg.Tax
	} else {
		if flagGross <= 0 {
			return fmt.Errorf("%w: --gross must be positive (or use --config)", domain.ErrInvalidInput)
		}
		assumptions = assumptionsFromFlags()
	}

	engine := calculation.NewProjectionEngine()
	if taxConfig != nil {
		var err error
		engine, err = calculation.NewProjectionEngineWithConfig(*taxConfig)
		if err != nil {
			return err
		}
	}
	if verbose {
		engine.SetLogger(stderrLogger{})
	}

	result, err := engine.Run(assumptions)
	if err != nil {
		return err
	}

	for _, format := range formats {
		if output.NormalizeFormatName(format) == "console" {
			data, err := output.ConsoleFormatter{}.Format(result)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(data)
			continue
		}
		filename, err := output.GenerateReport(result, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", filename)
	}
	return nil
}

// assumptionsFromFlags converts the percent-unit flags to fractions.
// This is the only place percentages enter the system.
func assumptionsFromFlags() domain.ProjectionAssumptions {
	pct := func(p float64) decimal.Decimal {
		return decimal.NewFromFloat(p).Div(decimal.NewFromInt(100))
	}
	return domain.ProjectionAssumptions{
		StartingGrossYearly:       decimal.NewFromFloat(flagGross),
		HorizonYears:              flagYears,
		StartingMonthlyInvestment: decimal.NewFromFloat(flagInvestMonthly),
		InvestmentHikeRate:        pct(flagInvestHikePct),
		ExpectedAnnualReturn:      pct(flagReturnPct),
		OtherMonthlyDeductions:    decimal.NewFromFloat(flagOtherDeductions),
		SalaryHikeRate:            pct(flagSalaryHikePct),
		SalaryCap:                 decimal.NewFromFloat(flagSalaryCap),
		MonthlyInvestmentCap:      decimal.NewFromFloat(flagInvestCap),
	}
}

// stderrLogger routes engine debug output to stderr when --verbose.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
}
func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}
