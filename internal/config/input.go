package config

import (
	"fmt"
	"os"

	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the top-level input file: the projection
// assumptions plus an optional tax regime override. When tax is
// omitted the default slab table applies.
type Configuration struct {
	Assumptions domain.ProjectionAssumptions `yaml:"assumptions" json:"assumptions"`
	Tax         *domain.TaxConfig            `yaml:"tax,omitempty" json:"tax,omitempty"`
}

// Default growth guards applied when the input file omits them,
// mirroring the commonly used ceilings for this regime.
var (
	defaultSalaryHikeRate = decimal.NewFromFloat(0.05)
	defaultSalaryCap      = decimal.NewFromInt(5000000)
	defaultInvestCap      = decimal.NewFromInt(100000)
)

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file, fills defaults
// and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills omitted growth guards with their defaults. A
// salary hike left unset defaults to 5%; caps left unset default to
// the standard ceilings.
func (ip *InputParser) ApplyDefaults(config *Configuration) {
	a := &config.Assumptions
	if a.SalaryHikeRate.IsZero() {
		a.SalaryHikeRate = defaultSalaryHikeRate
	}
	if a.SalaryCap.IsZero() {
		a.SalaryCap = defaultSalaryCap
	}
	if a.MonthlyInvestmentCap.IsZero() {
		a.MonthlyInvestmentCap = defaultInvestCap
	}
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := config.Assumptions.Validate(); err != nil {
		return err
	}
	if config.Assumptions.HorizonYears > 100 {
		return fmt.Errorf("%w: horizon years must be at most 100, got %d", domain.ErrInvalidInput, config.Assumptions.HorizonYears)
	}
	if !config.Assumptions.StartingGrossYearly.IsPositive() {
		return fmt.Errorf("%w: starting gross yearly salary must be positive", domain.ErrInvalidInput)
	}
	if config.Tax != nil {
		if err := config.Tax.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	taxConfig := domain.DefaultTaxConfig()
	return &Configuration{
		Assumptions: domain.ProjectionAssumptions{
			StartingGrossYearly:       decimal.NewFromInt(1500000),
			HorizonYears:              10,
			StartingMonthlyInvestment: decimal.NewFromInt(50000),
			InvestmentHikeRate:        decimal.NewFromFloat(0.10),
			ExpectedAnnualReturn:      decimal.NewFromFloat(0.12),
			OtherMonthlyDeductions:    decimal.NewFromInt(5000),
			SalaryHikeRate:            defaultSalaryHikeRate,
			SalaryCap:                 defaultSalaryCap,
			MonthlyInvestmentCap:      defaultInvestCap,
		},
		Tax: &taxConfig,
	}
}

// exampleHeader documents the units used in the file.
const exampleHeader = `# Salary projection input.
# Monetary values are yearly/monthly rupee amounts; rates are fractions
# (0.12 means 12%). Omitted salary_hike_rate, salary_cap and
# monthly_investment_cap fall back to 5%, 5,000,000 and 100,000.
# The tax section may be removed to use the default slab table.
`

// WriteExampleConfiguration writes the example configuration as YAML.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	data = append([]byte(exampleHeader), data...)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
