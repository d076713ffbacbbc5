package calculation

import (
	"github.com/incomehelper/salary-projector/internal/domain"
)

// ProjectionEngine orchestrates a multi-year salary and investment
// projection. The engine holds no per-run state: RunProjection threads
// an explicit running state through the year fold, so one engine may
// serve concurrent independent runs.
type ProjectionEngine struct {
	TaxCalc *SlabTaxCalculator
	Logger  Logger
}

// NewProjectionEngine creates an engine with the default tax config.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		TaxCalc: NewSlabTaxCalculator(),
		Logger:  NopLogger{},
	}
}

// NewProjectionEngineWithConfig creates an engine with a custom tax
// config, validating it first.
func NewProjectionEngineWithConfig(cfg domain.TaxConfig) (*ProjectionEngine, error) {
	taxCalc, err := NewSlabTaxCalculatorWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &ProjectionEngine{TaxCalc: taxCalc, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger for the engine. If nil is provided, a
// no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Run executes a projection and bundles the records with their derived
// summary into a ProjectionResult for the report formatters.
func (pe *ProjectionEngine) Run(assumptions domain.ProjectionAssumptions) (*domain.ProjectionResult, error) {
	records, err := pe.RunProjection(assumptions)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectionResult{
		Assumptions: assumptions,
		Records:     records,
		Summary:     Summarize(records),
	}, nil
}
