package output

import (
	"encoding/json"

	"github.com/incomehelper/salary-projector/internal/domain"
)

// JSONFormatter emits the full projection result as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
