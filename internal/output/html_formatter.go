package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/incomehelper/salary-projector/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with the summary,
// the per-year table and the statistics table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"amt":  FormatAmount,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
