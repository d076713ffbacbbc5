package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/incomehelper/salary-projector/internal/domain"
)

// ErrUnsupportedFormat marks a report format name with no registered
// formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// extensionFor maps formatter names to file extensions.
func extensionFor(name string) string {
	switch name {
	case "text", "console":
		return "txt"
	default:
		return name
	}
}

// GenerateReport runs the named formatter and writes a timestamped
// report file, returning the filename.
func GenerateReport(result *domain.ProjectionResult, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, result, extensionFor(f.Name()))
}

// GenerateReports runs several formatters, stopping at the first
// failure, and returns the written filenames.
func GenerateReports(result *domain.ProjectionResult, formats []string) ([]string, error) {
	files := make([]string, 0, len(formats))
	for _, format := range formats {
		name, err := GenerateReport(result, format)
		if err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}
