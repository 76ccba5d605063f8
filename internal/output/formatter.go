package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rgehrsitz/wonpay/internal/domain"
)

// Formatter renders a report into bytes.
type Formatter interface {
	Name() string
	Format(report *domain.Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{}

// Register adds f to the registry, replacing any formatter with the same name.
func Register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	Register(ConsoleFormatter{})
	Register(JSONFormatter{})
	Register(CSVFormatter{})
	Register(HTMLFormatter{})
	Register(XLSXFormatter{})
	Register(PDFFormatter{})
}

// GetFormatterByName returns the registered formatter or nil.
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// FormatterNames lists the registered formatter names in sorted order.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Extension returns the file extension for a formatter name.
func Extension(name string) string {
	switch name {
	case "console":
		return "txt"
	default:
		return name
	}
}

// ContentType returns the MIME type for a formatter name.
func ContentType(name string) string {
	switch name {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// WriteFormatted renders report with f into a timestamped file in dir and
// returns the file path.
func WriteFormatted(f Formatter, report *domain.Report, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	name := filepath.Join(dir, fmt.Sprintf("wonpay_report_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(name, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return name, nil
}
