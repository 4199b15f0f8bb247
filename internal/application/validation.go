package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "inputPath" -> "input path")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "inputPath" -> "input path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"inputPath":   "input path",
		"outputPath":  "output path",
		"mappingPath": "mapping path",
		"format":      "format",
		"runID":       "run ID",
		"alignment":   "alignment",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	// Fallback: just return the field name as-is
	return fieldName
}

// ParseOutputFormat validates a format name, accepting any case.
// An empty value selects FormatText.
func ParseOutputFormat(fieldName, value string) (OutputFormat, error) {
	v := OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return FormatText, nil
	}
	for _, f := range OutputFormats {
		if f == v {
			return f, nil
		}
	}

	names := make([]string, len(OutputFormats))
	for i, f := range OutputFormats {
		names[i] = string(f)
	}
	return "", &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("unknown %s %q (expected one of: %s)", formatFieldName(fieldName), value, strings.Join(names, ", ")),
	}
}
