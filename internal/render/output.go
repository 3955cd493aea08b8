package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"kctx-cli/internal/config"
)

// OutputData writes data to w in the requested structured format. The
// human-readable table format is handled by WriteContextList; this covers
// the machine-readable ones.
func OutputData(w io.Writer, data interface{}, format string) error {
	switch strings.ToLower(format) {
	case config.OutputFormatJSON:
		return outputJSON(w, data)
	case config.OutputFormatYAML:
		return outputYAML(w, data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func outputJSON(w io.Writer, data interface{}) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(w, string(output))
	return nil
}

func outputYAML(w io.Writer, data interface{}) error {
	output, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	fmt.Fprint(w, string(output))
	return nil
}
