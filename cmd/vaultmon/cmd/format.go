package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// render data in a structured format, or as text with a custom writer
func render(w io.Writer, format string, data interface{}, text func(io.Writer) error) error {
	switch format {
	case formatYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case formatText, formatTable:
		return text(w)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
