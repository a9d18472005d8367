package tables

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the encoding used by Export
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportTOML ExportFormat = "toml"
)

// ParseExportFormat validates a user-supplied format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportJSON, ExportYAML, ExportTOML:
		return f, nil
	case "yml":
		return ExportYAML, nil
	default:
		return "", fmt.Errorf("unknown table format %q (want json, yaml or toml)", s)
	}
}

// Document is the serialized form of the effective tables. Its key names match
// the table files, so an exported document can be split back into data files.
type Document struct {
	IgnoreTokens        []string            `json:"ignoreTokens" yaml:"ignoreTokens" toml:"ignoreTokens"`
	DangerousExtensions []string            `json:"dangerousExtensions" yaml:"dangerousExtensions" toml:"dangerousExtensions"`
	FileTypes           map[string][]string `json:"fileTypes" yaml:"fileTypes" toml:"fileTypes"`
	Sources             map[string]string   `json:"sources" yaml:"sources" toml:"sources"`
}

// Document builds the serializable view of t
func (t *Tables) Document() Document {
	return Document{
		IgnoreTokens:        t.StopWords.Sorted(),
		DangerousExtensions: t.Dangerous.Sorted(),
		FileTypes:           t.Categories.Mapping(),
		Sources: map[string]string{
			StopWordsName:  t.StopWordsSource.String(),
			CategoriesName: t.CategoriesSource.String(),
			DangerousName:  t.DangerousSource.String(),
		},
	}
}

// Export writes the tables to w in the given format
func (t *Tables) Export(w io.Writer, format ExportFormat) error {
	doc := t.Document()

	switch format {
	case ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case ExportTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
