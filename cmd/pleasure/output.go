package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	valueStyle = lipgloss.NewStyle()
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

func writeDocument(w io.Writer, doc models.Document, format models.OutputFormat) error {
	if doc == nil {
		doc = models.Document{}
	}

	switch format {
	case models.OutputJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case models.OutputText:
		_, err := fmt.Fprintln(w, renderText(doc))
		return err

	default:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
}

// renderText lays the leaves out as a two column table of dot paths and
// values.
func renderText(doc models.Document) string {
	leaves := doc.Flatten()
	if len(leaves) == 0 {
		return emptyStyle.Render("(empty)")
	}

	width := 0
	for _, leaf := range leaves {
		width = max(width, lipgloss.Width(leaf.Path))
	}

	rows := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Width(width+2).Render(leaf.Path),
			valueStyle.Render(leaf.Value.String()),
		))
	}

	return strings.Join(rows, "\n")
}
