package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/stencil-elm/elmproxy/internal/cli/ui"
	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
	"github.com/stencil-elm/elmproxy/internal/compiler/proptype"
)

type inspectFlags struct {
	name     string
	resolved string
	json     bool
}

// inspection is what inspect reports about one type string
type inspection struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Resolved        string   `json:"resolved,omitempty"`
	Normalized      string   `json:"normalized"`
	Optional        bool     `json:"optional"`
	TextualMatches  []string `json:"textual_matches"`
	Category        string   `json:"category"`
	Annotation      string   `json:"annotation,omitempty"`
	Binding         string   `json:"binding,omitempty"`
	AttributeEncode string   `json:"attribute_encoder,omitempty"`
	JSONEncode      string   `json:"json_encoder,omitempty"`
	CustomTypes     []string `json:"custom_types,omitempty"`
	TypeAliases     []string `json:"type_aliases,omitempty"`
	Encoders        []string `json:"encoders,omitempty"`
}

// NewInspectCommand creates the inspect command
func NewInspectCommand(global *globalFlags) *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect <type>",
		Short: "Show how a property type string maps to Elm",
		Long: `Classify one property type string the way generate does and print the
category it falls into together with everything generated for it: the
Elm type annotation, custom type and alias declarations, encoders and
whether the value is bound as an attribute or as a property.`,
		Example: `  elmproxy inspect '"small" | "large"' --name size
  elmproxy inspect '{ id: number; label?: string; }' --name item
  elmproxy inspect 'Variant' --resolved '"primary" | "secondary"'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := inspectType(args[0], flags)
			if err != nil {
				return err
			}
			if flags.json {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			writeInspection(cmd.OutOrStdout(), result, global.noColor)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "value", "Property name generated declarations are derived from")
	cmd.Flags().StringVar(&flags.resolved, "resolved", "", "Type string with aliases expanded")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Output as JSON")

	return cmd
}

func inspectType(typeString string, flags *inspectFlags) (*inspection, error) {
	normalized, optional := proptype.Normalize(typeString)
	result := &inspection{
		Name:           flags.name,
		Type:           typeString,
		Resolved:       flags.resolved,
		Normalized:     normalized,
		Optional:       optional,
		TextualMatches: []string{},
	}
	for _, kind := range proptype.TextualMatches(typeString) {
		result.TextualMatches = append(result.TextualMatches, kind.String())
	}

	typ, err := proptype.Classify(proptype.PropertyMetadata("inspect", flags.name, typeString, flags.resolved))
	if err != nil {
		return nil, err
	}

	result.Category = typ.Kind().String()
	if !typ.Supported() {
		return result, nil
	}

	result.Annotation = typ.Annotation()
	result.Binding = "property"
	if typ.SettableAsAttribute() {
		result.Binding = "attribute"
	}
	result.AttributeEncode = typ.AttributeEncoderName()
	result.JSONEncode = typ.JSONEncoderName()
	result.CustomTypes = typ.CustomTypeDeclarations()
	result.TypeAliases = typ.TypeAliasDeclarations()
	result.Encoders = typ.Encoders()
	return result, nil
}

func writeInspection(w io.Writer, result *inspection, noColor bool) {
	table := ui.NewKeyValueTable(w, noColor)
	table.AddRow("Type", result.Type)
	if result.Resolved != "" {
		table.AddRow("Resolved", result.Resolved)
	}
	table.AddRow("Normalized", result.Normalized)
	table.AddRow("Optional", fmt.Sprintf("%t", result.Optional))
	table.AddRow("Matches", orNone(strings.Join(result.TextualMatches, ", ")))
	table.AddRow("Category", result.Category)

	if result.Category == proptype.KindUnsupported.String() {
		table.Render()
		fmt.Fprintln(w)
		fmt.Fprint(w, ui.FormatDiagnostic(errors.NewUnsupportedPropertyType("inspect", result.Name, result.Type), noColor))
		return
	}

	table.AddRow("Annotation", result.Annotation)
	table.AddRow("Binding", result.Binding)
	table.AddRow("Attribute encoder", orNone(result.AttributeEncode))
	table.AddRow("JSON encoder", result.JSONEncode)
	table.Render()

	sections := []struct {
		title  string
		source []string
	}{
		{"Custom types", result.CustomTypes},
		{"Type aliases", result.TypeAliases},
		{"Encoders", result.Encoders},
	}
	for _, section := range sections {
		if len(section.source) == 0 {
			continue
		}
		fmt.Fprintln(w)
		ui.Header(w, section.title, noColor)
		fmt.Fprintln(w, strings.Join(section.source, "\n\n"))
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
