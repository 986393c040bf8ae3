package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
)

type listOptions struct {
	fields     bool
	jsonOutput bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.fields, "fields", false, "Show the editable properties of each component")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	if opts.jsonOutput {
		return renderListJSON(cmd)
	}
	if opts.fields {
		return renderFieldTable(cmd)
	}
	return renderKindTable(cmd)
}

func renderKindTable(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "KIND\tNAME\tFIELDS\tBORDER")
	for _, k := range canvas.Kinds() {
		schema := canvas.SchemaFor(k)
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", k, k.DisplayName(), len(schema.Fields), yesNo(schema.SupportsBorder))
	}

	return writer.Flush()
}

func renderFieldTable(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	for i, k := range canvas.Kinds() {
		if i > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintf(writer, "%s (%s)\n", k, k.DisplayName())
		fmt.Fprintln(writer, "  KEY\tCONTROL\tTYPE\tVALUES")
		for _, f := range canvas.SchemaFor(k).Fields {
			fmt.Fprintf(writer, "  %s\t%s\t%s\t%s\n", f.Key, f.Control, f.Type(), fieldValues(f))
		}
	}

	return writer.Flush()
}

// fieldValues summarises what a field accepts beyond its type.
func fieldValues(f canvas.Field) string {
	switch {
	case len(f.Options) > 0:
		return strings.Join(f.Options, "|")
	case len(f.ItemFields) > 0:
		return "items: " + strings.Join(f.ItemFields, ", ")
	default:
		return "-"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

type listJSONField struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Control    string   `json:"control"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
	ItemFields []string `json:"item_fields,omitempty"`
}

type listJSONKind struct {
	Kind           string          `json:"kind"`
	Name           string          `json:"name"`
	SupportsBorder bool            `json:"supports_border"`
	Fields         []listJSONField `json:"fields"`
}

type listJSONPayload struct {
	Version    string         `json:"version"`
	Count      int            `json:"count"`
	Components []listJSONKind `json:"components"`
}

func renderListJSON(cmd *cobra.Command) error {
	kinds := canvas.Kinds()
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(kinds),
		Components: make([]listJSONKind, len(kinds)),
	}

	for i, k := range kinds {
		schema := canvas.SchemaFor(k)
		fields := make([]listJSONField, len(schema.Fields))
		for j, f := range schema.Fields {
			fields[j] = listJSONField{
				Key:        f.Key,
				Label:      f.Label,
				Control:    f.Control.String(),
				Type:       f.Type().String(),
				Options:    f.Options,
				ItemFields: f.ItemFields,
			}
		}
		payload.Components[i] = listJSONKind{
			Kind:           k.String(),
			Name:           k.DisplayName(),
			SupportsBorder: schema.SupportsBorder,
			Fields:         fields,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
