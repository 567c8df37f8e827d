package model

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formspec/internal/naming"
)

// Warning codes surfaced by Validate and the synthesizers. Warnings are
// caller-input issues that never abort compilation.
const (
	WarningUnknownVariant   = "unknown-variant"
	WarningNameCollision    = "name-collision"
	WarningMalformedOptions = "malformed-options"
	WarningInvalidName      = "invalid-name"
)

// Warning flags a non-fatal problem with a field specification.
type Warning struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Field == "" {
		return w.Code + ": " + w.Message
	}
	return fmt.Sprintf("%s (%s): %s", w.Code, w.Field, w.Message)
}

// MaxGroupSize caps how many fields share one layout row.
const MaxGroupSize = 4

// rawDefinition accepts the surface encodings editors produce: an explicit
// group list, a flat field list, or a bare array of fields.
type rawDefinition struct {
	Title  string       `json:"title" yaml:"title"`
	Groups []FieldGroup `json:"groups" yaml:"groups"`
	Fields []FieldSpec  `json:"fields" yaml:"fields"`
}

// DecodeJSON parses a form definition from JSON. Flat field lists are grouped
// by their rowIndex hints; an explicit groups list is taken as-is.
func DecodeJSON(data []byte) (FormDefinition, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var fields []FieldSpec
		if err := json.Unmarshal(data, &fields); err != nil {
			return FormDefinition{}, fmt.Errorf("model: decode field list: %w", err)
		}
		return foldAliases(FormDefinition{Groups: GroupFields(fields)}), nil
	}

	var raw rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return FormDefinition{}, fmt.Errorf("model: decode definition: %w", err)
	}
	return foldAliases(raw.definition()), nil
}

// DecodeYAML parses a form definition from YAML using the same shapes as
// DecodeJSON.
func DecodeYAML(data []byte) (FormDefinition, error) {
	var fields []FieldSpec
	if err := yaml.Unmarshal(data, &fields); err == nil && len(fields) > 0 {
		return foldAliases(FormDefinition{Groups: GroupFields(fields)}), nil
	}

	var raw rawDefinition
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return FormDefinition{}, fmt.Errorf("model: decode definition: %w", err)
	}
	return foldAliases(raw.definition()), nil
}

// foldAliases normalizes decode-time alias fields: a defaultValue key lands
// in FieldSpec.DefaultValue and is folded into Default here, with the
// canonical key winning when both are present.
func foldAliases(def FormDefinition) FormDefinition {
	for gi, group := range def.Groups {
		for fi, field := range group {
			if field.Default == nil && field.DefaultValue != nil {
				field.Default = field.DefaultValue
			}
			field.DefaultValue = nil
			def.Groups[gi][fi] = field
		}
	}
	return def
}

// EncodeJSON serialises a definition with stable two-space indentation, the
// representation the JSON editor tab round-trips.
func EncodeJSON(def FormDefinition) ([]byte, error) {
	payload, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("model: encode definition: %w", err)
	}
	return payload, nil
}

func (raw rawDefinition) definition() FormDefinition {
	def := FormDefinition{Title: raw.Title}
	if len(raw.Groups) > 0 {
		for _, group := range raw.Groups {
			if len(group) == 0 {
				continue
			}
			def.Groups = append(def.Groups, clampGroup(group)...)
		}
		return def
	}
	def.Groups = GroupFields(raw.Fields)
	return def
}

// GroupFields coalesces consecutive fields sharing a non-zero RowIndex into
// one row, capped at MaxGroupSize members per row.
func GroupFields(fields []FieldSpec) []FieldGroup {
	var groups []FieldGroup
	for _, field := range fields {
		last := len(groups) - 1
		if field.RowIndex != 0 && last >= 0 &&
			len(groups[last]) < MaxGroupSize &&
			groups[last][0].RowIndex == field.RowIndex {
			groups[last] = append(groups[last], field)
			continue
		}
		groups = append(groups, FieldGroup{field})
	}
	return groups
}

func clampGroup(group FieldGroup) []FieldGroup {
	if len(group) <= MaxGroupSize {
		return []FieldGroup{group}
	}
	var out []FieldGroup
	for start := 0; start < len(group); start += MaxGroupSize {
		end := start + MaxGroupSize
		if end > len(group) {
			end = len(group)
		}
		out = append(out, group[start:end])
	}
	return out
}

// Validate reports non-fatal input problems: duplicate names, names that are
// not valid identifiers, and choice variants without options. Unknown
// variants are left for the registry to flag so the set stays closed in one
// place.
func (d FormDefinition) Validate() []Warning {
	var warnings []Warning
	seen := make(map[string]struct{})

	for _, field := range d.Flatten() {
		name := strings.TrimSpace(field.Name)
		if !naming.IsIdentifier(name) {
			warnings = append(warnings, Warning{
				Code:    WarningInvalidName,
				Field:   field.Name,
				Message: fmt.Sprintf("field name %q is not a valid identifier", field.Name),
			})
		}
		if _, dup := seen[name]; dup && name != "" {
			warnings = append(warnings, Warning{
				Code:    WarningNameCollision,
				Field:   name,
				Message: fmt.Sprintf("field name %q is declared more than once; the last declaration wins", name),
			})
		}
		seen[name] = struct{}{}

		if requiresOptions(field.Variant) && len(field.Options) == 0 {
			warnings = append(warnings, Warning{
				Code:    WarningMalformedOptions,
				Field:   name,
				Message: fmt.Sprintf("%s field %q has no options; submissions will be rejected", field.Variant, name),
			})
		}
	}
	return warnings
}

func requiresOptions(variant Variant) bool {
	switch variant {
	case VariantSelect, VariantMultiSelect, VariantCombobox:
		return true
	default:
		return false
	}
}
