// Package openapi derives a form definition from an OpenAPI 3 document so
// existing API contracts can seed a form without hand-writing a definition.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formspec/pkg/model"
)

// ImportOptions steers which object schema in the document becomes the form.
type ImportOptions struct {
	// Schema names a component schema to import. Takes precedence over
	// Operation when both are set.
	Schema string

	// Operation selects the request body schema of a specific operationId.
	Operation string

	// Title overrides the definition title; defaults to the schema title,
	// then the document's info title.
	Title string
}

// Import parses an OpenAPI 3 document and converts the selected object
// schema into a FormDefinition, one field per property. When neither
// Schema nor Operation is set, the first JSON request body in path order
// is used, falling back to the first component schema by name.
func Import(ctx context.Context, data []byte, opts ImportOptions) (model.FormDefinition, error) {
	if len(data) == 0 {
		return model.FormDefinition{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return model.FormDefinition{}, fmt.Errorf("openapi: load document: %w", err)
	}

	target, title, err := selectSchema(doc, opts)
	if err != nil {
		return model.FormDefinition{}, err
	}
	if opts.Title != "" {
		title = opts.Title
	} else if target.Title != "" {
		title = target.Title
	}

	def := model.FormDefinition{Title: title}
	for _, name := range sortedProperties(target.Properties) {
		ref := target.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := convertProperty(name, ref.Value, required(target, name))
		if !ok {
			continue
		}
		def.Groups = append(def.Groups, model.FieldGroup{field})
	}
	if len(def.Groups) == 0 {
		return model.FormDefinition{}, errors.New("openapi: selected schema has no convertible properties")
	}
	return def, nil
}

func selectSchema(doc *openapi3.T, opts ImportOptions) (*openapi3.Schema, string, error) {
	title := ""
	if doc.Info != nil {
		title = doc.Info.Title
	}

	if opts.Schema != "" {
		if doc.Components == nil || doc.Components.Schemas[opts.Schema] == nil || doc.Components.Schemas[opts.Schema].Value == nil {
			return nil, "", fmt.Errorf("openapi: component schema %q not found", opts.Schema)
		}
		return doc.Components.Schemas[opts.Schema].Value, title, nil
	}

	if opts.Operation != "" {
		schema := operationRequestSchema(doc, opts.Operation)
		if schema == nil {
			return nil, "", fmt.Errorf("openapi: operation %q has no object request body", opts.Operation)
		}
		return schema, title, nil
	}

	if schema := firstRequestSchema(doc); schema != nil {
		return schema, title, nil
	}
	if doc.Components != nil {
		names := make([]string, 0, len(doc.Components.Schemas))
		for name := range doc.Components.Schemas {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ref := doc.Components.Schemas[name]
			if ref != nil && ref.Value != nil && len(ref.Value.Properties) > 0 {
				return ref.Value, title, nil
			}
		}
	}
	return nil, "", errors.New("openapi: no object schema found in document")
}

func operationRequestSchema(doc *openapi3.T, operationID string) *openapi3.Schema {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op == nil || op.OperationID != operationID {
				continue
			}
			return requestBodySchema(op.RequestBody)
		}
	}
	return nil
}

// firstRequestSchema walks paths in sorted order so the fallback pick is
// stable across runs.
func firstRequestSchema(doc *openapi3.T) *openapi3.Schema {
	if doc.Paths == nil {
		return nil
	}
	paths := make([]string, 0, doc.Paths.Len())
	for path := range doc.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		item := doc.Paths.Value(path)
		if item == nil {
			continue
		}
		for _, method := range []string{"POST", "PUT", "PATCH"} {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			if schema := requestBodySchema(op.RequestBody); schema != nil {
				return schema
			}
		}
	}
	return nil
}

func requestBodySchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		mt, ok := content[mediaType]
		if !ok || mt.Schema == nil || mt.Schema.Value == nil {
			continue
		}
		if len(mt.Schema.Value.Properties) > 0 {
			return mt.Schema.Value
		}
	}
	return nil
}

func sortedProperties(props openapi3.Schemas) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func required(schema *openapi3.Schema, name string) bool {
	for _, entry := range schema.Required {
		if entry == name {
			return true
		}
	}
	return false
}

// convertProperty maps one property to the closest field variant. Nested
// objects and unsupported shapes are skipped; the rest of the schema still
// imports.
func convertProperty(name string, src *openapi3.Schema, isRequired bool) (model.FieldSpec, bool) {
	field := model.FieldSpec{
		Name:        name,
		Label:       src.Title,
		Description: src.Description,
		Required:    isRequired,
	}

	switch {
	case typeIs(src, "boolean"):
		field.Variant = model.VariantCheckbox
		if checked, ok := src.Default.(bool); ok {
			field.Checked = checked
		}
	case len(src.Enum) > 0:
		field.Variant = model.VariantSelect
		field.Options = enumOptions(src.Enum)
		if value, ok := src.Default.(string); ok {
			field.Default = value
		}
	case typeIs(src, "array"):
		items := src.Items
		if items == nil || items.Value == nil {
			return model.FieldSpec{}, false
		}
		switch {
		case len(items.Value.Enum) > 0:
			field.Variant = model.VariantMultiSelect
			field.Options = enumOptions(items.Value.Enum)
		case typeIs(items.Value, "string"):
			field.Variant = model.VariantTagsInput
			if src.MaxItems != nil {
				maxTags := int(*src.MaxItems)
				field.MaxTags = &maxTags
			}
		default:
			return model.FieldSpec{}, false
		}
	case typeIs(src, "number"), typeIs(src, "integer"):
		if src.Min != nil && src.Max != nil {
			field.Variant = model.VariantSlider
			min, max := *src.Min, *src.Max
			field.Min, field.Max = &min, &max
			if src.MultipleOf != nil {
				step := *src.MultipleOf
				field.Step = &step
			}
		} else {
			field.Variant = model.VariantInput
		}
		if value, ok := numericDefault(src.Default); ok {
			field.Default = value
		}
	case typeIs(src, "string"):
		switch src.Format {
		case "password":
			field.Variant = model.VariantPassword
		case "date":
			field.Variant = model.VariantDatePicker
		case "date-time":
			field.Variant = model.VariantDatetimePicker
		case "binary", "byte":
			field.Variant = model.VariantFileInput
		default:
			field.Variant = model.VariantInput
		}
		if value, ok := src.Default.(string); ok {
			field.Default = value
		}
		if src.MaxLength != nil {
			maxLength := int(*src.MaxLength)
			field.MaxLength = &maxLength
		}
	default:
		return model.FieldSpec{}, false
	}

	return field, true
}

func typeIs(schema *openapi3.Schema, want string) bool {
	if schema.Type == nil {
		return false
	}
	return schema.Type.Is(want)
}

func enumOptions(values []any) []model.Option {
	options := make([]model.Option, 0, len(values))
	for _, raw := range values {
		value, ok := raw.(string)
		if !ok {
			value = fmt.Sprint(raw)
		}
		options = append(options, model.Option{Label: humanize(value), Value: value})
	}
	return options
}

func numericDefault(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func humanize(value string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(value)
	if cleaned == "" {
		return value
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
