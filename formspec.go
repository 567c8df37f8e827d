// Package formspec compiles declarative form definitions into three
// synchronized artifacts: a validation schema, a typed defaults map, and
// formatted source text for a standalone form component. It also dispatches
// definitions to live preview controls backed by a per-form state bag.
package formspec

import (
	"context"

	"github.com/goliatone/go-formspec/pkg/codegen"
	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/preview"
	"github.com/goliatone/go-formspec/pkg/schema"
	"github.com/goliatone/go-formspec/pkg/synth"
	"github.com/goliatone/go-formspec/pkg/variant"
)

// FormDefinition aliases the model type for callers that only import the
// root package.
type FormDefinition = model.FormDefinition

// FieldSpec aliases the model field type.
type FieldSpec = model.FieldSpec

// Warning aliases the model warning type surfaced by the synthesizers.
type Warning = model.Warning

// SynthesizeSchema derives the validation schema for a definition. Unknown
// variants and duplicate names degrade to warnings, never errors.
func SynthesizeSchema(def FormDefinition, options ...synth.Option) (schema.Schema, []Warning, error) {
	return synth.Schema(def, options...)
}

// SynthesizeDefaults derives the initial value map for a definition, one
// type-appropriate entry per schema key.
func SynthesizeDefaults(def FormDefinition, options ...synth.Option) (map[string]any, []Warning, error) {
	return synth.Defaults(def, options...)
}

// SynthesizeCode emits formatted component source text for a definition.
func SynthesizeCode(ctx context.Context, def FormDefinition, options ...codegen.Option) ([]byte, error) {
	renderer, err := codegen.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, def)
}

// NewStateBag creates the per-form preview state container.
func NewStateBag() *preview.StateBag {
	return preview.NewStateBag()
}

// DispatchControl resolves a field to its live preview control against the
// built-in registry. ok is false for unknown variants.
func DispatchControl(field FieldSpec, bag *preview.StateBag) (preview.Control, bool) {
	return preview.Dispatch(field, bag)
}

// Variants lists every variant the built-in registry accepts, in
// registration order.
func Variants() []model.Variant {
	return variant.Default().Variants()
}
