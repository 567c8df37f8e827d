package synth

import (
	"github.com/goliatone/go-formspec/pkg/model"
)

// Defaults builds the initial-values map for a form definition. Every field
// the schema synthesizer emits gets a key here, and each value's runtime
// shape satisfies that field's validator as-is, so binding a form to these
// defaults never trips a type mismatch before the user touches anything.
// Date-like fields map to nil so their controls render as unset.
func Defaults(def model.FormDefinition, options ...Option) (map[string]any, []model.Warning, error) {
	cfg := newConfig(options)

	values := make(map[string]any)
	warnings := walk(def, cfg.registry, func(field model.FieldSpec, rule variantRule) {
		values[field.Name] = rule.Default(field)
	})

	return values, warnings, nil
}
