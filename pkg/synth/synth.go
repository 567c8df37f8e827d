// Package synth holds the pure synthesizers that derive the validation
// schema and the initial-values map from a form definition. Both walk the
// same flattened field order and consult the same variant registry, which is
// what keeps the artifacts semantically consistent.
package synth

import (
	"fmt"

	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/variant"
)

type variantRule = variant.Rule

// Option adjusts a synthesis run.
type Option func(*config)

type config struct {
	registry *variant.Registry
}

// WithRegistry substitutes the variant registry consulted during synthesis.
func WithRegistry(reg *variant.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithVariantConfig builds a registry from the supplied option catalogs and
// uses it for the run.
func WithVariantConfig(vcfg variant.Config) Option {
	return func(cfg *config) {
		cfg.registry = variant.NewRegistry(vcfg)
	}
}

func newConfig(options []Option) config {
	cfg := config{registry: variant.Default()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// walk visits every field in flattened definition order, resolving its rule.
// Unknown variants are skipped and surfaced as warnings; duplicate names are
// last-write-wins plus a warning. A single bad field never breaks the form.
func walk(def model.FormDefinition, reg *variant.Registry, visit func(model.FieldSpec, variant.Rule)) []model.Warning {
	var warnings []model.Warning
	seen := make(map[string]struct{})

	for _, field := range def.Flatten() {
		rule, err := reg.Lookup(field.Variant)
		if err != nil {
			warnings = append(warnings, model.Warning{
				Code:    model.WarningUnknownVariant,
				Field:   field.Name,
				Message: fmt.Sprintf("variant %q is not registered; field skipped", field.Variant),
			})
			continue
		}

		if _, dup := seen[field.Name]; dup {
			warnings = append(warnings, model.Warning{
				Code:    model.WarningNameCollision,
				Field:   field.Name,
				Message: fmt.Sprintf("field name %q is declared more than once; the last declaration wins", field.Name),
			})
		}
		seen[field.Name] = struct{}{}

		visit(field, rule)
	}
	return warnings
}
