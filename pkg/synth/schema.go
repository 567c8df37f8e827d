package synth

import (
	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/schema"
)

// Schema builds the composite validator for a form definition. Groups are
// flattened first: grouping affects layout only, never validation scoping.
// Entry order equals flattened definition order.
func Schema(def model.FormDefinition, options ...Option) (schema.Schema, []model.Warning, error) {
	cfg := newConfig(options)

	var entries []schema.Entry
	warnings := walk(def, cfg.registry, func(field model.FieldSpec, rule variantRule) {
		entries = append(entries, rule.Schema(field))
	})

	return schema.New(entries), warnings, nil
}
