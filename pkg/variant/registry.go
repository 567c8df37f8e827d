// Package variant maps each field variant to the triple that keeps the three
// artifacts in sync: a validator rule, a default-value rule, and a control
// rule. The set of variants is closed; extending the system means adding one
// registry entry here.
package variant

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/schema"
)

// ErrUnknownVariant is returned by Lookup for variants outside the closed
// set. Callers must skip the field rather than abort the form.
var ErrUnknownVariant = errors.New("variant: unknown variant")

// SlotKind names the transient state slot a control owns during live preview.
type SlotKind string

const (
	SlotText      SlotKind = "text"
	SlotChecked   SlotKind = "checked"
	SlotNumber    SlotKind = "number"
	SlotDate      SlotKind = "date"
	SlotDatetime  SlotKind = "datetime"
	SlotSelection SlotKind = "selection"
	SlotTags      SlotKind = "tags"
	SlotFiles     SlotKind = "files"
	SlotLocation  SlotKind = "location"
	SlotCanvas    SlotKind = "canvas"
)

// Control is the static half of a variant's control rule: which component
// template mounts the field and which state slot it writes.
type Control struct {
	Component string
	Slot      SlotKind
}

// Rule bundles the three per-variant derivations.
type Rule struct {
	Variant model.Variant
	Schema  func(model.FieldSpec) schema.Entry
	Default func(model.FieldSpec) any
	Control Control
}

// Registry is the closed variant table. It is read-only after construction;
// there is no mutation API.
type Registry struct {
	config Config
	rules  map[model.Variant]Rule
}

// NewRegistry builds a registry whose choice catalogs come from cfg. The
// catalogs are threaded through the rule closures explicitly; the registry
// keeps no hidden module-level option lists.
func NewRegistry(cfg Config) *Registry {
	reg := &Registry{
		config: cfg,
		rules:  make(map[model.Variant]Rule, 18),
	}
	reg.registerBuiltins()
	return reg
}

var defaultRegistry = NewRegistry(DefaultConfig())

// Default returns the shared registry built from DefaultConfig.
func Default() *Registry {
	return defaultRegistry
}

// Config returns the option catalogs the registry was built with.
func (r *Registry) Config() Config {
	return r.config
}

// Lookup resolves the rule for a variant, or ErrUnknownVariant.
func (r *Registry) Lookup(v model.Variant) (Rule, error) {
	rule, ok := r.rules[v]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return rule, nil
}

// Has reports whether a variant is registered.
func (r *Registry) Has(v model.Variant) bool {
	_, ok := r.rules[v]
	return ok
}

// Variants returns every registered variant in model declaration order.
func (r *Registry) Variants() []model.Variant {
	ordered := []model.Variant{
		model.VariantInput, model.VariantTextarea, model.VariantCheckbox,
		model.VariantSwitch, model.VariantSelect, model.VariantMultiSelect,
		model.VariantCombobox, model.VariantDatePicker, model.VariantDatetimePicker,
		model.VariantSmartDatetimeInput, model.VariantFileInput, model.VariantPassword,
		model.VariantPhone, model.VariantSlider, model.VariantSignatureInput,
		model.VariantTagsInput, model.VariantInputOTP, model.VariantLocationInput,
	}
	out := make([]model.Variant, 0, len(ordered))
	for _, v := range ordered {
		if r.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

func (r *Registry) register(rule Rule) {
	if rule.Variant == "" || rule.Schema == nil || rule.Default == nil {
		panic("variant: incomplete rule registration")
	}
	r.rules[rule.Variant] = rule
}
