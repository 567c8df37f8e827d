package preview

import (
	"time"

	"github.com/goliatone/go-formspec/internal/naming"
	"github.com/goliatone/go-formspec/internal/sanitize"
	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/variant"
)

// Control is the live rendition of one field: which interactive component
// to mount, the display props it needs, and the accessors that keep the
// state bag and the bound values synchronized as the user interacts.
type Control struct {
	Field     string
	Component string
	Slot      variant.SlotKind
	Props     map[string]any
	Value     func() any
	OnChange  func(any)
}

// Dispatch resolves a field against the built-in variant registry. The
// boolean is false when the variant is unknown; callers render a
// placeholder for that field instead of failing the whole preview.
func Dispatch(field model.FieldSpec, bag *StateBag) (Control, bool) {
	return DispatchWith(variant.Default(), field, bag)
}

// DispatchWith resolves a field against an explicit registry, using the
// registry's option catalogs for choice props. Dispatch is total over the
// registry's variants: every known variant yields a control, every unknown
// one yields ok=false.
func DispatchWith(reg *variant.Registry, field model.FieldSpec, bag *StateBag) (Control, bool) {
	rule, err := reg.Lookup(field.Variant)
	if err != nil {
		return Control{}, false
	}
	cfg := reg.Config()

	slot := bag.Slot(field.Name)
	if _, bound := bag.Value(field.Name); !bound {
		bag.setValue(field.Name, rule.Default(field))
	}
	seedSlot(slot, field, rule)

	ctrl := Control{
		Field:     field.Name,
		Component: rule.Control.Component,
		Slot:      rule.Control.Slot,
		Props:     controlProps(field, cfg),
		Value: func() any {
			value, _ := bag.Value(field.Name)
			return value
		},
	}
	ctrl.OnChange = changeHandler(field, rule.Control.Slot, slot, bag)
	return ctrl, true
}

// seedSlot mirrors the bound default into the slot so a control opens on
// the same state the defaults map declares.
func seedSlot(slot *Slot, field model.FieldSpec, rule variant.Rule) {
	value := rule.Default(field)
	switch rule.Control.Slot {
	case variant.SlotText:
		if s, ok := value.(string); ok {
			slot.Text = s
		}
	case variant.SlotChecked:
		if b, ok := value.(bool); ok {
			slot.Checked = b
		}
	case variant.SlotNumber:
		if n, ok := value.(float64); ok {
			slot.Number = n
		}
	case variant.SlotSelection:
		switch v := value.(type) {
		case string:
			slot.Selection = v
		case []string:
			slot.Items = append([]string(nil), v...)
		}
	case variant.SlotTags:
		if items, ok := value.([]string); ok {
			slot.Items = append([]string(nil), items...)
		}
	case variant.SlotLocation:
		if pair, ok := value.([]string); ok && len(pair) == 2 {
			slot.Country, slot.State = pair[0], pair[1]
		}
	}
}

func controlProps(field model.FieldSpec, cfg variant.Config) map[string]any {
	props := map[string]any{
		"label":    displayLabel(field),
		"required": field.Required,
		"disabled": field.Disabled,
	}
	if field.Placeholder != "" {
		props["placeholder"] = sanitize.Text(field.Placeholder)
	}
	if field.Description != "" {
		props["description"] = sanitize.Text(field.Description)
	}

	switch field.Variant {
	case model.VariantSelect, model.VariantMultiSelect:
		props["options"] = field.Options
	case model.VariantCombobox:
		props["options"] = cfg.ComboboxOptions(field)
	case model.VariantSlider:
		props["min"] = numberOr(field.Min, 0)
		props["max"] = numberOr(field.Max, 100)
		props["step"] = numberOr(field.Step, 1)
	case model.VariantTagsInput:
		if field.MaxTags != nil {
			props["maxTags"] = *field.MaxTags
		}
	case model.VariantInputOTP:
		props["length"] = variant.OTPLength(field)
	case model.VariantPhone, model.VariantLocationInput:
		props["defaultCountry"] = field.DefaultCountry
		props["countries"] = cfg.CountryOptions()
	case model.VariantTextarea:
		if field.Rows != nil {
			props["rows"] = *field.Rows
		}
	}
	if field.MaxLength != nil {
		props["maxLength"] = *field.MaxLength
	}
	return props
}

func displayLabel(field model.FieldSpec) string {
	if field.Label != "" {
		return sanitize.Text(field.Label)
	}
	return naming.Label(field.Name)
}

// changeHandler returns the write path for one control. Each handler
// coerces the incoming value into the slot's shape, records it on the
// slot, and writes the normalized value the schema validates into the bag.
func changeHandler(field model.FieldSpec, kind variant.SlotKind, slot *Slot, bag *StateBag) func(any) {
	name := field.Name
	switch kind {
	case variant.SlotChecked:
		return func(value any) {
			checked, _ := value.(bool)
			slot.Checked = checked
			bag.setValue(name, checked)
		}
	case variant.SlotNumber:
		return func(value any) {
			number, ok := asNumber(value)
			if !ok {
				return
			}
			slot.Number = number
			bag.setValue(name, number)
		}
	case variant.SlotDate, variant.SlotDatetime:
		return func(value any) {
			switch v := value.(type) {
			case time.Time:
				slot.Date = &v
				bag.setValue(name, v)
			case nil:
				slot.Date = nil
				bag.setValue(name, nil)
			}
		}
	case variant.SlotSelection:
		if field.Variant == model.VariantMultiSelect {
			return func(value any) {
				items, ok := asStringList(value)
				if !ok {
					return
				}
				slot.Items = items
				bag.setValue(name, items)
			}
		}
		return func(value any) {
			selected, ok := value.(string)
			if !ok {
				return
			}
			slot.Selection = selected
			bag.setValue(name, selected)
		}
	case variant.SlotTags:
		return func(value any) {
			items, ok := asStringList(value)
			if !ok {
				return
			}
			if field.MaxTags != nil && len(items) > *field.MaxTags {
				items = items[:*field.MaxTags]
			}
			slot.Items = items
			bag.setValue(name, items)
		}
	case variant.SlotFiles:
		return func(value any) {
			files, ok := asStringList(value)
			if !ok {
				return
			}
			slot.Files = files
			bag.setValue(name, files)
		}
	case variant.SlotLocation:
		return func(value any) {
			pair, ok := asStringList(value)
			if !ok || len(pair) != 2 {
				return
			}
			slot.Country, slot.State = pair[0], pair[1]
			bag.setValue(name, []string{pair[0], pair[1]})
		}
	case variant.SlotCanvas:
		return func(value any) {
			handle, ok := value.(string)
			if !ok {
				return
			}
			slot.Canvas = handle
			bag.setValue(name, handle)
		}
	default:
		return func(value any) {
			text, ok := value.(string)
			if !ok {
				return
			}
			slot.Text = text
			bag.setValue(name, text)
		}
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
		return items, true
	default:
		return nil, false
	}
}

func numberOr(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}
