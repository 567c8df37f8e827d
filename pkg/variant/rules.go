package variant

import (
	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/schema"
)

const defaultOTPLength = 6

// OTPLength resolves the slot count for a one-time-code field, falling
// back to the standard six digits when the field leaves it unset.
func OTPLength(f model.FieldSpec) int {
	if f.Length != nil && *f.Length > 0 {
		return *f.Length
	}
	return defaultOTPLength
}

func (r *Registry) registerBuiltins() {
	cfg := r.config

	r.register(Rule{
		Variant: model.VariantInput,
		Schema:  textEntry,
		Default: stringDefault,
		Control: Control{Component: "input", Slot: SlotText},
	})

	r.register(Rule{
		Variant: model.VariantTextarea,
		Schema: func(f model.FieldSpec) schema.Entry {
			entry := textEntry(f)
			entry.MaxLength = f.MaxLength
			return entry
		},
		Default: stringDefault,
		Control: Control{Component: "textarea", Slot: SlotText},
	})

	r.register(Rule{
		Variant: model.VariantPassword,
		Schema:  textEntry,
		Default: stringDefault,
		Control: Control{Component: "password", Slot: SlotText},
	})

	r.register(Rule{
		Variant: model.VariantPhone,
		Schema:  textEntry,
		Default: stringDefault,
		Control: Control{Component: "phone", Slot: SlotText},
	})

	r.register(Rule{
		Variant: model.VariantCheckbox,
		Schema:  booleanEntry,
		Default: booleanDefault,
		Control: Control{Component: "checkbox", Slot: SlotChecked},
	})

	r.register(Rule{
		Variant: model.VariantSwitch,
		Schema:  booleanEntry,
		Default: booleanDefault,
		Control: Control{Component: "switch", Slot: SlotChecked},
	})

	r.register(Rule{
		Variant: model.VariantSelect,
		Schema: func(f model.FieldSpec) schema.Entry {
			return choiceEntry(f, OptionValues(f.Options))
		},
		Default: stringDefault,
		Control: Control{Component: "select", Slot: SlotSelection},
	})

	r.register(Rule{
		Variant: model.VariantCombobox,
		Schema: func(f model.FieldSpec) schema.Entry {
			return choiceEntry(f, OptionValues(cfg.ComboboxOptions(f)))
		},
		Default: stringDefault,
		Control: Control{Component: "combobox", Slot: SlotSelection},
	})

	r.register(Rule{
		Variant: model.VariantMultiSelect,
		Schema: func(f model.FieldSpec) schema.Entry {
			entry := schema.Entry{
				Name:     f.Name,
				Kind:     schema.KindStringList,
				Required: f.Required,
				Enum:     OptionValues(f.Options),
				MaxItems: f.MaxTags,
			}
			if f.Required {
				one := 1
				entry.MinItems = &one
			}
			return entry
		},
		Default: listDefault,
		Control: Control{Component: "multiselect", Slot: SlotSelection},
	})

	r.register(Rule{
		Variant: model.VariantTagsInput,
		Schema: func(f model.FieldSpec) schema.Entry {
			entry := schema.Entry{
				Name:     f.Name,
				Kind:     schema.KindStringList,
				Required: f.Required,
				MaxItems: f.MaxTags,
			}
			if f.Required {
				one := 1
				entry.MinItems = &one
			}
			return entry
		},
		Default: listDefault,
		Control: Control{Component: "tags", Slot: SlotTags},
	})

	r.register(Rule{
		Variant: model.VariantSlider,
		Schema: func(f model.FieldSpec) schema.Entry {
			return schema.Entry{
				Name:     f.Name,
				Kind:     schema.KindNumber,
				Required: f.Required,
				Min:      f.Min,
				Max:      f.Max,
			}
		},
		Default: func(f model.FieldSpec) any {
			if num, ok := numberValue(f.Default); ok {
				return num
			}
			return float64(0)
		},
		Control: Control{Component: "slider", Slot: SlotNumber},
	})

	r.register(Rule{
		Variant: model.VariantDatePicker,
		Schema:  dateEntry,
		Default: unsetDefault,
		Control: Control{Component: "datepicker", Slot: SlotDate},
	})

	r.register(Rule{
		Variant: model.VariantDatetimePicker,
		Schema:  dateEntry,
		Default: unsetDefault,
		Control: Control{Component: "datetimepicker", Slot: SlotDatetime},
	})

	r.register(Rule{
		Variant: model.VariantSmartDatetimeInput,
		Schema:  dateEntry,
		Default: unsetDefault,
		Control: Control{Component: "smart-datetime", Slot: SlotDatetime},
	})

	r.register(Rule{
		Variant: model.VariantFileInput,
		Schema: func(f model.FieldSpec) schema.Entry {
			return schema.Entry{Name: f.Name, Kind: schema.KindFileList, Required: f.Required}
		},
		Default: func(model.FieldSpec) any { return []any{} },
		Control: Control{Component: "file", Slot: SlotFiles},
	})

	r.register(Rule{
		Variant: model.VariantSignatureInput,
		Schema:  textEntry,
		Default: stringDefault,
		Control: Control{Component: "signature", Slot: SlotCanvas},
	})

	r.register(Rule{
		Variant: model.VariantInputOTP,
		Schema: func(f model.FieldSpec) schema.Entry {
			length := OTPLength(f)
			return schema.Entry{
				Name:     f.Name,
				Kind:     schema.KindString,
				Required: f.Required,
				Length:   &length,
			}
		},
		Default: stringDefault,
		Control: Control{Component: "otp", Slot: SlotText},
	})

	r.register(Rule{
		Variant: model.VariantLocationInput,
		Schema: func(f model.FieldSpec) schema.Entry {
			return schema.Entry{
				Name:      f.Name,
				Kind:      schema.KindTuple,
				Required:  f.Required,
				TupleSize: 2,
			}
		},
		Default: func(f model.FieldSpec) any {
			if tuple, ok := stringListValue(f.Default); ok && len(tuple) == 2 {
				return tuple
			}
			return []string{"", ""}
		},
		Control: Control{Component: "location", Slot: SlotLocation},
	})
}

func textEntry(f model.FieldSpec) schema.Entry {
	entry := schema.Entry{
		Name:     f.Name,
		Kind:     schema.KindString,
		Required: f.Required,
	}
	if f.Required {
		one := 1
		entry.MinLength = &one
	}
	return entry
}

func booleanEntry(f model.FieldSpec) schema.Entry {
	// Booleans are always defined: an absent value reads as false, so the
	// entry is never optional regardless of the required flag.
	return schema.Entry{Name: f.Name, Kind: schema.KindBoolean, Required: false}
}

func choiceEntry(f model.FieldSpec, values []string) schema.Entry {
	return schema.Entry{
		Name:     f.Name,
		Kind:     schema.KindEnum,
		Required: f.Required,
		Enum:     values,
	}
}

func dateEntry(f model.FieldSpec) schema.Entry {
	return schema.Entry{Name: f.Name, Kind: schema.KindDate, Required: f.Required}
}

func stringDefault(f model.FieldSpec) any {
	if text, ok := f.Default.(string); ok {
		return text
	}
	return ""
}

func booleanDefault(f model.FieldSpec) any {
	if checked, ok := f.Default.(bool); ok {
		return checked
	}
	return f.Checked
}

func listDefault(f model.FieldSpec) any {
	if items, ok := stringListValue(f.Default); ok {
		return items
	}
	return []string{}
}

func unsetDefault(model.FieldSpec) any {
	// Date controls render as "unset" until the user picks a value.
	return nil
}

func numberValue(value any) (float64, bool) {
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

func stringListValue(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, text)
		}
		return out, true
	default:
		return nil, false
	}
}

// OptionValues extracts the ordered value list from choice options.
func OptionValues(options []model.Option) []string {
	if len(options) == 0 {
		return nil
	}
	out := make([]string, len(options))
	for i, option := range options {
		out[i] = option.Value
	}
	return out
}
