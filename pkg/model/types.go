package model

// Variant is the declared kind of a field. The set is closed: adding a new
// variant means adding a registry entry, never touching dispatch logic.
type Variant string

const (
	VariantInput              Variant = "Input"
	VariantTextarea           Variant = "Textarea"
	VariantCheckbox           Variant = "Checkbox"
	VariantSwitch             Variant = "Switch"
	VariantSelect             Variant = "Select"
	VariantMultiSelect        Variant = "MultiSelect"
	VariantCombobox           Variant = "Combobox"
	VariantDatePicker         Variant = "DatePicker"
	VariantDatetimePicker     Variant = "DatetimePicker"
	VariantSmartDatetimeInput Variant = "SmartDatetimeInput"
	VariantFileInput          Variant = "FileInput"
	VariantPassword           Variant = "Password"
	VariantPhone              Variant = "Phone"
	VariantSlider             Variant = "Slider"
	VariantSignatureInput     Variant = "SignatureInput"
	VariantTagsInput          Variant = "TagsInput"
	VariantInputOTP           Variant = "InputOTP"
	VariantLocationInput      Variant = "LocationInput"
)

// Option is one selectable entry for choice variants.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FieldSpec describes a single form field. Numeric and length constraints are
// pointers so "absent" stays distinguishable from zero.
type FieldSpec struct {
	Variant     Variant  `json:"variant" yaml:"variant"`
	Name        string   `json:"name" yaml:"name"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled    bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Checked     bool     `json:"checked,omitempty" yaml:"checked,omitempty"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Options     []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// DefaultValue is a decode alias for Default; some editors emit the
	// camelCase key. Decoding folds it into Default and clears it, so code
	// past the decode boundary only ever reads Default.
	DefaultValue any `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`

	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step      *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Rows      *int     `json:"rows,omitempty" yaml:"rows,omitempty"`
	MaxTags   *int     `json:"maxTags,omitempty" yaml:"maxTags,omitempty"`
	Length    *int     `json:"length,omitempty" yaml:"length,omitempty"`

	DefaultCountry string `json:"defaultCountry,omitempty" yaml:"defaultCountry,omitempty"`

	// RowIndex is the layout grouping hint used when a definition arrives as a
	// flat field list; fields sharing a non-zero RowIndex coalesce into a row.
	RowIndex int `json:"rowIndex,omitempty" yaml:"rowIndex,omitempty"`
}

// FieldGroup is one layout row: a single field or 2-4 fields side by side.
// Grouping affects generated markup only, never validation scoping.
type FieldGroup []FieldSpec

// FormDefinition is the ordered sequence of field groups describing one form.
// Order is both render order and declaration order in generated code.
type FormDefinition struct {
	Title  string       `json:"title,omitempty" yaml:"title,omitempty"`
	Groups []FieldGroup `json:"groups" yaml:"groups"`
}

// Flatten returns every field in definition order, discarding grouping.
func (d FormDefinition) Flatten() []FieldSpec {
	var out []FieldSpec
	for _, group := range d.Groups {
		out = append(out, group...)
	}
	return out
}

// FieldCount reports the number of fields across all groups.
func (d FormDefinition) FieldCount() int {
	total := 0
	for _, group := range d.Groups {
		total += len(group)
	}
	return total
}
