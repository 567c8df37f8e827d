package variant

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/schema"
)

func TestLookup_UnknownVariant(t *testing.T) {
	_, err := Default().Lookup(model.Variant("Carousel"))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestVariants_CoversClosedSet(t *testing.T) {
	reg := Default()
	variants := reg.Variants()
	if len(variants) != 18 {
		t.Fatalf("expected 18 registered variants, got %d", len(variants))
	}
	for _, v := range variants {
		if !reg.Has(v) {
			t.Fatalf("Variants listed %q but Has reports false", v)
		}
		rule, err := reg.Lookup(v)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", v, err)
		}
		if rule.Control.Component == "" || rule.Control.Slot == "" {
			t.Fatalf("variant %q has incomplete control rule %+v", v, rule.Control)
		}
	}
}

func TestRules_SchemaShapes(t *testing.T) {
	cases := []struct {
		name  string
		field model.FieldSpec
		want  schema.Entry
	}{
		{
			name:  "required input gains min length",
			field: model.FieldSpec{Variant: model.VariantInput, Name: "email", Required: true},
			want:  schema.Entry{Name: "email", Kind: schema.KindString, Required: true, MinLength: intPtr(1)},
		},
		{
			name:  "optional input stays unconstrained",
			field: model.FieldSpec{Variant: model.VariantInput, Name: "nick"},
			want:  schema.Entry{Name: "nick", Kind: schema.KindString},
		},
		{
			name:  "checkbox is never required",
			field: model.FieldSpec{Variant: model.VariantCheckbox, Name: "subscribe", Required: true},
			want:  schema.Entry{Name: "subscribe", Kind: schema.KindBoolean},
		},
		{
			name: "select carries option values",
			field: model.FieldSpec{Variant: model.VariantSelect, Name: "plan", Options: []model.Option{
				{Label: "Free", Value: "free"}, {Label: "Pro", Value: "pro"},
			}},
			want: schema.Entry{Name: "plan", Kind: schema.KindEnum, Enum: []string{"free", "pro"}},
		},
		{
			name:  "select without options gets empty enum",
			field: model.FieldSpec{Variant: model.VariantSelect, Name: "plan"},
			want:  schema.Entry{Name: "plan", Kind: schema.KindEnum},
		},
		{
			name:  "slider carries bounds",
			field: model.FieldSpec{Variant: model.VariantSlider, Name: "price", Min: floatPtr(0), Max: floatPtr(500)},
			want:  schema.Entry{Name: "price", Kind: schema.KindNumber, Min: floatPtr(0), Max: floatPtr(500)},
		},
		{
			name:  "required multiselect needs one item",
			field: model.FieldSpec{Variant: model.VariantMultiSelect, Name: "tags", Required: true, Options: []model.Option{{Label: "Go", Value: "go"}}},
			want:  schema.Entry{Name: "tags", Kind: schema.KindStringList, Required: true, Enum: []string{"go"}, MinItems: intPtr(1)},
		},
		{
			name:  "multiselect caps items",
			field: model.FieldSpec{Variant: model.VariantMultiSelect, Name: "langs", MaxTags: intPtr(2), Options: []model.Option{{Label: "Go", Value: "go"}}},
			want:  schema.Entry{Name: "langs", Kind: schema.KindStringList, Enum: []string{"go"}, MaxItems: intPtr(2)},
		},
		{
			name:  "tags input caps items",
			field: model.FieldSpec{Variant: model.VariantTagsInput, Name: "topics", MaxTags: intPtr(5)},
			want:  schema.Entry{Name: "topics", Kind: schema.KindStringList, MaxItems: intPtr(5)},
		},
		{
			name:  "otp defaults to six digits",
			field: model.FieldSpec{Variant: model.VariantInputOTP, Name: "code"},
			want:  schema.Entry{Name: "code", Kind: schema.KindString, Length: intPtr(6)},
		},
		{
			name:  "otp honours explicit length",
			field: model.FieldSpec{Variant: model.VariantInputOTP, Name: "code", Length: intPtr(4)},
			want:  schema.Entry{Name: "code", Kind: schema.KindString, Length: intPtr(4)},
		},
		{
			name:  "location is a pair",
			field: model.FieldSpec{Variant: model.VariantLocationInput, Name: "home"},
			want:  schema.Entry{Name: "home", Kind: schema.KindTuple, TupleSize: 2},
		},
		{
			name:  "date picker",
			field: model.FieldSpec{Variant: model.VariantDatePicker, Name: "birthday", Required: true},
			want:  schema.Entry{Name: "birthday", Kind: schema.KindDate, Required: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := Default().Lookup(tc.field.Variant)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if diff := cmp.Diff(tc.want, rule.Schema(tc.field)); diff != "" {
				t.Fatalf("entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRules_Defaults(t *testing.T) {
	cases := []struct {
		name  string
		field model.FieldSpec
		want  any
	}{
		{
			name:  "input empty string",
			field: model.FieldSpec{Variant: model.VariantInput, Name: "email"},
			want:  "",
		},
		{
			name:  "input declared default",
			field: model.FieldSpec{Variant: model.VariantInput, Name: "email", Default: "a@b.co"},
			want:  "a@b.co",
		},
		{
			name:  "checkbox checked flag",
			field: model.FieldSpec{Variant: model.VariantCheckbox, Name: "subscribe", Checked: true},
			want:  true,
		},
		{
			name:  "switch unchecked",
			field: model.FieldSpec{Variant: model.VariantSwitch, Name: "notify"},
			want:  false,
		},
		{
			name:  "slider declared default",
			field: model.FieldSpec{Variant: model.VariantSlider, Name: "price", Default: 250},
			want:  float64(250),
		},
		{
			name:  "slider zero",
			field: model.FieldSpec{Variant: model.VariantSlider, Name: "price"},
			want:  float64(0),
		},
		{
			name:  "multiselect empty list",
			field: model.FieldSpec{Variant: model.VariantMultiSelect, Name: "tags"},
			want:  []string{},
		},
		{
			name:  "date picker unset",
			field: model.FieldSpec{Variant: model.VariantDatePicker, Name: "birthday"},
			want:  nil,
		},
		{
			name:  "file input empty list",
			field: model.FieldSpec{Variant: model.VariantFileInput, Name: "resume"},
			want:  []any{},
		},
		{
			name:  "location empty pair",
			field: model.FieldSpec{Variant: model.VariantLocationInput, Name: "home"},
			want:  []string{"", ""},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := Default().Lookup(tc.field.Variant)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if diff := cmp.Diff(tc.want, rule.Default(tc.field)); diff != "" {
				t.Fatalf("default mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalog_ComboboxFallback(t *testing.T) {
	cfg := DefaultConfig()

	explicit := model.FieldSpec{Variant: model.VariantCombobox, Name: "lang", Options: []model.Option{
		{Label: "Gaelic", Value: "gd"},
	}}
	if got := cfg.ComboboxOptions(explicit); len(got) != 1 || got[0].Value != "gd" {
		t.Fatalf("expected field options to win, got %v", got)
	}

	fallback := cfg.ComboboxOptions(model.FieldSpec{Variant: model.VariantCombobox, Name: "lang"})
	if len(fallback) == 0 {
		t.Fatal("expected built-in language catalog as fallback")
	}
	if len(cfg.CountryOptions()) == 0 {
		t.Fatal("expected built-in country catalog")
	}
}

func TestCatalog_CustomConfigReachesSchema(t *testing.T) {
	reg := NewRegistry(Config{Languages: []model.Option{{Label: "Esperanto", Value: "eo"}}})
	rule, err := reg.Lookup(model.VariantCombobox)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	entry := rule.Schema(model.FieldSpec{Variant: model.VariantCombobox, Name: "lang"})
	if diff := cmp.Diff([]string{"eo"}, entry.Enum); diff != "" {
		t.Fatalf("catalog not threaded into schema rule (-want +got):\n%s", diff)
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
