package variant

import "github.com/goliatone/go-formspec/pkg/model"

// Config carries the option catalogs choice variants fall back to when a
// field declares none. Catalogs are injected here instead of living as
// module-level constants so the registry has no hidden global state.
type Config struct {
	// Languages backs Combobox fields that declare no options.
	Languages []model.Option
	// Countries backs Phone and LocationInput country pickers.
	Countries []model.Option
}

// DefaultConfig returns the built-in catalogs.
func DefaultConfig() Config {
	return Config{
		Languages: []model.Option{
			{Label: "English", Value: "en"},
			{Label: "French", Value: "fr"},
			{Label: "German", Value: "de"},
			{Label: "Spanish", Value: "es"},
			{Label: "Portuguese", Value: "pt"},
			{Label: "Russian", Value: "ru"},
			{Label: "Japanese", Value: "ja"},
			{Label: "Korean", Value: "ko"},
			{Label: "Chinese", Value: "zh"},
		},
		Countries: []model.Option{
			{Label: "United States", Value: "US"},
			{Label: "United Kingdom", Value: "GB"},
			{Label: "Canada", Value: "CA"},
			{Label: "Australia", Value: "AU"},
			{Label: "Germany", Value: "DE"},
			{Label: "France", Value: "FR"},
			{Label: "Spain", Value: "ES"},
			{Label: "Italy", Value: "IT"},
			{Label: "Brazil", Value: "BR"},
			{Label: "Japan", Value: "JP"},
			{Label: "India", Value: "IN"},
		},
	}
}

// ComboboxOptions resolves the option list for a Combobox field: declared
// options win, the language catalog is the fallback.
func (c Config) ComboboxOptions(f model.FieldSpec) []model.Option {
	if len(f.Options) > 0 {
		return f.Options
	}
	return c.Languages
}

// CountryOptions resolves the country list for Phone and LocationInput
// controls.
func (c Config) CountryOptions() []model.Option {
	return c.Countries
}
