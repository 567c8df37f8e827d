// Package schema defines the validation schema document produced by the
// schema synthesizer: one ordered entry per field, each carrying the value
// kind and constraints the variant registry derived for it.
package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Kind is the primitive value shape a field validates against.
type Kind string

const (
	KindString     Kind = "string"
	KindBoolean    Kind = "boolean"
	KindNumber     Kind = "number"
	KindEnum       Kind = "enum"
	KindStringList Kind = "string-list"
	KindDate       Kind = "date"
	KindFileList   Kind = "file-list"
	KindTuple      Kind = "tuple"
)

// Entry is one field's slot in the schema. Absent constraints stay nil so
// renderers and the validator can distinguish "unbounded" from zero.
type Entry struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Required bool   `json:"required"`

	Enum      []string `json:"enum,omitempty"`
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Length    *int     `json:"length,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MinItems  *int     `json:"minItems,omitempty"`
	MaxItems  *int     `json:"maxItems,omitempty"`
	TupleSize int      `json:"tupleSize,omitempty"`
}

// Schema is the composite validator keyed by field name. Entry order equals
// form definition order after group flattening; lookups go through the index.
type Schema struct {
	entries []Entry
	index   map[string]int
}

// New builds a schema from ordered entries. Duplicate names are
// last-write-wins: the later entry replaces the earlier one in place, which
// mirrors how the defaults map behaves for colliding names.
func New(entries []Entry) Schema {
	s := Schema{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		if at, dup := s.index[entry.Name]; dup {
			s.entries[at] = entry
			continue
		}
		s.index[entry.Name] = len(s.entries)
		s.entries = append(s.entries, entry)
	}
	return s
}

// Entries returns the ordered entry list.
func (s Schema) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Entry looks up a field's entry by name.
func (s Schema) Entry(name string) (Entry, bool) {
	at, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[at], true
}

// Names returns field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.entries))
	for i, entry := range s.entries {
		names[i] = entry.Name
	}
	return names
}

// Len reports the number of entries.
func (s Schema) Len() int {
	return len(s.entries)
}

// MarshalJSON emits the ordered entry array, keeping snapshots stable.
func (s Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.entries)
}

// UnmarshalJSON rebuilds the schema from an ordered entry array.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("schema: decode entries: %w", err)
	}
	*s = New(entries)
	return nil
}
