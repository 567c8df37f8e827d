// Package preview dispatches a field specification to its live interactive
// control and keeps the transient interaction state in sync with the bound
// form values during preview.
package preview

import "time"

// Slot is the transient interaction state one field owns during preview:
// the current text, date, selection, file list, checked flag, location
// names, and drawing-surface handle its control writes between submissions.
type Slot struct {
	Text      string
	Checked   bool
	Number    float64
	Date      *time.Time
	Selection string
	Items     []string
	Files     []string
	Country   string
	State     string
	Canvas    string
}

// StateBag scopes preview state to one form instance. Slots are keyed by
// field name, so two fields of the same variant never alias each other's
// state. The bag also carries the bound value map the schema validates.
type StateBag struct {
	slots  map[string]*Slot
	values map[string]any
}

// NewStateBag creates an empty bag.
func NewStateBag() *StateBag {
	return &StateBag{
		slots:  make(map[string]*Slot),
		values: make(map[string]any),
	}
}

// Bind seeds the bound values, typically with the defaults synthesizer's
// output, replacing anything already held.
func (b *StateBag) Bind(values map[string]any) {
	if b == nil {
		return
	}
	b.values = make(map[string]any, len(values))
	for name, value := range values {
		b.values[name] = cloneValue(value)
	}
}

// Slot returns the state record for a field, creating it on first use.
func (b *StateBag) Slot(name string) *Slot {
	if b == nil {
		return nil
	}
	if b.slots == nil {
		b.slots = make(map[string]*Slot)
	}
	slot, ok := b.slots[name]
	if !ok {
		slot = &Slot{}
		b.slots[name] = slot
	}
	return slot
}

// Values returns the current bound value map (mutable).
func (b *StateBag) Values() map[string]any {
	if b == nil {
		return nil
	}
	return b.values
}

// Value reads one bound value.
func (b *StateBag) Value(name string) (any, bool) {
	if b == nil || b.values == nil {
		return nil, false
	}
	value, ok := b.values[name]
	return value, ok
}

func (b *StateBag) setValue(name string, value any) {
	if b == nil {
		return
	}
	if b.values == nil {
		b.values = make(map[string]any)
	}
	b.values[name] = value
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		clone := make([]any, len(v))
		for i, item := range v {
			clone[i] = cloneValue(item)
		}
		return clone
	case map[string]any:
		clone := make(map[string]any, len(v))
		for key, item := range v {
			clone[key] = cloneValue(item)
		}
		return clone
	default:
		return v
	}
}
