package schema

import (
	"fmt"
	"time"
)

// Issue is one field-level validation failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Validate checks a submitted value map against every entry, in schema order.
// Empty or unset values pass for optional entries; validation is meant to run
// on submit or blur, never on mount, so type-appropriate empty defaults are
// always acceptable until a field is required.
func (s Schema) Validate(values map[string]any) []Issue {
	var issues []Issue
	for _, entry := range s.entries {
		issues = append(issues, entry.validate(values[entry.Name])...)
	}
	return issues
}

func (e Entry) validate(value any) []Issue {
	if isEmptyValue(value) {
		if e.Required {
			return []Issue{{Field: e.Name, Message: "is required"}}
		}
		if e.Kind == KindBoolean {
			// Booleans are always defined; an unset checkbox reads as false.
			return nil
		}
		return nil
	}

	switch e.Kind {
	case KindString:
		return e.validateString(value)
	case KindEnum:
		return e.validateEnum(value)
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a boolean, got %T", value)}}
		}
	case KindNumber:
		return e.validateNumber(value)
	case KindStringList:
		return e.validateStringList(value)
	case KindDate:
		return e.validateDate(value)
	case KindFileList:
		if _, ok := toAnyList(value); !ok {
			return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a file list, got %T", value)}}
		}
	case KindTuple:
		return e.validateTuple(value)
	}
	return nil
}

func (e Entry) validateString(value any) []Issue {
	text, ok := value.(string)
	if !ok {
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a string, got %T", value)}}
	}
	var issues []Issue
	if e.Length != nil && len([]rune(text)) != *e.Length {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must be exactly %d characters", *e.Length)})
	}
	if e.MinLength != nil && len([]rune(text)) < *e.MinLength {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must be at least %d characters", *e.MinLength)})
	}
	if e.MaxLength != nil && len([]rune(text)) > *e.MaxLength {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must be at most %d characters", *e.MaxLength)})
	}
	return issues
}

func (e Entry) validateEnum(value any) []Issue {
	text, ok := value.(string)
	if !ok {
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a string, got %T", value)}}
	}
	// An empty option set rejects every submitted value; malformed choice
	// fields synthesize with an empty enum instead of failing upstream.
	for _, allowed := range e.Enum {
		if text == allowed {
			return nil
		}
	}
	return []Issue{{Field: e.Name, Message: fmt.Sprintf("%q is not one of the allowed options", text)}}
}

func (e Entry) validateNumber(value any) []Issue {
	num, ok := toNumber(value)
	if !ok {
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a number, got %T", value)}}
	}
	var issues []Issue
	if e.Min != nil && num < *e.Min {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must be at least %v", *e.Min)})
	}
	if e.Max != nil && num > *e.Max {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must be at most %v", *e.Max)})
	}
	return issues
}

func (e Entry) validateStringList(value any) []Issue {
	items, ok := toStringList(value)
	if !ok {
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a list of strings, got %T", value)}}
	}
	var issues []Issue
	if e.MinItems != nil && len(items) < *e.MinItems {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must contain at least %d items", *e.MinItems)})
	}
	if e.MaxItems != nil && len(items) > *e.MaxItems {
		issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("must contain at most %d items", *e.MaxItems)})
	}
	if len(e.Enum) > 0 {
		allowed := make(map[string]struct{}, len(e.Enum))
		for _, item := range e.Enum {
			allowed[item] = struct{}{}
		}
		for _, item := range items {
			if _, ok := allowed[item]; !ok {
				issues = append(issues, Issue{Field: e.Name, Message: fmt.Sprintf("%q is not one of the allowed options", item)})
			}
		}
	}
	return issues
}

func (e Entry) validateDate(value any) []Issue {
	switch v := value.(type) {
	case time.Time:
		return nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if _, err := time.Parse(layout, v); err == nil {
				return nil
			}
		}
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("%q is not a valid date", v)}}
	default:
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a date, got %T", value)}}
	}
}

func (e Entry) validateTuple(value any) []Issue {
	items, ok := toStringList(value)
	if !ok {
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("expected a tuple of strings, got %T", value)}}
	}
	size := e.TupleSize
	if size == 0 {
		size = 2
	}
	if len(items) != size {
		return []Issue{{Field: e.Name, Message: fmt.Sprintf("must contain exactly %d values", size)}}
	}
	return nil
}

// isEmptyValue reports whether value counts as "unset" for the required
// check: nil, empty string, empty list, or the zero time.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case time.Time:
		return v.IsZero()
	case bool:
		return false
	default:
		return false
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
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

func toAnyList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}
