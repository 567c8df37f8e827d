package schema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNew_LastWriteWinsKeepsPosition(t *testing.T) {
	doc := New([]Entry{
		{Name: "email", Kind: KindString},
		{Name: "age", Kind: KindNumber},
		{Name: "email", Kind: KindString, Required: true},
	})

	if doc.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", doc.Len())
	}
	if diff := cmp.Diff([]string{"email", "age"}, doc.Names()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	entry, ok := doc.Entry("email")
	if !ok || !entry.Required {
		t.Fatalf("expected replacement entry to win, got %+v (ok=%v)", entry, ok)
	}
}

func TestMarshalJSON_StableOrder(t *testing.T) {
	doc := New([]Entry{
		{Name: "b", Kind: KindString},
		{Name: "a", Kind: KindBoolean},
	})

	first, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("marshalling is not deterministic:\n%s\n%s", first, second)
	}

	var decoded Schema
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(doc.Names(), decoded.Names()); diff != "" {
		t.Fatalf("order lost in round trip (-want +got):\n%s", diff)
	}
}

func TestValidate_RequiredAndOptional(t *testing.T) {
	doc := New([]Entry{
		{Name: "email", Kind: KindString, Required: true, MinLength: intPtr(1)},
		{Name: "bio", Kind: KindString},
	})

	issues := doc.Validate(map[string]any{"email": "", "bio": ""})
	if len(issues) != 1 || issues[0].Field != "email" || issues[0].Message != "is required" {
		t.Fatalf("expected single required issue for email, got %v", issues)
	}

	if issues := doc.Validate(map[string]any{"email": "a@b.co"}); len(issues) != 0 {
		t.Fatalf("expected clean submission, got %v", issues)
	}
}

func TestValidate_Kinds(t *testing.T) {
	cases := []struct {
		name   string
		entry  Entry
		value  any
		issues int
	}{
		{
			name:  "string within bounds",
			entry: Entry{Name: "f", Kind: KindString, MinLength: intPtr(2), MaxLength: intPtr(5)},
			value: "abc",
		},
		{
			name:   "string too short",
			entry:  Entry{Name: "f", Kind: KindString, MinLength: intPtr(2)},
			value:  "a",
			issues: 1,
		},
		{
			name:   "string exact length",
			entry:  Entry{Name: "f", Kind: KindString, Length: intPtr(6)},
			value:  "12345",
			issues: 1,
		},
		{
			name:  "enum accepts member",
			entry: Entry{Name: "f", Kind: KindEnum, Enum: []string{"a", "b"}},
			value: "b",
		},
		{
			name:   "enum rejects non-member",
			entry:  Entry{Name: "f", Kind: KindEnum, Enum: []string{"a", "b"}},
			value:  "c",
			issues: 1,
		},
		{
			name:   "empty enum rejects everything",
			entry:  Entry{Name: "f", Kind: KindEnum},
			value:  "anything",
			issues: 1,
		},
		{
			name:  "number in range",
			entry: Entry{Name: "f", Kind: KindNumber, Min: floatPtr(0), Max: floatPtr(10)},
			value: 5,
		},
		{
			name:   "number above max",
			entry:  Entry{Name: "f", Kind: KindNumber, Max: floatPtr(10)},
			value:  11.5,
			issues: 1,
		},
		{
			name:   "number wrong type",
			entry:  Entry{Name: "f", Kind: KindNumber},
			value:  "12",
			issues: 1,
		},
		{
			name:  "boolean",
			entry: Entry{Name: "f", Kind: KindBoolean},
			value: true,
		},
		{
			name:  "string list with enum",
			entry: Entry{Name: "f", Kind: KindStringList, Enum: []string{"x", "y"}},
			value: []string{"x"},
		},
		{
			name:   "string list rejects stranger",
			entry:  Entry{Name: "f", Kind: KindStringList, Enum: []string{"x"}},
			value:  []string{"x", "z"},
			issues: 1,
		},
		{
			name:   "string list over max items",
			entry:  Entry{Name: "f", Kind: KindStringList, MaxItems: intPtr(1)},
			value:  []string{"a", "b"},
			issues: 1,
		},
		{
			name:  "date as layout string",
			entry: Entry{Name: "f", Kind: KindDate},
			value: "2026-08-24",
		},
		{
			name:   "date garbage",
			entry:  Entry{Name: "f", Kind: KindDate},
			value:  "soon",
			issues: 1,
		},
		{
			name:  "tuple of two",
			entry: Entry{Name: "f", Kind: KindTuple, TupleSize: 2},
			value: []string{"Portugal", "Lisbon"},
		},
		{
			name:   "tuple wrong arity",
			entry:  Entry{Name: "f", Kind: KindTuple, TupleSize: 2},
			value:  []string{"Portugal"},
			issues: 1,
		},
		{
			name:  "file list",
			entry: Entry{Name: "f", Kind: KindFileList},
			value: []any{"a.pdf"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := New([]Entry{tc.entry})
			issues := doc.Validate(map[string]any{tc.entry.Name: tc.value})
			if len(issues) != tc.issues {
				t.Fatalf("expected %d issue(s), got %v", tc.issues, issues)
			}
		})
	}
}

func TestValidate_RequiredBooleanUnset(t *testing.T) {
	doc := New([]Entry{{Name: "terms", Kind: KindBoolean, Required: true}})
	issues := doc.Validate(map[string]any{})
	if len(issues) != 1 {
		t.Fatalf("expected required issue for missing boolean, got %v", issues)
	}
	if issues := doc.Validate(map[string]any{"terms": false}); len(issues) != 0 {
		t.Fatalf("false is a defined boolean, got %v", issues)
	}
}
