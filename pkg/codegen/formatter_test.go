package codegen

import (
	"errors"
	"testing"
)

func TestFormat_NormalizesWhitespace(t *testing.T) {
	src := "\n\n\tconst a = 1;  \n\n\n\nconst b = 2;\n\n"
	got, err := Format(src)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "  const a = 1;\n\nconst b = 2;\n"
	if got != want {
		t.Fatalf("formatted output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	src := "function x() {\n  return [1, 2];\n}\n"
	once, err := Format(src)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	twice, err := Format(once)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if once != twice {
		t.Fatalf("formatting is not idempotent:\n%q\n%q", once, twice)
	}
}

func TestFormat_UnbalancedDelimiters(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "dangling open brace", src: "const a = {\n"},
		{name: "stray closer", src: "const a = 1;\n}\n"},
		{name: "mismatched pair", src: "const a = [1, 2);\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Format(tc.src)
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected FormatError, got %v", err)
			}
		})
	}
}

func TestFormat_DelimitersInsideStringsIgnored(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "double quoted", src: `const a = "({[";` + "\n"},
		{name: "template literal", src: "const a = `({[\n)]}`;\n"},
		{name: "line comment", src: "const a = 1; // ({[\n"},
		{name: "escaped quote", src: `const a = "\"{";` + "\n"},
		{name: "apostrophe in prose", src: `toast("Don't panic (yet)");` + "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Format(tc.src); err != nil {
				t.Fatalf("expected balanced source, got %v", err)
			}
		})
	}
}

func TestFormat_ReportsLine(t *testing.T) {
	_, err := Format("const ok = 1;\nconst bad = (\n")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Delimiter != '(' || formatErr.Line != 2 {
		t.Fatalf("expected open paren at line 2, got %q line %d", formatErr.Delimiter, formatErr.Line)
	}
}
