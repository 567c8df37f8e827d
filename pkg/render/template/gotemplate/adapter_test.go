package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": {Data: []byte("Hello {{ name }}!")},
		"nested/attr.tmpl": {Data: []byte(
			`{% autoescape off %}placeholder={{ hint|tsstring }}{% endautoescape %}`,
		)},
	}
}

func TestRenderTemplate_ResolvesByName(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestRender_RoutesInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "x-y" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no template source is configured")
	}
}

func TestFilter_TSString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := engine.RenderTemplate("nested/attr", map[string]any{"hint": `say "hi"`})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if got != `placeholder="say \"hi\""` {
		t.Fatalf("tsstring filter output %q", got)
	}
}

func TestFilter_JSXText(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := engine.RenderString(
		`{% autoescape off %}<FormLabel>{{ label|jsxtext }}</FormLabel>{% endautoescape %}`,
		map[string]any{"label": "1) Your name"},
	)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if got != `<FormLabel>{"1) Your name"}</FormLabel>` {
		t.Fatalf("jsxtext filter output %q", got)
	}
}

func TestFilter_Indent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := engine.RenderString("{{ block|indent:2 }}", map[string]any{"block": "a\n\nb"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	lines := strings.Split(got, "\n")
	if lines[0] != "    a" || lines[1] != "" || lines[2] != "    b" {
		t.Fatalf("indent filter output %q", got)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"brand": "Formspec"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if got != "Formspec" {
		t.Fatalf("global data not applied: %q", got)
	}
}
