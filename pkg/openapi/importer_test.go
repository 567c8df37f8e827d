package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formspec/pkg/model"
)

const signupDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "Accounts", "version": "1.0.0"},
  "paths": {
    "/signup": {
      "post": {
        "operationId": "createAccount",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/Signup"}
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  },
  "components": {
    "schemas": {
      "Signup": {
        "type": "object",
        "title": "Signup",
        "required": ["email", "password"],
        "properties": {
          "email": {"type": "string", "maxLength": 120, "description": "Where we reach you"},
          "password": {"type": "string", "format": "password"},
          "birthday": {"type": "string", "format": "date"},
          "newsletter": {"type": "boolean", "default": true},
          "plan": {"type": "string", "enum": ["free", "pro"], "default": "free"},
          "topics": {"type": "array", "items": {"type": "string"}, "maxItems": 5},
          "channels": {"type": "array", "items": {"type": "string", "enum": ["email", "sms"]}},
          "budget": {"type": "number", "minimum": 0, "maximum": 500, "multipleOf": 10},
          "avatar": {"type": "string", "format": "binary"},
          "nested": {"type": "object", "properties": {"x": {"type": "string"}}}
        }
      }
    }
  }
}`

func importSignup(t *testing.T, opts ImportOptions) model.FormDefinition {
	t.Helper()
	def, err := Import(context.Background(), []byte(signupDocument), opts)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	return def
}

func fieldByName(t *testing.T, def model.FormDefinition, name string) model.FieldSpec {
	t.Helper()
	for _, field := range def.Flatten() {
		if field.Name == name {
			return field
		}
	}
	t.Fatalf("field %q not imported; got %v", name, def.Flatten())
	return model.FieldSpec{}
}

func TestImport_VariantMapping(t *testing.T) {
	def := importSignup(t, ImportOptions{Schema: "Signup"})

	cases := []struct {
		name    string
		variant model.Variant
	}{
		{name: "email", variant: model.VariantInput},
		{name: "password", variant: model.VariantPassword},
		{name: "birthday", variant: model.VariantDatePicker},
		{name: "newsletter", variant: model.VariantCheckbox},
		{name: "plan", variant: model.VariantSelect},
		{name: "topics", variant: model.VariantTagsInput},
		{name: "channels", variant: model.VariantMultiSelect},
		{name: "budget", variant: model.VariantSlider},
		{name: "avatar", variant: model.VariantFileInput},
	}
	for _, tc := range cases {
		if got := fieldByName(t, def, tc.name).Variant; got != tc.variant {
			t.Errorf("property %q mapped to %q, want %q", tc.name, got, tc.variant)
		}
	}

	for _, field := range def.Flatten() {
		if field.Name == "nested" {
			t.Fatal("nested object should be skipped")
		}
	}
}

func TestImport_ConstraintsAndDefaults(t *testing.T) {
	def := importSignup(t, ImportOptions{Schema: "Signup"})

	email := fieldByName(t, def, "email")
	if !email.Required {
		t.Fatal("required list not honoured")
	}
	if email.MaxLength == nil || *email.MaxLength != 120 {
		t.Fatalf("maxLength not carried: %+v", email)
	}
	if email.Description != "Where we reach you" {
		t.Fatalf("description not carried: %+v", email)
	}

	newsletter := fieldByName(t, def, "newsletter")
	if !newsletter.Checked {
		t.Fatal("boolean default not mapped to Checked")
	}

	plan := fieldByName(t, def, "plan")
	want := []model.Option{{Label: "Free", Value: "free"}, {Label: "Pro", Value: "pro"}}
	if diff := cmp.Diff(want, plan.Options); diff != "" {
		t.Fatalf("enum options mismatch (-want +got):\n%s", diff)
	}
	if plan.Default != "free" {
		t.Fatalf("string default not carried: %v", plan.Default)
	}

	budget := fieldByName(t, def, "budget")
	if budget.Min == nil || *budget.Min != 0 || budget.Max == nil || *budget.Max != 500 {
		t.Fatalf("slider bounds missing: %+v", budget)
	}
	if budget.Step == nil || *budget.Step != 10 {
		t.Fatalf("multipleOf not mapped to step: %+v", budget)
	}

	topics := fieldByName(t, def, "topics")
	if topics.MaxTags == nil || *topics.MaxTags != 5 {
		t.Fatalf("maxItems not mapped to maxTags: %+v", topics)
	}
}

func TestImport_DefaultsToRequestBody(t *testing.T) {
	def := importSignup(t, ImportOptions{})
	if def.FieldCount() == 0 {
		t.Fatal("expected request body schema imported without explicit selection")
	}
	fieldByName(t, def, "email")
}

func TestImport_ByOperation(t *testing.T) {
	def := importSignup(t, ImportOptions{Operation: "createAccount"})
	fieldByName(t, def, "password")
}

func TestImport_TitleOverride(t *testing.T) {
	def := importSignup(t, ImportOptions{Schema: "Signup", Title: "Join us"})
	if def.Title != "Join us" {
		t.Fatalf("title override ignored: %q", def.Title)
	}
	if importSignup(t, ImportOptions{Schema: "Signup"}).Title != "Signup" {
		t.Fatal("expected schema title as default")
	}
}

func TestImport_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := Import(ctx, nil, ImportOptions{}); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := Import(ctx, []byte(signupDocument), ImportOptions{Schema: "Missing"}); err == nil {
		t.Fatal("expected error for unknown component schema")
	}
	if _, err := Import(ctx, []byte(signupDocument), ImportOptions{Operation: "deleteAccount"}); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}
