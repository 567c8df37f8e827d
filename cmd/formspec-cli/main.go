package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	json "github.com/goccy/go-json"

	formspec "github.com/goliatone/go-formspec"
	"github.com/goliatone/go-formspec/pkg/codegen"
	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/openapi"
	"github.com/goliatone/go-formspec/pkg/preview"
	"github.com/goliatone/go-formspec/pkg/variant"
)

func main() {
	input := flag.String("input", "", "form definition file (.json or .yaml)")
	artifact := flag.String("artifact", "code", "artifact to emit: schema, defaults, or code")
	output := flag.String("output", "", "output file (stdout if empty)")
	component := flag.String("component", "", "component name for generated code")
	fromOpenAPI := flag.Bool("openapi", false, "treat input as an OpenAPI 3 document")
	schemaName := flag.String("schema", "", "component schema to import when -openapi is set")
	runPreview := flag.Bool("preview", false, "fill the form interactively and validate the result")
	flag.Parse()

	if *input == "" {
		log.Fatalf("missing -input")
	}

	ctx := context.Background()
	def, err := loadDefinition(ctx, *input, *fromOpenAPI, *schemaName)
	if err != nil {
		log.Fatalf("Failed to load definition: %v", err)
	}
	for _, warning := range def.Validate() {
		log.Printf("warning: %s", warning)
	}

	if *runPreview {
		if err := interactivePreview(def); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	payload, err := emitArtifact(ctx, def, *artifact, *component)
	if err != nil {
		log.Fatalf("Failed to emit %s: %v", *artifact, err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Artifact written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadDefinition(ctx context.Context, path string, fromOpenAPI bool, schemaName string) (model.FormDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormDefinition{}, err
	}
	if fromOpenAPI {
		return openapi.Import(ctx, data, openapi.ImportOptions{Schema: schemaName})
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return model.DecodeYAML(data)
	default:
		return model.DecodeJSON(data)
	}
}

func emitArtifact(ctx context.Context, def model.FormDefinition, artifact, component string) ([]byte, error) {
	switch artifact {
	case "schema":
		doc, warnings, err := formspec.SynthesizeSchema(def)
		if err != nil {
			return nil, err
		}
		reportWarnings(warnings)
		return json.MarshalIndent(doc, "", "  ")
	case "defaults":
		defaults, warnings, err := formspec.SynthesizeDefaults(def)
		if err != nil {
			return nil, err
		}
		reportWarnings(warnings)
		return json.MarshalIndent(defaults, "", "  ")
	case "code":
		var options []codegen.Option
		if component != "" {
			options = append(options, codegen.WithComponentName(component))
		}
		return formspec.SynthesizeCode(ctx, def, options...)
	default:
		return nil, fmt.Errorf("unknown artifact %q (want schema, defaults, or code)", artifact)
	}
}

func reportWarnings(warnings []model.Warning) {
	for _, warning := range warnings {
		log.Printf("warning: %s", warning)
	}
}

// interactivePreview walks every field through its dispatched control,
// collecting answers into the state bag, then validates the bound values
// against the synthesized schema and prints them.
func interactivePreview(def model.FormDefinition) error {
	schemaDoc, warnings, err := formspec.SynthesizeSchema(def)
	if err != nil {
		return err
	}
	reportWarnings(warnings)

	defaults, _, err := formspec.SynthesizeDefaults(def)
	if err != nil {
		return err
	}

	bag := preview.NewStateBag()
	bag.Bind(defaults)

	for _, field := range def.Flatten() {
		ctrl, ok := preview.Dispatch(field, bag)
		if !ok {
			log.Printf("warning: skipping %q: unknown variant %q", field.Name, field.Variant)
			continue
		}
		if err := promptField(field, ctrl); err != nil {
			return err
		}
	}

	if issues := schemaDoc.Validate(bag.Values()); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Printf("invalid: %s: %s\n", issue.Field, issue.Message)
		}
		return fmt.Errorf("%d validation issue(s)", len(issues))
	}

	payload, err := json.MarshalIndent(bag.Values(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

func promptField(field model.FieldSpec, ctrl preview.Control) error {
	label, _ := ctrl.Props["label"].(string)
	if label == "" {
		label = field.Name
	}

	switch {
	case ctrl.Component == "password":
		var answer string
		if err := survey.AskOne(&survey.Password{Message: label}, &answer); err != nil {
			return err
		}
		ctrl.OnChange(answer)
	case ctrl.Component == "textarea":
		var answer string
		if err := survey.AskOne(&survey.Multiline{Message: label}, &answer); err != nil {
			return err
		}
		ctrl.OnChange(answer)
	case ctrl.Slot == variant.SlotChecked:
		checked, _ := ctrl.Value().(bool)
		answer := checked
		if err := survey.AskOne(&survey.Confirm{Message: label, Default: checked}, &answer); err != nil {
			return err
		}
		ctrl.OnChange(answer)
	case ctrl.Slot == variant.SlotSelection && field.Variant == model.VariantMultiSelect:
		var answers []string
		prompt := &survey.MultiSelect{Message: label, Options: optionValues(ctrl)}
		if err := survey.AskOne(prompt, &answers); err != nil {
			return err
		}
		ctrl.OnChange(answers)
	case ctrl.Slot == variant.SlotSelection:
		var answer string
		prompt := &survey.Select{Message: label, Options: optionValues(ctrl)}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}
		ctrl.OnChange(answer)
	case ctrl.Slot == variant.SlotNumber:
		var raw string
		if err := survey.AskOne(&survey.Input{Message: label}, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("field %q: %w", field.Name, err)
		}
		ctrl.OnChange(number)
	case ctrl.Slot == variant.SlotDate, ctrl.Slot == variant.SlotDatetime:
		var raw string
		hint := label + " (YYYY-MM-DD or RFC3339)"
		if err := survey.AskOne(&survey.Input{Message: hint}, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		when, err := parseWhen(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("field %q: %w", field.Name, err)
		}
		ctrl.OnChange(when)
	case ctrl.Slot == variant.SlotTags, ctrl.Slot == variant.SlotFiles:
		var raw string
		if err := survey.AskOne(&survey.Input{Message: label + " (comma separated)"}, &raw); err != nil {
			return err
		}
		ctrl.OnChange(splitList(raw))
	case ctrl.Slot == variant.SlotLocation:
		var country, region string
		if err := survey.AskOne(&survey.Input{Message: label + " country"}, &country); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Input{Message: label + " state"}, &region); err != nil {
			return err
		}
		ctrl.OnChange([]string{country, region})
	default:
		var answer string
		if err := survey.AskOne(&survey.Input{Message: label}, &answer); err != nil {
			return err
		}
		ctrl.OnChange(answer)
	}
	return nil
}

func optionValues(ctrl preview.Control) []string {
	options, _ := ctrl.Props["options"].([]model.Option)
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return values
}

func parseWhen(raw string) (time.Time, error) {
	if when, err := time.Parse(time.RFC3339, raw); err == nil {
		return when, nil
	}
	return time.Parse("2006-01-02", raw)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
