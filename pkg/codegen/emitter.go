package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formspec/internal/naming"
	"github.com/goliatone/go-formspec/internal/sanitize"
	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/schema"
	"github.com/goliatone/go-formspec/pkg/synth"
	"github.com/goliatone/go-formspec/pkg/variant"
)

const componentTemplate = "templates/component"

// emit assembles the unformatted component source: schema literal, defaults
// literal, and one render block per field group.
func (r *Renderer) emit(def model.FormDefinition) (string, error) {
	schemaDoc, _, err := synth.Schema(def, synth.WithRegistry(r.registry))
	if err != nil {
		return "", fmt.Errorf("codegen: synthesize schema: %w", err)
	}
	defaults, _, err := synth.Defaults(def, synth.WithRegistry(r.registry))
	if err != nil {
		return "", fmt.Errorf("codegen: synthesize defaults: %w", err)
	}

	schemaLines := make([]string, 0, schemaDoc.Len())
	defaultLines := make([]string, 0, schemaDoc.Len())
	for _, entry := range schemaDoc.Entries() {
		schemaLines = append(schemaLines, fmt.Sprintf("%s: %s,", entry.Name, zodExpr(entry)))
		defaultLines = append(defaultLines, fmt.Sprintf("%s: %s,", entry.Name, defaultLiteral(defaults[entry.Name])))
	}

	used := make(map[string]struct{})
	var blocks []string
	for _, group := range def.Groups {
		block, err := r.renderGroup(group, used)
		if err != nil {
			return "", err
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	data := map[string]any{
		"component_name": r.componentName,
		"title":          sanitize.Text(def.Title),
		"import_lines":   importLines(used),
		"schema_lines":   schemaLines,
		"default_lines":  defaultLines,
		"body":           strings.Join(blocks, "\n"),
		"has_file":       contains(used, "file"),
		"has_signature":  contains(used, "signature"),
		"has_location":   contains(used, "location"),
	}

	rendered, err := r.templates.RenderTemplate(componentTemplate, data)
	if err != nil {
		return "", fmt.Errorf("codegen: render component template: %w", err)
	}
	return rendered, nil
}

// renderGroup emits a single-field block, or a 12-column grid row whose
// members split evenly: halves for a pair, thirds for three, quarters beyond.
func (r *Renderer) renderGroup(group model.FieldGroup, used map[string]struct{}) (string, error) {
	var blocks []string
	for _, field := range group {
		block, err := r.renderField(field, used)
		if err != nil {
			return "", err
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	if len(blocks) == 0 {
		return "", nil
	}
	if len(blocks) == 1 {
		return blocks[0], nil
	}

	span := spanFor(len(blocks))
	var row strings.Builder
	row.WriteString("<div className=\"grid grid-cols-12 gap-4\">\n")
	for _, block := range blocks {
		row.WriteString(fmt.Sprintf("  <div className=\"col-span-%d\">\n", span))
		row.WriteString(indentLines(block, 2))
		row.WriteString("\n  </div>\n")
	}
	row.WriteString("</div>")
	return row.String(), nil
}

// renderField emits the FormField block for one field. Unknown variants are
// skipped so a single bad field never breaks the rest of the form.
func (r *Renderer) renderField(field model.FieldSpec, used map[string]struct{}) (string, error) {
	rule, err := r.registry.Lookup(field.Variant)
	if err != nil {
		return "", nil
	}

	ctx := controlContext(field, r.registry.Config())
	control, err := r.templates.RenderTemplate(r.controlTemplate(rule.Control.Component), ctx)
	if err != nil {
		return "", fmt.Errorf("codegen: render control %q for field %q: %w", rule.Control.Component, field.Name, err)
	}
	ctx["control"] = strings.TrimRight(control, "\n")
	ctx["layout"] = wrapperLayout(rule.Control.Slot)

	block, err := r.templates.RenderTemplate("templates/field", ctx)
	if err != nil {
		return "", fmt.Errorf("codegen: render field wrapper for %q: %w", field.Name, err)
	}

	used[rule.Control.Component] = struct{}{}
	return strings.TrimRight(block, "\n"), nil
}

// wrapperLayout picks the FormItem structure: boolean controls sit beside
// their label, everything else stacks.
func wrapperLayout(slot variant.SlotKind) string {
	if slot == variant.SlotChecked {
		return "inline"
	}
	return "stacked"
}

func spanFor(members int) int {
	switch members {
	case 1:
		return 12
	case 2:
		return 6
	case 3:
		return 4
	default:
		return 3
	}
}

// controlContext builds the template payload for one field. Display strings
// are sanitized before they reach generated markup.
func controlContext(field model.FieldSpec, cfg variant.Config) map[string]any {
	label := sanitize.Text(field.Label)
	if label == "" {
		label = naming.Label(field.Name)
	}

	ctx := map[string]any{
		"name":        field.Name,
		"label":       label,
		"placeholder": sanitize.Text(field.Placeholder),
		"description": sanitize.Text(field.Description),
		"required":    field.Required,
		"disabled":    field.Disabled,
		"options":     optionList(field.Options),
	}

	if field.Min != nil {
		ctx["min"] = numberLiteral(*field.Min)
	}
	if field.Max != nil {
		ctx["max"] = numberLiteral(*field.Max)
	}
	if field.Step != nil {
		ctx["step"] = numberLiteral(*field.Step)
	}
	if field.MaxLength != nil {
		ctx["max_length"] = *field.MaxLength
	}
	if field.Rows != nil {
		ctx["rows"] = *field.Rows
	}
	if field.MaxTags != nil {
		ctx["max_tags"] = *field.MaxTags
	}

	switch field.Variant {
	case model.VariantInputOTP:
		length := variant.OTPLength(field)
		ctx["otp_attr"] = fmt.Sprintf("maxLength={%d}", length)
		ctx["slot_lines"] = otpSlotLines(length)
	case model.VariantSlider:
		ctx["slider_attrs"] = sliderAttrs(field)
	case model.VariantTagsInput:
		if field.MaxTags != nil {
			ctx["max_tags_attr"] = fmt.Sprintf("maxItems={%d}", *field.MaxTags)
		}
	case model.VariantTextarea:
		if field.Rows != nil {
			ctx["rows_attr"] = fmt.Sprintf("rows={%d}", *field.Rows)
		}
		if field.MaxLength != nil {
			ctx["max_length_attr"] = fmt.Sprintf("maxLength={%d}", *field.MaxLength)
		}
	case model.VariantCombobox:
		ctx["options"] = optionList(cfg.ComboboxOptions(field))
	case model.VariantPhone, model.VariantLocationInput:
		ctx["default_country"] = field.DefaultCountry
		ctx["countries"] = optionList(cfg.CountryOptions())
	}

	return ctx
}

// sliderAttrs renders the bounds attributes with the control's documented
// fallbacks: [0, 100] stepping by 1.
func sliderAttrs(field model.FieldSpec) string {
	minVal, maxVal, step := "0", "100", "1"
	if field.Min != nil {
		minVal = numberLiteral(*field.Min)
	}
	if field.Max != nil {
		maxVal = numberLiteral(*field.Max)
	}
	if field.Step != nil {
		step = numberLiteral(*field.Step)
	}
	return fmt.Sprintf("min={%s} max={%s} step={%s}", minVal, maxVal, step)
}

func otpSlotLines(length int) []string {
	lines := make([]string, length)
	for i := range lines {
		lines[i] = fmt.Sprintf("<InputOTPSlot index={%d} />", i)
	}
	return lines
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func optionList(options []model.Option) []map[string]string {
	out := make([]map[string]string, 0, len(options))
	for _, option := range options {
		out = append(out, map[string]string{
			"label": sanitize.Text(option.Label),
			"value": option.Value,
		})
	}
	return out
}

// zodExpr renders a schema entry as the equivalent zod expression.
func zodExpr(entry schema.Entry) string {
	var expr strings.Builder

	switch entry.Kind {
	case schema.KindString:
		expr.WriteString("z.string()")
		if entry.Length != nil {
			fmt.Fprintf(&expr, ".length(%d)", *entry.Length)
		}
		if entry.MinLength != nil {
			fmt.Fprintf(&expr, ".min(%d)", *entry.MinLength)
		}
		if entry.MaxLength != nil {
			fmt.Fprintf(&expr, ".max(%d)", *entry.MaxLength)
		}
	case schema.KindEnum:
		if len(entry.Enum) == 0 {
			// Malformed choice fields keep a plain string type; the runtime
			// validator rejects every submission against an empty option set.
			expr.WriteString("z.string()")
		} else {
			values := make([]string, len(entry.Enum))
			for i, value := range entry.Enum {
				values[i] = naming.Quote(value)
			}
			fmt.Fprintf(&expr, "z.enum([%s])", strings.Join(values, ", "))
		}
	case schema.KindBoolean:
		expr.WriteString("z.boolean()")
	case schema.KindNumber:
		expr.WriteString("z.number()")
		if entry.Min != nil {
			fmt.Fprintf(&expr, ".min(%s)", numberLiteral(*entry.Min))
		}
		if entry.Max != nil {
			fmt.Fprintf(&expr, ".max(%s)", numberLiteral(*entry.Max))
		}
	case schema.KindStringList:
		expr.WriteString("z.array(z.string())")
		if entry.MinItems != nil {
			fmt.Fprintf(&expr, ".min(%d)", *entry.MinItems)
		}
		if entry.MaxItems != nil {
			fmt.Fprintf(&expr, ".max(%d)", *entry.MaxItems)
		}
	case schema.KindDate:
		expr.WriteString("z.coerce.date()")
	case schema.KindFileList:
		expr.WriteString("z.array(z.any())")
		if entry.Required {
			expr.WriteString(".min(1)")
		}
	case schema.KindTuple:
		size := entry.TupleSize
		if size == 0 {
			size = 2
		}
		members := make([]string, size)
		for i := range members {
			members[i] = "z.string()"
		}
		fmt.Fprintf(&expr, "z.tuple([%s])", strings.Join(members, ", "))
	default:
		expr.WriteString("z.any()")
	}

	if !entry.Required && entry.Kind != schema.KindBoolean {
		expr.WriteString(".optional()")
	}
	return expr.String()
}

// defaultLiteral renders a default value as source text. Unset values emit
// "undefined" so date controls start blank.
func defaultLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "undefined"
	case string:
		return naming.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return numberLiteral(v)
	case int:
		return strconv.Itoa(v)
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		quoted := make([]string, len(v))
		for i, item := range v {
			quoted[i] = naming.Quote(item)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case []any:
		if len(v) == 0 {
			return "[]"
		}
		payload, err := json.Marshal(v)
		if err != nil {
			return "[]"
		}
		return string(payload)
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return "undefined"
		}
		return string(payload)
	}
}

func numberLiteral(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func indentLines(block string, depth int) string {
	prefix := strings.Repeat("  ", depth)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// componentImports maps control components to the import lines their markup
// depends on. The shared form scaffolding imports are emitted unconditionally
// by the component template.
var componentImports = map[string][]string{
	"input":          {`import { Input } from "@/components/ui/input";`},
	"password":       {`import { PasswordInput } from "@/components/ui/password-input";`},
	"textarea":       {`import { Textarea } from "@/components/ui/textarea";`},
	"checkbox":       {`import { Checkbox } from "@/components/ui/checkbox";`},
	"switch":         {`import { Switch } from "@/components/ui/switch";`},
	"select":         {`import { Select, SelectContent, SelectItem, SelectTrigger, SelectValue } from "@/components/ui/select";`},
	"combobox":       {`import { Command, CommandEmpty, CommandGroup, CommandInput, CommandItem, CommandList } from "@/components/ui/command";`, `import { Popover, PopoverContent, PopoverTrigger } from "@/components/ui/popover";`, `import { Check, ChevronsUpDown } from "lucide-react";`},
	"multiselect":    {`import { MultiSelector, MultiSelectorContent, MultiSelectorInput, MultiSelectorItem, MultiSelectorList, MultiSelectorTrigger } from "@/components/ui/multi-select";`},
	"datepicker":     {`import { Calendar } from "@/components/ui/calendar";`, `import { Popover, PopoverContent, PopoverTrigger } from "@/components/ui/popover";`, `import { format } from "date-fns";`, `import { CalendarIcon } from "lucide-react";`},
	"datetimepicker": {`import { DatetimePicker } from "@/components/ui/datetime-picker";`},
	"smart-datetime": {`import { SmartDatetimeInput } from "@/components/ui/smart-datetime-input";`},
	"file":           {`import { FileInput, FileUploader, FileUploaderContent, FileUploaderItem } from "@/components/ui/file-upload";`, `import { CloudUpload, Paperclip } from "lucide-react";`},
	"phone":          {`import { PhoneInput } from "@/components/ui/phone-input";`},
	"slider":         {`import { Slider } from "@/components/ui/slider";`},
	"signature":      {`import { SignatureInput } from "@/components/ui/signature-input";`},
	"tags":           {`import { TagsInput } from "@/components/ui/tags-input";`},
	"otp":            {`import { InputOTP, InputOTPGroup, InputOTPSlot } from "@/components/ui/input-otp";`},
	"location":       {`import { LocationSelector } from "@/components/ui/location-input";`},
}

// importLines aggregates the per-component imports for every used control,
// deduplicated and sorted for determinism. Controls that need React hooks in
// the component body pull those imports in too.
func importLines(used map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var lines []string
	add := func(line string) {
		if _, dup := seen[line]; dup {
			return
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	for component := range used {
		for _, line := range componentImports[component] {
			add(line)
		}
	}
	if contains(used, "signature") {
		add(`import { useRef } from "react";`)
	}
	if contains(used, "location") {
		add(`import { useState } from "react";`)
	}
	sort.Strings(lines)
	return lines
}
