// Package codegen emits formatted source text for a standalone form
// component that reproduces a form definition's schema, defaults, layout, and
// controls. Emission is template-driven (one control template per variant)
// and the result passes through a deterministic formatting stage, so two
// calls with the same definition are byte-identical.
package codegen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formspec/pkg/model"
	"github.com/goliatone/go-formspec/pkg/render/template"
	gotemplate "github.com/goliatone/go-formspec/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formspec/pkg/variant"
)

const defaultComponentName = "GeneratedForm"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer template.TemplateRenderer
	registry         *variant.Registry
	componentName    string
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry substitutes the variant registry the emitter consults.
func WithRegistry(reg *variant.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithVariantConfig builds a registry from the supplied option catalogs.
func WithVariantConfig(vcfg variant.Config) Option {
	return func(cfg *config) {
		cfg.registry = variant.NewRegistry(vcfg)
	}
}

// WithComponentName overrides the emitted component identifier.
func WithComponentName(name string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			cfg.componentName = trimmed
		}
	}
}

// WithTheme passes a go-theme renderer configuration whose partials may
// override individual control templates by component name.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// Renderer turns a form definition into formatted component source text.
type Renderer struct {
	templates     template.TemplateRenderer
	registry      *variant.Registry
	componentName string
	partials      map[string]string
}

// New constructs a code renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		registry:      variant.Default(),
		componentName: defaultComponentName,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("codegen: configure template renderer: %w", err)
		}
		renderer = engine
	}

	var partials map[string]string
	if cfg.theme != nil && len(cfg.theme.Partials) > 0 {
		partials = make(map[string]string, len(cfg.theme.Partials))
		for key, value := range cfg.theme.Partials {
			partials[key] = value
		}
	}

	return &Renderer{
		templates:     renderer,
		registry:      cfg.registry,
		componentName: cfg.componentName,
		partials:      partials,
	}, nil
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "tsx"
}

// ContentType returns the MIME type for generated sources.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render emits the component source for def. Fields with unknown variants
// are omitted; a formatting failure is the only hard error surfaced from an
// otherwise well-formed definition.
func (r *Renderer) Render(ctx context.Context, def model.FormDefinition) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emitted, err := r.emit(def)
	if err != nil {
		return nil, err
	}

	formatted, err := Format(emitted)
	if err != nil {
		return nil, fmt.Errorf("codegen: format emitted source: %w", err)
	}
	return []byte(formatted), nil
}

// controlTemplate resolves the template path for a component, honouring theme
// partial overrides keyed by "controls.<component>".
func (r *Renderer) controlTemplate(component string) string {
	if r.partials != nil {
		if override := strings.TrimSpace(r.partials["controls."+component]); override != "" {
			return override
		}
	}
	return "templates/controls/" + component
}
