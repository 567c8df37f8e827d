// Package template defines the rendering contract the code emitter consumes,
// decoupling emission logic from the concrete template engine.
package template

import "io"

// TemplateRenderer abstracts a template engine capable of rendering named
// templates or inline template content with arbitrary data.
type TemplateRenderer interface {
	// Render picks RenderTemplate or RenderString depending on whether name
	// looks like template content.
	Render(name string, data any, out ...io.Writer) (string, error)
	// RenderTemplate renders a template resolved by name from the engine's
	// configured source.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString renders inline template content.
	RenderString(content string, data any, out ...io.Writer) (string, error)
}
