package formspec

import (
	"io/fs"

	"github.com/goliatone/go-formspec/pkg/codegen"
)

// EmbeddedTemplates exposes the built-in component and control templates so
// callers can extend or partially override them without importing the
// codegen package directly.
func EmbeddedTemplates() fs.FS {
	return codegen.TemplatesFS()
}
