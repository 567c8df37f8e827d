package codegen

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templateFiles embed.FS

// TemplatesFS exposes the embedded control and component templates so callers
// can reuse or extend them without shipping files alongside the binary.
func TemplatesFS() fs.FS {
	return templateFiles
}
