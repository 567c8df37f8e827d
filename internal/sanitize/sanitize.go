// Package sanitize strips markup from user-supplied display strings before
// they are embedded in emitted source text or preview control props.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text removes every HTML element and attribute from raw, returning the
// trimmed plain text. Labels, placeholders, and descriptions pass through
// here on their way into generated markup.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := policy().Sanitize(trimmed)
	// bluemonday entity-encodes its output; the emitters escape again on
	// their own, so decode back to plain text.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func policy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
