package codegen

import (
	"fmt"
	"strings"
)

// FormatError reports malformed intermediate text: a delimiter left open or
// closed without a match. This is the one condition that propagates as a hard
// failure, since unformatted code would silently corrupt the copy-code flow.
type FormatError struct {
	Delimiter byte
	Line      int
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("codegen: unbalanced %q at line %d", e.Delimiter, e.Line)
	}
	return fmt.Sprintf("codegen: unbalanced %q", e.Delimiter)
}

// Format is the deterministic formatting pass applied to emitted source:
// tabs become two spaces, trailing whitespace is trimmed, runs of blank
// lines collapse to one, and the text ends with exactly one newline. The
// delimiter balance of the emitted text is verified first; formatting never
// reorders or rewrites content, so equal input yields equal output.
func Format(src string) (string, error) {
	if err := checkBalance(src); err != nil {
		return "", err
	}

	lines := strings.Split(strings.ReplaceAll(src, "\t", "  "), "\n")
	out := make([]string, 0, len(lines))
	blank := true // swallow leading blank lines
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n") + "\n", nil
}

// checkBalance verifies parens, brackets, and braces pair up outside string
// literals and line comments.
func checkBalance(src string) error {
	type open struct {
		delim byte
		line  int
	}
	var stack []open

	line := 1
	var quote byte // active string delimiter, 0 when outside strings

	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == '\n' {
			line++
			if quote != 0 && quote != '`' {
				// single-line string never closed; the delimiter check below
				// reports the dangling brace if one exists, but the string
				// itself ends at the newline
				quote = 0
			}
			continue
		}

		if quote != 0 {
			if ch == '\\' {
				i++
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch ch {
		// The emitter only produces double-quoted and template literals;
		// apostrophes in prose must not open a string.
		case '"', '`':
			quote = ch
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				for i < len(src) && src[i] != '\n' {
					i++
				}
				line++
			}
		case '(', '[', '{':
			stack = append(stack, open{delim: ch, line: line})
		case ')', ']', '}':
			if len(stack) == 0 {
				return &FormatError{Delimiter: ch, Line: line}
			}
			top := stack[len(stack)-1]
			if closerFor(top.delim) != ch {
				return &FormatError{Delimiter: ch, Line: line}
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &FormatError{Delimiter: top.delim, Line: top.line}
	}
	return nil
}

func closerFor(opener byte) byte {
	switch opener {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	default:
		return 0
	}
}
