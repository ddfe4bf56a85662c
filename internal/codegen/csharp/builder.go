package csharp

import (
	"fmt"
	"strings"

	"github.com/getlawrence/stenum/internal/syntax"
)

// Builder wraps strings.Builder with C# constructs that depend on the language version
type Builder struct {
	version syntax.Version
	sb      strings.Builder
}

// NewBuilder creates a builder rendering for version
func NewBuilder(version syntax.Version) *Builder {
	return &Builder{version: version}
}

func (b *Builder) String() string { return b.sb.String() }

// Append writes s as is
func (b *Builder) Append(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// AppendLine writes s followed by a newline
func (b *Builder) AppendLine(s string) *Builder {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	return b
}

// Line writes an empty line
func (b *Builder) Line() *Builder {
	b.sb.WriteByte('\n')
	return b
}

// Supports reports whether the target version has f
func (b *Builder) Supports(f syntax.Feature) bool { return b.version.Supports(f) }

// Indent writes count levels of four spaces
func (b *Builder) Indent(count int) *Builder {
	b.sb.WriteString(strings.Repeat("    ", count))
	return b
}

// NameOf refers to an identifier by name
func (b *Builder) NameOf(identifier string) string {
	if b.version.Supports(syntax.NameOf) {
		return fmt.Sprintf("nameof(%s)", identifier)
	}
	return fmt.Sprintf("%q", identifier)
}

// ExpressionBody completes a member signature returning expr. The signature
// must already be written at indent.
func (b *Builder) ExpressionBody(indent int, expr string) *Builder {
	if b.version.Supports(syntax.ExpressionBody) {
		return b.AppendLine(fmt.Sprintf(" => %s;", expr))
	}
	b.Line()
	b.Indent(indent).AppendLine("{")
	b.Indent(indent + 1).AppendLine(fmt.Sprintf("return %s;", expr))
	b.Indent(indent).AppendLine("}")
	return b
}

// New creates an instance of a type already named by the declaration
func (b *Builder) New(typeName, args string) string {
	if b.version.Supports(syntax.TargetTypedNew) {
		return fmt.Sprintf("new(%s)", args)
	}
	return fmt.Sprintf("new %s(%s)", typeName, args)
}

// Interpolate builds a string expression from literal text and expressions.
// Odd positions of parts are expressions, even positions are literal text.
func (b *Builder) Interpolate(parts ...string) string {
	if b.version.Supports(syntax.StringInterpolation) {
		var sb strings.Builder
		sb.WriteString(`$"`)
		for i, p := range parts {
			if i%2 == 0 {
				text := escapeString(p)
				text = strings.ReplaceAll(text, "{", "{{")
				sb.WriteString(strings.ReplaceAll(text, "}", "}}"))
			} else {
				sb.WriteString("{" + p + "}")
			}
		}
		sb.WriteString(`"`)
		return sb.String()
	}

	// literal expressions such as "Name" are folded into the surrounding text
	var pieces []string
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			pieces = append(pieces, `"`+escapeString(lit.String())+`"`)
			lit.Reset()
		}
	}
	for i, p := range parts {
		switch {
		case i%2 == 0:
			lit.WriteString(p)
		case isQuotedLiteral(p):
			lit.WriteString(p[1 : len(p)-1])
		default:
			flush()
			pieces = append(pieces, p)
		}
	}
	flush()
	if len(pieces) == 0 {
		return `""`
	}
	return strings.Join(pieces, " + ")
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func isQuotedLiteral(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' && !strings.ContainsAny(s[1:len(s)-1], `"\`)
}
