// Package parser turns enumeration source text into enum descriptors.
//
// C# input is parsed with tree-sitter, Visual Basic input with a line
// oriented reader. Both report problems as *CompilationError.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getlawrence/stenum/internal/enum"
)

// ErrCompilation is wrapped by every CompilationError
var ErrCompilation = errors.New("compilation failed")

// CompilationError reports the diagnostics found while parsing an enumeration
type CompilationError struct {
	// Count is the number of diagnostics
	Count int
	// First describes the first diagnostic in source order
	First string
}

func (e *CompilationError) Error() string {
	if e.Count == 1 {
		return fmt.Sprintf("compilation failed with 1 error: %s", e.First)
	}
	return fmt.Sprintf("compilation failed with %d errors, first: %s", e.Count, e.First)
}

func (e *CompilationError) Unwrap() error { return ErrCompilation }

func compileError(format string, args ...interface{}) *CompilationError {
	return &CompilationError{Count: 1, First: fmt.Sprintf(format, args...)}
}

// Dialect identifies a source language
type Dialect string

const (
	CSharp Dialect = "csharp"
	VB     Dialect = "vb"
)

// Dialects returns the supported dialects
func Dialects() []Dialect { return []Dialect{CSharp, VB} }

// Extension returns the conventional file extension including the dot
func (d Dialect) Extension() string {
	if d == VB {
		return ".vb"
	}
	return ".cs"
}

// ParseDialect accepts the dialect names and a few common aliases
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csharp", "c#", "cs":
		return CSharp, nil
	case "vb", "vbnet", "vb.net", "visual basic", "visual basic .net":
		return VB, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (valid: csharp, vb)", s)
	}
}

// Parser reads exactly one enumeration declaration from source text
type Parser interface {
	Dialect() Dialect
	Parse(ctx context.Context, text string) (*enum.Descriptor, error)
}

// New returns the parser for a dialect
func New(d Dialect) (Parser, error) {
	switch d {
	case CSharp:
		return NewCSharpParser(), nil
	case VB:
		return NewVBParser(), nil
	default:
		return nil, fmt.Errorf("no parser for dialect %q", d)
	}
}

// describe wraps descriptor validation into the compilation error the caller expects
func describe(name, namespace string, underlying enum.UnderlyingType, members []enum.Member) (*enum.Descriptor, error) {
	desc, err := enum.New(name, namespace, underlying, members)
	if err != nil {
		if errors.Is(err, enum.ErrEmpty) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", compileError("%v", err), err)
	}
	return desc, nil
}
