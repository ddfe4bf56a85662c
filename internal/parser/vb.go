package parser

import (
	"bufio"
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/getlawrence/stenum/internal/enum"
)

var (
	vbNamespace    = regexp.MustCompile(`(?i)^namespace\s+([\p{L}_][\p{L}\p{N}_]*(?:\.[\p{L}_][\p{L}\p{N}_]*)*)$`)
	vbEndNamespace = regexp.MustCompile(`(?i)^end\s+namespace$`)
	vbEnum         = regexp.MustCompile(`(?i)^(?:(?:public|friend|private|protected|shadows)\s+)*enum\s+([\p{L}_][\p{L}\p{N}_]*)(?:\s+as\s+([\w.]+))?$`)
	vbEndEnum      = regexp.MustCompile(`(?i)^end\s+enum$`)
	vbMember       = regexp.MustCompile(`^(?:<[^>]*>\s*)?\[?([\p{L}_][\p{L}\p{N}_]*)\]?(?:\s*=\s*(.+))?$`)
	vbLiteral      = regexp.MustCompile(`(?i)^(?:&[hob][0-9a-f_]+|[0-9][0-9_]*)(?:us|ui|ul|s|i|l|%|&)?$`)
	vbReference    = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*(?:\.[\p{L}_][\p{L}\p{N}_]*)?$`)
)

// VBParser reads a Visual Basic .NET Enum block
type VBParser struct{}

// NewVBParser creates a Visual Basic parser
func NewVBParser() *VBParser { return &VBParser{} }

func (p *VBParser) Dialect() Dialect { return VB }

type vbEnumBlock struct {
	name       string
	namespace  string
	underlying enum.UnderlyingType
	scope      *scope
}

// Parse reads the single Enum ... End Enum block in text
func (p *VBParser) Parse(ctx context.Context, text string) (*enum.Descriptor, error) {
	var (
		namespaces []string
		current    *vbEnumBlock
		found      []*vbEnumBlock
		errs       []string
	)
	fail := func(line int, format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf("(%d,1): %s", line, fmt.Sprintf(format, args...)))
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := stripVBComment(scanner.Text())
		if line == "" || strings.HasPrefix(strings.ToLower(line), "imports ") || strings.HasPrefix(strings.ToLower(line), "option ") {
			continue
		}

		switch {
		case current != nil && vbEndEnum.MatchString(line):
			found = append(found, current)
			current = nil
		case current != nil:
			if err := p.addMember(current.scope, line); err != nil {
				fail(lineNo, "%v", err)
			}
		case vbNamespace.MatchString(line):
			namespaces = append(namespaces, vbNamespace.FindStringSubmatch(line)[1])
		case vbEndNamespace.MatchString(line):
			if len(namespaces) == 0 {
				fail(lineNo, "'End Namespace' must be preceded by a matching 'Namespace'")
				continue
			}
			namespaces = namespaces[:len(namespaces)-1]
		case vbEnum.MatchString(line):
			m := vbEnum.FindStringSubmatch(line)
			underlying := enum.Int32
			if m[2] != "" {
				t, err := enum.ParseUnderlyingType(m[2])
				if err != nil {
					fail(lineNo, "enums must be declared as an integral type, found %q", m[2])
				} else {
					underlying = t
				}
			}
			current = &vbEnumBlock{
				name:       m[1],
				namespace:  strings.Join(namespaces, "."),
				underlying: underlying,
				scope:      newScope(m[1], underlying),
			}
		case vbEndEnum.MatchString(line):
			fail(lineNo, "'End Enum' must be preceded by a matching 'Enum'")
		default:
			fail(lineNo, "statement is not valid outside of an enum: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read VB source: %w", err)
	}
	if current != nil {
		fail(lineNo, "'Enum' must end with a matching 'End Enum'")
	}
	if len(namespaces) > 0 {
		fail(lineNo, "'Namespace' statement must end with a matching 'End Namespace'")
	}

	if len(errs) > 0 {
		return nil, &CompilationError{Count: len(errs), First: errs[0]}
	}
	switch len(found) {
	case 0:
		return nil, compileError("no enum declaration found")
	case 1:
	default:
		return nil, compileError("expected a single enum declaration, found %d", len(found))
	}

	block := found[0]
	return describe(block.name, block.namespace, block.underlying, block.scope.members)
}

func (p *VBParser) addMember(s *scope, line string) error {
	m := vbMember.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("statement cannot appear within an Enum body: %q", line)
	}
	value := s.next()
	if expr := strings.TrimSpace(m[2]); expr != "" {
		v, err := evaluateVB(s, expr)
		if err != nil {
			return err
		}
		value = v
	}
	return s.add(m[1], value)
}

// evaluateVB supports literals and earlier member references, optionally negated
func evaluateVB(s *scope, expr string) (*big.Int, error) {
	expr = strings.TrimSpace(expr)
	for strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	if strings.HasPrefix(expr, "-") || strings.HasPrefix(expr, "+") {
		v, err := evaluateVB(s, expr[1:])
		if err != nil {
			return nil, err
		}
		return unary(expr[:1], v)
	}
	switch {
	case vbLiteral.MatchString(expr):
		return parseVBInteger(expr)
	case vbReference.MatchString(expr):
		return s.lookup(expr)
	default:
		return nil, fmt.Errorf("%q is not a supported constant expression", expr)
	}
}

// stripVBComment removes a trailing ' or REM comment outside string literals
func stripVBComment(line string) string {
	inString := false
	for i, r := range line {
		switch {
		case r == '"':
			inString = !inString
		case r == '\'' && !inString:
			line = line[:i]
			return strings.TrimSpace(line)
		}
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "rem") || (len(line) > 3 && strings.EqualFold(line[:4], "rem ")) {
		return ""
	}
	return line
}
