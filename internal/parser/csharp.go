package parser

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/getlawrence/stenum/internal/enum"
)

// CSharpParser reads a C# enum declaration using the tree-sitter grammar
type CSharpParser struct{}

// NewCSharpParser creates a C# parser
func NewCSharpParser() *CSharpParser { return &CSharpParser{} }

func (p *CSharpParser) Dialect() Dialect { return CSharp }

// Parse reads the single enum declared in text
func (p *CSharpParser) Parse(ctx context.Context, text string) (*enum.Descriptor, error) {
	content := []byte(text)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse C# source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if cerr := syntaxErrors(root); cerr != nil {
		return nil, cerr
	}

	var enums []*sitter.Node
	collect(root, "enum_declaration", &enums)
	switch len(enums) {
	case 0:
		return nil, compileError("no enum declaration found")
	case 1:
	default:
		return nil, compileError("%s: expected a single enum declaration, found %d", position(enums[1]), len(enums))
	}

	return p.describe(enums[0], root, content)
}

func (p *CSharpParser) describe(node, root *sitter.Node, content []byte) (*enum.Descriptor, error) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil, compileError("%s: enum declaration without a name", position(node))
	}
	name := nameNode.Content(content)

	underlying := enum.Int32
	if bases := childOfType(node, "base_list"); bases != nil {
		typeName := strings.TrimSpace(strings.TrimPrefix(bases.Content(content), ":"))
		t, err := enum.ParseUnderlyingType(typeName)
		if err != nil {
			return nil, compileError("%s: type byte, sbyte, short, ushort, int, uint, long, or ulong expected, found %q", position(bases), typeName)
		}
		underlying = t
	}

	s := newScope(name, underlying)
	body := node.ChildByFieldName("body")
	if body == nil {
		body = childOfType(node, "enum_member_declaration_list")
	}
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			member := body.NamedChild(i)
			if member.Type() != "enum_member_declaration" {
				continue
			}
			if err := p.addMember(s, member, content); err != nil {
				return nil, err
			}
		}
	}

	return describe(name, namespaceOf(node, root, content), underlying, s.members)
}

func (p *CSharpParser) addMember(s *scope, member *sitter.Node, content []byte) error {
	var nameNode, valueNode *sitter.Node
	assigned := false
	for i := 0; i < int(member.ChildCount()); i++ {
		child := member.Child(i)
		switch {
		case child.Type() == "=":
			assigned = true
		case assigned && child.IsNamed() && valueNode == nil:
			valueNode = child
		case !assigned && child.Type() == "identifier":
			nameNode = child
		}
	}
	if nameNode == nil {
		return compileError("%s: enum member without a name", position(member))
	}
	name := nameNode.Content(content)

	value := s.next()
	if valueNode != nil {
		v, err := evaluate(s, valueNode, content)
		if err != nil {
			return compileError("%s: %v", position(valueNode), err)
		}
		value = v
	}
	if err := s.add(name, value); err != nil {
		return compileError("%s: %v", position(nameNode), err)
	}
	return nil
}

// evaluate folds a constant member initializer
func evaluate(s *scope, node *sitter.Node, content []byte) (*big.Int, error) {
	switch node.Type() {
	case "integer_literal":
		return parseCSharpInteger(node.Content(content))
	case "identifier", "member_access_expression", "qualified_name":
		return s.lookup(strings.Join(strings.Fields(node.Content(content)), ""))
	case "parenthesized_expression":
		if node.NamedChildCount() != 1 {
			return nil, fmt.Errorf("malformed parenthesized expression")
		}
		return evaluate(s, node.NamedChild(0), content)
	case "prefix_unary_expression", "prefix_expression", "unary_expression":
		operand := lastNamedChild(node)
		if operand == nil {
			return nil, fmt.Errorf("missing operand")
		}
		v, err := evaluate(s, operand, content)
		if err != nil {
			return nil, err
		}
		return unary(operatorOf(node), v)
	case "binary_expression":
		left, right := node.ChildByFieldName("left"), node.ChildByFieldName("right")
		if left == nil || right == nil {
			return nil, fmt.Errorf("malformed binary expression")
		}
		x, err := evaluate(s, left, content)
		if err != nil {
			return nil, err
		}
		y, err := evaluate(s, right, content)
		if err != nil {
			return nil, err
		}
		return binary(operatorOf(node), x, y)
	default:
		return nil, fmt.Errorf("%q is not a supported constant expression", node.Content(content))
	}
}

// operatorOf returns the first anonymous token of an expression node
func operatorOf(node *sitter.Node) string {
	if op := node.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); !child.IsNamed() {
			return child.Type()
		}
	}
	return ""
}

// namespaceOf joins the enclosing namespace declarations of node
func namespaceOf(node, root *sitter.Node, content []byte) string {
	var parts []string
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() == "namespace_declaration" || parent.Type() == "file_scoped_namespace_declaration" {
			if name := parent.ChildByFieldName("name"); name != nil {
				parts = append([]string{name.Content(content)}, parts...)
			}
		}
	}
	// file scoped namespaces may be siblings of the declarations they contain
	if len(parts) == 0 {
		if fileScoped := childOfType(root, "file_scoped_namespace_declaration"); fileScoped != nil {
			if name := fileScoped.ChildByFieldName("name"); name != nil {
				parts = append(parts, name.Content(content))
			}
		}
	}
	return strings.Join(strings.Fields(strings.Join(parts, ".")), "")
}

// syntaxErrors counts ERROR and MISSING nodes, reporting the first in source order
func syntaxErrors(root *sitter.Node) *CompilationError {
	if !root.HasError() {
		return nil
	}
	var cerr *CompilationError
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		var msg string
		switch {
		case n.IsMissing():
			msg = fmt.Sprintf("%s: %s expected", position(n), n.Type())
		case n.Type() == "ERROR":
			msg = fmt.Sprintf("%s: syntax error", position(n))
		}
		if msg != "" {
			if cerr == nil {
				cerr = &CompilationError{First: msg}
			}
			cerr.Count++
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	if cerr == nil {
		return &CompilationError{Count: 1, First: "syntax error"}
	}
	return cerr
}

func collect(n *sitter.Node, nodeType string, out *[]*sitter.Node) {
	if n.Type() == nodeType {
		*out = append(*out, n)
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		collect(n.NamedChild(i), nodeType, out)
	}
}

func childOfType(n *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func lastNamedChild(n *sitter.Node) *sitter.Node {
	count := int(n.NamedChildCount())
	if count == 0 {
		return nil
	}
	return n.NamedChild(count - 1)
}

func position(n *sitter.Node) string {
	p := n.StartPoint()
	return fmt.Sprintf("(%d,%d)", p.Row+1, p.Column+1)
}
