// Package csharp renders strongly typed enum classes as C# source.
//
// Two strategies share most fragments. MemberGenerator passes every value of a
// member to a private constructor, so adding a member is a one line change.
// PropertyGenerator keeps one lookup table per feature, so adding a feature is
// a one declaration change.
package csharp

import (
	"fmt"
	"strings"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
	"github.com/getlawrence/stenum/internal/syntax"
)

const (
	classIndent  = 1
	memberIndent = 2
	bodyIndent   = 3
)

// Features backing per member data
const (
	nameFeature       = "Name"
	dbValueFeature    = "DbValue"
	underlyingFeature = "Value"
)

// Per member data: backing field and constructor parameter of each feature
var (
	fieldNames = map[string]string{nameFeature: "_name", dbValueFeature: "_dbValue", underlyingFeature: "_value"}
	paramNames = map[string]string{nameFeature: "name", dbValueFeature: "dbValue", underlyingFeature: "value"}
)

func fieldName(feature string) string { return fieldNames[feature] }

func paramName(feature string) string { return paramNames[feature] }

// codeGenerator holds the fragments both strategies render the same way
type codeGenerator struct {
	desc    *enum.Descriptor
	options types.GeneratorOptions
}

func (g *codeGenerator) builder() *Builder { return NewBuilder(g.options.SyntaxVersion) }

func (g *codeGenerator) typeName() string { return g.desc.Name() }

func (g *codeGenerator) underlyingTypeName() string { return g.desc.Underlying().CSharp() }

func (g *codeGenerator) UsingStatement(namespace string) string {
	return fmt.Sprintf("using %s;", namespace)
}

func (g *codeGenerator) StartNamespace() string {
	code := g.builder()
	code.AppendLine("namespace " + g.desc.NamespaceOrDefault())
	code.AppendLine("{")
	return code.String()
}

func (g *codeGenerator) RegionStart(name string) string {
	code := g.builder()
	code.Indent(memberIndent).AppendLine("#region " + name)
	return code.String()
}

func (g *codeGenerator) RegionEnd() string {
	code := g.builder()
	code.Indent(memberIndent).AppendLine("#endregion")
	return code.String()
}

func (g *codeGenerator) StartClassDefinition() string {
	code := g.builder()

	var superClasses []string
	if g.options.ImplementComparable {
		superClasses = append(superClasses, fmt.Sprintf("IComparable<%s>", g.typeName()))
	}

	code.Indent(classIndent).Append(fmt.Sprintf("%s class %s", g.options.Visibility, g.typeName()))
	if len(superClasses) > 0 {
		code.Append(" : ").Append(strings.Join(superClasses, ", "))
	}
	code.Line()
	code.Indent(classIndent).AppendLine("{")
	return code.String()
}

// AllField is only needed when the constructor registers instances
func (g *codeGenerator) AllField() string { return "" }

func (g *codeGenerator) FromStringMethod() string {
	return g.lookupMethod("FromString", "string", "x.ToString() == value")
}

func (g *codeGenerator) FromDbValueMethod() string {
	return g.lookupMethod("FromDbValue", "string", "x.ToDbValue() == value")
}

// lookupMethod renders a static factory that searches All() and throws when
// nothing matches the argument.
func (g *codeGenerator) lookupMethod(name, paramType, predicate string) string {
	code := g.builder()
	notFound := fmt.Sprintf("new ArgumentOutOfRangeException(%s, value, %s)",
		code.NameOf("value"), code.Interpolate("Invalid ", code.NameOf(g.typeName())))

	code.Indent(memberIndent).AppendLine(fmt.Sprintf("public static %s %s(%s value)", g.typeName(), name, paramType))
	code.Indent(memberIndent).AppendLine("{")
	code.Indent(bodyIndent).AppendLine(fmt.Sprintf("if (value == null) throw new ArgumentNullException(%s);", code.NameOf("value")))
	code.Line()
	g.findOrThrow(code, predicate, notFound)
	code.Indent(memberIndent).AppendLine("}")
	return code.String()
}

func (g *codeGenerator) findOrThrow(code *Builder, predicate, exception string) {
	find := fmt.Sprintf("All().FirstOrDefault(x => %s)", predicate)
	if code.Supports(syntax.ThrowExpression) {
		code.Indent(bodyIndent).AppendLine("return " + find)
		code.Indent(bodyIndent + 1).AppendLine("?? throw " + exception + ";")
		return
	}
	code.Indent(bodyIndent).AppendLine("var result = " + find + ";")
	code.Indent(bodyIndent).AppendLine("if (result != null) return result;")
	code.Line()
	code.Indent(bodyIndent).AppendLine("throw " + exception + ";")
}

func (g *codeGenerator) CastFromUnderlyingOperator() string {
	code := g.builder()
	underlying := g.underlyingTypeName()
	invalidCast := fmt.Sprintf("new InvalidCastException(%s)",
		code.Interpolate("The value ", "value", " is not a valid ", code.NameOf(g.typeName())))

	code.Indent(memberIndent).AppendLine(fmt.Sprintf("public static explicit operator %s(%s value)", g.typeName(), underlying))
	code.Indent(memberIndent).AppendLine("{")
	g.findOrThrow(code, fmt.Sprintf("(%s) x == value", underlying), invalidCast)
	code.Indent(memberIndent).AppendLine("}")
	return code.String()
}

func (g *codeGenerator) CompareTo() string {
	code := g.builder()

	code.Indent(memberIndent).AppendLine(fmt.Sprintf("public int CompareTo(%s other)", g.typeName()))
	code.Indent(memberIndent).AppendLine("{")
	code.Indent(bodyIndent).AppendLine("if (ReferenceEquals(other, null)) return 1;")
	if g.options.UnderlyingValue {
		underlying := g.underlyingTypeName()
		code.Indent(bodyIndent).AppendLine(fmt.Sprintf("return ((%s) this).CompareTo((%s) other);", underlying, underlying))
	} else {
		code.Indent(bodyIndent).AppendLine("return string.CompareOrdinal(ToString(), other.ToString());")
	}
	code.Indent(memberIndent).AppendLine("}")
	return code.String()
}

func (g *codeGenerator) relational(op string) string {
	code := g.builder()
	code.Indent(memberIndent).Append(fmt.Sprintf("public static bool operator %s(%s lhs, %s rhs)", op, g.typeName(), g.typeName())).
		ExpressionBody(memberIndent, fmt.Sprintf("lhs.CompareTo(rhs) %s 0", op))
	return code.String()
}

func (g *codeGenerator) LessThan() string           { return g.relational("<") }
func (g *codeGenerator) LessThanOrEqual() string    { return g.relational("<=") }
func (g *codeGenerator) GreaterThan() string        { return g.relational(">") }
func (g *codeGenerator) GreaterThanOrEqual() string { return g.relational(">=") }

func (g *codeGenerator) EndClassDefinition() string {
	code := g.builder()
	code.Indent(classIndent).AppendLine("}")
	return code.String()
}

func (g *codeGenerator) EndNamespace() string {
	return "}\n"
}
