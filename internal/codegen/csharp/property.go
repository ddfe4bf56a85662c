package csharp

import (
	"fmt"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
)

// PropertyGenerator generates the strongly typed enum with priority to property addition.
//
// Members are created by a parameterless constructor and every property is a
// static lookup table keyed by member. Adding a property is a single table;
// adding a member means one entry in every table.
type PropertyGenerator struct {
	codeGenerator
}

// NewPropertyGenerator creates a property priority generator
func NewPropertyGenerator(desc *enum.Descriptor, options types.GeneratorOptions) *PropertyGenerator {
	return &PropertyGenerator{codeGenerator{desc: desc, options: options}}
}

// GetName returns the name of this strategy
func (g *PropertyGenerator) GetName() string { return "Property-priority" }

// Priority returns the addition priority this strategy implements
func (g *PropertyGenerator) Priority() types.AdditionPriority { return types.PropertiesPriority }

func (g *PropertyGenerator) PrivateConstructor() string {
	code := g.builder()
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private %s() { }", g.typeName()))
	return code.String()
}

func (g *PropertyGenerator) AllMethod() string {
	code := g.builder()
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("public static IEnumerable<%s> All()", g.typeName()))
	code.Indent(memberIndent).AppendLine("{")
	for _, name := range g.desc.MemberNames() {
		code.Indent(bodyIndent).AppendLine(fmt.Sprintf("yield return %s;", name))
	}
	code.Indent(memberIndent).AppendLine("}")
	return code.String()
}

func (g *PropertyGenerator) StaticMembers() string {
	code := g.builder()
	for _, name := range g.desc.MemberNames() {
		code.Indent(memberIndent).AppendLine(fmt.Sprintf("public static readonly %s %s = %s;",
			g.typeName(), name, code.New(g.typeName(), "")))
	}
	return code.String()
}

// lookupTable declares a static dictionary holding one entry per member
func (g *PropertyGenerator) lookupTable(code *Builder, name, valueType string, value func(enum.Member) string) {
	dictionary := fmt.Sprintf("Dictionary<%s, %s>", g.typeName(), valueType)
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private static readonly %s %s = %s", dictionary, name, code.New(dictionary, "")))
	code.Indent(memberIndent).AppendLine("{")
	members := g.desc.Members()
	for i, member := range members {
		sep := ","
		if i == len(members)-1 {
			sep = ""
		}
		code.Indent(bodyIndent).AppendLine(fmt.Sprintf("{%s, %s}%s", member.Name, value(member), sep))
	}
	code.Indent(memberIndent).AppendLine("};")
	code.Line()
}

func (g *PropertyGenerator) ToStringMethod() string {
	code := g.builder()
	g.lookupTable(code, "ToStringMap", "string", func(m enum.Member) string { return code.NameOf(m.Name) })
	code.Indent(memberIndent).Append("public override string ToString()").
		ExpressionBody(memberIndent, "ToStringMap[this]")
	return code.String()
}

func (g *PropertyGenerator) ToDbValueMethod() string {
	code := g.builder()
	g.lookupTable(code, "DbValueMap", "string", func(m enum.Member) string { return fmt.Sprintf("%q", g.desc.DbValue(m.Name)) })
	code.Indent(memberIndent).Append("public string ToDbValue()").
		ExpressionBody(memberIndent, "DbValueMap[this]")
	return code.String()
}

func (g *PropertyGenerator) CastToUnderlyingOperator() string {
	code := g.builder()
	underlying := g.underlyingTypeName()
	g.lookupTable(code, "UnderlyingMap", underlying, func(m enum.Member) string { return m.Literal() })
	code.Indent(memberIndent).Append(fmt.Sprintf("public static explicit operator %s(%s value)", underlying, g.typeName())).
		ExpressionBody(memberIndent, "UnderlyingMap[value]")
	return code.String()
}
