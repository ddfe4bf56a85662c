package csharp

import (
	"fmt"
	"strings"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
)

// MemberGenerator generates the strongly typed enum with priority to member addition.
//
// Each member passes its name, db value and underlying value to the private
// constructor, which registers the instance in _all. Adding a member is a
// single declaration; adding a property means touching every member.
type MemberGenerator struct {
	codeGenerator
}

// NewMemberGenerator creates a member priority generator
func NewMemberGenerator(desc *enum.Descriptor, options types.GeneratorOptions) *MemberGenerator {
	return &MemberGenerator{codeGenerator{desc: desc, options: options}}
}

// GetName returns the name of this strategy
func (g *MemberGenerator) GetName() string { return "Member-priority" }

// Priority returns the addition priority this strategy implements
func (g *MemberGenerator) Priority() types.AdditionPriority { return types.MembersPriority }

func (g *MemberGenerator) PrivateConstructor() string {
	code := g.builder()

	params := []string{"string " + paramName(nameFeature)}
	assignments := []string{nameFeature}
	if g.options.DbValue {
		params = append(params, "string "+paramName(dbValueFeature))
		assignments = append(assignments, dbValueFeature)
	}
	if g.options.UnderlyingValue {
		params = append(params, g.underlyingTypeName()+" "+paramName(underlyingFeature))
		assignments = append(assignments, underlyingFeature)
	}

	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private %s(%s)", g.typeName(), strings.Join(params, ", ")))
	code.Indent(memberIndent).AppendLine("{")
	for _, feature := range assignments {
		code.Indent(bodyIndent).AppendLine(fmt.Sprintf("%s = %s;", fieldName(feature), paramName(feature)))
	}
	code.Indent(bodyIndent).AppendLine("_all.Add(this);")
	code.Indent(memberIndent).AppendLine("}")
	return code.String()
}

// AllField must precede the members, static initializers run in textual order
func (g *MemberGenerator) AllField() string {
	code := g.builder()
	listType := fmt.Sprintf("List<%s>", g.typeName())
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private static readonly %s _all = %s;", listType, code.New(listType, "")))
	return code.String()
}

func (g *MemberGenerator) AllMethod() string {
	code := g.builder()
	code.Indent(memberIndent).Append(fmt.Sprintf("public static IEnumerable<%s> All()", g.typeName())).
		ExpressionBody(memberIndent, "_all.AsReadOnly()")
	return code.String()
}

func (g *MemberGenerator) StaticMembers() string {
	code := g.builder()

	for _, member := range g.desc.Members() {
		args := []string{code.NameOf(member.Name)}
		if g.options.DbValue {
			args = append(args, fmt.Sprintf("%q", g.desc.DbValue(member.Name)))
		}
		if g.options.UnderlyingValue {
			args = append(args, member.Literal())
		}
		code.Indent(memberIndent).AppendLine(fmt.Sprintf("public static readonly %s %s = %s;",
			g.typeName(), member.Name, code.New(g.typeName(), strings.Join(args, ", "))))
	}

	return code.String()
}

func (g *MemberGenerator) ToStringMethod() string {
	code := g.builder()
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private readonly string %s;", fieldName(nameFeature)))
	code.Indent(memberIndent).Append("public override string ToString()").
		ExpressionBody(memberIndent, fieldName(nameFeature))
	return code.String()
}

func (g *MemberGenerator) ToDbValueMethod() string {
	code := g.builder()
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private readonly string %s;", fieldName(dbValueFeature)))
	code.Indent(memberIndent).Append("public string ToDbValue()").
		ExpressionBody(memberIndent, fieldName(dbValueFeature))
	return code.String()
}

func (g *MemberGenerator) CastToUnderlyingOperator() string {
	code := g.builder()
	underlying := g.underlyingTypeName()
	code.Indent(memberIndent).AppendLine(fmt.Sprintf("private readonly %s %s;", underlying, fieldName(underlyingFeature)))
	code.Indent(memberIndent).Append(fmt.Sprintf("public static explicit operator %s(%s value)", underlying, g.typeName())).
		ExpressionBody(memberIndent, "value."+fieldName(underlyingFeature))
	return code.String()
}
