package vb

import (
	"fmt"
	"strings"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
)

const (
	nameFeature       = "Name"
	dbValueFeature    = "DbValue"
	underlyingFeature = "Value"
)

// MemberGenerator is the member priority strategy for Visual Basic
type MemberGenerator struct {
	codeGenerator
}

// NewMemberGenerator creates a member priority generator
func NewMemberGenerator(desc *enum.Descriptor, options types.GeneratorOptions) *MemberGenerator {
	return &MemberGenerator{codeGenerator{desc: desc, options: options}}
}

func (g *MemberGenerator) GetName() string                  { return "Member-priority" }
func (g *MemberGenerator) Priority() types.AdditionPriority { return types.MembersPriority }

func (g *MemberGenerator) PrivateConstructor() string {
	var w writer
	params := []string{paramName(nameFeature) + " As String"}
	features := []string{nameFeature}
	if g.options.DbValue {
		params = append(params, paramName(dbValueFeature)+" As String")
		features = append(features, dbValueFeature)
	}
	if g.options.UnderlyingValue {
		params = append(params, paramName(underlyingFeature)+" As "+g.underlyingTypeName())
		features = append(features, underlyingFeature)
	}

	w.line(memberIndent, "Private Sub New(%s)", strings.Join(params, ", "))
	for _, feature := range features {
		w.line(bodyIndent, "%s = %s", fieldName(feature), paramName(feature))
	}
	w.line(bodyIndent, "_all.Add(Me)")
	w.line(memberIndent, "End Sub")
	return w.String()
}

func (g *MemberGenerator) AllField() string {
	var w writer
	return w.line(memberIndent, "Private Shared ReadOnly _all As New List(Of %s)()", g.typeName()).String()
}

func (g *MemberGenerator) AllMethod() string {
	var w writer
	w.line(memberIndent, "Public Shared Function All() As IEnumerable(Of %s)", g.typeName())
	w.line(bodyIndent, "Return _all.AsReadOnly()")
	w.line(memberIndent, "End Function")
	return w.String()
}

func (g *MemberGenerator) StaticMembers() string {
	var w writer
	for _, member := range g.desc.Members() {
		args := []string{fmt.Sprintf("NameOf(%s)", member.Name)}
		if g.options.DbValue {
			args = append(args, fmt.Sprintf("%q", g.desc.DbValue(member.Name)))
		}
		if g.options.UnderlyingValue {
			args = append(args, literal(member))
		}
		w.line(memberIndent, "Public Shared ReadOnly %s As New %s(%s)", member.Name, g.typeName(), strings.Join(args, ", "))
	}
	return w.String()
}

func (g *MemberGenerator) accessor(feature, signature, returnType, keyword string) string {
	var w writer
	w.line(memberIndent, "Private ReadOnly %s As %s", fieldName(feature), returnType)
	w.line(memberIndent, "%s", signature)
	w.line(bodyIndent, "Return %s", keyword)
	return w.String()
}

func (g *MemberGenerator) ToStringMethod() string {
	return g.accessor(nameFeature, "Public Overrides Function ToString() As String", "String", fieldName(nameFeature)) +
		endFunction()
}

func (g *MemberGenerator) ToDbValueMethod() string {
	return g.accessor(dbValueFeature, "Public Function ToDbValue() As String", "String", fieldName(dbValueFeature)) +
		endFunction()
}

func (g *MemberGenerator) CastToUnderlyingOperator() string {
	signature := fmt.Sprintf("Public Shared Narrowing Operator CType(value As %s) As %s", g.typeName(), g.underlyingTypeName())
	return g.accessor(underlyingFeature, signature, g.underlyingTypeName(), "value."+fieldName(underlyingFeature)) +
		endOperator()
}

// PropertyGenerator is the property priority strategy for Visual Basic
type PropertyGenerator struct {
	codeGenerator
}

// NewPropertyGenerator creates a property priority generator
func NewPropertyGenerator(desc *enum.Descriptor, options types.GeneratorOptions) *PropertyGenerator {
	return &PropertyGenerator{codeGenerator{desc: desc, options: options}}
}

func (g *PropertyGenerator) GetName() string                  { return "Property-priority" }
func (g *PropertyGenerator) Priority() types.AdditionPriority { return types.PropertiesPriority }

func (g *PropertyGenerator) PrivateConstructor() string {
	var w writer
	w.line(memberIndent, "Private Sub New()")
	w.line(memberIndent, "End Sub")
	return w.String()
}

func (g *PropertyGenerator) AllMethod() string {
	var w writer
	w.line(memberIndent, "Public Shared Iterator Function All() As IEnumerable(Of %s)", g.typeName())
	for _, name := range g.desc.MemberNames() {
		w.line(bodyIndent, "Yield %s", name)
	}
	w.line(memberIndent, "End Function")
	return w.String()
}

func (g *PropertyGenerator) StaticMembers() string {
	var w writer
	for _, name := range g.desc.MemberNames() {
		w.line(memberIndent, "Public Shared ReadOnly %s As New %s()", name, g.typeName())
	}
	return w.String()
}

func (g *PropertyGenerator) lookupTable(w *writer, name, valueType string, value func(enum.Member) string) {
	w.line(memberIndent, "Private Shared ReadOnly %s As New Dictionary(Of %s, %s) From {", name, g.typeName(), valueType)
	members := g.desc.Members()
	for i, member := range members {
		sep := ","
		if i == len(members)-1 {
			sep = ""
		}
		w.line(bodyIndent, "{%s, %s}%s", member.Name, value(member), sep)
	}
	w.line(memberIndent, "}")
	w.blank()
}

func (g *PropertyGenerator) ToStringMethod() string {
	var w writer
	g.lookupTable(&w, "ToStringMap", "String", func(m enum.Member) string { return fmt.Sprintf("NameOf(%s)", m.Name) })
	w.line(memberIndent, "Public Overrides Function ToString() As String")
	w.line(bodyIndent, "Return ToStringMap(Me)")
	return w.String() + endFunction()
}

func (g *PropertyGenerator) ToDbValueMethod() string {
	var w writer
	g.lookupTable(&w, "DbValueMap", "String", func(m enum.Member) string { return fmt.Sprintf("%q", g.desc.DbValue(m.Name)) })
	w.line(memberIndent, "Public Function ToDbValue() As String")
	w.line(bodyIndent, "Return DbValueMap(Me)")
	return w.String() + endFunction()
}

func (g *PropertyGenerator) CastToUnderlyingOperator() string {
	var w writer
	underlying := g.underlyingTypeName()
	g.lookupTable(&w, "UnderlyingMap", underlying, literal)
	w.line(memberIndent, "Public Shared Narrowing Operator CType(value As %s) As %s", g.typeName(), underlying)
	w.line(bodyIndent, "Return UnderlyingMap(value)")
	return w.String() + endOperator()
}

func endFunction() string {
	var w writer
	return w.line(memberIndent, "End Function").String()
}

func endOperator() string {
	var w writer
	return w.line(memberIndent, "End Operator").String()
}
