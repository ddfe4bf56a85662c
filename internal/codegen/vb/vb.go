// Package vb renders strongly typed enum classes as Visual Basic .NET source.
//
// The output targets VB 14 (NameOf is available) regardless of the requested
// C# syntax version.
package vb

import (
	"fmt"
	"math"
	"strings"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
)

const (
	classIndent  = 1
	memberIndent = 2
	bodyIndent   = 3
)

type writer struct {
	sb strings.Builder
}

func (w *writer) line(indent int, format string, args ...interface{}) *writer {
	w.sb.WriteString(strings.Repeat("    ", indent))
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	w.sb.WriteString(format)
	w.sb.WriteByte('\n')
	return w
}

func (w *writer) blank() *writer {
	w.sb.WriteByte('\n')
	return w
}

func (w *writer) String() string { return w.sb.String() }

// Per member data: backing field and constructor parameter of each feature
var (
	fieldNames = map[string]string{nameFeature: "_name", dbValueFeature: "_dbValue", underlyingFeature: "_value"}
	paramNames = map[string]string{nameFeature: "name", dbValueFeature: "dbValue", underlyingFeature: "value"}
)

func fieldName(feature string) string { return fieldNames[feature] }

func paramName(feature string) string { return paramNames[feature] }

// literal renders a member value. Long.MinValue has no literal form in VB,
// its magnitude overflows Long before negation.
func literal(m enum.Member) string {
	v := m.Value()
	if v.IsInt64() && v.Int64() == math.MinInt64 {
		return "Long.MinValue"
	}
	return v.String()
}

type codeGenerator struct {
	desc    *enum.Descriptor
	options types.GeneratorOptions
}

func (g *codeGenerator) typeName() string { return g.desc.Name() }

func (g *codeGenerator) underlyingTypeName() string { return g.desc.Underlying().VB() }

func (g *codeGenerator) visibility() string {
	if g.options.Visibility == types.Public {
		return "Public"
	}
	return "Friend"
}

func (g *codeGenerator) UsingStatement(namespace string) string {
	return "Imports " + namespace
}

func (g *codeGenerator) StartNamespace() string {
	return "Namespace " + g.desc.NamespaceOrDefault() + "\n"
}

func (g *codeGenerator) RegionStart(name string) string {
	var w writer
	return w.line(memberIndent, "#Region %q", name).String()
}

func (g *codeGenerator) RegionEnd() string {
	var w writer
	return w.line(memberIndent, "#End Region").String()
}

func (g *codeGenerator) StartClassDefinition() string {
	var w writer
	w.line(classIndent, "%s Class %s", g.visibility(), g.typeName())
	if g.options.ImplementComparable {
		w.line(memberIndent, "Implements IComparable(Of %s)", g.typeName())
		w.blank()
	}
	return w.String()
}

func (g *codeGenerator) AllField() string { return "" }

func (g *codeGenerator) FromStringMethod() string {
	return g.lookupMethod("FromString", "x.ToString() = value")
}

func (g *codeGenerator) FromDbValueMethod() string {
	return g.lookupMethod("FromDbValue", "x.ToDbValue() = value")
}

func (g *codeGenerator) lookupMethod(name, predicate string) string {
	var w writer
	w.line(memberIndent, "Public Shared Function %s(value As String) As %s", name, g.typeName())
	w.line(bodyIndent, "If value Is Nothing Then Throw New ArgumentNullException(NameOf(value))")
	w.blank()
	w.line(bodyIndent, "Dim result = All().FirstOrDefault(Function(x) %s)", predicate)
	w.line(bodyIndent, "If result IsNot Nothing Then Return result")
	w.blank()
	w.line(bodyIndent, `Throw New ArgumentOutOfRangeException(NameOf(value), value, "Invalid " & NameOf(%s))`, g.typeName())
	w.line(memberIndent, "End Function")
	return w.String()
}

func (g *codeGenerator) CastFromUnderlyingOperator() string {
	var w writer
	underlying := g.underlyingTypeName()
	w.line(memberIndent, "Public Shared Narrowing Operator CType(value As %s) As %s", underlying, g.typeName())
	w.line(bodyIndent, "Dim result = All().FirstOrDefault(Function(x) CType(x, %s) = value)", underlying)
	w.line(bodyIndent, "If result IsNot Nothing Then Return result")
	w.blank()
	w.line(bodyIndent, `Throw New InvalidCastException("The value " & value & " is not a valid " & NameOf(%s))`, g.typeName())
	w.line(memberIndent, "End Operator")
	return w.String()
}

func (g *codeGenerator) CompareTo() string {
	var w writer
	w.line(memberIndent, "Public Function CompareTo(other As %s) As Integer Implements IComparable(Of %s).CompareTo", g.typeName(), g.typeName())
	w.line(bodyIndent, "If other Is Nothing Then Return 1")
	if g.options.UnderlyingValue {
		underlying := g.underlyingTypeName()
		w.line(bodyIndent, "Return CType(Me, %s).CompareTo(CType(other, %s))", underlying, underlying)
	} else {
		w.line(bodyIndent, "Return String.CompareOrdinal(ToString(), other.ToString())")
	}
	w.line(memberIndent, "End Function")
	return w.String()
}

func (g *codeGenerator) relational(op string) string {
	var w writer
	w.line(memberIndent, "Public Shared Operator %s(lhs As %s, rhs As %s) As Boolean", op, g.typeName(), g.typeName())
	w.line(bodyIndent, "Return lhs.CompareTo(rhs) %s 0", op)
	w.line(memberIndent, "End Operator")
	return w.String()
}

func (g *codeGenerator) LessThan() string           { return g.relational("<") }
func (g *codeGenerator) LessThanOrEqual() string    { return g.relational("<=") }
func (g *codeGenerator) GreaterThan() string        { return g.relational(">") }
func (g *codeGenerator) GreaterThanOrEqual() string { return g.relational(">=") }

func (g *codeGenerator) EndClassDefinition() string {
	var w writer
	return w.line(classIndent, "End Class").String()
}

func (g *codeGenerator) EndNamespace() string {
	return "End Namespace\n"
}
