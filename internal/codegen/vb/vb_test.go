package vb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
	"github.com/getlawrence/stenum/internal/syntax"
)

func cowboyType(t *testing.T) *enum.Descriptor {
	t.Helper()
	desc, err := enum.New("CowboyType", "Western", enum.Int32, []enum.Member{
		enum.NewMember("Good", 0),
		enum.NewMember("Bad", 1),
		enum.NewMember("Ugly", 2),
	})
	require.NoError(t, err)
	return desc
}

func TestMemberGenerator(t *testing.T) {
	gen := NewMemberGenerator(cowboyType(t), types.DefaultOptions())

	assert.Equal(t, ""+
		"        Private Sub New(name As String, dbValue As String, value As Integer)\n"+
		"            _name = name\n"+
		"            _dbValue = dbValue\n"+
		"            _value = value\n"+
		"            _all.Add(Me)\n"+
		"        End Sub\n", gen.PrivateConstructor())
	assert.Equal(t, "        Private Shared ReadOnly _all As New List(Of CowboyType)()\n", gen.AllField())
	assert.Equal(t, ""+
		"        Public Shared ReadOnly Good As New CowboyType(NameOf(Good), \"G\", 0)\n"+
		"        Public Shared ReadOnly Bad As New CowboyType(NameOf(Bad), \"B\", 1)\n"+
		"        Public Shared ReadOnly Ugly As New CowboyType(NameOf(Ugly), \"U\", 2)\n", gen.StaticMembers())
	assert.Equal(t, ""+
		"        Private ReadOnly _name As String\n"+
		"        Public Overrides Function ToString() As String\n"+
		"            Return _name\n"+
		"        End Function\n", gen.ToStringMethod())
	assert.Contains(t, gen.CastToUnderlyingOperator(), "Public Shared Narrowing Operator CType(value As CowboyType) As Integer\n")
	assert.Contains(t, gen.CastToUnderlyingOperator(), "            Return value._value\n        End Operator\n")
}

func TestPropertyGenerator(t *testing.T) {
	gen := NewPropertyGenerator(cowboyType(t), types.DefaultOptions())

	assert.Equal(t, "", gen.AllField())
	assert.Equal(t, "        Private Sub New()\n        End Sub\n", gen.PrivateConstructor())
	assert.Equal(t, ""+
		"        Public Shared Iterator Function All() As IEnumerable(Of CowboyType)\n"+
		"            Yield Good\n"+
		"            Yield Bad\n"+
		"            Yield Ugly\n"+
		"        End Function\n", gen.AllMethod())
	assert.Equal(t, ""+
		"        Private Shared ReadOnly DbValueMap As New Dictionary(Of CowboyType, String) From {\n"+
		"            {Good, \"G\"},\n"+
		"            {Bad, \"B\"},\n"+
		"            {Ugly, \"U\"}\n"+
		"        }\n"+
		"\n"+
		"        Public Function ToDbValue() As String\n"+
		"            Return DbValueMap(Me)\n"+
		"        End Function\n", gen.ToDbValueMethod())
}

func TestSharedFragments(t *testing.T) {
	opts := types.DefaultOptions()
	opts.ImplementComparable = true
	opts.Visibility = types.Public
	gen := NewMemberGenerator(cowboyType(t), opts)

	assert.Equal(t, "Imports System.Linq", gen.UsingStatement("System.Linq"))
	assert.Equal(t, "Namespace Western\n", gen.StartNamespace())
	assert.Equal(t, "    Public Class CowboyType\n        Implements IComparable(Of CowboyType)\n\n", gen.StartClassDefinition())
	assert.Equal(t, "        #Region \"To/From String\"\n", gen.RegionStart("To/From String"))
	assert.Equal(t, "        #End Region\n", gen.RegionEnd())
	assert.Contains(t, gen.FromStringMethod(), `Throw New ArgumentOutOfRangeException(NameOf(value), value, "Invalid " & NameOf(CowboyType))`)
	assert.Contains(t, gen.FromDbValueMethod(), "All().FirstOrDefault(Function(x) x.ToDbValue() = value)")
	assert.Contains(t, gen.CastFromUnderlyingOperator(), "Public Shared Narrowing Operator CType(value As Integer) As CowboyType")
	assert.Contains(t, gen.CompareTo(), "Return CType(Me, Integer).CompareTo(CType(other, Integer))")
	assert.Contains(t, gen.LessThanOrEqual(), "Return lhs.CompareTo(rhs) <= 0")
	assert.Equal(t, "    End Class\n", gen.EndClassDefinition())
	assert.Equal(t, "End Namespace\n", gen.EndNamespace())
}

func TestIgnoresCSharpVersion(t *testing.T) {
	opts := types.DefaultOptions()
	opts.SyntaxVersion = syntax.CSharp50
	gen := NewMemberGenerator(cowboyType(t), opts)

	assert.Contains(t, gen.StaticMembers(), "NameOf(Good)")
	assert.Equal(t, "    Friend Class CowboyType\n", gen.StartClassDefinition())

	opts.UnderlyingValue = false
	opts.ImplementComparable = true
	gen = NewMemberGenerator(cowboyType(t), opts)
	assert.Contains(t, gen.CompareTo(), "Return String.CompareOrdinal(ToString(), other.ToString())")
}

func TestLongMinValueLiteral(t *testing.T) {
	desc, err := enum.New("Wide", "", enum.Int64, []enum.Member{
		enum.NewMember("Lowest", math.MinInt64),
		enum.NewMember("Highest", math.MaxInt64),
	})
	require.NoError(t, err)

	members := NewMemberGenerator(desc, types.DefaultOptions()).StaticMembers()
	assert.Contains(t, members, "Lowest As New Wide(NameOf(Lowest), \"L\", Long.MinValue)\n")
	assert.Contains(t, members, "Highest As New Wide(NameOf(Highest), \"H\", 9223372036854775807)\n")

	table := NewPropertyGenerator(desc, types.DefaultOptions()).CastToUnderlyingOperator()
	assert.Contains(t, table, "{Lowest, Long.MinValue}")
	assert.NotContains(t, table, "-9223372036854775808")
}
