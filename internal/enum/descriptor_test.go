package enum

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cowboyMembers() []Member {
	return []Member{NewMember("Good", 0), NewMember("Bad", 1), NewMember("Ugly", 2)}
}

func TestNew_PreservesOrderAndFields(t *testing.T) {
	d, err := New("CowboyType", "", Int32, cowboyMembers())
	require.NoError(t, err)

	assert.Equal(t, "CowboyType", d.Name())
	assert.Equal(t, DefaultNamespace, d.NamespaceOrDefault())
	assert.Equal(t, Int32, d.Underlying())
	assert.Equal(t, []string{"Good", "Bad", "Ugly"}, d.MemberNames())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "2", d.Members()[2].Literal())
}

func TestNew_MembersAreCopied(t *testing.T) {
	members := cowboyMembers()
	d, err := New("CowboyType", "Western", Int32, members)
	require.NoError(t, err)

	members[0].Name = "Changed"
	got := d.Members()
	got[1].Name = "AlsoChanged"

	assert.Equal(t, []string{"Good", "Bad", "Ugly"}, d.MemberNames())
	assert.Equal(t, "Western", d.NamespaceOrDefault())
}

func TestNew_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		typeName   string
		namespace  string
		underlying UnderlyingType
		members    []Member
		want       error
	}{
		{"empty", "Empty", "", Int32, nil, ErrEmpty},
		{"duplicate", "Dup", "", Int32, []Member{NewMember("A", 0), NewMember("A", 1)}, ErrDuplicateMember},
		{"out of range", "Small", "", Byte, []Member{NewMember("A", 256)}, ErrValueOutOfRange},
		{"negative unsigned", "Small", "", UInt16, []Member{NewMember("A", -1)}, ErrValueOutOfRange},
		{"bad type name", "1Bad", "", Int32, cowboyMembers(), ErrInvalid},
		{"bad namespace", "Ok", "My..Space", Int32, cowboyMembers(), ErrInvalid},
		{"bad member", "Ok", "", Int32, []Member{NewMember("has space", 0)}, ErrInvalid},
		{"bad underlying", "Ok", "", UnderlyingType("float"), cowboyMembers(), ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.typeName, tt.namespace, tt.underlying, tt.members)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestNew_NoneSkipsRangeCheck(t *testing.T) {
	d, err := New("Wide", "", None, []Member{NewMember("A", -5), NewMember("B", 1<<40)})
	require.NoError(t, err)
	assert.Equal(t, None, d.Underlying())
}

func TestNew_FullULongRange(t *testing.T) {
	max := UInt64.Max()
	d, err := New("Big", "", UInt64, []Member{NewBigMember("Top", max)})
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", d.Members()[0].Literal())

	over := new(big.Int).Add(max, big.NewInt(1))
	_, err = New("Big", "", UInt64, []Member{NewBigMember("Over", over)})
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestDbValue(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		want    []string
	}{
		{"unique first letters", []string{"Good", "Bad", "Ugly"}, []string{"G", "B", "U"}},
		{"shared first letter", []string{"Good", "Great"}, []string{"Good", "Great"}},
		{"mixed", []string{"Good", "Great", "Bad"}, []string{"Good", "Great", "B"}},
		{"three way", []string{"Alpha", "Apex", "Arc", "Zed"}, []string{"Alpha", "Apex", "Arc", "Z"}},
		{"case sensitive", []string{"apple", "Avocado"}, []string{"a", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := make([]Member, len(tt.members))
			for i, n := range tt.members {
				members[i] = NewMember(n, int64(i))
			}
			d, err := New("Tagged", "", Int32, members)
			require.NoError(t, err)

			got := make([]string, len(tt.members))
			for i, n := range tt.members {
				got[i] = d.DbValue(n)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnderlyingType(t *testing.T) {
	cases := map[string]UnderlyingType{
		"byte":          Byte,
		"sbyte":         SByte,
		"short":         Int16,
		"ushort":        UInt16,
		"int":           Int32,
		"uint":          UInt32,
		"long":          Int64,
		"ulong":         UInt64,
		"Integer":       Int32,
		"ULong":         UInt64,
		"System.Int16":  Int16,
		"System.UInt64": UInt64,
	}
	for in, want := range cases {
		got, err := ParseUnderlyingType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnderlyingType("decimal")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUnderlyingRanges(t *testing.T) {
	assert.Equal(t, "-128", SByte.Min().String())
	assert.Equal(t, "127", SByte.Max().String())
	assert.Equal(t, "255", Byte.Max().String())
	assert.Equal(t, "-9223372036854775808", Int64.Min().String())
	assert.True(t, Int32.Signed())
	assert.False(t, UInt32.Signed())
	assert.Equal(t, uint(16), UInt16.Bits())
	assert.Equal(t, "Integer", Int32.VB())
	assert.Equal(t, "none", None.String())
	assert.Nil(t, None.Max())
}
