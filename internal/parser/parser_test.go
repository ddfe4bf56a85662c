package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlawrence/stenum/internal/enum"
)

func values(desc *enum.Descriptor) map[string]string {
	out := make(map[string]string)
	for _, m := range desc.Members() {
		out[m.Name] = m.Literal()
	}
	return out
}

func TestCSharpParser_CowboyType(t *testing.T) {
	desc, err := NewCSharpParser().Parse(context.Background(), "enum CowboyType { Good, Bad, Ugly }")
	require.NoError(t, err)

	assert.Equal(t, "CowboyType", desc.Name())
	assert.Equal(t, "", desc.Namespace())
	assert.Equal(t, enum.DefaultNamespace, desc.NamespaceOrDefault())
	assert.Equal(t, enum.Int32, desc.Underlying())
	assert.Equal(t, []string{"Good", "Bad", "Ugly"}, desc.MemberNames())
	assert.Equal(t, map[string]string{"Good": "0", "Bad": "1", "Ugly": "2"}, values(desc))
}

func TestCSharpParser_NamespaceAndValues(t *testing.T) {
	src := `
using System;

namespace Western.Films
{
    [Flags]
    public enum Suit : byte
    {
        Hearts = 1,
        Spades = 0x10,
        Clubs,
        Diamonds = Hearts | Spades,
        Jokers = (2 + 3) * 4,
    }
}
`
	desc, err := NewCSharpParser().Parse(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "Suit", desc.Name())
	assert.Equal(t, "Western.Films", desc.Namespace())
	assert.Equal(t, enum.Byte, desc.Underlying())
	assert.Equal(t, map[string]string{
		"Hearts":   "1",
		"Spades":   "16",
		"Clubs":    "17",
		"Diamonds": "17",
		"Jokers":   "20",
	}, values(desc))
}

func TestCSharpParser_SignedAndShifted(t *testing.T) {
	src := `namespace Cards
{
    enum Rank : long
    {
        Low = -1,
        Zero,
        High = 1L << 40,
        Inverted = ~0,
    }
}`
	desc, err := NewCSharpParser().Parse(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, enum.Int64, desc.Underlying())
	assert.Equal(t, map[string]string{
		"Low":      "-1",
		"Zero":     "0",
		"High":     "1099511627776",
		"Inverted": "-1",
	}, values(desc))
}

func TestCSharpParser_CompilationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"garbage", "this is not an enum {{{"},
		{"no enum", "class Foo { }"},
		{"two enums", "enum A { X } enum B { Y }"},
		{"out of range", "enum Small : byte { Big = 256 }"},
		{"negative unsigned", "enum Small : uint { Below = -1 }"},
		{"forward reference", "enum E { A = B, B }"},
		{"duplicate member", "enum E { A, A }"},
		{"string value", `enum E { A = "a" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSharpParser().Parse(context.Background(), tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCompilation), "got %v", err)

			var cerr *CompilationError
			require.True(t, errors.As(err, &cerr))
			assert.GreaterOrEqual(t, cerr.Count, 1)
			assert.NotEmpty(t, cerr.First)
		})
	}
}

func TestCSharpParser_EmptyEnum(t *testing.T) {
	_, err := NewCSharpParser().Parse(context.Background(), "enum Nothing { }")
	assert.ErrorIs(t, err, enum.ErrEmpty)
}

func TestVBParser(t *testing.T) {
	src := `Imports System

Namespace Western
    ' the classic trio
    Public Enum CowboyType As Short
        Good
        Bad = 5 ' comment
        Ugly
        Worst = -Bad
        Hex = &H10S
    End Enum
End Namespace
`
	desc, err := NewVBParser().Parse(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "CowboyType", desc.Name())
	assert.Equal(t, "Western", desc.Namespace())
	assert.Equal(t, enum.Int16, desc.Underlying())
	assert.Equal(t, []string{"Good", "Bad", "Ugly", "Worst", "Hex"}, desc.MemberNames())
	assert.Equal(t, map[string]string{"Good": "0", "Bad": "5", "Ugly": "6", "Worst": "-5", "Hex": "16"}, values(desc))
}

func TestVBParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated", "Enum A\n X\n"},
		{"no enum", "Module M\nEnd Module\n"},
		{"two enums", "Enum A\n X\nEnd Enum\nEnum B\n Y\nEnd Enum\n"},
		{"bad type", "Enum A As String\n X\nEnd Enum\n"},
		{"out of range", "Enum A As Byte\n X = 300\nEnd Enum\n"},
		{"bad member", "Enum A\n X Y Z\nEnd Enum\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVBParser().Parse(context.Background(), tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCompilation)
		})
	}
}

func TestNew(t *testing.T) {
	for _, d := range Dialects() {
		p, err := New(d)
		require.NoError(t, err)
		assert.Equal(t, d, p.Dialect())
	}
	_, err := New("cobol")
	assert.Error(t, err)
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{"C#": CSharp, "csharp": CSharp, "VB.NET": VB, "vb": VB} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseDialect("fortran")
	assert.Error(t, err)
}

func TestDetectDialect(t *testing.T) {
	assert.Equal(t, CSharp, DetectDialect("CowboyType.cs", ""))
	assert.Equal(t, VB, DetectDialect("CowboyType.vb", ""))
	assert.Equal(t, VB, DetectDialect("", "Enum A\n  X\nEnd Enum\n"))
	assert.Equal(t, VB, DetectDialect("-", "enum a\n  x\nend enum"))
	assert.Equal(t, CSharp, DetectDialect("", "public enum Suit : byte\n{\n Hearts\n}"))
	assert.Equal(t, CSharp, DetectDialect("", ""))
}

func TestParseIntegerLiterals(t *testing.T) {
	cs := map[string]int64{"42": 42, "0x1F": 31, "0b101": 5, "1_000": 1000, "10UL": 10, "0xFFu": 255, "010": 10}
	for lit, want := range cs {
		v, err := parseCSharpInteger(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, want, v.Int64(), lit)
	}

	vb := map[string]int64{"42": 42, "&H1F": 31, "&O17": 15, "&B101": 5, "10UL": 10, "&HBS": 11, "7%": 7}
	for lit, want := range vb {
		v, err := parseVBInteger(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, want, v.Int64(), lit)
	}

	_, err := parseCSharpInteger("0x")
	assert.Error(t, err)
}

func TestParseVBInteger_BitPatterns(t *testing.T) {
	tests := map[string]string{
		"&HFFFFFFFF":           "-1",
		"&H80000000":           "-2147483648",
		"&H7FFFFFFF":           "2147483647",
		"&HFFFFS":              "-1",
		"&HFFFFUS":             "65535",
		"&HFFFFFFFFUI":         "4294967295",
		"&H100000000":          "4294967296",
		"&HFFFFFFFFFFFFFFFF":   "-1",
		"&HFFFFFFFFFFFFFFFFUL": "18446744073709551615",
		"&O37777777777":        "-1",
		"4294967295":           "4294967295",
	}
	for lit, want := range tests {
		v, err := parseVBInteger(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, want, v.String(), lit)
	}

	for _, lit := range []string{"&H10000S", "&H1FFFFFFFFFFFFFFFF"} {
		_, err := parseVBInteger(lit)
		assert.Error(t, err, lit)
	}
}

func TestVBParser_HexBitPatternAndLongMin(t *testing.T) {
	desc, err := NewVBParser().Parse(context.Background(), "Enum Mask\n    AllBits = &HFFFFFFFF\n    High = &H80000000\nEnd Enum\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"AllBits": "-1", "High": "-2147483648"}, values(desc))

	desc, err = NewVBParser().Parse(context.Background(), "Enum Wide As Long\n    Lowest = -9223372036854775808\nEnd Enum\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Lowest": "-9223372036854775808"}, values(desc))
}
