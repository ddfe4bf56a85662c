package enum

import (
	"fmt"
	"math/big"
	"strings"
)

// UnderlyingType is the integral type an enumeration is stored as
type UnderlyingType string

const (
	// None is used when underlying values are not part of the generated type
	None   UnderlyingType = ""
	SByte  UnderlyingType = "sbyte"
	Byte   UnderlyingType = "byte"
	Int16  UnderlyingType = "short"
	UInt16 UnderlyingType = "ushort"
	Int32  UnderlyingType = "int"
	UInt32 UnderlyingType = "uint"
	Int64  UnderlyingType = "long"
	UInt64 UnderlyingType = "ulong"
)

type underlyingInfo struct {
	bits     uint
	signed   bool
	vbName   string
	aliases  []string
	min, max *big.Int
}

var underlyingTypes = map[UnderlyingType]underlyingInfo{
	SByte:  {bits: 8, signed: true, vbName: "SByte", aliases: []string{"System.SByte", "SByte"}},
	Byte:   {bits: 8, signed: false, vbName: "Byte", aliases: []string{"System.Byte", "Byte"}},
	Int16:  {bits: 16, signed: true, vbName: "Short", aliases: []string{"System.Int16", "Int16"}},
	UInt16: {bits: 16, signed: false, vbName: "UShort", aliases: []string{"System.UInt16", "UInt16"}},
	Int32:  {bits: 32, signed: true, vbName: "Integer", aliases: []string{"System.Int32", "Int32"}},
	UInt32: {bits: 32, signed: false, vbName: "UInteger", aliases: []string{"System.UInt32", "UInt32"}},
	Int64:  {bits: 64, signed: true, vbName: "Long", aliases: []string{"System.Int64", "Int64"}},
	UInt64: {bits: 64, signed: false, vbName: "ULong", aliases: []string{"System.UInt64", "UInt64"}},
}

func init() {
	for k, info := range underlyingTypes {
		if info.signed {
			info.max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), info.bits-1), big.NewInt(1))
			info.min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), info.bits-1))
		} else {
			info.max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), info.bits), big.NewInt(1))
			info.min = big.NewInt(0)
		}
		underlyingTypes[k] = info
	}
}

// UnderlyingTypes returns every supported integral kind, smallest first
func UnderlyingTypes() []UnderlyingType {
	return []UnderlyingType{SByte, Byte, Int16, UInt16, Int32, UInt32, Int64, UInt64}
}

// ParseUnderlyingType resolves a C# keyword, a VB keyword or a CLR type name
func ParseUnderlyingType(name string) (UnderlyingType, error) {
	name = strings.TrimSpace(name)
	for _, t := range UnderlyingTypes() {
		info := underlyingTypes[t]
		if name == string(t) || strings.EqualFold(name, info.vbName) {
			return t, nil
		}
		for _, alias := range info.aliases {
			if strings.EqualFold(name, alias) {
				return t, nil
			}
		}
	}
	return None, fmt.Errorf("%w: unsupported underlying type %q", ErrInvalid, name)
}

// Valid reports whether t is one of the integral kinds
func (t UnderlyingType) Valid() bool {
	_, ok := underlyingTypes[t]
	return ok
}

// Bits returns the storage size in bits, 0 for None
func (t UnderlyingType) Bits() uint { return underlyingTypes[t].bits }

// Signed reports whether negative values are allowed
func (t UnderlyingType) Signed() bool { return underlyingTypes[t].signed }

// CSharp returns the C# keyword for the type
func (t UnderlyingType) CSharp() string { return string(t) }

// VB returns the Visual Basic keyword for the type
func (t UnderlyingType) VB() string { return underlyingTypes[t].vbName }

// Min returns the smallest representable value
func (t UnderlyingType) Min() *big.Int {
	info, ok := underlyingTypes[t]
	if !ok {
		return nil
	}
	return new(big.Int).Set(info.min)
}

// Max returns the largest representable value
func (t UnderlyingType) Max() *big.Int {
	info, ok := underlyingTypes[t]
	if !ok {
		return nil
	}
	return new(big.Int).Set(info.max)
}

// Fits reports whether v is inside the range of t
func (t UnderlyingType) Fits(v *big.Int) bool {
	info, ok := underlyingTypes[t]
	if !ok || v == nil {
		return false
	}
	return v.Cmp(info.min) >= 0 && v.Cmp(info.max) <= 0
}

func (t UnderlyingType) String() string {
	if t == None {
		return "none"
	}
	return string(t)
}
