package parser

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/getlawrence/stenum/internal/enum"
)

// maxShift bounds shift counts to the widest underlying type
const maxShift = 64

// scope tracks the values assigned so far while reading members in order
type scope struct {
	enumName   string
	underlying enum.UnderlyingType
	values     map[string]*big.Int
	members    []enum.Member
	last       *big.Int
}

func newScope(enumName string, underlying enum.UnderlyingType) *scope {
	return &scope{enumName: enumName, underlying: underlying, values: make(map[string]*big.Int)}
}

// next returns the implicit value of a member without an initializer
func (s *scope) next() *big.Int {
	if s.last == nil {
		return new(big.Int)
	}
	return new(big.Int).Add(s.last, big.NewInt(1))
}

// lookup resolves a reference to an earlier member, optionally qualified by the enum name
func (s *scope) lookup(name string) (*big.Int, error) {
	name = strings.TrimPrefix(name, s.enumName+".")
	v, ok := s.values[name]
	if !ok {
		return nil, fmt.Errorf("the name %q does not refer to an earlier member of %s", name, s.enumName)
	}
	return new(big.Int).Set(v), nil
}

func (s *scope) add(name string, v *big.Int) error {
	if _, dup := s.values[name]; dup {
		return fmt.Errorf("the type %s already contains a definition for %q", s.enumName, name)
	}
	if !s.underlying.Fits(v) {
		return fmt.Errorf("the constant value %s of %s.%s cannot be converted to %s", v, s.enumName, name, s.underlying)
	}
	s.values[name] = v
	s.members = append(s.members, enum.NewBigMember(name, v))
	s.last = v
	return nil
}

// parseCSharpInteger reads a C# integer literal: decimal, 0x or 0b prefix,
// digit separators and u/l suffixes
func parseCSharpInteger(text string) (*big.Int, error) {
	lit := strings.ToLower(strings.ReplaceAll(text, "_", ""))
	lit = strings.TrimRight(lit, "ul")

	base := 10
	switch {
	case strings.HasPrefix(lit, "0x"):
		base, lit = 16, lit[2:]
	case strings.HasPrefix(lit, "0b"):
		base, lit = 2, lit[2:]
	}
	v, ok := new(big.Int).SetString(lit, base)
	if !ok || lit == "" {
		return nil, fmt.Errorf("invalid integer literal %q", text)
	}
	return v, nil
}

// vbLiteralTypes maps type characters to the bit width and signedness of the literal
var vbLiteralTypes = []struct {
	suffix string
	bits   uint
	signed bool
}{
	{"US", 16, false}, {"UI", 32, false}, {"UL", 64, false},
	{"S", 16, true}, {"I", 32, true}, {"L", 64, true},
	{"%", 32, true}, {"&", 64, true},
}

// parseVBInteger reads a Visual Basic integer literal: decimal, &H, &O or &B
// prefix and type characters such as S, US, I, UI, L, UL or %, &.
// Prefixed literals are bit patterns of their type, so &HFFFFFFFF is the
// Integer -1 and &HFFFFS is the Short -1.
func parseVBInteger(text string) (*big.Int, error) {
	lit := strings.ToUpper(strings.ReplaceAll(text, "_", ""))

	base := 10
	switch {
	case strings.HasPrefix(lit, "&H"):
		base, lit = 16, lit[2:]
	case strings.HasPrefix(lit, "&O"):
		base, lit = 8, lit[2:]
	case strings.HasPrefix(lit, "&B"):
		base, lit = 2, lit[2:]
	}

	var (
		bits   uint
		signed = true
	)
	for _, t := range vbLiteralTypes {
		// a trailing B is a hex digit, never a type character
		if strings.HasSuffix(lit, t.suffix) && len(lit) > len(t.suffix) {
			lit = strings.TrimSuffix(lit, t.suffix)
			bits, signed = t.bits, t.signed
			break
		}
	}
	v, ok := new(big.Int).SetString(lit, base)
	if !ok || lit == "" {
		return nil, fmt.Errorf("invalid integer literal %q", text)
	}
	if base == 10 {
		return v, nil
	}

	if bits == 0 {
		bits = 32
		if v.BitLen() > 32 {
			bits = 64
		}
	}
	if v.BitLen() > int(bits) {
		return nil, fmt.Errorf("integer literal %q overflows its type", text)
	}
	if signed && v.Bit(int(bits)-1) == 1 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), bits))
	}
	return v, nil
}

func unary(op string, v *big.Int) (*big.Int, error) {
	switch op {
	case "-":
		return new(big.Int).Neg(v), nil
	case "+":
		return v, nil
	case "~":
		return new(big.Int).Not(v), nil
	default:
		return nil, fmt.Errorf("operator %q cannot be used in a constant member value", op)
	}
}

func binary(op string, x, y *big.Int) (*big.Int, error) {
	switch op {
	case "+":
		return new(big.Int).Add(x, y), nil
	case "-":
		return new(big.Int).Sub(x, y), nil
	case "*":
		return new(big.Int).Mul(x, y), nil
	case "|":
		return new(big.Int).Or(x, y), nil
	case "&":
		return new(big.Int).And(x, y), nil
	case "^":
		return new(big.Int).Xor(x, y), nil
	case "<<", ">>":
		if y.Sign() < 0 || y.Cmp(big.NewInt(maxShift)) >= 0 {
			return nil, fmt.Errorf("shift count %s is out of range", y)
		}
		if op == "<<" {
			return new(big.Int).Lsh(x, uint(y.Uint64())), nil
		}
		return new(big.Int).Rsh(x, uint(y.Uint64())), nil
	default:
		return nil, fmt.Errorf("operator %q cannot be used in a constant member value", op)
	}
}
