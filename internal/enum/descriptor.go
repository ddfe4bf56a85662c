package enum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultNamespace is used when the source enumeration is not inside a namespace
const DefaultNamespace = "Project1"

var (
	// ErrInvalid is returned for descriptors that cannot be generated from
	ErrInvalid = errors.New("invalid enum descriptor")
	// ErrEmpty is returned for enumerations without members
	ErrEmpty = fmt.Errorf("%w: enumeration has no members", ErrInvalid)
	// ErrDuplicateMember is returned when two members share a name
	ErrDuplicateMember = fmt.Errorf("%w: duplicate member", ErrInvalid)
	// ErrValueOutOfRange is returned when a value does not fit the underlying type
	ErrValueOutOfRange = fmt.Errorf("%w: value out of range", ErrInvalid)
)

// Member is a single named value of an enumeration
type Member struct {
	Name  string
	value *big.Int
}

// NewMember creates a member holding v
func NewMember(name string, v int64) Member {
	return Member{Name: name, value: big.NewInt(v)}
}

// NewBigMember creates a member holding an arbitrary precision value
func NewBigMember(name string, v *big.Int) Member {
	return Member{Name: name, value: new(big.Int).Set(v)}
}

// Value returns a copy of the member value
func (m Member) Value() *big.Int {
	if m.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(m.value)
}

// Literal returns the value in decimal form
func (m Member) Literal() string {
	return m.Value().String()
}

// Descriptor is the language neutral description of an enumeration.
// It is immutable once created with New.
type Descriptor struct {
	name       string
	namespace  string
	underlying UnderlyingType
	members    []Member
}

// New validates the parts of an enumeration and returns its descriptor
func New(name, namespace string, underlying UnderlyingType, members []Member) (*Descriptor, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("%w: type name %q is not an identifier", ErrInvalid, name)
	}
	if namespace != "" {
		for _, part := range strings.Split(namespace, ".") {
			if !isIdentifier(part) {
				return nil, fmt.Errorf("%w: namespace %q is not a dotted identifier", ErrInvalid, namespace)
			}
		}
	}
	if underlying != None && !underlying.Valid() {
		return nil, fmt.Errorf("%w: unsupported underlying type %q", ErrInvalid, underlying)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}

	seen := make(map[string]struct{}, len(members))
	copied := make([]Member, 0, len(members))
	for _, m := range members {
		if !isIdentifier(m.Name) {
			return nil, fmt.Errorf("%w: member name %q is not an identifier", ErrInvalid, m.Name)
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateMember, name, m.Name)
		}
		seen[m.Name] = struct{}{}
		if underlying != None && !underlying.Fits(m.Value()) {
			return nil, fmt.Errorf("%w: %s.%s = %s does not fit %s", ErrValueOutOfRange, name, m.Name, m.Literal(), underlying)
		}
		copied = append(copied, NewBigMember(m.Name, m.Value()))
	}

	return &Descriptor{
		name:       name,
		namespace:  namespace,
		underlying: underlying,
		members:    copied,
	}, nil
}

// Name returns the enumeration type name
func (d *Descriptor) Name() string { return d.name }

// Namespace returns the declared namespace, possibly empty
func (d *Descriptor) Namespace() string { return d.namespace }

// NamespaceOrDefault returns the namespace, falling back to DefaultNamespace
func (d *Descriptor) NamespaceOrDefault() string {
	if strings.TrimSpace(d.namespace) == "" {
		return DefaultNamespace
	}
	return d.namespace
}

// Underlying returns the underlying integral type
func (d *Descriptor) Underlying() UnderlyingType { return d.underlying }

// Members returns the members in declaration order
func (d *Descriptor) Members() []Member {
	out := make([]Member, len(d.members))
	copy(out, d.members)
	return out
}

// MemberNames returns the member names in declaration order
func (d *Descriptor) MemberNames() []string {
	names := make([]string, len(d.members))
	for i, m := range d.members {
		names[i] = m.Name
	}
	return names
}

// Len returns the number of members
func (d *Descriptor) Len() int { return len(d.members) }

// DbValue returns the database tag of a member: its first character, or the
// whole name when another member starts with the same character.
func (d *Descriptor) DbValue(memberName string) string {
	first, _ := utf8.DecodeRuneInString(memberName)
	prefix := string(first)
	count := 0
	for _, m := range d.members {
		if strings.HasPrefix(m.Name, prefix) {
			count++
		}
	}
	if count == 1 {
		return prefix
	}
	return memberName
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
