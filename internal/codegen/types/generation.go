package types

import (
	"errors"
	"fmt"

	"github.com/getlawrence/stenum/internal/syntax"
)

// ErrUnsupported is returned when a dialect or option combination cannot be rendered
var ErrUnsupported = errors.New("unsupported generation request")

// AdditionPriority selects which kind of future edit the generated type makes cheap
type AdditionPriority string

const (
	// MembersPriority keeps all data of a member in its declaration
	MembersPriority AdditionPriority = "members"
	// PropertiesPriority keeps all data of a property in one lookup table
	PropertiesPriority AdditionPriority = "properties"
)

// Valid reports whether p is a known priority
func (p AdditionPriority) Valid() bool {
	return p == MembersPriority || p == PropertiesPriority
}

// ParseAdditionPriority accepts "members" or "properties"
func ParseAdditionPriority(s string) (AdditionPriority, error) {
	p := AdditionPriority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: addition priority %q (valid: members, properties)", ErrUnsupported, s)
	}
	return p, nil
}

// Visibility of the generated class
type Visibility string

const (
	Internal Visibility = "internal"
	Public   Visibility = "public"
)

// GeneratorOptions contains the feature and strategy configuration of a generation request
type GeneratorOptions struct {
	AdditionPriority    AdditionPriority `json:"addition_priority" yaml:"addition_priority"`
	SyntaxVersion       syntax.Version   `json:"syntax_version" yaml:"syntax_version"`
	DbValue             bool             `json:"db_value" yaml:"db_value"`
	UnderlyingValue     bool             `json:"underlying_value" yaml:"underlying_value"`
	ImplementComparable bool             `json:"implement_comparable" yaml:"implement_comparable"`
	Visibility          Visibility       `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Regions             bool             `json:"regions" yaml:"regions"`
}

// DefaultOptions returns the options used when the caller supplies none
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		AdditionPriority:    MembersPriority,
		SyntaxVersion:       syntax.Max(),
		DbValue:             true,
		UnderlyingValue:     true,
		ImplementComparable: false,
		Visibility:          Internal,
		Regions:             true,
	}
}

// WithDefaults fills the fields that have no usable zero value
func (o GeneratorOptions) WithDefaults() GeneratorOptions {
	if o.AdditionPriority == "" {
		o.AdditionPriority = MembersPriority
	}
	if o.SyntaxVersion.IsZero() {
		o.SyntaxVersion = syntax.Max()
	}
	if o.Visibility == "" {
		o.Visibility = Internal
	}
	return o
}

// Validate checks that every field holds a renderable value
func (o GeneratorOptions) Validate() error {
	if !o.AdditionPriority.Valid() {
		return fmt.Errorf("%w: addition priority %q", ErrUnsupported, o.AdditionPriority)
	}
	if _, err := syntax.FromString(o.SyntaxVersion.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if o.Visibility != Internal && o.Visibility != Public {
		return fmt.Errorf("%w: visibility %q", ErrUnsupported, o.Visibility)
	}
	return nil
}
