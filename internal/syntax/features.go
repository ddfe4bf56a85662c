package syntax

// Feature is a construct with an older and a newer rendering
type Feature string

const (
	// NameOf renders nameof(x) instead of "x"
	NameOf Feature = "nameof"
	// ExpressionBody renders "=> expr;" instead of a block returning expr
	ExpressionBody Feature = "expression-body"
	// StringInterpolation renders $"...{x}..." instead of concatenation
	StringInterpolation Feature = "string-interpolation"
	// ThrowExpression renders "?? throw ..." instead of if/return/throw
	ThrowExpression Feature = "throw-expression"
	// TargetTypedNew renders new(...) when the type is already known
	TargetTypedNew Feature = "target-typed-new"
)

// Gate is a row of the feature table
type Gate struct {
	Feature Feature `json:"feature" yaml:"feature"`
	Since   Version `json:"since" yaml:"since"`
}

var gates = []Gate{
	{Feature: NameOf, Since: CSharp60},
	{Feature: ExpressionBody, Since: CSharp60},
	{Feature: StringInterpolation, Since: CSharp60},
	{Feature: ThrowExpression, Since: CSharp70},
	{Feature: TargetTypedNew, Since: CSharp90},
}

// Gates returns the feature table in registration order
func Gates() []Gate {
	out := make([]Gate, len(gates))
	copy(out, gates)
	return out
}

// Since returns the minimum version for a feature
func Since(f Feature) (Version, bool) {
	for _, g := range gates {
		if g.Feature == f {
			return g.Since, true
		}
	}
	return Version{}, false
}

// Supports reports whether v may use f. Unknown features are never supported.
func (v Version) Supports(f Feature) bool {
	since, ok := Since(f)
	if !ok {
		return false
	}
	return v.AtLeast(since)
}

// Features returns the features available to v
func (v Version) Features() []Feature {
	var out []Feature
	for _, g := range gates {
		if v.AtLeast(g.Since) {
			out = append(out, g.Feature)
		}
	}
	return out
}
