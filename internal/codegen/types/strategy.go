package types

// CodeGenerator renders the fragments of a strongly typed enum class.
// Each method returns one fragment; the converter decides which fragments
// are used and in what order.
type CodeGenerator interface {
	// UsingStatement imports a namespace
	UsingStatement(namespace string) string
	StartNamespace() string
	RegionStart(name string) string
	RegionEnd() string

	// StartClassDefinition opens the class, declaring IComparable when ordering is enabled
	StartClassDefinition() string
	PrivateConstructor() string

	// AllField declares the collection filled by the constructor. It is empty
	// for strategies that list members directly.
	AllField() string
	AllMethod() string
	StaticMembers() string

	ToStringMethod() string
	FromStringMethod() string
	ToDbValueMethod() string
	FromDbValueMethod() string
	CastToUnderlyingOperator() string
	CastFromUnderlyingOperator() string

	CompareTo() string
	LessThan() string
	LessThanOrEqual() string
	GreaterThan() string
	GreaterThanOrEqual() string

	EndClassDefinition() string
	EndNamespace() string
}

// Strategy names the member construction approach of a generator
type Strategy interface {
	// GetName returns the name of the strategy
	GetName() string

	// Priority returns the addition priority the strategy implements
	Priority() AdditionPriority
}
