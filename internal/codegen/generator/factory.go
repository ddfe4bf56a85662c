package generator

import (
	"fmt"
	"sort"

	"github.com/getlawrence/stenum/internal/codegen/csharp"
	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/codegen/vb"
	"github.com/getlawrence/stenum/internal/enum"
	"github.com/getlawrence/stenum/internal/parser"
)

// Generator is a strategy able to render every fragment of the enum class
type Generator interface {
	types.CodeGenerator
	types.Strategy
}

// LanguageFactory binds the parser and the strategies of one dialect
type LanguageFactory interface {
	// Language returns the dialect handled by this factory
	Language() parser.Dialect

	// Parser returns a parser for the dialect's enum declarations
	Parser() parser.Parser

	// CodeGenerator selects the strategy for options
	CodeGenerator(desc *enum.Descriptor, options types.GeneratorOptions) (Generator, error)
}

// LanguageRegistry holds all registered language factories
type LanguageRegistry struct {
	factories map[parser.Dialect]LanguageFactory
}

// NewLanguageRegistry creates an empty registry
func NewLanguageRegistry() *LanguageRegistry {
	return &LanguageRegistry{
		factories: make(map[parser.Dialect]LanguageFactory),
	}
}

// DefaultRegistry returns a registry with the C# and Visual Basic factories
func DefaultRegistry() *LanguageRegistry {
	r := NewLanguageRegistry()
	r.Register(NewCSharpFactory())
	r.Register(NewVBFactory())
	return r
}

// Register adds or replaces the factory of its language
func (r *LanguageRegistry) Register(factory LanguageFactory) {
	r.factories[factory.Language()] = factory
}

// Get retrieves the factory of a dialect
func (r *LanguageRegistry) Get(dialect parser.Dialect) (LanguageFactory, bool) {
	f, ok := r.factories[dialect]
	return f, ok
}

// Languages returns all registered dialects in name order
func (r *LanguageRegistry) Languages() []parser.Dialect {
	languages := make([]parser.Dialect, 0, len(r.factories))
	for lang := range r.factories {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool { return languages[i] < languages[j] })
	return languages
}

// checkRenderable rejects option combinations no strategy can honour
func checkRenderable(desc *enum.Descriptor, options types.GeneratorOptions) error {
	if options.UnderlyingValue && !desc.Underlying().Valid() {
		return fmt.Errorf("%w: %s has no underlying type to cast to", types.ErrUnsupported, desc.Name())
	}
	return nil
}

// CSharpFactory creates C# generators
type CSharpFactory struct{}

func NewCSharpFactory() *CSharpFactory { return &CSharpFactory{} }

func (f *CSharpFactory) Language() parser.Dialect { return parser.CSharp }

func (f *CSharpFactory) Parser() parser.Parser { return parser.NewCSharpParser() }

func (f *CSharpFactory) CodeGenerator(desc *enum.Descriptor, options types.GeneratorOptions) (Generator, error) {
	if err := checkRenderable(desc, options); err != nil {
		return nil, err
	}
	switch options.AdditionPriority {
	case types.MembersPriority:
		return csharp.NewMemberGenerator(desc, options), nil
	case types.PropertiesPriority:
		return csharp.NewPropertyGenerator(desc, options), nil
	default:
		return nil, fmt.Errorf("%w: addition priority %q for C#", types.ErrUnsupported, options.AdditionPriority)
	}
}

// VBFactory creates Visual Basic generators
type VBFactory struct{}

func NewVBFactory() *VBFactory { return &VBFactory{} }

func (f *VBFactory) Language() parser.Dialect { return parser.VB }

func (f *VBFactory) Parser() parser.Parser { return parser.NewVBParser() }

func (f *VBFactory) CodeGenerator(desc *enum.Descriptor, options types.GeneratorOptions) (Generator, error) {
	if err := checkRenderable(desc, options); err != nil {
		return nil, err
	}
	switch options.AdditionPriority {
	case types.MembersPriority:
		return vb.NewMemberGenerator(desc, options), nil
	case types.PropertiesPriority:
		return vb.NewPropertyGenerator(desc, options), nil
	default:
		return nil, fmt.Errorf("%w: addition priority %q for Visual Basic", types.ErrUnsupported, options.AdditionPriority)
	}
}
