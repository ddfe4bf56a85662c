package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/enum"
	"github.com/getlawrence/stenum/internal/parser"
)

// Region names of the generated class
const (
	RegionMembers    = "Members"
	RegionAll        = "All"
	RegionString     = "To/From String"
	RegionDbValue    = "DbValue"
	RegionUnderlying = "Cast to/from Underlying Type"
	RegionComparable = "IComparable"
)

var importedNamespaces = []string{"System", "System.Collections.Generic", "System.Linq"}

// Source is an enumeration declaration to convert
type Source struct {
	// Filename helps dialect detection, it may be empty
	Filename string
	// Dialect overrides detection when set
	Dialect parser.Dialect
	Text    string
}

// Result describes a generated class
type Result struct {
	Name      string
	Namespace string
	Dialect   parser.Dialect
	Strategy  string
	Members   int
	Code      string
}

// Filename returns the conventional file name of the generated class
func (r *Result) Filename() string {
	return r.Name + r.Dialect.Extension()
}

// Converter turns enumeration declarations into strongly typed enum classes
type Converter struct {
	registry *LanguageRegistry
}

// NewConverter creates a converter over registry, or the default registry when nil
func NewConverter(registry *LanguageRegistry) *Converter {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Converter{registry: registry}
}

// Registry returns the language factories used by the converter
func (c *Converter) Registry() *LanguageRegistry { return c.registry }

// Convert parses text, detecting its dialect, and returns the generated class source
func (c *Converter) Convert(ctx context.Context, text string, options types.GeneratorOptions) (string, error) {
	res, err := c.ConvertSource(ctx, Source{Text: text}, options)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

// ConvertSource parses src and generates the class in the same dialect
func (c *Converter) ConvertSource(ctx context.Context, src Source, options types.GeneratorOptions) (*Result, error) {
	dialect := src.Dialect
	if dialect == "" {
		dialect = parser.DetectDialect(src.Filename, src.Text)
	}
	factory, ok := c.registry.Get(dialect)
	if !ok {
		return nil, fmt.Errorf("%w: dialect %q", types.ErrUnsupported, dialect)
	}

	desc, err := factory.Parser().Parse(ctx, src.Text)
	if err != nil {
		return nil, err
	}
	return c.generate(factory, desc, options)
}

// ConvertDescriptor generates the class for an already parsed enumeration
func (c *Converter) ConvertDescriptor(dialect parser.Dialect, desc *enum.Descriptor, options types.GeneratorOptions) (string, error) {
	factory, ok := c.registry.Get(dialect)
	if !ok {
		return "", fmt.Errorf("%w: dialect %q", types.ErrUnsupported, dialect)
	}
	res, err := c.generate(factory, desc, options)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

func (c *Converter) generate(factory LanguageFactory, desc *enum.Descriptor, options types.GeneratorOptions) (*Result, error) {
	options = options.WithDefaults()
	if err := options.Validate(); err != nil {
		return nil, err
	}

	gen, err := factory.CodeGenerator(desc, options)
	if err != nil {
		return nil, err
	}

	return &Result{
		Name:      desc.Name(),
		Namespace: desc.NamespaceOrDefault(),
		Dialect:   factory.Language(),
		Strategy:  gen.GetName(),
		Members:   desc.Len(),
		Code:      assemble(gen, options),
	}, nil
}

type section struct {
	region    string
	fragments []string
}

// assemble concatenates the fragments in their fixed order
func assemble(gen types.CodeGenerator, options types.GeneratorOptions) string {
	var sb strings.Builder

	for _, ns := range importedNamespaces {
		sb.WriteString(gen.UsingStatement(ns))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(gen.StartNamespace())
	sb.WriteString(gen.StartClassDefinition())

	sections := []section{
		{fragments: []string{gen.PrivateConstructor()}},
		{region: RegionMembers, fragments: []string{gen.AllField(), gen.StaticMembers()}},
		{region: RegionAll, fragments: []string{gen.AllMethod()}},
		{region: RegionString, fragments: []string{gen.ToStringMethod(), gen.FromStringMethod()}},
	}
	if options.DbValue {
		sections = append(sections, section{region: RegionDbValue, fragments: []string{gen.ToDbValueMethod(), gen.FromDbValueMethod()}})
	}
	if options.UnderlyingValue {
		sections = append(sections, section{region: RegionUnderlying, fragments: []string{gen.CastToUnderlyingOperator(), gen.CastFromUnderlyingOperator()}})
	}
	if options.ImplementComparable {
		sections = append(sections, section{region: RegionComparable, fragments: []string{
			gen.CompareTo(), gen.LessThan(), gen.LessThanOrEqual(), gen.GreaterThan(), gen.GreaterThanOrEqual(),
		}})
	}

	for i, s := range sections {
		if i > 0 {
			sb.WriteByte('\n')
		}
		useRegion := options.Regions && s.region != ""
		if useRegion {
			sb.WriteString(gen.RegionStart(s.region))
		}
		first := true
		for _, fragment := range s.fragments {
			if fragment == "" {
				continue
			}
			if !first {
				sb.WriteByte('\n')
			}
			sb.WriteString(fragment)
			first = false
		}
		if useRegion {
			sb.WriteString(gen.RegionEnd())
		}
	}

	sb.WriteString(gen.EndClassDefinition())
	sb.WriteString(gen.EndNamespace())
	return sb.String()
}
