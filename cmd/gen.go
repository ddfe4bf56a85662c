package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getlawrence/stenum/internal/codegen/generator"
	"github.com/getlawrence/stenum/internal/codegen/types"
	internalconfig "github.com/getlawrence/stenum/internal/config"
	"github.com/getlawrence/stenum/internal/logger"
	"github.com/getlawrence/stenum/internal/parser"
	"github.com/getlawrence/stenum/internal/templates"
	"github.com/getlawrence/stenum/internal/ui"
)

var genCmd = &cobra.Command{
	Use:   "gen [file...]",
	Short: "Generate strongly typed enum classes",
	Long: `Convert enum declarations into strongly typed enum classes.

Each file must contain exactly one enum. With no file, or "-", the
declaration is read from stdin. The input dialect is detected from the file
extension and content unless --dialect is given, and the class is generated
in the same dialect.

Generated code goes to stdout unless --output names a file or a directory.
A directory receives one <Name>.cs or <Name>.vb file per enum.`,
	Example: `  stenum gen CowboyType.cs
  stenum gen --priority properties --syntax 6 --comparable Suit.cs
  echo "enum Color { Red, Green }" | stenum gen --regions=false
  stenum gen -o Generated/ --watch Enums/*.cs`,
	RunE: runGen,
}

var (
	priority      string
	syntaxVersion string
	dbValue       bool
	underlying    bool
	comparable    bool
	visibility    string
	regions       bool
	dialectName   string
	outputPath    string
	dryRun        bool
	watch         bool
)

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&priority, "priority", "p", "members",
		"Addition priority (members, properties)")
	genCmd.Flags().StringVarP(&syntaxVersion, "syntax", "s", "",
		"Target C# version, e.g. \"C# 7.0\", 7 or 6.0 (default newest)")
	genCmd.Flags().BoolVar(&dbValue, "db-value", true,
		"Generate database tag conversions")
	genCmd.Flags().BoolVar(&underlying, "underlying", true,
		"Generate casts to and from the underlying value")
	genCmd.Flags().BoolVar(&comparable, "comparable", false,
		"Implement IComparable and the ordering operators")
	genCmd.Flags().StringVar(&visibility, "visibility", "internal",
		"Class visibility (internal, public)")
	genCmd.Flags().BoolVar(&regions, "regions", true,
		"Wrap generated sections in regions")
	genCmd.Flags().StringVarP(&dialectName, "dialect", "d", "",
		"Input dialect (csharp, vb), detected when empty")
	genCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file or directory (default stdout)")
	genCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Show what would be generated without writing files")
	genCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Regenerate whenever an input file changes")
}

// genRun is a resolved gen invocation
type genRun struct {
	conv    *generator.Converter
	options types.GeneratorOptions
	dialect parser.Dialect
	output  string
	dryRun  bool
	stdout  io.Writer
	log     logger.Logger
	verbose logger.Logger
}

func runGen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app := appConfigFrom(cmd)

	cfg := *app.Config
	applyGenFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	dialect, err := cfg.InputDialect()
	if err != nil {
		return err
	}

	run := &genRun{
		conv:    generator.NewConverter(nil),
		options: opts,
		dialect: dialect,
		output:  cfg.Output.Directory,
		dryRun:  dryRun,
		stdout:  cmd.OutOrStdout(),
		log:     app.Logger,
		verbose: app.Verbose(),
	}

	if watch {
		if len(args) == 0 || containsStdin(args) {
			return fmt.Errorf("--watch needs input files")
		}
		if run.output == "" && !run.dryRun {
			return fmt.Errorf("--watch needs --output or --dry-run")
		}
		return watchSources(ctx, args, run)
	}

	sources, err := readSources(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	action := func() error { return run.convertAll(ctx, sources) }
	if len(sources) > 1 && run.output != "" && !run.dryRun && logger.IsInteractive() {
		return ui.RunSpinner(ctx, fmt.Sprintf("Generating %d enum classes...", len(sources)), action)
	}
	return action()
}

// applyGenFlags overrides configuration values with explicitly set flags
func applyGenFlags(cmd *cobra.Command, cfg *internalconfig.Config) {
	flags := cmd.Flags()
	g := &cfg.Generator
	if flags.Changed("priority") {
		g.AdditionPriority = priority
	}
	if flags.Changed("syntax") {
		g.SyntaxVersion = syntaxVersion
	}
	if flags.Changed("db-value") {
		g.DbValue = dbValue
	}
	if flags.Changed("underlying") {
		g.UnderlyingValue = underlying
	}
	if flags.Changed("comparable") {
		g.ImplementComparable = comparable
	}
	if flags.Changed("visibility") {
		g.Visibility = visibility
	}
	if flags.Changed("regions") {
		g.Regions = regions
	}
	if flags.Changed("dialect") {
		g.Dialect = dialectName
	}
	if flags.Changed("output") {
		cfg.Output.Directory = outputPath
	}
}

func containsStdin(args []string) bool {
	for _, a := range args {
		if a == "-" {
			return true
		}
	}
	return false
}

// readSources loads every named file, or stdin when none is named
func readSources(args []string, stdin io.Reader) ([]generator.Source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	sources := make([]generator.Source, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", displayName(name), err)
		}
		sources = append(sources, generator.Source{Filename: name, Text: string(data)})
	}
	return sources, nil
}

func displayName(name string) string {
	if name == "-" || name == "" {
		return "stdin"
	}
	return name
}

// convertAll converts every source, reporting each failure and carrying on
// with the rest
func (r *genRun) convertAll(ctx context.Context, sources []generator.Source) error {
	var (
		results []*generator.Result
		entries []templates.ReportEntry
		errs    []error
	)
	for _, src := range sources {
		src.Dialect = r.dialect
		name := displayName(src.Filename)
		r.verbose.Logf("Converting %s\n", name)

		res, err := r.conv.ConvertSource(ctx, src, r.options)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			entries = append(entries, templates.ReportEntry{Source: name, Error: err.Error()})
			continue
		}
		target := r.target(res, len(sources))
		if sameFile(target, src.Filename) {
			err := fmt.Errorf("%w %s", errOverwritesInput, target)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			entries = append(entries, templates.ReportEntry{Source: name, Error: err.Error()})
			continue
		}
		results = append(results, res)
		entries = append(entries, templates.ReportEntry{
			Source:    name,
			Name:      res.Name,
			Namespace: res.Namespace,
			Dialect:   string(res.Dialect),
			Strategy:  res.Strategy,
			Members:   res.Members,
			Target:    target,
		})
	}

	if r.dryRun {
		if err := r.report(entries); err != nil {
			return err
		}
	} else if err := r.write(results, len(sources)); err != nil {
		return err
	}

	for _, err := range errs {
		r.log.Logf("✗ %v\n", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d sources failed: %w", len(errs), len(sources), errors.Join(errs...))
	}
	return nil
}

var errOverwritesInput = errors.New("output would overwrite the input file")

// sameFile reports whether target names the source file
func sameFile(target, source string) bool {
	if target == "stdout" || source == "" || source == "-" {
		return false
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	absSource, err := filepath.Abs(source)
	if err != nil {
		return false
	}
	if absTarget == absSource {
		return true
	}
	ti, err := os.Stat(absTarget)
	if err != nil {
		return false
	}
	si, err := os.Stat(absSource)
	return err == nil && os.SameFile(ti, si)
}

// target is where a result is written: stdout, the output file, or
// <Name>.<ext> inside the output directory
func (r *genRun) target(res *generator.Result, total int) string {
	if r.output == "" {
		return "stdout"
	}
	if r.outputIsDir(total) {
		return filepath.Join(r.output, res.Filename())
	}
	return r.output
}

func (r *genRun) outputIsDir(total int) bool {
	if total > 1 || strings.HasSuffix(r.output, "/") || strings.HasSuffix(r.output, string(os.PathSeparator)) {
		return true
	}
	info, err := os.Stat(r.output)
	return err == nil && info.IsDir()
}

func (r *genRun) write(results []*generator.Result, total int) error {
	for i, res := range results {
		target := r.target(res, total)
		if target == "stdout" {
			if i > 0 {
				fmt.Fprintln(r.stdout)
			}
			if _, err := io.WriteString(r.stdout, res.Code); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(res.Code), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		r.verbose.Logf("Wrote %s (%d members, %s)\n", target, res.Members, res.Strategy)
	}
	return nil
}

func (r *genRun) report(entries []templates.ReportEntry) error {
	engine, err := templates.NewTemplateEngine()
	if err != nil {
		return err
	}
	out, err := engine.GenerateReport(templates.ReportData{Options: r.options, Entries: entries})
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.stdout, out)
	return err
}
