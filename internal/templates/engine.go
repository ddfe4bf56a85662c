package templates

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/getlawrence/stenum/internal/codegen/types"
)

//go:embed *.tmpl
var templateFS embed.FS

// ReportData contains all data needed for the dry-run report
type ReportData struct {
	Options types.GeneratorOptions `json:"options"`
	Entries []ReportEntry          `json:"entries"`
}

// ReportEntry summarizes one converted source
type ReportEntry struct {
	Source    string `json:"source"`
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Dialect   string `json:"dialect,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	Members   int    `json:"members,omitempty"`
	Target    string `json:"target,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Failed counts entries that did not convert
func (d ReportData) Failed() int {
	n := 0
	for _, e := range d.Entries {
		if e.Error != "" {
			n++
		}
	}
	return n
}

// ConfigHeaderData feeds the comment written on top of new config files
type ConfigHeaderData struct {
	Path     string
	Versions []string
}

// TemplateEngine handles template loading and execution
type TemplateEngine struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"join":  strings.Join,
	"yesno": func(b bool) string { return map[bool]string{true: "yes", false: "no"}[b] },
}

// NewTemplateEngine creates a new template engine
func NewTemplateEngine() (*TemplateEngine, error) {
	engine := &TemplateEngine{
		templates: make(map[string]*template.Template),
	}

	if err := engine.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return engine, nil
}

// GenerateReport renders the dry-run summary
func (e *TemplateEngine) GenerateReport(data ReportData) (string, error) {
	return e.execute("report", data)
}

// GenerateConfigHeader renders the comment block for a new config file
func (e *TemplateEngine) GenerateConfigHeader(data ConfigHeaderData) (string, error) {
	return e.execute("config_header", data)
}

func (e *TemplateEngine) execute(key string, data interface{}) (string, error) {
	tmpl, exists := e.templates[key]
	if !exists {
		return "", fmt.Errorf("%s template not found", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%s template execution failed: %w", key, err)
	}

	return buf.String(), nil
}

func (e *TemplateEngine) loadTemplates() error {
	// Load embedded templates
	entries, err := templateFS.ReadDir(".")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		templateName := entry.Name()

		content, err := templateFS.ReadFile(templateName)
		if err != nil {
			return err
		}

		key := strings.TrimSuffix(templateName, ".tmpl")
		tmpl, err := template.New(key).Funcs(funcs).Parse(string(content))
		if err != nil {
			return err
		}

		e.templates[key] = tmpl
	}

	return nil
}

// GetAvailableTemplates returns all available template keys
func (e *TemplateEngine) GetAvailableTemplates() []string {
	var keys []string
	for key := range e.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
