package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlawrence/stenum/internal/codegen/types"
)

func TestTemplateEngine_LoadsTemplates(t *testing.T) {
	eng, err := NewTemplateEngine()
	require.NoError(t, err)
	assert.Equal(t, []string{"config_header", "report"}, eng.GetAvailableTemplates())
}

func TestTemplateEngine_GenerateReport(t *testing.T) {
	eng, err := NewTemplateEngine()
	require.NoError(t, err)

	out, err := eng.GenerateReport(ReportData{
		Options: types.DefaultOptions(),
		Entries: []ReportEntry{
			{Source: "CowboyType.cs", Name: "CowboyType", Namespace: "Project1", Dialect: "csharp", Strategy: "Member-priority", Members: 3, Target: "out/CowboyType.cs"},
			{Source: "Broken.cs", Error: "compilation failed with 1 error: (1,1): syntax error"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Dry run: 2 source(s), nothing written\n")
	assert.Contains(t, out, "priority=members syntax=C# 9.0 visibility=internal db-value=yes underlying=yes comparable=no regions=yes\n")
	assert.Contains(t, out, "  ✓ CowboyType.cs -> out/CowboyType.cs\n      Project1.CowboyType (csharp, 3 members, Member-priority)\n")
	assert.Contains(t, out, "  ✗ Broken.cs: compilation failed")
	assert.Contains(t, out, "1 failed\n")
}

func TestTemplateEngine_GenerateReport_AllConverted(t *testing.T) {
	eng, err := NewTemplateEngine()
	require.NoError(t, err)

	out, err := eng.GenerateReport(ReportData{Options: types.DefaultOptions()})
	require.NoError(t, err)
	assert.Contains(t, out, "all sources converted\n")
}

func TestTemplateEngine_GenerateConfigHeader(t *testing.T) {
	eng, err := NewTemplateEngine()
	require.NoError(t, err)

	out, err := eng.GenerateConfigHeader(ConfigHeaderData{Path: ".stenum.yaml", Versions: []string{"C# 5.0", "C# 9.0"}})
	require.NoError(t, err)
	assert.Contains(t, out, "# stenum configuration (.stenum.yaml)\n")
	assert.Contains(t, out, "syntax_version: C# 5.0, C# 9.0\n")
}
