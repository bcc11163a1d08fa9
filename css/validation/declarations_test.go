package validation

import (
	"strings"
	"testing"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	ctx := NewContext(StandardMode)

	capt := testutils.CaptureLogs()
	records := ParseDeclarations("color: red; MARGIN: 1px !important; --main: 10px 20px ; -webkit-transform: none", ctx)
	capt.AssertNoLogs(t)

	require.Len(t, records, 7)
	assert.Equal(t, pr.PColor, records[0].Property)
	assert.Equal(t, values.Color{R: 255, A: 255}, records[0].Value)
	for _, r := range records[1:5] {
		assert.Equal(t, pr.SMargin, r.FromShorthand)
		assert.True(t, r.Important)
		assert.Equal(t, "1px", text(r))
	}
	assert.Equal(t, pr.PVariable, records[5].Property)
	assert.Equal(t, values.CustomPropertyDeclaration{Name: "--main", Text: "10px 20px"}, records[5].Value)
	assert.Equal(t, pr.PTransform, records[6].Property)
}

func TestParseDeclarationsErrors(t *testing.T) {
	ctx := NewContext(StandardMode)

	capt := testutils.CaptureLogs()
	records := ParseDeclarations("width: red; unknown: 1px; height: 10px; @media print { color: blue }; 12: 3", ctx)
	logs := capt.Logs()

	require.Len(t, records, 1)
	assert.Equal(t, pr.PHeight, records[0].Property)

	require.Len(t, logs, 4)
	assert.True(t, strings.HasPrefix(logs[0], "Ignored `width:"), logs[0])
	assert.Contains(t, logs[0], GrammarMismatch.String())
	assert.Contains(t, logs[1], "unknown property")
	assert.Contains(t, logs[2], "at-rule @media")
	assert.True(t, strings.HasPrefix(logs[3], "Invalid declaration"), logs[3])
}

func TestParseDeclarationsAtomicity(t *testing.T) {
	ctx := NewContext(StandardMode)

	capt := testutils.CaptureLogs()
	records := ParseDeclarations("margin: 1px; border: 1px solid red blue; padding: 2px", ctx)
	logs := capt.Logs()

	assert.Len(t, logs, 1)
	require.Len(t, records, 8)
	for _, r := range records {
		assert.NotEqual(t, pr.SBorder, r.FromShorthand)
	}
}

func TestParseDeclarationsImportant(t *testing.T) {
	ctx := NewContext(StandardMode)

	capt := testutils.CaptureLogs()
	records := ParseDeclarations("display: block !important inline; float: left ! important", ctx)
	logs := capt.Logs()

	require.Len(t, logs, 1)
	assert.True(t, strings.HasPrefix(logs[0], "Ignored `display:"), logs[0])
	require.Len(t, records, 1)
	assert.Equal(t, pr.PFloat, records[0].Property)
	assert.True(t, records[0].Important)
}

func TestCustomProperties(t *testing.T) {
	ctx := NewContext(StandardMode)
	var out Collector

	require.NoError(t, ParseCustomProperty("--a", false, tokens(" inherit "), ctx, &out))
	require.NoError(t, ParseCustomProperty("--B", true, tokens("{ a: b }"), ctx, &out))
	records := out.Records()
	require.Len(t, records, 2)
	assert.Equal(t, values.CustomPropertyDeclaration{Name: "--a", Keyword: values.Inherit}, records[0].Value)
	decl := records[1].Value.(values.CustomPropertyDeclaration)
	assert.Equal(t, "--B", decl.Name)
	assert.True(t, records[1].Important)

	err := ParseCustomProperty("--empty", false, tokens("  "), ctx, &out)
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = ParseCustomProperty("-x", false, tokens("1"), ctx, &out)
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = ParseCustomProperty("--a", false, tokens("1"), ctx.ForRule(FontFaceRule), &out)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 2, out.Len())
}
