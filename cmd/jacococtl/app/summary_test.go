package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureXML = `<?xml version="1.0" encoding="UTF-8"?>
<report name="Example Coverage">
    <counter type="INSTRUCTION" missed="9" covered="7"/>
    <counter type="LINE" missed="3" covered="2"/>
</report>`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jacocoTestReport.xml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureXML), 0644))
	return path
}

func TestSummaryCommand_PrintsTotals(t *testing.T) {
	path := writeFixture(t)

	cmd := NewSummaryCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Example Coverage")
	assert.Contains(t, out.String(), "INSTRUCTION")
	assert.Contains(t, out.String(), "43.8%")
	assert.NotContains(t, out.String(), "BRANCH")
}

func TestSummaryCommand_FailsBelowThreshold(t *testing.T) {
	path := writeFixture(t)

	cmd := NewSummaryCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{path, "--min-instruction", "90"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coverage below required minimum")
	assert.Contains(t, errOut.String(), "below required")
}

func TestSummaryCommand_PassesThreshold(t *testing.T) {
	path := writeFixture(t)

	cmd := NewSummaryCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--min-instruction", "40"})

	require.NoError(t, cmd.Execute())
}

func TestSummaryCommand_MissingReport(t *testing.T) {
	cmd := NewSummaryCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.xml")})

	assert.Error(t, cmd.Execute())
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewJacococtlCommand()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"report", "merge", "instrument", "summary"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
