package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/usage"
)

func TestGenerateTemplateNeverClobbers(t *testing.T) {
	p := initTestProject(t)

	first, err := p.GenerateTemplate("ses3d_4_0")
	require.NoError(t, err)
	second, err := p.GenerateTemplate("ses3d_4_0")
	require.NoError(t, err)

	assert.Equal(t, "ses3d_4_0_template.xml", filepath.Base(first))
	assert.Equal(t, "ses3d_4_0_template_1.xml", filepath.Base(second))
	require.FileExists(t, first)
	require.FileExists(t, second)
}

func TestGenerateTemplateUnknownSolver(t *testing.T) {
	p := initTestProject(t)

	_, err := p.GenerateTemplate("specfem")

	var cmdErr *usage.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Message, "specfem")
}

func TestTemplateRoundTrip(t *testing.T) {
	p := initTestProject(t)
	path, err := p.GenerateTemplate("ses3d_4_0")
	require.NoError(t, err)
	name := strings.TrimSuffix(filepath.Base(path), ".xml")

	tmpl, err := p.LoadTemplate(name)

	require.NoError(t, err)
	assert.Equal(t, 4000, tmpl.NumberOfPoints)
	assert.Equal(t, 0.13, tmpl.TimeIncrement)
	assert.True(t, tmpl.IsDissipative)
}

func TestTemplateNames(t *testing.T) {
	p := initTestProject(t)
	_, err := p.GenerateTemplate("ses3d_4_0")
	require.NoError(t, err)

	names, err := p.TemplateNames()

	require.NoError(t, err)
	assert.Equal(t, []string{"ses3d_4_0_template"}, names)
}

func TestGenerateInputFiles(t *testing.T) {
	p := initTestProject(t)
	writeTestEvent(t, p, "quake_1", 42.0, 13.4, 8000, 6.1)
	_, err := p.GenerateTemplate("ses3d_4_0")
	require.NoError(t, err)

	outDir, err := p.GenerateInputFiles(
		"quake_1", "ses3d_4_0_template", "adjoint_forward", "filtered_heaviside")

	require.NoError(t, err)
	assert.Contains(t, outDir, "input_files_adjoint_forward_quake_1")

	setup, err := os.ReadFile(filepath.Join(outDir, "setup"))
	require.NoError(t, err)
	assert.Contains(t, string(setup), "SIMULATION_TYPE      adjoint forward")
	assert.Contains(t, string(setup), "EVENT                quake_1")
	assert.Contains(t, string(setup), "NUMBER_OF_TIME_STEPS 4000")

	stf, err := os.ReadFile(filepath.Join(outDir, "stf"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(stf)), "\n")
	assert.Len(t, lines, 4000)
}

func TestGenerateInputFilesRejectsBadSimulationType(t *testing.T) {
	p := initTestProject(t)

	_, err := p.GenerateInputFiles("e", "t", "sideways_simulation", "s")

	var cmdErr *usage.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Message, "sideways_simulation")
}
