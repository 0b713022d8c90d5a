package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/usage"
)

func TestSTFNamesSorted(t *testing.T) {
	p := initTestProject(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(p.Layout.STF, "aaa_custom.hcl"), []byte(defaultSTFFile), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(p.Layout.STF, "notes.txt"), []byte("ignored"), 0o644))

	names, err := p.STFNames()

	require.NoError(t, err)
	assert.Equal(t, []string{"aaa_custom", "filtered_heaviside"}, names)
}

func TestLoadSTFDefault(t *testing.T) {
	p := initTestProject(t)

	stf, err := p.LoadSTF("filtered_heaviside")

	require.NoError(t, err)
	assert.Equal(t, "filtered_heaviside", stf.Family)
	assert.Equal(t, 0.1, stf.CornerFrequency)
}

func TestLoadSTFUnknownName(t *testing.T) {
	p := initTestProject(t)

	_, err := p.LoadSTF("missing")

	var cmdErr *usage.CommandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestLoadSTFUnknownFamily(t *testing.T) {
	p := initTestProject(t)
	bad := "function {\n  family = \"sawtooth\"\n}\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(p.Layout.STF, "bad.hcl"), []byte(bad), 0o644))

	_, err := p.LoadSTF("bad")

	var cmdErr *usage.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Message, "sawtooth")
}

func TestFilteredHeavisideShape(t *testing.T) {
	stf := STF{Family: "filtered_heaviside", CornerFrequency: 0.1}

	data := stf.Evaluate(500, 0.5)

	require.Len(t, data, 500)
	assert.Equal(t, 0.0, data[0])
	// Monotonically rising towards 1, never overshooting.
	for i := 1; i < len(data); i++ {
		assert.GreaterOrEqual(t, data[i], data[i-1])
		assert.LessOrEqual(t, data[i], 1.0)
	}
	assert.InDelta(t, 1.0, data[len(data)-1], 1e-6)
}

func TestGaussianPeaksAtCenter(t *testing.T) {
	stf := STF{Family: "gaussian", CornerFrequency: 0.5}

	data := stf.Evaluate(101, 0.1)

	require.Len(t, data, 101)
	assert.InDelta(t, 1.0, data[50], 1e-12)
	assert.Less(t, data[0], 0.01)
	assert.Less(t, data[100], 0.01)
}

func TestRickerHasCentralPeakAndSideLobes(t *testing.T) {
	stf := STF{Family: "ricker", CornerFrequency: 1.0}

	data := stf.Evaluate(201, 0.01)

	assert.InDelta(t, 1.0, data[100], 1e-12)
	min := data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
	}
	assert.Less(t, min, 0.0)
}
