package project

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lasif-tools/cli/internal/usage"
)

// STF is a source time function ready for evaluation.
type STF struct {
	Name   string
	Family string
	// CornerFrequency shapes the onset (filtered_heaviside) or the
	// dominant frequency (gaussian, ricker), in Hz.
	CornerFrequency float64
}

type stfFile struct {
	Function stfBlock `hcl:"function,block"`
}

type stfBlock struct {
	Family          string  `hcl:"family"`
	CornerFrequency float64 `hcl:"corner_frequency,optional"`
}

// stfFamilies are the function families the evaluator knows.
var stfFamilies = map[string]func(stf STF, npts int, delta float64) []float64{
	"filtered_heaviside": evalFilteredHeaviside,
	"gaussian":           evalGaussian,
	"ricker":             evalRicker,
}

// defaultSTFFile is written into new projects.
const defaultSTFFile = `function {
  family           = "filtered_heaviside"
  corner_frequency = 0.1
}
`

// STFNames lists the source time functions defined in the project,
// sorted by name.
func (p *Project) STFNames() ([]string, error) {
	entries, err := os.ReadDir(p.Layout.STF)
	if err != nil {
		return nil, fmt.Errorf("read source time function folder: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".hcl") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".hcl"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadSTF reads a named source time function definition.
func (p *Project) LoadSTF(name string) (STF, error) {
	path := filepath.Join(p.Layout.STF, name+".hcl")
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return STF{}, usage.Commandf("source time function %q not known to this project", name)
		}
		return STF{}, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return STF{}, fmt.Errorf("parse %s: %s", path, diags.Error())
	}
	var def stfFile
	if diags := gohcl.DecodeBody(file.Body, nil, &def); diags.HasErrors() {
		return STF{}, fmt.Errorf("decode %s: %s", path, diags.Error())
	}

	if _, ok := stfFamilies[def.Function.Family]; !ok {
		return STF{}, usage.Commandf("source time function %q uses unknown family %q",
			name, def.Function.Family)
	}
	stf := STF{
		Name:            name,
		Family:          def.Function.Family,
		CornerFrequency: def.Function.CornerFrequency,
	}
	if stf.CornerFrequency <= 0 {
		stf.CornerFrequency = 0.1
	}
	return stf, nil
}

// Evaluate samples the function at npts points spaced delta seconds apart.
func (s STF) Evaluate(npts int, delta float64) []float64 {
	eval, ok := stfFamilies[s.Family]
	if !ok {
		return make([]float64, npts)
	}
	return eval(s, npts, delta)
}

// evalFilteredHeaviside approximates a step onset smoothed at the corner
// frequency. Rises from 0 to 1 without overshoot.
func evalFilteredHeaviside(s STF, npts int, delta float64) []float64 {
	data := make([]float64, npts)
	tau := 1.0 / (2.0 * math.Pi * s.CornerFrequency)
	for i := range data {
		t := float64(i) * delta
		data[i] = 1.0 - math.Exp(-t/tau)
	}
	return data
}

func evalGaussian(s STF, npts int, delta float64) []float64 {
	data := make([]float64, npts)
	sigma := 1.0 / (2.0 * math.Pi * s.CornerFrequency)
	center := float64(npts-1) * delta / 2.0
	for i := range data {
		t := float64(i)*delta - center
		data[i] = math.Exp(-t * t / (2.0 * sigma * sigma))
	}
	return data
}

func evalRicker(s STF, npts int, delta float64) []float64 {
	data := make([]float64, npts)
	center := float64(npts-1) * delta / 2.0
	for i := range data {
		t := float64(i)*delta - center
		a := math.Pi * s.CornerFrequency * t
		a *= a
		data[i] = (1.0 - 2.0*a) * math.Exp(-a)
	}
	return data
}
