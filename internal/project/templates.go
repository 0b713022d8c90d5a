package project

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lasif-tools/cli/internal/usage"
)

// SimulationTypes are the accepted values for input file generation.
var SimulationTypes = []string{"normal_simulation", "adjoint_forward", "adjoint_reverse"}

// Solvers lists the solvers a template can be generated for.
var Solvers = []string{"ses3d_4_0"}

// InputFileTemplate is the editable per-solver simulation setup stored
// as an XML file in the templates folder.
type InputFileTemplate struct {
	XMLName        xml.Name `xml:"ses3d_4_0_input_file_template"`
	NumberOfPoints int      `xml:"simulation_parameters>number_of_time_steps"`
	TimeIncrement  float64  `xml:"simulation_parameters>time_increment"`
	IsDissipative  bool     `xml:"simulation_parameters>is_dissipative"`
	NXGlobal       int      `xml:"computational_setup>nx_global"`
	NYGlobal       int      `xml:"computational_setup>ny_global"`
	NZGlobal       int      `xml:"computational_setup>nz_global"`
	PolynomialDeg  int      `xml:"computational_setup>lagrange_polynomial_degree"`
	ModelName      string   `xml:"computational_setup>model"`
}

var defaultSES3DTemplate = InputFileTemplate{
	NumberOfPoints: 4000,
	TimeIncrement:  0.13,
	IsDissipative:  true,
	NXGlobal:       66,
	NYGlobal:       108,
	NZGlobal:       28,
	PolynomialDeg:  4,
	ModelName:      "",
}

// TemplateNames lists the input file templates of the project, sorted.
func (p *Project) TemplateNames() ([]string, error) {
	entries, err := os.ReadDir(p.Layout.Templates)
	if err != nil {
		return nil, fmt.Errorf("read templates folder: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".xml"))
	}
	sort.Strings(names)
	return names, nil
}

// GenerateTemplate writes a fresh template for the given solver and
// returns its path. The filename never clobbers an existing template.
func (p *Project) GenerateTemplate(solver string) (string, error) {
	if solver != "ses3d_4_0" {
		return "", usage.Commandf("solver %q not supported. Available solvers: %s",
			solver, strings.Join(Solvers, ", "))
	}
	path, err := freeTemplatePath(p.Layout.Templates, solver)
	if err != nil {
		return "", err
	}
	out, err := xml.MarshalIndent(defaultSES3DTemplate, "", "  ")
	if err != nil {
		return "", err
	}
	data := append([]byte(xml.Header), out...)
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write template: %w", err)
	}
	return path, nil
}

// freeTemplatePath finds the first unused "<solver>_template[_N].xml"
// name inside folder.
func freeTemplatePath(folder, solver string) (string, error) {
	for i := 0; i < 100000; i++ {
		name := solver + "_template"
		if i > 0 {
			name += fmt.Sprintf("_%d", i)
		}
		path := filepath.Join(folder, name+".xml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no free template filename in %s", folder)
}

// LoadTemplate reads a named input file template.
func (p *Project) LoadTemplate(name string) (*InputFileTemplate, error) {
	path := filepath.Join(p.Layout.Templates, name+".xml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, usage.Commandf("input file template %q not known to this project", name)
		}
		return nil, err
	}
	var tmpl InputFileTemplate
	if err := xml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return &tmpl, nil
}

// GenerateInputFiles produces the solver input files for one event and
// returns the output directory.
func (p *Project) GenerateInputFiles(eventName, templateName, simulationType, stfName string) (string, error) {
	if !validSimulationType(simulationType) {
		return "", usage.Commandf("invalid simulation type %q. Available types: %s",
			simulationType, strings.Join(SimulationTypes, ", "))
	}
	tmpl, err := p.LoadTemplate(templateName)
	if err != nil {
		return "", err
	}
	stf, err := p.LoadSTF(stfName)
	if err != nil {
		return "", err
	}
	info, err := p.EventInfo(eventName)
	if err != nil {
		return "", err
	}

	outDir := filepath.Join(p.Layout.Output,
		fmt.Sprintf("input_files_%s_%s", simulationType, eventName))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	samples := stf.Evaluate(tmpl.NumberOfPoints, tmpl.TimeIncrement)
	var stfBody strings.Builder
	for _, v := range samples {
		fmt.Fprintf(&stfBody, "%.10e\n", v)
	}
	if err := os.WriteFile(filepath.Join(outDir, "stf"), []byte(stfBody.String()), 0o644); err != nil {
		return "", err
	}

	var setup strings.Builder
	fmt.Fprintf(&setup, "SIMULATION_TYPE      %s\n", strings.ReplaceAll(simulationType, "_", " "))
	fmt.Fprintf(&setup, "EVENT                %s\n", info.Name)
	fmt.Fprintf(&setup, "SOURCE_LATITUDE      %.6f\n", info.Latitude)
	fmt.Fprintf(&setup, "SOURCE_LONGITUDE     %.6f\n", info.Longitude)
	fmt.Fprintf(&setup, "SOURCE_DEPTH_KM      %.3f\n", info.DepthKM)
	fmt.Fprintf(&setup, "NUMBER_OF_TIME_STEPS %d\n", tmpl.NumberOfPoints)
	fmt.Fprintf(&setup, "TIME_INCREMENT       %g\n", tmpl.TimeIncrement)
	fmt.Fprintf(&setup, "IS_DISSIPATIVE       %t\n", tmpl.IsDissipative)
	fmt.Fprintf(&setup, "NX_GLOBAL            %d\n", tmpl.NXGlobal)
	fmt.Fprintf(&setup, "NY_GLOBAL            %d\n", tmpl.NYGlobal)
	fmt.Fprintf(&setup, "NZ_GLOBAL            %d\n", tmpl.NZGlobal)
	fmt.Fprintf(&setup, "LPD                  %d\n", tmpl.PolynomialDeg)
	if err := os.WriteFile(filepath.Join(outDir, "setup"), []byte(setup.String()), 0o644); err != nil {
		return "", err
	}

	return outDir, nil
}

func validSimulationType(t string) bool {
	for _, s := range SimulationTypes {
		if s == t {
			return true
		}
	}
	return false
}
