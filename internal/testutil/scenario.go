// Package testutil loads the declarative Lox program scenarios shared by the
// end-to-end tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is one Lox program together with what running it must produce.
type Scenario struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Stdout []string `yaml:"stdout"`
	// Errors lists the reported errors in order, rendered with Error().
	Errors          []string `yaml:"errors"`
	HadError        bool     `yaml:"hadError"`
	HadRuntimeError bool     `yaml:"hadRuntimeError"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads every *.yml file in dir. Scenario names are prefixed
// with the file name so they are unique across files.
func LoadScenarios(dir string) ([]Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var scenarios []Scenario
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var f scenarioFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		prefix := filepath.Base(path)
		prefix = prefix[:len(prefix)-len(filepath.Ext(prefix))]
		for _, s := range f.Scenarios {
			s.Name = prefix + "/" + s.Name
			scenarios = append(scenarios, s)
		}
	}
	return scenarios, nil
}
