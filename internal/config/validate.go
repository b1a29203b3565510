package config

import (
	"path/filepath"
	"regexp"
	"sort"
)

// MaxOptimizerRuns is the largest run count the compiler accepts.
const MaxOptimizerRuns = 1<<32 - 1

var versionPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)$`)

// validate checks the merged values in a fixed order and returns the first
// violation.
func validate(compiler Compiler, paths Paths, defaultNetwork string, networks map[string]Settings) error {
	if err := validateCompiler(compiler); err != nil {
		return err
	}
	if err := validatePaths(paths); err != nil {
		return err
	}
	return validateNetworks(defaultNetwork, networks)
}

func validateCompiler(c Compiler) error {
	if !versionPattern.MatchString(c.Version) {
		return &ValidationError{
			Field:      "compiler.version",
			Value:      c.Version,
			Constraint: "must be a semantic version MAJOR.MINOR.PATCH",
		}
	}
	if c.Optimizer.Runs < 0 || c.Optimizer.Runs > MaxOptimizerRuns {
		return &ValidationError{
			Field:      "compiler.optimizer.runs",
			Value:      c.Optimizer.Runs,
			Constraint: "must be an integer between 0 and 4294967295",
		}
	}
	return nil
}

func validatePaths(p Paths) error {
	fields := p.fields()
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name, Value: f.value, Constraint: "must be a non-empty path"}
		}
	}

	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		clean := filepath.Clean(f.value)
		if other, ok := seen[clean]; ok {
			return &ValidationError{
				Field:      f.name,
				Value:      f.value,
				Constraint: "path fields must resolve to distinct directories",
				Conflict:   other,
			}
		}
		seen[clean] = f.name
	}
	return nil
}

func validateNetworks(defaultNetwork string, networks map[string]Settings) error {
	if _, ok := networks[""]; ok {
		return &ValidationError{Field: "networks", Value: "", Constraint: "network names must be non-empty"}
	}
	if _, ok := networks[HardhatNetwork]; !ok {
		return &ValidationError{Field: "networks", Value: networkNames(networks), Constraint: "must contain the reserved network " + HardhatNetwork}
	}
	if defaultNetwork == "" {
		return &ValidationError{Field: "defaultNetwork", Value: defaultNetwork, Constraint: "must be a non-empty network name"}
	}
	if _, ok := networks[defaultNetwork]; !ok {
		return &ValidationError{
			Field:      "defaultNetwork",
			Value:      defaultNetwork,
			Constraint: "must name a configured network",
		}
	}
	return nil
}

func networkNames(networks map[string]Settings) []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
