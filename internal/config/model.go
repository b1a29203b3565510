package config

// RawConfig is the user-authored configuration tree. A nil pointer or map
// means the field was not given.
type RawConfig struct {
	Compiler       *RawCompiler
	Paths          *RawPaths
	DefaultNetwork *string
	// Networks maps a profile name to its settings. A nil settings map is an
	// explicitly declared profile with no settings.
	Networks map[string]Settings
}

// RawCompiler is the optional compiler section of a RawConfig.
type RawCompiler struct {
	Version   *string
	Optimizer *RawOptimizer
}

// RawOptimizer is the optional optimizer section of a RawCompiler.
type RawOptimizer struct {
	Enabled *bool
	Runs    *int64
}

// RawPaths is the optional directory layout section of a RawConfig.
type RawPaths struct {
	Sources   *string
	Tests     *string
	Cache     *string
	Artifacts *string
}

// IsEmpty reports whether no field of the configuration was given.
func (r *RawConfig) IsEmpty() bool {
	return r == nil ||
		(r.Compiler == nil &&
			r.Paths == nil &&
			r.DefaultNetwork == nil &&
			r.Networks == nil)
}

// Compiler holds the resolved compiler selection.
type Compiler struct {
	Version   string
	Optimizer Optimizer
}

// Optimizer holds the resolved optimizer flags. Runs is kept even when the
// optimizer is disabled.
type Optimizer struct {
	Enabled bool
	Runs    int64
}

// Paths holds the resolved directory layout, as written by the user.
type Paths struct {
	Sources   string
	Tests     string
	Cache     string
	Artifacts string
}

// fields returns the path fields in declaration order, paired with their
// dotted names.
func (p Paths) fields() []pathField {
	return []pathField{
		{name: "paths.sources", value: p.Sources},
		{name: "paths.tests", value: p.Tests},
		{name: "paths.cache", value: p.Cache},
		{name: "paths.artifacts", value: p.Artifacts},
	}
}

type pathField struct {
	name  string
	value string
}

// NetworkProfile is a named set of connection settings for one target
// environment.
type NetworkProfile struct {
	Name     string
	Settings Settings
}

// Settings is an open key/value map of network settings. Values are strings,
// bools, int64, float64, nil, []any or map[string]any.
type Settings map[string]any

// Clone returns a deep copy of s. Cloning a nil map yields an empty one.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Settings:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
