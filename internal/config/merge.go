package config

// merge overlays raw on top of the defaults. A field counts as given when its
// pointer is non-nil, so false, 0 and "" all override the fallback.
func merge(d *DefaultConfig, raw *RawConfig) (Compiler, Paths, string, map[string]Settings) {
	compiler := d.Compiler
	paths := d.Paths
	defaultNetwork := d.DefaultNetwork
	networks := make(map[string]Settings, len(d.Networks))
	for name, settings := range d.Networks {
		networks[name] = settings.Clone()
	}
	if raw == nil {
		return compiler, paths, defaultNetwork, networks
	}

	if c := raw.Compiler; c != nil {
		setString(&compiler.Version, c.Version)
		if o := c.Optimizer; o != nil {
			if o.Enabled != nil {
				compiler.Optimizer.Enabled = *o.Enabled
			}
			if o.Runs != nil {
				compiler.Optimizer.Runs = *o.Runs
			}
		}
	}

	if p := raw.Paths; p != nil {
		setString(&paths.Sources, p.Sources)
		setString(&paths.Tests, p.Tests)
		setString(&paths.Cache, p.Cache)
		setString(&paths.Artifacts, p.Artifacts)
	}

	setString(&defaultNetwork, raw.DefaultNetwork)

	for name, settings := range raw.Networks {
		base, ok := networks[name]
		if !ok {
			networks[name] = settings.Clone()
			continue
		}
		mergeMaps(base, settings)
	}

	return compiler, paths, defaultNetwork, networks
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// mergeMaps deep-merges src into dst. Nested maps merge key by key; any other
// value in src, including nil, replaces the value in dst.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstMap, srcMap)
			continue
		}
		dst[k] = cloneValue(v)
	}
}
