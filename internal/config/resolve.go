package config

// ResolvedConfig is a fully populated and validated configuration. It cannot
// be modified after Resolve returns it; every accessor hands out a copy.
type ResolvedConfig struct {
	compiler       Compiler
	paths          Paths
	defaultNetwork string
	networks       map[string]Settings
}

// Resolve merges raw over the built-in defaults and validates the result.
// A nil raw resolves to the defaults. Validation stops at the first violated
// invariant, checked in this order: compiler version, optimizer, paths,
// networks.
func Resolve(raw *RawConfig) (*ResolvedConfig, error) {
	compiler, paths, defaultNetwork, networks := merge(Defaults(), raw)
	if err := validate(compiler, paths, defaultNetwork, networks); err != nil {
		return nil, err
	}
	return &ResolvedConfig{
		compiler:       compiler,
		paths:          paths,
		defaultNetwork: defaultNetwork,
		networks:       networks,
	}, nil
}

// Compiler returns the compiler selection.
func (c *ResolvedConfig) Compiler() Compiler {
	return c.compiler
}

// Paths returns the directory layout.
func (c *ResolvedConfig) Paths() Paths {
	return c.paths
}

// DefaultNetwork returns the name of the network used when none is selected.
func (c *ResolvedConfig) DefaultNetwork() string {
	return c.defaultNetwork
}

// Network returns a copy of the named profile.
func (c *ResolvedConfig) Network(name string) (NetworkProfile, bool) {
	settings, ok := c.networks[name]
	if !ok {
		return NetworkProfile{}, false
	}
	return NetworkProfile{Name: name, Settings: settings.Clone()}, true
}

// Networks returns a copy of every network profile keyed by name.
func (c *ResolvedConfig) Networks() map[string]NetworkProfile {
	out := make(map[string]NetworkProfile, len(c.networks))
	for name, settings := range c.networks {
		out[name] = NetworkProfile{Name: name, Settings: settings.Clone()}
	}
	return out
}

// NetworkNames returns the configured network names in sorted order.
func (c *ResolvedConfig) NetworkNames() []string {
	return networkNames(c.networks)
}
