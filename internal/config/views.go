package config

// CompilerInput is the part of a resolved configuration consumed by the
// compiler invocation tool.
type CompilerInput struct {
	Version   string
	Optimizer Optimizer
	Sources   string
	Artifacts string
	Cache     string
}

// TestInput is the part of a resolved configuration consumed by the test
// execution tool.
type TestInput struct {
	Tests   string
	Network NetworkProfile
}

// NetworkInput is the part of a resolved configuration consumed by the
// network simulation tool.
type NetworkInput struct {
	Default  string
	Networks map[string]NetworkProfile
}

// CompilerJob returns the compiler tool's view.
func (c *ResolvedConfig) CompilerJob() CompilerInput {
	return CompilerInput{
		Version:   c.compiler.Version,
		Optimizer: c.compiler.Optimizer,
		Sources:   c.paths.Sources,
		Artifacts: c.paths.Artifacts,
		Cache:     c.paths.Cache,
	}
}

// TestJob returns the test tool's view. The network is the default one.
func (c *ResolvedConfig) TestJob() TestInput {
	network, _ := c.Network(c.defaultNetwork)
	return TestInput{
		Tests:   c.paths.Tests,
		Network: network,
	}
}

// NetworkSet returns the network simulation tool's view.
func (c *ResolvedConfig) NetworkSet() NetworkInput {
	return NetworkInput{
		Default:  c.defaultNetwork,
		Networks: c.Networks(),
	}
}
