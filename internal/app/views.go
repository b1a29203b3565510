package app

import "github.com/specialistvlad/contractcfg/internal/config"

// viewTree renders the input one external tool receives.
func viewTree(cfg *config.ResolvedConfig, target string) map[string]any {
	switch target {
	case TargetCompiler:
		job := cfg.CompilerJob()
		return map[string]any{
			"version": job.Version,
			"optimizer": map[string]any{
				"enabled": job.Optimizer.Enabled,
				"runs":    job.Optimizer.Runs,
			},
			"sources":   job.Sources,
			"artifacts": job.Artifacts,
			"cache":     job.Cache,
		}
	case TargetTest:
		job := cfg.TestJob()
		return map[string]any{
			"tests": job.Tests,
			"network": map[string]any{
				"name":     job.Network.Name,
				"settings": map[string]any(job.Network.Settings),
			},
		}
	default:
		set := cfg.NetworkSet()
		networks := make(map[string]any, len(set.Networks))
		for name, profile := range set.Networks {
			networks[name] = map[string]any(profile.Settings)
		}
		return map[string]any{
			"default":  set.Default,
			"networks": networks,
		}
	}
}
