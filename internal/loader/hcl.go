package loader

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/contractcfg/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// hclRoot mirrors the top level of an HCL configuration file:
//
//	compiler {
//	  version = "0.8.20"
//	  optimizer {
//	    enabled = true
//	    runs    = 200
//	  }
//	}
//	paths { sources = "./contracts/src" }
//	default_network = "hardhat"
//	network "hardhat" {}
type hclRoot struct {
	Compiler       *hclCompiler   `hcl:"compiler,block"`
	Paths          *hclPaths      `hcl:"paths,block"`
	DefaultNetwork hcl.Expression `hcl:"default_network,optional"`
	Networks       []*hclNetwork  `hcl:"network,block"`
}

type hclCompiler struct {
	Version   hcl.Expression `hcl:"version,optional"`
	Optimizer *hclOptimizer  `hcl:"optimizer,block"`
}

type hclOptimizer struct {
	Enabled hcl.Expression `hcl:"enabled,optional"`
	Runs    hcl.Expression `hcl:"runs,optional"`
}

type hclPaths struct {
	Sources   hcl.Expression `hcl:"sources,optional"`
	Tests     hcl.Expression `hcl:"tests,optional"`
	Cache     hcl.Expression `hcl:"cache,optional"`
	Artifacts hcl.Expression `hcl:"artifacts,optional"`
}

type hclNetwork struct {
	Name     string   `hcl:"name,label"`
	Settings hcl.Body `hcl:",remain"`
}

// parseHCL parses an HCL document into the neutral document tree.
func parseHCL(data []byte, filename string, env map[string]string) (any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diagError(diags)
	}

	d := &hclDecoder{evalCtx: evalContext(env)}
	tree := map[string]any{}

	if c := root.Compiler; c != nil {
		compiler := map[string]any{}
		d.attr(compiler, "version", c.Version)
		if o := c.Optimizer; o != nil {
			optimizer := map[string]any{}
			d.attr(optimizer, "enabled", o.Enabled)
			d.attr(optimizer, "runs", o.Runs)
			compiler["optimizer"] = optimizer
		}
		tree["compiler"] = compiler
	}

	if p := root.Paths; p != nil {
		paths := map[string]any{}
		d.attr(paths, "sources", p.Sources)
		d.attr(paths, "tests", p.Tests)
		d.attr(paths, "cache", p.Cache)
		d.attr(paths, "artifacts", p.Artifacts)
		tree["paths"] = paths
	}

	d.attr(tree, "defaultNetwork", root.DefaultNetwork)

	if len(root.Networks) > 0 {
		networks := map[string]any{}
		for _, n := range root.Networks {
			if _, dup := networks[n.Name]; dup {
				pErr := &config.ParseError{Field: "networks." + n.Name, Msg: "duplicate network block"}
				if body, ok := n.Settings.(*hclsyntax.Body); ok {
					pErr.Line = body.SrcRange.Start.Line
					pErr.Column = body.SrcRange.Start.Column
				}
				return nil, pErr
			}
			networks[n.Name] = d.settings(n.Settings)
		}
		tree["networks"] = networks
	}

	if d.err != nil {
		return nil, d.err
	}
	return tree, nil
}

// hclDecoder evaluates expressions into native values and keeps the first
// error it meets.
type hclDecoder struct {
	evalCtx *hcl.EvalContext
	err     error
}

// attr stores the value of expr under key when the attribute was written in
// the source file.
func (d *hclDecoder) attr(dst map[string]any, key string, expr hcl.Expression) {
	if d.err != nil || !isExprDefined(expr) {
		return
	}
	val, diags := expr.Value(d.evalCtx)
	if diags.HasErrors() {
		d.err = diagError(diags)
		return
	}
	native, err := ctyToNative(val)
	if err != nil {
		d.fail(expr.Range(), key, err)
		return
	}
	dst[key] = native
}

// settings evaluates every attribute of a network block. Nested blocks are
// not allowed; nested values are written as object expressions.
func (d *hclDecoder) settings(body hcl.Body) map[string]any {
	out := map[string]any{}
	if d.err != nil {
		return out
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		d.err = diagError(diags)
		return out
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.attr(out, name, attrs[name].Expr)
	}
	return out
}

func (d *hclDecoder) fail(rng hcl.Range, key string, err error) {
	d.err = &config.ParseError{
		Line:   rng.Start.Line,
		Column: rng.Start.Column,
		Field:  key,
		Err:    err,
	}
}

// isExprDefined checks if an HCL expression was actually present in the source
// code. For omitted optional attributes the decoder fills in a synthetic
// expression whose source range has zero width.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}

// evalContext exposes env as the object variable "env". A nil env yields a
// nil context, so any variable reference is an error.
func evalContext(env map[string]string) *hcl.EvalContext {
	if env == nil {
		return nil
	}
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}
	envVal := cty.EmptyObjectVal
	if len(vars) > 0 {
		envVal = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}

// diagError converts the first error diagnostic into a ParseError.
func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		pErr := &config.ParseError{Msg: diag.Summary}
		if diag.Detail != "" {
			pErr.Msg = fmt.Sprintf("%s; %s", diag.Summary, diag.Detail)
		}
		if diag.Subject != nil {
			pErr.Source = diag.Subject.Filename
			pErr.Line = diag.Subject.Start.Line
			pErr.Column = diag.Subject.Start.Column
		}
		return pErr
	}
	return &config.ParseError{Err: diags}
}
