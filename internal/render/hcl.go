package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// writeHCLConfig lays the document out the way the HCL loader reads it:
// compiler and paths blocks, a default_network attribute and one labelled
// network block per profile.
func writeHCLConfig(w io.Writer, tree map[string]any) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for _, k := range sortedKeys(tree) {
		switch k {
		case "compiler", "paths", "defaultNetwork", "networks":
		default:
			return fmt.Errorf("cannot write %q as an HCL configuration attribute", k)
		}
	}

	if compiler, ok := tree["compiler"].(map[string]any); ok {
		block := body.AppendNewBlock("compiler", nil)
		if err := setAttr(block.Body(), "version", compiler["version"]); err != nil {
			return err
		}
		if optimizer, ok := compiler["optimizer"].(map[string]any); ok {
			ob := block.Body().AppendNewBlock("optimizer", nil)
			if err := setAttrs(ob.Body(), optimizer, "enabled", "runs"); err != nil {
				return err
			}
		}
		body.AppendNewline()
	}

	if paths, ok := tree["paths"].(map[string]any); ok {
		block := body.AppendNewBlock("paths", nil)
		if err := setAttrs(block.Body(), paths, "sources", "tests", "cache", "artifacts"); err != nil {
			return err
		}
		body.AppendNewline()
	}

	if name, ok := tree["defaultNetwork"]; ok {
		if err := setAttr(body, "default_network", name); err != nil {
			return err
		}
	}

	if networks, ok := tree["networks"].(map[string]any); ok {
		for _, name := range sortedKeys(networks) {
			body.AppendNewline()
			block := body.AppendNewBlock("network", []string{name})
			settings, _ := networks[name].(map[string]any)
			for _, key := range sortedKeys(settings) {
				if !hclsyntax.ValidIdentifier(key) {
					return fmt.Errorf("network %q: setting %q is not a valid HCL attribute name", name, key)
				}
				if err := setAttr(block.Body(), key, settings[key]); err != nil {
					return fmt.Errorf("network %q: %w", name, err)
				}
			}
		}
	}

	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

// writeHCLValue writes each top-level key as an attribute.
func writeHCLValue(w io.Writer, tree map[string]any) error {
	f := hclwrite.NewEmptyFile()
	for _, k := range sortedKeys(tree) {
		if !hclsyntax.ValidIdentifier(k) {
			return fmt.Errorf("%q is not a valid HCL attribute name", k)
		}
		if err := setAttr(f.Body(), k, tree[k]); err != nil {
			return err
		}
	}
	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

// setAttrs sets the listed keys that are present in m, in the given order.
func setAttrs(body *hclwrite.Body, m map[string]any, keys ...string) error {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if err := setAttr(body, k, v); err != nil {
			return err
		}
	}
	return nil
}

func setAttr(body *hclwrite.Body, name string, v any) error {
	val, err := nativeToCty(v)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	body.SetAttributeValue(name, val)
	return nil
}

// nativeToCty converts a decoded document value into a cty.Value.
func nativeToCty(v any) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(val), nil
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(val))
		for i, item := range val {
			elem, err := nativeToCty(item)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = elem
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, item := range val {
			attr, err := nativeToCty(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute '%s': %w", k, err)
			}
			attrs[k] = attr
		}
		return cty.ObjectVal(attrs), nil
	}
	return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
