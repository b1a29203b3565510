package loader

import "regexp"

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandTree replaces variable references in every string leaf of tree.
func expandTree(tree any, env map[string]string) any {
	switch val := tree.(type) {
	case string:
		return expandVars(val, env)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = expandTree(v, env)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, v := range val {
			out[k] = expandTree(v, env)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = expandTree(v, env)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = expandTree(v, env)
		}
		return out
	default:
		return tree
	}
}

// expandVars substitutes the value of each referenced variable. Unset or
// empty variables take the inline default, or the empty string.
func expandVars(s string, env map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value, ok := env[parts[1]]; ok && value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}
