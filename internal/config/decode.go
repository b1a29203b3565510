package config

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// Top-level keys of a configuration document.
const (
	keyCompiler       = "compiler"
	keySolidity       = "solidity"
	keyPaths          = "paths"
	keyDefaultNetwork = "defaultNetwork"
	keyNetworks       = "networks"
)

// Decode converts a format-neutral document tree, as produced by a loader,
// into a RawConfig. A nil tree is an empty document.
//
// The key "solidity" is accepted in place of "compiler", either as a bare
// version string or as {version, settings: {optimizer: {...}}}.
func Decode(tree any) (*RawConfig, error) {
	if tree == nil {
		return &RawConfig{}, nil
	}
	root, ok := asMapping(tree)
	if !ok {
		return nil, shapeError("", "top-level document must be a mapping, got %s", kindOf(tree))
	}

	raw := &RawConfig{}
	for _, key := range sortedKeys(root) {
		value := root[key]
		var err error
		switch key {
		case keyCompiler:
			if _, dup := root[keySolidity]; dup {
				return nil, shapeError(key, "cannot be combined with %q", keySolidity)
			}
			raw.Compiler, err = decodeCompiler(value, key)
		case keySolidity:
			raw.Compiler, err = decodeSolidity(value, key)
		case keyPaths:
			raw.Paths, err = decodePaths(value, key)
		case keyDefaultNetwork:
			raw.DefaultNetwork, err = optionalString(value, key)
		case keyNetworks:
			raw.Networks, err = decodeNetworks(value, key)
		default:
			err = shapeError(key, "unknown field")
		}
		if err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func decodeCompiler(value any, field string) (*RawCompiler, error) {
	m, err := optionalMapping(value, field)
	if m == nil || err != nil {
		return nil, err
	}
	out := &RawCompiler{}
	for _, key := range sortedKeys(m) {
		path := field + "." + key
		switch key {
		case "version":
			out.Version, err = optionalString(m[key], path)
		case "optimizer":
			out.Optimizer, err = decodeOptimizer(m[key], path)
		default:
			err = shapeError(path, "unknown field")
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// decodeSolidity accepts the Hardhat spelling of the compiler section.
func decodeSolidity(value any, field string) (*RawCompiler, error) {
	if s, ok := value.(string); ok {
		return &RawCompiler{Version: &s}, nil
	}
	m, err := optionalMapping(value, field)
	if m == nil || err != nil {
		return nil, err
	}
	out := &RawCompiler{}
	for _, key := range sortedKeys(m) {
		path := field + "." + key
		switch key {
		case "version":
			out.Version, err = optionalString(m[key], path)
		case "settings":
			var settings map[string]any
			settings, err = optionalMapping(m[key], path)
			if err != nil || settings == nil {
				break
			}
			for _, skey := range sortedKeys(settings) {
				if skey != "optimizer" {
					return nil, shapeError(path+"."+skey, "unknown field")
				}
				out.Optimizer, err = decodeOptimizer(settings[skey], path+".optimizer")
			}
		default:
			err = shapeError(path, "unknown field")
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeOptimizer(value any, field string) (*RawOptimizer, error) {
	m, err := optionalMapping(value, field)
	if m == nil || err != nil {
		return nil, err
	}
	out := &RawOptimizer{}
	for _, key := range sortedKeys(m) {
		path := field + "." + key
		switch key {
		case "enabled":
			out.Enabled, err = optionalBool(m[key], path)
		case "runs":
			out.Runs, err = optionalInt(m[key], path)
		default:
			err = shapeError(path, "unknown field")
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodePaths(value any, field string) (*RawPaths, error) {
	m, err := optionalMapping(value, field)
	if m == nil || err != nil {
		return nil, err
	}
	out := &RawPaths{}
	for _, key := range sortedKeys(m) {
		path := field + "." + key
		switch key {
		case "sources":
			out.Sources, err = optionalString(m[key], path)
		case "tests":
			out.Tests, err = optionalString(m[key], path)
		case "cache":
			out.Cache, err = optionalString(m[key], path)
		case "artifacts":
			out.Artifacts, err = optionalString(m[key], path)
		default:
			err = shapeError(path, "unknown field")
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeNetworks(value any, field string) (map[string]Settings, error) {
	m, err := optionalMapping(value, field)
	if m == nil || err != nil {
		return nil, err
	}
	out := make(map[string]Settings, len(m))
	for _, name := range sortedKeys(m) {
		path := field + "." + name
		settings, err := optionalMapping(m[name], path)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			out[name] = nil
			continue
		}
		normalized, err := normalizeValue(settings, path)
		if err != nil {
			return nil, err
		}
		out[name] = Settings(normalized.(map[string]any))
	}
	return out, nil
}

// normalizeValue converts an arbitrary decoded leaf into the small set of
// types Settings may hold. Integral numbers become int64, other numbers
// float64.
func normalizeValue(v any, field string) (any, error) {
	switch val := v.(type) {
	case nil, string, bool:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return normalizeUint(uint64(val), field)
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return normalizeUint(val, field)
	case float32:
		return normalizeFloat(float64(val), field)
	case float64:
		return normalizeFloat(val, field)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, &ParseError{Field: field, Msg: fmt.Sprintf("invalid number %q", val.String()), Err: err}
		}
		return normalizeFloat(f, field)
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	}

	if m, ok := asMapping(v); ok {
		out := make(map[string]any, len(m))
		for k, item := range m {
			n, err := normalizeValue(item, field+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			n, err := normalizeValue(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", field, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}

	return nil, shapeError(field, "unsupported value of type %T", v)
}

func normalizeUint(u uint64, field string) (any, error) {
	if u > math.MaxInt64 {
		return nil, shapeError(field, "integer %d overflows int64", u)
	}
	return int64(u), nil
}

func normalizeFloat(f float64, field string) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, shapeError(field, "non-finite number %v", f)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), nil
	}
	return f, nil
}

// asMapping accepts the map shapes produced by the supported decoders.
// Maps with non-string keys are rejected.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Settings:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, item := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = item
		}
		return out, true
	}
	return nil, false
}

func optionalMapping(v any, field string) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := asMapping(v)
	if !ok {
		return nil, shapeError(field, "expected a mapping, got %s", kindOf(v))
	}
	return m, nil
}

func optionalString(v any, field string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, shapeError(field, "expected a string, got %s", kindOf(v))
	}
	return &s, nil
}

func optionalBool(v any, field string) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, shapeError(field, "expected a boolean, got %s", kindOf(v))
	}
	return &b, nil
}

func optionalInt(v any, field string) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	n, err := normalizeValue(v, field)
	if err != nil {
		return nil, err
	}
	i, ok := n.(int64)
	if !ok {
		return nil, shapeError(field, "expected an integer, got %s", kindOf(v))
	}
	return &i, nil
}

func shapeError(field, format string, args ...any) *ParseError {
	return &ParseError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// kindOf names the shape of a decoded value for error messages.
func kindOf(v any) string {
	if v == nil {
		return "null"
	}
	switch val := v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return fmt.Sprintf("number %s", val.String())
	case float32, float64:
		return fmt.Sprintf("number %v", val)
	}
	if _, ok := asMapping(v); ok {
		return "mapping"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	}
	return fmt.Sprintf("%T", v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
