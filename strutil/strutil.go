// Package strutil holds small string and collection helpers shared by
// plugins: dotted-path lookup into decoded JSON, nil-filtering joins
// and identifier case conversion.
package strutil

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// GetIn walks a dotted path through nested map[string]any and []any
// collections (the shapes produced by encoding/json) and returns every
// value found at the path. A "*" segment fans out over all elements of
// a list or, in sorted key order, all values of a map. A path that
// leads nowhere yields no values rather than an error.
//
//	GetIn(doc, "servers.*.host")
func GetIn(coll any, path string) []any {
	if path == "" {
		return nil
	}
	return getIn(coll, strings.Split(path, "."))
}

func getIn(coll any, keys []string) []any {
	if len(keys) == 0 {
		return []any{coll}
	}
	key, rest := keys[0], keys[1:]

	switch c := coll.(type) {
	case map[string]any:
		if key == "*" {
			names := make([]string, 0, len(c))
			for name := range c {
				names = append(names, name)
			}
			sort.Strings(names)
			var out []any
			for _, name := range names {
				out = append(out, getIn(c[name], rest)...)
			}
			return out
		}
		value, ok := c[key]
		if !ok {
			return nil
		}
		return getIn(value, rest)

	case []any:
		if key == "*" {
			var out []any
			for _, elem := range c {
				out = append(out, getIn(elem, rest)...)
			}
			return out
		}
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(c) {
			return nil
		}
		return getIn(c[idx], rest)
	}

	return nil
}

// Join concatenates the string forms of args with sep, dropping nil
// values entirely.
func Join(sep string, args ...any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == nil {
			continue
		}
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, sep)
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// CamelToSnake converts a camelCase identifier to snake_case.
// Consecutive capitals stay together: "templateImage" becomes
// "template_image" and "ID" becomes "id".
func CamelToSnake(s string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(s, "${1}_${2}"))
}
