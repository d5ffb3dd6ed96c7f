package goxbar

import (
	"errors"
	"fmt"
	"reflect"
)

// Renderable is implemented by every node of a menu tree. Render
// produces fully formatted host lines for the node and everything it
// owns. depth selects the "--" indent prefix; depth 0 is a top-level
// dropdown row. The returned slice may be empty, for example when an
// item is gated off by OnlyIf or a Config has nothing to report.
//
// cfg is the menu's configuration, threaded down from the root so any
// node can read settings or record diagnostics without global state.
type Renderable interface {
	Render(cfg *Config, depth int) ([]string, error)
}

// Flag returns a pointer suitable for the three-state boolean
// attributes of MenuItem. A nil field is "unset" and omitted from the
// serialized line; Flag(false) is an explicit false and is written out.
func Flag(v bool) *bool {
	return &v
}

// ErrNotTruthy is returned (wrapped) when an OnlyIf value has a type
// that cannot be tested for truthiness.
var ErrNotTruthy = errors.New("value cannot be tested for truthiness")

// boolable is the escape hatch for custom OnlyIf gate types.
type boolable interface {
	Bool() bool
}

// truthy evaluates an OnlyIf gate. nil means the gate was never set
// and the item renders. Booleans count as themselves, strings and
// collections by length, numbers by non-zero. Anything else is a hard
// error rather than a silent guess.
func truthy(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return true, nil
	case bool:
		return t, nil
	case string:
		return t != "", nil
	case int:
		return t != 0, nil
	}

	if b, ok := v.(boolable); ok {
		return b.Bool(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan, reflect.String:
		return rv.Len() > 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false, nil
		}
		return truthy(rv.Elem().Interface())
	}

	return false, fmt.Errorf("%w: %T", ErrNotTruthy, v)
}
