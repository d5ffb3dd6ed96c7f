package goxbar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/muurk/goxbar/internal/logging"
)

// DefaultMonoFont is the monospace font substituted for the "monospace"
// font alias when no VAR_MONO_FONT override is configured.
const DefaultMonoFont = "Andale Mono"

// varsSuffix is appended to the plugin script path to locate the
// settings file, following the host convention for plugin variables.
const varsSuffix = ".vars.json"

// VarKind is the declared type of a configurable variable. It drives
// coercion of the raw JSON value and any post-load validation.
type VarKind int

const (
	// VarString assigns the raw string value.
	VarString VarKind = iota
	// VarBool accepts a JSON boolean or a parseable boolean string.
	VarBool
	// VarInt accepts a JSON number or a decimal string.
	VarInt
	// VarPath behaves like VarString, then expands a leading "~" and
	// records an error when the path does not exist on disk.
	VarPath
)

// VarSpec declares one configurable variable: its settings-file key
// (stored as "VAR_"+Name), its kind, and a pointer to the field that
// receives the value. Plugins pass extra specs to LoadConfig to grow
// the schema beyond the built-in fields.
type VarSpec struct {
	Name   string
	Kind   VarKind
	Target any
}

// Config holds plugin settings plus the error and warning messages
// accumulated while building or rendering a menu. It is owned by a
// Menu and threaded down to every item at render time; it renders its
// own diagnostic section after the regular dropdown rows.
type Config struct {
	// Debug switches on verbose rendering: shell command sub-lines,
	// default-value warnings and the Vars dropdown section.
	Debug bool
	// MonoFont is the font substituted for "monospace" items.
	MonoFont string

	specs    []VarSpec
	errors   map[string]struct{}
	warnings map[string]struct{}
}

// NewConfig returns a Config with defaults and an empty diagnostics
// set.
func NewConfig() *Config {
	c := &Config{
		MonoFont: DefaultMonoFont,
		errors:   make(map[string]struct{}),
		warnings: make(map[string]struct{}),
	}
	c.specs = c.builtinVars()
	return c
}

// builtinVars declares the variables every plugin gets. DEBUG comes
// first so that debug-dependent warnings during the same load already
// honor the configured value.
func (c *Config) builtinVars() []VarSpec {
	return []VarSpec{
		{Name: "DEBUG", Kind: VarBool, Target: &c.Debug},
		{Name: "MONO_FONT", Kind: VarString, Target: &c.MonoFont},
	}
}

// LoadConfig builds a Config from the settings file colocated with the
// plugin script (<scriptPath>.vars.json). A missing file is a warning,
// not an error: the plugin keeps running on defaults and the dropdown
// says so. A present key that cannot be coerced to its declared kind
// is a hard error.
//
// extra specs extend the schema with plugin-specific fields:
//
//	var city string
//	cfg, err := goxbar.LoadConfig(os.Args[0],
//	    goxbar.VarSpec{Name: "CITY", Kind: goxbar.VarString, Target: &city})
func LoadConfig(scriptPath string, extra ...VarSpec) (*Config, error) {
	c := NewConfig()
	c.specs = append(c.specs, extra...)

	varsPath := scriptPath + varsSuffix
	data, err := os.ReadFile(varsPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.Warn(fmt.Sprintf("%s is missing, using defaults", filepath.Base(varsPath)))
			return c, nil
		}
		return nil, fmt.Errorf("read %s: %w", varsPath, err)
	}

	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(varsPath), err)
	}

	for i := range c.specs {
		if err := c.applyVar(&c.specs[i], raw); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// applyVar coerces and assigns one variable from the raw settings map,
// then runs kind-specific validation.
func (c *Config) applyVar(spec *VarSpec, raw map[string]any) error {
	value, present := raw["VAR_"+spec.Name]
	if present {
		if err := assign(spec, value); err != nil {
			return fmt.Errorf("VAR_%s: %w", spec.Name, err)
		}
	} else if c.Debug {
		c.Warn(fmt.Sprintf("%s is not set, using `%s`", spec.Name, targetString(spec.Target)))
	}

	if spec.Kind == VarPath {
		if err := c.checkPath(spec); err != nil {
			return err
		}
	}

	if c.Debug {
		logging.Debug("config var",
			zap.String("name", spec.Name),
			zap.String("value", targetString(spec.Target)),
		)
	}
	return nil
}

func assign(spec *VarSpec, value any) error {
	switch spec.Kind {
	case VarString, VarPath:
		target, ok := spec.Target.(*string)
		if !ok {
			return fmt.Errorf("target must be *string, have %T", spec.Target)
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("cannot coerce %v (%T) to string", value, value)
		}
		*target = s

	case VarBool:
		target, ok := spec.Target.(*bool)
		if !ok {
			return fmt.Errorf("target must be *bool, have %T", spec.Target)
		}
		switch v := value.(type) {
		case bool:
			*target = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("cannot coerce %q to bool", v)
			}
			*target = parsed
		default:
			return fmt.Errorf("cannot coerce %v (%T) to bool", value, value)
		}

	case VarInt:
		target, ok := spec.Target.(*int)
		if !ok {
			return fmt.Errorf("target must be *int, have %T", spec.Target)
		}
		switch v := value.(type) {
		case float64: // encoding/json numbers
			*target = int(v)
		case string:
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("cannot coerce %q to int", v)
			}
			*target = parsed
		default:
			return fmt.Errorf("cannot coerce %v (%T) to int", value, value)
		}

	default:
		return fmt.Errorf("unknown var kind %d", spec.Kind)
	}
	return nil
}

// checkPath expands and validates a VarPath value. A missing path is a
// soft error surfaced through the diagnostics section.
func (c *Config) checkPath(spec *VarSpec) error {
	target, ok := spec.Target.(*string)
	if !ok {
		return fmt.Errorf("VAR_%s: path target must be *string, have %T", spec.Name, spec.Target)
	}
	if *target == "" {
		return nil
	}

	expanded, err := expandUser(*target)
	if err != nil {
		return fmt.Errorf("VAR_%s: %w", spec.Name, err)
	}
	*target = expanded

	if _, err := os.Stat(expanded); err != nil {
		c.Error(fmt.Sprintf("%s does not exist at %s", spec.Name, expanded))
	}
	return nil
}

func targetString(target any) string {
	switch t := target.(type) {
	case *string:
		return *t
	case *bool:
		return strconv.FormatBool(*t)
	case *int:
		return strconv.Itoa(*t)
	default:
		return fmt.Sprintf("%v", target)
	}
}

// Error records an error message. Duplicate messages collapse into one
// diagnostic line.
func (c *Config) Error(msg string) {
	c.errors[msg] = struct{}{}
}

// Warn records a warning message, deduplicated like Error.
func (c *Config) Warn(msg string) {
	c.warnings[msg] = struct{}{}
}

// Errors returns the recorded error messages in lexicographic order.
func (c *Config) Errors() []string {
	return sortedKeys(c.errors)
}

// Warnings returns the recorded warning messages in lexicographic
// order.
func (c *Config) Warnings() []string {
	return sortedKeys(c.warnings)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render implements Renderable: for each non-empty category it emits a
// divider, a colored header and one glyph-prefixed line per message in
// sorted order. In debug mode a Vars item lists every declared
// variable with its current value.
func (c *Config) Render(cfg *Config, depth int) ([]string, error) {
	if cfg == nil {
		cfg = c
	}

	sections := []struct {
		title    string
		color    string
		glyph    string
		messages []string
	}{
		{"errors", "red", "❌", c.Errors()},
		{"warnings", "yellow", "⚠️", c.Warnings()},
	}

	var lines []string
	for _, section := range sections {
		if len(section.messages) == 0 {
			continue
		}

		rows := []Renderable{
			Divider(),
			&MenuItem{Title: section.title, Color: section.color},
		}
		for _, msg := range section.messages {
			rows = append(rows, &MenuItem{Title: section.glyph + " " + msg})
		}
		for _, row := range rows {
			sub, err := row.Render(cfg, depth)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
		}
	}

	if c.Debug {
		vars := &MenuItem{Title: "Vars"}
		for _, spec := range c.specs {
			vars.WithSubmenu(&MenuItem{Title: spec.Name + ": " + targetString(spec.Target)})
		}
		sub, err := vars.Render(cfg, depth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}

	return lines, nil
}
