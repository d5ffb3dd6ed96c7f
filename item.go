package goxbar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// MenuItem is a single dropdown row. The first field group mirrors the
// nineteen attributes the host application understands; everything the
// host should see is serialized by Render, so plain composite literals
// are the intended construction style:
//
//	&goxbar.MenuItem{Title: "Logs", Href: "https://example.com/logs"}
//
// Three-state attributes are *bool (see Flag). Zero values mean
// "unset" and are omitted from the rendered line.
type MenuItem struct {
	// Title is the visible text of the row. A title of "---" makes the
	// row a divider.
	Title string `json:"title"`

	// Key is a shortcut key, with "+" combining modifiers, for example
	// "shift+k".
	Key string `json:"key"`
	// Href is opened by the host when the row is clicked.
	Href string `json:"href"`
	// Color is the text color, either a named color or "#rrggbb".
	Color string `json:"color"`
	// Font is the text font. The special value "monospace" resolves to
	// Config.MonoFont at render time.
	Font string `json:"font"`
	// Size is the text size in points; 0 keeps the host default.
	Size int `json:"size"`
	// Shell is a command the host runs when the row is clicked.
	Shell string `json:"shell"`
	// Params are additional arguments for Shell, serialized as
	// param1=, param2=, and so on.
	Params []string `json:"params"`
	// Terminal controls whether Shell runs in a terminal window.
	Terminal *bool `json:"terminal"`
	// Refresh makes the host re-run the plugin after a click (after
	// Shell finishes, when one is set).
	Refresh *bool `json:"refresh"`
	// Dropdown, when false, keeps the row cycling in the status bar
	// without appearing in the dropdown.
	Dropdown *bool `json:"dropdown"`
	// Length truncates the rendered title to this many characters.
	Length int `json:"length"`
	// Trim controls whitespace trimming of the title.
	Trim *bool `json:"trim"`
	// Alternate marks the row as the Option-key alternate of the
	// previous row.
	Alternate *bool `json:"alternate"`
	// TemplateImage is a base64 PNG of black and clear pixels.
	TemplateImage string `json:"templateImage"`
	// Image is a base64 image shown next to the title.
	Image string `json:"image"`
	// Emojize controls :mushroom:-style emoji substitution.
	Emojize *bool `json:"emojize"`
	// Ansi controls interpretation of ANSI escape codes in the title.
	Ansi *bool `json:"ansi"`
	// Disabled greys the row out and makes it unclickable.
	Disabled *bool `json:"disabled"`

	// TitleAlternate, when set, emits a second line with identical
	// attributes but this text, the conventional Option-key view.
	TitleAlternate string `json:"titleAlternate"`
	// Monospace forces Font to Config.MonoFont at render time.
	Monospace bool `json:"monospace"`
	// OnlyIf gates the row: when its truthiness is false the row, its
	// submenu and its siblings all disappear from the output. nil
	// means no gate. See Flag-style helpers in truthy for accepted
	// types.
	OnlyIf any `json:"-"`

	submenu  []Renderable
	siblings []Renderable
}

// paramKind selects the omission rule for a serialized attribute.
type paramKind int

const (
	// paramText attributes are emitted when non-empty, shell-quoted.
	paramText paramKind = iota
	// paramNumber attributes are emitted when non-zero.
	paramNumber
	// paramFlag attributes are three-state; they are emitted whenever
	// set, including an explicit False.
	paramFlag
)

// paramSpec describes one serializable attribute. menuParams fixes the
// attribute order on the wire; title, shell and params are handled
// separately by allParams.
type paramSpec struct {
	name  string
	kind  paramKind
	value func(*MenuItem) any
}

var menuParams = []paramSpec{
	{"key", paramText, func(m *MenuItem) any { return m.Key }},
	{"href", paramText, func(m *MenuItem) any { return m.Href }},
	{"color", paramText, func(m *MenuItem) any { return m.Color }},
	{"font", paramText, func(m *MenuItem) any { return m.Font }},
	{"size", paramNumber, func(m *MenuItem) any { return m.Size }},
	{"terminal", paramFlag, func(m *MenuItem) any { return m.Terminal }},
	{"refresh", paramFlag, func(m *MenuItem) any { return m.Refresh }},
	{"dropdown", paramFlag, func(m *MenuItem) any { return m.Dropdown }},
	{"length", paramNumber, func(m *MenuItem) any { return m.Length }},
	{"trim", paramFlag, func(m *MenuItem) any { return m.Trim }},
	{"alternate", paramFlag, func(m *MenuItem) any { return m.Alternate }},
	{"templateImage", paramText, func(m *MenuItem) any { return m.TemplateImage }},
	{"image", paramText, func(m *MenuItem) any { return m.Image }},
	{"emojize", paramFlag, func(m *MenuItem) any { return m.Emojize }},
	{"ansi", paramFlag, func(m *MenuItem) any { return m.Ansi }},
	{"disabled", paramFlag, func(m *MenuItem) any { return m.Disabled }},
}

// IsDivider reports whether the row is the "---" separator.
func (m *MenuItem) IsDivider() bool {
	return m.Title == "---"
}

// WithSubmenu appends children rendered one nesting level deeper than
// this row. nil children are skipped. Returns the receiver for
// chaining; ownership of the children transfers to the item.
func (m *MenuItem) WithSubmenu(children ...Renderable) *MenuItem {
	m.submenu = appendRenderables(m.submenu, children)
	return m
}

// WithSiblings appends peers rendered at the same depth immediately
// after this row and its submenu. nil entries are skipped.
func (m *MenuItem) WithSiblings(peers ...Renderable) *MenuItem {
	m.siblings = appendRenderables(m.siblings, peers)
	return m
}

// WithAlternate marks item as the Option-key alternate of this row and
// appends it to the siblings.
func (m *MenuItem) WithAlternate(item *MenuItem) *MenuItem {
	item.Alternate = Flag(true)
	return m.WithSiblings(item)
}

func appendRenderables(dst []Renderable, src []Renderable) []Renderable {
	for _, r := range src {
		if r == nil {
			continue
		}
		dst = append(dst, r)
	}
	return dst
}

// Render implements Renderable.
func (m *MenuItem) Render(cfg *Config, depth int) ([]string, error) {
	return m.render(cfg, depth, nil)
}

// render is the shared traversal used by MenuItem and its
// specializations. extra holds subclass hook rows emitted at the same
// depth between the title line(s) and the submenu.
func (m *MenuItem) render(cfg *Config, depth int, extra []Renderable) ([]string, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	ok, err := truthy(m.OnlyIf)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", m.Title, err)
	}
	if !ok {
		return nil, nil
	}

	// Persisted on the item, not just for this render call, so repeated
	// renders are stable.
	if m.Font == "monospace" || m.Monospace {
		m.Font = cfg.MonoFont
	}

	params, err := m.allParams()
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", m.Title, err)
	}

	lines := []string{joinLine(m.titleLine(depth, false), params)}
	if m.TitleAlternate != "" {
		lines = append(lines, joinLine(m.titleLine(depth, true), params))
	}

	for _, hook := range extra {
		sub, err := hook.Render(cfg, depth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}
	for _, child := range m.submenu {
		sub, err := child.Render(cfg, depth+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}
	for _, peer := range m.siblings {
		sub, err := peer.Render(cfg, depth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}

	return lines, nil
}

// depthPrefix encodes nesting: "--" per level, then one space except
// for dividers, whose dashes run together with the marker.
func (m *MenuItem) depthPrefix(depth int) string {
	if depth == 0 {
		return ""
	}
	prefix := strings.Repeat("--", depth)
	if !m.IsDivider() {
		prefix += " "
	}
	return prefix
}

func (m *MenuItem) titleLine(depth int, alternate bool) string {
	title := m.Title
	if alternate {
		title = m.TitleAlternate
	}
	return m.depthPrefix(depth) + title
}

func joinLine(title string, params []string) string {
	if len(params) == 0 {
		return title
	}
	return title + " | " + strings.Join(params, " | ")
}

// allParams serializes the pipe-delimited attribute suffix: the shell
// command and its numbered arguments first, then every other attribute
// in menuParams order under its kind's omission rule.
func (m *MenuItem) allParams() ([]string, error) {
	var out []string

	if m.Shell != "" {
		tokens, err := shellquote.Split(m.Shell)
		if err != nil {
			return nil, fmt.Errorf("tokenize shell %q: %w", m.Shell, err)
		}
		if len(tokens) > 0 {
			out = append(out, "shell="+quoteArg(tokens[0]))
			n := 0
			for _, tok := range tokens[1:] {
				n++
				out = append(out, fmt.Sprintf("param%d=%s", n, quoteArg(tok)))
			}
			for _, p := range m.Params {
				n++
				out = append(out, fmt.Sprintf("param%d=%s", n, p))
			}
		}
	}

	for _, spec := range menuParams {
		switch spec.kind {
		case paramText:
			if v := spec.value(m).(string); v != "" {
				out = append(out, spec.name+"="+quoteArg(v))
			}
		case paramNumber:
			if v := spec.value(m).(int); v != 0 {
				out = append(out, spec.name+"="+strconv.Itoa(v))
			}
		case paramFlag:
			if v := spec.value(m).(*bool); v != nil {
				out = append(out, spec.name+"="+formatFlag(*v))
			}
		}
	}

	return out, nil
}

// formatFlag writes the host's capitalized boolean literals.
func formatFlag(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// quoteArg shell-quotes a single value when it contains characters
// that would otherwise split or expand.
func quoteArg(s string) string {
	return shellquote.Join(s)
}
