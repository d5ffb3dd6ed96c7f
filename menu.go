package goxbar

import (
	"fmt"
	"os"
	"strings"
)

// Menu is the root of a plugin's output: the status-bar title, the
// "---" sentinel, the top-level dropdown rows, and finally whatever
// diagnostics the configuration has accumulated.
type Menu struct {
	Title string

	cfg   *Config
	items []Renderable
}

// NewMenu returns a menu with the given status-bar title.
func NewMenu(title string) *Menu {
	return &Menu{Title: title}
}

// WithConfig attaches the configuration threaded to every item during
// rendering. Without it the menu falls back to defaults.
func (m *Menu) WithConfig(cfg *Config) *Menu {
	m.cfg = cfg
	return m
}

// Config returns the menu's configuration, creating a default one on
// first use.
func (m *Menu) Config() *Config {
	if m.cfg == nil {
		m.cfg = NewConfig()
	}
	return m.cfg
}

// WithItems appends top-level rows. nil items are skipped; ownership
// transfers to the menu. Returns the receiver for chaining.
func (m *Menu) WithItems(items ...Renderable) *Menu {
	m.items = appendRenderables(m.items, items)
	return m
}

// Render produces the complete host output, one line per slice entry.
func (m *Menu) Render() ([]string, error) {
	cfg := m.Config()

	lines := []string{m.Title, "---"}
	for _, item := range m.items {
		sub, err := item.Render(cfg, 0)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}

	diagnostics, err := cfg.Render(cfg, 0)
	if err != nil {
		return nil, err
	}
	lines = append(lines, diagnostics...)

	return lines, nil
}

// Format renders the menu as a single newline-joined block.
func (m *Menu) Format() (string, error) {
	lines, err := m.Render()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Print writes the rendered menu to standard output. This is the
// entire contract with the host application.
func (m *Menu) Print() error {
	out, err := m.Format()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(os.Stdout, out); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return nil
}
