package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/goxbar"
	"github.com/muurk/goxbar/icons"
	"github.com/muurk/goxbar/internal/logging"
)

// menuFile is the YAML schema for declarative menus:
//
//	title: "⚡ build"
//	items:
//	  - divider: true
//	  - title: Dashboard
//	    href: https://ci.example.com
//	    icon: grafana
//	  - title: Restart agent
//	    shell: systemctl restart agent
//	    cwd: ~/agent
//	    refresh: true
//	  - title: Environments
//	    submenu:
//	      - title: staging
//	        color: yellow
//	      - title: production
//	        color: red
//	        disabled: true
type menuFile struct {
	Title string      `yaml:"title"`
	Items []menuEntry `yaml:"items"`
}

type menuEntry struct {
	Title     string      `yaml:"title"`
	Divider   bool        `yaml:"divider"`
	Key       string      `yaml:"key"`
	Href      string      `yaml:"href"`
	Color     string      `yaml:"color"`
	Font      string      `yaml:"font"`
	Size      int         `yaml:"size"`
	Shell     string      `yaml:"shell"`
	Cwd       string      `yaml:"cwd"`
	Icon      string      `yaml:"icon"`
	Length    int         `yaml:"length"`
	Terminal  *bool       `yaml:"terminal"`
	Refresh   *bool       `yaml:"refresh"`
	Dropdown  *bool       `yaml:"dropdown"`
	Trim      *bool       `yaml:"trim"`
	Emojize   *bool       `yaml:"emojize"`
	Ansi      *bool       `yaml:"ansi"`
	Disabled  *bool       `yaml:"disabled"`
	Monospace bool        `yaml:"monospace"`
	Submenu   []menuEntry `yaml:"submenu"`
}

// loadMenuFile reads a YAML menu definition and converts it to menu
// items. The returned title is empty when the file does not set one.
func loadMenuFile(path string) ([]goxbar.Renderable, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read menu file: %w", err)
	}

	var def menuFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, "", fmt.Errorf("parse menu file %s: %w", path, err)
	}

	items := make([]goxbar.Renderable, 0, len(def.Items))
	for _, entry := range def.Items {
		items = append(items, entry.item())
	}
	return items, def.Title, nil
}

// item converts one YAML entry (and its submenu, recursively) into a
// menu item.
func (e menuEntry) item() goxbar.Renderable {
	if e.Divider {
		return goxbar.Divider()
	}

	base := goxbar.MenuItem{
		Title:     e.Title,
		Key:       e.Key,
		Href:      e.Href,
		Color:     e.Color,
		Font:      e.Font,
		Size:      e.Size,
		Length:    e.Length,
		Terminal:  e.Terminal,
		Refresh:   e.Refresh,
		Dropdown:  e.Dropdown,
		Trim:      e.Trim,
		Emojize:   e.Emojize,
		Ansi:      e.Ansi,
		Disabled:  e.Disabled,
		Monospace: e.Monospace,
	}

	// An icon names an entry in the dashboard-icons collection. A
	// fetch failure only loses the picture, never the row.
	if e.Icon != "" {
		img, err := icons.FromService(e.Icon).Base64(0)
		if err != nil {
			logging.Warn("menu icon unavailable",
				zap.String("service", e.Icon), zap.Error(err))
		} else {
			base.Image = img
		}
	}

	var item *goxbar.MenuItem
	if e.Shell != "" {
		shell := goxbar.NewShellItem(e.Title, e.Shell)
		if e.Cwd != "" {
			shell.WithCwd(e.Cwd)
		}
		base.Title = shell.Title
		base.Shell = shell.Shell
		base.Params = shell.Params
		shell.MenuItem = base
		for _, sub := range e.Submenu {
			shell.WithSubmenu(sub.item())
		}
		return shell
	}

	item = &base
	for _, sub := range e.Submenu {
		item.WithSubmenu(sub.item())
	}
	return item
}
