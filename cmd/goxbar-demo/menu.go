package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/muurk/goxbar"
	"github.com/muurk/goxbar/strutil"
)

// assembleMenu builds the demo menu: configuration first, then the
// built-in system-status rows, then whatever a --menu file adds.
func assembleMenu(ctx context.Context) (*goxbar.Menu, error) {
	base := varsBase
	if base == "" {
		base = os.Args[0]
	}
	cfg, err := goxbar.LoadConfig(base)
	if err != nil {
		return nil, err
	}

	menu := buildStatusMenu(ctx, cfg)

	if menuPath != "" {
		items, title, err := loadMenuFile(menuPath)
		if err != nil {
			return nil, err
		}
		if title != "" {
			menu.Title = title
		}
		menu.WithItems(items...)
	}
	return menu, nil
}

// buildStatusMenu renders a small always-useful dropdown: uptime,
// disk usage, a refresh row and a project link with an Option-key
// alternate.
func buildStatusMenu(ctx context.Context, cfg *goxbar.Config) *goxbar.Menu {
	hostname, err := os.Hostname()
	if err != nil {
		cfg.Warn("cannot determine hostname")
		hostname = "goxbar"
	}

	uptime := goxbar.NewShellItem("uptime", "uptime").TryOutput(ctx)
	disk := goxbar.NewShellItem("disk", "df -h /").TryOutput(ctx)

	return goxbar.NewMenu("⚙ " + hostname).WithConfig(cfg).WithItems(
		goxbar.Divider(),
		(&goxbar.MenuItem{Title: "Uptime", OnlyIf: uptime}).
			WithSubmenu(goxbar.Mono(uptime)),
		(&goxbar.MenuItem{Title: "Disk", OnlyIf: disk}).
			WithSubmenu(goxbar.Mono(disk)),
		weatherRow(ctx),
		goxbar.Divider(),
		&goxbar.MenuItem{Title: "Refresh now", Refresh: goxbar.Flag(true)},
		(&goxbar.MenuItem{Title: "goxbar on GitHub", Href: "https://github.com/muurk/goxbar"}).
			WithAlternate(&goxbar.MenuItem{
				Title:  "Copy URL",
				Shell:  "sh",
				Params: []string{"-c", "'echo https://github.com/muurk/goxbar | pbcopy'"},
			}),
	)
}

// weatherRow turns the wttr.in JSON forecast into a single dropdown
// row. Any failure along the way just drops the row; the menu must
// render regardless of network weather.
func weatherRow(ctx context.Context) goxbar.Renderable {
	out := goxbar.NewShellItem("weather", "curl -sf --max-time 5 wttr.in/?format=j1").TryOutput(ctx)
	if out == "" {
		return nil
	}

	var doc any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		return nil
	}
	temps := strutil.GetIn(doc, "current_condition.*.temp_C")
	if len(temps) == 0 {
		return nil
	}
	descs := strutil.GetIn(doc, "current_condition.*.weatherDesc.*.value")

	title := strutil.Join(" ", "Weather:", temps[0], "°C")
	if len(descs) > 0 {
		title = strutil.Join(", ", title, descs[0])
	}
	return &goxbar.MenuItem{Title: title, Href: "https://wttr.in"}
}
