// Package goxbar builds the line-oriented menu format consumed by
// macOS status-bar plugin hosts such as xbar and SwiftBar.
//
// The host runs a plugin binary periodically and parses its standard
// output: every line is a menu entry, option flags follow a pipe
// character, submenu nesting is encoded by a run-length "--" indent
// prefix, and a "---" sentinel separates the always-visible status
// line from the dropdown.
//
// # Building a menu
//
//	menu := goxbar.NewMenu("⚡ 42%").WithItems(
//	    goxbar.Divider(),
//	    &goxbar.MenuItem{Title: "Dashboard", Href: "https://example.com"},
//	    goxbar.NewShellItem("Restart agent", "systemctl restart agent").
//	        WithCwd("~/agent"),
//	)
//	if err := menu.Print(); err != nil {
//	    log.Fatal(err)
//	}
//
// produces output like:
//
//	⚡ 42%
//	---
//	---
//	Dashboard | href=https://example.com
//	Restart agent | shell=systemctl | param1=restart | param2=agent
//
// # Attributes
//
// MenuItem exposes the nineteen attributes the host understands as
// plain struct fields. Three-state boolean attributes (terminal,
// refresh, dropdown, trim, alternate, emojize, ansi, disabled) are
// *bool: a nil pointer means "unset" and is omitted from the output,
// while an explicit false is serialized. Use Flag to set them inline:
//
//	&goxbar.MenuItem{Title: "B", Disabled: goxbar.Flag(true)}
//
// # Configuration and diagnostics
//
// Config carries user-tunable plugin settings loaded from the host's
// <script>.vars.json convention plus accumulated error and warning
// messages. Menu.Render appends the Config's diagnostic lines after
// the regular items, so any part of the tree can surface a problem in
// the dropdown instead of crashing the plugin. See LoadConfig.
//
// # Output discipline
//
// Standard output belongs to the host format; nothing in this package
// writes to stdout except Menu.Print. Structured logging (controlled
// by GOXBAR_LOG_LEVEL) goes to stderr.
package goxbar
