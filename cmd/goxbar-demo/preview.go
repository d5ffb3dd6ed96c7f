package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Styles for terminal preview output
var (
	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7D56F4"))

	previewDividerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))

	previewParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262")).
				Italic(true)
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the menu styled for a terminal",
	Long: `Render the exact lines the host would receive, with terminal styling
that separates titles from their pipe-delimited attributes. Useful for
iterating on a menu without installing the plugin.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	menu, err := assembleMenu(cmd.Context())
	if err != nil {
		return err
	}
	lines, err := menu.Render()
	if err != nil {
		return err
	}

	for i, line := range lines {
		fmt.Println(styleLine(i, line))
	}
	return nil
}

// styleLine colors one host-format line. The first line is the status
// bar title; "---" rows are dividers; everything else splits into a
// title and its attribute suffix.
func styleLine(index int, line string) string {
	if index == 0 {
		return previewTitleStyle.Render(line)
	}
	if strings.TrimLeft(line, "-") == "" && line != "" {
		return previewDividerStyle.Render(line)
	}

	title, params, found := strings.Cut(line, " | ")
	if !found {
		return title
	}
	return title + previewParamStyle.Render(" | "+params)
}
