// Goxbar-demo is an example status-bar plugin built on the goxbar
// library.
//
// Run without arguments it prints a small system-status menu in the
// xbar/SwiftBar line format, which makes the binary directly usable as
// a plugin: symlink it into the host's plugin directory and the host
// takes care of the rest.
//
// Usage:
//
//	goxbar-demo [command] [flags]
//
// A declarative menu can be layered on top with --menu pointing at a
// YAML file; see menufile.go for the schema. 'goxbar-demo preview'
// renders the same output styled for a terminal, which is handy while
// iterating on a menu without a status bar in sight.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/goxbar/internal/logging"
	"github.com/muurk/goxbar/internal/version"
)

var (
	menuPath string
	varsBase string
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goxbar-demo",
	Short: "Example xbar/SwiftBar plugin",
	Long: `An example status-bar plugin built on the goxbar library.

Without a command it prints the menu in the host line format, exactly
what xbar or SwiftBar expects from a plugin. Settings are read from a
<plugin>.vars.json file next to the binary, following the host
convention.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := assembleMenu(cmd.Context())
		if err != nil {
			return err
		}
		return menu.Print()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&menuPath, "menu", "", "YAML menu definition layered onto the built-in menu")
	rootCmd.PersistentFlags().StringVar(&varsBase, "vars", "", "Settings file base path (default: the binary path)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goxbar-demo %s\n", version.Full())
	},
}
