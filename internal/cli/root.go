// Package cli provides the Cobra command structure for stepmark.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/stepmark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions holds the global flags shared by all subcommands.
type rootOptions struct {
	debug      bool
	configPath string
	color      string
	entry      string
}

// NewRootCommand creates the root stepmark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "stepmark",
		Short: "Parse and render the stepmark specification-steps dialect",
		Long: `stepmark converts a lightweight markup dialect for specification
algorithm steps into a positioned syntax tree and renders it as HTML.

The dialect supports ordered ('1. ') and unordered ('* ') list steps with
optional [id="..."] attributes, nested lists, inline formatting (*emphasis*,
_strong_, ` + "`code`" + `, ~strikethrough~, |variables|), raw HTML passthrough,
and verbatim capture of opaque elements such as <pre> and <code>.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
			// Subcommands retrieve the logger from the command context.
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&opts.entry, "entry", "",
		"grammar entry point: algorithm, document, fragment")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newTokensCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
