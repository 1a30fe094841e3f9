package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stepmark/internal/logging"
	"github.com/yaklabco/stepmark/internal/ui/pretty"
	"github.com/yaklabco/stepmark/pkg/parser"
	"github.com/yaklabco/stepmark/pkg/render"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Parse stepmark input and render it as HTML",
		Long: `Parse the given file (or stdin) using the configured grammar entry
point and write the rendered HTML to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}
	return cmd
}

func runRender(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	src, path, err := readInput(args)
	if err != nil {
		return err
	}

	logger.Debug("parsing input",
		logging.FieldPath, path,
		logging.FieldEntry, string(cfg.Entry),
		logging.FieldBytes, len(src),
	)

	root, err := parseInput(cfg, src)
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stderr))
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatSyntaxError(serr, path, src, os.Stderr))
			return errSyntaxReported
		}
		return err
	}

	html, err := render.HTML(root)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
