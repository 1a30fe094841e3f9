package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stepmark/internal/logging"
	"github.com/yaklabco/stepmark/internal/ui/pretty"
	"github.com/yaklabco/stepmark/pkg/parser"
)

func newTokensCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream for stepmark input",
		Long: `Tokenize the given file (or stdin) and print one line per token with
its kind, line:column span, and contents. Useful for debugging grammar
issues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, opts, args)
		},
	}
	return cmd
}

func runTokens(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	src, path, err := readInput(args)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))
	tokenizer := parser.NewTokenizer(src, tokenizerOptions(cfg)...)

	count := 0
	for {
		tok := tokenizer.Next()
		fmt.Fprintln(cmd.OutOrStdout(), styles.FormatToken(tok))
		if tok.IsEOF() {
			break
		}
		count++
	}

	logger.Debug("tokenized input",
		logging.FieldPath, path,
		logging.FieldTokens, count,
	)
	return nil
}
