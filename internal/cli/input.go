package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/stepmark/pkg/ast"
	"github.com/yaklabco/stepmark/pkg/config"
	"github.com/yaklabco/stepmark/pkg/parser"
)

// stdinPath is the display path used when input comes from stdin.
const stdinPath = "<stdin>"

// loadConfig resolves the effective configuration from the config file
// and global flags.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg.Color = opts.color
	if opts.entry != "" {
		cfg.Entry = config.Entry(opts.entry)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfig, err)
		}
	}
	return cfg, nil
}

// readInput reads the source text from the named file, or from stdin
// when no argument is given.
func readInput(args []string) (src, path string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: read stdin: %w", errIO, err)
		}
		return string(data), stdinPath, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", errIO, err)
	}
	return string(data), args[0], nil
}

// tokenizerOptions translates the configuration into tokenizer options.
func tokenizerOptions(cfg *config.Config) []parser.Option {
	if len(cfg.OpaqueTags) == 0 {
		return nil
	}
	return []parser.Option{parser.WithOpaqueTags(cfg.OpaqueTags...)}
}

// parseInput parses the source text using the configured entry point.
func parseInput(cfg *config.Config, src string) (*ast.Node, error) {
	opts := tokenizerOptions(cfg)
	switch cfg.Entry {
	case config.EntryDocument:
		return parser.ParseDocument(src, opts...)
	case config.EntryFragment:
		return parser.ParseFragment(src, opts...)
	default:
		return parser.ParseAlgorithm(src, opts...)
	}
}
