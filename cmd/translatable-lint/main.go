package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lifei6671/translatable"
	"github.com/lifei6671/translatable/cmd/translatable-lint/checker"
)

var errIssuesFound = errors.New("issues found")

type options struct {
	configFile string
	path       string
	seekMode   string
	overlap    string
	format     string
	fail       bool
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "translatable-lint",
		Short:         "Load a translation store and report missing languages and template errors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd.OutOrStdout(), opts)
			if err != nil && !errors.Is(err, errIssuesFound) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", translatable.DefaultConfigFile, "configuration file")
	flags.StringVarP(&opts.path, "path", "d", "", "store root, overrides the configuration")
	flags.StringVar(&opts.seekMode, "seek-mode", "", "Alphabetical or Unalphabetical, overrides the configuration")
	flags.StringVar(&opts.overlap, "overlap", "", "Overwrite or Ignore, overrides the configuration")
	flags.StringVarP(&opts.format, "format", "o", "text", "output format: text or yaml")
	flags.BoolVar(&opts.fail, "fail", false, "exit with code 1 if any issue found")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every loaded file")
	return cmd
}

func run(out io.Writer, opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	bundle, err := translatable.New(cfg, translatable.WithLogger(logger))
	if err != nil {
		return err
	}

	res := checker.Check(bundle.Tree())
	switch opts.format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case "text":
		printResult(out, res)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	if opts.fail && res.HasIssues() {
		return errIssuesFound
	}
	return nil
}

func buildConfig(opts *options) (translatable.Config, error) {
	cfg, err := translatable.LoadConfig(opts.configFile)
	if err != nil {
		return cfg, err
	}
	if opts.path != "" {
		cfg.Path = opts.path
	}
	if opts.seekMode != "" {
		if err := cfg.SeekMode.UnmarshalText([]byte(opts.seekMode)); err != nil {
			return cfg, err
		}
	}
	if opts.overlap != "" {
		if err := cfg.Overlap.UnmarshalText([]byte(opts.overlap)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.OutputPaths = []string{"stderr"}
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}

func printResult(out io.Writer, res *checker.Result) {
	fmt.Fprintln(out, "=== TRANSLATION CHECK RESULT ===")
	fmt.Fprintln(out, "Languages:", res.Languages)
	fmt.Fprintln(out, "Total translations:", res.Leaves)

	paths := res.Paths()
	if len(paths) == 0 {
		fmt.Fprintln(out, "\nNo issues found")
		return
	}

	for _, path := range paths {
		fmt.Fprintf(out, "\n--- [%s] ---\n", path)

		if langs := res.MissingLanguages[path]; len(langs) > 0 {
			fmt.Fprintln(out, "Missing languages:")
			for _, lang := range langs {
				fmt.Fprintln(out, "  -", lang)
			}
		}

		if errs := res.TemplateErrors[path]; len(errs) > 0 {
			fmt.Fprintln(out, "Template errors:")
			for _, lang := range res.Languages {
				if msg, ok := errs[lang]; ok {
					fmt.Fprintf(out, "  - %s: %s\n", lang, msg)
				}
			}
		}
	}
}
