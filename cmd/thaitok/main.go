package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/thaitok/internal/app"
	"github.com/chriscorrea/thaitok/internal/config"
	"github.com/chriscorrea/thaitok/internal/counter"
	"github.com/chriscorrea/thaitok/tokenizer"

	"github.com/spf13/cobra"
)

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// buildConfig constructs an app.Config from command flags and arguments.
// A single argument containing Thai characters is taken as literal input
// rather than a file path, so quick one-liners need no quoting games.
func buildConfig(cmd *cobra.Command, args []string, mode app.Mode) (app.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	setupLogger(debug)

	configFile, _ := cmd.Flags().GetString("config")
	fileCfg, err := config.Load(config.LoadOptions{Cmd: cmd, ConfigFile: configFile})
	if err != nil {
		return app.Config{}, fmt.Errorf("configuration error: %w", err)
	}

	selector, _ := cmd.Flags().GetString("selector")
	htmlFlag, _ := cmd.Flags().GetBool("html")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	noWhitespace, _ := cmd.Flags().GetBool("no-whitespace")

	cfg := app.Config{
		Selector:     selector,
		HTML:         htmlFlag || selector != "",
		Normalize:    fileCfg.Normalize,
		Engine:       fileCfg.Engine,
		DictPath:     fileCfg.DictPath,
		NoWhitespace: noWhitespace,
		Separator:    fileCfg.Separator,
		JSON:         jsonFlag,
		Quiet:        quiet,
		Debug:        debug,
	}

	// the engine key in the config file names a word engine; sent and
	// subword take their engine from the flag alone
	if mode == app.Sentences || mode == app.Subwords {
		cfg.Engine, _ = cmd.Flags().GetString("engine")
	}

	if len(args) == 1 && containsThai(args[0]) {
		cfg.Text = args[0]
	} else {
		cfg.Sources = args
	}

	return cfg, nil
}

func containsThai(s string) bool {
	for _, r := range s {
		if r >= 0x0E00 && r <= 0x0E7F {
			return true
		}
	}
	return false
}

// runMode builds a RunE that executes the pipeline at one granularity.
func runMode(mode app.Mode) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args, mode)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		slog.Debug("running", "mode", mode.String(), "engine", cfg.Engine)

		result, err := app.Run(ctx, mode, cfg)
		if err != nil {
			return err
		}

		fmt.Println(result)
		return nil
	}
}

var rootCmd = &cobra.Command{
	Use:   "thaitok",
	Short: "Thai text segmentation from the command line",
	Long: `Thaitok segments Thai text into sentences, words, syllables, or
character clusters. Sources may be URLs, local files, or standard input.

Examples:
  thaitok word "ไปกินข้าว"
  thaitok word --engine longest article.txt
  thaitok subword --engine etcc - < input.txt
  thaitok count --method words --html https://example.com/th.html`,
	SilenceUsage: true,
}

var wordCmd = &cobra.Command{
	Use:   "word [sources...]",
	Short: "Segment text into words",
	Long: `Segment Thai text into words using a dictionary-based engine.

Engines: newmm (default), longest, multi_cut, ulmfit, deepcut, icu.
An unrecognized engine name falls back to newmm with a warning.`,
	RunE: runMode(app.Words),
}

var sentCmd = &cobra.Command{
	Use:   "sent [sources...]",
	Short: "Split text into sentence-like segments",
	Long: `Split text into sentence-like segments on whitespace.

Engines: whitespace+newline (default) splits on any whitespace run and
drops empty segments; whitespace splits on runs of spaces only.`,
	RunE: runMode(app.Sentences),
}

var subwordCmd = &cobra.Command{
	Use:   "subword [sources...]",
	Short: "Split text into Thai Character Clusters",
	Long: `Split text into inseparable Thai Character Clusters.

Engines: tcc (default) applies the base clustering rules; etcc merges
trailing single consonants into the preceding cluster.`,
	RunE: runMode(app.Subwords),
}

var syllableCmd = &cobra.Command{
	Use:   "syllable [sources...]",
	Short: "Segment text into syllables",
	Long: `Segment Thai text into syllables by first segmenting into words,
then re-segmenting each word against a syllable dictionary.`,
	RunE: runMode(app.Syllables),
}

var countCmd = &cobra.Command{
	Use:   "count [sources...]",
	Short: "Count tokens, words, or characters",
	Long: `Count text units. The words method runs dictionary segmentation,
tokens uses the cl100k_base BPE encoding, and characters counts runes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args, app.Words)
		if err != nil {
			return err
		}

		methodName, _ := cmd.Flags().GetString("method")
		method, err := parseCountingMethod(methodName)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Count(ctx, method, cfg)
		if err != nil {
			return err
		}

		fmt.Println(result)
		return nil
	},
}

func parseCountingMethod(name string) (counter.CountingMethod, error) {
	switch name {
	case "tokens":
		return counter.Tokens, nil
	case "words":
		return counter.Words, nil
	case "characters", "chars":
		return counter.Characters, nil
	default:
		return 0, fmt.Errorf("unknown counting method %q (want tokens, words, or characters)", name)
	}
}

func init() {
	// flags shared by every subcommand
	pf := rootCmd.PersistentFlags()
	pf.String("sep", "|", "Separator between output tokens")
	pf.Bool("json", false, "Output as a JSON array")
	pf.Bool("html", false, "Treat input as HTML and extract plain text first")
	pf.StringP("selector", "s", "", "CSS selector for HTML extraction (implies --html)")
	pf.Bool("nfc", false, "Apply Unicode NFC normalization before tokenizing")
	pf.BoolP("quiet", "q", false, "Suppress warnings and progress output")
	pf.String("config", "", "Path to config file")
	pf.BoolP("debug", "D", false, "Enable debug logging")
	_ = pf.MarkHidden("debug")

	wordCmd.Flags().StringP("engine", "e", "newmm", "Word segmentation engine")
	wordCmd.Flags().StringP("dict", "d", "", "Path to a custom dictionary file (one word per line)")
	wordCmd.Flags().Bool("no-whitespace", false, "Drop whitespace tokens from the output")

	sentCmd.Flags().String("engine", tokenizer.EngineWhitespaceNewline, "Sentence splitting engine")
	subwordCmd.Flags().String("engine", tokenizer.EngineTCC, "Subword engine (tcc or etcc)")
	countCmd.Flags().StringP("method", "m", "words", "Counting method: tokens, words, or characters")

	rootCmd.AddCommand(wordCmd, sentCmd, subwordCmd, syllableCmd, countCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
