// Package main provides the wordle-dict CLI: dictionary generation, letter
// statistics and config management for wordle-helper.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordle-helper/internal/config"
	"github.com/verte-zerg/wordle-helper/internal/logger"
	"github.com/verte-zerg/wordle-helper/internal/model"
	"github.com/verte-zerg/wordle-helper/internal/stats"
	"github.com/verte-zerg/wordle-helper/internal/wordfreq"
	"github.com/verte-zerg/wordle-helper/internal/wordlist"
)

const (
	defaultFetchSize = 20000
	defaultEditor    = "vi"
)

// state is shared by the subcommands once the root has loaded the config.
type state struct {
	file config.FileConfig
	log  *log.Logger
}

type fetchOptions struct {
	size  int
	out   string
	list  string
	force bool
}

type lettersOptions struct {
	length int
	top    int
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &state{log: logger.Discard()}
	rootCmd := &cobra.Command{
		Use:           "wordle-dict",
		Short:         "Manage wordle-helper dictionaries",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			st.load(cmd)
		},
	}

	rootCmd.AddCommand(newFetchCmd(st))
	rootCmd.AddCommand(newLettersCmd(st))
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func (st *state) load(cmd *cobra.Command) {
	path := config.DefaultConfigPath()
	fileCfg, err := config.LoadConfig(path)
	st.file = fileCfg
	st.log = logger.New(cmd.ErrOrStderr(), "wordle-dict", logger.ResolveLevelOr(fileCfg.LogLevel(), log.InfoLevel))
	if err != nil {
		st.log.Warn("ignoring config problems", "path", path, "err", err)
	}
}

func newFetchCmd(st *state) *cobra.Command {
	opts := &fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Generate a dictionary from the wordfreq dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd, st, opts)
		},
	}
	cmd.Flags().IntVar(&opts.size, "size", defaultFetchSize, "number of words")
	cmd.Flags().StringVar(&opts.out, "out", "", "output path (default: $XDG_DATA_HOME/wordle-helper/words.txt)")
	cmd.Flags().StringVar(&opts.list, "list", wordfreq.ListLarge, "wordfreq list size: large or small")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing dictionary")
	return cmd
}

func runFetch(cmd *cobra.Command, st *state, opts *fetchOptions) error {
	if opts.size <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}
	outPath := opts.out
	if outPath == "" {
		outPath = config.DefaultDictionaryPath()
	}
	if !opts.force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("dictionary already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat dictionary: %w", err)
		}
	}

	st.log.Info("fetching wordfreq metadata")
	wheel, err := wordfreq.DownloadLatestWheel(cmd.Context(), config.DefaultWordfreqCacheDir())
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	if wheel.Cached {
		st.log.Info("using cached wheel", "file", wheel.Filename)
	} else {
		st.log.Info("downloaded wheel", "file", wheel.Filename, "version", wheel.Version)
	}

	types, err := wordfreq.ListTypes(wheel.Path)
	if err != nil {
		return fmt.Errorf("failed to list word lists: %w", err)
	}
	listType, ok := wordfreq.SelectListType(types, opts.list)
	if !ok {
		return fmt.Errorf("no %s word list available (available: %s)", opts.list, strings.Join(types, ", "))
	}
	if listType != opts.list {
		st.log.Warn("requested list missing, using fallback", "requested", opts.list, "using", listType)
	}

	words, err := wordfreq.ExtractWords(wheel.Path, listType, opts.size)
	if err != nil {
		return fmt.Errorf("failed to extract word list: %w", err)
	}
	if err := writeWordList(outPath, words); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	st.log.Info("wrote dictionary", "path", outPath, "words", humanize.Comma(int64(len(words))))
	if len(words) < opts.size {
		st.log.Warn("fewer words than requested", "requested", humanize.Comma(int64(opts.size)))
	}

	if err := wordfreq.WriteAttribution(wheel.Path, filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	st.log.Info("wrote ATTRIBUTION.txt, LICENSE.txt and DATA_LICENSE.txt", "dir", filepath.Dir(outPath))
	if wordlist.ResolvePath(os.LookupEnv, st.file.DictionaryPath()) != outPath {
		st.log.Info("point wordle-helper at the new dictionary with WORDLE_DICTIONARY or [dictionary] path", "path", outPath)
	}
	return nil
}

func newLettersCmd(st *state) *cobra.Command {
	opts := &lettersOptions{}
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Show how many dictionary words contain each letter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLetters(cmd, st, opts)
		},
	}
	cmd.Flags().IntVar(&opts.length, "len", model.DefaultWordLength, "word length")
	cmd.Flags().IntVar(&opts.top, "top", 0, "show only the N most common letters (0 shows all)")
	return cmd
}

func runLetters(cmd *cobra.Command, st *state, opts *lettersOptions) error {
	if opts.length < model.MinWordLength || opts.length > model.MaxWordLength {
		return fmt.Errorf("--len must be between %d and %d", model.MinWordLength, model.MaxWordLength)
	}
	if opts.top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}

	path := wordlist.ResolvePath(os.LookupEnv, st.file.DictionaryPath())
	cfg := model.DefaultConfig()
	cfg.WordLength = opts.length
	res, err := wordlist.Load(path, wordlist.NewMatcher(cfg))
	if err != nil {
		return err
	}
	words := stats.Distinct(res.Words)
	st.log.Debug("dictionary scanned",
		"path", path,
		"tokens", humanize.Comma(int64(res.Tokens)),
		"words", humanize.Comma(int64(len(words))))
	if len(words) == 0 {
		return fmt.Errorf("no words of length %d in %s", opts.length, path)
	}

	items := stats.TopLetters(stats.CountLetters(words), opts.top)
	return stats.WriteLetterTable(cmd.OutOrStdout(), items, len(words))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = defaultEditor
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = cmd.InOrStdin()
	editorCmd.Stdout = cmd.OutOrStdout()
	editorCmd.Stderr = cmd.ErrOrStderr()
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the config template to path unless a file is
// already there.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dictionary dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "words-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp dictionary: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write dictionary: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush dictionary: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close dictionary: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	return nil
}
