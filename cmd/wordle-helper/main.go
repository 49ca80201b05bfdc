// Package main provides the CLI entrypoint for wordle-helper.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordle-helper/internal/app"
	"github.com/verte-zerg/wordle-helper/internal/cliargs"
	"github.com/verte-zerg/wordle-helper/internal/config"
	"github.com/verte-zerg/wordle-helper/internal/logger"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	configPath := config.DefaultConfigPath()
	fileCfg, cfgErr := config.LoadConfig(configPath)
	lg := logger.New(stderr, app.Name, logger.ResolveLevel(fileCfg.LogLevel()))
	if cfgErr != nil {
		// stderr carries only the diagnostic line unless debug is on.
		lg.Debug("ignoring config problems", "path", configPath, "err", cfgErr)
	}

	rootCmd := newRootCmd(app.Options{
		LookupEnv: os.LookupEnv,
		File:      fileCfg,
		Logger:    lg,
	})
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Run the root directly: Execute would route positionals such as
	// "__complete" to cobra's hidden completion command.
	err := rootCmd.RunE(rootCmd, args)
	if err != nil {
		logFailure(lg, err)
	}
	if msg := app.Diagnostic(err); msg != "" {
		if _, werr := fmt.Fprintln(stderr, msg); werr != nil {
			// Best-effort diagnostic.
			_ = werr
		}
	}
	return app.ExitCode(err)
}

func newRootCmd(opts app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "wordle-helper [-alpha|-best] [-len N] [-with LETTERS] [-without LETTERS] [pattern]",
		Short: "Filter a dictionary for Wordle candidates",
		Long: "Prints the dictionary words of the requested length that match a pattern\n" +
			"(letters and _ wildcards) and contain or avoid the given letters.\n" +
			"The dictionary is read from $WORDLE_DICTIONARY, the config file, or /usr/share/dict/words.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stdout = cmd.OutOrStdout()
			return app.Run(args, opts)
		},
	}
}

func logFailure(lg *log.Logger, err error) {
	var usageErr *cliargs.UsageError
	if errors.As(err, &usageErr) && len(usageErr.Suggestions) > 0 {
		lg.Debug("unknown flag", "arg", usageErr.Arg, "did_you_mean", strings.Join(usageErr.Suggestions, " "))
		return
	}
	lg.Debug("run failed", "err", err, "exit", app.ExitCode(err))
}
