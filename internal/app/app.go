// Package app runs the wordle-helper pipeline: parse the arguments, scan the
// dictionary through the filters, order the matches and print them.
package app

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/wordle-helper/internal/cliargs"
	"github.com/verte-zerg/wordle-helper/internal/config"
	"github.com/verte-zerg/wordle-helper/internal/logger"
	"github.com/verte-zerg/wordle-helper/internal/model"
	"github.com/verte-zerg/wordle-helper/internal/output"
	"github.com/verte-zerg/wordle-helper/internal/rank"
	"github.com/verte-zerg/wordle-helper/internal/wordlist"
)

// Options carries the collaborators of a run.
type Options struct {
	Stdout    io.Writer
	LookupEnv func(string) (string, bool)
	File      config.FileConfig
	Logger    *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	return o
}

// Run executes one invocation with args (without the program name).
func Run(args []string, opts Options) error {
	opts = opts.withDefaults()
	lg := opts.Logger

	cfg, err := cliargs.Parse(args)
	if err != nil {
		return err
	}
	lg.Debug("arguments parsed",
		"len", cfg.WordLength,
		"with", cfg.With.String(),
		"without", cfg.Without.String(),
		"pattern", cfg.Pattern,
		"sort", cfg.Sort)

	var scorer rank.Scorer
	if cfg.Sort == model.SortBest {
		scorer = resolveScorer(opts.File.RankStrategy(), lg)
	}

	path := wordlist.ResolvePath(opts.LookupEnv, opts.File.DictionaryPath())
	lg.Debug("dictionary resolved", "path", path)

	res, err := wordlist.Load(path, wordlist.NewMatcher(cfg))
	if err != nil {
		return err
	}
	lg.Debug("scan complete",
		"tokens", humanize.Comma(int64(res.Tokens)),
		"matches", humanize.Comma(int64(len(res.Words))))

	rank.Apply(res.Words, cfg.Sort, scorer)
	return output.Emit(opts.Stdout, res.Words, cfg.Sort)
}

func resolveScorer(name string, lg *log.Logger) rank.Scorer {
	scorer, err := rank.ScorerFor(name)
	if err != nil {
		lg.Warn("using default ranking strategy", "err", err, "strategy", rank.DefaultStrategy)
		return rank.LetterScorer{}
	}
	return scorer
}
