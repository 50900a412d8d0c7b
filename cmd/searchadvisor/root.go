package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/searchadvisor/catalogue"
	"github.com/katalvlaran/searchadvisor/internal/config"
	"github.com/katalvlaran/searchadvisor/internal/logger"
	"github.com/katalvlaran/searchadvisor/internal/prompt"
	"github.com/katalvlaran/searchadvisor/internal/render"
)

// app carries state resolved in PersistentPreRunE to the subcommands.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *logger.Logger
	// logReady is set once log is built from the resolved configuration.
	logReady bool
}

// answerFlags maps the requirement flags to their questions.
var answerFlags = []struct {
	name  string
	id    prompt.QuestionID
	usage string
}{
	{"heuristic", prompt.Heuristic, "nodes have an associated heuristic function (skips the question)"},
	{"infinite-paths", prompt.InfinitePaths, "the search space contains infinite length paths (skips the question)"},
	{"length-optimal", prompt.LengthOptimal, "a shortest-length solution is required (skips the question)"},
	{"cost-optimal", prompt.CostOptimal, "a lowest-cost solution is required (skips the question)"},
}

func newApp() *app {
	return &app{v: config.New(), log: logger.Nop()}
}

func newRootCommand() *cobra.Command {
	return newApp().command()
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "searchadvisor",
		Short:         "searchadvisor recommends uninformed graph-search algorithms for a problem",
		SilenceErrors: true,
		Example: `
  # answer the four questions interactively
  searchadvisor

  # no questions: infinite paths present, shortest solution required
  searchadvisor --heuristic=false --infinite-paths --length-optimal --cost-optimal=false

  # machine-readable output with elimination reasons
  searchadvisor --format json --explain < answers.txt
`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return a.advise(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.log.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP(config.KeyConfig, "c", "", "path to YAML config file")
	pf.StringP(config.KeyFormat, "o", config.Default().Format, "output format (text, json, yaml, pretty)")
	pf.String(config.KeyLogLevel, config.Default().LogLevel, "log level (debug, info, warn, error)")
	pf.String(config.KeyLogMode, config.Default().LogMode, "log encoding (development, production)")

	flags := cmd.Flags()
	flags.Bool(config.KeyStrict, false, "only accept y/yes/n/no answers and re-ask otherwise")
	flags.Bool(config.KeyInteractive, false, "use terminal forms when stdin and stdout are terminals")
	flags.Bool(config.KeyExplain, false, "list eliminated algorithms with the reasons")
	flags.Bool(config.KeyAccessible, false, "run terminal forms in plain screen-reader mode (env ACCESSIBLE)")
	for _, f := range answerFlags {
		flags.Bool(f.name, false, f.usage)
	}

	cmd.AddCommand(newListCommand(a), newVersionCommand())

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With("app", "searchadvisor", "command", cmd.Name())
	a.logReady = true
	a.log.Debug("configuration resolved",
		"format", cfg.Format,
		"strict", cfg.Strict,
		"interactive", cfg.Interactive,
		"explain", cfg.Explain,
		"accessible", cfg.Accessible,
	)

	return nil
}

// fail reports a command error. Once the logger is configured the error goes
// through it; before that (bad flags, unreadable config) it is written to w.
// Cancellation is silent.
func (a *app) fail(w io.Writer, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if !a.logReady {
		fmt.Fprintf(w, "%s\n", err)
		return
	}
	a.log.Error("command failed", "error", err)
	a.log.Sync()
}

// advise runs the questionnaire, filters the canonical catalogue and renders
// the report.
func (a *app) advise(cmd *cobra.Command) error {
	renderer, err := render.New(a.cfg.Format)
	if err != nil {
		return err
	}

	preset := prompt.Preset{}
	for _, f := range answerFlags {
		if fl := cmd.Flags().Lookup(f.name); fl != nil && fl.Changed {
			v, _ := cmd.Flags().GetBool(f.name)
			preset[f.id] = v
		}
	}

	req, err := prompt.Collect(cmd.Context(), a.prompter(cmd), preset)
	if err != nil {
		return fmt.Errorf("reading answers: %w", err)
	}

	rep := render.NewReport(catalogue.Default(), req, a.cfg.Explain)
	a.log.Info("catalogue filtered",
		"heuristic_available", req.HeuristicAvailable,
		"infinite_paths", req.InfinitePaths,
		"length_optimal", req.LengthOptimal,
		"cost_optimal", req.CostOptimal,
		"candidates", len(rep.Result.Candidates),
	)
	if rep.Result.Empty() {
		a.log.Debug("no candidate satisfies the requirements")
	}

	return renderer.Render(cmd.OutOrStdout(), rep)
}

// prompter picks a terminal form or a line reader. Prompts go to stderr for
// machine-readable formats so stdout stays parseable.
func (a *app) prompter(cmd *cobra.Command) prompt.Prompter {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	if a.cfg.Format == render.FormatJSON || a.cfg.Format == render.FormatYAML {
		out = cmd.ErrOrStderr()
	}
	if a.cfg.Interactive && isTerminal(in) && isTerminal(out) {
		a.log.Debug("using terminal form prompter")
		return prompt.NewFormPrompter(in, out, a.cfg.Accessible)
	}

	return prompt.NewLinePrompter(in, out, a.cfg.Strict)
}

func isTerminal(rw any) bool {
	f, ok := rw.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
