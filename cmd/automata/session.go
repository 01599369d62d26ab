package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/runner"
	"github.com/spf13/cobra"
)

const (
	dfaPrompt  = "Enter a string with '0' and '1': (Press Enter to stop)"
	enfaPrompt = "Enter a string over 'a' and 'b': (Enter 'q' to stop)"
)

var dfaCmd = &cobra.Command{
	Use:   "dfa",
	Short: "Check strings of 0s and 1s against the zeros/ones counter",
	Long: `Reads one string per line and prints Accepted when the number of '0's is a
multiple of the zero modulus (default 5) and the number of '1's is a multiple
of the one modulus (default 3). Any other symbol prints
"Unknown symbol found. Rejected". An empty line or end of input stops.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, registry.ModCounter, "", dfaPrompt)
	},
}

var enfaCmd = &cobra.Command{
	Use:   "enfa",
	Short: "Check strings over {a,b} against the epsilon automaton",
	Long: `Reads one string per line and prints Accepted when the epsilon automaton
over {a,b} accepts it (a*, or b* followed by a single 'a'). Everything else,
including strings with other symbols, prints Rejected. A line containing only
'q' or end of input stops.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, registry.EpsilonAB, "q", enfaPrompt)
	},
}

func init() {
	for _, c := range []*cobra.Command{dfaCmd, enfaCmd} {
		c.Flags().Bool("json", false, "Print one JSON object per line instead of the verdict literal")
		rootCmd.AddCommand(c)
	}
}

func runSession(cmd *cobra.Command, name, sentinel, prompt string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	reg, err := registry.NewDefault(cfg.DFA.ZeroModulus, cfg.DFA.OneModulus)
	if err != nil {
		return err
	}
	entry, err := reg.Lookup(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	jsonMode, _ := cmd.Flags().GetBool("json")

	var handler runner.ResultHandler
	if jsonMode {
		handler = runner.NewJSONHandler(out)
	} else {
		handler = runner.NewTextHandler(out, runner.WithStyler(tui.VerdictStyler(out)))
	}

	opts := []runner.SessionOption{
		runner.WithSentinel(sentinel),
		runner.WithHandler(handler),
		runner.WithName(name),
		runner.WithLogger(logger),
	}
	if w := tui.Prompt(out); w != nil && !jsonMode {
		tui.PrintBanner(w)
		opts = append(opts, runner.WithPrompt(w, prompt))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := runner.NewSession(entry.Evaluator, opts...).Run(ctx, cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		logger.Debug("session interrupted", "automaton", name)
		err = nil
	}
	if err != nil {
		return err
	}
	logger.Debug("session finished",
		"automaton", name,
		"lines", stats.Lines,
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
		"unknown_symbol", stats.UnknownSymbol,
	)
	return nil
}
