package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/runner"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <automaton> <input>...",
	Short: "Evaluate the given inputs once and print a verdict for each",
	Long: `Evaluates every input argument against the named automaton (see 'automata
check --list') and prints the same verdict literals as the interactive tools.
Results go through the configured result store.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		eng, err := automata.New(cmd.Context(), cfg, automata.WithLogger(logger))
		if err != nil {
			return err
		}
		defer eng.Close()

		out := cmd.OutOrStdout()
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, entry := range eng.Catalog() {
				fmt.Fprintf(out, "%-12s %-5s %s\n", entry.Name, entry.Kind, entry.Description)
			}
			return nil
		}

		jsonMode, _ := cmd.Flags().GetBool("json")
		trace, _ := cmd.Flags().GetBool("trace")

		var handler runner.ResultHandler
		if jsonMode {
			handler = runner.NewJSONHandler(out)
		} else {
			handler = runner.NewTextHandler(out, runner.WithStyler(tui.VerdictStyler(out)))
		}

		if path, _ := cmd.Flags().GetString("record"); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open record file: %w", err)
			}
			defer f.Close()
			handler = runner.MultiHandler(handler, runner.NewJSONHandler(f))
		}

		if trace {
			handler = runner.Chain(handler, runner.TraceMiddleware(logger))
		}

		name := args[0]
		for _, input := range args[1:] {
			res, err := eng.Evaluate(cmd.Context(), name, input)
			if err != nil {
				return err
			}
			if err := handler.Output(cmd.Context(), res); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("trace", false, "Log the active states after every symbol")
	checkCmd.Flags().Bool("json", false, "Print one JSON object per input")
	checkCmd.Flags().Bool("list", false, "List the registered automata and exit")
	checkCmd.Flags().String("record", "", "Also append every result as a JSON line to this file")
}
