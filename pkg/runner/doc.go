/*
Package runner implements the line-oriented loop that feeds input strings to an
automaton and reports one verdict per line.

A Session reads lines until a sentinel line or end of stream. Each line is
evaluated as a whole string and handed to a ResultHandler: TextHandler prints
the plain verdict literal ("Accepted", "Rejected" or
"Unknown symbol found. Rejected"), JSONHandler emits one JSON object per line.

# Usage

	s := runner.NewSession(dfa.Reference(),
		runner.WithSentinel(""),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)
	stats, err := s.Run(ctx, os.Stdin)
*/
package runner
