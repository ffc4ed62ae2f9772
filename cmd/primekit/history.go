// History command lists recorded computation runs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [kind]",
	Short: "List recent computation runs",
	Long: `History lists runs recorded by the sieve, nth and factor commands,
newest first. An optional kind argument restricts the listing.

Valid kinds: sieve, nth, factor

Example:
  primekit history
  primekit history factor --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list (0 = no limit)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	kind := ""
	if len(args) == 1 {
		kind = args[0]
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("history requires the store; drop --no-store: %w", errStoreDisabled)
	}
	defer s.Detach()

	runs, err := s.ListRuns(kind, historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if flagJSON {
		if runs == nil {
			runs = []store.Run{}
		}
		return printJSON(runs)
	}

	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %-6s  %-12s  %s  (%s)\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Kind, r.Input, r.Result, r.Elapsed)
	}
	return nil
}
