package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pranav244872/skillswap/skillz"
	"github.com/spf13/cobra"
)

var (
	flagScoreATeaches []string
	flagScoreAWants   []string
	flagScoreBTeaches []string
	flagScoreBWants   []string
	flagScoreJSON     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score two skill profiles against each other",
	Example: `  skillswap score --a-teaches guitar,go --a-wants spanish \
                 --b-teaches spanish --b-wants guitar`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := skillz.Profile{Teaches: flagScoreATeaches, Wants: flagScoreAWants}
		b := skillz.Profile{Teaches: flagScoreBTeaches, Wants: flagScoreBWants}
		return writeScore(cmd.OutOrStdout(), a, b, flagScoreJSON)
	},
}

func init() {
	scoreCmd.Flags().StringSliceVar(&flagScoreATeaches, "a-teaches", nil, "skills A can teach (comma separated)")
	scoreCmd.Flags().StringSliceVar(&flagScoreAWants, "a-wants", nil, "skills A wants to learn")
	scoreCmd.Flags().StringSliceVar(&flagScoreBTeaches, "b-teaches", nil, "skills B can teach")
	scoreCmd.Flags().StringSliceVar(&flagScoreBWants, "b-wants", nil, "skills B wants to learn")
	scoreCmd.Flags().BoolVar(&flagScoreJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func writeScore(w io.Writer, a, b skillz.Profile, asJSON bool) error {
	result := skillz.Evaluate(a, b)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "Score:  %d\n", result.Score)
	if result.Mutual {
		printOK(w, "mutual match")
	} else {
		printWarn(w, "not mutual")
	}
	printInfo(w, "A teaches B: "+joinOrDash(result.ATeachesB))
	printInfo(w, "B teaches A: "+joinOrDash(result.BTeachesA))
	return nil
}

func joinOrDash(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
