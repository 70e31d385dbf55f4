package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arthsaathi/internal/core"
	"arthsaathi/internal/services"
)

func newReplayCommand(st *rootState) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <scripts.yaml>",
		Short: "Replay scripted sessions concurrently",
		Long: "Replay scripted sessions from a YAML file of the form\n\n" +
			"  scripts:\n    - persona: ramesh_rider\n      choices: [a, b, c]\n\n" +
			"Sessions run concurrently (REPLAY_CONCURRENCY) and are reported in file order.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open replay file: %w", err)
			}
			defer f.Close()
			scripts, err := services.DecodeReplay(f)
			if err != nil {
				return err
			}

			results, err := st.app.Replay.Run(cmd.Context(), scripts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, results)
			}
			for i, r := range results {
				fmt.Fprintf(w, "%s %s  %s, health %.1f, %s (%d/%d events)\n",
					cyan(fmt.Sprintf("#%d", i+1)), bold(r.Script.Persona),
					core.FormatSignedRupees(r.Report.TotalImpact), r.Report.HealthScore,
					r.Report.DominantBehavior, r.Report.EventsCompleted, r.Report.PlannedEvents)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print full results as JSON")
	return cmd
}
