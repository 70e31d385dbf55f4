package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"arthsaathi/internal/core"
	"arthsaathi/internal/services"
)

func newTimelineCommand(st *rootState) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show your simulations and assessments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			entries, err := st.app.Timeline.ListForUser(ctx, st.app.Accounts.CurrentEmail(ctx))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(w, gray("No entries yet. Run a simulation or the survey."))
				return nil
			}
			for i := len(entries) - 1; i >= 0; i-- {
				e := entries[i]
				when := humanize.Time(time.UnixMilli(e.Timestamp))
				switch e.Type {
				case core.EntryAssessment:
					fmt.Fprintf(w, "%s  %s %s\n", gray(when), cyan("assessment"), bold(e.Archetype))
				default:
					fmt.Fprintf(w, "%s  %s %s: %s, health %.1f, %s\n", gray(when), cyan("simulation"),
						bold(e.PersonaName), core.FormatSignedRupees(e.TotalImpact), e.HealthScore, e.DominantBehavior)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}

func newPodcastsCommand(st *rootState) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "podcasts",
		Short: "List podcast episodes generated from your simulations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eps, err := st.app.Podcasts.Episodes(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, eps)
			}
			if len(eps) == 0 {
				fmt.Fprintln(w, gray("No episodes yet. Finish a simulation first."))
				return nil
			}
			for _, ep := range eps {
				printEpisode(w, ep)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print episodes as JSON")
	return cmd
}

func printEpisode(w io.Writer, ep services.Episode) {
	fmt.Fprintf(w, "%s  %s  %s\n", bold(ep.Title), cyan(ep.Category), gray(ep.Duration()))
	fmt.Fprintln(w, "  "+ep.Description)
	for _, in := range ep.Insights {
		fmt.Fprintln(w, "  - "+in)
	}
}
