package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"arthsaathi/internal/core"
	"arthsaathi/internal/simulation"
)

func newPersonasCommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the personas available for simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := st.app.Simulations.Personas(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range ps {
				fmt.Fprintf(w, "%s  %s, %s (%s)\n", cyan(p.ID), bold(p.DisplayName()), p.Profile.Occupation, p.Profile.City)
				fmt.Fprintf(w, "    income %s/month, savings %s, debt %s, %d events\n",
					core.FormatRupees(p.Baseline.AvgMonthlyIncome),
					core.FormatRupees(p.Baseline.SavingsBalance),
					core.FormatRupees(p.Baseline.DebtTotal),
					p.SessionLength())
			}
			return nil
		},
	}
}

func newSimulateCommand(st *rootState) *cobra.Command {
	var (
		choices string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "simulate <persona-id>",
		Short: "Play through a persona's events and see the financial report",
		Long: "Play through a persona's events. Without --choices the command prompts for each\n" +
			"decision; enter a choice id, or q to stop early and see the report so far.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := st.app.Simulations.Start(ctx, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !asJSON {
				heading(w, fmt.Sprintf("Simulating %s (%d events)", sess.Persona.DisplayName(), sess.Length()))
			}

			var next func() (string, bool)
			if choices != "" {
				queue := splitList(choices)
				next = func() (string, bool) {
					if len(queue) == 0 {
						return "", false
					}
					c := queue[0]
					queue = queue[1:]
					return c, true
				}
			} else {
				in := bufio.NewScanner(cmd.InOrStdin())
				next = func() (string, bool) {
					fmt.Fprint(w, yellow("choice> "))
					if !in.Scan() {
						return "", false
					}
					c := strings.TrimSpace(in.Text())
					return c, c != "q"
				}
			}

			for !sess.Done() {
				event, _ := sess.CurrentEvent()
				if !asJSON {
					printEvent(w, sess.Answered()+1, event)
				}
				choiceID, ok := next()
				if !ok {
					break
				}
				resp, err := st.app.Simulations.Choose(ctx, sess, choiceID)
				var ice *simulation.InvalidChoiceError
				if errors.As(err, &ice) && choices == "" {
					fmt.Fprintln(w, red(err.Error()))
					continue
				}
				if err != nil {
					return err
				}
				if !asJSON {
					fmt.Fprintln(w, gray(simulation.Summarize(event, resp)))
					fmt.Fprintln(w)
				}
			}

			out := struct {
				SessionID string                `json:"sessionId"`
				PersonaID string                `json:"personaId"`
				Responses []simulation.Response `json:"responses"`
				Report    *simulation.Report    `json:"report,omitempty"`
			}{SessionID: sess.ID, PersonaID: sess.Persona.ID, Responses: sess.Responses()}

			// Quitting before the first decision leaves nothing to report or record.
			if sess.Answered() == 0 {
				if asJSON {
					out.Responses = []simulation.Response{}
					return writeJSON(w, out)
				}
				fmt.Fprintln(w, gray("No decisions made, nothing to report."))
				return nil
			}

			rep, err := st.app.Simulations.Finish(ctx, sess)
			if err != nil {
				return err
			}
			if asJSON {
				out.Report = &rep
				return writeJSON(w, out)
			}
			printReport(w, rep)
			return nil
		},
	}
	cmd.Flags().StringVar(&choices, "choices", "", "comma separated choice ids instead of prompting")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the session and report as JSON")
	return cmd
}

func printEvent(w io.Writer, n int, e core.Event) {
	fmt.Fprintf(w, "%s %s\n", cyan(fmt.Sprintf("[%d]", n)), bold(e.Title))
	if e.Description != "" {
		fmt.Fprintln(w, "    "+e.Description)
	}
	for _, c := range e.Choices {
		line := fmt.Sprintf("    %s) %s  %s", c.ID, c.Text, core.FormatSignedRupees(c.FinancialImpact))
		if c.FutureLiability > 0 {
			line += gray(fmt.Sprintf("  (+%s later)", core.FormatRupees(c.FutureLiability)))
		}
		fmt.Fprintln(w, line)
	}
}

func printReport(w io.Writer, r simulation.Report) {
	heading(w, "Report")
	impact := core.FormatSignedRupees(r.TotalImpact)
	if r.TotalImpact < 0 {
		impact = red(impact)
	} else {
		impact = green(impact)
	}
	fmt.Fprintf(w, "  Total impact      %s over %d/%d events\n", impact, r.EventsCompleted, r.PlannedEvents)
	fmt.Fprintf(w, "  Final savings     %s\n", core.FormatRupees(r.FinalSavings))
	fmt.Fprintf(w, "  Health score      %.1f\n", r.HealthScore)
	fmt.Fprintf(w, "  Dominant behavior %s\n", r.DominantBehavior)
	fmt.Fprintf(w, "  Decisions         %d optimal, %d positive, %d risky, %d impulsive\n",
		r.OptimalDecisions, r.PositiveDecisions, r.RiskDecisions, r.ImpulseDecisions)
	if r.TotalFutureLiability > 0 {
		fmt.Fprintf(w, "  Future liability  %s\n", core.FormatRupees(r.TotalFutureLiability))
	}
	for _, p := range r.Projections {
		line := fmt.Sprintf("  %2d months: savings %s, health %.1f",
			p.Months, core.FormatRupees(int64(p.ProjectedSavings)), p.HealthScore)
		switch {
		case p.RecoveryUnbounded:
			line += yellow(", no income to recover with")
		case p.RecoveryTimeMonths > 0:
			line += fmt.Sprintf(", recovery in %d months", p.RecoveryTimeMonths)
		}
		fmt.Fprintln(w, line)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
