package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"arthsaathi/internal/assessment"
)

func newAssessCommand(st *rootState) *cobra.Command {
	var (
		answers string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Take the money-mindset assessment and get an action plan",
		Long: "Five baseline questions pick your money mindset; a short deep dive for that\n" +
			"mindset follows, then the report. --answers takes b1=a,... plus the deep-dive ids.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			a := assessment.Answers{}
			if answers != "" {
				if err := parseAnswers(a.Answer, answers); err != nil {
					return err
				}
			} else {
				in := bufio.NewScanner(cmd.InOrStdin())
				heading(w, "Baseline")
				if err := askAll(w, in, a, assessment.Baseline()); err != nil {
					return err
				}
				arch := a.Archetype()
				heading(w, fmt.Sprintf("Deep dive (%s)", arch))
				if err := askAll(w, in, a, assessment.DeepDive(arch)); err != nil {
					return err
				}
			}

			res, err := st.app.Assessments.AssessMindset(cmd.Context(), a)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(w, res)
			}
			printMindsetReport(w, res.Report)
			return nil
		},
	}
	cmd.Flags().StringVar(&answers, "answers", "", "answers as b1=a,b2=c,... instead of prompting")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func askAll(w io.Writer, in *bufio.Scanner, a assessment.Answers, qs []assessment.Question) error {
	for _, q := range qs {
		fmt.Fprintln(w, bold(q.Text))
		for _, o := range q.Options {
			fmt.Fprintf(w, "    %s) %s\n", o.ID, o.Label)
		}
		for {
			fmt.Fprint(w, yellow("answer> "))
			if !in.Scan() {
				return fmt.Errorf("assessment aborted at %s", q.ID)
			}
			err := a.Answer(q.ID, strings.TrimSpace(in.Text()))
			if err == nil {
				break
			}
			fmt.Fprintln(w, red(err.Error()))
		}
	}
	return nil
}

func printMindsetReport(w io.Writer, r assessment.Report) {
	heading(w, fmt.Sprintf("%s %s", r.Icon, r.Title))
	fmt.Fprintf(w, "  literacy %d  anxiety %d  discipline %d  risk tolerance %d\n\n",
		r.Scores.Literacy, r.Scores.Anxiety, r.Scores.Discipline, r.Scores.RiskTolerance)
	fmt.Fprintln(w, r.Summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, green(r.GoodNews))
	fmt.Fprintln(w, cyan("Key blockers"))
	for _, b := range r.KeyBlockers {
		fmt.Fprintln(w, "  - "+b)
	}
	fmt.Fprintln(w, cyan("Action plan"))
	for i, step := range r.ActionPlan {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, bold(step.Title), gray("("+step.Subtitle+")"))
		fmt.Fprintln(w, "     "+step.Description)
	}
}
