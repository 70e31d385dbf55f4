package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arthsaathi/internal/survey"
)

func newSurveyCommand(st *rootState) *cobra.Command {
	var (
		answers string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Answer the financial personality survey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			a := survey.Answers{}
			if answers != "" {
				if err := parseAnswers(a.Answer, answers); err != nil {
					return err
				}
			} else {
				in := bufio.NewScanner(cmd.InOrStdin())
				for _, q := range survey.Questions() {
					fmt.Fprintln(w, bold(q.Prompt))
					for _, o := range q.Options {
						fmt.Fprintf(w, "    %s) %s\n", o.ID, o.Text)
					}
					for {
						fmt.Fprint(w, yellow("answer> "))
						if !in.Scan() {
							return fmt.Errorf("survey aborted at %s", q.ID)
						}
						err := a.Answer(q.ID, strings.TrimSpace(in.Text()))
						if err == nil {
							break
						}
						fmt.Fprintln(w, red(err.Error()))
					}
				}
			}

			arch, err := st.app.Assessments.Assess(cmd.Context(), a)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(w, arch)
			}
			heading(w, fmt.Sprintf("%s %s", arch.Emoji, arch.Name))
			fmt.Fprintln(w, arch.Description)
			for _, sec := range []struct {
				title string
				items []string
			}{
				{"Strengths", arch.Strengths},
				{"Challenges", arch.Challenges},
				{"Recommendations", arch.Recommendations},
			} {
				fmt.Fprintln(w, cyan(sec.title))
				for _, it := range sec.items {
					fmt.Fprintln(w, "  - "+it)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answers, "answers", "", "answers as q1=a,q2=c,... instead of prompting")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the archetype as JSON")
	return cmd
}

// parseAnswers feeds question=option pairs to answer.
func parseAnswers(answer func(questionID, optionID string) error, s string) error {
	for _, pair := range splitList(s) {
		q, o, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("malformed answer %q: want question=option", pair)
		}
		if err := answer(strings.TrimSpace(q), strings.TrimSpace(o)); err != nil {
			return err
		}
	}
	return nil
}
