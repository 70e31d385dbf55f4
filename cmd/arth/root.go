package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arthsaathi/internal/cli"
	"arthsaathi/internal/config"
	"arthsaathi/internal/log"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

type rootState struct {
	backend  string
	personas string
	logLevel string

	app    *cli.App
	cancel context.CancelFunc
}

// newRootCommand builds the command tree. Run it through rootState.execute
// so the store is released even when a command fails.
func newRootCommand() (*cobra.Command, *rootState) {
	st := &rootState{}

	root := &cobra.Command{
		Use:           "arth",
		Short:         "Financial twin: simulate decisions and see their impact",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&st.backend, "backend", "", "storage backend (memory|sqlite), overrides DATA_BACKEND")
	root.PersistentFlags().StringVar(&st.personas, "personas", "", "persona fixture (.json/.yaml), overrides PERSONAS_FILE")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	root.AddCommand(
		newPersonasCommand(st),
		newSimulateCommand(st),
		newSurveyCommand(st),
		newAssessCommand(st),
		newTimelineCommand(st),
		newPodcastsCommand(st),
		newSignUpCommand(st),
		newSignInCommand(st),
		newSignOutCommand(st),
		newWhoAmICommand(st),
		newReplayCommand(st),
	)
	return root, st
}

// execute runs root and then closes whatever open acquired. cobra skips
// post-run hooks when RunE fails, so the close cannot live there.
func (st *rootState) execute(root *cobra.Command) error {
	err := root.Execute()
	if cerr := st.close(); err == nil {
		err = cerr
	}
	return err
}

func (st *rootState) open(cmd *cobra.Command) error {
	cfg, err := cli.LoadAndValidateConfig(st.applyFlags)
	if err != nil {
		return err
	}

	logger, err := cli.SetupLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx, cancel := cli.SignalContext(cmd.Context(), logger)
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		cancel()
		return err
	}
	st.app, st.cancel = app, cancel
	cmd.SetContext(log.NewContext(ctx, logger.WithComponent(log.ComponentCLI)))
	return nil
}

func (st *rootState) applyFlags(cfg *config.Config) {
	if st.backend != "" {
		cfg.DataBackend = st.backend
	}
	if st.personas != "" {
		cfg.PersonasFile = st.personas
	}
	if st.logLevel != "" {
		cfg.LogLevel = st.logLevel
	}
}

func (st *rootState) close() error {
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	if st.app == nil {
		return nil
	}
	app := st.app
	st.app = nil
	return app.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func heading(w io.Writer, s string) {
	fmt.Fprintln(w, bold(s))
}
