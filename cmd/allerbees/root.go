package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/manifest"
	"github.com/lixenwraith/allerbees/tuning"
)

// app carries resolved settings and tuning into subcommands
type app struct {
	settings config.Settings
	tuning   tuning.Tuning
	logFile  *os.File
}

type rootFlags struct {
	debug      bool
	mute       bool
	tuningFile string
	dataDir    string
	observe    string
	otel       string
	tick       time.Duration
	noJournal  bool
	noHistory  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var flags rootFlags

	root := &cobra.Command{
		Use:           "allerbees",
		Short:         "Gather pollen without sneezing it all away",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logFile != nil {
				a.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), a)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "write logs to logs/allerbees.log")
	pf.BoolVar(&flags.mute, "mute", false, "disable sound")
	pf.StringVar(&flags.tuningFile, "tuning", "", "YAML tuning file")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory for journal and history")
	pf.StringVar(&flags.observe, "observe", "", "spectator listen address (e.g. 127.0.0.1:8787)")
	pf.StringVar(&flags.otel, "otel-endpoint", "", "OTLP/HTTP trace endpoint")
	pf.DurationVar(&flags.tick, "tick", 0, "simulation tick")
	pf.BoolVar(&flags.noJournal, "no-journal", false, "disable the event journal")
	pf.BoolVar(&flags.noHistory, "no-history", false, "disable session history")

	root.AddCommand(
		newPlayCmd(a),
		newSimCmd(a),
		newServeCmd(a),
		newHistoryCmd(a),
		newTuningCmd(a),
	)
	return root
}

// load resolves environment settings, applies explicit flags, then reads tuning
func (a *app) load(cmd *cobra.Command, flags rootFlags) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("debug") {
		settings.Debug = flags.debug
	}
	if changed("mute") {
		settings.Mute = flags.mute
	}
	if changed("tuning") {
		settings.TuningFile = flags.tuningFile
	}
	if changed("data-dir") {
		settings.DataDir = flags.dataDir
	}
	if changed("observe") {
		settings.ObserveAddr = flags.observe
	}
	if changed("otel-endpoint") {
		settings.OTelEndpoint = flags.otel
	}
	if changed("tick") && flags.tick > 0 {
		settings.Tick = flags.tick
	}
	if flags.noJournal {
		settings.Journal = false
	}
	if flags.noHistory {
		settings.History = false
	}

	t, err := tuning.Load(settings.TuningFile)
	if err != nil {
		return err
	}

	a.settings = settings
	a.tuning = t
	a.logFile = setupLogging(settings.Debug)

	manifest.RegisterAll(manifest.Bootstrap(t, settings.Tick))
	return nil
}
