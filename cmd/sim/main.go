package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/match"
)

var (
	configFile string
	ticks      int
	dtMS       float64
	seed       int64
	plot       bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "airhockey-sim",
		Short:        "headless air hockey match between two bots",
		SilenceUsage: true,
		RunE:         runSim,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), defaults to $"+config.EnvConfigPath)
	rootCmd.Flags().IntVar(&ticks, "ticks", 60*60, "number of ticks to run")
	rootCmd.Flags().Float64Var(&dtMS, "dt", 1000.0/60, "tick length in milliseconds")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for the face-off serves")
	rootCmd.Flags().BoolVar(&plot, "plot", false, "plot puck speed and kinetic energy")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every goal")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "sim",
		ReportTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if ticks < 1 {
		return fmt.Errorf("--ticks must be positive, got %d", ticks)
	}
	if dtMS <= 0 {
		return fmt.Errorf("--dt must be positive, got %g", dtMS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := match.New(cfg)
	if err != nil {
		return err
	}

	dt := time.Duration(dtMS * float64(time.Millisecond))
	logger.Info("running", "ticks", ticks, "dt", dt, "seed", seed)

	start := time.Now()
	res := simulate(c, ticks, dt, rand.New(rand.NewSource(seed)))
	for _, ev := range res.Goals {
		logger.Debug("goal", "scorer", ev.Scorer, "tick", ev.Tick, "at", fmt.Sprintf("%.0f,%.0f", ev.At.X, ev.At.Y))
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond), "goals", len(res.Goals))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "final score  P1 %d - %d P2  after %d ticks (%s simulated)\n",
		res.Final.Scores.Player1, res.Final.Scores.Player2, res.Final.Tick, time.Duration(ticks)*dt)

	if plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(res.Speed,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("puck speed (units per 1/60 s)"),
		))
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(res.Energy,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("total kinetic energy"),
		))
	}
	return nil
}

func loadConfig() (config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.FromEnv()
}
