/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/slotgrid/internal/config"
	"github.com/friendsincode/slotgrid/internal/logging"
	"github.com/friendsincode/slotgrid/internal/schedule"
	"github.com/friendsincode/slotgrid/internal/version"
)

var logger zerolog.Logger

var (
	configFile string
	use12      bool
	use24      bool
	startTime  string
	slotLength string
	endTime    string
	spaced     bool
	condensed  bool
	showAMPM   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "slotgrid",
	Short:         "Generate contiguous time slots between two times",
	Long:          "slotgrid walks from a start time to an end time in fixed-length steps and prints one slot per line, e.g. 09:00-10:00.",
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the slotgrid version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML defaults file (or set SLOTGRID_CONFIG)")
	rootCmd.Flags().BoolVar(&use12, "12", false, "Use 12-hour clock format (default)")
	rootCmd.Flags().BoolVar(&use24, "24", false, "Use 24-hour clock format")
	rootCmd.Flags().StringVarP(&startTime, "start-time", "s", "", "Starting time, HH:MM with optional AM/PM in 12-hour mode (default: 09:00 AM / 09:00)")
	rootCmd.Flags().StringVarP(&slotLength, "slot-length", "l", "", "Slot length as [hours]h[minutes]m or bare minutes, e.g. 15m, 1h, 1h15m (default: 1h)")
	rootCmd.Flags().StringVarP(&endTime, "end-time", "e", "", "Ending time, HH:MM with optional AM/PM in 12-hour mode (default: 5:00 PM / 17:00)")
	rootCmd.Flags().BoolVar(&condensed, "condensed", false, "Render slots as 09:00-10:00 (default)")
	rootCmd.Flags().BoolVar(&spaced, "spaced", false, "Render slots as 09:00 - 10:00")
	rootCmd.Flags().BoolVar(&showAMPM, "ampm", false, "Show AM/PM labels in 12-hour mode")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// resolveOptions layers flag values over config.Load's defaults-file
// and environment resolution. String flags only override when set, so
// file and env values survive; with both clock-mode (or both spacing)
// booleans given, the non-default one wins.
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	opts, err := config.Load(configFile)
	if err != nil {
		return config.Options{}, err
	}

	flags := cmd.Flags()
	if use12 {
		opts.ClockMode = config.Clock12
	}
	if use24 {
		opts.ClockMode = config.Clock24
	}
	if flags.Changed("start-time") {
		opts.StartTime = startTime
	}
	if flags.Changed("slot-length") {
		opts.SlotLength = slotLength
	}
	if flags.Changed("end-time") {
		opts.EndTime = endTime
	}
	if condensed {
		opts.Spaced = false
	}
	if spaced {
		opts.Spaced = true
	}
	if showAMPM {
		opts.ShowAMPM = true
	}
	if verbose {
		opts.Verbose = true
	}

	opts.FillDefaults()
	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	logger = logging.Setup(opts.Verbose)
	logger.Debug().
		Str("clock_mode", string(opts.ClockMode)).
		Str("start_time", opts.StartTime).
		Str("slot_length", opts.SlotLength).
		Str("end_time", opts.EndTime).
		Bool("spaced", opts.Spaced).
		Bool("show_ampm", opts.ShowAMPM).
		Msg("options resolved")

	gen := schedule.NewGenerator(opts, logger)
	lines, err := gen.Lines()
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
