// Package cmd provides the CLI commands for Countdown.
//
// Copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/runtime"
	"github.com/manav03panchal/countdown/internal/tui"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
	flagTimers []string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Live countdown timers in your terminal",
	Long: `Countdown keeps a board of named, categorized timers and shows the
time left on each one, second by second.

Running countdown with no command opens the interactive view. Timers live
only for the lifetime of the process.

Examples:
  countdown
  countdown --timer 'Call|Meeting|+5m'
  countdown watch --timer 'Launch|Reminder|2026-12-24T18:00'
  countdown split 90061`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return errors.NewUserErrorWithField("format", flagFormat, "Unknown output format", "Use cli, json or plain")
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return errors.NewUserErrorWithField("color", flagColor, "Unknown color mode", "Use auto, always or never")
		}

		opts := runtime.DefaultOptions()
		opts.ConfigPath = flagConfig
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		opts.Interactive = isInteractive(cmd)

		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: runView,
}

// runView seeds any --timer values and opens the interactive view.
func runView(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.NewUserError("The interactive view needs a terminal",
			"Use 'countdown watch --timer ...' for non-interactive output")
	}

	if _, err := ctx.Board.Seed(flagTimers); err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Board:      ctx.Board,
		Categories: ctx.Config.Categories,
		Policy:     ctx.RemovalPolicy(),
		Interval:   ctx.Config.Tick.Interval,
	})
}

// isInteractive reports whether cmd opens the TUI. Only the root command does.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent()
}

func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// Execute runs the root command, reports any error and returns it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		report(rootCmd.ErrOrStderr(), err)
	}
	closeContext()
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default $XDG_CONFIG_HOME/countdown/config.yaml)")

	rootCmd.Flags().StringArrayVarP(&flagTimers, "timer", "t", nil,
		"Start with a timer: 'Title|Category|Target' (repeatable)")
	rootCmd.RegisterFlagCompletionFunc("timer", completeTimerSpec)

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("countdown %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// report prints an error in the selected output format. System failures are
// also logged with the operation that failed.
func report(w io.Writer, err error) {
	if se, ok := errors.AsSystemError(err); ok {
		logging.Error("command failed", logging.KeyOperation, se.Op, logging.KeyError, se.Cause)
	}
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(err.Error(), runtime.GetSuggestion(err))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", runtime.FormatError(err))
}
