package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/scheduler"
	"github.com/manav03panchal/countdown/internal/timer"
)

// Watch command flags.
var (
	watchFlagForever bool
	watchFlagOnce    bool
)

// watchCmd runs the board without the interactive view.
var watchCmd = &cobra.Command{
	Use:   "watch --timer 'Title|Category|Target' [--timer ...]",
	Short: "Print live timer cards without the interactive view",
	Long: `Run the timers headless, reprinting every card on each tick.

Targets accept datetime-local values (2026-12-24T18:00), relative offsets
(+30s, +5m, +2d, +1h30m) and natural language (tomorrow 9am, friday 5pm).

The command exits once every timer has finished, unless --forever is set.
With --once it prints the current state a single time and exits.

Examples:
  countdown watch --timer 'Call|Meeting|+5s'
  countdown watch -t 'Cake|Birthday|saturday 3pm' -t 'Standup|Meeting|tomorrow 9:30am'
  countdown watch --once --format json -t 'Launch|Reminder|2026-12-24T18:00'`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringArrayVarP(&flagTimers, "timer", "t", nil,
		"Timer to watch: 'Title|Category|Target' (repeatable)")
	watchCmd.Flags().BoolVar(&watchFlagForever, "forever", false,
		"Keep running after every timer has finished")
	watchCmd.Flags().BoolVar(&watchFlagOnce, "once", false,
		"Print the timers once and exit")
	watchCmd.RegisterFlagCompletionFunc("timer", completeTimerSpec)

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if len(flagTimers) == 0 {
		return errors.NewUserError("No timers to watch",
			"Pass at least one --timer 'Title|Category|Target'").WithCause(errors.ErrInvalidSpec)
	}
	if _, err := ctx.Board.Seed(flagTimers); err != nil {
		return err
	}
	if n, err := ctx.Board.Len(); err == nil {
		ctx.Logger.Info("watch started", logging.KeyCount, n, "once", watchFlagOnce)
	}

	render := newWatchRenderer()

	if watchFlagOnce {
		if _, err := ctx.Board.Tick(); err != nil {
			return err
		}
		return render(false)
	}

	sessCtx := logging.WithSessionID(cmd.Context(), ctx.SessionID)
	sigCtx, stop := signal.NotifyContext(sessCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	if err := render(true); err != nil {
		return err
	}

	log := logging.LoggerFromContext(runCtx)
	var tickErr error
	tick := func() {
		finished, err := ctx.Board.Tick()
		if err != nil {
			tickErr = err
			cancel()
			return
		}
		for _, t := range finished {
			log.Info("countdown reached zero", logging.KeyTimerID, t.ID, logging.KeyOperation, "watch")
		}
		if err := render(true); err != nil {
			tickErr = err
			cancel()
			return
		}
		if watchFlagForever {
			return
		}
		if running, err := ctx.Board.Running(); err == nil && running == 0 {
			cancel()
		}
	}

	sched := scheduler.NewScheduler(ctx.Config.Tick.Interval)
	sched.SetDebug(ctx.Debug)
	if err := sched.Run(runCtx, tick); err != nil {
		return err
	}
	if tickErr != nil {
		return tickErr
	}

	if ctx.IsCLI() {
		if sigCtx.Err() != nil {
			ctx.CLIFormatter().Warning("Interrupted")
		} else if !watchFlagForever {
			ctx.CLIFormatter().Success("All timers finished")
		}
	}
	return nil
}

// newWatchRenderer returns a function that prints the whole board in the
// selected format. live redraws in place on a terminal.
func newWatchRenderer() func(live bool) error {
	f := ctx.Formatter
	categories := ctx.Config.Categories

	isTerm := false
	width := 80
	if file, ok := f.Writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTerm = true
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	cards := timer.NewCardDisplay(categories)
	cards.Writer = f.Writer
	cards.UseColor = f.IsColorEnabled()
	cards.Width = width

	return func(live bool) error {
		timers, err := ctx.Board.Snapshot()
		if err != nil {
			return err
		}
		now := ctx.Board.Now()

		switch {
		case f.Format == output.FormatJSON:
			return ctx.JSONFormatter().PrintTimers(timers, categories, now)
		case !live && f.Format == output.FormatCLI:
			ctx.CLIFormatter().PrintTimers(timers, categories, now)
		default:
			if live && isTerm && f.Format == output.FormatCLI {
				cards.ClearScreen()
				fmt.Fprintln(f.Writer, now.Format("Mon Jan 2, 15:04:05"))
			}
			cards.Print(timers)
		}
		return nil
	}
}
