package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/errors"
)

// splitCmd breaks a number of seconds into days, hours, minutes and seconds.
var splitCmd = &cobra.Command{
	Use:   "split SECONDS",
	Short: "Break a number of seconds into days, hours, minutes and seconds",
	Example: `  countdown split 90061
  countdown split 3600 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	seconds, err := parseSeconds(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSplit(seconds)
	}
	ctx.CLIFormatter().PrintSplit(seconds)
	return nil
}

func parseSeconds(arg string) (int64, error) {
	seconds, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || seconds < 0 {
		return 0, errors.NewUserErrorWithField("seconds", arg,
			"Seconds must be a non-negative whole number", "").WithCause(errors.ErrInvalidSeconds)
	}
	return seconds, nil
}
