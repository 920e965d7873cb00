package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/board"
	"github.com/manav03panchal/countdown/internal/config"
	"github.com/manav03panchal/countdown/internal/parser"
)

// completeTimerSpec completes --timer values field by field: the category
// after the first separator, then example targets after the second.
func completeTimerSpec(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	parts := strings.Split(toComplete, board.SpecSeparator)

	switch len(parts) {
	case 2:
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var completions []string
		for _, name := range cfg.Categories.Names() {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(parts[1])) {
				completions = append(completions, parts[0]+board.SpecSeparator+name+board.SpecSeparator)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace

	case 3:
		prefix := parts[0] + board.SpecSeparator + parts[1] + board.SpecSeparator
		var completions []string
		for _, ex := range parser.TargetExamples {
			if strings.HasPrefix(ex, parts[2]) {
				completions = append(completions, prefix+ex)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}

	return nil, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
