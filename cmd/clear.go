package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/biiclasses/bii/config"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/util"
	"github.com/biiclasses/bii/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"saved reports", "reports", mo.Some("r"), where.Reports},
	{"check history", "history", mo.Some("s"), where.History},
	{"config file", "config", mo.None[string](), config.Path},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes files bii has written.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear log files, saved reports, the check history or the config file",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				e := util.PrintErasable(os.Stdout, fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
				err := util.Delete(target.location())
				e()
				if !errors.Is(err, os.ErrNotExist) {
					handleErr(err)
				}
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
