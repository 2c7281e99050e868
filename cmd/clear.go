package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/util"
)

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range locations {
		if l.erasable {
			l.register(clearCmd.Flags(), "delete the "+l.name)
		}
	}
	clearCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached and saved data",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			yes      = lo.Must(cmd.Flags().GetBool("yes"))
			selected = lo.Filter(locations, func(l *location, _ int) bool {
				return l.erasable && lo.Must(cmd.Flags().GetBool(l.flag))
			})
		)

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range selected {
			if !yes && !confirm(fmt.Sprintf("Delete the %s?", l.name)) {
				continue
			}

			erase := util.PrintErasable(fmt.Sprintf("%s Deleting the %s...", icon.Get(icon.Progress), l.name))
			err := util.Delete(l.path())
			erase()
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s deleted\n", icon.Get(icon.Success), util.Capitalize(l.name))
		}
	},
}
