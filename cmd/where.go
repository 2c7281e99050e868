package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/where"
)

// location is a file or directory webify keeps state in.
type location struct {
	name  string
	flag  string
	short string
	path  func() string
	// hidden locations are not listed by where unless asked for
	hidden bool
	// erasable locations are offered by clear
	erasable bool
}

var locations = []*location{
	{name: "config", flag: "config", short: "c", path: where.Config},
	{name: "saved playlists", flag: "playlists", short: "p", path: where.Playlists, erasable: true},
	{name: "logs", flag: "logs", short: "l", path: where.Logs},
	{name: "cache", flag: "cache", path: where.Cache, hidden: true, erasable: true},
	{name: "play history", flag: "history", short: "s", path: where.History, hidden: true, erasable: true},
	{name: "search history", flag: "queries", short: "q", path: where.Queries, hidden: true, erasable: true},
}

func (l *location) register(flags *pflag.FlagSet, usage string) {
	if l.short != "" {
		flags.BoolP(l.flag, l.short, false, usage)
	} else {
		flags.Bool(l.flag, false, usage)
	}
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		l.register(whereCmd.Flags(), "print the "+l.name+" path")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l *location, _ int) string {
		return l.flag
	})...)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print where webify keeps its files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Reject(locations, func(l *location, _ int) bool { return l.hidden })
		for i, l := range listed {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(l.name), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
