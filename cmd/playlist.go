package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/network"
	"github.com/webify-cli/webify/playlist"
	"github.com/webify-cli/webify/provider"
	"github.com/webify-cli/webify/source"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/util"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
}

// playlistCmd groups commands on saved playlists.
var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl"},
	Short:   "Manage saved playlists",
}

func completionPlaylists(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names, err := playlist.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// pickPlaylist returns args[0], or asks for one of the saved playlists.
func pickPlaylist(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	names, err := playlist.List()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", errors.New("no saved playlists")
	}

	var name string
	err = survey.AskOne(&survey.Select{
		Message: "Playlist:",
		Options: names,
	}, &name)
	return name, err
}

// bindBuiltin binds playlist items to fresh built-in sources regardless of sources.default.
func bindBuiltin(fetcher source.Fetcher) playlist.Binder {
	return func(id string) (source.Source, bool) {
		p, ok := provider.Get(id)
		if !ok {
			return nil, false
		}
		return p.CreateSource(fetcher), true
	}
}

func init() {
	playlistCmd.AddCommand(playlistListCmd)
	playlistListCmd.SetOut(os.Stdout)
}

var playlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved playlists",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := playlist.List()
		handleErr(err)

		for _, name := range names {
			cmd.Println(name)
		}
	},
}

func init() {
	playlistCmd.AddCommand(playlistShowCmd)
	playlistShowCmd.SetOut(os.Stdout)
}

var playlistShowCmd = &cobra.Command{
	Use:               "show [name]",
	Short:             "Print the items of a saved playlist",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPlaylists,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := pickPlaylist(args)
		handleErr(err)

		pl, err := playlist.LoadFile(name, bindBuiltin(nil))
		handleErr(err)

		cmd.Println(style.Bold(pl.Name))
		for i, item := range pl.Items() {
			cmd.Printf("%3d %s %s\n", i, item.Title(), style.Faint(item.Source().Name()))
		}
	},
}

func init() {
	playlistCmd.AddCommand(playlistPlayCmd)
}

var playlistPlayCmd = &cobra.Command{
	Use:               "play [name]",
	Short:             "Play a saved playlist",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPlaylists,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		name, err := pickPlaylist(args)
		handleErr(err)

		p, err := newPlayer()
		handleErr(err)

		pl, err := playlist.LoadFile(name, bindBuiltin(network.NewFromConfig()))
		handleErr(err)

		report := p.QueuePlaylist(cmd.Context(), pl, true)
		for _, f := range report.Failed {
			fmt.Printf("%s %s: %s\n", icon.Get(icon.Fail), f.Item.Title(), f.Err)
		}
		fmt.Printf("%s played %s\n", icon.Get(icon.Success), util.Quantify(len(report.Played), "item", "items"))
	},
}

func init() {
	playlistCmd.AddCommand(playlistDeleteCmd)
	playlistDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var playlistDeleteCmd = &cobra.Command{
	Use:               "delete [name]",
	Aliases:           []string{"remove", "rm"},
	Short:             "Delete a saved playlist",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPlaylists,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := pickPlaylist(args)
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("yes")) && !confirm(fmt.Sprintf("Delete playlist %s?", name)) {
			return
		}

		handleErr(playlist.Delete(name))
		fmt.Printf("%s deleted %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

// confirm asks a yes/no question, defaulting to no.
func confirm(message string) bool {
	var response bool
	handleErr(survey.AskOne(&survey.Confirm{
		Message: message,
		Default: false,
	}, &response))
	return response
}
