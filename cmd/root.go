// Package cmd implements the webify command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/aggregator"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/log"
	"github.com/webify-cli/webify/mini"
	"github.com/webify-cli/webify/network"
	"github.com/webify-cli/webify/player"
	"github.com/webify-cli/webify/provider"
	"github.com/webify-cli/webify/source"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record played items in the play history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringSliceP("source", "S", []string{}, "Restrict searches to these sources")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSources))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.Flags().BoolP("video", "V", true, "Play video, set to false for audio only")
	lo.Must0(viper.BindPFlag(key.PlayerVideo, rootCmd.Flags().Lookup("video")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

func completionSources(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
		return p.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

// rootCmd starts the interactive command loop.
var rootCmd = &cobra.Command{
	Use:   constant.Webify,
	Short: "Search video and music sites from the terminal and play the results",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Search video and music sites from the terminal and play the results"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		p, err := newPlayer()
		handleErr(err)
		handleErr(mini.Run(cmd.Context(), p, nil))
	},
}

// newAggregator builds the enabled sources around one configured transport.
func newAggregator() (*aggregator.Aggregator, error) {
	providers := provider.Enabled()
	if len(providers) == 0 {
		return nil, fmt.Errorf("no known source in %s: %v", key.DefaultSources, viper.GetStringSlice(key.DefaultSources))
	}

	transport := network.NewFromConfig()
	sources := lo.Map(providers, func(p *provider.Provider, _ int) source.Source {
		return p.CreateSource(transport)
	})

	return aggregator.New(transport, sources...), nil
}

func newPlayer() (*player.Player, error) {
	agg, err := newAggregator()
	if err != nil {
		return nil, err
	}

	backend, err := player.NewBackend()
	if err != nil {
		return nil, err
	}

	return player.New(agg, backend), nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
