package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/network"
	"github.com/webify-cli/webify/provider"
	"github.com/webify-cli/webify/source"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/util"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd groups commands about the built-in sources.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the built-in search sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print only source ids")
	sourcesListCmd.Flags().BoolP("enabled", "e", false, "Display only the sources enabled by "+key.DefaultSources)
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays every registered source.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all registered sources in search order",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		providers := provider.Builtins()
		enabled := lo.Map(provider.Enabled(), func(p *provider.Provider, _ int) string {
			return p.ID
		})

		if lo.Must(cmd.Flags().GetBool("enabled")) {
			providers = provider.Enabled()
		}

		for _, p := range providers {
			if raw {
				cmd.Println(p.ID)
				continue
			}

			mark := style.Faint("off")
			if lo.Contains(enabled, p.ID) {
				mark = style.Fg(color.Green)("on")
			}
			cmd.Printf("%-6s %-12s %s\n", style.Fg(color.Yellow)(p.ID), p.Name, mark)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesCheckCmd)
	sourcesCheckCmd.SetOut(os.Stdout)
}

// sourcesCheckCmd searches every enabled source once and resolves its first result.
var sourcesCheckCmd = &cobra.Command{
	Use:   "check [terms]",
	Short: "Run a search against each source and resolve its first result",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		terms := strings.Join(args, " ")
		transport := network.NewFromConfig()

		var failed int
		for _, p := range provider.Enabled() {
			cmd.Println(style.Bold(p.Name))

			if err := checkSource(cmd, p.CreateSource(transport), transport, terms); err != nil {
				failed++
				cmd.Printf("%s %s\n\n", icon.Get(icon.Fail), err)
				continue
			}
			cmd.Println()
		}

		if failed > 0 {
			handleErr(fmt.Errorf("%s failed", util.Quantify(failed, "source", "sources")))
		}
	},
}

func checkSource(cmd *cobra.Command, src source.Source, fetcher source.Fetcher, terms string) error {
	cursor := source.NewCursor(src, fetcher)
	q := source.NewQuery(terms, viper.GetInt(key.SearchResultsPerPage))

	erase := util.PrintErasable(fmt.Sprintf("%s Searching %s...", icon.Get(icon.Progress), src.Name()))
	err := cursor.Search(cmd.Context(), q)
	erase()
	if err != nil {
		return err
	}

	results := cursor.Results()
	for i, r := range results {
		cmd.Printf("%5d %s\n", i, r.Title())
	}

	if len(results) == 0 {
		return errors.New("no results")
	}

	stream, err := results[0].Resolve(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("%s %s\n", icon.Get(icon.Link), stream)
	return nil
}
