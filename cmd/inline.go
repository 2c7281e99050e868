package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/inline"
	"github.com/webify-cli/webify/query"
	"github.com/webify-cli/webify/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search terms")
	inlineCmd.Flags().IntP("page", "p", 1, "The page to return")
	inlineCmd.Flags().IntP("limit", "l", 0, "Results per page and source, 0 uses search.results_per_page")
	inlineCmd.Flags().StringP("pick", "k", "", "Select results: first, last, all, an index, from-to or @substring@")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("resolve", "r", false, "Resolve every selected result to its stream URL")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd runs one search without the interactive loop.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Search once and print the results, for scripts",
	Long: `Search every enabled source once and print the results.

Text output is one line per result: title, source id and link (or stream with --resolve), tab separated.

Pickers:
  first - first result
  last - last result
  all - all results
  [number] - result by index (starting from 0)
  [from]-[to] - results by range
  @[substring]@ - results whose title contains substring`,
	Example: "webify inline -q 'daft punk' --pick first --resolve",
	Run: func(cmd *cobra.Command, args []string) {
		agg, err := newAggregator()
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		selector := mo.None[inline.Selector]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParseSelector(pick)
			handleErr(err)
			selector = mo.Some(fn)
		}

		q := lo.Must(cmd.Flags().GetString("query"))
		_ = query.Remember(q, 1)

		options := &inline.Options{
			Out:        writer,
			Aggregator: agg,
			Query:      q,
			Page:       lo.Must(cmd.Flags().GetInt("page")),
			Limit:      lo.Must(cmd.Flags().GetInt("limit")),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Resolve:    lo.Must(cmd.Flags().GetBool("resolve")),
			Selector:   selector,
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
