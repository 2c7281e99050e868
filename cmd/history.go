package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/webify-cli/webify/history"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 20, "Show at most this many records, 0 for all")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists played items, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently played items",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Recent()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 {
			records = lo.Slice(records, 0, limit)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		for i, r := range records {
			cmd.Printf("%3d %s %s %s\n", i, style.Faint(r.PlayedAt.Format("2006-01-02 15:04")), r, style.Faint(r.StreamURL))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <id...>",
	Short: "Forget played items by their id in the history listing",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Recent()
		handleErr(err)

		ids := lo.Map(args, func(arg string, _ int) int {
			id, err := strconv.Atoi(arg)
			if err != nil || id < 0 || id >= len(records) {
				handleErr(fmt.Errorf("invalid id %s, have %s", arg, util.Quantify(len(records), "record", "records")))
			}
			return id
		})

		for _, id := range lo.Uniq(ids) {
			handleErr(history.Remove(records[id]))
			success("removed %s", records[id])
		}
	},
}
