package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/provider"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "print only the version")
}

var versionTemplate = `{{ magenta "▶" }} {{ magenta .App }}

  {{ faint "Version" }}    {{ bold .Version }}
  {{ faint "Commit" }}     {{ bold .Revision }}
  {{ faint "Built" }}      {{ bold .BuiltAt }} by {{ bold .BuiltBy }}
  {{ faint "Platform" }}   {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Sources" }}    {{ join .Sources ", " }}
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		info := struct {
			App, Version, Revision string
			BuiltAt, BuiltBy       string
			OS, Arch               string
			Sources                []string
		}{
			App:      constant.Webify,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Sources: lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
				return p.Name
			}),
		}

		t, err := template.New("version").Funcs(template.FuncMap{
			"faint":   style.Faint,
			"bold":    style.Bold,
			"magenta": style.Fg(color.Purple),
			"join":    strings.Join,
		}).Parse(versionTemplate)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
