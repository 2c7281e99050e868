package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/config"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/player"
	"github.com/webify-cli/webify/provider"
	"github.com/webify-cli/webify/style"
)

// lookupField returns the registered field or an error naming the closest key.
func lookupField(k string) (config.Field, error) {
	if field, ok := config.Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}

// allowed lists the accepted values of enumerated keys.
func allowed(k string) ([]string, bool) {
	switch k {
	case key.Player:
		return player.Backends, true
	case key.IconsVariant:
		return icon.AvailableVariants(), true
	case key.DefaultSources:
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), true
	case key.LogsLevel:
		return lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string {
			return l.String()
		}), true
	default:
		return nil, false
	}
}

func validateValue(k string, value any) error {
	options, ok := allowed(k)
	if !ok {
		return nil
	}

	var values []string
	switch v := value.(type) {
	case string:
		values = []string{v}
	case []string:
		values = v
	}

	for _, v := range values {
		if !lo.Contains(options, v) {
			return fmt.Errorf("invalid value %s for %s, expected one of %v", style.Fg(color.Red)(v), k, options)
		}
	}
	return nil
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		if options, ok := allowed(args[0]); ok {
			return options, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func success(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "print fields as json")
	configInfoCmd.SetOut(os.Stdout)

	configResetCmd.Flags().BoolP("all", "a", false, "reset every key")
	configWriteCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
	configDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

var configInfoCmd = &cobra.Command{
	Use:               "info [keys...]",
	Short:             "Describe settings with their current and default values",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := config.Fields()
		if len(args) > 0 {
			fields = lo.Map(args, func(k string, _ int) config.Field {
				field, err := lookupField(k)
				handleErr(err)
				return field
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := lookupField(args[0])
		handleErr(err)
		fmt.Println(viper.Get(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Change a setting and write it to the config file",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		value, err := field.Parse(args[1:])
		handleErr(err)
		handleErr(validateValue(field.Key, value))

		viper.Set(field.Key, value)
		handleErr(config.Save())
		success("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [keys...]",
	Short:             "Restore settings to their defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		switch {
		case all && len(args) > 0:
			handleErr(fmt.Errorf("--all does not take keys"))
		case all:
			args = lo.Keys(config.Default)
		case len(args) == 0:
			handleErr(fmt.Errorf("name the keys to reset or pass --all"))
		}

		for _, k := range args {
			field, err := lookupField(k)
			handleErr(err)
			viper.Set(field.Key, field.Value)
		}
		handleErr(config.Save())

		if all {
			success("reset all keys")
			return
		}
		for _, k := range args {
			success("reset %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(config.Default[k].Value)))
		}
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to a new config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			exists, err := filesystem.API().Exists(config.File())
			handleErr(err)
			if exists {
				handleErr(filesystem.API().Remove(config.File()))
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", config.File())
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) && !confirm("Delete "+config.File()+"?") {
			return
		}

		handleErr(filesystem.API().Remove(config.File()))
		success("deleted config")
	},
}
