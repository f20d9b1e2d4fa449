package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/biiclasses/bii/color"
	"github.com/biiclasses/bii/config"
	"github.com/biiclasses/bii/filesystem"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// configFields resolves keys to fields sorted by key, or every field when keys is empty.
func configFields(keys []string) []config.Field {
	fields := lo.Values(config.Default)
	if len(keys) > 0 {
		fields = make([]config.Field, 0, len(keys))
		for _, k := range keys {
			field, err := config.Lookup(k)
			handleErr(err)
			fields = append(fields, field)
		}
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}

func printDone(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change bii settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().BoolP("json", "j", false, "output as json")
	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:               "info [KEY...]",
	Short:             "Describe settings, their defaults and current values",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := configFields(args)

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		cmd.Print(strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE...",
	Short: "Change a setting and save it to the config file",
	Long: `Change a setting and save it to the config file.
List settings take several values, either as separate arguments or comma separated.`,
	Example:           "  bii config set harness.size 64\n  bii config set harness.vector_sections A,C,E",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := config.Set(args[0], args[1:])
		handleErr(err)

		printDone("set %s to %s", style.Fg(color.Purple)(args[0]), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().BoolP("json", "j", false, "output as json")
	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get [KEY...]",
	Short:             "Print current values, every setting when no key is given",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := configFields(args)

		if lo.Must(cmd.Flags().GetBool("json")) {
			values := lo.SliceToMap(fields, func(f config.Field) (string, any) {
				return f.Key, viper.Get(f.Key)
			})
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(values))
			return
		}

		if len(fields) == 1 {
			cmd.Println(viper.Get(fields[0].Key))
			return
		}

		for _, f := range fields {
			cmd.Printf("%s = %v\n", style.Fg(color.Purple)(f.Key), viper.Get(f.Key))
		}
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "replace an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Path()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		printDone("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "reset every setting")
}

var configResetCmd = &cobra.Command{
	Use:               "reset KEY... | --all",
	Short:             "Restore settings to their defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		switch {
		case all && len(args) > 0:
			handleErr(errors.New("give keys or --all, not both"))
		case !all && len(args) == 0:
			handleErr(errors.New("give at least one key or --all"))
		}

		handleErr(config.Reset(args...))

		if all {
			printDone("reset every setting")
			return
		}

		for _, k := range args {
			printDone("reset %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(config.Default[k].Value)))
		}
	},
}
