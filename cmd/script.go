package cmd

import (
	"os"

	"github.com/biiclasses/bii/key"
	"github.com/biiclasses/bii/script"
	"github.com/biiclasses/bii/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().Bool("preload", false, "Preload the extended Lua libraries")
	lo.Must0(viper.BindPFlag(key.ScriptPreloadLibs, scriptCmd.Flags().Lookup("preload")))

	scriptCmd.SetOut(os.Stdout)
}

// scriptCmd runs a Lua script with the vector and stack modules available.
var scriptCmd = &cobra.Command{
	Use:   "script FILE",
	Short: "Run a Lua script against the vector and stack modules",
	Long: `Run a Lua script against the vector and stack modules.

A bare name such as "demo" is looked up as demo.lua in the scripts directory
(see "bii where --scripts").`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return script.Available(where.Scripts()), cobra.ShellCompDirectiveDefault
	},
	Run: func(cmd *cobra.Command, args []string) {
		path, err := script.Resolve(args[0], where.Scripts())
		handleErr(err)

		options := &script.Options{
			Out:         cmd.OutOrStdout(),
			PreloadLibs: viper.GetBool(key.ScriptPreloadLibs),
		}
		handleErr(script.Run(path, options))
	},
}
