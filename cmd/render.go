package cmd

import (
	"fmt"
	"os"

	"github.com/biiclasses/bii/color"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/key"
	"github.com/biiclasses/bii/stack"
	"github.com/biiclasses/bii/style"
	"github.com/biiclasses/bii/util"
	"github.com/biiclasses/bii/vector"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.PersistentFlags().IntP("wrap", "w", 0, "Column to wrap at, 0 for the terminal width")
	lo.Must0(viper.BindPFlag(key.RenderWrap, renderCmd.PersistentFlags().Lookup("wrap")))
	renderCmd.PersistentFlags().BoolP("details", "d", false, "Print size and capacity below the rendering")

	renderCmd.AddCommand(renderVectorCmd, renderStackCmd)
	renderCmd.SetOut(os.Stdout)
}

// renderCmd prints containers built from command-line values.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print how a container built from the given values renders",
}

var renderVectorCmd = &cobra.Command{
	Use:     "vector [VALUES...]",
	Short:   "Render a vector holding the values in order",
	Example: "  bii render vector 1 2 3",
	Run: func(cmd *cobra.Command, args []string) {
		v := vector.Of(args...)
		if lo.Must(cmd.Flags().GetBool("reverse")) {
			reversed := vector.New[string]()
			for it := v.ReverseIter(); it.Next(); {
				reversed.AddBack(it.Value())
			}
			v = reversed
		}

		printRendered(cmd, icon.Vector, v.String(),
			fmt.Sprintf("size %d, capacity %d", v.Size(), v.Capacity()))
	},
}

var renderStackCmd = &cobra.Command{
	Use:     "stack [VALUES...]",
	Short:   "Render a stack with the values pushed in order, the last one on top",
	Example: "  bii render stack 1 2 3",
	Run: func(cmd *cobra.Command, args []string) {
		s := stack.Of(args...)
		top := s.Peek().OrElse("none")

		printRendered(cmd, icon.Stack, s.String(),
			fmt.Sprintf("size %d, top %s", s.Size(), top))
	},
}

func init() {
	renderVectorCmd.Flags().BoolP("reverse", "r", false, "Render the values back to front")
}

func printRendered(cmd *cobra.Command, i icon.Icon, rendered, details string) {
	cmd.Println(util.Wrap(fmt.Sprintf("%s %s", style.Fg(color.Cyan)(icon.Get(i)), rendered), viper.GetInt(key.RenderWrap)))

	if lo.Must(cmd.Flags().GetBool("details")) {
		cmd.Println(style.Faint(details))
	}
}
