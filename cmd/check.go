package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/biiclasses/bii/color"
	"github.com/biiclasses/bii/filesystem"
	"github.com/biiclasses/bii/harness"
	"github.com/biiclasses/bii/history"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/key"
	"github.com/biiclasses/bii/log"
	"github.com/biiclasses/bii/style"
	"github.com/biiclasses/bii/tui"
	"github.com/biiclasses/bii/util"
	"github.com/biiclasses/bii/where"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolP("vector", "V", false, "Run the vector suite")
	checkCmd.Flags().BoolP("stack", "S", false, "Run the stack suite")

	checkCmd.Flags().IntP("size", "n", 0, "Number of elements each check fills its containers with")
	lo.Must0(viper.BindPFlag(key.HarnessSize, checkCmd.Flags().Lookup("size")))

	checkCmd.Flags().StringSlice("vector-sections", nil, "Vector sections to run, e.g. A,C,G")
	lo.Must0(viper.BindPFlag(key.HarnessVectorSections, checkCmd.Flags().Lookup("vector-sections")))
	lo.Must0(checkCmd.RegisterFlagCompletionFunc("vector-sections", completionSections(harness.VectorSuite)))

	checkCmd.Flags().StringSlice("stack-sections", nil, "Stack sections to run, e.g. A,C")
	lo.Must0(viper.BindPFlag(key.HarnessStackSections, checkCmd.Flags().Lookup("stack-sections")))
	lo.Must0(checkCmd.RegisterFlagCompletionFunc("stack-sections", completionSections(harness.StackSuite)))

	checkCmd.Flags().BoolP("json", "j", false, "Print the report as JSON instead of a listing")
	checkCmd.Flags().BoolP("save", "s", false, "Save the JSON report to the reports directory")
	checkCmd.Flags().Bool("all", false, "List passed checks too, not only failures")
	checkCmd.Flags().BoolP("tui", "t", false, "Browse the results interactively")
	checkCmd.MarkFlagsMutuallyExclusive("json", "tui")

	checkCmd.SetOut(os.Stdout)
}

func completionSections(suite string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(harness.Sections(suite), func(s lo.Tuple2[string, string], _ int) string {
			return s.A + "\t" + s.B
		}), cobra.ShellCompDirectiveNoFileComp
	}
}

// checkCmd runs the container self-check suites.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the vector and stack self-check suites",
	Long: `Run the vector and stack self-check suites.

Each suite is split into lettered sections (see "bii check sections").
Without --vector or --stack both suites run.`,
	Example: "  bii check -V --vector-sections A,C -n 100",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			runVector = lo.Must(cmd.Flags().GetBool("vector"))
			runStack  = lo.Must(cmd.Flags().GetBool("stack"))
			asJson    = lo.Must(cmd.Flags().GetBool("json"))
			save      = lo.Must(cmd.Flags().GetBool("save"))
			all       = lo.Must(cmd.Flags().GetBool("all"))
			withTUI   = lo.Must(cmd.Flags().GetBool("tui"))
		)

		if !runVector && !runStack {
			runVector, runStack = true, true
		}

		size := viper.GetInt(key.HarnessSize)
		if !cmd.Flags().Changed("size") && !asJson && viper.GetBool(key.HarnessPromptSize) && util.IsInteractive() {
			var err error
			size, err = promptSize(size)
			handleErr(err)
		}

		options := &harness.Options{
			Size:           size,
			Vector:         runVector,
			Stack:          runStack,
			VectorSections: viper.GetStringSlice(key.HarnessVectorSections),
			StackSections:  viper.GetStringSlice(key.HarnessStackSections),
		}

		if withTUI {
			report, err := tui.Run(&tui.Options{Harness: options, Save: saveReport})
			handleErr(err)
			if report != nil {
				recordRun(report)
			}
			if report == nil || !report.Ok() {
				os.Exit(1)
			}
			return
		}

		if !asJson {
			options.OnResult = resultPrinter(cmd, all)
		}

		report, err := harness.Run(options)
		handleErr(err)
		recordRun(report)

		if save {
			path, err := saveReport(report)
			handleErr(err)
			if !asJson {
				cmd.Printf("%s saved report to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
			}
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(report))
		} else {
			printSummary(cmd, report)
		}

		if !report.Ok() {
			os.Exit(1)
		}
	},
}

func promptSize(fallback int) (int, error) {
	input := survey.Input{
		Message: "How many elements should each check use?",
		Default: strconv.Itoa(fallback),
		Help:    "Every container in the suite is filled with this many values. Must be at least 1.",
	}

	var response string
	err := survey.AskOne(&input, &response, survey.WithValidator(func(ans any) error {
		n, err := strconv.Atoi(ans.(string))
		if err != nil || n < 1 {
			return errors.New("enter a whole number of at least 1")
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(response)
}

// resultPrinter returns a callback printing a banner whenever a new section starts,
// followed by failures and, when all is set, passes.
func resultPrinter(cmd *cobra.Command, all bool) func(*harness.Result) {
	var current string
	wrapAt := viper.GetInt(key.RenderWrap)

	return func(r *harness.Result) {
		if id := r.Suite + r.Section; id != current {
			if current != "" {
				cmd.Println()
			}
			current = id

			suiteIcon := lo.Ternary(r.Suite == harness.VectorSuite, icon.Get(icon.Vector), icon.Get(icon.Stack))
			cmd.Println(style.Section(fmt.Sprintf("%s %s %s. %s", suiteIcon, util.Capitalize(r.Suite), r.Section, r.Title)))
		}

		switch {
		case !r.Passed:
			cmd.Printf("  %s %s\n", style.Failed(icon.Get(icon.Fail)+" FAILED"), r.Name)
			cmd.Println(style.Faint(util.Wrap("    "+r.Detail, wrapAt)))
		case all:
			cmd.Printf("  %s %s\n", style.Passed(icon.Get(icon.Success)+" PASSED"), r.Name)
		}
	}
}

func printSummary(cmd *cobra.Command, report *harness.Report) {
	cmd.Println()

	total := report.Passed + report.Failed
	line := fmt.Sprintf("%s with size %d: %d passed, %d failed",
		util.Quantify(total, "check", "checks"), report.Size, report.Passed, report.Failed)

	if report.Ok() {
		cmd.Println(style.Passed(icon.Get(icon.Success) + " " + line))
	} else {
		cmd.Println(style.Failed(icon.Get(icon.Fail) + " " + line))
	}
}

func recordRun(report *harness.Report) {
	if err := history.Save(report, time.Now()); err != nil {
		log.Warnf("recording check run: %v", err)
	}
}

func saveReport(report *harness.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(where.Reports(), fmt.Sprintf("check-%s.json", time.Now().Format("20060102-150405")))
	return path, filesystem.API().WriteFile(path, data, os.ModePerm)
}

func init() {
	checkCmd.AddCommand(checkSectionsCmd)
	checkSectionsCmd.SetOut(os.Stdout)
}

// checkSectionsCmd lists the sections of both suites.
var checkSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the sections of each self-check suite",
	Run: func(cmd *cobra.Command, args []string) {
		for i, suite := range []string{harness.VectorSuite, harness.StackSuite} {
			sections := harness.Sections(suite)
			width := util.Max(lo.Map(sections, func(s lo.Tuple2[string, string], _ int) int { return len(s.A) })...)

			cmd.Println(style.Title(util.Capitalize(suite)))
			for _, s := range sections {
				cmd.Printf("  %s  %s\n", style.Bold(fmt.Sprintf("%-*s", width, s.A)), s.B)
			}

			if i == 0 {
				cmd.Println()
			}
		}
	},
}

func init() {
	checkCmd.AddCommand(checkSchemaCmd)
}

// checkSchemaCmd prints the JSON Schema of the report produced by check --json.
var checkSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the check report",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&harness.Report{})))
	},
}

func init() {
	checkCmd.AddCommand(checkHistoryCmd)
	checkHistoryCmd.Flags().IntP("limit", "l", 10, "Number of most recent runs to show")
	checkHistoryCmd.Flags().BoolP("json", "j", false, "Print the runs as JSON")
	checkHistoryCmd.SetOut(os.Stdout)
}

// checkHistoryCmd lists recent check runs.
var checkHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent self-check runs",
	Run: func(cmd *cobra.Command, args []string) {
		runs, err := history.Get()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(runs) > limit {
			runs = runs[len(runs)-limit:]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(runs))
			return
		}

		if len(runs) == 0 {
			cmd.Println(style.Faint("No runs recorded yet"))
			return
		}

		for i := len(runs) - 1; i >= 0; i-- {
			run := runs[i]
			verdict := lo.Ternary(run.Ok(), style.Passed(icon.Get(icon.Success)), style.Failed(icon.Get(icon.Fail)))
			cmd.Printf("%s %s  %s  size %d  %d passed, %d failed\n",
				verdict,
				style.Faint(run.At.Local().Format(time.DateTime)),
				strings.Join(run.Suites, "+"),
				run.Size, run.Passed, run.Failed,
			)

			for _, failure := range run.Failures {
				cmd.Printf("    %s\n", style.Fg(color.Red)(failure))
			}
		}
	},
}
