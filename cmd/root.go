// Package cmd provides the root command and CLI setup for resuffix.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"resuffix.dev/pkg/resuffix/internal/adapter"
	"resuffix.dev/pkg/resuffix/internal/controller"
	"resuffix.dev/pkg/resuffix/internal/domain"
)

var fsAdapter adapter.RenameFS
var reportStore adapter.ReportStore
var streamer domain.CandidateStreamer
var renamer domain.Renamer
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that write
// run reports.
var reportsOutputDirFlag string

// noReportFlag disables report persistence when set.
var noReportFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalRenameFS()
	reportStore = adapter.NewReportStore()
	streamer = domain.NewCandidateStreamer(fsAdapter)
	renamer = domain.NewRenamer(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, streamer, renamer)
}

const rootLongDescription = `Resuffix renames the extension of every file under a directory tree,
replacing a source extension with a target extension. Matching is
case-insensitive, and renames stay safe on filesystems that fold case:
no existing file is ever overwritten, and case-only renames go through
a unique temporary name so the filesystem never sees an ambiguous
same-name-different-case rename.`

const runLongDescription = `Rename every file under <dir> whose extension matches <old-ext>
(case-insensitively) so it carries <new-ext> instead. Directories are
processed bottom-up and each listing is read once, so renames never
disturb a traversal in progress. Prints a summary and persists it as a
YAML report unless --no-report is given.`

const listLongDescription = `Enumerate files under <dir> whose extension matches <ext>
(case-insensitively) without renaming anything, and print per-directory
candidate counts.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resuffix",
		Short: "Batch file extension renamer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noReportFlag, noReportFlagName, viper.GetBool(noReportFlagName), "do not persist a report for this run")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noReportFlagName), noReportFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (defaults to "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
