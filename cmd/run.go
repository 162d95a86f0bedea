package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resuffix.dev/pkg/resuffix/internal/domain"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <dir> <old-ext> <new-ext>",
		Short: "Rename matching files under a directory",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := m.NormalizeExt(args[1])
			if err != nil {
				return fmt.Errorf("source extension: %w", err)
			}

			target, err := m.NormalizeExt(args[2])
			if err != nil {
				return fmt.Errorf("target extension: %w", err)
			}

			_, err = workflow.Run(cmd.Context(), domain.RunArgs{
				Root:       m.Path(args[0]),
				Source:     source,
				Target:     target,
				Reports:    m.Path(viper.GetString(outputFlagName)),
				SaveReport: !viper.GetBool(noReportFlagName),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
