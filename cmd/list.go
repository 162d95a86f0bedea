package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"resuffix.dev/pkg/resuffix/internal/domain"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <dir> <ext>",
		Short: "Preview matching files without renaming",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := m.NormalizeExt(args[1])
			if err != nil {
				return fmt.Errorf("extension: %w", err)
			}

			return workflow.Preview(cmd.Context(), domain.PreviewArgs{
				Root:   m.Path(args[0]),
				Source: source,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
