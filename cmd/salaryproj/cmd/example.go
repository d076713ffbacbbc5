package cmd

import (
	"fmt"

	"github.com/incomehelper/salary-projector/internal/config"
	"github.com/spf13/cobra"
)

var exampleOutput string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.NewInputParser().WriteExampleConfiguration(exampleOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", exampleOutput)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOutput, "output", "o", "salaryproj.yaml", "output file")
	rootCmd.AddCommand(exampleCmd)
}
