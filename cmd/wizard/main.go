package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Tag     = "untagged"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "wizard",
		Short:        "Clinic wellness assessment wizard",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(patientsCmd())
	rootCmd.AddCommand(questionsCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wizard %s (%s)\n", Version, Tag)
		},
	}
}
