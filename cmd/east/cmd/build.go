package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [sample]",
	Short: "List the bundled samples, or construct one and report its AST shape",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, s := range samples {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.name, s.description)
		}
		return nil
	}

	s, err := findSample(args[0])
	if err != nil {
		return err
	}
	root := s.build()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: built ok, root node %T\n", s.name, root)
	return nil
}
