// Package cmd implements the east command-line inspector: a small
// demo/debugging harness that builds, lowers, and analyzes the sample
// programs in samples.go end to end. It is grounded on the teacher's
// cobra wiring (cmd/dwscript/cmd/root.go, compile.go, version.go),
// carried over without the lexer/parser/bytecode stages this module
// doesn't have.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "east",
	Short:         "Inspect East's type system, IR lowering, and semantic analyzer",
	Long:          "east builds, lowers, and analyzes the sample programs bundled with this module, printing the resulting types, diagnostics, and IR.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("east version %s (commit %s, built %s)\n", version, gitCommit, buildDate))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the recursion trail and a structured dump alongside results")
}

// Execute runs the root command, printing any error to stderr and
// setting a non-zero exit code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "east: %v\n", err)
	os.Exit(1)
}
