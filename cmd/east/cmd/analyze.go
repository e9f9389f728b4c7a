package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/platform"
	"github.com/elaraai/east-sub001/internal/semantic"
)

var (
	analyzeQuery        string
	analyzePatchPath    string
	analyzePatchValue   string
	analyzePlatformFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <sample>",
	Short: "Lower and semantically analyze a sample, reporting its result or diagnostic",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeQuery, "query", "", "gjson path to extract from the enriched IR's debug dump")
	analyzeCmd.Flags().StringVar(&analyzePatchPath, "patch", "", "sjson path to overwrite in the debug dump before printing it (requires --patch-value)")
	analyzeCmd.Flags().StringVar(&analyzePatchValue, "patch-value", "", "replacement value for --patch")
	analyzeCmd.Flags().StringVar(&analyzePlatformFile, "platform-config", "", "YAML file of platform function signatures (internal/platform.LoadYAML); defaults to a small built-in registry")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := findSample(args[0])
	if err != nil {
		return err
	}

	platformTable := defaultPlatform()
	if analyzePlatformFile != "" {
		f, err := os.Open(analyzePlatformFile)
		if err != nil {
			return fmt.Errorf("opening platform config: %w", err)
		}
		defer f.Close()
		platformTable, err = platform.LoadYAML(f)
		if err != nil {
			return fmt.Errorf("loading platform config: %w", err)
		}
	}

	root := ir.Lower(s.build())
	analyzed, err := semantic.New(platformTable, defaultBuiltins()).Analyze(root)
	if err != nil {
		return reportDiagnostic(cmd, err)
	}

	stats := ir.CountNodes(analyzed)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: ok, type %s, %s nodes (%s async)\n",
		s.name, analyzed.NodeType(), humanize.Comma(int64(stats.Nodes)), humanize.Comma(int64(stats.Async)))

	if verbose {
		fmt.Fprintln(out, "--- stats ---")
		fmt.Fprintf(out, "%# v\n", pretty.Formatter(stats))
	}

	if analyzeQuery != "" || analyzePatchPath != "" {
		return printDump(out, analyzed)
	}
	return nil
}

func printDump(out io.Writer, analyzed ir.Node) error {
	doc, err := ir.DebugDump(analyzed)
	if err != nil {
		return fmt.Errorf("dumping IR: %w", err)
	}
	if analyzePatchPath != "" {
		patched, err := ir.Patch(doc, analyzePatchPath, analyzePatchValue)
		if err != nil {
			return fmt.Errorf("patching %q: %w", analyzePatchPath, err)
		}
		doc = patched
	}
	if analyzeQuery != "" {
		fmt.Fprintln(out, ir.Query(doc, analyzeQuery))
		return nil
	}
	_, err = out.Write(append(doc, '\n'))
	return err
}

func reportDiagnostic(cmd *cobra.Command, err error) error {
	diag, ok := err.(*errors.Diagnostic)
	if !ok {
		return err
	}
	color := isatty.IsTerminal(os.Stdout.Fd())
	if verbose {
		fmt.Fprintln(cmd.OutOrStdout(), diag.FormatVerbose(color))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), diag.Format(color))
	}
	// The diagnostic was printed, not silently swallowed; return it too so
	// the process exits non-zero, matching the teacher's compile command.
	return fmt.Errorf("analysis failed: %s", diag.Kind)
}
