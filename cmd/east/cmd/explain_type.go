package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elaraai/east-sub001/internal/types"
)

// namedTypes is a small curated catalogue of primitive, container,
// struct, variant, ref and function types, for "east explain-type" to
// print without needing a sample program. It has no Recursive type.
var namedTypes = map[string]types.Type{
	"integer":       types.Integer,
	"string-array":  types.NewArray(types.String),
	"int-set":       types.NewSet(types.Integer),
	"string-to-int": types.NewDict(types.String, types.Integer),
	"point":         types.NewStruct(types.Field{Name: "x", Type: types.Float}, types.Field{Name: "y", Type: types.Float}),
	"result":        types.NewVariant(types.Case{Name: "Ok", Type: types.Integer}, types.Case{Name: "Err", Type: types.String}),
	"int-ref":       types.NewRef(types.Integer),
	"int-to-int":    types.NewFunction(types.Integer, types.Integer),
	"async-fetch":   types.NewAsyncFunction(types.String, types.String),
}

var explainTypeCmd = &cobra.Command{
	Use:   "explain-type [name]",
	Short: "Print a catalogue of sample types, or one named type's pretty-printed form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplainType,
}

func init() {
	rootCmd.AddCommand(explainTypeCmd)
}

func runExplainType(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range []string{"integer", "string-array", "int-set", "string-to-int", "point", "result", "int-ref", "int-to-int", "async-fetch"} {
			fmt.Fprintf(out, "%-15s %s\n", name, namedTypes[name].String())
		}
		return nil
	}

	t, ok := namedTypes[args[0]]
	if !ok {
		return fmt.Errorf("unknown type %q", args[0])
	}
	fmt.Fprintf(out, "%s\nkind: %s\n", t.String(), t.Kind())
	return nil
}
