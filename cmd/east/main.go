// Command east is a small inspector CLI over the East core pipeline:
// types, AST, IR lowering, and semantic analysis. See cmd/east/cmd for
// its subcommands.
package main

import "github.com/elaraai/east-sub001/cmd/east/cmd"

func main() {
	cmd.Execute()
}
