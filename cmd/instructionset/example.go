package instructionset

import (
	"fmt"
	"os"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/spf13/cobra"
)

// Returns a two instruction set: a no-op and a register move
func ExampleSet() *isa.InstructionSet {
	set := isa.NewInstructionSet("example")

	set.Append("nop", "Nothing operation")
	set.Append("move", "Move an integer to an register.",
		isa.NewOperand("Dest", "Mod", "8-Bits", "Register", "register"),
		isa.NewOperand("Source", "Mod", "8-Bits", "Integer", "integer"))

	return set
}

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write a small example instruction set",
	Long: `Writes an instruction set with a nop and a move instruction to the given file
(example.json by default). Use a .yaml or .yml extension to get a YAML document.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "example.json"
		if len(args) > 0 {
			path = args[0]
		}

		if err := ExampleSet().Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Example instruction set written to %v\n", path)
	},
}
