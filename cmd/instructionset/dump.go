package instructionset

import (
	"fmt"
	"io"
	"os"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/Manu343726/iscreate/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpRaw bool

var dumpCmd = &cobra.Command{
	Use:   "dump file",
	Short: "Print the contents of an instruction set file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := loadSet(args[0], false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if dumpRaw {
			err = rawDump(cmd.OutOrStdout(), set)
		} else {
			err = isa.Dump(cmd.OutOrStdout(), set)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false, "Dump the in-memory instruction values instead of a listing")
}

var rawConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dumps every instruction value in opcode order
func rawDump(w io.Writer, set *isa.InstructionSet) error {
	data := set.Data()

	for _, op := range utils.SortedKeys(data) {
		if _, err := fmt.Fprintf(w, "0x%v: ", utils.FormatHex(int64(op))); err != nil {
			return err
		}

		rawConfig.Fdump(w, data[op])
	}

	return nil
}
