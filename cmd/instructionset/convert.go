package instructionset

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert input output",
	Short: "Re-encode an instruction set file",
	Long: `Loads an instruction set file and saves it again, picking both formats from the file
extensions: .yaml and .yml are YAML, anything else is JSON.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := convert(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func convert(input, output string) error {
	set, err := loadSet(input, false)
	if err != nil {
		return err
	}

	return set.Save(output)
}
