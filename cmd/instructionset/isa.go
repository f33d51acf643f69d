package instructionset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/spf13/cobra"
)

// IsaCmd represents the isa command
var IsaCmd = &cobra.Command{
	Use:   "isa",
	Short: "Create, edit and inspect instruction set files",
}

func init() {
	IsaCmd.AddCommand(exampleCmd, addCmd, dumpCmd, convertCmd, browseCmd)
}

// Loads an instruction set file. If allowMissing is set a file that does not
// exist yields an empty set named after it
func loadSet(path string, allowMissing bool) (*isa.InstructionSet, error) {
	if allowMissing {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return isa.NewInstructionSet(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))), nil
		}
	}

	return isa.LoadFile(path)
}
