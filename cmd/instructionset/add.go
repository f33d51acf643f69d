package instructionset

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/Manu343726/iscreate/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	addOpCode   int64
	addHint     string
	addOperands []string
)

var addCmd = &cobra.Command{
	Use:   "add file mnemonic",
	Short: "Add an instruction to an instruction set file",
	Long: `Loads the instruction set file (a missing file starts an empty set), adds the instruction
and saves the file back.

Without --opcode the instruction takes the opcode after the highest one in the set.
Operands are given in order with repeated --operand flags, each one as

  name:encoding:size:hint:kind

Example:
  iscreate isa add example.json move --hint "Move an integer to an register." \
    --operand Dest:Mod:8-Bits:Register:register \
    --operand Source:Mod:8-Bits:Integer:integer`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var opcode *isa.OpCode
		if cmd.Flags().Changed("opcode") {
			op := isa.OpCode(addOpCode)
			opcode = &op
		}

		op, err := addInstruction(args[0], args[1], opcode, addHint, addOperands)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%v added with opcode 0x%v\n", args[1], utils.FormatHex(int64(op)))
	},
}

func init() {
	addCmd.Flags().Int64Var(&addOpCode, "opcode", 0, "Instruction opcode. Defaults to the next free one")
	addCmd.Flags().StringVar(&addHint, "hint", "", "Instruction description")
	addCmd.Flags().StringArrayVar(&addOperands, "operand", nil, "Operand as name:encoding:size:hint:kind (repeatable)")
}

// Parses an operand given as name:encoding:size:hint:kind. The hint is the
// only field that may be empty
func parseOperand(text string) (isa.Operand, error) {
	fields := strings.SplitN(text, ":", 5)
	if len(fields) != 5 {
		return isa.Operand{}, fmt.Errorf("invalid operand '%v': expected name:encoding:size:hint:kind", text)
	}

	for i, field := range fields {
		if field == "" && i != 3 {
			return isa.Operand{}, fmt.Errorf("invalid operand '%v': empty %v", text, []string{"name", "encoding", "size", "hint", "kind"}[i])
		}
	}

	return isa.NewOperand(fields[0], fields[1], fields[2], fields[3], fields[4]), nil
}

// Adds an instruction to the set stored in path and saves it back. A nil
// opcode picks the next free one
func addInstruction(path, mnemonic string, opcode *isa.OpCode, hint string, operandSpecs []string) (isa.OpCode, error) {
	operands := make([]isa.Operand, 0, len(operandSpecs))

	for _, text := range operandSpecs {
		operand, err := parseOperand(text)
		if err != nil {
			return 0, err
		}

		operands = append(operands, operand)
	}

	set, err := loadSet(path, true)
	if err != nil {
		return 0, err
	}

	var op isa.OpCode

	if opcode != nil {
		op = *opcode

		if !set.Add(op, mnemonic, hint, operands...) {
			existing, _ := set.Instruction(op)
			return 0, fmt.Errorf("opcode 0x%v is already taken by %v", utils.FormatHex(int64(op)), existing.Mnemonic)
		}
	} else {
		op = set.Append(mnemonic, hint, operands...)
	}

	return op, set.Save(path)
}
