package codegen

import (
	"strings"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/Manu343726/iscreate/pkg/utils"
	"github.com/samber/lo"
)

// Data passed to the "enum" templates
type enumView struct {
	Name    string
	Members []enumMember
}

type enumMember struct {
	Name string
	// If true the member is declared with an explicit value
	Explicit bool
	Value    int64
	// Comment text, without comment delimiters. Empty means no comment
	Comment string
	Last    bool
}

// Data passed to the "labels" and "descriptors" templates
type tableView struct {
	// Declared struct and table names
	Struct string
	Table  string
	// Struct member holding the per operand values
	Member string
	// Enum the per operand values belong to
	Enum string
	// Largest number of operands of an instruction, at least 1. Sizes C arrays
	Arity int
	Rows  []tableRow
}

type tableRow struct {
	Name     string
	Mnemonic string
	Hint     string
	Hex      string
	// One value per operand, in operand order
	Labels []string
	Last   bool
}

// Returns the enum constant name of an instruction
func (g *Generator) opcodeName(mnemonic string) string {
	return g.identifier("OP_" + utils.AsciiUpper(mnemonic))
}

// Builds the comment attached to an opcode enum member: hex opcode, hint and operands
func opcodeComment(op isa.OpCode, instruction isa.Instruction) string {
	var comment strings.Builder

	comment.WriteString("(" + utils.FormatHex(int64(op)) + ")")

	if instruction.Hint != "" {
		comment.WriteString(" | " + instruction.Hint)
	}

	if len(instruction.Operands) > 0 {
		comment.WriteString(" | ")
		comment.WriteString(utils.FormatSlice(utils.Map(instruction.Operands, isa.Operand.Summary), ", "))
	}

	return comment.String()
}

func (g *Generator) opcodesView(set *isa.InstructionSet) enumView {
	contiguous := set.Contiguous()
	last, _ := set.MaxOpCode()

	return enumView{
		Name: "opcodes",
		Members: utils.Map(set.Entries(), func(entry utils.Pair[isa.OpCode, isa.Instruction]) enumMember {
			op, instruction := entry.Decompose()

			return enumMember{
				Name:     g.opcodeName(instruction.Mnemonic),
				Explicit: !contiguous,
				Value:    int64(op),
				Comment:  opcodeComment(op, instruction),
				Last:     op == last,
			}
		}),
	}
}

// Collects the distinct labels returned by the given function for all
// operands, in opcode then operand order, keeping the first occurrence
func vocabulary(set *isa.InstructionSet, labels func(isa.Instruction) []string) []string {
	return lo.Uniq(lo.FlatMap(set.Entries(), func(entry utils.Pair[isa.OpCode, isa.Instruction], _ int) []string {
		return labels(entry.Second)
	}))
}

func (g *Generator) vocabularyView(name string, set *isa.InstructionSet, labels func(isa.Instruction) []string) enumView {
	words := vocabulary(set, g.identifiers(labels))

	return enumView{
		Name: name,
		Members: utils.Map(utils.Indices(len(words)), func(i int) enumMember {
			return enumMember{
				Name: words[i],
				Last: i == len(words)-1,
			}
		}),
	}
}

func arity(set *isa.InstructionSet) int {
	counts := utils.Map(set.Entries(), func(entry utils.Pair[isa.OpCode, isa.Instruction]) int {
		return len(entry.Second.Operands)
	})

	return max(1, utils.MaxOr(counts, 0))
}

func (g *Generator) tableView(set *isa.InstructionSet, view tableView, labels func(isa.Instruction) []string) tableView {
	last, _ := set.MaxOpCode()

	view.Arity = arity(set)
	view.Rows = utils.Map(set.Entries(), func(entry utils.Pair[isa.OpCode, isa.Instruction]) tableRow {
		op, instruction := entry.Decompose()

		return tableRow{
			Name:     g.opcodeName(instruction.Mnemonic),
			Mnemonic: instruction.Mnemonic,
			Hint:     instruction.Hint,
			Hex:      utils.FormatHex(int64(op)),
			Labels:   labels(instruction),
			Last:     op == last,
		}
	})

	return view
}

// Identifier-valued labels, passed through the generator identifier policy
func (g *Generator) identifiers(labels func(isa.Instruction) []string) func(isa.Instruction) []string {
	return func(instruction isa.Instruction) []string {
		return utils.Map(labels(instruction), g.identifier)
	}
}

func operandDescriptions(instruction isa.Instruction) []string {
	return utils.Map(instruction.Operands, isa.Operand.Description)
}
