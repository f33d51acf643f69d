package isa

import (
	"fmt"

	"github.com/Manu343726/iscreate/pkg/utils"
)

// An instruction of the set. Operand order is operand position
type Instruction struct {
	Mnemonic string
	Hint     string
	Operands []Operand
}

// Returns a copy of the instruction that shares no memory with the original
func (i Instruction) Clone() Instruction {
	i.Operands = utils.Clone(i.Operands)
	return i
}

// Returns the encoding labels of the operands, in operand order
func (i Instruction) Encodings() []string {
	return utils.Map(i.Operands, func(o Operand) string { return o.Encoding })
}

// Returns the kind labels of the operands, in operand order
func (i Instruction) Kinds() []string {
	return utils.Map(i.Operands, func(o Operand) string { return o.Kind })
}

func (i Instruction) String() string {
	return fmt.Sprintf("%v(%v)", i.Mnemonic, utils.FormatSlice(utils.Map(i.Operands, Operand.Summary), ", "))
}
