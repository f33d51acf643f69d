package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_DuplicateOpCodeIsIgnored(t *testing.T) {
	s := NewInstructionSet("test")

	assert.True(t, s.Add(5, "a", ""))
	assert.False(t, s.Add(5, "b", "", NewOperand("x", "Imm", "8", "", "integer")))

	instruction, ok := s.Instruction(5)
	require.True(t, ok)
	assert.Equal(t, "a", instruction.Mnemonic)
	assert.Empty(t, instruction.Operands)
	assert.Equal(t, 1, s.Len())
}

func TestAppend_NumbersFromZero(t *testing.T) {
	s := NewInstructionSet("test")

	for i, mnemonic := range []string{"nop", "mov", "add", "sub"} {
		assert.Equal(t, OpCode(i), s.Append(mnemonic, ""))
	}

	assert.Equal(t, []OpCode{0, 1, 2, 3}, s.OpCodes())
	assert.True(t, s.Contiguous())
}

func TestAppend_FollowsHighestOpCode(t *testing.T) {
	s := NewInstructionSet("test")

	s.Add(10, "jmp", "")
	s.Add(2, "mov", "")

	assert.Equal(t, OpCode(11), s.Append("ret", ""))
	assert.Equal(t, []OpCode{2, 10, 11}, s.OpCodes())
	assert.False(t, s.Contiguous())
}

func TestAdd_KeepsAscendingOrder(t *testing.T) {
	s := NewInstructionSet("test")

	s.Add(3, "c", "")
	s.Add(-1, "neg", "")
	s.Add(1, "a", "")
	s.Add(2, "b", "")

	assert.Equal(t, []OpCode{-1, 1, 2, 3}, s.OpCodes())

	max, ok := s.MaxOpCode()
	require.True(t, ok)
	assert.Equal(t, OpCode(3), max)

	entries := s.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "neg", entries[0].Second.Mnemonic)
	assert.Equal(t, "c", entries[3].Second.Mnemonic)
}

func TestClear(t *testing.T) {
	s := NewInstructionSet("test")
	s.Clear()
	assert.True(t, s.Empty())

	s.Append("nop", "")
	s.Append("mov", "")
	s.Clear()

	assert.True(t, s.Empty())
	assert.Empty(t, s.Data())
	_, ok := s.MaxOpCode()
	assert.False(t, ok)
	assert.Equal(t, OpCode(0), s.Append("nop", ""))
}

func TestData_IsIndependentCopy(t *testing.T) {
	s := NewInstructionSet("test")
	s.Add(1, "move", "", NewOperand("Dest", "Mod", "8-Bits", "Register", "register"))

	data := s.Data()
	instruction := data[1]
	instruction.Operands[0].Name = "Changed"
	data[1] = instruction
	data[7] = Instruction{Mnemonic: "extra"}

	original, ok := s.Instruction(1)
	require.True(t, ok)
	assert.Equal(t, "Dest", original.Operands[0].Name)
	assert.Equal(t, 1, s.Len())
}

func TestAdd_CopiesOperands(t *testing.T) {
	s := NewInstructionSet("test")
	operands := []Operand{NewOperand("Dest", "Mod", "8-Bits", "Register", "register")}

	s.Add(0, "inc", "", operands...)
	operands[0].Name = "Changed"

	instruction, _ := s.Instruction(0)
	assert.Equal(t, "Dest", instruction.Operands[0].Name)
}

func TestInstruction_Helpers(t *testing.T) {
	instruction := Instruction{
		Mnemonic: "move",
		Operands: []Operand{
			NewOperand("Dest", "Mod", "8-Bits", "Register", "register"),
			NewOperand("Source", "Imm", "16-Bits", "Integer", "integer"),
		},
	}

	assert.Equal(t, []string{"Mod", "Imm"}, instruction.Encodings())
	assert.Equal(t, []string{"register", "integer"}, instruction.Kinds())
	assert.Equal(t, "move(Dest(8-Bits), Source(16-Bits))", instruction.String())
	assert.Equal(t, "Source(Integer)", instruction.Operands[1].Description())
}
