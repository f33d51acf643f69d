package isa

import (
	"log/slog"
	"slices"

	"github.com/Manu343726/iscreate/pkg/utils"
)

// Opcode of an instruction. Unique within an instruction set
type OpCode int64

// A named set of instructions indexed by opcode.
//
// Instructions are kept in ascending opcode order: code generation relies on
// that order to detect contiguous opcodes, to find the last entry of a
// declaration and to discover operand vocabularies. An InstructionSet is not
// safe for concurrent use.
type InstructionSet struct {
	name         string
	instructions map[OpCode]Instruction
	// Ascending, same keys as instructions
	opcodes []OpCode
	logger  *slog.Logger
}

// Configures an InstructionSet at construction time
type Option func(*InstructionSet)

// Sets the logger used to report load and save diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *InstructionSet) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Creates an empty instruction set
func NewInstructionSet(name string, options ...Option) *InstructionSet {
	s := &InstructionSet{
		name:         name,
		instructions: make(map[OpCode]Instruction),
		logger:       slog.Default(),
	}

	for _, option := range options {
		option(s)
	}

	s.logger = s.logger.With("instruction_set", name)
	return s
}

// Name of the instruction set
func (s *InstructionSet) Name() string {
	return s.name
}

// Number of instructions in the set
func (s *InstructionSet) Len() int {
	return len(s.opcodes)
}

// Returns true if the set has no instructions
func (s *InstructionSet) Empty() bool {
	return len(s.opcodes) == 0
}

// Adds an instruction with the given opcode. If the opcode is already taken the
// set is left untouched (the first instruction added with an opcode wins) and
// false is returned
func (s *InstructionSet) Add(op OpCode, mnemonic, hint string, operands ...Operand) bool {
	if _, exists := s.instructions[op]; exists {
		return false
	}

	instruction := Instruction{
		Mnemonic: mnemonic,
		Hint:     hint,
	}

	if len(operands) > 0 {
		instruction.Operands = utils.Clone(operands)
	}

	index, _ := slices.BinarySearch(s.opcodes, op)
	s.opcodes = slices.Insert(s.opcodes, index, op)
	s.instructions[op] = instruction
	return true
}

// Returns the opcode the next Append call would use: 0 for an empty set, the
// highest opcode plus one otherwise
func (s *InstructionSet) NextOpCode() OpCode {
	if max, ok := s.MaxOpCode(); ok {
		return max + 1
	}

	return 0
}

// Adds an instruction after the highest opcode of the set and returns the opcode assigned to it
func (s *InstructionSet) Append(mnemonic, hint string, operands ...Operand) OpCode {
	op := s.NextOpCode()
	s.Add(op, mnemonic, hint, operands...)
	return op
}

// Removes every instruction
func (s *InstructionSet) Clear() {
	if s.Empty() {
		return
	}

	clear(s.instructions)
	s.opcodes = s.opcodes[:0]
}

// Returns a copy of all opcode -> instruction entries. Changes to the returned
// map and instructions do not affect the set
func (s *InstructionSet) Data() map[OpCode]Instruction {
	data := make(map[OpCode]Instruction, len(s.instructions))

	for op, instruction := range s.instructions {
		data[op] = instruction.Clone()
	}

	return data
}

// Returns the instruction with the given opcode
func (s *InstructionSet) Instruction(op OpCode) (Instruction, bool) {
	instruction, ok := s.instructions[op]
	return instruction.Clone(), ok
}

// Returns all opcodes in ascending order
func (s *InstructionSet) OpCodes() []OpCode {
	return slices.Clone(s.opcodes)
}

// Returns the highest opcode of the set. The second result is false if the set is empty
func (s *InstructionSet) MaxOpCode() (OpCode, bool) {
	if s.Empty() {
		return 0, false
	}

	return s.opcodes[len(s.opcodes)-1], true
}

// Returns true if the opcodes of the set are exactly 0, 1, ..., Len()-1
func (s *InstructionSet) Contiguous() bool {
	for i, op := range s.opcodes {
		if op != OpCode(i) {
			return false
		}
	}

	return true
}

// Returns (opcode, instruction) entries in ascending opcode order
func (s *InstructionSet) Entries() []utils.Pair[OpCode, Instruction] {
	return utils.Map(s.opcodes, func(op OpCode) utils.Pair[OpCode, Instruction] {
		return utils.MakePair(op, s.instructions[op].Clone())
	})
}
