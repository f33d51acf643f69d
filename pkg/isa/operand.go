package isa

import "fmt"

// Describes one operand slot of an instruction. None of the fields is checked
// against a closed vocabulary: the encoding and kind vocabularies of an
// instruction set are derived from the operands it actually contains
type Operand struct {
	// Operand name, e.g. "Dest"
	Name string
	// Operand encoding class label, e.g. "Mod"
	Encoding string
	// Size class label, e.g. "8-Bits"
	Size string
	// Free text description
	Hint string
	// Operand kind class label, e.g. "register"
	Kind string
}

// Initializes an operand descriptor
func NewOperand(name, encoding, size, hint, kind string) Operand {
	return Operand{
		Name:     name,
		Encoding: encoding,
		Size:     size,
		Hint:     hint,
		Kind:     kind,
	}
}

// Returns the compact name(size) form used in opcode comments
func (o Operand) Summary() string {
	return o.Name + "(" + o.Size + ")"
}

// Returns the name(hint) form used in descriptor tables
func (o Operand) Description() string {
	return o.Name + "(" + o.Hint + ")"
}

func (o Operand) String() string {
	return fmt.Sprintf("%v <encoding: %v, size: %v, kind: %v>", o.Name, o.Encoding, o.Size, o.Kind)
}
