package codegen

import (
	"fmt"
	"strings"

	"github.com/Manu343726/iscreate/pkg/utils"
)

// One of the declarations the generator can emit
type Fragment uint8

const (
	Fragment_OpCodesEnum Fragment = iota
	Fragment_OperandEncodingsEnum
	Fragment_OperandKindsEnum
	Fragment_EncodingTable
	Fragment_KindTable
	Fragment_DescriptorTable
)

// All fragments, in the order GenerateAll emits them by default
var Fragments = []Fragment{
	Fragment_OpCodesEnum,
	Fragment_OperandEncodingsEnum,
	Fragment_OperandKindsEnum,
	Fragment_EncodingTable,
	Fragment_KindTable,
	Fragment_DescriptorTable,
}

// Returns the name of the declared symbol, which is also the name used to select the fragment
func (f Fragment) String() string {
	switch f {
	case Fragment_OpCodesEnum:
		return "opcodes"
	case Fragment_OperandEncodingsEnum:
		return "operand_encoding"
	case Fragment_OperandKindsEnum:
		return "operand_kind"
	case Fragment_EncodingTable:
		return "opencodings"
	case Fragment_KindTable:
		return "opkinds"
	case Fragment_DescriptorTable:
		return "opdescriptors"
	}

	panic("unreachable")
}

// Short description of the fragment, for help texts
func (f Fragment) Description() string {
	switch f {
	case Fragment_OpCodesEnum:
		return "enum with one constant per instruction"
	case Fragment_OperandEncodingsEnum:
		return "enum with every operand encoding in use"
	case Fragment_OperandKindsEnum:
		return "enum with every operand kind in use"
	case Fragment_EncodingTable:
		return "opcode -> operand encodings table"
	case Fragment_KindTable:
		return "opcode -> operand kinds table"
	case Fragment_DescriptorTable:
		return "opcode -> names, mnemonic, hint and operand descriptions table"
	}

	panic("unreachable")
}

// Parses a fragment name (See [Fragment.String])
func ParseFragment(name string) (Fragment, error) {
	for _, f := range Fragments {
		if f.String() == strings.TrimSpace(name) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown fragment '%v' (supported: %v)", name, utils.FormatSlice(Fragments, ", "))
}
