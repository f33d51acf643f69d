package isa

import (
	"bytes"
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// On-disk form of an operand. Note the name is stored under "operand"
type operandDocument struct {
	Operand  string `json:"operand" yaml:"operand"`
	Encoding string `json:"encoding" yaml:"encoding"`
	Size     string `json:"size" yaml:"size"`
	Hint     string `json:"hint" yaml:"hint"`
	Kind     string `json:"kind" yaml:"kind"`
}

// On-disk form of an instruction. Field order is the order fields are written in
type instructionDocument struct {
	Mnemonic string            `json:"mnemonic" yaml:"mnemonic"`
	Hint     string            `json:"hint" yaml:"hint"`
	OpCode   int64             `json:"opcode" yaml:"opcode"`
	Operands []operandDocument `json:"operands" yaml:"operands"`
}

// Builds the document of the whole set, in ascending opcode order
func (s *InstructionSet) document() []instructionDocument {
	documents := make([]instructionDocument, 0, s.Len())

	for _, op := range s.opcodes {
		instruction := s.instructions[op]
		operands := make([]operandDocument, 0, len(instruction.Operands))

		for _, operand := range instruction.Operands {
			operands = append(operands, operandDocument{
				Operand:  operand.Name,
				Encoding: operand.Encoding,
				Size:     operand.Size,
				Hint:     operand.Hint,
				Kind:     operand.Kind,
			})
		}

		documents = append(documents, instructionDocument{
			Mnemonic: instruction.Mnemonic,
			Hint:     instruction.Hint,
			OpCode:   int64(op),
			Operands: operands,
		})
	}

	return documents
}

// Parses raw file contents into a generic tree of []any, map[string]any, strings and numbers
func parseTree(data []byte, format Format) (any, error) {
	var tree any

	switch format {
	case Format_YAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &SchemaError{Element: -1, Operand: -1, Expected: "a YAML document", Cause: err}
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()

		if err := decoder.Decode(&tree); err != nil {
			return nil, &SchemaError{Element: -1, Operand: -1, Expected: "a JSON document", Cause: err}
		}
	}

	return tree, nil
}

func stringMember(object map[string]any, name string) (string, bool) {
	value, ok := object[name].(string)
	return value, ok
}

func integerMember(object map[string]any, name string) (int64, bool) {
	switch value := object[name].(type) {
	case json.Number:
		integer, err := value.Int64()
		return integer, err == nil
	case int:
		return int64(value), true
	case int64:
		return value, true
	case uint64:
		return int64(value), value <= math.MaxInt64
	}

	return 0, false
}

func operandFromTree(element, index int, tree any) (Operand, error) {
	object, ok := tree.(map[string]any)
	if !ok {
		return Operand{}, &SchemaError{Element: element, Operand: index, Expected: "an operand object"}
	}

	fields := [5]string{}

	for i, name := range [...]string{"operand", "encoding", "size", "hint", "kind"} {
		if fields[i], ok = stringMember(object, name); !ok {
			return Operand{}, &SchemaError{Element: element, Operand: index, Field: name, Expected: "a string"}
		}
	}

	return NewOperand(fields[0], fields[1], fields[2], fields[3], fields[4]), nil
}

func instructionFromTree(element int, tree any) (OpCode, Instruction, error) {
	object, ok := tree.(map[string]any)
	if !ok {
		return 0, Instruction{}, &SchemaError{Element: element, Operand: -1, Expected: "an instruction object"}
	}

	mnemonic, ok := stringMember(object, "mnemonic")
	if !ok {
		return 0, Instruction{}, &SchemaError{Element: element, Operand: -1, Field: "mnemonic", Expected: "a string"}
	}

	hint, ok := stringMember(object, "hint")
	if !ok {
		return 0, Instruction{}, &SchemaError{Element: element, Operand: -1, Field: "hint", Expected: "a string"}
	}

	opcode, ok := integerMember(object, "opcode")
	if !ok {
		return 0, Instruction{}, &SchemaError{Element: element, Operand: -1, Field: "opcode", Expected: "an integer"}
	}

	instruction := Instruction{
		Mnemonic: mnemonic,
		Hint:     hint,
	}

	operandsTree, hasOperands := object["operands"]
	if !hasOperands {
		return OpCode(opcode), instruction, nil
	}

	operands, ok := operandsTree.([]any)
	if !ok {
		return 0, Instruction{}, &SchemaError{Element: element, Operand: -1, Field: "operands", Expected: "an array"}
	}

	for i, operandTree := range operands {
		operand, err := operandFromTree(element, i, operandTree)
		if err != nil {
			return 0, Instruction{}, err
		}

		instruction.Operands = append(instruction.Operands, operand)
	}

	return OpCode(opcode), instruction, nil
}

// Adds every instruction of a parsed document to the set, stopping at the first
// malformed one. Instructions added before the error stay in the set
func (s *InstructionSet) addTree(tree any) error {
	elements, ok := tree.([]any)
	if !ok {
		return &SchemaError{Element: -1, Operand: -1, Expected: "an array of instructions"}
	}

	for i, element := range elements {
		op, instruction, err := instructionFromTree(i, element)
		if err != nil {
			return err
		}

		if !s.Add(op, instruction.Mnemonic, instruction.Hint, instruction.Operands...) {
			s.logger.Debug("opcode already taken, instruction ignored", "opcode", op, "mnemonic", instruction.Mnemonic)
		}
	}

	return nil
}
