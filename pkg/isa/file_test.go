package isa

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleSet() *InstructionSet {
	s := NewInstructionSet("example")
	s.Add(0, "nop", "Nothing operation")
	s.Add(1, "move", "Move an integer to an register.",
		NewOperand("Dest", "Mod", "8-Bits", "Register", "register"),
		NewOperand("Source", "Mod", "8-Bits", "Integer", "integer"))
	return s
}

const exampleJSON = `[{"mnemonic":"nop","hint":"Nothing operation","opcode":0,"operands":[]},` +
	`{"mnemonic":"move","hint":"Move an integer to an register.","opcode":1,"operands":[` +
	`{"operand":"Dest","encoding":"Mod","size":"8-Bits","hint":"Register","kind":"register"},` +
	`{"operand":"Source","encoding":"Mod","size":"8-Bits","hint":"Integer","kind":"integer"}]}]` + "\n"

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestSave_Schema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.json")

	require.NoError(t, exampleSet().Save(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exampleJSON, string(contents))
}

func TestSave_DoesNotEscapeHTML(t *testing.T) {
	s := NewInstructionSet("test")
	s.Add(0, "cmp", "a < b && c > d")

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, Format_JSON))
	assert.Contains(t, buf.String(), `"a < b && c > d"`)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"isa.json", "isa.yaml"} {
		t.Run(name, func(t *testing.T) {
			original := exampleSet()
			original.Add(-3, "neg", "", NewOperand("x", "", "", "", ""))
			original.Add(42, "sparse", "with \"quotes\"\nand newlines")

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, original.Save(path))

			loaded := NewInstructionSet("loaded")
			require.NoError(t, loaded.Load(path))

			assert.Equal(t, original.Data(), loaded.Data())
			assert.Equal(t, original.OpCodes(), loaded.OpCodes())
		})
	}
}

func TestSave_ErrorOnUnwritablePath(t *testing.T) {
	s := exampleSet()
	path := filepath.Join(t.TempDir(), "missing", "dir", "isa.json")

	err := s.Save(path)
	assert.ErrorIs(t, err, ErrIO)
	assert.Equal(t, 2, s.Len())
}

func TestLoad_ErrorOnMissingFile(t *testing.T) {
	s := exampleSet()
	before := s.Data()

	err := s.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrIO)
	assert.False(t, errors.Is(err, ErrSchema))
	assert.Equal(t, before, s.Data())
}

func TestLoadFile_NamesSetAfterFile(t *testing.T) {
	s, err := LoadFile(writeFile(t, "x86-lite.json", exampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "x86-lite", s.Name())
	assert.Equal(t, exampleSet().Data(), s.Data())
}

func TestLoad_MergesWithoutClearing(t *testing.T) {
	path := writeFile(t, "isa.json", exampleJSON)

	s := NewInstructionSet("test")
	s.Add(1, "jmp", "already here")
	s.Add(7, "halt", "")

	require.NoError(t, s.Load(path))

	assert.Equal(t, []OpCode{0, 1, 7}, s.OpCodes())
	instruction, _ := s.Instruction(1)
	assert.Equal(t, "jmp", instruction.Mnemonic)
	assert.Empty(t, instruction.Operands)
}

func TestLoad_StopsAtFirstMalformedElement(t *testing.T) {
	path := writeFile(t, "isa.json", `[
		{"mnemonic": "nop", "hint": "", "opcode": 0, "operands": []},
		{"mnemonic": "mov", "hint": "", "operands": []},
		{"mnemonic": "add", "hint": "", "opcode": 2, "operands": []}
	]`)

	s := NewInstructionSet("test")
	err := s.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, 1, schemaErr.Element)
	assert.Equal(t, -1, schemaErr.Operand)
	assert.Equal(t, "opcode", schemaErr.Field)

	assert.Equal(t, []OpCode{0}, s.OpCodes())
}

func TestDecode_SchemaErrors(t *testing.T) {
	cases := []struct {
		name     string
		document string
		element  int
		operand  int
		field    string
	}{
		{"not an array", `{"mnemonic": "nop"}`, -1, -1, ""},
		{"not json", `[{"mnemonic": `, -1, -1, ""},
		{"empty", ``, -1, -1, ""},
		{"element not object", `["nop"]`, 0, -1, ""},
		{"missing mnemonic", `[{"hint": "", "opcode": 0}]`, 0, -1, "mnemonic"},
		{"mnemonic not string", `[{"mnemonic": 3, "hint": "", "opcode": 0}]`, 0, -1, "mnemonic"},
		{"missing hint", `[{"mnemonic": "nop", "opcode": 0}]`, 0, -1, "hint"},
		{"float opcode", `[{"mnemonic": "nop", "hint": "", "opcode": 1.5}]`, 0, -1, "opcode"},
		{"string opcode", `[{"mnemonic": "nop", "hint": "", "opcode": "1"}]`, 0, -1, "opcode"},
		{"operands not array", `[{"mnemonic": "nop", "hint": "", "opcode": 0, "operands": {}}]`, 0, -1, "operands"},
		{"operand not object", `[{"mnemonic": "nop", "hint": "", "opcode": 0, "operands": [1]}]`, 0, 0, ""},
		{"operand missing kind", `[{"mnemonic": "mov", "hint": "", "opcode": 0, "operands": [
			{"operand": "a", "encoding": "", "size": "", "hint": "", "kind": ""},
			{"operand": "b", "encoding": "", "size": "", "hint": ""}]}]`, 0, 1, "kind"},
		{"operand field not string", `[{"mnemonic": "mov", "hint": "", "opcode": 0, "operands": [
			{"operand": "a", "encoding": null, "size": "", "hint": "", "kind": ""}]}]`, 0, 0, "encoding"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewInstructionSet("test")
			err := s.Decode(strings.NewReader(c.document), Format_JSON)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "unexpected error: %v", err)
			assert.ErrorIs(t, err, ErrSchema)
			assert.Equal(t, c.element, schemaErr.Element)
			assert.Equal(t, c.operand, schemaErr.Operand)
			assert.Equal(t, c.field, schemaErr.Field)
			assert.True(t, s.Empty())
		})
	}
}

func TestDecode_IgnoresUnknownFieldsAndMissingOperands(t *testing.T) {
	s := NewInstructionSet("test")
	err := s.Decode(strings.NewReader(`[
		{"mnemonic": "nop", "hint": "", "opcode": 0, "cycles": 1},
		{"mnemonic": "inc", "hint": "", "opcode": 1, "operands": [
			{"operand": "r", "encoding": "Reg", "size": "8", "hint": "", "kind": "register", "extra": true}]}
	]`), Format_JSON)

	require.NoError(t, err)
	assert.Equal(t, map[OpCode]Instruction{
		0: {Mnemonic: "nop"},
		1: {Mnemonic: "inc", Operands: []Operand{NewOperand("r", "Reg", "8", "", "register")}},
	}, s.Data())
}

func TestDecode_YAML(t *testing.T) {
	s := NewInstructionSet("test")
	err := s.Decode(strings.NewReader(`
- mnemonic: nop
  hint: Nothing operation
  opcode: 0
  operands: []
- mnemonic: move
  hint: ""
  opcode: 16
  operands:
    - operand: Dest
      encoding: Mod
      size: 8-Bits
      hint: Register
      kind: register
`), Format_YAML)

	require.NoError(t, err)
	assert.Equal(t, []OpCode{0, 16}, s.OpCodes())

	move, _ := s.Instruction(16)
	assert.Equal(t, []Operand{NewOperand("Dest", "Mod", "8-Bits", "Register", "register")}, move.Operands)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, Format_JSON, FormatFromPath("isa.json"))
	assert.Equal(t, Format_JSON, FormatFromPath("isa"))
	assert.Equal(t, Format_YAML, FormatFromPath("isa.yaml"))
	assert.Equal(t, Format_YAML, FormatFromPath("ISA.YML"))

	format, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, Format_YAML, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, exampleSet()))

	output := buf.String()
	assert.Contains(t, output, "=== Instruction Set: example ===")
	assert.Contains(t, output, "Instructions: 2 (contiguous opcodes)")
	assert.Contains(t, output, "0x1")
	assert.Contains(t, output, "move")
	assert.Contains(t, output, "encoding=Mod size=8-Bits kind=register")

	buf.Reset()
	require.NoError(t, Dump(&buf, NewInstructionSet("empty")))
	assert.Contains(t, buf.String(), "(none)")
}
