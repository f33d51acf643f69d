package isa

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Manu343726/iscreate/pkg/utils"
)

// Dump writes a human readable listing of the instruction set to the given writer.
// The output is meant for inspection, not for parsing.
func Dump(w io.Writer, s *InstructionSet) error {
	d := &setDumper{w: w, s: s}
	return d.dump()
}

type setDumper struct {
	w io.Writer
	s *InstructionSet
}

func (d *setDumper) dump() error {
	d.dumpHeader()
	return d.dumpInstructions()
}

func (d *setDumper) dumpHeader() {
	fmt.Fprintf(d.w, "=== Instruction Set: %s ===\n", d.s.Name())

	layout := "sparse opcodes"
	if d.s.Contiguous() {
		layout = "contiguous opcodes"
	}

	fmt.Fprintf(d.w, "Instructions: %d (%s)\n", d.s.Len(), layout)
	fmt.Fprintln(d.w)
}

func (d *setDumper) dumpInstructions() error {
	if d.s.Empty() {
		fmt.Fprintln(d.w, "(none)")
		return nil
	}

	tw := tabwriter.NewWriter(d.w, 0, 4, 2, ' ', 0)

	for _, entry := range d.s.Entries() {
		op, instruction := entry.Decompose()
		fmt.Fprintf(tw, "0x%s\t%s\t%s\n", utils.FormatHex(int64(op)), instruction.Mnemonic, instruction.Hint)

		for i, operand := range instruction.Operands {
			fmt.Fprintf(tw, "\t  #%d %s\tencoding=%s size=%s kind=%s\t%s\n",
				i, operand.Name, operand.Encoding, operand.Size, operand.Kind, operand.Hint)
		}
	}

	return tw.Flush()
}
