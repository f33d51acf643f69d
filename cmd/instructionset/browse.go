package instructionset

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/Manu343726/iscreate/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse file",
	Short: "Browse an instruction set file in the terminal",
	Long: `Shows the instructions of the file in a table. Moving the selection shows the
operands of the selected instruction. Press q or Esc to quit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := loadSet(args[0], false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := newBrowser(set).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var browseColumns = []string{"Opcode", "Mnemonic", "Operands", "Hint"}

// Builds the instruction table. Row 0 is the header, the following rows are
// the instructions in opcode order, each one referencing its opcode
func newInstructionTable(set *isa.InstructionSet) *tview.Table {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)

	for column, title := range browseColumns {
		table.SetCell(0, column, tview.NewTableCell(title).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, entry := range set.Entries() {
		op, instruction := entry.Decompose()
		row := i + 1

		cells := []string{
			"0x" + utils.FormatHex(int64(op)),
			instruction.Mnemonic,
			fmt.Sprint(len(instruction.Operands)),
			instruction.Hint,
		}

		for column, text := range cells {
			cell := tview.NewTableCell(tview.Escape(text)).SetReference(op)

			// The hint column takes the remaining width
			if column == len(cells)-1 {
				cell.SetExpansion(1)
			}

			table.SetCell(row, column, cell)
		}
	}

	return table
}

// Returns the text shown for the selected instruction
func instructionDetails(op isa.OpCode, instruction isa.Instruction) string {
	var details strings.Builder

	fmt.Fprintf(&details, "0x%v %v\n", utils.FormatHex(int64(op)), instruction.Mnemonic)

	if instruction.Hint != "" {
		fmt.Fprintf(&details, "%v\n", instruction.Hint)
	}

	if len(instruction.Operands) == 0 {
		details.WriteString("\nNo operands\n")
		return details.String()
	}

	details.WriteString("\nOperands:\n")
	for i, operand := range instruction.Operands {
		fmt.Fprintf(&details, "  #%d %v\n", i, operand)
		if operand.Hint != "" {
			fmt.Fprintf(&details, "     %v\n", operand.Hint)
		}
	}

	return details.String()
}

func newBrowser(set *isa.InstructionSet) *tview.Application {
	app := tview.NewApplication()
	table := newInstructionTable(set)

	details := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true)
	details.SetBorder(true).SetTitle(" Instruction ")

	showDetails := func(row, _ int) {
		if row < 1 {
			details.Clear()
			return
		}

		op, _ := table.GetCell(row, 0).GetReference().(isa.OpCode)
		if instruction, ok := set.Instruction(op); ok {
			details.SetText(instructionDetails(op, instruction))
		}
	}

	table.SetSelectionChangedFunc(showDetails)
	table.SetBorder(true).SetTitle(fmt.Sprintf(" %v (%d instructions) ", tview.Escape(set.Name()), set.Len()))

	if !set.Empty() {
		table.Select(1, 0)
		showDetails(1, 0)
	}

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(table, 0, 2, true).
		AddItem(details, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}

		return event
	})

	return app.SetRoot(layout, true)
}
