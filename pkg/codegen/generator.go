package codegen

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/Manu343726/iscreate/pkg/utils"
)

//go:embed templates
var Templates embed.FS

// Emits C and C++ declarations describing an instruction set.
//
// Every method reads the current contents of the given set and returns the
// declaration as a single string, with no trailing newline. An empty set
// produces an empty string.
type Generator struct {
	templates  map[Language]*template.Template
	identifier func(string) string
}

// Configures a Generator
type GeneratorOption func(*Generator)

// Makes the generator replace every byte that cannot appear in a C identifier
// with an underscore when emitting enum constants. By default mnemonics and
// operand labels are emitted verbatim
func WithSafeIdentifiers() GeneratorOption {
	return func(g *Generator) {
		g.identifier = utils.SafeIdentifier
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// scope::name
		"scoped": func(scope, name string) string {
			return scope + "::" + name
		},
		"scopedAll": func(scope string, names []string) []string {
			return utils.Map(names, func(name string) string { return scope + "::" + name })
		},
		// {a, b, c}
		"braced": func(items []string) string {
			return "{" + strings.Join(items, ", ") + "}"
		},
		// {a, b, c} from values of any type
		"tuple": func(items ...any) string {
			return "{" + utils.FormatSlice(items, ", ") + "}"
		},
		"quote": utils.QuoteC,
		"quoteAll": func(items []string) []string {
			return utils.Map(items, utils.QuoteC)
		},
	}
}

func NewGenerator(options ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		templates:  make(map[Language]*template.Template, len(Languages)),
		identifier: func(name string) string { return name },
	}

	for _, option := range options {
		option(g)
	}

	for _, lang := range Languages {
		t, err := template.New(lang.String()).Funcs(templateFuncs()).
			ParseFS(Templates, "templates/common.tmpl", "templates/"+lang.String()+".tmpl")

		if err != nil {
			return nil, fmt.Errorf("parsing %v templates: %w", lang, err)
		}

		g.templates[lang] = t
	}

	return g, nil
}

func (g *Generator) execute(lang Language, name string, data any) (string, error) {
	t, ok := g.templates[lang]
	if !ok {
		return "", fmt.Errorf("unsupported output language %v", lang)
	}

	var output strings.Builder

	if err := t.ExecuteTemplate(&output, name, data); err != nil {
		return "", fmt.Errorf("generating %v %v: %w", lang, name, err)
	}

	return output.String(), nil
}

// Emits the opcodes enum, one OP_<MNEMONIC> constant per instruction. If the
// opcodes are not exactly 0..n-1 every constant gets its opcode as explicit value
func (g *Generator) OpCodesEnum(set *isa.InstructionSet, lang Language) (string, error) {
	if set.Empty() {
		return "", nil
	}

	return g.execute(lang, "enum", g.opcodesView(set))
}

// Emits the operand_encoding enum with the encodings used by the set, in order of first appearance
func (g *Generator) OperandEncodingsEnum(set *isa.InstructionSet, lang Language) (string, error) {
	if set.Empty() {
		return "", nil
	}

	return g.execute(lang, "enum", g.vocabularyView("operand_encoding", set, isa.Instruction.Encodings))
}

// Emits the operand_kind enum with the kinds used by the set, in order of first appearance
func (g *Generator) OperandKindsEnum(set *isa.InstructionSet, lang Language) (string, error) {
	if set.Empty() {
		return "", nil
	}

	return g.execute(lang, "enum", g.vocabularyView("operand_kind", set, isa.Instruction.Kinds))
}

// Emits the opencodings table mapping each opcode to the encodings of its operands
func (g *Generator) EncodingTable(set *isa.InstructionSet, lang Language) (string, error) {
	if set.Empty() {
		return "", nil
	}

	view := tableView{
		Struct: "optable_encoding",
		Table:  "opencodings",
		Member: "encodings",
		Enum:   "operand_encoding",
	}

	return g.execute(lang, "labels", g.tableView(set, view, g.identifiers(isa.Instruction.Encodings)))
}

// Emits the opkinds table mapping each opcode to the kinds of its operands
func (g *Generator) KindTable(set *isa.InstructionSet, lang Language) (string, error) {
	if set.Empty() {
		return "", nil
	}

	view := tableView{
		Struct: "optable_kind",
		Table:  "opkinds",
		Member: "kinds",
		Enum:   "operand_kind",
	}

	return g.execute(lang, "labels", g.tableView(set, view, g.identifiers(isa.Instruction.Kinds)))
}

// Emits the opdescriptor table mapping each opcode to its constant name,
// mnemonic, hint and "name(hint)" operand descriptions
func (g *Generator) DescriptorTable(set *isa.InstructionSet, lang Language) (string, error) {
	if set.Empty() {
		return "", nil
	}

	return g.execute(lang, "descriptors", g.tableView(set, tableView{}, operandDescriptions))
}

// Emits the given fragment
func (g *Generator) Generate(set *isa.InstructionSet, fragment Fragment, lang Language) (string, error) {
	switch fragment {
	case Fragment_OpCodesEnum:
		return g.OpCodesEnum(set, lang)
	case Fragment_OperandEncodingsEnum:
		return g.OperandEncodingsEnum(set, lang)
	case Fragment_OperandKindsEnum:
		return g.OperandKindsEnum(set, lang)
	case Fragment_EncodingTable:
		return g.EncodingTable(set, lang)
	case Fragment_KindTable:
		return g.KindTable(set, lang)
	case Fragment_DescriptorTable:
		return g.DescriptorTable(set, lang)
	}

	return "", fmt.Errorf("unknown fragment %d", fragment)
}

// Emits the given fragments (all of them if none is given) separated by a blank line
func (g *Generator) GenerateAll(set *isa.InstructionSet, lang Language, fragments ...Fragment) (string, error) {
	if len(fragments) == 0 {
		fragments = Fragments
	}

	outputs := make([]string, 0, len(fragments))

	for _, fragment := range fragments {
		output, err := g.Generate(set, fragment, lang)
		if err != nil {
			return "", err
		}

		if output != "" {
			outputs = append(outputs, output)
		}
	}

	return strings.Join(outputs, "\n\n"), nil
}
