package generate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/iscreate/pkg/codegen"
	"github.com/Manu343726/iscreate/pkg/isa"
	"github.com/Manu343726/iscreate/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Settings of a generate run
type Options struct {
	Language        codegen.Language
	Fragments       []codegen.Fragment
	SafeIdentifiers bool
	Highlight       bool
}

var outputFile string
var fragmentNames []string

func fragmentsHelp() string {
	return strings.Join(utils.Map(codegen.Fragments, func(f codegen.Fragment) string {
		return fmt.Sprintf("  %-17s %v", f, f.Description())
	}), "\n")
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate file",
	Short: "Generate C/C++ enums and tables from an instruction set file",
	Long: `Loads an instruction set file (JSON, or YAML if the extension is .yaml/.yml) and
emits the requested declarations. By default all of them are emitted, separated by a blank line.

Fragments:
` + fragmentsHelp(),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lang, err := codegen.ParseLanguage(viper.GetString("lang"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		options := Options{
			Language:        lang,
			SafeIdentifiers: viper.GetBool("safe-identifiers"),
		}

		for _, name := range fragmentNames {
			fragment, err := codegen.ParseFragment(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			options.Fragments = append(options.Fragments, fragment)
		}

		var output io.Writer = os.Stdout

		if len(outputFile) > 0 {
			f, err := os.Create(outputFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
				os.Exit(2)
			}
			defer f.Close()

			output = f
		} else {
			options.Highlight = term.IsTerminal(int(os.Stdout.Fd()))
		}

		if err := Generate(output, args[0], options); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating declarations: %v\n", err)
			os.Exit(2)
		}
	},
}

// Loads the instruction set file and writes the requested declarations to w
func Generate(w io.Writer, path string, options Options) error {
	set, err := isa.LoadFile(path)
	if err != nil {
		return err
	}

	var generatorOptions []codegen.GeneratorOption
	if options.SafeIdentifiers {
		generatorOptions = append(generatorOptions, codegen.WithSafeIdentifiers())
	}

	g, err := codegen.NewGenerator(generatorOptions...)
	if err != nil {
		return err
	}

	code, err := g.GenerateAll(set, options.Language, options.Fragments...)
	if err != nil {
		return err
	}

	if code == "" {
		return nil
	}

	if options.Highlight {
		code = utils.HighlightCode(code)
	}

	_, err = fmt.Fprintln(w, code)
	return err
}

func init() {
	GenerateCmd.Flags().StringP("lang", "l", "cpp", "Output language: cpp or c")
	GenerateCmd.Flags().Bool("safe-identifiers", false, "Replace characters not allowed in C identifiers with underscores")
	GenerateCmd.Flags().StringSliceVarP(&fragmentNames, "fragment", "f", nil, "Fragment to emit (repeatable). All fragments if omitted")
	GenerateCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "Output file. If omitted, the output will be written to stdout")

	viper.SetDefault("lang", "cpp")
	cobra.CheckErr(viper.BindPFlag("lang", GenerateCmd.Flags().Lookup("lang")))
	cobra.CheckErr(viper.BindPFlag("safe-identifiers", GenerateCmd.Flags().Lookup("safe-identifiers")))
}
