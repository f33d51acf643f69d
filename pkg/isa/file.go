package isa

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/iscreate/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Writes the instruction set document to w. JSON documents are written in
// compact form followed by a newline
func (s *InstructionSet) Encode(w io.Writer, format Format) error {
	documents := s.document()

	switch format {
	case Format_YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(documents); err != nil {
			return utils.MakeError(ErrIO, "%v", err)
		}

		if err := encoder.Close(); err != nil {
			return utils.MakeError(ErrIO, "%v", err)
		}
	default:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)

		if err := encoder.Encode(documents); err != nil {
			return utils.MakeError(ErrIO, "%v", err)
		}
	}

	return nil
}

// Reads an instruction set document from r and adds its instructions to the
// set. The set is not cleared first: instructions whose opcode is already
// taken are ignored. Decoding stops at the first malformed instruction, keeping
// the ones added before it
func (s *InstructionSet) Decode(r io.Reader, format Format) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return utils.MakeError(ErrIO, "%v", err)
	}

	tree, err := parseTree(data, format)
	if err != nil {
		return err
	}

	return s.addTree(tree)
}

// Saves the instruction set to a file. The format is picked from the file extension (See [FormatFromPath])
func (s *InstructionSet) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		s.logger.Warn("failed to open instruction set file", "path", path, "error", err)
		return utils.MakeError(ErrIO, "failed to open %v: %v", path, err)
	}
	defer file.Close()

	if err := s.Encode(file, FormatFromPath(path)); err != nil {
		s.logger.Warn("failed to write instruction set file", "path", path, "error", err)
		return err
	}

	s.logger.Debug("instruction set saved", "path", path, "instructions", s.Len())
	return nil
}

// Loads the instructions of a file into the set, with the same merge and
// partial failure rules as [InstructionSet.Decode]. The format is picked from
// the file extension (See [FormatFromPath])
func (s *InstructionSet) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		s.logger.Warn("failed to open instruction set file", "path", path, "error", err)
		return utils.MakeError(ErrIO, "failed to open %v: %v", path, err)
	}
	defer file.Close()

	before := s.Len()

	if err := s.Decode(file, FormatFromPath(path)); err != nil {
		s.logger.Warn("failed to load instruction set file", "path", path, "error", err, "instructions_added", s.Len()-before)
		return err
	}

	s.logger.Debug("instruction set loaded", "path", path, "instructions_added", s.Len()-before)
	return nil
}

// Creates an instruction set named after the file (base name without
// extension) and loads the file into it
func LoadFile(path string, options ...Option) (*InstructionSet, error) {
	s := NewInstructionSet(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), options...)
	return s, s.Load(path)
}
