package codegen

import (
	"fmt"
	"strings"
)

// Output dialect of the generated declarations
type Language uint8

const (
	// Scoped enums (enum class) and std::map keyed tables
	Language_Cpp Language = iota
	// Plain typedef'd enums and struct arrays with explicit element counts
	Language_C
)

// All supported languages
var Languages = []Language{Language_Cpp, Language_C}

func (l Language) String() string {
	switch l {
	case Language_Cpp:
		return "cpp"
	case Language_C:
		return "c"
	}

	panic("unreachable")
}

// Parses a language name (cpp, c++, cxx or c, case insensitive)
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpp", "c++", "cxx":
		return Language_Cpp, nil
	case "c":
		return Language_C, nil
	}

	return 0, fmt.Errorf("unknown output language '%v' (supported: cpp, c)", name)
}
