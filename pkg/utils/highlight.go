package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// C/C++ declaration highlighting colors
var (
	hlKeywordColor = color.New(color.FgMagenta, color.Bold)
	hlTypeColor    = color.New(color.FgCyan)
	hlStringColor  = color.New(color.FgGreen)
	hlNumberColor  = color.New(color.FgYellow)
	hlCommentColor = color.New(color.FgHiBlack)
	hlScopeColor   = color.New(color.FgHiBlue)
)

var hlKeywords = map[string]bool{
	"class": true, "const": true, "enum": true, "static": true,
	"struct": true, "typedef": true, "union": true, "extern": true,
}

var hlTypes = map[string]bool{
	"char": true, "int": true, "size_t": true, "void": true,
	"std": true, "map": true, "vector": true,
	"opcodes": true, "operand_encoding": true, "operand_kind": true,
}

var (
	// Block and line comments
	hlCommentPattern = regexp.MustCompile(`/\*[\s\S]*?\*/|//[^\n]*`)
	// C string literals, escaped quotes included
	hlStringPattern = regexp.MustCompile(`"(?:[^"\\\n]|\\.)*"`)
	// Decimal and hex integers, optionally negative
	hlNumberPattern = regexp.MustCompile(`-?\b(?:0[xX][0-9a-fA-F]+|[0-9]+)\b`)
	// Identifiers, checked against the keyword and type tables
	hlIdentifierPattern = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)
	// Scope qualifiers such as opcodes::
	hlScopePattern = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*::`)
)

type highlightToken struct {
	color *color.Color
	start int
	end   int
}

type highlighter struct {
	code   string
	tokens []highlightToken
}

func (h *highlighter) overlaps(start, end int) bool {
	for _, t := range h.tokens {
		if start < t.end && end > t.start {
			return true
		}
	}
	return false
}

// Adds all matches of the pattern that do not overlap previous tokens. Earlier passes win
func (h *highlighter) pass(pattern *regexp.Regexp, pick func(text string) *color.Color) {
	for _, match := range pattern.FindAllStringIndex(h.code, -1) {
		if h.overlaps(match[0], match[1]) {
			continue
		}

		if c := pick(h.code[match[0]:match[1]]); c != nil {
			h.tokens = append(h.tokens, highlightToken{color: c, start: match[0], end: match[1]})
		}
	}
}

func (h *highlighter) String() string {
	if len(h.tokens) == 0 {
		return h.code
	}

	sort.Slice(h.tokens, func(i, j int) bool {
		return h.tokens[i].start < h.tokens[j].start
	})

	var result strings.Builder
	pos := 0

	for _, t := range h.tokens {
		result.WriteString(h.code[pos:t.start])
		result.WriteString(t.color.Sprint(h.code[t.start:t.end]))
		pos = t.end
	}

	result.WriteString(h.code[pos:])
	return result.String()
}

func always(c *color.Color) func(string) *color.Color {
	return func(string) *color.Color { return c }
}

// Applies terminal colors to C and C++ declarations. When color output is
// disabled (see color.NoColor) the code is returned unchanged
func HighlightCode(code string) string {
	if code == "" || color.NoColor {
		return code
	}

	h := highlighter{code: code}

	h.pass(hlCommentPattern, always(hlCommentColor))
	h.pass(hlStringPattern, always(hlStringColor))
	h.pass(hlScopePattern, always(hlScopeColor))
	h.pass(hlNumberPattern, always(hlNumberColor))
	h.pass(hlIdentifierPattern, func(word string) *color.Color {
		switch {
		case hlKeywords[word]:
			return hlKeywordColor
		case hlTypes[word]:
			return hlTypeColor
		}
		return nil
	})

	return h.String()
}
