package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats a signed value as lowercase hex digits without prefix. Negative values
// are printed as their 64 bit two's complement
func FormatHex(value int64) string {
	return strconv.FormatUint(uint64(value), 16)
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}

// Uppercases the ASCII letters of a string. Any other byte is kept as is
func AsciiUpper(input string) string {
	output := []byte(input)

	for i, c := range output {
		if 'a' <= c && c <= 'z' {
			output[i] = c - ('a' - 'A')
		}
	}

	return string(output)
}

// Returns true if the byte can be part of a C identifier
func isIdentifierByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// Turns an arbitrary string into a valid C identifier by replacing every
// offending byte with an underscore. A leading digit gets an underscore prefix
func SafeIdentifier(input string) string {
	var builder strings.Builder

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch {
		case i == 0 && '0' <= c && c <= '9':
			builder.WriteByte('_')
			builder.WriteByte(c)
		case isIdentifierByte(c):
			builder.WriteByte(c)
		default:
			builder.WriteByte('_')
		}
	}

	if builder.Len() == 0 {
		return "_"
	}

	return builder.String()
}

// Returns a double quoted C string literal with the given contents
func QuoteC(input string) string {
	var builder strings.Builder
	builder.WriteByte('"')

	for i := 0; i < len(input); i++ {
		switch c := input[i]; c {
		case '\\':
			builder.WriteString(`\\`)
		case '"':
			builder.WriteString(`\"`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteByte(c)
		}
	}

	builder.WriteByte('"')
	return builder.String()
}
