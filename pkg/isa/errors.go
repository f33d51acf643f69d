package isa

import (
	"errors"
	"fmt"
)

var (
	// The instruction set file could not be opened, read or written
	ErrIO = errors.New("instruction set i/o error")
	// The document does not follow the instruction set schema
	ErrSchema = errors.New("invalid instruction set document")
)

// Reports the first schema violation found in an instruction set document
type SchemaError struct {
	// Index of the offending instruction within the document, -1 if the document itself is wrong
	Element int
	// Index of the offending operand within the instruction, -1 if the problem is not in an operand
	Operand int
	// Name of the offending field, empty if the problem is not in a field
	Field string
	// What was expected instead
	Expected string
	// Underlying decoding error, if any
	Cause error
}

func (e *SchemaError) Error() string {
	where := "document"

	switch {
	case e.Element < 0:
	case e.Operand < 0:
		where = fmt.Sprintf("instruction #%v", e.Element)
	default:
		where = fmt.Sprintf("instruction #%v operand #%v", e.Element, e.Operand)
	}

	if e.Field != "" {
		where += fmt.Sprintf(" field '%v'", e.Field)
	}

	message := fmt.Sprintf("%v: %v: expected %v", ErrSchema, where, e.Expected)

	if e.Cause != nil {
		message += fmt.Sprintf(" (%v)", e.Cause)
	}

	return message
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
