package cpu

import (
	"github.com/ezrec/nibble/translate"
)

var f = translate.From

// ErrInstructionUnknown is a mnemonic that is not in the instruction set.
type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("unknown instruction %v", string(err))
}

// ErrOperandMissing is an instruction line lacking a required operand.
type ErrOperandMissing string

func (err ErrOperandMissing) Error() string {
	return f("'%v' operand missing", string(err))
}

// ErrLabelMissing is a label reference with no matching definition.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOperandRange is an operand that does not fit in 4 bits.
type ErrOperandRange int

func (err ErrOperandRange) Error() string {
	return f("operand %d out of range (%d-%d)", int(err), OPERAND_MIN, OPERAND_MAX)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
