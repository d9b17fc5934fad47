package emulator

import (
	"errors"

	"github.com/ezrec/nibble/translate"
)

var f = translate.From

var (
	ErrProgramSize   = errors.New(f("program too large"))
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrTickLimit     = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
