// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"

	"github.com/ezrec/nibble/cpu"
)

const (
	MEMORY_SIZE = 16 // Bytes of memory, shared by program and data.
)

// Emulator state. Accumulator, flags and memory.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Program *cpu.Program // Reference to the currently running program listing.

	Memory [MEMORY_SIZE]uint8 // Program and data memory.
	A      uint8              // Accumulator.
	Ip     int                // Instruction pointer.
	Zero   bool               // Set when the last result was zero.
	Carry  bool               // Set on ADD overflow or SUB borrow.
	Halted bool               // Set once HLT has executed.
	Ticks  int                // Instructions executed since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	return
}

// Reset the emulator state, and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	bins := emu.Program.Binary()
	if len(bins) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	emu.Memory = [MEMORY_SIZE]uint8{}
	copy(emu.Memory[:], bins)

	emu.A = 0
	emu.Ip = 0
	emu.Zero = false
	emu.Carry = false
	emu.Halted = false
	emu.Ticks = 0

	return
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Ip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Code returns the next instruction code.
func (emu *Emulator) Code() cpu.Code {
	return cpu.Code(emu.Memory[emu.Ip])
}

// setA updates the accumulator and the zero flag.
func (emu *Emulator) setA(value uint8) {
	emu.A = value
	emu.Zero = value == 0
}

// Tick executes a single instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	code := emu.Code()
	if emu.Verbose {
		log.Printf("%v: %02X %v %v\n", emu.Ip, uint8(code), code, emu)
	}

	op := code.Op()
	n := code.Operand()

	emu.Ip = (emu.Ip + 1) % MEMORY_SIZE
	emu.Ticks++

	switch op {
	case cpu.OP_NOP:
	case cpu.OP_LDA:
		emu.setA(emu.Memory[n])
	case cpu.OP_STA:
		emu.Memory[n] = emu.A
	case cpu.OP_ADD:
		sum := uint16(emu.A) + uint16(emu.Memory[n])
		emu.Carry = sum > 0xff
		emu.setA(uint8(sum))
	case cpu.OP_SUB:
		emu.Carry = emu.A < emu.Memory[n]
		emu.setA(emu.A - emu.Memory[n])
	case cpu.OP_JZ:
		if emu.Zero {
			emu.Ip = n
		}
	case cpu.OP_JC:
		if emu.Carry {
			emu.Ip = n
		}
	case cpu.OP_JMP:
		emu.Ip = n
	case cpu.OP_HLT:
		emu.Halted = true
		done = true
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// Run ticks the emulator until it halts, or maxTicks instructions have
// executed. A maxTicks of zero or less is unlimited.
func (emu *Emulator) Run(maxTicks int) (err error) {
	for done := false; !done; {
		if maxTicks > 0 && emu.Ticks >= maxTicks {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// String returns the machine state.
func (emu *Emulator) String() string {
	flags := []byte("--")
	if emu.Zero {
		flags[0] = 'Z'
	}
	if emu.Carry {
		flags[1] = 'C'
	}
	return fmt.Sprintf("ip=%d a=%02X flags=%s ticks=%d", emu.Ip, emu.A, flags, emu.Ticks)
}
