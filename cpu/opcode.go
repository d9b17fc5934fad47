package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is an instruction opcode, the upper nibble of a Code.
type CodeOp int

const (
	OP_NOP = CodeOp(0)  // nop
	OP_LDA = CodeOp(1)  // lda
	OP_STA = CodeOp(2)  // sta
	OP_ADD = CodeOp(3)  // add
	OP_SUB = CodeOp(4)  // sub
	OP_JZ  = CodeOp(5)  // jz
	OP_JC  = CodeOp(6)  // jc
	OP_JMP = CodeOp(14) // jmp
	OP_HLT = CodeOp(15) // hlt
)

const (
	OPERAND_MIN = 0  // Smallest encodable operand.
	OPERAND_MAX = 15 // Largest encodable operand.
)

// opcodeMap maps upper case mnemonics to opcodes.
var opcodeMap = map[string]CodeOp{
	"NOP": OP_NOP,
	"LDA": OP_LDA,
	"STA": OP_STA,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"JZ":  OP_JZ,
	"JC":  OP_JC,
	"JMP": OP_JMP,
	"HLT": OP_HLT,
}

// opcodeName is the reverse of opcodeMap.
var opcodeName = func() (names map[CodeOp]string) {
	names = make(map[CodeOp]string, len(opcodeMap))
	for name, op := range opcodeMap {
		names[op] = name
	}
	return
}()

// LookupOp returns the opcode for a mnemonic, in any letter case.
func LookupOp(mnemonic string) (op CodeOp, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op CodeOp) Valid() bool {
	_, ok := opcodeName[op]
	return ok
}

// HasOperand returns true if the instruction consumes an operand.
func (op CodeOp) HasOperand() bool {
	return op != OP_NOP && op != OP_HLT
}

func (op CodeOp) String() string {
	name, ok := opcodeName[op]
	if !ok {
		return fmt.Sprintf("CodeOp(%d)", int(op))
	}
	return name
}

// Code is a single 8-bit instruction word.
type Code uint8

// MakeCode packs an opcode and operand into an instruction word.
// Both values are truncated to 4 bits.
func MakeCode(op CodeOp, operand int) Code {
	return Code((uint8(op)&0xf)<<4 | uint8(operand)&0xf)
}

// Op returns the opcode of the instruction word.
func (code Code) Op() CodeOp {
	return CodeOp((code >> 4) & 0xf)
}

// Operand returns the operand of the instruction word.
func (code Code) Operand() int {
	return int(code & 0xf)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	op := code.Op()
	if !op.Valid() {
		return fmt.Sprintf(".byte %d", uint8(code))
	}
	if !op.HasOperand() {
		return op.String()
	}
	return fmt.Sprintf("%v %d", op, code.Operand())
}

// Opcode represents a line of assembled code with its source location and generated instruction.
type Opcode struct {
	LineNo int      // Source line number, starting at 1.
	Ip     int      // Address of the instruction.
	Words  []string // Whitespace separated words of the source line.
	Code   Code     // Encoded instruction word.
}
