package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable(t *testing.T) {
	table := [](struct {
		mnemonic string
		op       CodeOp
		operand  bool
	}){
		{"NOP", OP_NOP, false},
		{"LDA", OP_LDA, true},
		{"STA", OP_STA, true},
		{"ADD", OP_ADD, true},
		{"SUB", OP_SUB, true},
		{"JZ", OP_JZ, true},
		{"JC", OP_JC, true},
		{"JMP", OP_JMP, true},
		{"HLT", OP_HLT, false},
	}

	assert.Equal(t, len(table), len(opcodeMap))

	for _, entry := range table {
		assert := assert.New(t)

		op, ok := LookupOp(entry.mnemonic)
		assert.True(ok, entry.mnemonic)
		assert.Equal(entry.op, op, entry.mnemonic)
		assert.Equal(entry.operand, op.HasOperand(), entry.mnemonic)
		assert.Equal(entry.mnemonic, op.String())
		assert.True(op.Valid())
	}

	op, ok := LookupOp("jmp")
	assert.True(t, ok)
	assert.Equal(t, OP_JMP, op)

	_, ok = LookupOp("FOO")
	assert.False(t, ok)

	for op := CodeOp(7); op < OP_JMP; op++ {
		assert.False(t, op.Valid())
		assert.Equal(t, fmt.Sprintf("CodeOp(%d)", int(op)), op.String())
	}
}

func TestCode(t *testing.T) {
	table := [](struct {
		code    Code
		op      CodeOp
		operand int
		str     string
	}){
		{MakeCode(OP_NOP, 0), OP_NOP, 0, "NOP"},
		{MakeCode(OP_LDA, 5), OP_LDA, 5, "LDA 5"},
		{MakeCode(OP_JMP, 15), OP_JMP, 15, "JMP 15"},
		{MakeCode(OP_HLT, 0), OP_HLT, 0, "HLT"},
		{Code(0x7a), CodeOp(7), 10, ".byte 122"},
	}

	for _, entry := range table {
		assert := assert.New(t)

		assert.Equal(entry.op, entry.code.Op())
		assert.Equal(entry.operand, entry.code.Operand())
		assert.Equal(entry.str, entry.code.String())
	}

	assert.Equal(t, Code(0x15), MakeCode(OP_LDA, 5))
	assert.Equal(t, Code(0xe0), MakeCode(OP_JMP, 0x10))
}
