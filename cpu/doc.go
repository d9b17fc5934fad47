// Package cpu implements the machine words and assembler for the nibble CPU.
//
// Every instruction is a single 8-bit word: a 4-bit opcode in the upper
// nibble and a 4-bit operand in the lower nibble. Operands are either
// decimal literals or labels, which address the 16 instruction slots.
//
// The assembler is a two pass assembler. The first pass resolves every
// label to the address of the instruction that follows it, so labels may
// be referenced before they are defined. The second pass encodes each
// instruction line into a Code.
package cpu
