// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"math"
	"strconv"
	"strings"
)

// LabelTable maps label names to instruction addresses.
type LabelTable map[string]int

// sourceLine is a trimmed line of assembly text.
type sourceLine string

// parseLine normalizes a raw line of assembly text.
func parseLine(text string) sourceLine {
	return sourceLine(strings.TrimSpace(text))
}

// Blank returns true if the line contains nothing.
func (line sourceLine) Blank() bool {
	return len(line) == 0
}

// Label returns the label name if the line is a label definition.
func (line sourceLine) Label() (label string, ok bool) {
	return strings.CutSuffix(string(line), ":")
}

// Instruction returns true if the line should be encoded.
func (line sourceLine) Instruction() bool {
	if line.Blank() {
		return false
	}
	_, is_label := line.Label()
	return !is_label
}

// ResolveLabels performs the first pass over the source, assigning each
// label the address of the next instruction line.
func ResolveLabels(lines []string) (labels LabelTable) {
	labels = make(LabelTable, 16)
	ip := 0

	for _, text := range lines {
		line := parseLine(text)
		if line.Blank() {
			continue
		}

		label, ok := line.Label()
		if ok {
			labels[label] = ip
			continue
		}

		ip += 1
	}

	return
}

// isDecimal is true if every byte of word is an ASCII decimal digit.
func isDecimal(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range []byte(word) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// operandOf resolves an operand word to its value.
func operandOf(word string, labels LabelTable) (value int, err error) {
	if isDecimal(word) {
		value, err = strconv.Atoi(word)
		if err != nil {
			// Only an overflow is possible; let the range check report it.
			value = math.MaxInt
			err = nil
		}
		return
	}

	value, ok := labels[word]
	if !ok {
		err = ErrLabelMissing(word)
		return
	}

	return
}

// encodeWords encodes the whitespace separated words of an instruction line.
func encodeWords(words []string, labels LabelTable) (code Code, err error) {
	mnemonic := strings.ToUpper(words[0])
	op, ok := opcodeMap[mnemonic]
	if !ok {
		err = ErrInstructionUnknown(mnemonic)
		return
	}

	operand := 0
	if op.HasOperand() {
		if len(words) < 2 {
			err = ErrOperandMissing(strings.Join(words, " "))
			return
		}
		operand, err = operandOf(words[1], labels)
		if err != nil {
			return
		}
	}

	if operand < OPERAND_MIN || operand > OPERAND_MAX {
		err = ErrOperandRange(operand)
		return
	}

	code = MakeCode(op, operand)
	return
}

// Encode performs the second pass over the source, producing one Code per
// instruction line. Labels are only read.
func Encode(lines []string, labels LabelTable) (codes []Code, err error) {
	asm := &Assembler{}
	prog, err := asm.assemble(lines, labels)
	if err != nil {
		return
	}

	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}
	return
}

// ReadLines reads all lines of an input stream.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		lines = nil
	}
	return
}

// Assembler is a two pass assembler for the nibble CPU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Assemble assembles source lines into a Program.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	labels := ResolveLabels(lines)

	if asm.Verbose {
		for label, ip := range labels {
			log.Printf("label %q: %v\n", label, ip)
			if ip > OPERAND_MAX {
				log.Printf("label %q is beyond the last addressable instruction\n", label)
			}
		}
	}

	return asm.assemble(lines, labels)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// assemble runs the encoding pass.
func (asm *Assembler) assemble(lines []string, labels LabelTable) (prog *Program, err error) {
	var line sourceLine
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: string(line), Err: err}
			prog = nil
		}
	}()

	var opcodes []Opcode

	for n, text := range lines {
		lineno = n + 1
		line = parseLine(text)

		if !line.Instruction() {
			continue
		}

		words := strings.Fields(string(line))

		var code Code
		code, err = encodeWords(words, labels)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v: %02X %v\n", lineno, uint8(code), line)
		}

		opcodes = append(opcodes, Opcode{
			LineNo: lineno,
			Ip:     len(opcodes),
			Words:  words,
			Code:   code,
		})
	}

	prog = &Program{
		Opcodes: opcodes,
		Labels:  maps.Clone(labels),
	}

	return
}
