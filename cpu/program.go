package cpu

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Program is the output of an assembly run.
type Program struct {
	Opcodes []Opcode   // Encoded instructions, in address order.
	Labels  LabelTable // Labels resolved by the first pass.
}

type Debug struct {
	*Opcode
}

// Debug finds the opcode at an instruction address.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if op.Ip == ip {
			dbg = Debug{Opcode: &prog.Opcodes[n]}
			break
		}
	}

	return
}

// Codes returns an iterator over the instruction words and their addresses.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}

// Binary returns the raw program image.
func (prog *Program) Binary() (bins []byte) {
	for _, code := range prog.Codes() {
		bins = append(bins, byte(code))
	}

	return
}

// WriteHex writes the header line, then each instruction word as two upper
// case hexadecimal digits, one per line.
func (prog *Program) WriteHex(w io.Writer, header string) (err error) {
	if len(header) != 0 {
		_, err = fmt.Fprintln(w, header)
		if err != nil {
			return
		}
	}

	for _, code := range prog.Codes() {
		_, err = fmt.Fprintf(w, "%02X\n", uint8(code))
		if err != nil {
			return
		}
	}

	return
}

// WriteLabels writes the label table, ordered by address and then by name.
func (prog *Program) WriteLabels(w io.Writer) (err error) {
	names := slices.SortedFunc(maps.Keys(prog.Labels), func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.Labels[a], prog.Labels[b]), cmp.Compare(a, b))
	})

	for _, name := range names {
		_, err = fmt.Fprintf(w, "%q: %d\n", name, prog.Labels[name])
		if err != nil {
			return
		}
	}

	return
}
