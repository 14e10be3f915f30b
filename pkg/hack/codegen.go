package hack

import (
	"fmt"
	"io"
	"strconv"

	"github.com/teramach/hackasm/pkg/asm"
	"github.com/teramach/hackasm/pkg/symtab"
)

const maxAddressableMemory = 1 << 15 // addresses [0, 32768) fit in 15 bits.

// compTable is the closed 7-bit comp code table, stored as preformatted
// 7-character strings since Encode streams text rather than bit-packed
// words.
var compTable = map[string]string{
	"0": "0101010", "1": "0111111", "-1": "0111010",
	"D": "0001100", "A": "0110000", "M": "1110000",
	"!D": "0001101", "!A": "0110001", "!M": "1110001",
	"-D": "0001111", "-A": "0110011", "-M": "1110011",
	"D+1": "0011111", "A+1": "0110111", "M+1": "1110111",
	"D-1": "0001110", "A-1": "0110010", "M-1": "1110010",
	"D+A": "0000010", "D+M": "1000010",
	"D-A": "0010011", "D-M": "1010011",
	"A-D": "0000111", "M-D": "1000111",
	"D&A": "0000000", "D&M": "1000000",
	"D|A": "0010101", "D|M": "1010101",
}

// jumpTable is the closed jump code table.
var jumpTable = map[string]string{
	"": "000", "JGT": "001", "JEQ": "010", "JGE": "011",
	"JLT": "100", "JNE": "101", "JLE": "110", "JMP": "111",
}

// Encode is pass 3: it walks items once more, emitting one 16-character
// line per real instruction to w. Label declarations and EndOfInput emit
// nothing. table must already carry every label and variable resolved by
// symtab.ResolveLabels and symtab.ResolveVariables.
func Encode(items []asm.Item, table symtab.Table, w io.Writer) error {
	for _, it := range items {
		switch v := it.(type) {
		case asm.AInstruction:
			value, err := resolveOperand(v, table)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%016b\n", value); err != nil {
				return fmt.Errorf("writing a-instruction: %w", err)
			}
		case asm.CInstruction:
			line, err := encodeC(v)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return fmt.Errorf("writing c-instruction: %w", err)
			}
		case asm.LabelDecl:
			continue
		case asm.EndOfInput:
			return nil
		}
	}
	return nil
}

// resolveOperand turns an A-instruction's operand into its 15-bit value: a
// parsed decimal constant, or a symbol table lookup. Every symbol is
// guaranteed present by symtab.ResolveVariables before Encode runs.
func resolveOperand(a asm.AInstruction, table symtab.Table) (uint16, error) {
	if !a.IsSymbol {
		n, err := strconv.ParseUint(a.Operand, 10, 32)
		if err != nil || n >= maxAddressableMemory {
			return 0, &InvalidConstantError{Text: a.Operand}
		}
		return uint16(n), nil
	}

	entry, ok := table[a.Operand]
	if !ok {
		return 0, fmt.Errorf("internal error: symbol %q was never resolved", a.Operand)
	}
	return entry.Address, nil
}

// encodeC renders a C-instruction as "111" followed by the 7-bit comp code,
// the 3-bit dest code, and the 3-bit jump code.
func encodeC(c asm.CInstruction) (string, error) {
	comp, ok := compTable[c.Comp]
	if !ok {
		return "", &InvalidComputationError{Text: c.Comp}
	}
	jump, ok := jumpTable[c.Jump]
	if !ok {
		return "", &InvalidJumpError{Text: c.Jump}
	}
	return "111" + comp + destBits(c.Dest) + jump, nil
}

// destBits computes the 3-bit `a d m` dest code by set membership rather
// than an exact match against the seven non-duplicate letter combinations,
// so a duplicated letter (e.g. "AA=D") encodes the same as "A=D".
func destBits(dest string) string {
	var a, d, m bool
	for _, r := range dest {
		switch r {
		case 'A':
			a = true
		case 'D':
			d = true
		case 'M':
			m = true
		}
	}
	bit := func(set bool) byte {
		if set {
			return '1'
		}
		return '0'
	}
	return string([]byte{bit(a), bit(d), bit(m)})
}
