// Package hackasm implements an assembler for the Hack machine language
// documented at https://www.nand2tetris.org/project06: it resolves the
// symbolic labels and variables in a Hack assembly program and emits the
// 16-bit binary instructions the Hack CPU executes.
package hackasm

import (
	"fmt"
	"io"

	"github.com/teramach/hackasm/pkg/asm"
	"github.com/teramach/hackasm/pkg/hack"
	"github.com/teramach/hackasm/pkg/symtab"
)

// Assemble reads a complete Hack assembly program from r and writes its
// machine-code translation to w: one 16-character binary line per A- or
// C-instruction, in source order. The pipeline is the grammar-driven parser
// (pkg/asm) feeding the two symbol-resolution sweeps (pkg/symtab) feeding
// the encoder (pkg/hack).
//
// The first error aborts assembly; no partial output is guaranteed beyond
// whatever Encode already flushed to w.
func Assemble(r io.Reader, w io.Writer) error {
	items, err := asm.NewParser(r).Parse()
	if err != nil {
		return err
	}

	table := symtab.New()
	if err := symtab.ResolveLabels(items, table); err != nil {
		return err
	}
	if err := symtab.ResolveVariables(items, table); err != nil {
		return err
	}

	if err := hack.Encode(items, table, w); err != nil {
		return err
	}

	return nil
}

// IOError wraps a failure to read the source or write the output — the
// only error kind that originates outside the assembler core itself.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
