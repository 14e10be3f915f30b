// Package asm recognizes the grammar of Hack assembly and turns source text
// into a flat, ordered sequence of Items: the interface between the parser
// and the two symbol-resolution passes plus the encoder.
package asm

import "fmt"

// Item is the sealed set of the four things a line of Hack assembly can be.
// Exactly one of AInstruction, CInstruction, LabelDecl or EndOfInput
// implements it.
type Item interface {
	item()
}

// AInstruction is `@operand`. IsSymbol distinguishes a decimal constant
// (Operand holds the digit text, unresolved) from an identifier that must be
// resolved against the symbol table.
type AInstruction struct {
	Operand  string
	IsSymbol bool
	Line     int
}

func (AInstruction) item() {}

// CInstruction is `[dest '=']? comp [';' jump]?`. Dest and Jump are empty
// when omitted from the source; Comp is always present by construction.
type CInstruction struct {
	Dest string
	Comp string
	Jump string
	Line int
}

func (CInstruction) item() {}

// LabelDecl is a pseudo-instruction `(name)`. It never advances the ROM
// index; it only records where the next real instruction will land.
type LabelDecl struct {
	Name string
	Line int
}

func (LabelDecl) item() {}

// EndOfInput terminates every Item sequence produced by Parse.
type EndOfInput struct{}

func (EndOfInput) item() {}

// SyntaxError reports the first token the parser could not place in the
// grammar. The parser never attempts recovery past the first one.
type SyntaxError struct {
	Line     int
	Column   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s", e.Line, e.Column, e.Expected)
}
